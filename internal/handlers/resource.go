package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prismworks/timesheet-console/internal/backend"
	"github.com/prismworks/timesheet-console/internal/listing"
	"github.com/prismworks/timesheet-console/internal/models"
	"github.com/prismworks/timesheet-console/internal/session"
	"github.com/prismworks/timesheet-console/internal/views"
)

// ResourceHandler serves the employee management screens.
type ResourceHandler struct {
	api      backend.ResourceAPI
	pageSize int
	log      *zap.SugaredLogger
}

// NewResourceHandler creates a new ResourceHandler.
func NewResourceHandler(api backend.ResourceAPI, pageSize int, log *zap.SugaredLogger) *ResourceHandler {
	return &ResourceHandler{api: api, pageSize: pageSize, log: log}
}

// List fetches the full collection fresh and applies the shared
// filter/paginate behavior. A failed fetch renders the empty state with a
// notice.
func (h *ResourceHandler) List(c *gin.Context) {
	s := session.Get(c)
	resources, err := h.api.ListResources(c.Request.Context(), s.Token)
	if err != nil {
		h.log.Errorw("list resources failed", "error", err)
		session.Flash(c, session.NoticeError, "Could not load resources")
		resources = nil
	}

	query := c.Query("q")
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	page := listing.Apply(resources, func(r models.Resource) []string {
		return []string{r.FirstName, r.LastName, r.EmailID, r.PhoneNumber, listing.ActiveLabel(r.Active)}
	}, query, pageNum, h.pageSize)

	renderPage(c, http.StatusOK, "resource_list.tmpl", gin.H{
		"Title": "Resource Management",
		"Query": query,
		"Page":  page,
	})
}

// ShowForm renders the add/update form. Update mode pre-populates via a
// follow-up fetch by identifier.
func (h *ResourceHandler) ShowForm(c *gin.Context) {
	data := gin.H{
		"Title":    "Add Resource",
		"Resource": models.Resource{Active: true},
		"Roles":    views.RoleOptions(models.RoleUser),
	}

	if idStr := c.Param("id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			session.Flash(c, session.NoticeError, "Invalid resource ID")
			c.Redirect(http.StatusFound, "/dashboard/resource")
			return
		}
		s := session.Get(c)
		resource, err := h.api.GetResource(c.Request.Context(), s.Token, id)
		if err != nil {
			h.log.Errorw("get resource failed", "id", id, "error", err)
			session.Flash(c, session.NoticeError, failureMessage(err, "Could not load the resource"))
			c.Redirect(http.StatusFound, "/dashboard/resource")
			return
		}
		data["Title"] = "Update Resource"
		data["Resource"] = *resource
		data["ID"] = id
		data["Roles"] = views.RoleOptions(resource.Role)
	}

	renderPage(c, http.StatusOK, "resource_form.tmpl", data)
}

// Submit handles both create and update, distinguished by the identifier in
// the path. Validation failures and backend failures keep the form
// populated for resubmission.
func (h *ResourceHandler) Submit(c *gin.Context) {
	type ResourceForm struct {
		FirstName   string `form:"firstName" binding:"required"`
		LastName    string `form:"lastName" binding:"required"`
		EmailID     string `form:"emailId" binding:"required"`
		PhoneNumber string `form:"phoneNumber"`
		Address1    string `form:"address1"`
		Address2    string `form:"address2"`
		City        string `form:"city"`
		State       string `form:"state"`
		Country     string `form:"country"`
		ZipCode     string `form:"zipCode"`
		Role        int    `form:"role" binding:"required"`
		Active      bool   `form:"active"`
	}

	var form ResourceForm
	bindErr := c.ShouldBind(&form)

	resource := models.Resource{
		FirstName:   form.FirstName,
		LastName:    form.LastName,
		EmailID:     form.EmailID,
		PhoneNumber: form.PhoneNumber,
		Address1:    form.Address1,
		Address2:    form.Address2,
		City:        form.City,
		State:       form.State,
		Country:     form.Country,
		ZipCode:     form.ZipCode,
		Role:        models.Role(form.Role),
		Active:      form.Active,
	}

	rerender := func(status int, msg string) {
		data := gin.H{
			"Title":    "Add Resource",
			"Resource": resource,
			"Roles":    views.RoleOptions(resource.Role),
			"Notices":  []session.Notice{{Kind: session.NoticeError, Message: msg}},
		}
		if idStr := c.Param("id"); idStr != "" {
			data["Title"] = "Update Resource"
			data["ID"] = idStr
		}
		renderPage(c, status, "resource_form.tmpl", data)
	}

	if bindErr != nil {
		rerender(http.StatusBadRequest, "Please fill in all required fields")
		return
	}

	s := session.Get(c)
	var err error
	if idStr := c.Param("id"); idStr != "" {
		var id uint64
		id, err = strconv.ParseUint(idStr, 10, 64)
		if err == nil {
			resource.ResourceID = id
			err = h.api.UpdateResource(c.Request.Context(), s.Token, id, resource)
		}
	} else {
		err = h.api.CreateResource(c.Request.Context(), s.Token, resource)
	}

	if err != nil {
		h.log.Errorw("save resource failed", "error", err)
		rerender(http.StatusBadGateway, failureMessage(err, "Could not save the resource"))
		return
	}

	session.Flash(c, session.NoticeSuccess, "Resource saved successfully")
	c.Redirect(http.StatusFound, "/dashboard/resource")
}
