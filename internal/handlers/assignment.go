package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prismworks/timesheet-console/internal/backend"
	"github.com/prismworks/timesheet-console/internal/listing"
	"github.com/prismworks/timesheet-console/internal/models"
	"github.com/prismworks/timesheet-console/internal/session"
	"github.com/prismworks/timesheet-console/internal/views"
)

// AssignmentHandler serves the resource-to-project assignment screens.
type AssignmentHandler struct {
	api      backend.API
	pageSize int
	log      *zap.SugaredLogger
}

// NewAssignmentHandler creates a new AssignmentHandler.
func NewAssignmentHandler(api backend.API, pageSize int, log *zap.SugaredLogger) *AssignmentHandler {
	return &AssignmentHandler{api: api, pageSize: pageSize, log: log}
}

// List shows all assignments, or one project's when a customer→project pair
// is selected.
func (h *AssignmentHandler) List(c *gin.Context) {
	s := session.Get(c)
	ctx := c.Request.Context()

	customers, err := h.api.ListActiveCustomers(ctx, s.Token)
	if err != nil {
		h.log.Errorw("list active customers failed", "error", err)
		session.Flash(c, session.NoticeError, "Could not load customers")
	}

	customerID, _ := strconv.ParseUint(c.Query("customerId"), 10, 64)
	projectID, _ := strconv.ParseUint(c.Query("projectId"), 10, 64)

	var projects []models.Project
	if customerID != 0 {
		projects, err = h.api.ListProjectsByCustomer(ctx, s.Token, customerID)
		if err != nil {
			h.log.Errorw("list projects failed", "customer_id", customerID, "error", err)
			session.Flash(c, session.NoticeError, "Could not load projects")
		}
	}

	var assignments []models.Assignment
	if projectID != 0 {
		assignments, err = h.api.ListAssignmentsByProject(ctx, s.Token, projectID)
	} else {
		assignments, err = h.api.ListAssignments(ctx, s.Token)
	}
	if err != nil {
		h.log.Errorw("list assignments failed", "project_id", projectID, "error", err)
		session.Flash(c, session.NoticeError, "Could not load assignments")
		assignments = nil
	}

	query := c.Query("q")
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	page := listing.Apply(assignments, func(a models.Assignment) []string {
		return []string{
			a.ProjectName,
			a.FromDate,
			a.ToDate,
			strconv.FormatUint(a.ResourceID, 10),
		}
	}, query, pageNum, h.pageSize)

	renderPage(c, http.StatusOK, "assignment_list.tmpl", gin.H{
		"Title":      "Assign Resource",
		"Query":      query,
		"Page":       page,
		"Customers":  views.CustomerOptions(customers, customerID),
		"Projects":   views.ProjectOptions(projects, projectID),
		"CustomerID": customerID,
		"ProjectID":  projectID,
	})
}

// ShowForm renders the add/update form with resource and project dropdowns.
func (h *AssignmentHandler) ShowForm(c *gin.Context) {
	s := session.Get(c)
	ctx := c.Request.Context()

	resources, err := h.api.ListResources(ctx, s.Token)
	if err != nil {
		h.log.Errorw("list resources failed", "error", err)
		session.Flash(c, session.NoticeError, "Could not load resources")
		c.Redirect(http.StatusFound, "/dashboard/assignment")
		return
	}
	projects, err := h.api.ListProjects(ctx, s.Token)
	if err != nil {
		h.log.Errorw("list projects failed", "error", err)
		session.Flash(c, session.NoticeError, "Could not load projects")
		c.Redirect(http.StatusFound, "/dashboard/assignment")
		return
	}
	customers, err := h.api.ListActiveCustomers(ctx, s.Token)
	if err != nil {
		h.log.Errorw("list active customers failed", "error", err)
	}

	data := gin.H{
		"Title":      "Assign Resource",
		"Assignment": models.Assignment{},
		"Resources":  views.ResourceOptions(resources, 0),
		"Projects":   views.ProjectOptions(projects, 0),
		"Customers":  views.CustomerOptions(customers, 0),
	}

	if idStr := c.Param("id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			session.Flash(c, session.NoticeError, "Invalid assignment ID")
			c.Redirect(http.StatusFound, "/dashboard/assignment")
			return
		}
		assignment, err := h.api.GetAssignment(ctx, s.Token, id)
		if err != nil {
			h.log.Errorw("get assignment failed", "id", id, "error", err)
			session.Flash(c, session.NoticeError, failureMessage(err, "Could not load the assignment"))
			c.Redirect(http.StatusFound, "/dashboard/assignment")
			return
		}
		data["Title"] = "Update Assignment"
		data["Assignment"] = *assignment
		data["ID"] = id
		data["Resources"] = views.ResourceOptions(resources, assignment.ResourceID)
		data["Projects"] = views.ProjectOptions(projects, assignment.ProjectID)
	}

	renderPage(c, http.StatusOK, "assignment_form.tmpl", data)
}

// Submit creates or updates an assignment. An inverted date range is
// rejected before any network call; the backend stays authoritative for
// everything else.
func (h *AssignmentHandler) Submit(c *gin.Context) {
	type AssignmentForm struct {
		ResourceID uint64 `form:"resourceId" binding:"required"`
		ProjectID  uint64 `form:"projectId" binding:"required"`
		FromDate   string `form:"fromDate" binding:"required"`
		ToDate     string `form:"toDate" binding:"required"`
	}

	var form AssignmentForm
	bindErr := c.ShouldBind(&form)

	assignment := models.Assignment{
		ResourceID: form.ResourceID,
		ProjectID:  form.ProjectID,
		FromDate:   form.FromDate,
		ToDate:     form.ToDate,
	}

	rerender := func(status int, msg string) {
		s := session.Get(c)
		resources, _ := h.api.ListResources(c.Request.Context(), s.Token)
		projects, _ := h.api.ListProjects(c.Request.Context(), s.Token)
		customers, _ := h.api.ListActiveCustomers(c.Request.Context(), s.Token)
		data := gin.H{
			"Title":      "Assign Resource",
			"Assignment": assignment,
			"Resources":  views.ResourceOptions(resources, form.ResourceID),
			"Projects":   views.ProjectOptions(projects, form.ProjectID),
			"Customers":  views.CustomerOptions(customers, 0),
			"Notices":    []session.Notice{{Kind: session.NoticeError, Message: msg}},
		}
		if idStr := c.Param("id"); idStr != "" {
			data["Title"] = "Update Assignment"
			data["ID"] = idStr
		}
		renderPage(c, status, "assignment_form.tmpl", data)
	}

	if bindErr != nil {
		rerender(http.StatusBadRequest, "Please fill in all required fields")
		return
	}

	if invertedRange(form.FromDate, form.ToDate) {
		rerender(http.StatusBadRequest, "From date must not be after to date")
		return
	}

	s := session.Get(c)
	var err error
	if idStr := c.Param("id"); idStr != "" {
		var id uint64
		id, err = strconv.ParseUint(idStr, 10, 64)
		if err == nil {
			assignment.ID = id
			err = h.api.UpdateAssignment(c.Request.Context(), s.Token, id, assignment)
		}
	} else {
		err = h.api.CreateAssignment(c.Request.Context(), s.Token, assignment)
	}

	if err != nil {
		h.log.Errorw("save assignment failed", "error", err)
		rerender(http.StatusBadGateway, failureMessage(err, "Could not save the assignment"))
		return
	}

	session.Flash(c, session.NoticeSuccess, "Assignment saved successfully")
	c.Redirect(http.StatusFound, "/dashboard/assignment")
}

func invertedRange(fromDate, toDate string) bool {
	from, err1 := time.Parse(models.DateLayout, fromDate)
	to, err2 := time.Parse(models.DateLayout, toDate)
	if err1 != nil || err2 != nil {
		return false
	}
	return from.After(to)
}
