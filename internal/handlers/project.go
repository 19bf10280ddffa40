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

// ProjectHandler serves the project management screens. The list can be
// narrowed to one customer; the form owns the project→customer pairing.
type ProjectHandler struct {
	api      backend.API
	pageSize int
	log      *zap.SugaredLogger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(api backend.API, pageSize int, log *zap.SugaredLogger) *ProjectHandler {
	return &ProjectHandler{api: api, pageSize: pageSize, log: log}
}

// List shows all projects, or one customer's when a customer is selected.
func (h *ProjectHandler) List(c *gin.Context) {
	s := session.Get(c)
	ctx := c.Request.Context()

	customers, err := h.api.ListActiveCustomers(ctx, s.Token)
	if err != nil {
		h.log.Errorw("list active customers failed", "error", err)
		session.Flash(c, session.NoticeError, "Could not load customers")
	}

	customerID, _ := strconv.ParseUint(c.Query("customerId"), 10, 64)

	var projects []models.Project
	if customerID != 0 {
		projects, err = h.api.ListProjectsByCustomer(ctx, s.Token, customerID)
	} else {
		projects, err = h.api.ListProjects(ctx, s.Token)
	}
	if err != nil {
		h.log.Errorw("list projects failed", "customer_id", customerID, "error", err)
		session.Flash(c, session.NoticeError, "Could not load projects")
		projects = nil
	}

	query := c.Query("q")
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	page := listing.Apply(projects, func(p models.Project) []string {
		fields := []string{p.ProjectName, p.ProjectDescription, listing.ActiveLabel(p.Active)}
		if p.Customer != nil {
			fields = append(fields, p.Customer.CustomerName)
		}
		return fields
	}, query, pageNum, h.pageSize)

	renderPage(c, http.StatusOK, "project_list.tmpl", gin.H{
		"Title":      "Project Management",
		"Query":      query,
		"Page":       page,
		"Customers":  views.CustomerOptions(customers, customerID),
		"CustomerID": customerID,
	})
}

// ShowForm renders the add/update form with the active-customer dropdown.
func (h *ProjectHandler) ShowForm(c *gin.Context) {
	s := session.Get(c)
	customers, err := h.api.ListActiveCustomers(c.Request.Context(), s.Token)
	if err != nil {
		h.log.Errorw("list active customers failed", "error", err)
		session.Flash(c, session.NoticeError, "Could not load customers")
		c.Redirect(http.StatusFound, "/dashboard/project")
		return
	}

	data := gin.H{
		"Title":     "Add Project",
		"Project":   models.Project{Active: true},
		"Customers": views.CustomerOptions(customers, 0),
	}

	if idStr := c.Param("id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			session.Flash(c, session.NoticeError, "Invalid project ID")
			c.Redirect(http.StatusFound, "/dashboard/project")
			return
		}
		project, err := h.api.GetProject(c.Request.Context(), s.Token, id)
		if err != nil {
			h.log.Errorw("get project failed", "id", id, "error", err)
			session.Flash(c, session.NoticeError, failureMessage(err, "Could not load the project"))
			c.Redirect(http.StatusFound, "/dashboard/project")
			return
		}
		var customerID uint64
		if project.Customer != nil {
			customerID = project.Customer.CustomerID
		}
		data["Title"] = "Update Project"
		data["Project"] = *project
		data["ID"] = id
		data["Customers"] = views.CustomerOptions(customers, customerID)
	}

	renderPage(c, http.StatusOK, "project_form.tmpl", data)
}

// Submit creates or updates a project. The owning customer travels as a
// path segment on create and a query parameter on update, per the backend
// contract.
func (h *ProjectHandler) Submit(c *gin.Context) {
	type ProjectForm struct {
		ProjectName        string `form:"projectName" binding:"required"`
		ProjectDescription string `form:"projectDescription"`
		CustomerID         uint64 `form:"customerId" binding:"required"`
		Active             bool   `form:"active"`
	}

	var form ProjectForm
	bindErr := c.ShouldBind(&form)

	project := models.Project{
		ProjectName:        form.ProjectName,
		ProjectDescription: form.ProjectDescription,
		Active:             form.Active,
	}

	rerender := func(status int, msg string) {
		s := session.Get(c)
		customers, _ := h.api.ListActiveCustomers(c.Request.Context(), s.Token)
		data := gin.H{
			"Title":     "Add Project",
			"Project":   project,
			"Customers": views.CustomerOptions(customers, form.CustomerID),
			"Notices":   []session.Notice{{Kind: session.NoticeError, Message: msg}},
		}
		if idStr := c.Param("id"); idStr != "" {
			data["Title"] = "Update Project"
			data["ID"] = idStr
		}
		renderPage(c, status, "project_form.tmpl", data)
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
			project.ProjectID = id
			err = h.api.UpdateProject(c.Request.Context(), s.Token, id, form.CustomerID, project)
		}
	} else {
		err = h.api.CreateProject(c.Request.Context(), s.Token, form.CustomerID, project)
	}

	if err != nil {
		h.log.Errorw("save project failed", "error", err)
		rerender(http.StatusBadGateway, failureMessage(err, "Could not save the project"))
		return
	}

	session.Flash(c, session.NoticeSuccess, "Project saved successfully")
	c.Redirect(http.StatusFound, "/dashboard/project")
}
