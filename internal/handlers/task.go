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

// TaskHandler serves the project-task screens. Tasks are always scoped to a
// project, reached through a customer→project selection.
type TaskHandler struct {
	api      backend.API
	pageSize int
	log      *zap.SugaredLogger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(api backend.API, pageSize int, log *zap.SugaredLogger) *TaskHandler {
	return &TaskHandler{api: api, pageSize: pageSize, log: log}
}

// List shows tasks for the selected customer→project pair; with no project
// selected it prompts for one.
func (h *TaskHandler) List(c *gin.Context) {
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

	var tasks []models.Task
	if projectID != 0 {
		tasks, err = h.api.ListTasksByProject(ctx, s.Token, projectID)
		if err != nil {
			h.log.Errorw("list tasks failed", "project_id", projectID, "error", err)
			session.Flash(c, session.NoticeError, "Could not load tasks")
			tasks = nil
		}
	}

	query := c.Query("q")
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	page := listing.Apply(tasks, func(t models.Task) []string {
		return []string{t.TaskName, listing.ActiveLabel(t.Active)}
	}, query, pageNum, h.pageSize)

	renderPage(c, http.StatusOK, "task_list.tmpl", gin.H{
		"Title":      "Task Management",
		"Query":      query,
		"Page":       page,
		"Customers":  views.CustomerOptions(customers, customerID),
		"Projects":   views.ProjectOptions(projects, projectID),
		"CustomerID": customerID,
		"ProjectID":  projectID,
	})
}

// ShowForm renders the add/update form with the project dropdown.
func (h *TaskHandler) ShowForm(c *gin.Context) {
	s := session.Get(c)
	projects, err := h.api.ListProjects(c.Request.Context(), s.Token)
	if err != nil {
		h.log.Errorw("list projects failed", "error", err)
		session.Flash(c, session.NoticeError, "Could not load projects")
		c.Redirect(http.StatusFound, "/dashboard/task")
		return
	}

	data := gin.H{
		"Title":    "Add Task",
		"Task":     models.Task{Active: true},
		"Projects": views.ProjectOptions(projects, 0),
	}

	if idStr := c.Param("id"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			session.Flash(c, session.NoticeError, "Invalid task ID")
			c.Redirect(http.StatusFound, "/dashboard/task")
			return
		}
		task, err := h.api.GetTask(c.Request.Context(), s.Token, id)
		if err != nil {
			h.log.Errorw("get task failed", "id", id, "error", err)
			session.Flash(c, session.NoticeError, failureMessage(err, "Could not load the task"))
			c.Redirect(http.StatusFound, "/dashboard/task")
			return
		}
		data["Title"] = "Update Task"
		data["Task"] = *task
		data["ID"] = id
		data["Projects"] = views.ProjectOptions(projects, task.ProjectID)
	}

	renderPage(c, http.StatusOK, "task_form.tmpl", data)
}

// Submit creates or updates a task.
func (h *TaskHandler) Submit(c *gin.Context) {
	type TaskForm struct {
		TaskName  string `form:"taskName" binding:"required"`
		ProjectID uint64 `form:"projectId" binding:"required"`
		Active    bool   `form:"active"`
	}

	var form TaskForm
	bindErr := c.ShouldBind(&form)

	task := models.Task{
		TaskName:  form.TaskName,
		ProjectID: form.ProjectID,
		Active:    form.Active,
	}

	rerender := func(status int, msg string) {
		s := session.Get(c)
		projects, _ := h.api.ListProjects(c.Request.Context(), s.Token)
		data := gin.H{
			"Title":    "Add Task",
			"Task":     task,
			"Projects": views.ProjectOptions(projects, form.ProjectID),
			"Notices":  []session.Notice{{Kind: session.NoticeError, Message: msg}},
		}
		if idStr := c.Param("id"); idStr != "" {
			data["Title"] = "Update Task"
			data["ID"] = idStr
		}
		renderPage(c, status, "task_form.tmpl", data)
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
			task.TaskID = id
			err = h.api.UpdateTask(c.Request.Context(), s.Token, id, task)
		}
	} else {
		err = h.api.CreateTask(c.Request.Context(), s.Token, task)
	}

	if err != nil {
		h.log.Errorw("save task failed", "error", err)
		rerender(http.StatusBadGateway, failureMessage(err, "Could not save the task"))
		return
	}

	session.Flash(c, session.NoticeSuccess, "Task saved successfully")
	c.Redirect(http.StatusFound, "/dashboard/task")
}
