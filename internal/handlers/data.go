package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prismworks/timesheet-console/internal/backend"
	"github.com/prismworks/timesheet-console/internal/session"
	"github.com/prismworks/timesheet-console/internal/webapi"
)

// DataHandler serves the dependent-dropdown data the list and form pages
// refresh without a full navigation (customer→projects, project→tasks).
// Responses echo the request's attempt tag so the page script can discard a
// stale response that resolves after a newer request was issued.
type DataHandler struct {
	api backend.API
	log *zap.SugaredLogger
}

// NewDataHandler creates a new DataHandler.
func NewDataHandler(api backend.API, log *zap.SugaredLogger) *DataHandler {
	return &DataHandler{api: api, log: log}
}

// ProjectsByCustomer returns the selected customer's projects.
func (h *DataHandler) ProjectsByCustomer(c *gin.Context) {
	customerID, err := strconv.ParseUint(c.Query("customerId"), 10, 64)
	if err != nil || customerID == 0 {
		webapi.BadRequest(c, "A customer is required")
		return
	}

	s := session.Get(c)
	projects, err := h.api.ListProjectsByCustomer(c.Request.Context(), s.Token, customerID)
	if err != nil {
		h.log.Errorw("list projects failed", "customer_id", customerID, "error", err)
		webapi.UpstreamError(c, failureMessage(err, "Could not load projects"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attempt":  c.Query("attempt"),
		"projects": projects,
	})
}

// TasksByProject returns the selected project's tasks.
func (h *DataHandler) TasksByProject(c *gin.Context) {
	projectID, err := strconv.ParseUint(c.Query("projectId"), 10, 64)
	if err != nil || projectID == 0 {
		webapi.BadRequest(c, "A project is required")
		return
	}

	s := session.Get(c)
	tasks, err := h.api.ListTasksByProject(c.Request.Context(), s.Token, projectID)
	if err != nil {
		h.log.Errorw("list tasks failed", "project_id", projectID, "error", err)
		webapi.UpstreamError(c, failureMessage(err, "Could not load tasks"))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"attempt": c.Query("attempt"),
		"tasks":   tasks,
	})
}
