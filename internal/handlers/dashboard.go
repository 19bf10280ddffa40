package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prismworks/timesheet-console/internal/models"
	"github.com/prismworks/timesheet-console/internal/session"
)

// DashboardHandler serves the landing page.
type DashboardHandler struct{}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// Home is the role-based landing: admins see the management dashboard,
// everyone else goes straight to their timesheets.
func (h *DashboardHandler) Home(c *gin.Context) {
	s := session.Get(c)
	if s.RoleName != models.RoleNameAdmin {
		c.Redirect(http.StatusFound, "/dashboard/timesheet")
		return
	}
	renderPage(c, http.StatusOK, "dashboard.tmpl", gin.H{"Title": "Dashboard"})
}
