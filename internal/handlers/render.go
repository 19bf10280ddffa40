package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/prismworks/timesheet-console/internal/backend"
	"github.com/prismworks/timesheet-console/internal/models"
	"github.com/prismworks/timesheet-console/internal/session"
)

// renderPage renders a page template with the common chrome fields (user
// identity for the sidebar, queued notices) merged in.
func renderPage(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	s := session.Get(c)
	if _, ok := data["Title"]; !ok {
		data["Title"] = "Timesheet Console"
	}
	data["UserName"] = s.FullName()
	data["Email"] = s.EmailID
	data["RoleName"] = s.RoleName
	data["IsAdmin"] = s.RoleName == models.RoleNameAdmin
	if _, ok := data["Notices"]; !ok {
		data["Notices"] = session.TakeNotices(c)
	}

	c.HTML(status, name, data)
}

// failureMessage prefers the backend's own message and falls back to the
// given generic text.
func failureMessage(err error, generic string) string {
	if msg, ok := backend.ServerMessage(err); ok {
		return msg
	}
	return generic
}
