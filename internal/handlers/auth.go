package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/prismworks/timesheet-console/internal/backend"
	"github.com/prismworks/timesheet-console/internal/models"
	"github.com/prismworks/timesheet-console/internal/session"
	"github.com/prismworks/timesheet-console/internal/timesheet"
)

// AuthHandler serves the login screen and session lifecycle.
type AuthHandler struct {
	api    backend.AuthAPI
	drafts *timesheet.Store
	log    *zap.SugaredLogger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(api backend.AuthAPI, drafts *timesheet.Store, log *zap.SugaredLogger) *AuthHandler {
	return &AuthHandler{api: api, drafts: drafts, log: log}
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	renderPage(c, http.StatusOK, "login.tmpl", gin.H{"Title": "Login"})
}

// Login exchanges the submitted credentials with the backend and, on
// success, persists the full session field set. Failures stay inline on the
// form — no redirect.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginForm struct {
		Email    string `form:"email" binding:"required"`
		Password string `form:"password" binding:"required"`
	}

	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		renderPage(c, http.StatusBadRequest, "login.tmpl", gin.H{
			"Title": "Login",
			"Error": "Both fields are required",
			"Email": c.PostForm("email"),
		})
		return
	}

	resp, err := h.api.Login(c.Request.Context(), models.LoginRequest{
		EmailID:  form.Email,
		Password: form.Password,
	})
	if err != nil {
		msg := "Login failed. Please try again later."
		status := http.StatusBadGateway
		if backend.IsStatus(err, http.StatusUnauthorized) || backend.IsStatus(err, http.StatusForbidden) {
			msg = "Invalid credentials. Please try again."
			status = http.StatusUnauthorized
		} else {
			h.log.Errorw("login call failed", "error", err)
		}
		renderPage(c, status, "login.tmpl", gin.H{
			"Title": "Login",
			"Error": msg,
			"Email": form.Email,
		})
		return
	}

	err = session.Set(c, session.Session{
		Token:      resp.AccessToken,
		TokenType:  resp.TokenType,
		ResourceID: resp.ResourceID,
		EmailID:    resp.EmailID,
		FirstName:  resp.FirstName,
		LastName:   resp.LastName,
		Role:       resp.Role,
		RoleName:   resp.RoleName,
		ExpiresIn:  resp.ExpiresIn,
	})
	if err != nil {
		h.log.Errorw("failed to save session", "error", err)
		renderPage(c, http.StatusInternalServerError, "login.tmpl", gin.H{
			"Title": "Login",
			"Error": "Could not start a session. Please try again.",
			"Email": form.Email,
		})
		return
	}

	if resp.RoleName == models.RoleNameAdmin {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/dashboard/timesheet")
}

// Logout discards the grid draft, clears the session, and returns to login.
func (h *AuthHandler) Logout(c *gin.Context) {
	s := session.Get(c)
	if s.DraftID != "" {
		h.drafts.Delete(s.DraftID)
	}
	if err := session.Clear(c); err != nil {
		h.log.Errorw("failed to clear session", "error", err)
	}
	c.Redirect(http.StatusFound, "/login")
}

// NotAuthorized renders the dedicated not-authorized view.
func (h *AuthHandler) NotAuthorized(c *gin.Context) {
	renderPage(c, http.StatusForbidden, "not_authorized.tmpl", gin.H{"Title": "Not Authorized"})
}
