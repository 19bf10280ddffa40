package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/prismworks/timesheet-console/internal/backend"
	"github.com/prismworks/timesheet-console/internal/models"
	"github.com/prismworks/timesheet-console/internal/session"
	"github.com/prismworks/timesheet-console/internal/timesheet"
	"github.com/prismworks/timesheet-console/web"
)

type fakeAuthAPI struct {
	resp *models.LoginResponse
	err  error

	gotReq models.LoginRequest
}

func (f *fakeAuthAPI) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	f.gotReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(session.CookieName, store))
	r.SetHTMLTemplate(web.Templates())
	return r
}

func postForm(r *gin.Engine, path string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthHandler_LoginAdminLandsOnDashboard(t *testing.T) {
	api := &fakeAuthAPI{resp: &models.LoginResponse{
		AccessToken: "jwt",
		ResourceID:  1,
		EmailID:     "admin@example.com",
		FirstName:   "Ada",
		LastName:    "Admin",
		Role:        models.RoleAdmin,
		RoleName:    models.RoleNameAdmin,
	}}
	h := NewAuthHandler(api, timesheet.NewStore(), zap.NewNop().Sugar())

	r := newTestRouter()
	r.POST("/login", h.Login)
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, session.Get(c).EmailID)
	})

	w := postForm(r, "/login", url.Values{
		"email":    {"admin@example.com"},
		"password": {"secret"},
	}, nil)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/dashboard", w.Header().Get("Location"))
	require.Equal(t, "admin@example.com", api.gotReq.EmailID)

	// The session now carries the login response fields.
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, ck := range w.Result().Cookies() {
		req.AddCookie(ck)
	}
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Equal(t, "admin@example.com", w2.Body.String())
}

func TestAuthHandler_LoginUserLandsOnTimesheet(t *testing.T) {
	api := &fakeAuthAPI{resp: &models.LoginResponse{
		AccessToken: "jwt",
		RoleName:    models.RoleNameUser,
	}}
	h := NewAuthHandler(api, timesheet.NewStore(), zap.NewNop().Sugar())

	r := newTestRouter()
	r.POST("/login", h.Login)

	w := postForm(r, "/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"secret"},
	}, nil)

	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/dashboard/timesheet", w.Header().Get("Location"))
}

func TestAuthHandler_LoginMissingFieldsStaysInline(t *testing.T) {
	api := &fakeAuthAPI{}
	h := NewAuthHandler(api, timesheet.NewStore(), zap.NewNop().Sugar())

	r := newTestRouter()
	r.POST("/login", h.Login)

	w := postForm(r, "/login", url.Values{"email": {"user@example.com"}}, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "Both fields are required")
	// The entered email is preserved on the form.
	require.Contains(t, w.Body.String(), "user@example.com")
}

func TestAuthHandler_LoginBadCredentialsStaysInline(t *testing.T) {
	api := &fakeAuthAPI{err: &backend.APIError{StatusCode: http.StatusUnauthorized, Message: "bad credentials"}}
	h := NewAuthHandler(api, timesheet.NewStore(), zap.NewNop().Sugar())

	r := newTestRouter()
	r.POST("/login", h.Login)

	w := postForm(r, "/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"wrong"},
	}, nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Contains(t, w.Body.String(), "Invalid credentials. Please try again.")
}

func TestAuthHandler_LoginBackendDownShowsGenericError(t *testing.T) {
	api := &fakeAuthAPI{err: &backend.APIError{StatusCode: http.StatusInternalServerError}}
	h := NewAuthHandler(api, timesheet.NewStore(), zap.NewNop().Sugar())

	r := newTestRouter()
	r.POST("/login", h.Login)

	w := postForm(r, "/login", url.Values{
		"email":    {"user@example.com"},
		"password": {"secret"},
	}, nil)

	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Contains(t, w.Body.String(), "Login failed. Please try again later.")
}

func TestAuthHandler_LogoutClearsSessionAndDraft(t *testing.T) {
	drafts := timesheet.NewStore()
	h := NewAuthHandler(&fakeAuthAPI{}, drafts, zap.NewNop().Sugar())

	r := newTestRouter()
	r.POST("/seed", func(c *gin.Context) {
		_ = session.Set(c, session.Session{Token: "jwt", DraftID: c.Query("draft")})
		c.Status(http.StatusOK)
	})
	r.POST("/logout", h.Logout)
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, session.Get(c).Token)
	})

	draftID := drafts.Put(nil)

	w := postForm(r, "/seed?draft="+draftID, url.Values{}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()

	w = postForm(r, "/logout", url.Values{}, cookies)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/login", w.Header().Get("Location"))

	_, ok := drafts.Get(draftID)
	require.False(t, ok)

	cleared := w.Result().Cookies()
	if len(cleared) == 0 {
		cleared = cookies
	}
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, ck := range cleared {
		req.AddCookie(ck)
	}
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req)
	require.Empty(t, w2.Body.String())
}
