package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/prismworks/timesheet-console/internal/models"
	"github.com/prismworks/timesheet-console/internal/session"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "1"}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return token
}

// guardRouter serves /protected behind the session guard, plus /seed to
// install a session the way a login would.
func guardRouter(roleNames ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(session.CookieName, store))

	r.POST("/seed", func(c *gin.Context) {
		_ = session.Set(c, session.Session{
			Token:    c.Query("token"),
			RoleName: c.Query("role"),
		})
		c.Status(http.StatusOK)
	})

	handlers := []gin.HandlerFunc{RequireSession()}
	if len(roleNames) > 0 {
		handlers = append(handlers, RequireRoles(roleNames...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		s, _ := CurrentSession(c)
		c.String(http.StatusOK, s.RoleName)
	})
	r.GET("/protected", handlers...)

	r.GET("/session", func(c *gin.Context) {
		c.String(http.StatusOK, session.Get(c).Token)
	})
	return r
}

// seedSession posts to /seed and returns the session cookies.
func seedSession(t *testing.T, r *gin.Engine, token, role string) []*http.Cookie {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/seed?token="+token+"&role="+role, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	return w.Result().Cookies()
}

func get(r *gin.Engine, path string, cookies []*http.Cookie, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireSession_NoTokenRedirectsToLogin(t *testing.T) {
	r := guardRouter()
	w := get(r, "/protected", nil, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, LoginPath, w.Header().Get("Location"))
}

func TestRequireSession_ValidTokenPasses(t *testing.T) {
	r := guardRouter()
	cookies := seedSession(t, r, signedToken(t, time.Now().Add(time.Hour)), models.RoleNameUser)
	w := get(r, "/protected", cookies, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireSession_ExpiredTokenClearsSessionAndRedirects(t *testing.T) {
	r := guardRouter()
	token := signedToken(t, time.Now().Add(-time.Hour))
	cookies := seedSession(t, r, token, models.RoleNameUser)

	w := get(r, "/protected", cookies, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, LoginPath, w.Header().Get("Location"))

	// The session was wiped; carry the updated cookie forward and look.
	cleared := w.Result().Cookies()
	if len(cleared) == 0 {
		cleared = cookies
	}
	w = get(r, "/session", cleared, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, w.Body.String())
}

func TestRequireSession_MalformedTokenTreatedAsExpired(t *testing.T) {
	r := guardRouter()
	cookies := seedSession(t, r, "not-a-jwt", models.RoleNameUser)
	w := get(r, "/protected", cookies, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, LoginPath, w.Header().Get("Location"))
}

func TestRequireSession_TokenWithoutExpPasses(t *testing.T) {
	r := guardRouter()
	cookies := seedSession(t, r, signedToken(t, time.Time{}), models.RoleNameUser)
	w := get(r, "/protected", cookies, nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRoles_AllowedRolePasses(t *testing.T) {
	r := guardRouter(models.RoleNameAdmin)
	cookies := seedSession(t, r, signedToken(t, time.Now().Add(time.Hour)), models.RoleNameAdmin)
	w := get(r, "/protected", cookies, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, models.RoleNameAdmin, w.Body.String())
}

func TestRequireRoles_DisallowedRoleRedirectsToNotAuthorized(t *testing.T) {
	r := guardRouter(models.RoleNameAdmin)
	cookies := seedSession(t, r, signedToken(t, time.Now().Add(time.Hour)), models.RoleNameUser)
	w := get(r, "/protected", cookies, nil)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, NotAuthorizedPath, w.Header().Get("Location"))
}

func TestDeny_XHRGetsJSONInsteadOfRedirect(t *testing.T) {
	r := guardRouter()
	w := get(r, "/protected", nil, map[string]string{"X-Requested-With": "XMLHttpRequest"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"redirect":"/login"}`, w.Body.String())
}

func TestDeny_XHRForbiddenForRoleFailure(t *testing.T) {
	r := guardRouter(models.RoleNameAdmin)
	cookies := seedSession(t, r, signedToken(t, time.Now().Add(time.Hour)), models.RoleNameUser)
	w := get(r, "/protected", cookies, map[string]string{"X-Requested-With": "XMLHttpRequest"})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.JSONEq(t, `{"redirect":"/not-authorized"}`, w.Body.String())
}
