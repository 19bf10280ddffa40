package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/prismworks/timesheet-console/internal/session"
)

const contextKeySession = "consoleSession"

// LoginPath is where unauthenticated or invalid sessions are sent.
const LoginPath = "/login"

// NotAuthorizedPath is where authenticated-but-disallowed sessions are sent.
const NotAuthorizedPath = "/not-authorized"

// RequireSession gates a route on a present, unexpired token. The expiry
// claim is read without signature verification: the console never holds the
// backend's signing key, and this check is a UX convenience only — the
// backend independently rejects bad tokens on every API call. A missing
// token redirects to login; an expired or malformed token additionally
// clears the session first.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		s := session.Get(c)
		if !s.Present() {
			deny(c, LoginPath)
			return
		}

		if tokenExpired(s.Token) {
			_ = session.Clear(c)
			deny(c, LoginPath)
			return
		}

		c.Set(contextKeySession, s)
		c.Next()
	}
}

// RequireRoles gates a route on the session's role name being in the
// allow-list. Must run after RequireSession.
func RequireRoles(roleNames ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok {
			deny(c, LoginPath)
			return
		}
		for _, name := range roleNames {
			if s.RoleName == name {
				c.Next()
				return
			}
		}
		deny(c, NotAuthorizedPath)
	}
}

// CurrentSession retrieves the session stored by RequireSession.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, exists := c.Get(contextKeySession)
	if !exists {
		return session.Session{}, false
	}
	s, ok := v.(session.Session)
	return s, ok
}

// tokenExpired decodes the token's exp claim locally. A token that cannot
// be decoded counts as expired; a token without an exp claim does not.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil {
		return true
	}
	if exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// deny aborts the request. Page navigations get a redirect; the console's
// own XHR endpoints get a JSON status instead so the page script can react.
func deny(c *gin.Context, target string) {
	if wantsJSON(c) {
		code := http.StatusUnauthorized
		if target == NotAuthorizedPath {
			code = http.StatusForbidden
		}
		c.AbortWithStatusJSON(code, gin.H{"redirect": target})
		return
	}
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

func wantsJSON(c *gin.Context) bool {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}
