package session

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/prismworks/timesheet-console/internal/models"
)

// CookieName is the console's session cookie.
const CookieName = "timesheet_console"

const (
	keyToken      = "accessToken"
	keyTokenType  = "tokenType"
	keyResourceID = "resourceId"
	keyEmailID    = "emailId"
	keyFirstName  = "firstName"
	keyLastName   = "lastName"
	keyRole       = "role"
	keyRoleName   = "roleName"
	keyExpiresIn  = "expiresIn"
	keyDraftID    = "draftId"
)

// Session is the signed-in user's identity as captured at login. All fields
// come from the backend's login response; the console never derives them
// from anywhere else.
type Session struct {
	Token      string
	TokenType  string
	ResourceID uint64
	EmailID    string
	FirstName  string
	LastName   string
	Role       models.Role
	RoleName   string
	ExpiresIn  int64
	DraftID    string
}

// Present reports whether a token is held at all. Validity is checked
// separately by the route guard.
func (s Session) Present() bool {
	return s.Token != ""
}

// FullName joins the stored name parts for display.
func (s Session) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Set persists the full session field set.
func Set(c *gin.Context, s Session) error {
	sess := sessions.Default(c)
	sess.Set(keyToken, s.Token)
	sess.Set(keyTokenType, s.TokenType)
	sess.Set(keyResourceID, s.ResourceID)
	sess.Set(keyEmailID, s.EmailID)
	sess.Set(keyFirstName, s.FirstName)
	sess.Set(keyLastName, s.LastName)
	sess.Set(keyRole, int(s.Role))
	sess.Set(keyRoleName, s.RoleName)
	sess.Set(keyExpiresIn, s.ExpiresIn)
	sess.Set(keyDraftID, s.DraftID)
	return sess.Save()
}

// Get returns the current session fields, zero-valued when absent.
func Get(c *gin.Context) Session {
	sess := sessions.Default(c)
	s := Session{}
	if v, ok := sess.Get(keyToken).(string); ok {
		s.Token = v
	}
	if v, ok := sess.Get(keyTokenType).(string); ok {
		s.TokenType = v
	}
	if v, ok := sess.Get(keyResourceID).(uint64); ok {
		s.ResourceID = v
	}
	if v, ok := sess.Get(keyEmailID).(string); ok {
		s.EmailID = v
	}
	if v, ok := sess.Get(keyFirstName).(string); ok {
		s.FirstName = v
	}
	if v, ok := sess.Get(keyLastName).(string); ok {
		s.LastName = v
	}
	if v, ok := sess.Get(keyRole).(int); ok {
		s.Role = models.Role(v)
	}
	if v, ok := sess.Get(keyRoleName).(string); ok {
		s.RoleName = v
	}
	if v, ok := sess.Get(keyExpiresIn).(int64); ok {
		s.ExpiresIn = v
	}
	if v, ok := sess.Get(keyDraftID).(string); ok {
		s.DraftID = v
	}
	return s
}

// SetDraftID records the grid editor draft handle without touching the rest
// of the session.
func SetDraftID(c *gin.Context, id string) error {
	sess := sessions.Default(c)
	sess.Set(keyDraftID, id)
	return sess.Save()
}

// Clear erases every session field.
func Clear(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}
