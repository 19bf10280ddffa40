package session

import (
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// Notice kinds for transient notifications.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// Notice is a one-shot notification shown on the next rendered page.
type Notice struct {
	Kind    string
	Message string
}

// Flash queues a notice for the next render.
func Flash(c *gin.Context, kind, message string) {
	sess := sessions.Default(c)
	sess.AddFlash(kind + "|" + message)
	_ = sess.Save()
}

// TakeNotices drains queued notices.
func TakeNotices(c *gin.Context) []Notice {
	sess := sessions.Default(c)
	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil
	}
	_ = sess.Save()

	notices := make([]Notice, 0, len(raw))
	for _, f := range raw {
		s, ok := f.(string)
		if !ok {
			continue
		}
		kind, msg, found := strings.Cut(s, "|")
		if !found {
			kind, msg = NoticeError, s
		}
		notices = append(notices, Notice{Kind: kind, Message: msg})
	}
	return notices
}
