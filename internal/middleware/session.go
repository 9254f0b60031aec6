// internal/middleware/session.go
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionCookie = "cart_session"
	SessionHeader = "X-Session-ID"

	sessionTTL = 30 * 24 * time.Hour
)

// CartSession resolves the cart session ID for the request and stores it in
// the context under "session_id". The header wins over the cookie so API
// clients can pin a session explicitly; browsers get a UUID cookie on first
// contact.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				sessionID = cookie
			}
		}

		if sessionID == "" {
			sessionID = uuid.NewString()
			c.SetCookie(SessionCookie, sessionID, int(sessionTTL.Seconds()), "/", "", false, true)
		}

		c.Set("session_id", sessionID)
		c.Next()
	}
}
