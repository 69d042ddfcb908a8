package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"adminconsole/internal/config"
	"adminconsole/internal/session"
)

const (
	LoginPath  = "/login"
	sessionKey = "console_session"
)

type SessionResolver interface {
	Resolve(ctx context.Context, id string) (session.Session, error)
}

// Gate admits requests carrying a signed cookie for a live authenticated
// session and attaches that session to the request context. Anything else is
// sent to the login page (GET) or refused with 401.
func Gate(sessions SessionResolver, cfg config.SessionConfig, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := SessionID(c, cfg)
		if !ok {
			deny(c)
			return
		}

		sess, err := sessions.Resolve(c.Request.Context(), id)
		if err != nil {
			if !errors.Is(err, session.ErrNotFound) {
				log.Error().Err(err).Str("session_id", id).Msg("resolve session failed")
			}
			ClearSessionCookie(c, cfg)
			deny(c)
			return
		}

		c.Set(sessionKey, sess)
		c.Request = c.Request.WithContext(session.WithSession(c.Request.Context(), sess))
		c.Next()
	}
}

func deny(c *gin.Context) {
	if c.Request.Method == http.MethodGet || c.Request.Method == http.MethodHead {
		c.Redirect(http.StatusFound, LoginPath)
		c.Abort()
		return
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
}

// CurrentSession returns the session admitted by Gate.
func CurrentSession(c *gin.Context) (session.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return session.Session{}, false
	}
	sess, ok := v.(session.Session)
	return sess, ok
}
