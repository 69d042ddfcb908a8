package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"adminconsole/internal/config"
	"adminconsole/internal/security"
)

// SessionID reads and verifies the session cookie.
func SessionID(c *gin.Context, cfg config.SessionConfig) (string, bool) {
	value, err := c.Cookie(cfg.CookieName)
	if err != nil || value == "" {
		return "", false
	}
	return security.VerifySessionCookie(cfg.Secret, value)
}

func SetSessionCookie(c *gin.Context, cfg config.SessionConfig, id string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, security.SignSessionID(cfg.Secret, id), int(cfg.TTL.Seconds()), "/", "", cfg.Secure, true)
}

func ClearSessionCookie(c *gin.Context, cfg config.SessionConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.CookieName, "", -1, "/", "", cfg.Secure, true)
}
