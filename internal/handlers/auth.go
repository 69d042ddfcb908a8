package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"adminconsole/internal/backend"
	"adminconsole/internal/middleware"
	"adminconsole/internal/models"
	"adminconsole/internal/notify"
	"adminconsole/internal/service"
)

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type sessionResponse struct {
	Authenticated  bool       `json:"authenticated"`
	Admin          string     `json:"admin"`
	TokenExpiresAt *time.Time `json:"tokenExpiresAt,omitempty"`
	SignedInAt     time.Time  `json:"signedInAt"`
}

// LoginPage sends signed-in admins home and renders the empty login form otherwise.
func (h HandlerSet) LoginPage(c *gin.Context) {
	if id, ok := middleware.SessionID(c, h.cfg.Session); ok {
		if _, err := h.auth.Resolve(c.Request.Context(), id); err == nil {
			c.Redirect(http.StatusFound, "/")
			return
		}
	}
	c.JSON(http.StatusOK, pageResponse{Page: "login", View: gin.H{"email": ""}, Notifications: []models.Notification{}})
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_body"})
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), service.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		status := loginStatus(err)
		h.log.Warn().Err(err).Str("email", req.Email).Msg("login failed")
		c.JSON(status, pageResponse{
			Page:          "login",
			View:          gin.H{"email": req.Email},
			Notifications: []models.Notification{notify.Failure("Sign-in failed", err)},
		})
		return
	}

	middleware.SetSessionCookie(c, h.cfg.Session, sess.ID)
	c.Redirect(http.StatusSeeOther, "/")
}

// loginStatus keeps 401 for credentials the backend rejected. Unreachable or
// failing backends answer 502.
func loginStatus(err error) int {
	var backendErr *backend.Error
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrNoToken):
		return http.StatusBadGateway
	case errors.As(err, &backendErr) && backendErr.Status >= 400 && backendErr.Status < 500:
		return http.StatusUnauthorized
	default:
		return statusFor(err)
	}
}

func (h HandlerSet) Logout(c *gin.Context) {
	if id, ok := middleware.SessionID(c, h.cfg.Session); ok {
		if err := h.auth.Logout(c.Request.Context(), id); err != nil {
			h.log.Error().Err(err).Msg("logout failed")
		}
	}
	middleware.ClearSessionCookie(c, h.cfg.Session)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

func (h HandlerSet) Session(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, sessionResponse{
		Authenticated:  sess.Authenticated,
		Admin:          sess.AdminName,
		TokenExpiresAt: sess.TokenExpiresAt,
		SignedInAt:     sess.CreatedAt,
	})
}
