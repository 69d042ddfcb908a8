package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"adminconsole/internal/api"
	"adminconsole/internal/config"
	"adminconsole/internal/ids"
	"adminconsole/internal/models"
	"adminconsole/internal/notify"
	"adminconsole/internal/security"
	"adminconsole/internal/session"
)

var (
	ErrMissingCredentials = errors.New("email and password required")
	ErrNoToken            = errors.New("backend returned no token")
)

// Authenticator exchanges admin credentials for a backend token.
type Authenticator interface {
	Login(ctx context.Context, req api.LoginRequest) (api.LoginResponse, error)
}

type AuthService struct {
	auth     Authenticator
	sessions session.Store
	ttl      time.Duration
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(auth Authenticator, sessions session.Store, cfg config.SessionConfig, log zerolog.Logger) *AuthService {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &AuthService{
		auth:     auth,
		sessions: sessions,
		ttl:      ttl,
		log:      log,
		now:      time.Now,
	}
}

type LoginInput struct {
	Email    string
	Password string
}

// Login trades the credentials for a backend token and persists a new
// authenticated session carrying it.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (session.Session, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return session.Session{}, ErrMissingCredentials
	}

	resp, err := s.auth.Login(ctx, api.LoginRequest{Email: input.Email, Password: input.Password})
	if err != nil {
		return session.Session{}, err
	}
	if resp.Token == "" {
		return session.Session{}, ErrNoToken
	}

	now := s.now().UTC()
	sess := session.Session{
		ID:             ids.New(),
		Token:          resp.Token,
		Authenticated:  true,
		AdminName:      input.Email,
		TokenExpiresAt: security.TokenExpiry(resp.Token, resp.ExpiresIn, now),
		CreatedAt:      now,
		Flash:          []models.Notification{notify.Success("Welcome back", "Signed in as "+input.Email+".")},
	}

	if err := s.sessions.Save(ctx, sess, s.ttl); err != nil {
		return session.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.log.Info().Str("session_id", sess.ID).Str("admin", sess.AdminName).Msg("admin signed in")
	return sess, nil
}

// Resolve loads an authenticated session.
func (s *AuthService) Resolve(ctx context.Context, id string) (session.Session, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return session.Session{}, err
	}
	if !sess.Authenticated || sess.Token == "" {
		return session.Session{}, session.ErrNotFound
	}
	return sess, nil
}

// TakeFlash returns the session's pending notifications and clears them,
// keeping the session's remaining lifetime.
func (s *AuthService) TakeFlash(ctx context.Context, sess session.Session) []models.Notification {
	if len(sess.Flash) == 0 {
		return nil
	}
	flash := sess.Flash
	sess.Flash = nil

	remaining := sess.CreatedAt.Add(s.ttl).Sub(s.now())
	if remaining <= 0 {
		return flash
	}
	if err := s.sessions.Save(ctx, sess, remaining); err != nil {
		s.log.Warn().Err(err).Str("session_id", sess.ID).Msg("clear flash failed")
	}
	return flash
}

func (s *AuthService) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.log.Info().Str("session_id", id).Msg("admin signed out")
	return nil
}

func (s *AuthService) TTL() time.Duration {
	return s.ttl
}
