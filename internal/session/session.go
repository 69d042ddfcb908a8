// Package session holds the admin session: the backend bearer token and the
// authenticated flag, created at login and destroyed at logout.
package session

import (
	"context"
	"errors"
	"time"

	"adminconsole/internal/models"
)

var ErrNotFound = errors.New("session not found")

type Session struct {
	ID            string `json:"id"`
	Token         string `json:"token"`
	Authenticated bool   `json:"authenticated"`
	AdminName     string `json:"adminName"`
	// TokenExpiresAt is what the backend announced; the console does not enforce it.
	TokenExpiresAt *time.Time            `json:"tokenExpiresAt,omitempty"`
	CreatedAt      time.Time             `json:"createdAt"`
	Flash          []models.Notification `json:"flash,omitempty"`
}

type Store interface {
	Get(ctx context.Context, id string) (Session, error)
	Save(ctx context.Context, s Session, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

type contextKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the session attached by the authentication gate.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(contextKey{}).(Session)
	return s, ok
}
