package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCookie(t *testing.T) {
	value := SignSessionID("secret", "2abc")

	id, ok := VerifySessionCookie("secret", value)
	require.True(t, ok)
	assert.Equal(t, "2abc", id)

	tests := []struct {
		name  string
		value string
	}{
		{"wrong secret", SignSessionID("other", "2abc")},
		{"tampered id", "2abd" + value[len("2abc"):]},
		{"no mac", "2abc."},
		{"no separator", "2abc"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := VerifySessionCookie("secret", tt.value)
			assert.False(t, ok)
		})
	}
}

func TestTokenExpiry(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	exp := now.Add(2 * time.Hour)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()}).SignedString([]byte("backend-key"))
	require.NoError(t, err)

	got := TokenExpiry(signed, 3600, now)
	require.NotNil(t, got)
	assert.True(t, got.Equal(exp))

	got = TokenExpiry("opaque-token", 3600, now)
	require.NotNil(t, got)
	assert.True(t, got.Equal(now.Add(time.Hour)))

	assert.Nil(t, TokenExpiry("opaque-token", 0, now))
}
