package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reports when the backend token expires. The backend signs its
// tokens with a key the console does not hold, so the claims are read without
// verification and only ever displayed. Opaque tokens fall back to expiresIn.
func TokenExpiry(token string, expiresIn int64, now time.Time) *time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			t := exp.Time
			return &t
		}
	}
	if expiresIn > 0 {
		t := now.Add(time.Duration(expiresIn) * time.Second)
		return &t
	}
	return nil
}
