package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// sign is an HMAC-SHA256 over the parts joined by ":", base64url encoded.
func sign(secret string, parts ...string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strings.Join(parts, ":")))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}

// SignSessionID produces the cookie value "<id>.<mac>".
func SignSessionID(secret string, id string) string {
	return id + "." + sign(secret, "session", id)
}

// VerifySessionCookie returns the session id when the value carries a valid mac.
func VerifySessionCookie(secret string, value string) (string, bool) {
	idx := strings.LastIndexByte(value, '.')
	if idx <= 0 || idx == len(value)-1 {
		return "", false
	}
	id, mac := value[:idx], value[idx+1:]
	if !hmac.Equal([]byte(mac), []byte(sign(secret, "session", id))) {
		return "", false
	}
	return id, true
}
