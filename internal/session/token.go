package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt inspects a cached token that happens to be a JWT and returns its
// expiry time. The signature is not verified - this is a hint for the
// optional pre-flight check, not an authorization decision (the backend
// remains the sole enforcer).
//
// Returns ok=false for opaque tokens or JWTs without an exp claim.
func ExpiresAt(token string) (time.Time, bool) {
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	claims := &jwt.RegisteredClaims{}

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}
