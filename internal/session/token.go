package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reports when the current token expires, parsed from its JWT
// claims without signature verification. It exists for display only
// (`auth status`); authorization decisions always defer to the backend.
// ok is false when no token is held, the token is not a JWT, or it carries
// no expiry claim.
func (s *Store) TokenExpiry() (expiry time.Time, ok bool) {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()

	if token == "" {
		return time.Time{}, false
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, false
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}

	return claims.ExpiresAt.Time, true
}
