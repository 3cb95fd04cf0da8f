package directory

import (
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// bearerHeader returns the Authorization value for token. A JWT whose exp is
// already past is dropped so requests go out anonymously instead of failing.
// Tokens that are not JWTs are sent as they are.
func bearerHeader(token string, now time.Time, logger *slog.Logger) string {
	if token == "" {
		return ""
	}
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err == nil &&
		claims.ExpiresAt != nil && claims.ExpiresAt.Before(now) {
		logger.Warn("configured API token has expired, sending requests without it", "expired_at", claims.ExpiresAt.Time)
		return ""
	}
	return "Bearer " + token
}
