package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/animationlms/platform-api/internal/core/ports"
	"github.com/animationlms/platform-api/internal/core/service"
)

// SessionKey is the echo context key holding the request's *service.Session.
const SessionKey = "session"

// Identity attaches a session context to every request. A valid Bearer
// token binds the request to its stored session; a missing, malformed, or
// expired token degrades silently to an anonymous session. Rejection is
// left to RequireRole — public pages are served to visitors.
func Identity(auth ports.AuthService, jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(SessionKey, service.NewSession(auth, sessionIDFromHeader(c, jwtSecret)))
			return next(c)
		}
	}
}

// sessionIDFromHeader extracts the session ID claim from the Authorization
// header, returning "" when the token is absent or invalid.
func sessionIDFromHeader(c echo.Context, jwtSecret string) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return ""
	}

	sid, _ := claims["sid"].(string)
	return sid
}
