package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/animationlms/platform-api/internal/core/domain"
	"github.com/animationlms/platform-api/internal/core/service"
)

// RequireRole enforces the role hierarchy: the request's effective identity
// (visitor when anonymous) must satisfy the required role. Denial is a 403
// result, not an internal error.
func RequireRole(required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, _ := c.Get(SessionKey).(*service.Session)
			if sess == nil || !sess.HasPermission(c.Request().Context(), required) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
