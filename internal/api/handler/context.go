package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/animationlms/platform-api/internal/api/middleware"
	"github.com/animationlms/platform-api/internal/core/service"
)

// currentSession returns the session installed by the Identity middleware.
// When a route is wired without the middleware the request is treated as
// anonymous rather than failing.
func currentSession(c echo.Context) *service.Session {
	if sess, ok := c.Get(middleware.SessionKey).(*service.Session); ok {
		return sess
	}
	return service.AnonymousSession(nil)
}
