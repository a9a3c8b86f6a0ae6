package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/jevliu/learning-platform/internal/handler" // auth handlers
)

// RegisterAuth registers the authentication endpoints under /api/auth.
// None of them require an existing session; together they are the only
// unauthenticated writes in the API, so the caller passes in the rate
// limiting middleware to wrap the whole group.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, limit echo.MiddlewareFunc) {
	g := e.Group("/api/auth")
	if limit != nil {
		g.Use(limit)
	}
	// Teachers register with an email address.
	g.POST("/register-teacher", a.RegisterTeacher)
	// Students register with a display name; the handle "admin" is reserved.
	g.POST("/register-student", a.RegisterStudent)
	// Login is by handle and password for both roles.
	g.POST("/login", a.Login)
}
