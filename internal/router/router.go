package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/jevliu/learning-platform/internal/handler" // import the handlers that implement business logic
)

// RegisterRoutes registers routes that do not require authentication on the
// provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterStatic serves the upload directory read-only under /uploads so
// the client can download stored material files directly.  Echo's Static
// helper refuses paths that escape the root.
func RegisterStatic(e *echo.Echo, uploadDir string) {
	e.Static("/uploads", uploadDir)
}
