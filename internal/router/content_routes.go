package router // router defines how HTTP routes are registered for the API

import (
	"strconv"

	"github.com/labstack/echo/v4"
	emw "github.com/labstack/echo/v4/middleware"

	"github.com/jevliu/learning-platform/internal/handler"    // content handlers
	"github.com/jevliu/learning-platform/internal/middleware" // JWT + role middlewares
)

// RegisterContent registers the class-scoped content endpoints under /api.
// Every route requires a valid JWT; create and delete additionally require
// the teacher role. The optional cache middleware wraps the list GETs only.
func RegisterContent(e *echo.Echo, h *handler.ContentHandler, jwtSecret string, maxUploadBytes int64, cache echo.MiddlewareFunc) {
	// Read endpoints: any authenticated user (teacher or student).
	read := e.Group(
		"/api",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("teacher", "student"),
	)
	if cache == nil {
		cache = func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	read.GET("/classes", h.ListClasses, cache)
	read.GET("/classes/:classId/materials", h.ListMaterials, cache)
	read.GET("/classes/:classId/videos", h.ListVideos, cache)
	read.GET("/classes/:classId/notes", h.ListNotes, cache)

	// Write endpoints: teachers only.
	write := e.Group(
		"/api",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("teacher"),
	)

	// ---- Classes ----
	write.POST("/classes", h.CreateClass)
	write.DELETE("/classes/:id", h.DeleteClass)

	// ---- Materials ----
	// The body limit runs before the multipart body is read; the extra
	// headroom covers the non-file form fields and multipart framing.
	bodyLimit := emw.BodyLimit(strconv.FormatInt(maxUploadBytes+1024*1024, 10))
	write.POST("/classes/:classId/materials", h.CreateMaterial, bodyLimit)
	write.DELETE("/classes/:classId/materials/:materialId", h.DeleteMaterial)

	// ---- Videos ----
	write.POST("/classes/:classId/videos", h.CreateVideo)
	write.DELETE("/classes/:classId/videos/:videoId", h.DeleteVideo)

	// ---- Notes ----
	write.POST("/classes/:classId/notes", h.CreateNote)
	write.DELETE("/classes/:classId/notes/:noteId", h.DeleteNote)
}
