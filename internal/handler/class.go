package handler // handler package contains class management handlers

import (
    "log"      // log reports best-effort cleanup failures
    "net/http" // http provides status code constants
    "strings"  // strings offers trimming utilities
    "time"     // time stamps orphan events

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers

    "github.com/jevliu/learning-platform/internal/queue"                          // queue defines broker payloads
    "github.com/jevliu/learning-platform/internal/repository"                     // repository holds database models
    queue_publisher "github.com/jevliu/learning-platform/internal/service"        // queue_publisher emits cleanup events
)

// CreateClass handles POST /api/classes and creates a new class owned by the
// authenticated teacher
func (h *ContentHandler) CreateClass(c echo.Context) error { // begin CreateClass handler
    teacherID, err := getUserID(c) // extract the teacher ID from context
    if err != nil {                // check if the user ID was not available or invalid
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"}) // respond with unauthorized when user ID cannot be obtained
    }
    var body struct { // anonymous struct to bind incoming JSON
        Name        string `json:"name"`        // Name is the only required field for a class
        Description string `json:"description"` // Description is optional free text
    }
    if err := c.Bind(&body); err != nil { // attempt to bind the request body into the struct
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"}) // return bad request when binding fails
    }
    name := strings.TrimSpace(body.Name) // trim spaces around the class name
    if name == "" {                      // ensure the name is not empty after trimming
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "class name is required"}) // respond with error when name is empty
    }
    cl := &repository.Class{ // instantiate a new class model
        Name:        name,                                  // assign the trimmed name
        Description: strings.TrimSpace(body.Description),   // assign the optional description
        TeacherID:   teacherID,                             // assign the owning teacher
    }
    if err := h.Classes.Create(c.Request().Context(), cl); err != nil { // delegate creation to the repository
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create class"}) // respond with internal error on failure
    }
    return c.JSON(http.StatusCreated, cl) // return 201 and the created class on success
}

// ListClasses handles GET /api/classes and returns all classes, newest first
func (h *ContentHandler) ListClasses(c echo.Context) error { // begin ListClasses handler
    items, err := h.Classes.List(c.Request().Context()) // fetch all classes
    if err != nil {                                     // handle repository errors
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"}) // respond with internal server error
    }
    if items == nil { // normalize a nil slice to an empty JSON array
        items = []*repository.Class{}
    }
    return c.JSON(http.StatusOK, items) // return the list as a JSON array
}

// DeleteClass handles DELETE /api/classes/:id. It removes the class together
// with its materials, videos and notes, then deletes the stored material
// files from disk. A 404 Not Found is returned when the class does not exist.
func (h *ContentHandler) DeleteClass(c echo.Context) error {
    if _, err := getUserID(c); err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    filePaths, err := h.Classes.Delete(c.Request().Context(), id)
    if err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "class not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    // The rows are gone; file removal is cleanup. Failures are handed to the
    // orphan sweeper instead of failing the request.
    for _, p := range filePaths {
        if err := h.Files.Remove(p); err != nil {
            log.Printf("class delete: remove file %s failed: %v", p, err)
            _ = queue_publisher.PublishOrphanedFile(c.Request().Context(), queue.OrphanedFileEvent{
                StoredName: p,
                Reason:     "class delete cleanup failed",
                OccurredAt: time.Now().UTC().Format(time.RFC3339),
            })
        }
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "class deleted"})
}
