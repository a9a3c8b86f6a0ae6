package handler // handler package contains note management handlers

import (
    "net/http" // http provides status code constants
    "strings"  // strings offers trimming utilities

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers

    "github.com/jevliu/learning-platform/internal/repository" // repository holds database models
)

// ListNotes handles GET /api/classes/:classId/notes
func (h *ContentHandler) ListNotes(c echo.Context) error {
    classID, err := pathID(c, "classId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid class id"})
    }
    items, err := h.Notes.ListByClass(c.Request().Context(), classID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if items == nil {
        items = []*repository.Note{}
    }
    return c.JSON(http.StatusOK, items)
}

// CreateNote handles POST /api/classes/:classId/notes. Content is stored
// verbatim; the client renders it as rich text.
func (h *ContentHandler) CreateNote(c echo.Context) error {
    if _, err := getUserID(c); err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    classID, err := pathID(c, "classId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid class id"})
    }
    var body struct {
        Title   string `json:"title"`
        Content string `json:"content"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    title := strings.TrimSpace(body.Title)
    if title == "" || strings.TrimSpace(body.Content) == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and content are required"})
    }
    n := &repository.Note{
        ClassID: classID,
        Title:   title,
        Content: body.Content,
    }
    if err := h.Notes.Create(c.Request().Context(), n); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create note"})
    }
    return c.JSON(http.StatusCreated, n)
}

// DeleteNote handles DELETE /api/classes/:classId/notes/:noteId. Returns 404
// when the id does not exist, matching the other delete endpoints.
func (h *ContentHandler) DeleteNote(c echo.Context) error {
    if _, err := getUserID(c); err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c, "noteId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    if err := h.Notes.Delete(c.Request().Context(), id); err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "note not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "note deleted"})
}
