package handler // handler package contains video link management handlers

import (
    "net/http" // http provides status code constants
    "strings"  // strings offers trimming utilities

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers

    "github.com/jevliu/learning-platform/internal/repository" // repository holds database models
)

// ListVideos handles GET /api/classes/:classId/videos
func (h *ContentHandler) ListVideos(c echo.Context) error {
    classID, err := pathID(c, "classId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid class id"})
    }
    items, err := h.Videos.ListByClass(c.Request().Context(), classID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if items == nil {
        items = []*repository.Video{}
    }
    return c.JSON(http.StatusOK, items)
}

// CreateVideo handles POST /api/classes/:classId/videos. A video is only a
// link to an external URL; nothing is downloaded or validated beyond the
// required fields.
func (h *ContentHandler) CreateVideo(c echo.Context) error {
    if _, err := getUserID(c); err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    classID, err := pathID(c, "classId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid class id"})
    }
    var body struct {
        Title       string `json:"title"`
        Description string `json:"description"`
        VideoURL    string `json:"video_url"`
    }
    if err := c.Bind(&body); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }
    title := strings.TrimSpace(body.Title)
    url := strings.TrimSpace(body.VideoURL)
    if title == "" || url == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and video_url are required"})
    }
    v := &repository.Video{
        ClassID:     classID,
        Title:       title,
        Description: strings.TrimSpace(body.Description),
        VideoURL:    url,
    }
    if err := h.Videos.Create(c.Request().Context(), v); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create video"})
    }
    return c.JSON(http.StatusCreated, v)
}

// DeleteVideo handles DELETE /api/classes/:classId/videos/:videoId. Returns
// 404 when the id does not exist, matching the other delete endpoints.
func (h *ContentHandler) DeleteVideo(c echo.Context) error {
    if _, err := getUserID(c); err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c, "videoId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    if err := h.Videos.Delete(c.Request().Context(), id); err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "video not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "video deleted"})
}
