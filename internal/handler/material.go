package handler // handler package contains material upload and management handlers

import (
    "context"  // background context for fire-and-forget publishing
    "log"      // log reports best-effort cleanup failures
    "net/http" // http provides status code constants
    "strings"  // strings offers trimming utilities
    "time"     // time stamps events

    "github.com/labstack/echo/v4" // echo is the web framework used for handlers

    "github.com/jevliu/learning-platform/internal/queue"                   // queue defines broker payloads
    "github.com/jevliu/learning-platform/internal/repository"              // repository holds database models
    queue_publisher "github.com/jevliu/learning-platform/internal/service" // queue_publisher emits upload events
    "github.com/jevliu/learning-platform/internal/storage"                 // storage validates and writes uploads
)

// ListMaterials handles GET /api/classes/:classId/materials
func (h *ContentHandler) ListMaterials(c echo.Context) error {
    classID, err := pathID(c, "classId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid class id"})
    }
    items, err := h.Materials.ListByClass(c.Request().Context(), classID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
    }
    if items == nil {
        items = []*repository.Material{}
    }
    return c.JSON(http.StatusOK, items)
}

// CreateMaterial handles POST /api/classes/:classId/materials. The request is
// multipart: a title, an optional description and exactly one file. The file
// is validated and written first, then the metadata row is inserted; if the
// insert fails the just-written file is removed again so neither side is
// left dangling. If even that removal fails, an uploads.orphaned event is
// published for the sweeper.
func (h *ContentHandler) CreateMaterial(c echo.Context) error {
    teacherID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    classID, err := pathID(c, "classId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid class id"})
    }
    title := strings.TrimSpace(c.FormValue("title"))
    description := strings.TrimSpace(c.FormValue("description"))
    fh, err := c.FormFile("file")
    if title == "" || err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and file are required"})
    }

    stored, err := h.Files.Save(fh)
    if err != nil {
        switch err {
        case storage.ErrExtNotAllowed:
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "file type not allowed"})
        case storage.ErrTooLarge:
            return c.JSON(http.StatusRequestEntityTooLarge, echo.Map{"error": "file too large"})
        default:
            return c.JSON(http.StatusInternalServerError, echo.Map{"error": "store file failed"})
        }
    }

    m := &repository.Material{
        ClassID:          classID,
        Title:            title,
        Description:      description,
        FilePath:         stored,
        OriginalFilename: storage.SanitizeName(fh.Filename),
    }
    if err := h.Materials.Create(c.Request().Context(), m); err != nil {
        // Compensate: the row never landed, so the file must go too.
        if rmErr := h.Files.Remove(stored); rmErr != nil {
            log.Printf("material create: compensating remove of %s failed: %v", stored, rmErr)
            _ = queue_publisher.PublishOrphanedFile(c.Request().Context(), queue.OrphanedFileEvent{
                StoredName: stored,
                Reason:     "metadata insert failed",
                OccurredAt: time.Now().UTC().Format(time.RFC3339),
            })
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create material"})
    }

    // Audit event, best effort. The request must not wait on the broker.
    ev := queue.MaterialUploadedEvent{
        MaterialID:       m.ID,
        ClassID:          m.ClassID,
        TeacherID:        teacherID,
        Title:            m.Title,
        StoredName:       m.FilePath,
        OriginalFilename: m.OriginalFilename,
        SizeBytes:        fh.Size,
        UploadedAt:       time.Now().UTC().Format(time.RFC3339),
    }
    go func() {
        ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
        defer cancel()
        _ = queue_publisher.PublishMaterialUploaded(ctx, ev)
    }()

    return c.JSON(http.StatusCreated, m)
}

// DeleteMaterial handles DELETE /api/classes/:classId/materials/:materialId.
// The row is removed first and then the stored file; a file that is already
// gone does not fail the request.
func (h *ContentHandler) DeleteMaterial(c echo.Context) error {
    if _, err := getUserID(c); err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c, "materialId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    filePath, err := h.Materials.Delete(c.Request().Context(), id)
    if err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "material not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    if err := h.Files.Remove(filePath); err != nil {
        log.Printf("material delete: remove file %s failed: %v", filePath, err)
        _ = queue_publisher.PublishOrphanedFile(c.Request().Context(), queue.OrphanedFileEvent{
            StoredName: filePath,
            Reason:     "material delete cleanup failed",
            OccurredAt: time.Now().UTC().Format(time.RFC3339),
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "material deleted"})
}
