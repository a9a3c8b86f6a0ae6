package handler // handler defines http handlers

import (
    "context" // context types for the store interfaces
    "errors"  // errors provides sentinel values used in getUserID
    "strconv" // strconv converts strings to numeric types

    "github.com/labstack/echo/v4" // echo defines request context types

    "github.com/jevliu/learning-platform/internal/repository" // repository holds data access layer
    "github.com/jevliu/learning-platform/internal/storage"    // storage holds uploaded files on disk
)

// The store interfaces below describe exactly what the content handlers
// need from the repository layer. The MySQL repositories satisfy them;
// tests plug in in-memory doubles.

// ClassStore persists classes; Delete reports the stored file names of
// the class's deleted materials for disk cleanup.
type ClassStore interface {
    Create(ctx context.Context, cl *repository.Class) error
    List(ctx context.Context) ([]*repository.Class, error)
    Delete(ctx context.Context, id uint64) ([]string, error)
}

// MaterialStore persists material metadata; Delete reports the removed
// row's stored file name.
type MaterialStore interface {
    Create(ctx context.Context, m *repository.Material) error
    ListByClass(ctx context.Context, classID uint64) ([]*repository.Material, error)
    Delete(ctx context.Context, id uint64) (string, error)
}

// VideoStore persists video links.
type VideoStore interface {
    Create(ctx context.Context, v *repository.Video) error
    ListByClass(ctx context.Context, classID uint64) ([]*repository.Video, error)
    Delete(ctx context.Context, id uint64) error
}

// NoteStore persists notes.
type NoteStore interface {
    Create(ctx context.Context, n *repository.Note) error
    ListByClass(ctx context.Context, classID uint64) ([]*repository.Note, error)
    Delete(ctx context.Context, id uint64) error
}

// ContentHandler bundles the stores and the file store for the class-scoped
// content endpoints (classes, materials, videos, notes).
type ContentHandler struct {
    Classes   ClassStore     // Classes provides class persistence
    Materials MaterialStore  // Materials provides material persistence
    Videos    VideoStore     // Videos provides video persistence
    Notes     NoteStore      // Notes provides note persistence
    Files     *storage.Store // Files writes and removes uploaded files
}

// NewContentHandler constructs a new ContentHandler and panics if any dependency is nil
func NewContentHandler(classes ClassStore, materials MaterialStore, videos VideoStore, notes NoteStore, files *storage.Store) *ContentHandler {
    if classes == nil || materials == nil || videos == nil || notes == nil || files == nil { // check for nil dependencies
        panic("nil dependency passed to NewContentHandler") // panic when a dependency is missing
    }
    return &ContentHandler{
        Classes:   classes,
        Materials: materials,
        Videos:    videos,
        Notes:     notes,
        Files:     files,
    }
}

// getUserID extracts the user_id from echo.Context and converts it to uint64
func getUserID(c echo.Context) (uint64, error) { // begin getUserID helper
    v := c.Get("user_id") // fetch user_id from context
    switch t := v.(type) { // perform type switch on the value
    case uint64: // when already uint64
        return t, nil // return directly
    case int: // when stored as int
        return uint64(t), nil // convert to uint64
    case int64: // when stored as int64
        return uint64(t), nil // convert to uint64
    case float64: // when stored as float64 (JWT numeric claims decode this way)
        return uint64(t), nil // convert to uint64
    case string: // when stored as string
        if n, err := strconv.ParseUint(t, 10, 64); err == nil { // parse string to uint64
            return n, nil // return parsed number
        }
    } // end type switch
    return 0, errors.New("invalid user_id in context") // return error if value is missing or invalid
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint64, error) {
    return strconv.ParseUint(c.Param(name), 10, 64)
}
