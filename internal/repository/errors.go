// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// handlers to distinguish between different failure scenarios without
// inspecting driver errors. For example, ErrNotFound indicates that a
// referenced record does not exist and should surface as an HTTP 404,
// while ErrHandleExists signals a duplicate login handle during
// registration.
package repository

import "errors"

// ErrNotFound is returned when a class, material, video or note cannot
// be located by its identifier. Handlers should translate this into an
// HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrHandleExists is returned when a registration collides with an
// existing login handle. Handlers should translate this into a 400
// response telling the caller the handle is taken.
var ErrHandleExists = errors.New("handle already exists")
