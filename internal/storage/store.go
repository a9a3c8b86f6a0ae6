// Package storage implements the local-disk file store backing material
// uploads. Files are written under a single configured directory with
// generated names; the original client file name is never used on disk.
package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrExtNotAllowed is returned by Save when the file extension is not in
// the configured allow-list.
var ErrExtNotAllowed = errors.New("file type not allowed")

// ErrTooLarge is returned by Save when the declared file size exceeds the
// configured maximum. The check runs before anything is written to disk.
var ErrTooLarge = errors.New("file too large")

// Store writes uploaded files into a directory and removes them again.
type Store struct {
	dir      string
	allowed  map[string]bool
	maxBytes int64
}

// New creates the upload directory if needed and returns a Store. The
// extension allow-list is matched case-insensitively against the suffix
// after the last dot of the client file name.
func New(dir string, allowedExts []string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	allowed := make(map[string]bool, len(allowedExts))
	for _, e := range allowedExts {
		e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
		if e != "" {
			allowed[e] = true
		}
	}
	return &Store{dir: dir, allowed: allowed, maxBytes: maxBytes}, nil
}

// Dir returns the directory files are stored under.
func (s *Store) Dir() string { return s.dir }

// MaxBytes returns the configured upload size limit.
func (s *Store) MaxBytes() int64 { return s.maxBytes }

// Ext extracts the lower-cased extension (without the dot) from a client
// file name, and reports whether it is in the allow-list.
func (s *Store) Ext(name string) (string, bool) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	return ext, ext != "" && s.allowed[ext]
}

// Save validates and writes an uploaded file, returning the generated
// storage name. The name combines a millisecond timestamp with a UUID so
// concurrent uploads of identically named files never collide. Validation
// failures and the size check happen before the destination file is created.
func (s *Store) Save(fh *multipart.FileHeader) (string, error) {
	ext, ok := s.Ext(fh.Filename)
	if !ok {
		return "", ErrExtNotAllowed
	}
	if s.maxBytes > 0 && fh.Size > s.maxBytes {
		return "", ErrTooLarge
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	name := fmt.Sprintf("file-%d-%s.%s", time.Now().UnixMilli(), uuid.NewString(), ext)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		_ = os.Remove(filepath.Join(s.dir, name)) // partial write, do not leave junk
		return "", err
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(filepath.Join(s.dir, name))
		return "", err
	}
	return name, nil
}

// Remove deletes a stored file by its generated name. A missing file is
// not an error: record deletion must succeed even when the file is gone.
// The name is reduced to its base to keep callers from escaping the
// upload directory.
func (s *Store) Remove(name string) error {
	if name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// SanitizeName maps every byte outside [a-zA-Z0-9.-] to an underscore.
// The result is only used for display; the stored name is generated.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
