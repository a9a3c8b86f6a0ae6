package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a real multipart.FileHeader the way Echo would hand it
// to a handler.
func fileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", name)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["file"][0]
}

func newStore(t *testing.T, maxBytes int64) *Store {
	t.Helper()
	s, err := New(t.TempDir(), []string{"pdf", "TXT", ".png"}, maxBytes)
	require.NoError(t, err)
	return s
}

func TestSaveAndRemove(t *testing.T) {
	s := newStore(t, 1024)
	fh := fileHeader(t, "lecture notes.PDF", []byte("%PDF-1.4 fake"))

	name, err := s.Save(fh)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(name, "file-"))
	assert.True(t, strings.HasSuffix(name, ".pdf"))
	assert.NotContains(t, name, " ")

	data, err := os.ReadFile(filepath.Join(s.Dir(), name))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), data)

	require.NoError(t, s.Remove(name))
	_, err = os.Stat(filepath.Join(s.Dir(), name))
	assert.True(t, os.IsNotExist(err))

	// removing again is a no-op, not an error
	assert.NoError(t, s.Remove(name))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	s := newStore(t, 1024)
	a, err := s.Save(fileHeader(t, "same.txt", []byte("a")))
	require.NoError(t, err)
	b, err := s.Save(fileHeader(t, "same.txt", []byte("b")))
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	s := newStore(t, 1024)
	for _, name := range []string{"shell.sh", "noext", "archive.tar.gz", "double.pdf.exe"} {
		_, err := s.Save(fileHeader(t, name, []byte("x")))
		assert.ErrorIs(t, err, ErrExtNotAllowed, "file %q must be rejected", name)
	}
	// nothing may be written on rejection
	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	s := newStore(t, 8)
	_, err := s.Save(fileHeader(t, "big.txt", []byte("123456789")))
	assert.ErrorIs(t, err, ErrTooLarge)

	entries, err := os.ReadDir(s.Dir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtCaseInsensitive(t *testing.T) {
	s := newStore(t, 1024)
	ext, ok := s.Ext("Slides.PnG")
	assert.True(t, ok)
	assert.Equal(t, "png", ext)

	_, ok = s.Ext("evil.exe")
	assert.False(t, ok)
}

func TestRemoveIgnoresDirectoryEscapes(t *testing.T) {
	s := newStore(t, 1024)
	outside := filepath.Join(filepath.Dir(s.Dir()), "victim.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))

	require.NoError(t, s.Remove("../victim.txt"))
	_, err := os.Stat(outside)
	assert.NoError(t, err, "file outside the store must not be touched")
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report.pdf", "report.pdf"},
		{"my notes (v2).docx", "my_notes__v2_.docx"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"课件.pdf", "__.pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeName(tt.in), "input %q", tt.in)
	}
}
