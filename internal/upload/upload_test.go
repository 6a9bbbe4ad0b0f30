package upload

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowed(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/pdf", true},
		{"text/plain", true},
		{"text/plain; charset=utf-8", true},
		{"text/markdown", true},
		{"TEXT/HTML", true},
		{"application/msword", false},
		{"image/png", false},
		{"application/octet-stream", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.want, Allowed(tt.contentType))
		})
	}
}

// fileHeader builds a real multipart.FileHeader by parsing a form.
func fileHeader(t *testing.T, name, contentType string, body []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+name+`"`)
	if contentType != "" {
		h.Set("Content-Type", contentType)
	}
	part, err := w.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(body)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	_, fh, err := req.FormFile("file")
	require.NoError(t, err)
	return fh
}

func TestFromForm(t *testing.T) {
	t.Run("text file", func(t *testing.T) {
		u, err := FromForm(fileHeader(t, "cv.txt", "text/plain", []byte("hello")), 0)
		require.NoError(t, err)
		assert.Equal(t, "cv.txt", u.Filename)
		assert.Equal(t, "text/plain", u.ContentType)
		assert.Equal(t, int64(5), u.Size)
		data, _ := io.ReadAll(u.Content)
		assert.Equal(t, "hello", string(data))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := FromForm(nil, 0)
		assert.ErrorIs(t, err, ErrMissingFile)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := FromForm(fileHeader(t, "cv.doc", "application/msword", []byte("x")), 0)
		assert.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("too large", func(t *testing.T) {
		_, err := FromForm(fileHeader(t, "cv.txt", "text/plain", bytes.Repeat([]byte("a"), 11)), 10)
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("sniffs octet-stream pdf", func(t *testing.T) {
		u, err := FromForm(fileHeader(t, "cv", "application/octet-stream", []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")), 0)
		require.NoError(t, err)
		assert.Equal(t, "application/pdf", u.ContentType)
	})
}

func TestFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/tmp/resume.txt", []byte("my resume"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/tmp/photo.png", []byte("\x89PNG\r\n\x1a\n"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/tmp/noext", []byte("just some plain text"), 0o644))

	u, err := FromFile(fs, "/tmp/resume.txt", 0)
	require.NoError(t, err)
	assert.Equal(t, "resume.txt", u.Filename)
	assert.Equal(t, "text/plain", u.ContentType)

	u, err = FromFile(fs, "/tmp/noext", 0)
	require.NoError(t, err)
	assert.Equal(t, "text/plain", u.ContentType)

	_, err = FromFile(fs, "/tmp/photo.png", 0)
	assert.ErrorIs(t, err, ErrUnsupportedType)

	_, err = FromFile(fs, "/tmp/resume.txt", 3)
	assert.ErrorIs(t, err, ErrTooLarge)

	_, err = FromFile(fs, "/tmp/missing.pdf", 0)
	assert.Error(t, err)

	_, err = FromFile(fs, "", 0)
	assert.ErrorIs(t, err, ErrMissingFile)
}
