// Package upload holds the single rule for which resume files the app accepts
// and turns form or CLI files into backend uploads.
package upload

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/spf13/afero"
)

// DefaultMaxBytes is the upload limit used when none is configured.
const DefaultMaxBytes int64 = 5 << 20

// Accept is the value for a file input's accept attribute. It mirrors Allowed.
const Accept = ".pdf,.txt,application/pdf,text/*"

var (
	ErrMissingFile     = errors.New("upload: no file provided")
	ErrUnsupportedType = errors.New("upload: only PDF or text files are supported")
	ErrTooLarge        = errors.New("upload: file exceeds the size limit")
)

// Allowed reports whether a MIME type is accepted: application/pdf or any text/*.
// Parameters such as charset are ignored.
func Allowed(contentType string) bool {
	mt := normalize(contentType)
	return mt == "application/pdf" || strings.HasPrefix(mt, "text/")
}

func normalize(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mt = contentType
	}
	return strings.ToLower(strings.TrimSpace(mt))
}

// FromForm validates a multipart file header and reads it into an Upload.
func FromForm(fh *multipart.FileHeader, maxBytes int64) (apiclient.Upload, error) {
	if fh == nil || fh.Filename == "" {
		return apiclient.Upload{}, ErrMissingFile
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if fh.Size > maxBytes {
		return apiclient.Upload{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, fh.Size)
	}
	f, err := fh.Open()
	if err != nil {
		return apiclient.Upload{}, fmt.Errorf("upload: opening %q: %w", fh.Filename, err)
	}
	defer f.Close()
	return build(fh.Filename, fh.Header.Get("Content-Type"), f, maxBytes)
}

// FromFile reads a local file through fs into an Upload. The content type is
// taken from the extension, falling back to sniffing.
func FromFile(fs afero.Fs, path string, maxBytes int64) (apiclient.Upload, error) {
	if path == "" {
		return apiclient.Upload{}, ErrMissingFile
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	info, err := fs.Stat(path)
	if err != nil {
		return apiclient.Upload{}, fmt.Errorf("upload: %w", err)
	}
	if info.IsDir() {
		return apiclient.Upload{}, fmt.Errorf("%w: %s is a directory", ErrMissingFile, path)
	}
	if info.Size() > maxBytes {
		return apiclient.Upload{}, fmt.Errorf("%w: %d bytes", ErrTooLarge, info.Size())
	}
	f, err := fs.Open(path)
	if err != nil {
		return apiclient.Upload{}, fmt.Errorf("upload: %w", err)
	}
	defer f.Close()
	return build(filepath.Base(path), mime.TypeByExtension(filepath.Ext(path)), f, maxBytes)
}

// build buffers the content, sniffing the type when the declared one is empty
// or generic.
func build(name, declared string, r io.Reader, maxBytes int64) (apiclient.Upload, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return apiclient.Upload{}, fmt.Errorf("upload: reading %q: %w", name, err)
	}
	if int64(len(data)) > maxBytes {
		return apiclient.Upload{}, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, maxBytes)
	}

	contentType := normalize(declared)
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = normalize(mimetype.Detect(data).String())
	}
	if !Allowed(contentType) {
		return apiclient.Upload{}, fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}
	return apiclient.Upload{
		Filename:    name,
		ContentType: contentType,
		Size:        int64(len(data)),
		Content:     bytes.NewReader(data),
	}, nil
}
