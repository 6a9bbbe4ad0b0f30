package apiclient

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
)

type formField struct {
	name  string
	value string
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeMultipart writes the file as the "file" part followed by fields. The
// part keeps the upload's own content type.
func encodeMultipart(file Upload, fields []formField) ([]byte, string, error) {
	if file.Content == nil {
		return nil, "", errors.New("upload has no content")
	}
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name="file"; filename="%s"`, quoteEscaper.Replace(file.Filename)))
	h.Set("Content-Type", contentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}
	if _, err := io.Copy(part, file.Content); err != nil {
		return nil, "", err
	}

	for _, f := range fields {
		if err := w.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), w.FormDataContentType(), nil
}
