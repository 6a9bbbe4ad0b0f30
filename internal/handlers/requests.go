package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/upload"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator. Strings are validated after
// trimming, so whitespace-only input counts as missing.
func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return &CustomValidator{validator: v}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i any) error {
	return cv.validator.Struct(i)
}

// FailedFields lists the struct fields that failed validation, or nil when
// err is not a validation error.
func FailedFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, fe.Field())
	}
	return out
}

// FormUpload reads the file posted in field and applies the upload rule.
// A request without the field yields upload.ErrMissingFile.
func FormUpload(c echo.Context, field string, maxBytes int64) (apiclient.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return apiclient.Upload{}, upload.ErrMissingFile
		}
		return apiclient.Upload{}, err
	}
	return upload.FromForm(fh, maxBytes)
}
