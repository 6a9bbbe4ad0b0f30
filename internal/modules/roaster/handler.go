package roaster

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/feature"
	"github.com/nfrund/resumio/internal/handlers"
	"github.com/nfrund/resumio/internal/middleware"
	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/internal/upload"
	"github.com/nfrund/resumio/internal/view"
)

const (
	MsgUnsupported = "Please upload a PDF or text file"
	MsgTooLarge    = "Please upload a file of at most 5 MB"
	MsgSelectFirst = "Please select a file first"
	MsgFailed      = "Failed to roast your resume. Please try again."
	MsgReset       = "Ready for another resume."

	// DownloadName is the file name of the roast download.
	DownloadName = "resume-roast.txt"

	pageTitle = "Resume Roaster"
)

// Handler holds dependencies for the roaster page.
type Handler struct {
	backend   Backend
	maxBytes  int64
	submitter *feature.Submitter[string]
}

// NewHandler creates a new roaster handler.
func NewHandler(backend Backend, maxBytes int64, submitter *feature.Submitter[string]) *Handler {
	return &Handler{backend: backend, maxBytes: maxBytes, submitter: submitter}
}

// Get serves the page with the visitor's latest roast.
func (h *Handler) Get(c echo.Context) error {
	return h.renderPage(c, props{State: h.submitter.Store.Get(view.VisitorID(c))})
}

// Select validates a newly chosen file. An accepted file clears the previous
// roast and error; a rejected one disables the upload action.
func (h *Handler) Select(c echo.Context) error {
	ctx := c.Request().Context()
	visitor := view.VisitorID(c)

	file, err := handlers.FormUpload(c, "file", h.maxBytes)
	if err != nil {
		p := props{State: h.submitter.Reject(ctx, visitor, rejection(err)), Rejected: true}
		logRejection(c, err)
		return h.renderSelection(c, p)
	}
	p := props{State: h.submitter.Store.Reset(visitor), Selected: &file}
	return h.renderSelection(c, p)
}

// Roast re-validates the file and sends it to the backend.
func (h *Handler) Roast(c echo.Context) error {
	ctx := c.Request().Context()
	visitor := view.VisitorID(c)

	file, err := handlers.FormUpload(c, "file", h.maxBytes)
	if err != nil {
		logRejection(c, err)
		return h.renderResult(c, props{State: h.submitter.Reject(ctx, visitor, rejection(err))})
	}

	state, current := h.submitter.Run(ctx, visitor, func(ctx context.Context) (string, error) {
		resp, err := h.backend.RoastResume(ctx, file)
		if err != nil {
			return "", err
		}
		return resp.Roast, nil
	})
	if !current {
		return c.NoContent(http.StatusNoContent)
	}
	return h.renderResult(c, props{State: state, Selected: &file})
}

// Download serves the current roast as a text attachment.
func (h *Handler) Download(c echo.Context) error {
	state := h.submitter.Store.Get(view.VisitorID(c))
	if !state.HasResult {
		return echo.NewHTTPError(http.StatusNotFound, "no roast to download")
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", DownloadName))
	return c.Blob(http.StatusOK, echo.MIMETextPlainCharsetUTF8, []byte(state.Result))
}

// Reset clears the file, roast and error.
func (h *Handler) Reset(c echo.Context) error {
	state := h.submitter.Store.Reset(view.VisitorID(c))
	if !view.IsHTMX(c) {
		view.SetFlashSuccess(c, MsgReset)
		return c.Redirect(http.StatusSeeOther, "/resume-roaster")
	}
	p := h.withPalette(c, props{State: state})
	return handlers.RenderFragment(c, http.StatusOK, page(p))
}

func rejection(err error) string {
	switch {
	case errors.Is(err, upload.ErrMissingFile):
		return MsgSelectFirst
	case errors.Is(err, upload.ErrTooLarge):
		return MsgTooLarge
	default:
		return MsgUnsupported
	}
}

func logRejection(c echo.Context, err error) {
	if errors.Is(err, upload.ErrMissingFile) || errors.Is(err, upload.ErrTooLarge) || errors.Is(err, upload.ErrUnsupportedType) {
		middleware.FromContext(c.Request().Context()).Debug("Resume file rejected", "error", err)
		return
	}
	middleware.FromContext(c.Request().Context()).Warn("Failed to read resume file", "error", err)
}

func (h *Handler) withPalette(c echo.Context, p props) props {
	p.Palette = theme.MustFromContext(c.Request().Context()).Config.Palette
	return p
}

func (h *Handler) renderPage(c echo.Context, p props) error {
	return handlers.RenderPage(c, http.StatusOK, pageTitle, page(h.withPalette(c, p)))
}

func (h *Handler) renderSelection(c echo.Context, p props) error {
	p = h.withPalette(c, p)
	return handlers.RenderPageOrFragment(c, http.StatusOK, pageTitle, page(p), selectionUpdate(p))
}

func (h *Handler) renderResult(c echo.Context, p props) error {
	p = h.withPalette(c, p)
	return handlers.RenderPageOrFragment(c, http.StatusOK, pageTitle, page(p), result(p))
}

// FileSize formats a size in kilobytes with two decimals.
func FileSize(f apiclient.Upload) string {
	return fmt.Sprintf("%.2f KB", float64(f.Size)/1024)
}
