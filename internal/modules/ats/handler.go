package ats

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/feature"
	"github.com/nfrund/resumio/internal/handlers"
	"github.com/nfrund/resumio/internal/middleware"
	"github.com/nfrund/resumio/internal/pagestate"
	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/internal/upload"
	"github.com/nfrund/resumio/internal/view"
)

const (
	MsgSelectFirst = "Please upload your resume first"
	MsgUnsupported = "Please upload a PDF or text file"
	MsgTooLarge    = "Please upload a file of at most 5 MB"
	MsgFailed      = "Failed to score your resume. Please try again."

	pageTitle = "ATS Checker"
)

// Handler holds dependencies for the ATS checker page.
type Handler struct {
	backend   Backend
	maxBytes  int64
	submitter *feature.Submitter[apiclient.ATSResponse]
}

// NewHandler creates a new ATS checker handler.
func NewHandler(backend Backend, maxBytes int64, submitter *feature.Submitter[apiclient.ATSResponse]) *Handler {
	return &Handler{backend: backend, maxBytes: maxBytes, submitter: submitter}
}

// Get serves the page with the visitor's latest score.
func (h *Handler) Get(c echo.Context) error {
	return h.render(c, "", h.submitter.Store.Get(view.VisitorID(c)))
}

// Score uploads the resume, with the optional job description, for scoring.
func (h *Handler) Score(c echo.Context) error {
	ctx := c.Request().Context()
	visitor := view.VisitorID(c)
	jobDesc := strings.TrimSpace(c.FormValue("jobDesc"))

	file, err := handlers.FormUpload(c, "file", h.maxBytes)
	if err != nil {
		middleware.FromContext(ctx).Debug("Resume file rejected", "error", err)
		return h.render(c, jobDesc, h.submitter.Reject(ctx, visitor, rejection(err)))
	}

	state, current := h.submitter.Run(ctx, visitor, func(ctx context.Context) (apiclient.ATSResponse, error) {
		resp, err := h.backend.ScoreATSFromFile(ctx, file, jobDesc)
		if err != nil {
			return apiclient.ATSResponse{}, err
		}
		return *resp, nil
	})
	if !current {
		return c.NoContent(http.StatusNoContent)
	}
	return h.render(c, jobDesc, state)
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

func (h *Handler) render(c echo.Context, jobDesc string, state pagestate.State[apiclient.ATSResponse]) error {
	p := props{JobDesc: jobDesc, State: state, Palette: theme.MustFromContext(c.Request().Context()).Config.Palette}
	return handlers.RenderPageOrFragment(c, http.StatusOK, pageTitle, page(p), result(p))
}
