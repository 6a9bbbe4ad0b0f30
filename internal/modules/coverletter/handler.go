package coverletter

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/feature"
	"github.com/nfrund/resumio/internal/handlers"
	"github.com/nfrund/resumio/internal/pagestate"
	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/internal/view"
)

const (
	MsgRequired = "Please fill in all required fields"
	MsgFailed   = "Failed to generate cover letter. Please try again."

	pageTitle = "Cover Letter"
)

// Handler holds dependencies for the cover letter page.
type Handler struct {
	backend   Backend
	submitter *feature.Submitter[string]
}

// NewHandler creates a new cover letter handler.
func NewHandler(backend Backend, submitter *feature.Submitter[string]) *Handler {
	return &Handler{backend: backend, submitter: submitter}
}

// Get serves the page with the visitor's latest letter.
func (h *Handler) Get(c echo.Context) error {
	state := h.submitter.Store.Get(view.VisitorID(c))
	return h.render(c, Fields{Tone: string(DefaultTone)}, state)
}

// Generate validates the form and asks the backend for a letter.
func (h *Handler) Generate(c echo.Context) error {
	ctx := c.Request().Context()
	visitor := view.VisitorID(c)

	var fields Fields
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	fields.Tone = string(ParseTone(fields.Tone))

	if err := c.Validate(fields); err != nil {
		return h.render(c, fields, h.submitter.Reject(ctx, visitor, MsgRequired))
	}

	state, current := h.submitter.Run(ctx, visitor, func(ctx context.Context) (string, error) {
		resp, err := h.backend.GenerateCoverLetter(ctx, fields.Request())
		if err != nil {
			return "", err
		}
		return resp.Content, nil
	})
	if !current {
		return c.NoContent(http.StatusNoContent)
	}
	return h.render(c, fields, state)
}

func (h *Handler) render(c echo.Context, fields Fields, state pagestate.State[string]) error {
	p := props{Fields: fields, State: state, Palette: theme.MustFromContext(c.Request().Context()).Config.Palette}
	return handlers.RenderPageOrFragment(c, http.StatusOK, pageTitle, page(p), result(p))
}
