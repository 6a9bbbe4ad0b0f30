package builder

import (
	"context"
	"net/http"
	"slices"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/feature"
	"github.com/nfrund/resumio/internal/handlers"
	"github.com/nfrund/resumio/internal/pagestate"
	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/internal/view"
)

const (
	MsgRequired = "Please choose a task and enter the text to improve"
	MsgInvalid  = "Please choose between 1 and 10 suggestions and a valid level"
	MsgFailed   = "Failed to get suggestions. Please try again."

	pageTitle = "Resume Builder"
)

// Handler holds dependencies for the builder page.
type Handler struct {
	backend   Backend
	submitter *feature.Submitter[[]string]
}

// NewHandler creates a new builder handler.
func NewHandler(backend Backend, submitter *feature.Submitter[[]string]) *Handler {
	return &Handler{backend: backend, submitter: submitter}
}

// Get serves the page with the visitor's latest suggestions.
func (h *Handler) Get(c echo.Context) error {
	return h.render(c, DefaultFields(), h.submitter.Store.Get(view.VisitorID(c)))
}

// Suggest asks the backend for suggestions.
func (h *Handler) Suggest(c echo.Context) error {
	ctx := c.Request().Context()
	visitor := view.VisitorID(c)

	var fields Fields
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	fields.Normalize()

	if err := c.Validate(fields); err != nil {
		msg := MsgInvalid
		failed := handlers.FailedFields(err)
		if slices.Contains(failed, "Task") || slices.Contains(failed, "SourceText") {
			msg = MsgRequired
		}
		return h.render(c, fields, h.submitter.Reject(ctx, visitor, msg))
	}

	state, current := h.submitter.Run(ctx, visitor, func(ctx context.Context) ([]string, error) {
		resp, err := h.backend.Suggest(ctx, fields.Request())
		if err != nil {
			return nil, err
		}
		return resp.Suggestions, nil
	})
	if !current {
		return c.NoContent(http.StatusNoContent)
	}
	return h.render(c, fields, state)
}

func (h *Handler) render(c echo.Context, fields Fields, state pagestate.State[[]string]) error {
	p := props{Fields: fields, State: state, Palette: theme.MustFromContext(c.Request().Context()).Config.Palette}
	return handlers.RenderPageOrFragment(c, http.StatusOK, pageTitle, page(p), result(p))
}
