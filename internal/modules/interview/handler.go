package interview

import (
	"context"
	"errors"
	"net/http"

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
	MsgRequired    = "Please upload your resume or paste it along with the job description"
	MsgCount       = "Please choose between 1 and 20 questions"
	MsgUnsupported = "Please upload a PDF or text file"
	MsgTooLarge    = "Please upload a file of at most 5 MB"
	MsgFailed      = "Failed to generate interview questions. Please try again."

	pageTitle = "Interview Prep"
)

type questionsState = pagestate.State[apiclient.InterviewQuestionsResponse]

// Handler holds dependencies for the interview prep page.
type Handler struct {
	backend   Backend
	maxBytes  int64
	submitter *feature.Submitter[apiclient.InterviewQuestionsResponse]
}

// NewHandler creates a new interview prep handler.
func NewHandler(backend Backend, maxBytes int64, submitter *feature.Submitter[apiclient.InterviewQuestionsResponse]) *Handler {
	return &Handler{backend: backend, maxBytes: maxBytes, submitter: submitter}
}

// Get serves the page with the visitor's latest questions.
func (h *Handler) Get(c echo.Context) error {
	return h.render(c, DefaultFields(), h.submitter.Store.Get(view.VisitorID(c)))
}

// Generate asks the backend for questions, from the uploaded resume when one
// is attached and from the pasted text otherwise.
func (h *Handler) Generate(c echo.Context) error {
	ctx := c.Request().Context()
	visitor := view.VisitorID(c)

	var fields Fields
	if err := c.Bind(&fields); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form").SetInternal(err)
	}
	fields.applyDefaults()
	if err := c.Validate(fields); err != nil {
		return h.render(c, fields, h.submitter.Reject(ctx, visitor, MsgCount))
	}

	file, err := handlers.FormUpload(c, "file", h.maxBytes)
	switch {
	case err == nil:
		return h.submit(c, fields, func(ctx context.Context) (*apiclient.InterviewQuestionsResponse, error) {
			return h.backend.GenerateInterviewQuestionsFromFile(ctx, fields.FileRequest(file))
		})
	case !errors.Is(err, upload.ErrMissingFile):
		middleware.FromContext(ctx).Debug("Resume file rejected", "error", err)
		return h.render(c, fields, h.submitter.Reject(ctx, visitor, rejection(err)))
	}

	if err := c.Validate(fields.Text()); err != nil {
		return h.render(c, fields, h.submitter.Reject(ctx, visitor, MsgRequired))
	}
	return h.submit(c, fields, func(ctx context.Context) (*apiclient.InterviewQuestionsResponse, error) {
		return h.backend.GenerateInterviewQuestions(ctx, fields.Request())
	})
}

func (h *Handler) submit(c echo.Context, fields Fields, call func(context.Context) (*apiclient.InterviewQuestionsResponse, error)) error {
	state, current := h.submitter.Run(c.Request().Context(), view.VisitorID(c), func(ctx context.Context) (apiclient.InterviewQuestionsResponse, error) {
		resp, err := call(ctx)
		if err != nil {
			return apiclient.InterviewQuestionsResponse{}, err
		}
		return *resp, nil
	})
	if !current {
		return c.NoContent(http.StatusNoContent)
	}
	return h.render(c, fields, state)
}

func rejection(err error) string {
	if errors.Is(err, upload.ErrTooLarge) {
		return MsgTooLarge
	}
	return MsgUnsupported
}

func (h *Handler) render(c echo.Context, fields Fields, state questionsState) error {
	p := props{Fields: fields, State: state, Palette: theme.MustFromContext(c.Request().Context()).Config.Palette}
	return handlers.RenderPageOrFragment(c, http.StatusOK, pageTitle, page(p), result(p))
}
