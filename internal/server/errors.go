package server

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/handlers"
	"github.com/nfrund/resumio/internal/middleware"
	"github.com/nfrund/resumio/web/src/templates/pages"
)

// setupErrorHandling installs the HTTP error handler. Unknown routes get the
// themed 404 page, echo HTTP errors keep their code, and anything else is
// logged with a stack trace and answered with a 500.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := http.StatusText(code)
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if msg, ok := he.Message.(string); ok {
				message = msg
			}
		} else {
			middleware.FromContext(c.Request().Context()).Error("Internal Server Error (Unhandled)",
				"error", err,
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}

		var renderErr error
		switch {
		case code == http.StatusNotFound && errors.Is(err, echo.ErrNotFound):
			renderErr = handlers.NotFound(c)
		default:
			renderErr = handlers.RenderPage(c, code, http.StatusText(code), pages.Error(code, message))
		}
		if renderErr != nil {
			// Outside the theme provider, or the page failed to render.
			_ = c.String(code, message)
		}
	}
}
