package middleware

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

type contextKey string

const loggerKey = contextKey("logger")

// Logger injects a request-scoped logger carrying the request id, method and
// path. It must run after the RequestID middleware.
func Logger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		logger := slog.Default().With(
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"method", req.Method,
			"path", req.URL.Path,
		)
		c.SetRequest(req.WithContext(WithLogger(req.Context(), logger)))
		return next(c)
	}
}

// Enrich adds attributes to the request-scoped logger for the rest of the
// request, e.g. the visitor id once it is known.
func Enrich(c echo.Context, args ...any) {
	req := c.Request()
	logger := FromContext(req.Context()).With(args...)
	c.SetRequest(req.WithContext(WithLogger(req.Context(), logger)))
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the request-scoped logger, or the default logger when
// ctx does not carry one.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}
