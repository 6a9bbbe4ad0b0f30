package theme

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"
)

type contextKey struct{}

// ErrOutsideProvider is returned when the active theme is read from a context
// that did not pass through Provider.
var ErrOutsideProvider = errors.New("theme: FromContext called outside theme.Provider")

// Provider resolves the theme of every request from its path and makes it
// available to downstream handlers. For htmx-boosted navigations, where the
// document head is not swapped, the palette is also published through the
// HX-Trigger response header.
func Provider() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			active := ResolveActive(req.URL.Path)
			c.SetRequest(req.WithContext(withActive(req.Context(), active)))

			if req.Header.Get(headerHXBoosted) == "true" {
				if trigger, err := TriggerHeader(active); err == nil {
					c.Response().Header().Set(headerHXTrigger, trigger)
				}
			}
			return next(c)
		}
	}
}

func withActive(ctx context.Context, active Active) context.Context {
	return context.WithValue(ctx, contextKey{}, active)
}

// FromContext returns the theme resolved by Provider for ctx.
func FromContext(ctx context.Context) (Active, error) {
	active, ok := ctx.Value(contextKey{}).(Active)
	if !ok {
		return Active{}, ErrOutsideProvider
	}
	return active, nil
}

// MustFromContext is like FromContext but panics outside Provider.
func MustFromContext(ctx context.Context) Active {
	active, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return active
}
