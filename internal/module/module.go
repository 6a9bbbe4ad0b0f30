package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/registry"
)

// Module is a feature page mounted under its own URL prefix.
type Module interface {
	// Name is the page name used in logs, metrics and submission events.
	Name() string

	// Path is the URL prefix the server mounts the module's group on,
	// e.g. "/cover-letter".
	Path() string

	// Register publishes the module's services, such as its page state
	// store, in the registry.
	Register(reg *registry.Registry) error

	// Boot mounts the routes on router and starts background work, which
	// must stop when ctx is cancelled at shutdown.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown releases anything Boot did not tie to ctx.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op Register, Boot and Shutdown.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}
