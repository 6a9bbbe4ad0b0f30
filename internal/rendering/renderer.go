package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/middleware"
)

// Renderer renders templ components and gomponents nodes.
type Renderer interface {
	// RenderComponent renders a component to bytes, e.g. for out-of-band fragments.
	RenderComponent(ctx context.Context, component any) ([]byte, error)

	// RenderPage writes a component as the full HTML response.
	RenderPage(c echo.Context, status int, component any) error
}

// UniversalRenderer handles every supported component type.
type UniversalRenderer struct{}

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode is the shape of gomponents.Node.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (tr *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

// RenderComponent implements the Renderer interface.
func (tr *UniversalRenderer) RenderComponent(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tr.render(ctx, component, &buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderPage renders into a buffer first so a failing component never leaves
// a half-written 200 response.
func (tr *UniversalRenderer) RenderPage(c echo.Context, status int, component any) error {
	ctx := c.Request().Context()
	body, err := tr.RenderComponent(ctx, component)
	if err != nil {
		middleware.FromContext(ctx).Error("Failed to render page", "error", err)
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer for c.Render(status, name, component).
func (tr *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return tr.render(c.Request().Context(), data, w)
}
