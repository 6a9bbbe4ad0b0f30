package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// TemplToGomponentAdapter wraps a templ.Component to satisfy gomponents.Node,
// so templ components such as the theme style block can sit in gomponents
// layouts.
type TemplToGomponentAdapter struct {
	Component templ.Component
}

// Render implements gomponents.Node. gomponents does not pass a context, so
// the component renders with context.Background().
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	return a.Component.Render(context.Background(), w)
}

// AdaptTemplToGomponent converts a templ.Component into a gomponents node.
func AdaptTemplToGomponent(component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component}
}
