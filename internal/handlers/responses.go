package handlers

import (
	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/internal/view"
	"github.com/nfrund/resumio/web/src/templates/layouts"
	g "maragu.dev/gomponents"
)

// RenderPage wraps content in the base layout for the current request and
// writes it with status. The theme comes from theme.Provider.
func RenderPage(c echo.Context, status int, title string, content g.Node) error {
	active, err := theme.FromContext(c.Request().Context())
	if err != nil {
		return err
	}
	meta := layouts.PageMeta{
		Title:  title,
		Path:   c.Request().URL.Path,
		Active: active,
		Flash:  view.GetFlashData(c),
	}
	return c.Render(status, "", layouts.Document(meta, content))
}

// RenderFragment writes a partial used as an htmx swap target.
func RenderFragment(c echo.Context, status int, fragment g.Node) error {
	return c.Render(status, "", fragment)
}

// RenderPageOrFragment answers htmx requests with fragment and everything else
// with the full page.
func RenderPageOrFragment(c echo.Context, status int, title string, page, fragment g.Node) error {
	if view.IsHTMX(c) {
		return RenderFragment(c, status, fragment)
	}
	return RenderPage(c, status, title, page)
}
