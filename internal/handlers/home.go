package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/web/src/templates/pages"
)

// HomeHandler handles requests for the home page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet handles the GET request for the home page.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	active := theme.MustFromContext(c.Request().Context())
	return RenderPage(c, http.StatusOK, "", pages.Home(active.Config.Palette))
}

// NotFound renders the themed 404 page.
func NotFound(c echo.Context) error {
	return RenderPage(c, http.StatusNotFound, "Not Found", pages.NotFound(c.Request().URL.Path))
}
