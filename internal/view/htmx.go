package view

import "github.com/labstack/echo/v4"

const (
	HeaderHXRequest = "HX-Request"
	HeaderHXBoosted = "HX-Boosted"
	HeaderHXTarget  = "HX-Target"
)

// IsHTMX reports whether the request was issued by htmx and wants a fragment.
// Boosted navigations want the full page.
func IsHTMX(c echo.Context) bool {
	h := c.Request().Header
	return h.Get(HeaderHXRequest) == "true" && h.Get(HeaderHXBoosted) != "true"
}
