package components

import (
	"strconv"

	"github.com/nfrund/resumio/internal/nav"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Icon renders a lucide placeholder that app.js turns into an inline SVG.
func Icon(name nav.Icon, size int, class string) g.Node {
	return I(
		Data("lucide", string(name)),
		g.Attr("width", strconv.Itoa(size)),
		g.Attr("height", strconv.Itoa(size)),
		g.If(class != "", Class(class)),
		Aria("hidden", "true"),
	)
}
