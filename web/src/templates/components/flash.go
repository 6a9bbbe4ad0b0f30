package components

import (
	"github.com/nfrund/resumio/internal/view"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Flash renders one-shot messages left by a redirect.
func Flash(data view.FlashData) g.Node {
	if data.Empty() {
		return nil
	}
	return Div(
		ID("flash"),
		Class("mb-6 space-y-2"),
		g.Map(data.Success, func(msg string) g.Node {
			return Div(Class("rounded-lg border border-green-200 bg-green-50 px-4 py-3 text-sm text-green-800"), Role("status"), g.Text(msg))
		}),
		g.Map(data.Error, func(msg string) g.Node {
			return Div(Class("rounded-lg border border-red-200 bg-red-50 px-4 py-3 text-sm text-red-800"), Role("alert"), g.Text(msg))
		}),
	)
}
