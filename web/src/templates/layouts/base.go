package layouts

import (
	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/internal/view"
	"github.com/nfrund/resumio/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// PageMeta is what the layout needs to know about the current request.
type PageMeta struct {
	Title  string
	Path   string
	Active theme.Active
	Flash  view.FlashData
}

// Document is the full HTML document: head with the theme variables, the navbar
// and the page content.
func Document(meta PageMeta, content g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(CalculateTitle(meta.Title))),
				view.AdaptTemplToGomponent(theme.StyleBlock(meta.Active.Config)),
				Script(Src("https://cdn.tailwindcss.com")),
				Script(Src("https://unpkg.com/htmx.org@2.0.4"), Defer()),
				Script(Src("https://unpkg.com/lucide@0.468.0/dist/umd/lucide.min.js"), Defer()),
				Link(Rel("stylesheet"), Href("/static/app.css")),
				Script(Src("/static/app.js"), Defer()),
			),
			Body(
				Class("min-h-screen bg-gray-50 text-gray-900 antialiased"),
				g.Attr("data-theme", meta.Active.Theme.String()),
				hx.Boost("true"),
				components.Navbar(meta.Path, meta.Active),
				Main(
					ID("content"),
					Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-10"),
					components.Flash(meta.Flash),
					content,
				),
				Footer(
					Class("border-t border-gray-200 py-6 text-center text-sm text-gray-500"),
					g.Text("Resumio helps you build, score and polish your resume."),
				),
			),
		),
	)
}
