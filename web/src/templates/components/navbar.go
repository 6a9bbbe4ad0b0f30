package components

import (
	"github.com/nfrund/resumio/internal/nav"
	"github.com/nfrund/resumio/internal/theme"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	navScrolledClass = "bg-white/80 backdrop-blur-md shadow-sm border-b border-gray-200/50"
	navTopClass      = "bg-white/50 backdrop-blur-sm border-b border-transparent"
	navIdleClass     = "text-gray-600 hover:text-gray-900 hover:bg-gray-50"
	mobileMenuID     = "mobile-menu"
)

// ActiveLinkStyle is the inline style of the active navigation link.
func ActiveLinkStyle(p theme.Palette) string {
	return "background-color: " + p.Primary + "15; color: " + p.Primary
}

// Navbar renders the sticky top navigation for currentPath.
func Navbar(currentPath string, active theme.Active) g.Node {
	palette := active.Config.Palette
	homeActive := nav.IsActive(nav.Home, currentPath)

	return Nav(
		Class("sticky top-0 z-50 transition-all duration-300 "+navTopClass),
		Data("scroll-threshold", "10"),
		Data("scrolled-class", navScrolledClass),
		Data("top-class", navTopClass),
		Div(
			Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			Div(
				Class("flex items-center justify-between h-16"),
				A(
					Href(nav.Home.Path),
					Class("flex items-center gap-2 group"),
					Div(
						Class("w-8 h-8 rounded-lg flex items-center justify-center text-white font-bold text-lg shadow-sm transition-transform group-hover:scale-105"),
						Style("background: linear-gradient(135deg, "+palette.Primary+", "+palette.Secondary+")"),
						g.Text("R"),
					),
					Span(
						Class("text-xl font-bold bg-clip-text text-transparent bg-gradient-to-r from-gray-900 to-gray-700"),
						g.Text("Resumio"),
					),
				),
				Div(
					Class("hidden md:flex items-center gap-1"),
					A(
						Href(nav.Home.Path),
						Title(nav.Home.Label),
						g.If(homeActive, Class("p-2 rounded-md transition-all duration-200 bg-gray-100 text-gray-900")),
						g.If(!homeActive, Class("p-2 rounded-md transition-all duration-200 text-gray-500 hover:text-gray-900 hover:bg-gray-50")),
						Icon(nav.Home.Icon, 20, ""),
					),
					Div(Class("h-6 w-px bg-gray-200 mx-2")),
					g.Map(nav.Links(), func(l nav.Link) g.Node {
						return navLink(l, currentPath, palette, false)
					}),
				),
				Div(
					Class("md:hidden flex items-center"),
					Button(
						Type("button"),
						Class("p-2 rounded-md text-gray-600 hover:text-gray-900 hover:bg-gray-100 transition-colors"),
						Data("menu-toggle", mobileMenuID),
						Aria("controls", mobileMenuID),
						Aria("expanded", "false"),
						Aria("label", "Toggle menu"),
						Icon("menu", 24, ""),
					),
				),
			),
		),
		Div(
			ID(mobileMenuID),
			Class("hidden md:hidden absolute top-16 left-0 right-0 bg-white border-b border-gray-200 shadow-lg"),
			Div(
				Class("px-4 pt-2 pb-6 space-y-1"),
				A(
					Href(nav.Home.Path),
					g.If(homeActive, Class("flex items-center gap-3 px-3 py-3 rounded-lg text-base font-medium transition-colors bg-gray-100 text-gray-900")),
					g.If(!homeActive, Class("flex items-center gap-3 px-3 py-3 rounded-lg text-base font-medium transition-colors "+navIdleClass)),
					Icon(nav.Home.Icon, 20, ""),
					g.Text(nav.Home.Label),
				),
				g.Map(nav.Links(), func(l nav.Link) g.Node {
					return navLink(l, currentPath, palette, true)
				}),
			),
		),
	)
}

func navLink(l nav.Link, currentPath string, palette theme.Palette, mobile bool) g.Node {
	active := nav.IsActive(l, currentPath)
	base := "flex items-center gap-2 px-3 py-2 rounded-md text-sm font-medium transition-all duration-200"
	iconSize := 16
	if mobile {
		base = "flex items-center gap-3 px-3 py-3 rounded-lg text-base font-medium transition-colors"
		iconSize = 20
	}
	if !active {
		base += " " + navIdleClass
	}
	iconClass := "stroke-2"
	if active {
		iconClass = "stroke-[2.5px]"
	}

	return A(
		Href(l.Path),
		Class(base),
		g.If(active, Style(ActiveLinkStyle(palette))),
		g.If(active, Aria("current", "page")),
		Icon(l.Icon, iconSize, iconClass),
		Span(g.Text(l.Label)),
	)
}
