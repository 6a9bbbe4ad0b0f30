package pages

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// NotFound is rendered for unknown routes.
func NotFound(path string) g.Node {
	return Section(
		Class("py-24 text-center"),
		P(Class("text-sm font-semibold uppercase tracking-wide text-gray-500"), g.Text("404")),
		H1(Class("mt-2 text-3xl font-bold text-gray-900"), g.Text("Page not found")),
		P(Class("mt-4 text-gray-600"), g.Textf("Nothing lives at %s.", path)),
		A(Href("/"), Class("mt-8 inline-block text-sm font-semibold text-[var(--theme-primary)] hover:underline"), g.Text("Back to home")),
	)
}

// Error is rendered for unexpected failures.
func Error(code int, message string) g.Node {
	return Section(
		Class("py-24 text-center"),
		P(Class("text-sm font-semibold uppercase tracking-wide text-gray-500"), g.Textf("%d", code)),
		H1(Class("mt-2 text-3xl font-bold text-gray-900"), g.Text(message)),
		A(Href("/"), Class("mt-8 inline-block text-sm font-semibold text-[var(--theme-primary)] hover:underline"), g.Text("Back to home")),
	)
}
