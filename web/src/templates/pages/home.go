package pages

import (
	"github.com/nfrund/resumio/internal/nav"
	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/web/src/templates/components"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var featureBlurbs = map[string]string{
	"/builder":             "Write each section with AI suggestions for bullets, summaries and skills.",
	"/ats-checker":         "Score your resume the way applicant tracking systems read it.",
	"/cover-letter":        "Turn your resume and a job description into a tailored letter.",
	"/interview-questions": "Practice the technical and behavioral questions you are likely to get.",
	"/resume-roaster":      "Get a brutally honest, funny critique of your resume.",
}

// Home is the landing page.
func Home(p theme.Palette) g.Node {
	return Div(
		Section(
			Class("py-12 text-center"),
			H1(
				Class("text-4xl font-extrabold tracking-tight text-gray-900 sm:text-5xl"),
				g.Text("Land your next role with "),
				Span(Class("bg-clip-text text-transparent"), Style("background-image: linear-gradient(135deg, "+p.Primary+", "+p.Secondary+")"), g.Text("Resumio")),
			),
			P(Class("mx-auto mt-4 max-w-2xl text-lg text-gray-600"),
				g.Text("Build, score, and polish your resume, then walk into the interview prepared."),
			),
			Div(
				Class("mt-8"),
				A(
					Href("/builder"),
					Class("inline-flex items-center gap-2 rounded-lg px-6 py-3 text-sm font-semibold text-white shadow"),
					Style("background: linear-gradient(135deg, "+p.Primary+", "+p.Secondary+")"),
					g.Text("Start building"),
				),
			),
		),
		Section(
			Class("grid gap-6 sm:grid-cols-2 lg:grid-cols-3"),
			g.Map(nav.Links(), func(l nav.Link) g.Node {
				return featureCard(l)
			}),
		),
	)
}

func featureCard(l nav.Link) g.Node {
	return A(
		Href(l.Path),
		Class("group block rounded-2xl bg-white p-6 shadow-sm ring-1 ring-gray-100 transition hover:-translate-y-0.5 hover:shadow-md"),
		Div(Class("mb-3 text-gray-700"), components.Icon(l.Icon, 24, "")),
		H2(Class("text-lg font-semibold text-gray-900"), g.Text(l.Label)),
		P(Class("mt-1 text-sm text-gray-600"), g.Text(featureBlurbs[l.Path])),
	)
}
