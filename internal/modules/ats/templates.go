package ats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/nav"
	"github.com/nfrund/resumio/internal/pagestate"
	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/internal/upload"
	"github.com/nfrund/resumio/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

const resultID = "ats-result"

type props struct {
	JobDesc string
	State   pagestate.State[apiclient.ATSResponse]
	Palette theme.Palette
}

func page(p props) g.Node {
	return Div(
		Class("mx-auto max-w-5xl"),
		components.PageHeader(nav.IconCheckCircle, "ATS Resume Checker", "See how applicant tracking systems read your resume.", p.Palette),
		Div(
			Class("grid gap-6 lg:grid-cols-5"),
			Div(Class("lg:col-span-2"), components.Card(form(p))),
			Div(Class("lg:col-span-3"), result(p)),
		),
	)
}

func form(p props) g.Node {
	return Form(
		Method("post"), Action("/ats-checker/score"), g.Attr("enctype", "multipart/form-data"),
		hx.Post("/ats-checker/score"),
		hx.Encoding("multipart/form-data"),
		hx.Target("#"+resultID),
		hx.Swap("outerHTML"),
		hx.Indicator("#ats-submit"),
		g.Attr("hx-disabled-elt", "#ats-submit button"),
		g.Attr("hx-sync", "this:replace"),
		Class("space-y-4"),
		Div(
			components.FieldLabel("ats-file", "Resume", true),
			components.FileInput("ats-file", "file", upload.Accept),
		),
		Div(
			components.FieldLabel("jobDesc", "Job Description", false),
			components.TextArea("jobDesc", "jobDesc", p.JobDesc, "Optional: paste the job posting to score keyword matches", 8, false),
		),
		Div(
			ID("ats-submit"),
			components.SubmitButton(components.SubmitProps{
				Label:     "Check My Resume",
				BusyLabel: "Scoring...",
				InFlight:  p.State.InFlight,
				Palette:   p.Palette,
			}),
		),
	)
}

func result(p props) g.Node {
	return Div(
		ID(resultID),
		Class("space-y-4"),
		Aria("live", "polite"),
		components.Alert(p.State.Error),
		g.If(p.State.HasResult, report(p.State.Result, p.Palette)),
		g.If(!p.State.HasResult && p.State.Error == "", components.Card(
			P(Class("text-sm text-gray-500"), g.Text("Upload your resume to see its ATS score.")),
		)),
	)
}

func report(r apiclient.ATSResponse, palette theme.Palette) g.Node {
	d := r.Breakdown.Details
	return g.Group{
		components.Card(
			Div(
				Class("flex items-center gap-6"),
				Div(
					Class("text-5xl font-bold"),
					Style("color: "+palette.Primary),
					Data("score", formatScore(r.Score)),
					g.Text(formatScore(r.Score)),
				),
				Div(
					P(Class("text-lg font-semibold text-gray-900"), g.Text(Grade(r.Score))),
					P(Class("text-sm text-gray-500"), g.Text("Overall ATS score out of 100")),
				),
			),
			Div(
				Class("mt-6 space-y-3"),
				g.Map(Bars(r.Breakdown), func(b Bar) g.Node { return bar(b, palette) }),
			),
		),
		components.Card(
			H2(Class("mb-3 text-lg font-semibold text-gray-900"), g.Text("Keywords")),
			P(Class("text-sm text-gray-700"),
				g.Textf("%d of %d job keywords found", d.Keywords.MatchedCount, d.Keywords.TotalKeywords),
			),
			g.If(len(d.Keywords.MissingKeywords) > 0, Div(
				Class("mt-3 flex flex-wrap gap-2"),
				g.Map(d.Keywords.MissingKeywords, func(k string) g.Node {
					return Span(Class("rounded-full bg-red-50 px-3 py-1 text-xs font-medium text-red-700"), g.Text(k))
				}),
			)),
		),
		components.Card(
			H2(Class("mb-3 text-lg font-semibold text-gray-900"), g.Text("Content")),
			Ul(
				Class("space-y-2 text-sm text-gray-700"),
				countItem("Action verbs", d.Verbs),
				countItem("Quantified results", d.Metrics),
				Li(g.Textf("Experience entries: %d", d.Experience.Count)),
				checkItem("Experience has descriptions", d.Experience.HasDescriptions),
				checkItem("Experience has dates", d.Experience.HasDates),
			),
		),
		g.If(len(d.Sections) > 0, components.Card(
			H2(Class("mb-3 text-lg font-semibold text-gray-900"), g.Text("Sections")),
			Ul(
				Class("grid grid-cols-2 gap-2 text-sm text-gray-700"),
				g.Map(Sections(d), func(s SectionCheck) g.Node { return checkItem(sectionLabel(s.Name), s.Present) }),
			),
		)),
		g.If(len(r.Tips) > 0, components.Card(
			H2(Class("mb-3 text-lg font-semibold text-gray-900"), g.Text("Tips")),
			Ul(
				Class("list-disc space-y-1 pl-5 text-sm text-gray-700"),
				g.Map(r.Tips, func(tip string) g.Node { return Li(g.Text(tip)) }),
			),
		)),
	}
}

func bar(b Bar, palette theme.Palette) g.Node {
	return Div(
		Div(
			Class("mb-1 flex justify-between text-sm"),
			Span(Class("font-medium text-gray-700"), g.Text(b.Label)),
			Span(Class("text-gray-500"), g.Text(formatScore(b.Score)+"%")),
		),
		Div(
			Class("h-2 w-full rounded-full bg-gray-100"),
			Div(
				Class("h-2 rounded-full"),
				Style("width: "+strconv.FormatFloat(clamp(b.Score), 'f', 0, 64)+"%; background-color: "+palette.Primary),
			),
		),
	)
}

func countItem(label string, c apiclient.CountDetails) g.Node {
	return Li(g.Textf("%s: %d (recommended %d)", label, c.Count, c.Recommended))
}

func checkItem(label string, ok bool) g.Node {
	icon, class := nav.Icon("x-circle"), "text-red-500"
	if ok {
		icon, class = nav.IconCheckCircle, "text-green-600"
	}
	return Li(
		Class("flex items-center gap-2"),
		components.Icon(icon, 16, class),
		g.Text(label),
	)
}

func sectionLabel(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	if name == "" {
		return name
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.0f", score)
}
