package coverletter

import (
	"github.com/nfrund/resumio/internal/nav"
	"github.com/nfrund/resumio/internal/pagestate"
	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

const resultID = "cover-letter-result"

type props struct {
	Fields  Fields
	State   pagestate.State[string]
	Palette theme.Palette
}

func page(p props) g.Node {
	return Div(
		Class("mx-auto max-w-5xl"),
		components.PageHeader(nav.IconMail, "Cover Letter Generator", "Turn your resume and a job posting into a tailored cover letter.", p.Palette),
		Div(
			Class("grid gap-6 lg:grid-cols-2"),
			components.Card(form(p)),
			result(p),
		),
	)
}

func form(p props) g.Node {
	tones := make([]components.SelectOption, 0, len(Tones))
	for _, t := range Tones {
		tones = append(tones, components.SelectOption{Value: string(t), Label: string(t)})
	}
	return Form(
		Method("post"), Action("/cover-letter/generate"),
		hx.Post("/cover-letter/generate"),
		hx.Target("#"+resultID),
		hx.Swap("outerHTML"),
		hx.Indicator("#cover-letter-submit"),
		g.Attr("hx-disabled-elt", "#cover-letter-submit button"),
		g.Attr("hx-sync", "this:replace"),
		Class("space-y-4"),
		Div(
			components.FieldLabel("companyName", "Company Name", true),
			components.TextInput("companyName", "companyName", p.Fields.CompanyName, "Acme Corp", true),
		),
		Div(
			components.FieldLabel("jobRole", "Job Role", true),
			components.TextInput("jobRole", "jobRole", p.Fields.JobRole, "Senior Backend Engineer", true),
		),
		Div(
			components.FieldLabel("tone", "Tone", false),
			components.SelectInput("tone", "tone", p.Fields.Tone, tones),
		),
		Div(
			components.FieldLabel("resumeText", "Your Resume", true),
			components.TextArea("resumeText", "resumeText", p.Fields.ResumeText, "Paste your resume here", 8, true),
		),
		Div(
			components.FieldLabel("jobDescription", "Job Description", true),
			components.TextArea("jobDescription", "jobDescription", p.Fields.JobDescription, "Paste the job description here", 8, true),
		),
		Div(
			ID("cover-letter-submit"),
			components.SubmitButton(components.SubmitProps{
				Label:     "Generate Cover Letter",
				BusyLabel: "Generating...",
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
		g.If(p.State.HasResult, components.Card(
			Div(
				Class("mb-4 flex items-center justify-between"),
				H2(Class("text-lg font-semibold text-gray-900"), g.Text("Your Cover Letter")),
				components.CopyButton(p.State.Result),
			),
			components.Preformatted(p.State.Result),
		)),
		g.If(!p.State.HasResult && p.State.Error == "", components.Card(
			P(Class("text-sm text-gray-500"), g.Text("Your generated letter will appear here.")),
		)),
	)
}
