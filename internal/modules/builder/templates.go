package builder

import (
	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/nav"
	"github.com/nfrund/resumio/internal/pagestate"
	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

const resultID = "builder-result"

var tasks = []components.SelectOption{
	{Value: string(apiclient.TaskBullet), Label: "Write bullet points"},
	{Value: string(apiclient.TaskSummary), Label: "Write a summary"},
	{Value: string(apiclient.TaskSkills), Label: "Suggest skills"},
	{Value: string(apiclient.TaskRewrite), Label: "Rewrite text"},
}

var levels = []components.SelectOption{
	{Value: "", Label: "Any level"},
	{Value: string(apiclient.LevelIntern), Label: "Intern"},
	{Value: string(apiclient.LevelEntry), Label: "Entry"},
	{Value: string(apiclient.LevelJunior), Label: "Junior"},
	{Value: string(apiclient.LevelMid), Label: "Mid"},
	{Value: string(apiclient.LevelSenior), Label: "Senior"},
}

type props struct {
	Fields  Fields
	State   pagestate.State[[]string]
	Palette theme.Palette
}

func page(p props) g.Node {
	return Div(
		Class("mx-auto max-w-5xl"),
		components.PageHeader(nav.IconFileText, "Resume Builder", "Get suggestions for bullet points, summaries and skills.", p.Palette),
		Div(
			Class("grid gap-6 lg:grid-cols-2"),
			components.Card(form(p)),
			result(p),
		),
	)
}

func form(p props) g.Node {
	f := p.Fields
	return Form(
		Method("post"), Action("/builder/suggest"),
		hx.Post("/builder/suggest"),
		hx.Target("#"+resultID),
		hx.Swap("outerHTML"),
		hx.Indicator("#builder-submit"),
		g.Attr("hx-disabled-elt", "#builder-submit button"),
		g.Attr("hx-sync", "this:replace"),
		Class("space-y-4"),
		Div(
			components.FieldLabel("task", "Task", true),
			components.SelectInput("task", "task", f.Task, tasks),
		),
		Div(
			components.FieldLabel("sourceText", "Your Text", true),
			components.TextArea("sourceText", "sourceText", f.SourceText, "Describe what you did, or paste text to improve", 6, true),
		),
		Div(
			Class("grid grid-cols-2 gap-3"),
			Div(
				components.FieldLabel("role", "Target Role", false),
				components.TextInput("role", "role", f.Role, "Backend Engineer", false),
			),
			Div(
				components.FieldLabel("level", "Level", false),
				components.SelectInput("level", "level", f.Level, levels),
			),
		),
		Div(
			components.FieldLabel("jobDesc", "Job Description", false),
			components.TextArea("jobDesc", "jobDesc", f.JobDesc, "Optional", 4, false),
		),
		Div(
			components.FieldLabel("count", "Suggestions", false),
			components.NumberInput("count", "count", f.Count, MinSuggestions, MaxSuggestions),
		),
		Div(
			ID("builder-submit"),
			components.SubmitButton(components.SubmitProps{
				Label:     "Get Suggestions",
				BusyLabel: "Thinking...",
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
			H2(Class("mb-4 text-lg font-semibold text-gray-900"), g.Text("Suggestions")),
			g.If(len(p.State.Result) == 0, P(Class("text-sm text-gray-500"), g.Text("No suggestions this time. Try adding more detail."))),
			Ul(
				Class("space-y-3"),
				g.Map(p.State.Result, func(s string) g.Node {
					return Li(
						Class("flex items-start justify-between gap-3 rounded-xl border border-gray-100 p-3"),
						components.Preformatted(s),
						components.CopyButton(s),
					)
				}),
			),
		)),
		g.If(!p.State.HasResult && p.State.Error == "", components.Card(
			P(Class("text-sm text-gray-500"), g.Text("Suggestions will appear here.")),
		)),
	)
}
