package interview

import (
	"strings"

	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/nav"
	"github.com/nfrund/resumio/internal/theme"
	"github.com/nfrund/resumio/internal/upload"
	"github.com/nfrund/resumio/web/src/templates/components"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

const resultID = "interview-result"

var questionTypes = []components.SelectOption{
	{Value: string(apiclient.QuestionsMixed), Label: "Mixed"},
	{Value: string(apiclient.QuestionsTechnical), Label: "Technical"},
	{Value: string(apiclient.QuestionsBehavioral), Label: "Behavioral"},
}

type props struct {
	Fields  Fields
	State   questionsState
	Palette theme.Palette
}

func page(p props) g.Node {
	return Div(
		Class("mx-auto max-w-5xl"),
		components.PageHeader(nav.IconMessageSquare, "Interview Prep", "Practice with questions tailored to your resume and the role.", p.Palette),
		Div(
			Class("grid gap-6 lg:grid-cols-5"),
			Div(Class("lg:col-span-2"), components.Card(form(p))),
			Div(Class("lg:col-span-3"), result(p)),
		),
	)
}

func form(p props) g.Node {
	f := p.Fields
	return Form(
		Method("post"), Action("/interview-questions/generate"), g.Attr("enctype", "multipart/form-data"),
		hx.Post("/interview-questions/generate"),
		hx.Encoding("multipart/form-data"),
		hx.Target("#"+resultID),
		hx.Swap("outerHTML"),
		hx.Indicator("#interview-submit"),
		g.Attr("hx-disabled-elt", "#interview-submit button"),
		g.Attr("hx-sync", "this:replace"),
		Class("space-y-5"),
		FieldSet(
			Class("space-y-3"),
			Legend(Class("text-sm font-semibold text-gray-900"), g.Text("Upload your resume")),
			components.FileInput("interview-file", "file", upload.Accept),
			Div(
				Class("grid grid-cols-2 gap-3"),
				Div(
					components.FieldLabel("numTechQuestions", "Technical questions", false),
					components.NumberInput("numTechQuestions", "numTechQuestions", f.NumTechnical, MinQuestions, MaxQuestions),
				),
				Div(
					components.FieldLabel("numBehavioralQuestions", "Behavioral questions", false),
					components.NumberInput("numBehavioralQuestions", "numBehavioralQuestions", f.NumBehavioral, MinQuestions, MaxQuestions),
				),
			),
		),
		FieldSet(
			Class("space-y-3"),
			Legend(Class("text-sm font-semibold text-gray-900"), g.Text("Or paste it")),
			components.TextArea("resume_text", "resume_text", f.ResumeText, "Paste your resume here", 6, false),
			Div(
				Class("grid grid-cols-2 gap-3"),
				Div(
					components.FieldLabel("question_type", "Question type", false),
					components.SelectInput("question_type", "question_type", f.QuestionType, questionTypes),
				),
				Div(
					components.FieldLabel("count", "Questions", false),
					components.NumberInput("count", "count", f.Count, MinQuestions, MaxQuestions),
				),
			),
		),
		Div(
			components.FieldLabel("job_description", "Job Description", false),
			components.TextArea("job_description", "job_description", f.JobDescription, "Paste the job description (required when pasting your resume)", 6, false),
		),
		Div(
			ID("interview-submit"),
			components.SubmitButton(components.SubmitProps{
				Label:     "Generate Questions",
				BusyLabel: "Generating questions...",
				InFlight:  p.State.InFlight,
				Palette:   p.Palette,
			}),
		),
	)
}

func result(p props) g.Node {
	r := p.State.Result
	return Div(
		ID(resultID),
		Class("space-y-4"),
		Aria("live", "polite"),
		components.Alert(p.State.Error),
		g.If(p.State.HasResult, g.Group{
			questionList("Technical Questions", r.TechnicalQuestions),
			questionList("Behavioral Questions", r.BehavioralQuestions),
		}),
		g.If(!p.State.HasResult && p.State.Error == "", components.Card(
			P(Class("text-sm text-gray-500"), g.Text("Your questions will appear here.")),
		)),
	)
}

func questionList(title string, questions []apiclient.InterviewQuestion) g.Node {
	if len(questions) == 0 {
		return nil
	}
	return components.Card(
		H2(Class("mb-4 text-lg font-semibold text-gray-900"), g.Textf("%s (%d)", title, len(questions))),
		Ol(
			Class("space-y-5"),
			g.Map(questions, questionItem),
		),
	)
}

func questionItem(q apiclient.InterviewQuestion) g.Node {
	return Li(
		Class("rounded-xl border border-gray-100 p-4"),
		Div(
			Class("flex items-start justify-between gap-3"),
			P(Class("font-medium text-gray-900"), g.Text(q.Question)),
			components.CopyButton(CopyText(q)),
		),
		Div(
			Class("mt-2 flex flex-wrap gap-2 text-xs"),
			g.If(q.Difficulty != "", Span(Class("rounded-full bg-gray-100 px-2 py-0.5 font-medium text-gray-700"), g.Text(q.Difficulty))),
			g.If(q.Category != "", Span(Class("rounded-full bg-gray-100 px-2 py-0.5 text-gray-600"), g.Text(q.Category))),
		),
		g.If(q.Context != "", P(Class("mt-2 text-sm italic text-gray-500"), g.Text(q.Context))),
		g.If(q.SuggestedAnswer != "", Details(
			Class("mt-3"),
			Summary(Class("cursor-pointer text-sm font-medium text-gray-700"), g.Text("Suggested answer")),
			Div(Class("mt-2"), components.Preformatted(q.SuggestedAnswer)),
		)),
	)
}

// CopyText is what a question's copy button puts on the clipboard.
func CopyText(q apiclient.InterviewQuestion) string {
	if q.SuggestedAnswer == "" {
		return q.Question
	}
	return strings.Join([]string{q.Question, q.SuggestedAnswer}, "\n\n")
}
