package components

import (
	"strconv"

	"github.com/nfrund/resumio/internal/nav"
	"github.com/nfrund/resumio/internal/theme"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	inputClass = "w-full rounded-lg border border-gray-300 px-3 py-2 text-sm shadow-sm focus:outline-none focus:ring-2 focus:ring-[var(--theme-primary)]"
	labelClass = "block text-sm font-medium text-gray-700 mb-1"
)

// SelectOption is a select option.
type SelectOption struct {
	Value string
	Label string
}

// PageHeader renders the title block at the top of a feature page.
func PageHeader(icon nav.Icon, title, subtitle string, p theme.Palette) g.Node {
	return Header(
		Class("mb-8 text-center"),
		Div(
			Class("mx-auto mb-4 flex h-14 w-14 items-center justify-center rounded-2xl text-white shadow"),
			Style("background: linear-gradient(135deg, "+p.Primary+", "+p.Secondary+")"),
			Icon(icon, 28, ""),
		),
		H1(Class("text-3xl font-bold text-gray-900"), g.Text(title)),
		P(Class("mt-2 text-gray-600"), g.Text(subtitle)),
	)
}

// Card is the white panel used for forms and results.
func Card(children ...g.Node) g.Node {
	return Div(Class("rounded-2xl bg-white p-6 shadow-sm ring-1 ring-gray-100"), g.Group(children))
}

// Alert renders an inline error message.
func Alert(msg string) g.Node {
	if msg == "" {
		return nil
	}
	return Div(
		Class("rounded-lg border border-red-200 bg-red-50 px-4 py-3 text-sm text-red-700"),
		Role("alert"),
		g.Text(msg),
	)
}

// FieldLabel renders a label, marking required fields.
func FieldLabel(forID, text string, required bool) g.Node {
	return Label(
		For(forID),
		Class(labelClass),
		g.Text(text),
		g.If(required, Span(Class("text-red-500"), g.Text(" *"))),
	)
}

// TextInput renders a single-line text input.
func TextInput(id, name, value, placeholder string, required bool) g.Node {
	return Input(
		Type("text"), ID(id), Name(name), Value(value),
		g.If(placeholder != "", Placeholder(placeholder)),
		g.If(required, Required()),
		Class(inputClass),
	)
}

// TextArea renders a multi-line input.
func TextArea(id, name, value, placeholder string, rows int, required bool) g.Node {
	return Textarea(
		ID(id), Name(name), Rows(strconv.Itoa(rows)),
		g.If(placeholder != "", Placeholder(placeholder)),
		g.If(required, Required()),
		Class(inputClass),
		g.Text(value),
	)
}

// NumberInput renders a bounded integer input.
func NumberInput(id, name string, value, minimum, maximum int) g.Node {
	return Input(
		Type("number"), ID(id), Name(name),
		Value(strconv.Itoa(value)),
		Min(strconv.Itoa(minimum)), Max(strconv.Itoa(maximum)),
		Class(inputClass),
	)
}

// SelectInput renders a select with selected preselected.
func SelectInput(id, name, selected string, options []SelectOption) g.Node {
	return Select(
		ID(id), Name(name), Class(inputClass),
		g.Map(options, func(o SelectOption) g.Node {
			return Option(Value(o.Value), g.If(o.Value == selected, Selected()), g.Text(o.Label))
		}),
	)
}

// FileInput renders a file picker restricted to accept.
func FileInput(id, name, accept string, attrs ...g.Node) g.Node {
	return Input(
		Type("file"), ID(id), Name(name), Accept(accept),
		Class("block w-full text-sm text-gray-600 file:mr-4 file:rounded-lg file:border-0 file:bg-gray-100 file:px-4 file:py-2 file:text-sm file:font-medium hover:file:bg-gray-200"),
		g.Group(attrs),
	)
}

// SubmitProps configures SubmitButton.
type SubmitProps struct {
	Label     string
	BusyLabel string
	// InFlight renders the busy state server-side.
	InFlight bool
	// Disabled renders the button unusable, e.g. after a rejected file.
	Disabled bool
	Palette  theme.Palette
}

// SubmitButton renders the form trigger. htmx shows the busy label through the
// htmx-request class while a request is outstanding.
func SubmitButton(p SubmitProps) g.Node {
	return Button(
		Type("submit"),
		Class("inline-flex w-full items-center justify-center gap-2 rounded-lg px-4 py-3 text-sm font-semibold text-white shadow-sm transition disabled:cursor-not-allowed disabled:opacity-60"),
		Style("background: linear-gradient(135deg, "+p.Palette.Primary+", "+p.Palette.Secondary+")"),
		g.If(p.InFlight || p.Disabled, Disabled()),
		g.If(p.InFlight, Aria("busy", "true")),
		Span(Class(labelClassFor(p.InFlight)), g.Text(p.Label)),
		Span(
			Class(busyClassFor(p.InFlight)),
			Span(Class("spinner"), Aria("hidden", "true")),
			g.Text(p.BusyLabel),
		),
	)
}

func labelClassFor(inFlight bool) string {
	if inFlight {
		return "submit-label hidden"
	}
	return "submit-label"
}

func busyClassFor(inFlight bool) string {
	if inFlight {
		return "busy-label"
	}
	return "busy-label htmx-indicator"
}

// CopyButton copies text to the clipboard through app.js.
func CopyButton(text string) g.Node {
	return Button(
		Type("button"),
		Class("inline-flex items-center gap-1 rounded-md border border-gray-200 px-2 py-1 text-xs font-medium text-gray-600 hover:bg-gray-50"),
		Data("copy-text", text),
		Icon("copy", 14, ""),
		Span(Data("copy-label", ""), g.Text("Copy")),
	)
}

// Preformatted renders generated text keeping its line breaks.
func Preformatted(text string) g.Node {
	return Div(Class("whitespace-pre-wrap text-sm leading-relaxed text-gray-800"), g.Text(text))
}
