package roaster

import (
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

const (
	pageID      = "roaster-page"
	selectionID = "roaster-selection"
	resultID    = "roaster-result"
)

type props struct {
	State pagestate.State[string]
	// Selected is the accepted file of this request, if any.
	Selected *apiclient.Upload
	// Rejected keeps the upload action disabled until another file is chosen. The
	// error then belongs to the selection rather than the result.
	Rejected bool
	Palette  theme.Palette
}

func page(p props) g.Node {
	return Div(
		ID(pageID),
		Class("mx-auto max-w-3xl space-y-6"),
		components.PageHeader(nav.IconLaugh, "Resume Roaster", "Upload your resume and get brutally honest (but helpful) feedback with a side of humor.", p.Palette),
		components.Card(
			Form(
				Method("post"), Action("/resume-roaster/roast"), g.Attr("enctype", "multipart/form-data"),
				hx.Post("/resume-roaster/roast"),
				hx.Encoding("multipart/form-data"),
				hx.Target("#"+resultID),
				hx.Swap("outerHTML"),
				hx.Indicator("#roaster-submit"),
				g.Attr("hx-disabled-elt", "#roaster-submit button"),
				g.Attr("hx-sync", "this:replace"),
				Class("space-y-4"),
				components.FieldLabel("resume-upload", "Upload Your Resume", true),
				components.FileInput("resume-upload", "file", upload.Accept,
					hx.Post("/resume-roaster/select"),
					hx.Encoding("multipart/form-data"),
					hx.Trigger("change"),
					hx.Target("#"+selectionID),
					hx.Swap("outerHTML"),
				),
				P(Class("text-xs text-gray-500"), g.Text("PDF or TXT (max. 5MB)")),
				selection(p),
			),
		),
		result(p),
	)
}

// selection shows the chosen file, the validation message and the action.
func selection(p props) g.Node {
	var msg string
	if p.Rejected {
		msg = p.State.Error
	}
	return Div(
		ID(selectionID),
		Class("space-y-4"),
		g.If(p.Selected != nil, Div(
			Class("flex items-center gap-3 rounded-lg border border-green-200 bg-green-50 px-4 py-3"),
			components.Icon(nav.IconFileText, 20, "text-green-600"),
			Div(
				P(Class("text-sm font-semibold text-gray-900"), g.Text(selectedName(p))),
				P(Class("text-xs text-gray-500"), g.Text(selectedSize(p))),
			),
		)),
		components.Alert(msg),
		Div(
			ID("roaster-submit"),
			components.SubmitButton(components.SubmitProps{
				Label:     "Roast My Resume",
				BusyLabel: "Roasting your resume...",
				InFlight:  p.State.InFlight,
				Disabled:  p.Rejected || p.Selected == nil,
				Palette:   p.Palette,
			}),
		),
	)
}

// selectionUpdate answers a file change: the new selection plus an
// out-of-band refresh of the result area, which an accepted file clears.
func selectionUpdate(p props) g.Node {
	return g.Group{selection(p), resultOOB(p)}
}

func selectedName(p props) string {
	if p.Selected == nil {
		return ""
	}
	return p.Selected.Filename
}

func selectedSize(p props) string {
	if p.Selected == nil {
		return ""
	}
	return FileSize(*p.Selected)
}

func result(p props) g.Node {
	return resultNode(p, false)
}

func resultOOB(p props) g.Node {
	return resultNode(p, true)
}

func resultNode(p props, oob bool) g.Node {
	var msg string
	if !p.Rejected {
		msg = p.State.Error
	}
	return Div(
		ID(resultID),
		g.If(oob, hx.SwapOOB("true")),
		Class("space-y-4"),
		Aria("live", "polite"),
		components.Alert(msg),
		g.If(p.State.HasResult, components.Card(
			Div(
				Class("mb-4 flex items-center justify-between"),
				H2(Class("text-lg font-semibold text-gray-900"), g.Text("Your Roast")),
				Div(
					Class("flex items-center gap-2"),
					components.CopyButton(p.State.Result),
					A(
						Href("/resume-roaster/download"),
						hx.Boost("false"),
						g.Attr("download", DownloadName),
						Class("inline-flex items-center gap-1 rounded-md border border-gray-200 px-2 py-1 text-xs font-medium text-gray-600 hover:bg-gray-50"),
						components.Icon("download", 14, ""),
						g.Text("Download"),
					),
				),
			),
			components.Preformatted(p.State.Result),
			Div(
				Class("mt-6 flex flex-wrap gap-3"),
				Form(
					Method("post"), Action("/resume-roaster/reset"),
					hx.Post("/resume-roaster/reset"),
					hx.Target("#"+pageID),
					hx.Swap("outerHTML"),
					Button(
						Type("submit"),
						Class("rounded-lg border border-gray-300 px-4 py-2 text-sm font-medium text-gray-700 hover:bg-gray-50"),
						g.Text("Upload Another Resume"),
					),
				),
				A(
					Href("/builder"),
					Class("rounded-lg px-4 py-2 text-sm font-semibold text-white"),
					Style("background: linear-gradient(135deg, "+p.Palette.Primary+", "+p.Palette.Secondary+")"),
					g.Text("Fix It in Resume Builder"),
				),
			),
		)),
	)
}
