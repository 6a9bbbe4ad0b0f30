// Package output renders CLI results as text tables, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"
)

// Format selects how results are written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a --output value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use text, json or yaml)", s)
	}
}

// Printer writes results in one format.
type Printer struct {
	w      io.Writer
	format Format
	color  bool
}

// New creates a Printer. Colour is used only when w is a terminal, noColor
// is false and NO_COLOR is unset.
func New(w io.Writer, format Format, noColor bool) *Printer {
	return &Printer{
		w:      w,
		format: format,
		color:  !noColor && os.Getenv("NO_COLOR") == "" && isTerminal(w),
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Color reports whether styled output is enabled.
func (p *Printer) Color() bool { return p.color }

// Structured reports whether the format is JSON or YAML.
func (p *Printer) Structured() bool { return p.format != FormatText }

// Encode writes v as JSON or YAML. YAML keys follow the JSON field names.
func (p *Printer) Encode(v any) error {
	switch p.format {
	case FormatJSON:
		enc := json.NewEncoder(p.w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatYAML:
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		var generic any
		if err := yaml.Unmarshal(data, &generic); err != nil {
			return err
		}
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(generic); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("format %q is not structured", p.format)
	}
}

// Heading writes a bold line.
func (p *Printer) Heading(s string) {
	if p.color {
		s = lipgloss.NewStyle().Bold(true).Render(s)
	}
	fmt.Fprintln(p.w, s)
}

// Line writes a plain line.
func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

// Muted writes a faint line.
func (p *Printer) Muted(s string) {
	if p.color {
		s = lipgloss.NewStyle().Faint(true).Render(s)
	}
	fmt.Fprintln(p.w, s)
}

// Swatch renders a hex colour as a coloured block followed by the value.
func (p *Printer) Swatch(hex string) string {
	if !p.color {
		return hex
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ") + " " + hex
}

// Table writes rows under header.
func (p *Printer) Table(header table.Row, rows []table.Row) {
	tw := table.NewWriter()
	tw.SetOutputMirror(p.w)
	tw.SetStyle(table.StyleLight)
	tw.Style().Options.SeparateRows = false
	tw.AppendHeader(header)
	tw.AppendRows(rows)
	tw.Render()
}
