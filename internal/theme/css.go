package theme

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

const (
	headerHXBoosted = "HX-Boosted"
	headerHXTrigger = "HX-Trigger"

	// ChangedEvent is the client-side event carrying a newly resolved palette.
	ChangedEvent = "theme-changed"
)

// Variable is a CSS custom property published for the active theme.
type Variable struct {
	Name  string
	Value string
}

// Variables returns the CSS custom properties of cfg in a fixed order.
func Variables(cfg Config) []Variable {
	return []Variable{
		{Name: "--theme-primary", Value: cfg.Palette.Primary},
		{Name: "--theme-secondary", Value: cfg.Palette.Secondary},
		{Name: "--theme-accent", Value: cfg.Palette.Accent},
		{Name: "--theme-dark", Value: cfg.Palette.Dark},
		{Name: "--theme-light", Value: cfg.Palette.Light},
	}
}

// RootRule renders the variables of cfg as a :root CSS rule.
func RootRule(cfg Config) string {
	var b strings.Builder
	b.WriteString(":root{")
	for _, v := range Variables(cfg) {
		fmt.Fprintf(&b, "%s:%s;", v.Name, v.Value)
	}
	b.WriteString("}")
	return b.String()
}

// StyleBlock is the <style> element that publishes the palette of cfg to the
// stylesheet.
func StyleBlock(cfg Config) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<style id="theme-vars">`+RootRule(cfg)+`</style>`)
		return err
	})
}

type changedPayload struct {
	Theme Theme             `json:"theme"`
	Vars  map[string]string `json:"vars"`
}

// TriggerHeader encodes the HX-Trigger value announcing active to the client.
func TriggerHeader(active Active) (string, error) {
	vars := make(map[string]string, 5)
	for _, v := range Variables(active.Config) {
		vars[v.Name] = v.Value
	}
	b, err := json.Marshal(map[string]changedPayload{
		ChangedEvent: {Theme: active.Theme, Vars: vars},
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}
