package cmd

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nfrund/resumio/internal/theme"
	"github.com/spf13/cobra"
)

// themeView is the structured form of a theme entry.
type themeView struct {
	Theme       string        `json:"theme"`
	Name        string        `json:"name"`
	NavbarStyle string        `json:"navbarStyle"`
	Palette     theme.Palette `json:"palette"`
	Routes      []string      `json:"routes,omitempty"`
}

type resolvedView struct {
	Path  string    `json:"path"`
	Theme themeView `json:"theme"`
}

func newThemeView(t theme.Theme, cfg theme.Config) themeView {
	v := themeView{
		Theme:       t.String(),
		Name:        cfg.Name,
		NavbarStyle: string(cfg.NavbarStyle),
		Palette:     cfg.Palette,
	}
	for _, r := range theme.Routes() {
		if r.Theme == t {
			v.Routes = append(v.Routes, r.Pattern)
		}
	}
	return v
}

func newThemeCmd(opts *options) *cobra.Command {
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Explore the page themes",
		Long: `The theme command shows the colour themes the site applies per route.

Examples:
  # List every theme with its palette and routes
  resumio theme list

  # Show which theme a path gets
  resumio theme resolve /cover-letter /does-not-exist`,
	}
	themeCmd.AddCommand(newThemeListCmd(opts), newThemeResolveCmd(opts))
	return themeCmd
}

func newThemeListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			all := theme.All()
			views := make([]themeView, 0, len(all))
			for _, t := range all {
				cfg, _ := theme.ConfigFor(t)
				views = append(views, newThemeView(t, cfg))
			}
			if opts.printer.Structured() {
				return opts.printer.Encode(views)
			}

			p := opts.printer
			rows := make([]table.Row, 0, len(views))
			for _, v := range views {
				rows = append(rows, table.Row{
					v.Theme, v.Name, v.NavbarStyle,
					p.Swatch(v.Palette.Primary), p.Swatch(v.Palette.Secondary), p.Swatch(v.Palette.Accent),
					strings.Join(v.Routes, ", "),
				})
			}
			p.Table(table.Row{"Theme", "Name", "Navbar", "Primary", "Secondary", "Accent", "Routes"}, rows)
			return nil
		},
	}
}

func newThemeResolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>...",
		Short: "Resolve the theme for one or more paths",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			views := make([]resolvedView, 0, len(args))
			for _, path := range args {
				active := theme.ResolveActive(path)
				views = append(views, resolvedView{Path: path, Theme: newThemeView(active.Theme, active.Config)})
			}
			if opts.printer.Structured() {
				return opts.printer.Encode(views)
			}

			p := opts.printer
			rows := make([]table.Row, 0, len(views))
			for _, v := range views {
				rows = append(rows, table.Row{v.Path, v.Theme.Theme, v.Theme.Name, p.Swatch(v.Theme.Palette.Primary)})
			}
			p.Table(table.Row{"Path", "Theme", "Name", "Primary"}, rows)
			return nil
		},
	}
}
