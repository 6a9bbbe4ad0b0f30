package cmd

import (
	"errors"
	"fmt"
	"slices"

	"github.com/nfrund/resumio/internal/handlers"
	"github.com/nfrund/resumio/internal/modules/builder"
	"github.com/spf13/cobra"
)

func newSuggestCmd(opts *options) *cobra.Command {
	fields := builder.DefaultFields()
	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Get resume builder suggestions",
		Long: `Ask the writing assistant for resume bullets, summaries, skills or rewrites.

Examples:
  resumio suggest --task bullet --text "Ran the on-call rotation" --role SRE --level senior
  resumio suggest --task summary --text "Go developer, 6 years" --count 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields.Normalize()
			if err := handlers.NewValidator().Validate(fields); err != nil {
				failed := handlers.FailedFields(err)
				if slices.Contains(failed, "Task") || slices.Contains(failed, "SourceText") {
					return errors.New(builder.MsgRequired)
				}
				return errors.New(builder.MsgInvalid)
			}

			resp, err := opts.client().Suggest(cmd.Context(), fields.Request())
			if err != nil {
				return fmt.Errorf("%s: %w", builder.MsgFailed, err)
			}
			if opts.printer.Structured() {
				return opts.printer.Encode(resp)
			}
			for i, s := range resp.Suggestions {
				opts.printer.Line("%d. %s", i+1, s)
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&fields.Task, "task", fields.Task, "Task (bullet, summary, skills, rewrite)")
	flags.StringVar(&fields.SourceText, "text", "", "Text to improve")
	flags.StringVar(&fields.Role, "role", "", "Target role")
	flags.StringVar(&fields.Level, "level", "", "Seniority (junior, mid, senior, entry, intern)")
	flags.StringVar(&fields.JobDesc, "job-desc", "", "Job description to tailor to")
	flags.IntVar(&fields.Count, "count", fields.Count, "Number of suggestions")
	return cmd
}
