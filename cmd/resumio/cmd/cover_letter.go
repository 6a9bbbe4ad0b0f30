package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nfrund/resumio/internal/handlers"
	"github.com/nfrund/resumio/internal/modules/coverletter"
	"github.com/spf13/cobra"
)

func newCoverLetterCmd(opts *options) *cobra.Command {
	var (
		resumePath string
		jobPath    string
		out        string
		fields     coverletter.Fields
	)
	cmd := &cobra.Command{
		Use:   "cover-letter",
		Short: "Generate a cover letter",
		Long: `Generate a cover letter from a resume and a job description.

Examples:
  resumio cover-letter --resume resume.txt --job job.txt --company Acme --role "Backend Engineer"
  resumio cover-letter --resume resume.txt --job job.txt --company Acme --role SRE --tone formal --out letter.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if fields.ResumeText, err = opts.readText(resumePath); err != nil {
				return err
			}
			if fields.JobDescription, err = opts.readText(jobPath); err != nil {
				return err
			}
			if err := handlers.NewValidator().Validate(fields); err != nil {
				return missingFields(coverletter.MsgRequired, err)
			}

			resp, err := opts.client().GenerateCoverLetter(cmd.Context(), fields.Request())
			if err != nil {
				return fmt.Errorf("%s: %w", coverletter.MsgFailed, err)
			}
			return opts.emit(cmd.Context(), resp, resp.Content, out)
		},
	}

	tones := make([]string, len(coverletter.Tones))
	for i, t := range coverletter.Tones {
		tones[i] = strings.ToLower(string(t))
	}
	flags := cmd.Flags()
	flags.StringVar(&resumePath, "resume", "", "Resume text file")
	flags.StringVar(&jobPath, "job", "", "Job description text file")
	flags.StringVar(&fields.CompanyName, "company", "", "Company name")
	flags.StringVar(&fields.JobRole, "role", "", "Job role")
	flags.StringVar(&fields.Tone, "tone", strings.ToLower(string(coverletter.DefaultTone)), "Tone ("+strings.Join(tones, ", ")+")")
	flags.StringVar(&out, "out", "", "Save the letter to this file")
	return cmd
}

// missingFields turns a validation error into the page message followed by
// the failing field names.
func missingFields(msg string, err error) error {
	if names := handlers.FailedFields(err); len(names) > 0 {
		return fmt.Errorf("%s (%s)", msg, strings.Join(names, ", "))
	}
	return errors.New(msg)
}
