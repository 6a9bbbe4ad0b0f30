package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/modules/ats"
	"github.com/nfrund/resumio/internal/upload"
	"github.com/spf13/cobra"
)

func newATSCmd(opts *options) *cobra.Command {
	var (
		jobDescPath string
		resumeJSON  string
		maxBytes    int64
	)
	cmd := &cobra.Command{
		Use:   "ats [file]",
		Short: "Score a resume against applicant tracking systems",
		Long: `Score a resume file, or a structured resume document, and print the breakdown.

Examples:
  resumio ats resume.pdf --job-desc job.txt
  resumio ats --resume-json resume.json -o json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobDesc, err := opts.readText(jobDescPath)
			if err != nil {
				return err
			}
			jobDesc = strings.TrimSpace(jobDesc)

			client := opts.client()
			var resp *apiclient.ATSResponse
			switch {
			case resumeJSON != "" && len(args) > 0:
				return errors.New("pass either a resume file or --resume-json, not both")
			case resumeJSON != "":
				raw, err := opts.readText(resumeJSON)
				if err != nil {
					return err
				}
				if !json.Valid([]byte(raw)) {
					return fmt.Errorf("%s is not valid JSON", resumeJSON)
				}
				resp, err = client.ScoreATS(cmd.Context(), apiclient.ATSScoreRequest{Resume: json.RawMessage(raw), JobDesc: jobDesc})
				if err != nil {
					return fmt.Errorf("%s: %w", ats.MsgFailed, err)
				}
			case len(args) == 1:
				file, err := upload.FromFile(opts.fs, args[0], maxBytes)
				if err != nil {
					return err
				}
				resp, err = client.ScoreATSFromFile(cmd.Context(), file, jobDesc)
				if err != nil {
					return fmt.Errorf("%s: %w", ats.MsgFailed, err)
				}
			default:
				return errors.New(ats.MsgSelectFirst)
			}

			if opts.printer.Structured() {
				return opts.printer.Encode(resp)
			}
			printATS(opts, resp)
			return nil
		},
	}
	cmd.Flags().StringVar(&jobDescPath, "job-desc", "", "Job description text file")
	cmd.Flags().StringVar(&resumeJSON, "resume-json", "", "Structured resume JSON file")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", upload.DefaultMaxBytes, "Largest accepted file in bytes")
	return cmd
}

func printATS(opts *options, resp *apiclient.ATSResponse) {
	p := opts.printer
	p.Heading(fmt.Sprintf("ATS score: %.0f%% (%s)", resp.Score, ats.Grade(resp.Score)))

	rows := make([]table.Row, 0, 5)
	for _, b := range ats.Bars(resp.Breakdown) {
		rows = append(rows, table.Row{b.Label, fmt.Sprintf("%.0f%%", b.Score)})
	}
	p.Table(table.Row{"Category", "Score"}, rows)

	d := resp.Breakdown.Details
	p.Line("%d of %d job keywords found", d.Keywords.MatchedCount, d.Keywords.TotalKeywords)
	if len(d.Keywords.MissingKeywords) > 0 {
		p.Line("Missing: %s", strings.Join(d.Keywords.MissingKeywords, ", "))
	}
	p.Line("Action verbs: %d (recommended %d)", d.Verbs.Count, d.Verbs.Recommended)
	p.Line("Quantified results: %d (recommended %d)", d.Metrics.Count, d.Metrics.Recommended)

	for _, s := range ats.Sections(d) {
		mark := "missing"
		if s.Present {
			mark = "ok"
		}
		p.Line("Section %s: %s", s.Name, mark)
	}
	if len(resp.Tips) > 0 {
		p.Heading("Tips")
		for _, tip := range resp.Tips {
			p.Line("- %s", tip)
		}
	}
}
