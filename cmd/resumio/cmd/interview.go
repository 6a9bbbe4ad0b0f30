package cmd

import (
	"errors"
	"fmt"

	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/handlers"
	"github.com/nfrund/resumio/internal/modules/interview"
	"github.com/nfrund/resumio/internal/upload"
	"github.com/spf13/cobra"
)

func newInterviewCmd(opts *options) *cobra.Command {
	var (
		resumeFile  string
		resumeText  string
		jobDescPath string
		maxBytes    int64
	)
	fields := interview.DefaultFields()
	cmd := &cobra.Command{
		Use:   "interview",
		Short: "Generate interview questions",
		Long: `Generate interview questions with suggested answers.

A resume file (PDF or text) selects file mode, where the job description is
optional. Otherwise pass the resume text and the job description.

Examples:
  resumio interview --resume resume.pdf --tech 3 --behavioral 2
  resumio interview --resume-text resume.txt --job-desc job.txt --type technical --count 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if fields.JobDescription, err = opts.readText(jobDescPath); err != nil {
				return err
			}
			v := handlers.NewValidator()
			if err := v.Validate(fields); err != nil {
				return errors.New(interview.MsgCount)
			}

			client := opts.client()
			var resp *apiclient.InterviewQuestionsResponse
			if resumeFile != "" {
				file, err := upload.FromFile(opts.fs, resumeFile, maxBytes)
				if err != nil {
					return err
				}
				resp, err = client.GenerateInterviewQuestionsFromFile(cmd.Context(), fields.FileRequest(file))
				if err != nil {
					return fmt.Errorf("%s: %w", interview.MsgFailed, err)
				}
			} else {
				if fields.ResumeText, err = opts.readText(resumeText); err != nil {
					return err
				}
				if err := v.Validate(fields.Text()); err != nil {
					return missingFields(interview.MsgRequired, err)
				}
				resp, err = client.GenerateInterviewQuestions(cmd.Context(), fields.Request())
				if err != nil {
					return fmt.Errorf("%s: %w", interview.MsgFailed, err)
				}
			}

			if opts.printer.Structured() {
				return opts.printer.Encode(resp)
			}
			printQuestions(opts, "Technical questions", resp.TechnicalQuestions)
			printQuestions(opts, "Behavioral questions", resp.BehavioralQuestions)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&resumeFile, "resume", "", "Resume file (PDF or text), selects file mode")
	flags.StringVar(&resumeText, "resume-text", "", "Resume text file")
	flags.StringVar(&jobDescPath, "job-desc", "", "Job description text file")
	flags.StringVar(&fields.QuestionType, "type", fields.QuestionType, "Question type in text mode (technical, behavioral, mixed)")
	flags.IntVar(&fields.Count, "count", fields.Count, "Number of questions in text mode")
	flags.IntVar(&fields.NumTechnical, "tech", fields.NumTechnical, "Technical questions in file mode")
	flags.IntVar(&fields.NumBehavioral, "behavioral", fields.NumBehavioral, "Behavioral questions in file mode")
	flags.Int64Var(&maxBytes, "max-bytes", upload.DefaultMaxBytes, "Largest accepted file in bytes")
	return cmd
}

func printQuestions(opts *options, heading string, qs []apiclient.InterviewQuestion) {
	if len(qs) == 0 {
		return
	}
	p := opts.printer
	p.Heading(heading)
	for i, q := range qs {
		p.Line("%d. %s", i+1, q.Question)
		if q.Difficulty != "" {
			p.Muted("   Difficulty: " + q.Difficulty)
		}
		p.Line("   %s", q.SuggestedAnswer)
	}
}
