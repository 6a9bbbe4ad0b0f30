package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nfrund/resumio/cmd/resumio/internal/output"
	"github.com/nfrund/resumio/internal/apiclient"
	"github.com/nfrund/resumio/internal/config"
	"github.com/nfrund/resumio/internal/storage"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// options holds the persistent flags and the filesystem every command reads
// and writes through.
type options struct {
	apiURL  string
	timeout time.Duration
	output  string
	noColor bool

	fs      afero.Fs
	printer *output.Printer
}

// NewRootCommand builds the resumio command tree on fs.
func NewRootCommand(fs afero.Fs) *cobra.Command {
	opts := &options{fs: fs}

	rootCmd := &cobra.Command{
		Use:   "resumio",
		Short: "Resumio CLI tool",
		Long: `Resumio CLI talks to the same resume backend as the web site.

Available commands:
  health        Check the backend
  theme         List themes or resolve the theme for a path
  cover-letter  Generate a cover letter
  roast         Roast a resume file
  ats           Score a resume against applicant tracking systems
  interview     Generate interview questions
  suggest       Get resume builder suggestions

Use "resumio [command] --help" for more information about a specific command.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.ParseFormat(opts.output)
			if err != nil {
				return err
			}
			opts.printer = output.New(cmd.OutOrStdout(), format, opts.noColor)
			return nil
		},
	}

	defaultURL := os.Getenv("API_BASE_URL")
	if defaultURL == "" {
		defaultURL = config.DefaultAPIBaseURL
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.apiURL, "api-url", defaultURL, "Backend base URL (defaults to $API_BASE_URL)")
	flags.DurationVar(&opts.timeout, "timeout", 2*time.Minute, "Timeout for each backend call")
	flags.StringVarP(&opts.output, "output", "o", string(output.FormatText), "Output format (text, json, yaml)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colour output")

	rootCmd.AddCommand(
		newVersionCmd(),
		newHealthCmd(opts),
		newThemeCmd(opts),
		newCoverLetterCmd(opts),
		newRoastCmd(opts),
		newATSCmd(opts),
		newInterviewCmd(opts),
		newSuggestCmd(opts),
	)
	return rootCmd
}

// Execute executes the root command on the OS filesystem.
func Execute() {
	if err := NewRootCommand(afero.NewOsFs()).Execute(); err != nil {
		os.Exit(1)
	}
}

func (o *options) client() *apiclient.Client {
	return apiclient.New(apiclient.Options{BaseURL: o.apiURL, Timeout: o.timeout})
}

// readText reads a text input file. An empty path yields an empty string.
func (o *options) readText(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := afero.ReadFile(o.fs, path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// emit writes v in a structured format, or text to the terminal, and saves
// text to out when set.
func (o *options) emit(ctx context.Context, v any, text, out string) error {
	if out != "" {
		if _, err := storage.NewAferoStore(o.fs).Save(ctx, out, strings.NewReader(text)); err != nil {
			return err
		}
	}
	if o.printer.Structured() {
		return o.printer.Encode(v)
	}
	if out != "" {
		o.printer.Muted("Saved to " + out)
		return nil
	}
	_, err := io.WriteString(o.printer.Writer(), strings.TrimRight(text, "\n")+"\n")
	return err
}
