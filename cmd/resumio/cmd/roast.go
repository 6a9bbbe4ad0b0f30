package cmd

import (
	"fmt"

	"github.com/nfrund/resumio/internal/modules/roaster"
	"github.com/nfrund/resumio/internal/upload"
	"github.com/spf13/cobra"
)

func newRoastCmd(opts *options) *cobra.Command {
	var (
		out      string
		maxBytes int64
	)
	cmd := &cobra.Command{
		Use:   "roast <file>",
		Short: "Roast a resume file",
		Long: `Upload a PDF or text resume and print the roast.

Examples:
  resumio roast resume.pdf
  resumio roast resume.pdf --out ` + roaster.DownloadName,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := upload.FromFile(opts.fs, args[0], maxBytes)
			if err != nil {
				return err
			}
			resp, err := opts.client().RoastResume(cmd.Context(), file)
			if err != nil {
				return fmt.Errorf("%s: %w", roaster.MsgFailed, err)
			}
			return opts.emit(cmd.Context(), resp, resp.Roast, out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "Save the roast to this file")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", upload.DefaultMaxBytes, "Largest accepted file in bytes")
	return cmd
}
