package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHealthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the resume backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := opts.client().Health(cmd.Context())
			if err != nil {
				return fmt.Errorf("backend unavailable at %s: %w", opts.apiURL, err)
			}
			if opts.printer.Structured() {
				return opts.printer.Encode(resp)
			}
			db := "connected"
			if !resp.DB {
				db = "unavailable"
			}
			opts.printer.Line("Backend: %s (env %s, database %s)", resp.Status, resp.Env, db)
			return nil
		},
	}
}
