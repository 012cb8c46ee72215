package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolindex/internal/domain"
)

func newCheckCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the committed index matches the current tool set",
		Long: "Renders the index in memory and compares it byte-for-byte against " +
			"the committed file without writing anything. Exits " +
			"with a dedicated status when the index is stale or missing, so CI " +
			"can require regeneration after tool edits.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := buildService(cmd, opts)
			if err != nil {
				return err
			}

			result, err := svc.Check(cmd.Context())
			if err != nil {
				return err
			}

			summary := result.Summary(svc.Config().IndexFile)
			if result.UpToDate {
				fmt.Fprintln(cmd.OutOrStdout(), summary)
				return nil
			}

			cause := domain.ErrDrift
			if result.IndexMissing {
				cause = domain.ErrIndexMissing
			}
			return domain.E(domain.CodeDrift, "check", summary, cause)
		},
	}
}
