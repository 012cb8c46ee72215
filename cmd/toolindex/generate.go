package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenerateCmd(opts *cliOptions) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Scan tool documents and write the index file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := buildService(cmd, opts)
			if err != nil {
				return err
			}

			if dryRun {
				content, listing, err := svc.RenderIndex(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s would list %d tool(s):\n", svc.Config().IndexFile, len(listing))
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			result, err := svc.Generate(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Generated %s with %d tool(s).\n", result.Path, result.ToolCount)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the rendered index without writing it")
	return cmd
}
