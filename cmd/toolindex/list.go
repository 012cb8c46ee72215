package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type listedTool struct {
	FileName    string `json:"fileName" yaml:"fileName"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Modified    string `json:"modified" yaml:"modified"`
}

func newListCmd(opts *cliOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the tool catalog without touching the index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := buildService(cmd, opts)
			if err != nil {
				return err
			}

			listing, err := svc.BuildListing(cmd.Context())
			if err != nil {
				return err
			}

			tools := make([]listedTool, 0, len(listing))
			for _, doc := range listing {
				tools = append(tools, listedTool{
					FileName:    doc.FileName,
					Title:       doc.Title,
					Description: doc.Description,
					Modified:    doc.ModTime.UTC().Format(time.RFC3339),
				})
			}

			out := cmd.OutOrStdout()
			switch output {
			case "table":
				w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "NAME\tTITLE\tDESCRIPTION")
				for _, tool := range tools {
					fmt.Fprintf(w, "%s\t%s\t%s\n", tool.FileName, tool.Title, tool.Description)
				}
				return w.Flush()
			case "json":
				raw, err := json.MarshalIndent(tools, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(raw))
				return nil
			case "yaml":
				raw, err := yaml.Marshal(tools)
				if err != nil {
					return err
				}
				fmt.Fprint(out, string(raw))
				return nil
			default:
				return fmt.Errorf("unknown output format %q, want table, json, or yaml", output)
			}
		},
	}

	cmd.Flags().StringVar(&output, "output", "table", "output format (table, json, yaml)")
	return cmd
}
