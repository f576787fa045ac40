package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Orkogithub/nutanix-cluster-info/pkg/inventory"
)

func newFieldsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Print the normalized report fields",
		Long: `Fetch and normalize the cluster inventory and print the resulting fields
to stdout as YAML or JSON. No report file is written.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if output != "yaml" && output != "json" {
				return fmt.Errorf("unsupported output %q (expected yaml or json)", output)
			}

			s, err := startSession(cmd)
			if err != nil {
				return err
			}
			defer func() { s.finish(err) }()

			fields, err := s.fetch(cmd.Context())
			if err != nil {
				return err
			}

			return writeFields(cmd.OutOrStdout(), output, fields)
		},
	}

	cmd.Flags().StringVar(&output, "output", "yaml", "Output encoding: yaml or json")

	return cmd
}

func writeFields(w io.Writer, output string, fields *inventory.Fields) error {
	if output == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(fields)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fields); err != nil {
		return fmt.Errorf("failed to encode fields: %w", err)
	}
	return enc.Close()
}
