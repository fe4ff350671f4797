package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"brilcheck/internal/bril"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "schema [program|config]",
		Short:     "Generate JSON schema for programs or configuration",
		Long:      "Generate the JSON schema of the program shape brilcheck accepts, or of its configuration",
		Hidden:    true,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"program", "config"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var schema *jsonschema.Schema
			if len(args) > 0 && args[0] == "config" {
				reflector := new(jsonschema.Reflector)
				schema = reflector.Reflect(&Config{})
			} else {
				schema = bril.DocumentSchema()
			}

			bts, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bts))
			return nil
		},
	}
}
