package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yumosx/atelier/internal/config"
	"github.com/yumosx/atelier/internal/theme"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "schema",
		Short:  "Generate JSON schema for configuration",
		Long:   "Generate JSON schema for the atelier configuration file",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema := config.Schema(theme.DefaultRegistry().List())
			bts, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal schema: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(bts))
			return nil
		},
	}
}
