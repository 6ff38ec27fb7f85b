package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/yumosx/atelier/internal/format"
	"github.com/yumosx/atelier/internal/theme"
)

type listEntry struct {
	ID      string `json:"id"`
	Current bool   `json:"current"`
}

func newListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatStr, _ := cmd.Flags().GetString("format")
			outputFormat, err := format.Parse(formatStr)
			if err != nil {
				return err
			}

			cfg, err := setup(cmd)
			if err != nil {
				return err
			}

			var sb strings.Builder
			entries := []listEntry{}
			for _, id := range theme.DefaultRegistry().List() {
				current := id == cfg.Theme
				entries = append(entries, listEntry{ID: id, Current: current})
				marker := " "
				if current {
					marker = "*"
				}
				fmt.Fprintf(&sb, "%s %s\n", marker, id)
			}

			out, err := format.FormatOutput(sb.String(), entries, outputFormat)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	listCmd.Flags().StringP("format", "f", format.Text.String(), format.GetHelpText())
	return listCmd
}

func newShowCmd() *cobra.Command {
	showCmd := &cobra.Command{
		Use:   "show [theme]",
		Short: "Preview a theme in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().IntP("width", "w", 0, "Preview width in cells")
	return showCmd
}
