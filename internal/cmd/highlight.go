package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/yumosx/atelier/internal/syntax"
	"github.com/yumosx/atelier/internal/theme"
)

func newHighlightCmd() *cobra.Command {
	highlightCmd := &cobra.Command{
		Use:   "highlight <file>",
		Short: "Print a file highlighted with a theme",
		Long:  "Print a file highlighted with a theme. Use - to read from stdin.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			name, _ := cmd.Flags().GetString("theme")
			t, err := resolveTheme(cfg, []string{name})
			if err != nil {
				return err
			}

			var src []byte
			if args[0] == "-" {
				src, err = io.ReadAll(cmd.InOrStdin())
			} else {
				src, err = os.ReadFile(args[0])
			}
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			style, err := t.Override.Syntax.ChromaStyle(theme.ID(t.Name))
			if err != nil {
				return err
			}
			formatterName, _ := cmd.Flags().GetString("formatter")
			out, err := syntax.HighlightWith(formatterName, style, string(src), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	highlightCmd.Flags().StringP("theme", "t", "", "Theme to highlight with")
	highlightCmd.Flags().String("formatter", syntax.LipglossFormatter, "Output formatter (lipgloss, terminal16m, html, ...)")
	return highlightCmd
}
