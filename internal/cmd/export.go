package cmd

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/yumosx/atelier/internal/env"
	"github.com/yumosx/atelier/internal/fsext"
)

func newExportCmd() *cobra.Command {
	exportCmd := &cobra.Command{
		Use:   "export [theme]",
		Short: "Export a theme as JSON",
		Long: `Export a theme descriptor as JSON. Every scale is written as its stops
plus a list of evenly spaced samples.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(cmd)
			if err != nil {
				return err
			}
			t, err := resolveTheme(cfg, args)
			if err != nil {
				return err
			}

			samples, _ := cmd.Flags().GetInt("samples")
			if samples <= 0 {
				samples = cfg.Options.Samples
			}
			withLicense, _ := cmd.Flags().GetBool("license")

			doc := t.Document(samples)
			bts, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal theme: %w", err)
			}
			bts = append(bts, '\n')

			out, _ := cmd.Flags().GetString("output")
			if out == "" {
				_, err := cmd.OutOrStdout().Write(bts)
				return err
			}
			out, err = fsext.Expand(out, env.New())
			if err != nil {
				return fmt.Errorf("failed to expand output path: %w", err)
			}
			if !filepath.IsAbs(out) {
				out = filepath.Join(cfg.WorkingDir(), out)
			}

			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
			if err := os.WriteFile(out, bts, 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			slog.Info("Exported theme", "theme", t.Name, "path", out, "samples", samples)

			if withLicense {
				text, err := t.License.Text()
				if err != nil {
					return err
				}
				licensePath := filepath.Join(filepath.Dir(out), "LICENSE."+t.License.File)
				if err := os.WriteFile(licensePath, []byte(text), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", licensePath, err)
				}
			}
			return nil
		},
	}
	exportCmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")
	exportCmd.Flags().IntP("samples", "n", 0, "Samples per scale (defaults to the configured value)")
	exportCmd.Flags().Bool("license", false, "Write the license text next to the output file")
	return exportCmd
}
