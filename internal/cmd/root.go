package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/yumosx/atelier/internal/config"
	"github.com/yumosx/atelier/internal/env"
	"github.com/yumosx/atelier/internal/preview"
	"github.com/yumosx/atelier/internal/theme"
	"github.com/yumosx/atelier/internal/version"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "atelier [theme]",
		Short: "Build and preview base16 themes",
		Long: `Atelier turns base16 palettes into theme descriptors: a neutral color
scale, one tonal ramp per accent color and a set of syntax highlighting
overrides. It can preview themes in the terminal, export them as JSON and
highlight source files with them.`,
		Example: `
# Preview the default theme
atelier

# Preview a specific theme
atelier atelier-forest-light

# Export a theme as JSON
atelier export atelier-forest-dark -o forest-dark.json

# Highlight a file
atelier highlight main.go
  `,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args)
		},
	}

	rootCmd.PersistentFlags().StringP("cwd", "c", "", "Current working directory")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Debug")
	rootCmd.Flags().IntP("width", "w", 0, "Preview width in cells")

	rootCmd.AddCommand(
		newListCmd(),
		newShowCmd(),
		newExportCmd(),
		newHighlightCmd(),
		newSchemaCmd(),
	)
	return rootCmd
}

func Execute(ctx context.Context) {
	if err := fang.Execute(
		ctx,
		newRootCmd(),
		fang.WithVersion(version.Version),
	); err != nil {
		os.Exit(1)
	}
}

// setup loads and validates the configuration for a command.
func setup(cmd *cobra.Command) (*config.Config, error) {
	debug, _ := cmd.Flags().GetBool("debug")

	cwd, err := ResolveCwd(cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(cwd, debug, env.New())
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(theme.DefaultRegistry().Has); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveTheme builds the theme named in args, or the configured one.
func resolveTheme(cfg *config.Config, args []string) (*theme.ThemeConfig, error) {
	id := cfg.Theme
	if len(args) > 0 && args[0] != "" {
		id = args[0]
	}
	return resolveFrom(theme.DefaultRegistry(), id)
}

// resolveFrom validates the palette behind id, when the registry knows it,
// so every malformed slot is reported together, then builds the theme.
func resolveFrom(r *theme.Registry, id string) (*theme.ThemeConfig, error) {
	if v, ok := r.Palette(id); ok {
		if err := v.Validate(); err != nil {
			slog.Error("Invalid theme palette", "theme", id, "error", err)
			return nil, fmt.Errorf("theme %s: %w", id, err)
		}
	}
	t, err := r.Get(id)
	if err != nil {
		slog.Error("Failed to resolve theme", "theme", id, "error", err)
		return nil, err
	}
	return t, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := setup(cmd)
	if err != nil {
		return err
	}
	t, err := resolveTheme(cfg, args)
	if err != nil {
		return err
	}
	return preview.Render(cmd.OutOrStdout(), t, previewWidth(cmd, cfg))
}

// previewWidth returns the --width flag when set. Otherwise it is the
// configured width, capped to the terminal width when writing to one.
func previewWidth(cmd *cobra.Command, cfg *config.Config) int {
	if width, _ := cmd.Flags().GetInt("width"); width > 0 {
		return width
	}
	width := cfg.Options.PreviewWidth
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return width
	}
	if w, _, err := term.GetSize(f.Fd()); err == nil && w > 0 && w < width {
		return w
	}
	return width
}

// ResolveCwd returns the absolute working directory from the --cwd flag,
// falling back to the process working directory.
func ResolveCwd(cmd *cobra.Command) (string, error) {
	cwd, _ := cmd.Flags().GetString("cwd")
	if cwd != "" {
		abs, err := filepath.Abs(cwd)
		if err != nil {
			return "", fmt.Errorf("failed to resolve directory: %v", err)
		}
		if _, err := os.Stat(abs); err != nil {
			return "", fmt.Errorf("failed to resolve directory: %v", err)
		}
		return abs, nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %v", err)
	}
	return cwd, nil
}
