package config

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/yumosx/atelier/internal/env"
	"github.com/yumosx/atelier/internal/fsext"
	"github.com/yumosx/atelier/internal/log"
)

// LoadReader config via io.Reader.
func LoadReader(fd io.Reader) (*Config, error) {
	data, err := io.ReadAll(fd)
	if err != nil {
		return nil, err
	}

	var config Config
	err = json.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}
	return &config, err
}

// Load merges the global and working directory config files, applies
// defaults and sets up logging.
func Load(workingDir string, debug bool, e env.Env) (*Config, error) {
	configPaths := []string{
		globalConfig(e),
		filepath.Join(workingDir, fmt.Sprintf("%s.json", appName)),
		filepath.Join(workingDir, fmt.Sprintf(".%s.json", appName)),
	}
	cfg, err := loadFromConfigPaths(configPaths)
	if err != nil {
		return nil, fmt.Errorf("failed to load config from paths %v: %w", configPaths, err)
	}

	if cfg.Options != nil {
		dataDir, err := fsext.Expand(cfg.Options.DataDirectory, e)
		if err != nil {
			return nil, fmt.Errorf("failed to expand data directory: %w", err)
		}
		if dataDir != "" && !filepath.IsAbs(dataDir) {
			dataDir = filepath.Join(workingDir, dataDir)
		}
		cfg.Options.DataDirectory = dataDir
	}
	cfg.setDefaults(workingDir)

	if debug {
		cfg.Options.Debug = true
	}

	log.Setup(cfg.LogFile(), cfg.Options.Debug)
	slog.Debug("Loaded config", "paths", configPaths, "theme", cfg.Theme)

	return cfg, nil
}

func loadFromConfigPaths(configPaths []string) (*Config, error) {
	var configs []io.Reader

	for _, path := range configPaths {
		fd, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("failed to open config file %s: %w", path, err)
		}
		defer fd.Close()

		configs = append(configs, fd)
	}

	return loadFromReaders(configs)
}

func loadFromReaders(readers []io.Reader) (*Config, error) {
	if len(readers) == 0 {
		return &Config{}, nil
	}

	merged, err := Merge(readers)
	if err != nil {
		return nil, fmt.Errorf("failed to merge configuration readers: %w", err)
	}

	return LoadReader(merged)
}

func globalConfig(e env.Env) string {
	if xdgConfigHome := e.Get("XDG_CONFIG_HOME"); xdgConfigHome != "" {
		return filepath.Join(xdgConfigHome, appName, fmt.Sprintf("%s.json", appName))
	}

	// for windows, it should be in `%LOCALAPPDATA%/atelier/`
	// for linux and macOS, it should be in `$HOME/.config/atelier/`
	if runtime.GOOS == "windows" {
		localAppData := e.Get("LOCALAPPDATA")
		if localAppData == "" {
			localAppData = filepath.Join(e.Get("USERPROFILE"), "AppData", "Local")
		}
		return filepath.Join(localAppData, appName, fmt.Sprintf("%s.json", appName))
	}

	return filepath.Join(homeDir(e), ".config", appName, fmt.Sprintf("%s.json", appName))
}

func homeDir(e env.Env) string {
	return env.GetFirst(e, "HOME", "USERPROFILE", "HOMEPATH")
}
