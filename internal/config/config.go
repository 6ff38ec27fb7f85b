package config

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	appName              = "atelier"
	defaultDataDirectory = ".atelier"
	defaultTheme         = "atelier-forest-dark"
	defaultSamples       = 11
	defaultPreviewWidth  = 64
)

type Options struct {
	DataDirectory string `json:"data_directory,omitempty" jsonschema:"description=Directory for logs and exported themes,default=.atelier"`
	Debug         bool   `json:"debug,omitempty" jsonschema:"description=Enable debug logging,default=false"`
	Samples       int    `json:"samples,omitempty" jsonschema:"description=Number of colors each scale is sampled into on export,default=11,minimum=1"`
	PreviewWidth  int    `json:"preview_width,omitempty" jsonschema:"description=Width of the terminal preview in cells,default=64,minimum=16"`
}

// Config holds the merged configuration.
type Config struct {
	Theme   string   `json:"theme,omitempty" jsonschema:"description=Theme used when none is given on the command line,default=atelier-forest-dark"`
	Options *Options `json:"options,omitempty" jsonschema:"description=General application options"`

	workingDir string
}

func (c *Config) WorkingDir() string {
	return c.workingDir
}

// LogFile is where the rotating log is written.
func (c *Config) LogFile() string {
	return filepath.Join(c.Options.DataDirectory, "logs", fmt.Sprintf("%s.log", appName))
}

func (c *Config) setDefaults(workingDir string) {
	c.workingDir = workingDir
	if c.Options == nil {
		c.Options = &Options{}
	}
	if c.Options.DataDirectory == "" {
		c.Options.DataDirectory = filepath.Join(workingDir, defaultDataDirectory)
	}
	if c.Options.Samples == 0 {
		c.Options.Samples = defaultSamples
	}
	if c.Options.PreviewWidth == 0 {
		c.Options.PreviewWidth = defaultPreviewWidth
	}
	if c.Theme == "" {
		c.Theme = defaultTheme
	}
}

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error in %s: %s", e.Field, e.Message)
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var messages []string
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

func (e *ValidationErrors) Add(field, message string) {
	*e = append(*e, ValidationError{Field: field, Message: message})
}

// Validate checks the configuration. knownTheme reports whether a theme id
// can be resolved.
func (c *Config) Validate(knownTheme func(string) bool) error {
	var errs ValidationErrors

	if c.Theme != "" && knownTheme != nil && !knownTheme(c.Theme) {
		errs.Add("theme", fmt.Sprintf("unknown theme %q", c.Theme))
	}
	if c.Options != nil {
		if c.Options.Samples < 0 {
			errs.Add("options.samples", "must be positive")
		}
		if c.Options.PreviewWidth != 0 && c.Options.PreviewWidth < 16 {
			errs.Add("options.preview_width", "must be at least 16")
		}
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}
