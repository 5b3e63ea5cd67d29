// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-playground/validator/v10"
)

// Defaults applied by MergeWithDefaults
const (
	DefaultOutputDir = "rendered"
	DefaultPagesDir  = "github-pages"
	DefaultTheme     = "nordic-minimal"
)

// DefaultResumes maps each language to its résumé file.
func DefaultResumes() map[string]string {
	return map[string]string{
		"en": "resume-json/resume-en.json",
		"fr": "resume-json/resume-fr.json",
	}
}

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Inputs
	Resumes map[string]string `json:"resumes,omitempty" validate:"omitempty,dive,keys,len=2,alpha,endkeys,required"` // language -> résumé path

	// Outputs
	OutputDir string `json:"output_dir,omitempty"` // Rendered HTML directory
	PagesDir  string `json:"pages_dir,omitempty"`  // GitHub Pages directory

	// Behavior
	Theme      string `json:"theme,omitempty" validate:"omitempty,lowercase"` // Default theme ID
	StripPhone bool   `json:"strip_phone,omitempty"`                          // Remove basics.phone before rendering
	Verbose    bool   `json:"verbose,omitempty"`                              // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values and that every
// configured résumé file exists.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("config error: invalid %s (%s)", fe.Namespace(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}

	if c.OutputDir != "" && c.PagesDir != "" && filepath.Clean(c.OutputDir) == filepath.Clean(c.PagesDir) {
		return fmt.Errorf("config error: 'output_dir' and 'pages_dir' must differ")
	}

	for _, lang := range c.Languages() {
		path := c.Resumes[lang]
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file for %s not found: %s", lang, path)
		}
	}

	return nil
}

// Languages returns the configured résumé languages in sorted order.
func (c *Config) Languages() []string {
	langs := make([]string, 0, len(c.Resumes))
	for lang := range c.Resumes {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	return langs
}

// ResumePath returns the résumé file configured for lang.
func (c *Config) ResumePath(lang string) (string, bool) {
	path, ok := c.Resumes[lang]
	return path, ok
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// Resumes: languages missing from the file come from defaults
	merged := make(map[string]string, len(c.Resumes)+len(defaults.Resumes))
	for lang, path := range defaults.Resumes {
		merged[lang] = path
	}
	for lang, path := range c.Resumes {
		merged[lang] = path
	}
	result.Resumes = merged

	// String fields: use default if empty
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.PagesDir == "" {
		result.PagesDir = defaults.PagesDir
	}
	if result.Theme == "" {
		result.Theme = defaults.Theme
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Resumes:   DefaultResumes(),
		OutputDir: DefaultOutputDir,
		PagesDir:  DefaultPagesDir,
		Theme:     DefaultTheme,
	}
}

// Load reads path when it is set and fills the remaining fields from Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg.MergeWithDefaults(Default()), nil
}
