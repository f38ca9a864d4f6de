// Package config holds the settings shared by the extract and merge commands.
//
// Settings start from Default and may be overlaid by a YAML file. Command line
// flags are applied by the caller after loading.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration holds all the settings for the font tools
type Configuration struct {
	// ResultsDir holds the per-site CSV files and the merged report.
	ResultsDir string `yaml:"resultsDir"`
	// OutputFile is the merged report file name inside ResultsDir.
	OutputFile string `yaml:"outputFile"`
	// DefaultURL is extracted when no URL argument is given.
	DefaultURL string `yaml:"defaultURL"`
	// WaitTime is the settle delay after the page is ready.
	WaitTime time.Duration `yaml:"waitTime"`
	// Timeout bounds the whole page load and evaluation.
	Timeout time.Duration `yaml:"timeout"`

	Encodings    []string `yaml:"encodings"`
	GenericFonts []string `yaml:"genericFonts"`
	SystemFonts  []string `yaml:"systemFonts"`
	Verbose      bool     `yaml:"verbose"`
}

// Default returns the built-in configuration
func Default() *Configuration {
	return &Configuration{
		ResultsDir: "Results",
		OutputFile: "all-sites.csv",
		DefaultURL: "https://agent.bkvenergy.com",
		WaitTime:   3 * time.Second,
		Timeout:    60 * time.Second,
		Encodings:  []string{"utf-8", "utf-8-sig", "latin-1", "cp1252"},
		GenericFonts: []string{
			"sans-serif", "serif", "monospace", "cursive", "fantasy", "system-ui",
		},
		SystemFonts: []string{
			"-apple-system", "BlinkMacSystemFont", "Segoe UI", "Roboto",
			"Helvetica Neue", "Arial", "Times New Roman", "Georgia",
			"Apple Color Emoji", "Segoe UI Emoji", "Segoe UI Symbol",
			"Noto Color Emoji", "Noto Sans", "Liberation Sans",
		},
	}
}

// Load returns the default configuration overlaid with the YAML file at path.
// An empty path returns the defaults. Keys absent from the file keep their
// default values.
func Load(path string) (*Configuration, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports settings that cannot produce a usable run
func (c *Configuration) Validate() error {
	var errs []error
	if c.OutputFile == "" {
		errs = append(errs, errors.New("outputFile must not be empty"))
	}
	if len(c.Encodings) == 0 {
		errs = append(errs, errors.New("encodings must list at least one encoding"))
	}
	if c.WaitTime < 0 {
		errs = append(errs, errors.New("waitTime must not be negative"))
	}
	if c.Timeout <= 0 {
		errs = append(errs, errors.New("timeout must be positive"))
	}
	return errors.Join(errs...)
}
