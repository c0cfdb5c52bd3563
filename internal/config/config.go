// Package config provides configuration file parsing for shelfwise.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/fnzahra/shelfwise/internal/analyzer"
	"github.com/fnzahra/shelfwise/internal/ingest"
)

// Dir returns the shelfwise config directory, respecting XDG_CONFIG_HOME.
// Defaults to ~/.config/shelfwise if XDG_CONFIG_HOME is not set.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "shelfwise"), nil
}

// Config holds the analysis thresholds and CSV column names. Any field left
// out of the file keeps its default, and command-line flags override both.
type Config struct {
	MinSupport         float64 `yaml:"min_support"`
	MinConfidence      float64 `yaml:"min_confidence"`
	MinLift            float64 `yaml:"min_lift"`
	LongtailMinSupport float64 `yaml:"longtail_min_support"`
	LongtailMaxSupport float64 `yaml:"longtail_max_support"`
	Lens               string  `yaml:"lens"`
	InvoiceColumn      string  `yaml:"invoice_column"`
	ItemColumn         string  `yaml:"item_column"`
}

// Default returns the built-in configuration.
func Default() Config {
	p := analyzer.DefaultParams()
	cols := ingest.DefaultOptions()
	return Config{
		MinSupport:         p.MinSupport,
		MinConfidence:      p.MinConfidence,
		MinLift:            p.MinLift,
		LongtailMinSupport: p.LongtailMinSupport,
		LongtailMaxSupport: p.LongtailMaxSupport,
		Lens:               string(analyzer.LensRuleScore),
		InvoiceColumn:      cols.InvoiceColumn,
		ItemColumn:         cols.ItemColumn,
	}
}

// Load reads the config file at path. A missing file is not an error: the
// defaults are returned unchanged. Fields present in the file override the
// corresponding defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Params converts the config into analyzer thresholds.
func (c Config) Params() analyzer.Params {
	return analyzer.Params{
		MinSupport:         c.MinSupport,
		MinConfidence:      c.MinConfidence,
		MinLift:            c.MinLift,
		LongtailMinSupport: c.LongtailMinSupport,
		LongtailMaxSupport: c.LongtailMaxSupport,
	}
}

// IngestOptions converts the config into CSV column options.
func (c Config) IngestOptions() ingest.Options {
	return ingest.Options{
		InvoiceColumn: c.InvoiceColumn,
		ItemColumn:    c.ItemColumn,
	}
}
