// Package config loads tool configuration from a YAML file with
// environment overrides. A missing file yields the defaults, so the tool
// works out of the box next to a review document.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the tool looks for its config when --config is not
// given.
const DefaultPath = "tpdash.yaml"

// RenderConfig controls the terminal rendering of `show`.
type RenderConfig struct {
	// Style is a glamour style name or path; "auto" picks by terminal
	// background.
	Style    string `yaml:"style"`
	WordWrap int    `yaml:"word_wrap"`
}

// Config is the tool configuration.
type Config struct {
	// Source is the default review document path.
	Source string `yaml:"source"`
	// Countries is the default jurisdiction selection for `import`;
	// empty keeps every row.
	Countries []string `yaml:"countries"`
	// Columns maps column short keys to the headers a drifted workbook
	// export actually uses, e.g. Notes: "Rule Notes".
	Columns map[string]string `yaml:"columns"`

	Render   RenderConfig `yaml:"render"`
	LogLevel string       `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Source: "tp_requirements_review.md",
		Render: RenderConfig{
			Style:    "auto",
			WordWrap: 80,
		},
		LogLevel: "info",
	}
}

// Load reads configuration from path, falling back to defaults when the
// file does not exist, then applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TPDASH_SOURCE"); v != "" {
		c.Source = v
	}
	if v := os.Getenv("TPDASH_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}
