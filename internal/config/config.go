// Package config loads flint rule files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/coregx/flint"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Rules is one rule file: a pattern set, how to match it and, optionally,
// what to replace matches with.
type Rules struct {
	Comparison   string   `json:"comparison" yaml:"comparison"`
	Mode         string   `json:"mode" yaml:"mode"`
	Culture      string   `json:"culture" yaml:"culture"`
	Prefilter    *bool    `json:"prefilter" yaml:"prefilter"`
	Patterns     []string `json:"patterns" yaml:"patterns"`
	Replacement  *string  `json:"replacement" yaml:"replacement"`
	Replacements []string `json:"replacements" yaml:"replacements"`
	LogLevel     string   `json:"log_level" yaml:"log_level"`
}

// Load reads and validates a rule file.
func Load(path string) (*Rules, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read rules: %w", err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes and validates rule file contents.
func Parse(data []byte) (*Rules, error) {
	r := &Rules{}
	if err := yaml.Unmarshal(data, r); err != nil {
		return nil, fmt.Errorf("parse rules: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the rule file for missing or contradictory fields.
func (r *Rules) Validate() error {
	if r.Patterns == nil {
		return errors.New("rules: patterns is required")
	}
	if r.Replacement != nil && r.Replacements != nil {
		return errors.New("rules: replacement and replacements are mutually exclusive")
	}
	if r.Replacements != nil && len(r.Replacements) != len(r.Patterns) {
		return fmt.Errorf("rules: %d replacements for %d patterns", len(r.Replacements), len(r.Patterns))
	}
	if _, err := r.MatcherConfig(); err != nil {
		return err
	}
	return nil
}

// MatcherConfig converts the matching fields to a flint.Config.
func (r *Rules) MatcherConfig() (flint.Config, error) {
	cfg := flint.DefaultConfig()

	cmp, err := flint.ParseComparison(r.Comparison)
	if err != nil {
		return cfg, fmt.Errorf("rules: comparison: %w", err)
	}
	cfg.Comparison = cmp

	mode, err := flint.ParseMatchMode(r.Mode)
	if err != nil {
		return cfg, fmt.Errorf("rules: mode: %w", err)
	}
	cfg.MatchMode = mode

	if r.Culture != "" {
		tag, err := language.Parse(r.Culture)
		if err != nil {
			return cfg, fmt.Errorf("rules: culture: %w", err)
		}
		cfg.Culture = tag
	}
	if r.Prefilter != nil {
		cfg.DisablePrefilter = !*r.Prefilter
	}
	return cfg, nil
}

// HasReplacement reports whether the rules define any replacement.
func (r *Rules) HasReplacement() bool {
	return r.Replacement != nil || r.Replacements != nil
}
