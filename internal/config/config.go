// Package config holds viewer configuration. Settings are assembled from
// three sources in priority order: CLI flags, a .slipdeck.yaml config file
// (current directory first, then $HOME), and defaults.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultSettleDelay = 150 * time.Millisecond
	DefaultSyntaxStyle = "monokai"
	DefaultAccent      = "12"

	// FileName is the config file looked up when --config is not given.
	FileName = ".slipdeck.yaml"

	// maxSettleDelay keeps a typo in the config from freezing navigation.
	maxSettleDelay = 2 * time.Second
)

// Config holds viewer settings.
type Config struct {
	// SettleDelay is the pause between requesting a navigation and the
	// slide change taking effect.
	SettleDelay time.Duration `yaml:"settle_delay"`

	// SyntaxStyle is the chroma style used for code highlighting.
	SyntaxStyle string `yaml:"syntax_style"`

	// Accent is the terminal color for indicators and diagram art.
	Accent string `yaml:"accent"`

	// NoColor disables colored output in the non-TUI commands.
	NoColor bool `yaml:"no_color"`

	// Logger is the structured logger. Not configurable via file/flags.
	Logger *slog.Logger `yaml:"-"`
}

// ApplyDefaults fills in zero-valued fields with sensible defaults.
func (c *Config) ApplyDefaults() {
	if c.SettleDelay == 0 {
		c.SettleDelay = DefaultSettleDelay
	}
	if c.SyntaxStyle == "" {
		c.SyntaxStyle = DefaultSyntaxStyle
	}
	if c.Accent == "" {
		c.Accent = DefaultAccent
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}

// Validate checks that configuration values are valid.
// Call after ApplyDefaults.
func (c *Config) Validate() error {
	if c.SettleDelay <= 0 {
		return fmt.Errorf("settle-delay must be positive, got %v", c.SettleDelay)
	}
	if c.SettleDelay > maxSettleDelay {
		return fmt.Errorf("settle-delay must be at most %v, got %v", maxSettleDelay, c.SettleDelay)
	}
	if c.SyntaxStyle == "" {
		return fmt.Errorf("syntax-style must not be empty")
	}
	return nil
}

// LoadFile reads a YAML config file and merges it into the config.
// Only zero-valued fields are overwritten — CLI flags take precedence.
// Returns nil if the file does not exist.
func LoadFile(path string, into *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	merge(&file, into)
	return nil
}

// Resolve builds the effective config: flag values already set on cfg win,
// then the config file (explicit path, or FileName in cwd then $HOME),
// then defaults. Validation runs last.
func Resolve(cfg *Config, explicitPath string) error {
	paths := []string{explicitPath}
	if explicitPath == "" {
		paths = []string{FileName}
		if home, err := os.UserHomeDir(); err == nil {
			paths = append(paths, filepath.Join(home, FileName))
		}
	}

	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := LoadFile(p, cfg); err != nil {
			return err
		}
	}

	cfg.ApplyDefaults()
	return cfg.Validate()
}

// merge copies non-zero fields from src into dst, but only where dst has
// the zero value. CLI flags (set on dst before merge) take priority over
// file values.
func merge(src, dst *Config) {
	if dst.SettleDelay == 0 {
		dst.SettleDelay = src.SettleDelay
	}
	if dst.SyntaxStyle == "" {
		dst.SyntaxStyle = src.SyntaxStyle
	}
	if dst.Accent == "" {
		dst.Accent = src.Accent
	}
	// NoColor is a bool — zero is false, so only true merges from file.
	if src.NoColor && !dst.NoColor {
		dst.NoColor = true
	}
}
