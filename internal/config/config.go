package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"

	"github.com/alnah/go-bento/internal/fileutil"
	"github.com/alnah/go-bento/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field limits.
const (
	MaxPathLength     = 4096
	MaxPatternLength  = 256
	MaxPatterns       = 32
	MaxNameLength     = 64  // template set, style, highlight style
	MaxClassLength    = 128 // single theme class
	MaxVariables      = 32
	MaxVariableLength = 256
	MaxDimension      = 16 // grid cells
)

// Config holds all configuration for module rendering.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Render RenderConfig `yaml:"render"`
	Theme  ThemeConfig  `yaml:"theme"`
	Assets AssetsConfig `yaml:"assets"`
	Log    LogConfig    `yaml:"log"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string   `yaml:"defaultDir"` // Default input directory (empty = must specify)
	Include    []string `yaml:"include"`    // doublestar globs, relative to the input directory
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Standalone bool   `yaml:"standalone"` // Write full HTML documents instead of fragments
}

// RenderConfig defines per-module rendering options.
type RenderConfig struct {
	Editable  bool   `yaml:"editable"`
	Width     int    `yaml:"width"`     // grid columns, 0 = unspecified
	Height    int    `yaml:"height"`    // grid rows, 0 = unspecified
	Highlight string `yaml:"highlight"` // chroma style, "none" disables highlighting
}

// ThemeConfig defines the style context passed to every rendered module.
type ThemeConfig struct {
	Radius     string            `yaml:"radius"`     // e.g. "rounded-xl"
	Background string            `yaml:"background"` // e.g. "bg-stone-50"
	Foreground string            `yaml:"foreground"` // e.g. "text-stone-900"
	Accent     string            `yaml:"accent"`     // e.g. "accent-blue-600"
	Variables  map[string]string `yaml:"variables"`  // CSS custom properties
}

// Classes returns the non-empty theme classes in a stable order.
func (t ThemeConfig) Classes() []string {
	var classes []string
	for _, c := range []string{t.Radius, t.Background, t.Foreground, t.Accent} {
		if c = strings.TrimSpace(c); c != "" {
			classes = append(classes, c)
		}
	}
	return classes
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath    string `yaml:"basePath"`    // Empty = use embedded assets
	TemplateSet string `yaml:"templateSet"` // Shortcode template set name
	Style       string `yaml:"style"`       // Module stylesheet name, path or inline CSS
}

// LogConfig defines CLI logging options.
type LogConfig struct {
	Level string `yaml:"level"` // zerolog level name (empty = warn)
}

// Validate checks field lengths, ranges and patterns.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if len(c.Input.Include) > MaxPatterns {
		return fmt.Errorf("%w: input.include has %d patterns (max %d)", ErrInvalidValue, len(c.Input.Include), MaxPatterns)
	}
	for i, pattern := range c.Input.Include {
		field := fmt.Sprintf("input.include[%d]", i)
		if err := validateFieldLength(field, pattern, MaxPatternLength); err != nil {
			return err
		}
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: %s: malformed pattern %q", ErrInvalidValue, field, pattern)
		}
	}

	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	if err := validateDimension("render.width", c.Render.Width); err != nil {
		return err
	}
	if err := validateDimension("render.height", c.Render.Height); err != nil {
		return err
	}
	if err := validateFieldLength("render.highlight", c.Render.Highlight, MaxNameLength); err != nil {
		return err
	}

	themeFields := []struct{ name, value string }{
		{"theme.radius", c.Theme.Radius},
		{"theme.background", c.Theme.Background},
		{"theme.foreground", c.Theme.Foreground},
		{"theme.accent", c.Theme.Accent},
	}
	for _, f := range themeFields {
		if err := validateFieldLength(f.name, f.value, MaxClassLength); err != nil {
			return err
		}
		if strings.ContainsAny(strings.TrimSpace(f.value), " \t\n") {
			return fmt.Errorf("%w: %s: %q must be a single class", ErrInvalidValue, f.name, f.value)
		}
	}
	if len(c.Theme.Variables) > MaxVariables {
		return fmt.Errorf("%w: theme.variables has %d entries (max %d)", ErrInvalidValue, len(c.Theme.Variables), MaxVariables)
	}
	for name, value := range c.Theme.Variables {
		if err := validateFieldLength("theme.variables."+name, value, MaxVariableLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.templateSet", c.Assets.TemplateSet, MaxNameLength); err != nil {
		return err
	}

	if c.Log.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
			return fmt.Errorf("%w: log.level: %q", ErrInvalidValue, c.Log.Level)
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

func validateDimension(fieldName string, value int) error {
	if value < 0 || value > MaxDimension {
		return fmt.Errorf("%w: %s: must be between 0 and %d, got %d", ErrInvalidValue, fieldName, MaxDimension, value)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: embedded assets, read-only
// fragments, no theme.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Include: []string{"**/*.md"}},
		Output: OutputConfig{},
		Render: RenderConfig{},
		Theme:  ThemeConfig{},
		Assets: AssetsConfig{},
		Log:    LogConfig{},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeConfig(data, cfg); err != nil {
		// An empty file selects the defaults, like no config at all.
		if errors.Is(err, yamlutil.ErrEmptyDocument) {
			return cfg, nil
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths returns the locations LoadConfig tries for a config name.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, "go-bento", name+ext))
		}
	}
	return paths
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-bento/
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
