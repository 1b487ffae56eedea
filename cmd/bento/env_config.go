package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-bento/internal/config"
)

// envConfig holds configuration from BENTO_* environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // BENTO_CONFIG: config name or path
	Style      string // BENTO_STYLE: module style name or path
	Templates  string // BENTO_TEMPLATES: shortcode template set name
	AssetPath  string // BENTO_ASSET_PATH: custom asset directory
	InputDir   string // BENTO_INPUT_DIR: default input directory
	OutputDir  string // BENTO_OUTPUT_DIR: default output directory
	LogLevel   string // BENTO_LOG_LEVEL: zerolog level name
	Workers    int    // BENTO_WORKERS: parallel workers
}

// knownEnvVars lists valid BENTO_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"BENTO_CONFIG":     true,
	"BENTO_STYLE":      true,
	"BENTO_TEMPLATES":  true,
	"BENTO_ASSET_PATH": true,
	"BENTO_INPUT_DIR":  true,
	"BENTO_OUTPUT_DIR": true,
	"BENTO_LOG_LEVEL":  true,
	"BENTO_WORKERS":    true,
	"BENTO_CONTAINER":  true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Malformed numeric values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("BENTO_CONFIG"),
		Style:      os.Getenv("BENTO_STYLE"),
		Templates:  os.Getenv("BENTO_TEMPLATES"),
		AssetPath:  os.Getenv("BENTO_ASSET_PATH"),
		InputDir:   os.Getenv("BENTO_INPUT_DIR"),
		OutputDir:  os.Getenv("BENTO_OUTPUT_DIR"),
		LogLevel:   os.Getenv("BENTO_LOG_LEVEL"),
	}

	if workers := os.Getenv("BENTO_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized BENTO_* variable.
// Helps catch typos like BENTO_STYLES.
func warnUnknownEnvVars(logger zerolog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, "BENTO_") {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn().Str("variable", name).Msg("unknown environment variable (typo?)")
		}
	}
}

// applyEnvConfig applies environment values to cfg where cfg is still empty.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeAssetFlags and mergeRenderFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Style != "" && cfg.Assets.Style == "" {
		cfg.Assets.Style = env.Style
	}
	if env.Templates != "" && cfg.Assets.TemplateSet == "" {
		cfg.Assets.TemplateSet = env.Templates
	}
	if env.AssetPath != "" && cfg.Assets.BasePath == "" {
		cfg.Assets.BasePath = env.AssetPath
	}
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.LogLevel != "" && cfg.Log.Level == "" {
		cfg.Log.Level = env.LogLevel
	}
}
