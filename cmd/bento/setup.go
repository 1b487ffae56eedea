package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.uber.org/automaxprocs/maxprocs"

	bento "github.com/alnah/go-bento"
	"github.com/alnah/go-bento/internal/config"
	"github.com/alnah/go-bento/internal/fileutil"
	"github.com/alnah/go-bento/internal/hints"
	"github.com/alnah/go-bento/internal/logging"
	"github.com/alnah/go-bento/internal/pipeline"
)

// highlightNone disables code highlighting when given as the highlight style.
const highlightNone = "none"

// session is what every rendering command needs once flags are parsed.
type session struct {
	cfg    *config.Config
	env    *envConfig
	logger zerolog.Logger
}

// newSession loads configuration, applies environment overrides and sets
// up logging. Config precedence: CLI flags > env vars > config file > defaults.
func newSession(common *commonFlags, env *Environment) (*session, error) {
	envCfg := loadEnvConfig()

	cfg, err := loadConfig(common.config, envCfg)
	if err != nil {
		return nil, err
	}
	applyEnvConfig(envCfg, cfg)

	logger, err := logging.Setup(logging.Options{
		Out:       env.Stderr,
		Verbosity: common.verbose,
		Quiet:     common.quiet,
		Level:     cfg.Log.Level,
		NoColor:   common.noColor,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", config.ErrInvalidValue, err)
	}
	warnUnknownEnvVars(logger)

	// maxprocs.Set only fails if GOMAXPROCS is invalid, in which case the
	// runtime default applies.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		logger.Debug().Msgf(format, args...)
	}))

	return &session{cfg: cfg, env: envCfg, logger: logger}, nil
}

// loadConfig loads the named config, falling back to BENTO_CONFIG and then
// to defaults when no name is given.
func loadConfig(name string, env *envConfig) (*config.Config, error) {
	if name == "" {
		name = env.ConfigPath
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
			return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeAssetFlags merges asset flags into cfg. CLI values override config values.
func mergeAssetFlags(f *assetFlags, cfg *config.Config) {
	if f.style != "" {
		cfg.Assets.Style = f.style
	}
	if f.templates != "" {
		cfg.Assets.TemplateSet = f.templates
	}
	if f.assetPath != "" {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.highlight != "" {
		cfg.Render.Highlight = f.highlight
	}
}

// newRenderer builds a Renderer from the merged configuration.
func newRenderer(cfg *config.Config) (*bento.Renderer, error) {
	opts := []bento.Option{bento.WithLogger(logging.Component("render"))}

	if cfg.Assets.BasePath != "" {
		opts = append(opts, bento.WithAssetPath(cfg.Assets.BasePath))
	}
	if cfg.Assets.TemplateSet != "" {
		opts = append(opts, bento.WithTemplateSetName(cfg.Assets.TemplateSet))
	}
	if cfg.Assets.Style != "" {
		opts = append(opts, bento.WithStyle(cfg.Assets.Style))
	}
	switch cfg.Render.Highlight {
	case "":
	case highlightNone:
		opts = append(opts, bento.WithoutHighlighting())
	default:
		opts = append(opts, bento.WithHighlightStyle(cfg.Render.Highlight))
	}

	r, err := bento.NewRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("%w%s", err, assetHint(err))
	}
	return r, nil
}

// assetHint returns an actionable hint for renderer construction errors.
func assetHint(err error) string {
	switch {
	case errors.Is(err, bento.ErrIncompleteTemplateSet), errors.Is(err, bento.ErrTemplateSetNotFound):
		return hints.ForTemplateSet(templateFiles())
	case errors.Is(err, bento.ErrInvalidHighlightStyle):
		return hints.ForStyleNotFound(pipeline.HighlightStyles())
	case errors.Is(err, bento.ErrStyleNotFound):
		return hints.ForStyleNotFound([]string{bento.DefaultStyle})
	default:
		return ""
	}
}

// templateFiles lists the files a template set directory must contain.
func templateFiles() []string {
	specs := bento.Shortcodes()
	files := make([]string, len(specs))
	for i, s := range specs {
		files[i] = s.Kind + ".html"
	}
	return files
}

// styleContext returns the theme as a StyleContext, or nil without a theme.
func styleContext(cfg *config.Config) (*bento.StyleContext, error) {
	classes := cfg.Theme.Classes()
	if len(classes) == 0 && len(cfg.Theme.Variables) == 0 {
		return nil, nil
	}
	sc := &bento.StyleContext{Classes: classes, Variables: cfg.Theme.Variables}
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("theme: %w%s", err, hints.ForInvalidStyle())
	}
	return sc, nil
}

// dimensions returns the configured module size, or nil when unspecified.
func dimensions(cfg *config.Config) (*bento.Dimensions, error) {
	if cfg.Render.Width == 0 && cfg.Render.Height == 0 {
		return nil, nil
	}
	d := &bento.Dimensions{Width: cfg.Render.Width, Height: cfg.Render.Height}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return d, nil
}
