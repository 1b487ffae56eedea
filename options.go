package bento

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
)

// Option configures a Renderer.
type Option func(*Renderer)

// rendererConfig holds internal configuration for Renderer.
type rendererConfig struct {
	logger          zerolog.Logger
	assetPath       string
	templateSetName string
	templateSet     *TemplateSet
	styleInput      string
	resolvedStyle   string
	highlight       bool
	highlightStyle  string
	policy          *bluemonday.Policy
}

// WithLogger sets the logger for render diagnostics (unknown shortcodes,
// sanitizer removals, timing). The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Renderer) {
		r.cfg.logger = l
	}
}

// WithAssetPath loads styles and template sets from a directory, falling
// back to the embedded assets for anything it does not contain.
func WithAssetPath(path string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(r *Renderer) {
		r.publicAssetLoader = loader
	}
}

// WithTemplateSet uses ts for shortcode fragments instead of loading a set.
func WithTemplateSet(ts *TemplateSet) Option {
	return func(r *Renderer) {
		r.cfg.templateSet = ts
	}
}

// WithTemplateSetName loads the named template set through the asset loader.
func WithTemplateSetName(name string) Option {
	return func(r *Renderer) {
		r.cfg.templateSetName = name
	}
}

// WithStyle sets the module stylesheet. The input may be a style name
// ("default"), a file path ("./brand.css") or CSS content.
func WithStyle(style string) Option {
	return func(r *Renderer) {
		r.cfg.styleInput = style
	}
}

// WithoutHighlighting disables syntax highlighting of fenced code blocks.
func WithoutHighlighting() Option {
	return func(r *Renderer) {
		r.cfg.highlight = false
	}
}

// WithHighlightStyle selects the chroma style for code blocks.
// NewRenderer returns ErrInvalidHighlightStyle for unknown names.
func WithHighlightStyle(name string) Option {
	return func(r *Renderer) {
		r.cfg.highlightStyle = name
	}
}

// WithSanitizerPolicy replaces the default sanitizer allowlist.
func WithSanitizerPolicy(p *bluemonday.Policy) Option {
	return func(r *Renderer) {
		r.cfg.policy = p
	}
}
