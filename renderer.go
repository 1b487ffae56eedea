package bento

import (
	"context"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/alnah/go-bento/internal/assets"
	"github.com/alnah/go-bento/internal/fileutil"
	"github.com/alnah/go-bento/internal/pipeline"
	"github.com/alnah/go-bento/internal/shortcode"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.ShortcodePreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.HTMLSanitizer        = (*pipeline.PolicySanitizer)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ pipeline.ShortcodeExpander    = (*shortcode.Expander)(nil)
)

// Renderer turns custom module text into a styled, sanitized container.
// Create with NewRenderer(). A Renderer holds no mutable state after
// construction and is safe for concurrent use.
type Renderer struct {
	cfg               rendererConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	expander          *shortcode.Expander
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     pipeline.HTMLConverter
	sanitizer         pipeline.HTMLSanitizer
	cssInjector       pipeline.CSSInjector
	stylesheet        string
}

// NewRenderer creates a Renderer with default configuration.
// Use options to customize behavior (e.g., WithAssetPath, WithTemplateSet, WithLogger).
// Returns error if asset loading or template parsing fails.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg: rendererConfig{
			logger:          zerolog.Nop(),
			templateSetName: DefaultTemplateSet,
			highlight:       true,
			highlightStyle:  pipeline.DefaultHighlightStyle,
		},
		assetLoader: assets.NewEmbeddedLoader(),
		cssInjector: &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(r.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		r.assetLoader = resolver
	}

	if r.publicAssetLoader != nil {
		r.assetLoader = &publicToInternalAdapter{pub: r.publicAssetLoader}
	}

	var templateSet *assets.TemplateSet
	if r.cfg.templateSet != nil {
		templateSet = r.cfg.templateSet.toInternal()
	} else {
		ts, err := r.assetLoader.LoadTemplateSet(r.cfg.templateSetName)
		if err != nil {
			return nil, fmt.Errorf("loading template set %q: %w", r.cfg.templateSetName, convertTemplateSetError(err))
		}
		templateSet = ts
	}

	expander, err := shortcode.NewExpander(templateSet,
		shortcode.WithLogger(r.cfg.logger.With().Str("component", "shortcode").Logger()),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	r.expander = expander

	if r.preprocessor == nil {
		r.preprocessor = pipeline.NewShortcodePreprocessor(expander)
	}

	if r.htmlConverter == nil {
		var convOpts []pipeline.ConverterOption
		if r.cfg.highlight {
			if !slices.Contains(pipeline.HighlightStyles(), r.cfg.highlightStyle) {
				return nil, fmt.Errorf("%w: %q", ErrInvalidHighlightStyle, r.cfg.highlightStyle)
			}
			convOpts = append(convOpts, pipeline.WithHighlightStyle(r.cfg.highlightStyle))
		} else {
			convOpts = append(convOpts, pipeline.WithoutHighlighting())
		}
		r.htmlConverter = pipeline.NewGoldmarkConverter(convOpts...)
	}

	if r.sanitizer == nil {
		r.sanitizer = pipeline.NewPolicySanitizer(r.cfg.policy)
	}

	if err := r.resolveStyle(); err != nil {
		return nil, err
	}
	if err := r.buildStylesheet(); err != nil {
		return nil, err
	}

	return r, nil
}

// Render expands shortcodes, converts the text to HTML, sanitizes it and
// wraps it in the module container. Content problems never produce an
// error; see the package sentinels for what does.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (r *Renderer) Render(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: internal error: %v", ErrRender, rec)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	empty := input.IsEmpty()

	var expanded, fragment string
	if !empty {
		expanded = r.preprocessor.PreprocessMarkdown(ctx, input.Text)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		htmlContent, err := r.htmlConverter.ToHTML(ctx, expanded)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("%w: %w", ErrRender, err)
		}

		fragment = r.sanitizer.Sanitize(ctx, htmlContent)
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// Sanitizing also re-serializes markup, so the delta is not a count
		// of removed content.
		r.cfg.logger.Debug().
			Int("size_delta", len(fragment)-len(htmlContent)).
			Msg("sanitized fragment")
	}

	container := pipeline.Container{
		Editable: input.Editable,
		Empty:    empty,
	}
	if input.Size != nil {
		container.Width = input.Size.Width
		container.Height = input.Size.Height
	}
	if input.Style != nil {
		container.Classes = input.Style.Classes
		container.Variables = input.Style.Variables
	}

	root, err := pipeline.BuildTree(fragment, container)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}
	out, err := pipeline.RenderNode(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRender, err)
	}

	r.cfg.logger.Debug().
		Bool("editable", input.Editable).
		Bool("empty", empty).
		Int("bytes", len(out)).
		Dur("duration", time.Since(start)).
		Msg("rendered module")

	return &Result{
		HTML:       out,
		Expanded:   expanded,
		Empty:      empty,
		Tree:       &MarkupTree{root: root},
		stylesheet: r.stylesheet,
		injector:   r.cssInjector,
	}, nil
}

// Expand returns text with shortcodes replaced by this renderer's fragments.
func (r *Renderer) Expand(text string) string {
	return r.expander.Expand(text)
}

// Stylesheet returns the CSS for rendered modules: the module style followed
// by the highlighting rules when highlighting is enabled.
func (r *Renderer) Stylesheet() string {
	return r.stylesheet
}

// resolveStyle resolves the style input (name, path, or CSS content) to CSS content.
// An empty input selects the default style.
func (r *Renderer) resolveStyle() error {
	input := r.cfg.styleInput
	if input == "" {
		input = DefaultStyle
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		r.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		r.cfg.resolvedStyle = input
		return nil
	}

	// Style name -> use asset loader
	css, err := r.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, convertAssetError(err))
	}
	r.cfg.resolvedStyle = css
	return nil
}

func (r *Renderer) buildStylesheet() error {
	r.stylesheet = r.cfg.resolvedStyle
	if !r.cfg.highlight {
		return nil
	}
	css, err := pipeline.HighlightCSS(r.cfg.highlightStyle)
	if err != nil {
		return err
	}
	r.stylesheet += "\n" + css
	return nil
}

// validateInput checks caller-supplied sizing and styling.
//
// This is a TRUST BOUNDARY for direct library users who build Input manually.
// CLI users have their theme checked earlier by Config.Validate() at config
// load time; both paths converge here.
func validateInput(input Input) error {
	if err := input.Size.Validate(); err != nil {
		return err
	}
	if err := input.Style.Validate(); err != nil {
		return err
	}
	return nil
}
