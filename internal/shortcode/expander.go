package shortcode

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/alnah/go-bento/internal/assets"
)

// ErrTemplateParse indicates a shortcode template could not be parsed.
var ErrTemplateParse = errors.New("shortcode template parse failed")

var (
	// Line breaks and indentation between template lines
	templateLayout = regexp.MustCompile(`\s*\n\s*`)

	// Line breaks inside rendered values
	fragmentNewline = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

	// Braces from attribute values must not form a new "{{" in the output
	fragmentBraces = strings.NewReplacer("{", "&#123;", "}", "&#125;")
)

// Expander replaces shortcode tokens with HTML fragments.
// It is safe for concurrent use once constructed.
type Expander struct {
	tmpl   *template.Template
	logger zerolog.Logger
}

// ExpanderOption configures an Expander.
type ExpanderOption func(*Expander)

// WithLogger sets the logger used for passthrough diagnostics.
func WithLogger(l zerolog.Logger) ExpanderOption {
	return func(e *Expander) {
		e.logger = l
	}
}

// NewExpander parses the templates of set, one per kind.
// Returns ErrTemplateParse if any template is invalid.
func NewExpander(set *assets.TemplateSet, opts ...ExpanderOption) (*Expander, error) {
	if set == nil {
		return nil, fmt.Errorf("%w: nil template set", ErrTemplateParse)
	}

	root := template.New("shortcodes")
	for _, kind := range Kinds {
		src := set.Sources()[string(kind)]
		src = templateLayout.ReplaceAllString(strings.TrimSpace(src), "")
		if _, err := root.New(string(kind)).Parse(src); err != nil {
			return nil, fmt.Errorf("%w: %s (set %q): %v", ErrTemplateParse, kind, set.Name, err)
		}
	}

	e := &Expander{tmpl: root, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Expand returns text with every recognized shortcode replaced by its fragment.
// Unknown kinds and malformed tokens are kept verbatim. Expand never fails.
func (e *Expander) Expand(text string) string {
	if !strings.Contains(text, openDelim) {
		return text
	}

	var out strings.Builder
	out.Grow(len(text))

	for _, seg := range Scan(text) {
		if seg.Token == nil {
			out.WriteString(seg.Text)
			continue
		}
		fragment, err := e.Fragment(Decode(*seg.Token))
		if err != nil {
			// A broken custom template degrades to the visible source text.
			e.logger.Warn().Err(err).Str("kind", seg.Token.Name).Msg("shortcode template failed")
			out.WriteString(seg.Token.Raw)
			continue
		}
		out.WriteString(fragment)
	}
	return out.String()
}

// Fragment renders a single decoded shortcode.
// Unknown shortcodes render as their raw source text.
func (e *Expander) Fragment(sc Shortcode) (string, error) {
	if u, ok := sc.(Unknown); ok {
		e.logger.Debug().Str("kind", u.Name).Msg("unknown shortcode left as text")
		return u.Raw, nil
	}

	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, string(sc.Kind()), sc); err != nil {
		return "", fmt.Errorf("executing %s template: %w", sc.Kind(), err)
	}

	fragment := fragmentNewline.Replace(buf.String())
	return fragmentBraces.Replace(fragment), nil
}

func assetsDefaultSet() (*assets.TemplateSet, error) {
	return assets.LoadTemplateSet(assets.DefaultTemplateSetName)
}
