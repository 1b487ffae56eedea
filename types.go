package bento

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-bento/internal/pipeline"
)

// Sizing and styling bounds.
const (
	MaxDimension = 16 // grid cells per axis
	MaxClasses   = 16
	MaxVariables = 32
)

// Dimensions is the module size in grid cells. Zero means unspecified.
type Dimensions struct {
	Width  int
	Height int
}

// Validate checks that both axes are within 0..MaxDimension.
// Returns nil if d is nil (nil means unspecified).
func (d *Dimensions) Validate() error {
	if d == nil {
		return nil
	}
	if d.Width < 0 || d.Width > MaxDimension {
		return fmt.Errorf("%w: width %d (must be between 0 and %d)", ErrInvalidDimensions, d.Width, MaxDimension)
	}
	if d.Height < 0 || d.Height > MaxDimension {
		return fmt.Errorf("%w: height %d (must be between 0 and %d)", ErrInvalidDimensions, d.Height, MaxDimension)
	}
	return nil
}

// StyleContext carries the page theme into a module container: utility
// classes (radius, colors) and CSS custom properties. It is passed through
// opaquely once validated.
type StyleContext struct {
	Classes   []string          // e.g. "rounded-3xl", "bg-stone-50"
	Variables map[string]string // name with or without "--" -> value
}

// Validate checks every class and variable.
// Returns nil if s is nil (nil means no theme).
func (s *StyleContext) Validate() error {
	if s == nil {
		return nil
	}
	if len(s.Classes) > MaxClasses {
		return fmt.Errorf("%w: %d classes (max %d)", ErrInvalidStyle, len(s.Classes), MaxClasses)
	}
	if len(s.Variables) > MaxVariables {
		return fmt.Errorf("%w: %d variables (max %d)", ErrInvalidStyle, len(s.Variables), MaxVariables)
	}
	for _, class := range s.Classes {
		if err := pipeline.ValidateClass(class); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStyle, err)
		}
	}
	for name, value := range s.Variables {
		if err := pipeline.ValidateVariable(name, value); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidStyle, err)
		}
	}
	return nil
}

// Input contains the parameters of a single render.
type Input struct {
	Text     string        // Markdown, literal HTML and shortcodes
	Editable bool          // adds the pointer-capturing overlay
	Size     *Dimensions   // optional
	Style    *StyleContext // optional
}

// IsEmpty reports whether the text is empty or whitespace only.
func (in Input) IsEmpty() bool {
	return strings.TrimSpace(in.Text) == ""
}

// ModuleContent is the persisted payload of a custom module.
type ModuleContent struct {
	Text string `json:"text" yaml:"text"`
}

// IsEmpty reports whether the module has no visible source.
func (m ModuleContent) IsEmpty() bool {
	return strings.TrimSpace(m.Text) == ""
}

// Input returns a render input for the module content.
func (m ModuleContent) Input(editable bool) Input {
	return Input{Text: m.Text, Editable: editable}
}

// Result is the output of a render.
type Result struct {
	HTML     string      // rendered container markup
	Expanded string      // text after shortcode expansion, empty for empty input
	Empty    bool        // the placeholder was rendered
	Tree     *MarkupTree // parsed container, for inspection

	stylesheet string
	injector   pipeline.CSSInjector
}

// Document wraps the rendered container in a standalone HTML5 document with
// the renderer's stylesheet. An empty title uses a default.
func (r *Result) Document(title string) string {
	injector := r.injector
	if injector == nil {
		injector = &pipeline.CSSInjection{}
	}
	doc := pipeline.WrapDocument(r.HTML, title)
	return injector.InjectCSS(context.Background(), doc, r.stylesheet)
}
