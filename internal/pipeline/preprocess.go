package pipeline

import (
	"context"
	"regexp"
)

// Line ending normalization
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// ShortcodeExpander replaces shortcode tokens with HTML fragments.
type ShortcodeExpander interface {
	Expand(text string) string
}

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// ShortcodePreprocessor normalizes line endings and expands shortcodes
// before the Markdown stage.
type ShortcodePreprocessor struct {
	expander ShortcodeExpander
}

// NewShortcodePreprocessor creates a preprocessor around expander.
// A nil expander only normalizes line endings.
func NewShortcodePreprocessor(expander ShortcodeExpander) *ShortcodePreprocessor {
	return &ShortcodePreprocessor{expander: expander}
}

// PreprocessMarkdown applies all transformations to prepare Markdown for conversion.
func (p *ShortcodePreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = normalizeLineEndings(content)
	if p.expander != nil {
		content = p.expander.Expand(content)
	}
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// Compile-time interface check.
var _ MarkdownPreprocessor = (*ShortcodePreprocessor)(nil)
