package bento

import "errors"

// Sentinel errors for library operations.
//
// Content never produces an error: malformed shortcodes, unknown kinds and
// broken Markdown render best-effort. Errors come from configuration,
// caller-supplied sizing and styling, and context cancellation.
var (
	ErrRender        = errors.New("module render failed")
	ErrTemplateParse = errors.New("shortcode template parse failed")

	// Input validation errors.
	ErrInvalidDimensions = errors.New("invalid dimensions")
	ErrInvalidStyle      = errors.New("invalid style context")

	// Renderer configuration errors.
	ErrInvalidHighlightStyle = errors.New("unknown highlight style")

	// Asset loading errors.
	ErrStyleNotFound         = errors.New("style not found")
	ErrTemplateSetNotFound   = errors.New("template set not found")
	ErrIncompleteTemplateSet = errors.New("template set missing required template")
	ErrInvalidAssetPath      = errors.New("invalid asset path")
)
