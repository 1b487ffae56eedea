// Package pipeline implements the stages that turn custom module text into
// a markup tree.
//
// Stages, in order:
//   - Preprocessing: line ending normalization and shortcode expansion
//   - Markdown to HTML conversion via Goldmark (raw HTML passed through)
//   - Sanitizing with a bluemonday allowlist (no scripts, handlers or styles)
//   - Tree assembly: container, content wrapper, empty placeholder, overlay
//   - External link rewriting on the assembled tree
//
// Standalone preview documents reuse the CSS injection stage and the
// document wrapper. Each stage is an interface so the root bento package
// can compose them and tests can replace them.
package pipeline
