// Package bento renders the custom module of a bento-grid page: user text
// mixing Markdown, literal HTML and shortcodes, turned into a styled,
// sanitized container ready to place on the grid.
//
// # Quick Start
//
//	r, err := bento.NewRenderer()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := r.Render(ctx, bento.Input{
//	    Text: "## Launch\n\n{{badge text=\"New\" color=\"green\"}} is **live**",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.HTML)
//
// # Shortcodes
//
// Shortcodes are single tokens of the form {{kind key="value" ...}}:
//
//	{{project title="Atlas" desc="Maps for teams" link="atlas.dev" image="https://..."}}
//	{{metric label="MRR" value="$9,383" unit="/mo"}}
//	{{badge text="New" color="blue"}}
//	{{tip count="12" label="Tips"}}
//
// Missing attributes take defaults, unknown badge colors fall back to stone,
// links without a scheme get https://, and unknown kinds or malformed tokens
// are left as written. Values cannot contain a double quote. Expand and
// Shortcodes expose the expander and its catalogue on their own.
//
// # Rendering Pipeline
//
//  1. Preprocessing: line ending normalization and shortcode expansion
//  2. Markdown to HTML via Goldmark (GFM, raw HTML kept, highlighted code)
//  3. Sanitizing: scripts, event handlers and inline styles are removed,
//     classes are kept
//  4. Container assembly: theme classes, sizing, CSS custom properties,
//     empty placeholder and, for editable modules, a pointer-capturing overlay
//
// # Configuration
//
// Use functional options to customize the renderer:
//
//	r, err := bento.NewRenderer(
//	    bento.WithAssetPath("/path/to/assets"),
//	    bento.WithHighlightStyle("monokai"),
//	    bento.WithLogger(logger),
//	)
//
// Per-render options are passed via Input:
//
//	result, err := r.Render(ctx, bento.Input{
//	    Text:     content,
//	    Editable: true,
//	    Size:     &bento.Dimensions{Width: 2, Height: 1},
//	    Style: &bento.StyleContext{
//	        Classes:   []string{"rounded-3xl", "bg-stone-50"},
//	        Variables: map[string]string{"accent": "#2563eb"},
//	    },
//	})
//
// Result.Document wraps the container in a standalone HTML page with the
// module stylesheet for previews.
//
// # Errors
//
// Content never fails to render. Errors are returned for invalid Dimensions
// (ErrInvalidDimensions), invalid StyleContext (ErrInvalidStyle), asset and
// template problems at construction, and context cancellation.
package bento
