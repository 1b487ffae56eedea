package bento

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/alnah/go-bento/internal/pipeline"
)

// MarkupTree is the parsed module container.
type MarkupTree struct {
	root *html.Node
}

// Root returns the container element.
func (t *MarkupTree) Root() *html.Node {
	return t.root
}

// Find returns the elements matching a CSS selector, in document order.
// The container itself is a candidate, so selectors on its classes, sizing
// attributes or style match it.
func (t *MarkupTree) Find(selector string) ([]*html.Node, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", selector, err)
	}
	return sel.MatchAll(t.root), nil
}

// Has reports whether any element matches selector.
// An invalid selector matches nothing.
func (t *MarkupTree) Has(selector string) bool {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return false
	}
	return sel.MatchFirst(t.root) != nil
}

// Text returns the visible text of the tree with whitespace collapsed.
func (t *MarkupTree) Text() string {
	return strings.Join(strings.Fields(pipeline.TextContent(t.root)), " ")
}

// String renders the tree.
func (t *MarkupTree) String() string {
	out, err := pipeline.RenderNode(t.root)
	if err != nil {
		return ""
	}
	return out
}
