package pipeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrTreeBuild indicates the module markup tree could not be assembled.
var ErrTreeBuild = errors.New("markup tree build failed")

// EmptyPlaceholder is the text shown for a module without content.
const EmptyPlaceholder = "Empty custom module"

// Class names of the module container structure.
const (
	ModuleClass   = "bento-module"
	EditableClass = "bento-module-editable"
	ContentClass  = "bento-content"
	OverlayClass  = "bento-overlay"
	EmptyClass    = "bento-empty"
)

// Inline declarations that make the overlay work without the stylesheet.
const (
	containerStyle = "position:relative"
	overlayStyle   = "position:absolute;inset:0;z-index:10;background:transparent"
)

// Container describes the element wrapped around a rendered fragment.
type Container struct {
	Editable  bool              // adds the pointer-capturing overlay
	Empty     bool              // renders the placeholder instead of content
	Width     int               // grid columns, 0 when unspecified
	Height    int               // grid rows, 0 when unspecified
	Classes   []string          // validated theme classes
	Variables map[string]string // CSS custom properties, validated by InlineStyle
}

// BuildTree parses fragment and assembles the module container around it:
//
//	div.bento-module            classes, sizing data attributes, custom properties
//	  div.bento-content         fragment nodes, or div.bento-empty placeholder
//	  div.bento-overlay         only when Editable
//
// External links in the fragment are rewritten. The fragment is expected
// to be sanitized already; the container's own attributes are generated here.
func BuildTree(fragment string, c Container) (*html.Node, error) {
	style, err := InlineStyle(containerStyle, c.Variables)
	if err != nil {
		return nil, err
	}

	classes := []string{ModuleClass}
	if c.Editable {
		classes = append(classes, EditableClass)
	}
	for _, class := range c.Classes {
		if err := ValidateClass(class); err != nil {
			return nil, err
		}
		classes = append(classes, class)
	}

	root := element(atom.Div, html.Attribute{Key: "class", Val: strings.Join(classes, " ")})
	if c.Width > 0 {
		root.Attr = append(root.Attr, html.Attribute{Key: "data-width", Val: strconv.Itoa(c.Width)})
	}
	if c.Height > 0 {
		root.Attr = append(root.Attr, html.Attribute{Key: "data-height", Val: strconv.Itoa(c.Height)})
	}
	root.Attr = append(root.Attr, html.Attribute{Key: "style", Val: style})

	content := element(atom.Div, html.Attribute{Key: "class", Val: ContentClass})
	root.AppendChild(content)

	if c.Empty {
		placeholder := element(atom.Div, html.Attribute{Key: "class", Val: EmptyClass})
		placeholder.AppendChild(&html.Node{Type: html.TextNode, Data: EmptyPlaceholder})
		content.AppendChild(placeholder)
	} else {
		nodes, err := ParseFragment(fragment)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrTreeBuild, err)
		}
		for _, n := range nodes {
			content.AppendChild(n)
		}
		RewriteExternalLinks(content)
	}

	if c.Editable {
		root.AppendChild(element(atom.Div,
			html.Attribute{Key: "class", Val: OverlayClass},
			html.Attribute{Key: "aria-hidden", Val: "true"},
			html.Attribute{Key: "style", Val: overlayStyle},
		))
	}

	return root, nil
}

// ParseFragment parses HTML content in a <body> context.
func ParseFragment(content string) ([]*html.Node, error) {
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	return html.ParseFragment(strings.NewReader(content), context)
}

// RenderNode renders n and its descendants.
func RenderNode(n *html.Node) (string, error) {
	var buf strings.Builder
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// TextContent returns the concatenated text of n's descendants.
func TextContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
