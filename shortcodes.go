package bento

import (
	"strings"

	"github.com/alnah/go-bento/internal/shortcode"
)

// ShortcodeAttr documents one shortcode attribute.
type ShortcodeAttr struct {
	Name    string
	Default string   // empty when the attribute is optional without default
	Values  []string // accepted values for closed sets such as badge colors
}

// ShortcodeSpec documents a supported shortcode kind.
type ShortcodeSpec struct {
	Kind  string
	Attrs []ShortcodeAttr
}

// Syntax returns an example token using every attribute's default.
func (s ShortcodeSpec) Syntax() string {
	var b strings.Builder
	b.WriteString("{{")
	b.WriteString(s.Kind)
	for _, a := range s.Attrs {
		b.WriteString(" ")
		b.WriteString(a.Name)
		b.WriteString(`="`)
		b.WriteString(a.Default)
		b.WriteString(`"`)
	}
	b.WriteString("}}")
	return b.String()
}

// Shortcodes lists the supported shortcode kinds in display order.
func Shortcodes() []ShortcodeSpec {
	catalogue := shortcode.Catalogue()
	specs := make([]ShortcodeSpec, len(catalogue))
	for i, c := range catalogue {
		attrs := make([]ShortcodeAttr, len(c.Attrs))
		for j, a := range c.Attrs {
			attrs[j] = ShortcodeAttr{Name: a.Name, Default: a.Default, Values: a.Values}
		}
		specs[i] = ShortcodeSpec{Kind: string(c.Kind), Attrs: attrs}
	}
	return specs
}

// IsShortcodeKind reports whether name is a supported shortcode kind.
func IsShortcodeKind(name string) bool {
	return shortcode.IsKnown(name)
}

// Expand replaces shortcodes in text with the built-in fragments.
// Unknown kinds and malformed tokens are kept verbatim. Expand never fails
// and is safe for concurrent use.
func Expand(text string) string {
	return shortcode.Expand(text)
}
