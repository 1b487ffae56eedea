package shortcode

import "sync"

// AttrSpec documents one attribute of a shortcode kind.
type AttrSpec struct {
	Name    string
	Default string
	Values  []string // closed set of accepted values, nil when free-form
}

// Spec documents a shortcode kind.
type Spec struct {
	Kind  Kind
	Attrs []AttrSpec
}

// Catalogue lists every supported kind with its attributes and defaults.
func Catalogue() []Spec {
	return []Spec{
		{Kind: KindProject, Attrs: []AttrSpec{
			{Name: "title", Default: DefaultProjectTitle},
			{Name: "desc", Default: DefaultProjectDesc},
			{Name: "link", Default: DefaultProjectLink},
			{Name: "image"},
		}},
		{Kind: KindMetric, Attrs: []AttrSpec{
			{Name: "label", Default: DefaultMetricLabel},
			{Name: "value", Default: DefaultMetricValue},
			{Name: "unit"},
		}},
		{Kind: KindBadge, Attrs: []AttrSpec{
			{Name: "text", Default: DefaultBadgeText},
			{Name: "color", Default: string(ColorStone), Values: paletteNames()},
		}},
		{Kind: KindTip, Attrs: []AttrSpec{
			{Name: "count", Default: DefaultTipCount},
			{Name: "label", Default: DefaultTipLabel},
		}},
	}
}

func paletteNames() []string {
	colors := Palette()
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = string(c)
	}
	return names
}

// IsKnown reports whether name is a supported kind.
func IsKnown(name string) bool {
	for _, k := range Kinds {
		if string(k) == name {
			return true
		}
	}
	return false
}

// defaultExpander is built from the embedded template set on first use.
var defaultExpander = sync.OnceValues(func() (*Expander, error) {
	set, err := assetsDefaultSet()
	if err != nil {
		return nil, err
	}
	return NewExpander(set)
})

// Expand expands text with the built-in templates.
// It panics only if the embedded templates are broken, which is a build defect.
func Expand(text string) string {
	e, err := defaultExpander()
	if err != nil {
		panic("shortcode: embedded templates: " + err.Error())
	}
	return e.Expand(text)
}
