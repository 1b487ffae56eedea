package shortcode

import "strings"

// Kind names a supported shortcode.
type Kind string

// Supported shortcode kinds.
const (
	KindProject Kind = "project"
	KindMetric  Kind = "metric"
	KindBadge   Kind = "badge"
	KindTip     Kind = "tip"
)

// Kinds lists the supported kinds in catalogue order.
var Kinds = []Kind{KindProject, KindMetric, KindBadge, KindTip}

// Default attribute values.
const (
	DefaultProjectTitle = "Project Name"
	DefaultProjectDesc  = "Description"
	DefaultProjectLink  = "#"
	DefaultMetricLabel  = "Label"
	DefaultMetricValue  = "0"
	DefaultBadgeText    = "Badge"
	DefaultTipCount     = "0"
	DefaultTipLabel     = "Tips"
)

// Shortcode is a decoded token. It is one of Project, Metric, Badge, Tip or Unknown.
type Shortcode interface {
	Kind() Kind
	shortcode()
}

// Project is a two-region card linking to an external project.
type Project struct {
	Title string
	Desc  string
	Link  string // resolved; "#" means no link
	Image string // optional image URL
}

// HasLink reports whether the media region should be wrapped in an anchor.
func (p Project) HasLink() bool { return p.Link != DefaultProjectLink }

// Metric is a label/value/unit stack.
type Metric struct {
	Label string
	Value string
	Unit  string // omitted from output when empty
}

// Badge is a colored pill.
type Badge struct {
	Text  string
	Color Color
}

// Classes returns the palette classes for the badge color.
func (b Badge) Classes() string { return b.Color.Classes() }

// Tip is a counter with an inert call-to-action button.
type Tip struct {
	Count string
	Label string
}

// Unknown is a token whose name is not a supported kind.
// It expands to its Raw text unchanged.
type Unknown struct {
	Name string
	Raw  string
}

func (Project) Kind() Kind   { return KindProject }
func (Metric) Kind() Kind    { return KindMetric }
func (Badge) Kind() Kind     { return KindBadge }
func (Tip) Kind() Kind       { return KindTip }
func (u Unknown) Kind() Kind { return Kind(u.Name) }

func (Project) shortcode() {}
func (Metric) shortcode()  {}
func (Badge) shortcode()   {}
func (Tip) shortcode()     {}
func (Unknown) shortcode() {}

// Decode turns a token into its typed variant, applying defaults.
// Names are case-sensitive: "Badge" is Unknown.
func Decode(tok Token) Shortcode {
	a := tok.Attrs
	switch Kind(tok.Name) {
	case KindProject:
		return Project{
			Title: a.Get("title", DefaultProjectTitle),
			Desc:  a.Get("desc", DefaultProjectDesc),
			Link:  NormalizeLink(a.Get("link", DefaultProjectLink)),
			Image: a.Get("image", ""),
		}
	case KindMetric:
		return Metric{
			Label: a.Get("label", DefaultMetricLabel),
			Value: a.Get("value", DefaultMetricValue),
			Unit:  a.Get("unit", ""),
		}
	case KindBadge:
		return Badge{
			Text:  a.Get("text", DefaultBadgeText),
			Color: ParseColor(a.Get("color", string(ColorStone))),
		}
	case KindTip:
		return Tip{
			Count: a.Get("count", DefaultTipCount),
			Label: a.Get("label", DefaultTipLabel),
		}
	default:
		return Unknown{Name: tok.Name, Raw: tok.Raw}
	}
}

// NormalizeLink prepends https:// to links without an http(s) scheme.
// "#" and empty links resolve to "#", meaning no link.
func NormalizeLink(link string) string {
	link = strings.TrimSpace(link)
	if link == "" || link == DefaultProjectLink {
		return DefaultProjectLink
	}
	lower := strings.ToLower(link)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return link
	}
	if strings.HasPrefix(link, "//") {
		return "https:" + link
	}
	return "https://" + link
}
