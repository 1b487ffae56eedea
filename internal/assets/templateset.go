package assets

import "fmt"

// TemplateSet holds one html/template source per shortcode kind.
type TemplateSet struct {
	Name    string // Identifier (name or directory path)
	Project string
	Metric  string
	Badge   string
	Tip     string
}

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in module stylesheet.
const DefaultStyleName = "default"

// TemplateFiles lists the files every template set directory must contain.
var TemplateFiles = []string{"project.html", "metric.html", "badge.html", "tip.html"}

// Sources returns the template sources keyed by kind name.
func (ts *TemplateSet) Sources() map[string]string {
	return map[string]string{
		"project": ts.Project,
		"metric":  ts.Metric,
		"badge":   ts.Badge,
		"tip":     ts.Tip,
	}
}

// newTemplateSet assembles a set from file contents keyed by file name.
// Returns ErrIncompleteTemplateSet when a file is missing or blank.
func newTemplateSet(name string, files map[string]string) (*TemplateSet, error) {
	for _, f := range TemplateFiles {
		if files[f] == "" {
			return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, f)
		}
	}
	return &TemplateSet{
		Name:    name,
		Project: files["project.html"],
		Metric:  files["metric.html"],
		Badge:   files["badge.html"],
		Tip:     files["tip.html"],
	}, nil
}
