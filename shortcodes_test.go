package bento

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestShortcodes(t *testing.T) {
	t.Parallel()

	specs := Shortcodes()

	var kinds []string
	for _, s := range specs {
		kinds = append(kinds, s.Kind)
	}
	if diff := cmp.Diff([]string{"project", "metric", "badge", "tip"}, kinds); diff != "" {
		t.Errorf("Shortcodes() kinds mismatch (-want +got):\n%s", diff)
	}

	for _, s := range specs {
		if !IsShortcodeKind(s.Kind) {
			t.Errorf("IsShortcodeKind(%q) = false", s.Kind)
		}
	}
	for _, name := range []string{"", "gallery", "Badge", "badge-x"} {
		if IsShortcodeKind(name) {
			t.Errorf("IsShortcodeKind(%q) = true, want false", name)
		}
	}
}

func TestShortcodeSpec_Syntax(t *testing.T) {
	t.Parallel()

	for _, s := range Shortcodes() {
		syntax := s.Syntax()
		if !strings.HasPrefix(syntax, "{{"+s.Kind) || !strings.HasSuffix(syntax, "}}") {
			t.Errorf("Syntax() = %q, want a %s token", syntax, s.Kind)
		}
		// The example token must itself expand.
		if Expand(syntax) == syntax {
			t.Errorf("Expand(%q) left the token unexpanded", syntax)
		}
	}

	badge := ShortcodeSpec{Kind: "badge", Attrs: []ShortcodeAttr{
		{Name: "text", Default: "Badge"},
		{Name: "color", Default: "stone"},
	}}
	if got, want := badge.Syntax(), `{{badge text="Badge" color="stone"}}`; got != want {
		t.Errorf("Syntax() = %q, want %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// Expand properties
// ---------------------------------------------------------------------------

func TestExpand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		want         string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "plain text is unchanged",
			input: "no shortcodes { here } at all",
			want:  "no shortcodes { here } at all",
		},
		{
			name:         "badge color blue",
			input:        `{{badge text="Beta" color="blue"}}`,
			wantContains: []string{"bento-badge-blue", ">Beta<"},
		},
		{
			name:         "badge color outside palette",
			input:        `{{badge text="Beta" color="purple"}}`,
			wantContains: []string{"bento-badge-stone"},
			wantNot:      []string{"purple"},
		},
		{
			name:         "project link gains https",
			input:        `{{project link="bento.me/demo"}}`,
			wantContains: []string{`href="https://bento.me/demo"`},
		},
		{
			name:    "project default link renders no anchor",
			input:   `{{project title="Solo"}}`,
			wantNot: []string{"<a ", "href="},
		},
		{
			name:         "metric value kept verbatim",
			input:        `{{metric label="Revenue" value="$9,383"}}`,
			wantContains: []string{">$9,383<"},
			wantNot:      []string{"bento-metric-unit"},
		},
		{
			name:  "unknown kind passes through",
			input: `{{gallery id="1"}}`,
			want:  `{{gallery id="1"}}`,
		},
		{
			name:    "values cannot inject shortcodes",
			input:   `{{badge text="{{tip}}"}}`,
			wantNot: []string{"{{", "}}", "bento-tip"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Expand(tt.input)
			if tt.want != "" || tt.input == "" {
				if got != tt.want {
					t.Errorf("Expand() = %q, want %q", got, tt.want)
				}
			}
			for _, s := range tt.wantContains {
				if !strings.Contains(got, s) {
					t.Errorf("Expand() missing %q in:\n%s", s, got)
				}
			}
			for _, s := range tt.wantNot {
				if strings.Contains(got, s) {
					t.Errorf("Expand() should not contain %q in:\n%s", s, got)
				}
			}
		})
	}
}

func TestExpand_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		`{{badge text="A"}} {{metric}} {{project link="x.dev"}} {{tip count="3"}}`,
		`{{gallery}} and {{badge text="{{badge}}"}}`,
		"# Heading\n\n{{badge color=\"red\"}}",
	}
	for _, in := range inputs {
		once := Expand(in)
		if twice := Expand(once); twice != once {
			t.Errorf("Expand is not idempotent for %q:\nonce:  %s\ntwice: %s", in, once, twice)
		}
	}
}
