package yamlutil_test

// Notes:
// - Encode error branch: goccy only fails on unencodable types (channels,
//   funcs), which no caller passes.
// - DecodeError.Detail wording comes from goccy/go-yaml; tests check the
//   offending key and line rather than exact text.

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-bento/internal/yamlutil"
)

type theme struct {
	Radius    string            `yaml:"radius"`
	Variables map[string]string `yaml:"variables"`
}

type document struct {
	Theme theme `yaml:"theme"`
	Width int   `yaml:"width"`
}

// ---------------------------------------------------------------------------
// TestDecodeConfig - Strict decoding with source context
// ---------------------------------------------------------------------------

func TestDecodeConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		data         string
		dest         any
		wantErr      error
		wantDecode   bool // error is a *DecodeError
		wantContains []string
	}{
		{
			name: "valid document",
			data: "theme:\n  radius: rounded-xl\n  variables:\n    accent: \"#2563eb\"\nwidth: 2\n",
			dest: &document{},
		},
		{
			name:    "empty document",
			data:    "",
			dest:    &document{},
			wantErr: yamlutil.ErrEmptyDocument,
		},
		{
			name:    "whitespace only",
			data:    "  \n\t\n",
			dest:    &document{},
			wantErr: yamlutil.ErrEmptyDocument,
		},
		{
			name:    "nil destination",
			data:    "width: 2",
			dest:    nil,
			wantErr: yamlutil.ErrNilDestination,
		},
		{
			name:         "unknown key",
			data:         "width: 2\nheigth: 1\n",
			dest:         &document{},
			wantDecode:   true,
			wantContains: []string{"heigth"},
		},
		{
			name:         "syntax error",
			data:         "theme: [unclosed\n",
			dest:         &document{},
			wantDecode:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.DecodeConfig([]byte(tt.data), tt.dest)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("error = %v, want %v", err, tt.wantErr)
				}
			case tt.wantDecode:
				var decodeErr *yamlutil.DecodeError
				if !errors.As(err, &decodeErr) {
					t.Fatalf("error = %v (%T), want *DecodeError", err, err)
				}
				if errors.Unwrap(decodeErr) == nil {
					t.Error("DecodeError should wrap the parser error")
				}
				for _, s := range tt.wantContains {
					if !strings.Contains(err.Error(), s) {
						t.Errorf("error %q should contain %q", err, s)
					}
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
			}
		})
	}

	t.Run("decoded values", func(t *testing.T) {
		t.Parallel()

		var doc document
		data := "theme:\n  radius: rounded-xl\n  variables:\n    accent: \"#2563eb\"\nwidth: 2\n"
		if err := yamlutil.DecodeConfig([]byte(data), &doc); err != nil {
			t.Fatal(err)
		}
		if doc.Theme.Radius != "rounded-xl" || doc.Theme.Variables["accent"] != "#2563eb" || doc.Width != 2 {
			t.Errorf("decoded %+v", doc)
		}
	})
}

// ---------------------------------------------------------------------------
// TestDecode - Lenient decoding
// ---------------------------------------------------------------------------

func TestDecode(t *testing.T) {
	t.Parallel()

	var doc document
	if err := yamlutil.Decode([]byte("width: 3\nextra: ignored\n"), &doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Width != 3 {
		t.Errorf("Width = %d, want 3", doc.Width)
	}
}

// ---------------------------------------------------------------------------
// TestEncode - Catalogue layout
// ---------------------------------------------------------------------------

func TestEncode(t *testing.T) {
	t.Parallel()

	type attr struct {
		Name    string   `yaml:"name"`
		Default string   `yaml:"default,omitempty"`
		Values  []string `yaml:"values,omitempty"`
	}
	type entry struct {
		Kind  string `yaml:"kind"`
		Attrs []attr `yaml:"attrs"`
	}

	entries := []entry{{
		Kind:  "badge",
		Attrs: []attr{{Name: "text", Default: "Badge"}, {Name: "color", Default: "stone", Values: []string{"blue", "stone"}}},
	}}

	out, err := yamlutil.Encode(entries)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got := string(out)

	wantContains := []string{"kind: badge", "attrs:", "name: text", "default: stone", "- blue"}
	for _, s := range wantContains {
		if !strings.Contains(got, s) {
			t.Errorf("output missing %q:\n%s", s, got)
		}
	}
	if strings.Contains(got, "{") || strings.Contains(got, "[") {
		t.Errorf("expected block style, got:\n%s", got)
	}

	var back []entry
	if err := yamlutil.Decode(out, &back); err != nil {
		t.Fatalf("decoding encoded output: %v", err)
	}
	if len(back) != 1 || len(back[0].Attrs[1].Values) != 2 {
		t.Errorf("decoded %+v", back)
	}
}

// ---------------------------------------------------------------------------
// TestMaxDocumentSize - Size cap
// ---------------------------------------------------------------------------

// Modifies the package-level cap, so it does not run in parallel.
func TestMaxDocumentSize(t *testing.T) {
	orig := yamlutil.MaxDocumentSize
	t.Cleanup(func() { yamlutil.MaxDocumentSize = orig })
	yamlutil.MaxDocumentSize = 32

	var doc document
	if err := yamlutil.Decode([]byte("width: 2"), &doc); err != nil {
		t.Errorf("small document: %v", err)
	}

	big := "theme:\n  radius: " + strings.Repeat("r", 40) + "\n"
	err := yamlutil.DecodeConfig([]byte(big), &doc)
	if !errors.Is(err, yamlutil.ErrDocumentTooLarge) {
		t.Errorf("error = %v, want ErrDocumentTooLarge", err)
	}
}
