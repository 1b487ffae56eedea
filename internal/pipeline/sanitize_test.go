package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/microcosm-cc/bluemonday"
)

func TestPolicySanitizer_Sanitize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:         "script element removed with content",
			input:        `<p>ok</p><script>alert(1)</script>`,
			wantContains: []string{"<p>ok</p>"},
			wantNot:      []string{"<script", "alert"},
		},
		{
			name:         "event handler removed",
			input:        `<p onclick="steal()">a</p>`,
			wantContains: []string{"<p>a</p>"},
			wantNot:      []string{"onclick", "steal"},
		},
		{
			name:    "style attribute removed",
			input:   `<p style="position:fixed">a</p>`,
			wantNot: []string{"style=", "position"},
		},
		{
			name:    "style element removed",
			input:   `<style>body{display:none}</style><p>a</p>`,
			wantNot: []string{"<style", "display:none"},
		},
		{
			name:         "javascript URL removed",
			input:        `<a href="javascript:alert(1)">x</a>`,
			wantContains: []string{"x"},
			wantNot:      []string{"javascript:"},
		},
		{
			name:    "iframe removed",
			input:   `<iframe src="https://example.com"></iframe>`,
			wantNot: []string{"iframe"},
		},
		{
			name:         "author classes kept",
			input:        `<div class="text-center md:w-1/2 bg-[#fff]">a</div>`,
			wantContains: []string{`class="text-center md:w-1/2 bg-[#fff]"`},
		},
		{
			name:         "badge fragment kept",
			input:        `<span class="bento-badge bento-badge-blue bg-blue-100 text-blue-800">New</span>`,
			wantContains: []string{`<span class="bento-badge bento-badge-blue bg-blue-100 text-blue-800">New</span>`},
		},
		{
			name:         "tip button kept",
			input:        `<button type="button" class="bento-tip-button">Tip me</button>`,
			wantContains: []string{`type="button"`, `class="bento-tip-button"`, "Tip me"},
		},
		{
			name:         "submit type dropped",
			input:        `<button type="submit">Go</button>`,
			wantContains: []string{"Go"},
			wantNot:      []string{"submit"},
		},
		{
			name:         "task list checkbox kept",
			input:        `<ul><li><input checked="" disabled="" type="checkbox"> done</li></ul>`,
			wantContains: []string{`type="checkbox"`, "disabled"},
		},
		{
			name:         "aria-hidden kept",
			input:        `<span class="bento-project-arrow" aria-hidden="true">&#8599;</span>`,
			wantContains: []string{`aria-hidden="true"`},
		},
		{
			name:         "image kept",
			input:        `<img class="bento-project-image" src="https://img.test/a.png" alt="Shot">`,
			wantContains: []string{`src="https://img.test/a.png"`, `alt="Shot"`},
		},
	}

	s := NewPolicySanitizer(nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := s.Sanitize(context.Background(), tt.input)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize() missing %q in:\n%s", want, got)
				}
			}
			for _, not := range tt.wantNot {
				if strings.Contains(got, not) {
					t.Errorf("Sanitize() should not contain %q in:\n%s", not, got)
				}
			}
		})
	}
}

func TestPolicySanitizer_CustomPolicy(t *testing.T) {
	t.Parallel()

	s := NewPolicySanitizer(bluemonday.StrictPolicy())
	got := s.Sanitize(context.Background(), `<p class="x"><b>bold</b></p>`)
	if got != "bold" {
		t.Errorf("Sanitize() with strict policy = %q, want %q", got, "bold")
	}
}

func TestPolicySanitizer_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := NewPolicySanitizer(nil).Sanitize(ctx, "<script>x</script>"); got != "" {
		t.Errorf("Sanitize() with cancelled context = %q, want empty", got)
	}
}
