package hints

// Notes:
// - ForWatch tests cannot use t.Parallel() because they:
//   1. Use t.Setenv() which modifies process environment
//   2. Modify the package-level IsInContainer variable

import (
	"strings"
	"testing"
)

func TestForWatch_InContainer(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return true }

	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITLAB_CI", "")

	hint := ForWatch()

	if !strings.HasPrefix(hint, "\n  hint: ") {
		t.Errorf("expected hint prefix, got %q", hint)
	}
	if !strings.Contains(hint, "bind mounts") {
		t.Error("expected bind mount suggestion in container")
	}
	if !strings.Contains(hint, "max_user_watches") {
		t.Error("expected inotify limit suggestion")
	}
}

func TestForWatch_InCI(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	t.Setenv("CI", "true")

	if hint := ForWatch(); !strings.Contains(hint, "bento render") {
		t.Errorf("expected render suggestion in CI, got %q", hint)
	}
}

func TestForWatch_Local(t *testing.T) {
	orig := IsInContainer
	defer func() { IsInContainer = orig }()
	IsInContainer = func() bool { return false }

	t.Setenv("CI", "")
	t.Setenv("GITHUB_ACTIONS", "")
	t.Setenv("GITLAB_CI", "")

	hint := ForWatch()

	if strings.Contains(hint, "bind mounts") {
		t.Error("should not mention bind mounts outside containers")
	}
	if !strings.Contains(hint, "max_user_watches") {
		t.Error("expected inotify limit suggestion")
	}
}

func TestForConfigNotFound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		paths    []string
		contains string
	}{
		{
			name:     "empty paths",
			paths:    []string{},
			contains: "--config",
		},
		{
			name:     "with user config path",
			paths:    []string{"./site.yaml", "/home/me/.config/go-bento/site.yaml"},
			contains: "create /home/me/.config/go-bento/site.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := ForConfigNotFound(tt.paths)
			if !strings.Contains(hint, "hint:") {
				t.Error("expected hint prefix")
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestListHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		fn        func([]string) string
		items     []string
		wantEmpty bool
		contains  string
	}{
		{"style none", ForStyleNotFound, nil, true, ""},
		{"style list", ForStyleNotFound, []string{"default", "minimal"}, false, "available: default, minimal"},
		{"template set none", ForTemplateSet, nil, true, ""},
		{"template set list", ForTemplateSet, []string{"badge.html", "tip.html"}, false, "badge.html, tip.html"},
		{"shortcode none", ForUnknownShortcode, []string{}, true, ""},
		{"shortcode list", ForUnknownShortcode, []string{"badge", "metric"}, false, "supported kinds: badge, metric"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hint := tt.fn(tt.items)
			if tt.wantEmpty {
				if hint != "" {
					t.Errorf("expected empty hint, got %q", hint)
				}
				return
			}
			if !strings.Contains(hint, tt.contains) {
				t.Errorf("expected hint to contain %q, got %q", tt.contains, hint)
			}
		})
	}
}

func TestFormat_Consistency(t *testing.T) {
	t.Parallel()

	hints := []string{
		ForOutputDirectory(),
		ForInvalidStyle(),
		ForStyleNotFound([]string{"default"}),
	}

	for _, h := range hints {
		if !strings.HasPrefix(h, "\n  hint: ") {
			t.Errorf("hint format inconsistent: %q", h)
		}
	}
}
