// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-bento/internal/fileutil"
)

// IsInContainer detects if running inside a Docker container or similar.
// Checks for /.dockerenv file which Docker creates automatically.
var IsInContainer = func() bool {
	return fileutil.FileExists("/.dockerenv")
}

// ForWatch returns hints for file watcher setup errors.
// Inside containers and CI the inotify limits are often low, and bind
// mounts may not deliver events at all.
func ForWatch() string {
	var hints []string

	inCI := os.Getenv("CI") != "" ||
		os.Getenv("GITHUB_ACTIONS") != "" ||
		os.Getenv("GITLAB_CI") != ""

	if inCI || IsInContainer() {
		hints = append(hints, "bind mounts may not deliver file events; run 'bento render' instead")
	}
	hints = append(hints, "raise fs.inotify.max_user_watches if watching many files")

	return formatHints(hints)
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-bento/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-bento") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForTemplateSet returns hints for incomplete or missing shortcode template sets.
func ForTemplateSet(required []string) string {
	if len(required) == 0 {
		return ""
	}
	return format("a template set directory needs " + strings.Join(required, ", "))
}

// ForUnknownShortcode returns hints listing the supported shortcode kinds.
func ForUnknownShortcode(known []string) string {
	if len(known) == 0 {
		return ""
	}
	return format("supported kinds: " + strings.Join(known, ", ") + "; see 'bento shortcodes'")
}

// ForInvalidStyle returns hints for rejected theme classes or variables.
func ForInvalidStyle() string {
	return format("classes are single tokens; variables take plain values without url(), !important or braces")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
