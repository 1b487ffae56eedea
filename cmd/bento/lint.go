package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	bento "github.com/alnah/go-bento"
	"github.com/alnah/go-bento/internal/config"
	"github.com/alnah/go-bento/internal/hints"
	"github.com/alnah/go-bento/internal/shortcode"
)

// ErrLintIssues is returned by lint --strict when issues were reported.
var ErrLintIssues = errors.New("shortcode issues found")

// Lint issue kinds.
const (
	issueUnknown   = "unknown"
	issueMalformed = "malformed"
)

// lintIssue is one finding, positioned by 1-based line and byte column.
type lintIssue struct {
	Path   string
	Line   int
	Col    int
	Kind   string
	Detail string
}

func (i lintIssue) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", i.Path, i.Line, i.Col, i.Detail)
}

// runLint reports unknown shortcode kinds and unterminated or ill-formed
// tokens. Both render as literal text, so they are warnings unless --strict.
func runLint(args []string, env *Environment) error {
	f, positional, err := parseLintFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	sess, err := newSession(&f.common, env)
	if err != nil {
		return err
	}

	include := sess.cfg.Input.Include
	if len(f.include) > 0 {
		include = f.include
	}
	if err := validateIncludes(include); err != nil {
		return err
	}

	inputs, err := lintInputs(positional, sess.cfg)
	if err != nil {
		return err
	}

	var issues []lintIssue
	checked := 0
	for _, input := range inputs {
		files, err := discoverFiles(input, "", include)
		if err != nil {
			return fmt.Errorf("discovering files: %w", err)
		}
		for _, file := range files {
			data, err := os.ReadFile(file.InputPath) // #nosec G304 -- discovered path
			if err != nil {
				return fmt.Errorf("%w: %w", ErrReadModule, err)
			}
			issues = append(issues, lintText(file.InputPath, string(data))...)
			checked++
		}
	}

	unknown := false
	for _, issue := range issues {
		fmt.Fprintln(env.Stdout, issue)
		unknown = unknown || issue.Kind == issueUnknown
	}
	if unknown && !f.common.quiet {
		fmt.Fprintln(env.Stderr, strings.TrimPrefix(hints.ForUnknownShortcode(knownKinds()), "\n"))
	}
	if !f.common.quiet {
		fmt.Fprintf(env.Stdout, "%d file(s) checked, %d issue(s)\n", checked, len(issues))
	}

	if f.strict && len(issues) > 0 {
		return fmt.Errorf("%w: %d", ErrLintIssues, len(issues))
	}
	return nil
}

// lintInputs returns the positional inputs or the configured default directory.
func lintInputs(args []string, cfg *config.Config) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	if cfg.Input.DefaultDir != "" {
		return []string{cfg.Input.DefaultDir}, nil
	}
	return nil, ErrNoInput
}

// lintText scans text and returns its issues in source order.
// Recognized tokens of an unknown kind are reported by name; any "{{"
// left in literal text did not form a token.
func lintText(path, text string) []lintIssue {
	var issues []lintIssue
	offset := 0

	for _, seg := range shortcode.Scan(text) {
		if seg.Token != nil {
			if !shortcode.IsKnown(seg.Token.Name) {
				line, col := position(text, seg.Token.Start)
				issues = append(issues, lintIssue{
					Path: path, Line: line, Col: col, Kind: issueUnknown,
					Detail: fmt.Sprintf("unknown shortcode %q is kept as text", seg.Token.Name),
				})
			}
			offset = seg.Token.End
			continue
		}

		for i := 0; i < len(seg.Text); {
			idx := strings.Index(seg.Text[i:], "{{")
			if idx == -1 {
				break
			}
			line, col := position(text, offset+i+idx)
			issues = append(issues, lintIssue{
				Path: path, Line: line, Col: col, Kind: issueMalformed,
				Detail: "malformed shortcode is kept as text",
			})
			i += idx + 2
		}
		offset += len(seg.Text)
	}
	return issues
}

// position converts a byte offset into a 1-based line and byte column.
func position(text string, offset int) (line, col int) {
	before := text[:offset]
	line = strings.Count(before, "\n") + 1
	col = offset - strings.LastIndex(before, "\n")
	return line, col
}

// knownKinds lists the supported shortcode kinds.
func knownKinds() []string {
	specs := bento.Shortcodes()
	kinds := make([]string, len(specs))
	for i, s := range specs {
		kinds[i] = s.Kind
	}
	return kinds
}
