package pipeline

import (
	"context"
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

// HTMLSanitizer removes executable content from rendered HTML.
type HTMLSanitizer interface {
	Sanitize(ctx context.Context, htmlContent string) string
}

var (
	// Utility class lists, including variants like "md:w-1/2" or "bg-[#fff]".
	classList = regexp.MustCompile(`^[\p{L}\p{N}\s_:/.\[\]%#!-]+$`)

	buttonType   = regexp.MustCompile(`^(button)$`)
	checkboxType = regexp.MustCompile(`^(checkbox)$`)
	ariaBool     = regexp.MustCompile(`^(true|false)$`)
	targetBlank  = regexp.MustCompile(`^(_blank)$`)
)

// NewModulePolicy returns the allowlist for custom module content.
//
// It starts from bluemonday's UGC policy (no scripts, no event handlers, no
// style attributes or elements) and additionally keeps author class lists,
// inert buttons, task list checkboxes and aria-hidden.
func NewModulePolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	p.AllowAttrs("class").Matching(classList).Globally()
	p.AllowAttrs("aria-hidden").Matching(ariaBool).Globally()

	p.AllowElements("button")
	p.AllowAttrs("type").Matching(buttonType).OnElements("button")

	p.AllowAttrs("type").Matching(checkboxType).OnElements("input")
	p.AllowAttrs("checked", "disabled").OnElements("input")

	p.AllowAttrs("target").Matching(targetBlank).OnElements("a")

	return p
}

// PolicySanitizer applies a bluemonday policy.
type PolicySanitizer struct {
	policy *bluemonday.Policy
}

// NewPolicySanitizer creates a sanitizer for policy.
// A nil policy uses NewModulePolicy.
func NewPolicySanitizer(policy *bluemonday.Policy) *PolicySanitizer {
	if policy == nil {
		policy = NewModulePolicy()
	}
	return &PolicySanitizer{policy: policy}
}

// Sanitize returns htmlContent with disallowed elements and attributes removed.
// Returns an empty string if ctx is already cancelled.
func (s *PolicySanitizer) Sanitize(ctx context.Context, htmlContent string) string {
	if ctx.Err() != nil {
		return ""
	}
	return s.policy.Sanitize(htmlContent)
}

// Compile-time interface check.
var _ HTMLSanitizer = (*PolicySanitizer)(nil)
