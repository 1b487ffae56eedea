// Package shortcode expands {{kind key="value"}} macros into HTML fragments.
//
// Scanning is a small hand-written tokenizer rather than a regular
// expression: it looks for "{{", reads an identifier, then reads
// key="value" pairs until "}}". Values run to the next double quote and
// have no escape mechanism, so a value can never contain '"'. A literal
// "}}" inside a value belongs to the value.
//
// Decoded tokens are one of Project, Metric, Badge, Tip or Unknown.
// Unknown tokens and anything the scanner rejects are passed through as
// the original text, so a bad shortcode is visible to its author instead
// of breaking the page.
//
// Fragments come from html/template sources (see internal/assets), which
// escape attribute values for their context. Braces in values are written
// as character references, so expanded output never contains "{{" and a
// second Expand pass is a no-op on the fragments.
package shortcode
