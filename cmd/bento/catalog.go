package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	bento "github.com/alnah/go-bento"
	"github.com/alnah/go-bento/internal/yamlutil"
)

// Output formats of the shortcodes command.
const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

// ErrInvalidFormat is returned for an unknown output format or bad pattern.
var ErrInvalidFormat = errors.New("invalid format")

// catalogEntry is the serialized form of one shortcode kind.
type catalogEntry struct {
	Kind   string        `yaml:"kind" json:"kind"`
	Syntax string        `yaml:"syntax" json:"syntax"`
	Attrs  []catalogAttr `yaml:"attrs" json:"attrs"`
}

type catalogAttr struct {
	Name    string   `yaml:"name" json:"name"`
	Default string   `yaml:"default,omitempty" json:"default,omitempty"`
	Values  []string `yaml:"values,omitempty" json:"values,omitempty"`
}

// runShortcodes lists the supported shortcodes.
func runShortcodes(args []string, env *Environment) error {
	f, err := parseShortcodesFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	return writeCatalog(env.Stdout, f.format)
}

// writeCatalog writes the shortcode catalogue to w in the given format.
func writeCatalog(w io.Writer, format string) error {
	entries := catalogEntries()

	switch format {
	case formatText:
		for i, e := range entries {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintln(w, e.Kind)
			fmt.Fprintf(w, "  %s\n", e.Syntax)
			for _, a := range e.Attrs {
				line := fmt.Sprintf("  %-6s default %q", a.Name, a.Default)
				if len(a.Values) > 0 {
					line += " one of " + strings.Join(a.Values, ", ")
				}
				fmt.Fprintln(w, line)
			}
		}
		return nil

	case formatYAML:
		data, err := yamlutil.Encode(entries)
		if err != nil {
			return fmt.Errorf("encoding catalogue: %w", err)
		}
		_, err = w.Write(data)
		return err

	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(entries)

	default:
		return fmt.Errorf("%w: %q (supported: %s, %s, %s)", ErrInvalidFormat, format, formatText, formatYAML, formatJSON)
	}
}

func catalogEntries() []catalogEntry {
	specs := bento.Shortcodes()
	entries := make([]catalogEntry, len(specs))
	for i, s := range specs {
		attrs := make([]catalogAttr, len(s.Attrs))
		for j, a := range s.Attrs {
			attrs[j] = catalogAttr{Name: a.Name, Default: a.Default, Values: a.Values}
		}
		entries[i] = catalogEntry{Kind: s.Kind, Syntax: s.Syntax(), Attrs: attrs}
	}
	return entries
}
