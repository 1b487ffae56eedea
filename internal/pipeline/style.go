package pipeline

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// Sentinel errors for container styling.
var (
	ErrInvalidClass    = errors.New("invalid class name")
	ErrInvalidVariable = errors.New("invalid CSS variable")
)

// Limits for caller-supplied styling.
const (
	MaxClassLength    = 128
	MaxVariableLength = 256
)

var (
	// Single class token. Allows utility variants such as "md:rounded-[12px]".
	classToken = regexp.MustCompile(`^[A-Za-z0-9_:/.\[\]%#!-]+$`)

	propertyName = regexp.MustCompile(`^--[A-Za-z][A-Za-z0-9_-]*$`)

	// Constructs that load resources or run code from a declaration value.
	unsafeValue = regexp.MustCompile(`(?i)url\s*\(|expression\s*\(|javascript:|@import|!\s*important|[<>{}\\]`)
)

// ValidateClass checks that class is a single safe class token.
func ValidateClass(class string) error {
	if class == "" {
		return fmt.Errorf("%w: empty", ErrInvalidClass)
	}
	if len(class) > MaxClassLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrInvalidClass, len(class), MaxClassLength)
	}
	if !classToken.MatchString(class) {
		return fmt.Errorf("%w: %q", ErrInvalidClass, class)
	}
	return nil
}

// PropertyName returns name as a custom property, adding the "--" prefix
// when missing.
func PropertyName(name string) string {
	name = strings.TrimSpace(name)
	if strings.HasPrefix(name, "--") {
		return name
	}
	return "--" + name
}

// ValidateVariable checks one custom property declaration.
// The value must parse as exactly one CSS declaration value without
// !important and must not reference external resources.
func ValidateVariable(name, value string) error {
	prop := PropertyName(name)
	if !propertyName.MatchString(prop) {
		return fmt.Errorf("%w: name %q", ErrInvalidVariable, name)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: %s has an empty value", ErrInvalidVariable, prop)
	}
	if len(value) > MaxVariableLength {
		return fmt.Errorf("%w: %s value is %d chars (max %d)", ErrInvalidVariable, prop, len(value), MaxVariableLength)
	}
	if unsafeValue.MatchString(value) {
		return fmt.Errorf("%w: %s value %q", ErrInvalidVariable, prop, value)
	}

	// Parse under a placeholder property so the tokenizer sees a plain
	// identifier; a smuggled ";" shows up as a second declaration.
	decls, err := parser.ParseDeclarations("v: " + value)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidVariable, prop, err)
	}
	if len(decls) != 1 || decls[0].Property != "v" || decls[0].Important {
		return fmt.Errorf("%w: %s value %q is not a single declaration", ErrInvalidVariable, prop, value)
	}
	return nil
}

// InlineStyle builds the container style attribute from base declarations
// and custom properties. Properties are sorted by normalized name so output
// is stable; "x" and "--x" name the same property and may not both appear.
func InlineStyle(base string, vars map[string]string) (string, error) {
	props := make(map[string]string, len(vars))
	for name, value := range vars {
		if err := ValidateVariable(name, value); err != nil {
			return "", err
		}
		prop := PropertyName(name)
		if _, dup := props[prop]; dup {
			return "", fmt.Errorf("%w: %s given twice", ErrInvalidVariable, prop)
		}
		props[prop] = strings.TrimSpace(value)
	}

	names := make([]string, 0, len(props))
	for prop := range props {
		names = append(names, prop)
	}
	slices.Sort(names)

	parts := []string{base}
	for _, prop := range names {
		parts = append(parts, prop+":"+props[prop])
	}
	return strings.Join(parts, ";"), nil
}
