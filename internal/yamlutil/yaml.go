// Package yamlutil reads bento config files and writes the shortcode
// catalogue. Decode errors carry the line, column and offending source line
// so a config typo can be fixed without guessing.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxDocumentSize caps decoded documents. Config files are a few hundred
// bytes; anything near the cap is not a config.
var MaxDocumentSize = 256 << 10

var (
	ErrEmptyDocument    = errors.New("empty YAML document")
	ErrNilDestination   = errors.New("nil decode destination")
	ErrDocumentTooLarge = errors.New("YAML document too large")
)

// DecodeError is a YAML syntax or schema error with source context.
type DecodeError struct {
	Detail string // position, message and source excerpt
	err    error
}

func (e *DecodeError) Error() string { return e.Detail }

func (e *DecodeError) Unwrap() error { return e.err }

// DecodeConfig decodes a config document into v, rejecting keys that have
// no matching field.
func DecodeConfig(data []byte, v any) error {
	return decode(data, v, yaml.Strict())
}

// Decode decodes data into v, ignoring unknown keys.
func Decode(data []byte, v any) error {
	return decode(data, v)
}

// Encode writes v as block-style YAML with two-space indents and indented
// sequences, the layout of the catalogue output.
func Encode(v any) ([]byte, error) {
	out, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("encoding YAML: %w", err)
	}
	return out, nil
}

func decode(data []byte, v any, opts ...yaml.DecodeOption) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyDocument
	}
	if len(data) > MaxDocumentSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrDocumentTooLarge, len(data), MaxDocumentSize)
	}
	if v == nil {
		return ErrNilDestination
	}
	if err := yaml.UnmarshalWithOptions(data, v, opts...); err != nil {
		return &DecodeError{Detail: yaml.FormatError(err, false, true), err: err}
	}
	return nil
}
