package main

import (
	"fmt"
	"io"
	"os"
)

// maxSourceBytes caps module text read from standard input.
const maxSourceBytes = 4 << 20

// runExpand prints the source with shortcodes expanded by the configured
// template set. Markdown is left untouched.
func runExpand(args []string, env *Environment) error {
	f, positional, err := parseExpandFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	sess, err := newSession(&f.common, env)
	if err != nil {
		return err
	}
	mergeAssetFlags(&f.assets, sess.cfg)

	r, err := newRenderer(sess.cfg)
	if err != nil {
		return err
	}

	text, err := readSource(positional, env.Stdin)
	if err != nil {
		return err
	}

	_, err = io.WriteString(env.Stdout, r.Expand(text))
	return err
}

// readSource reads the first positional file, or stdin when there is none
// or it is "-".
func readSource(args []string, stdin io.Reader) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(io.LimitReader(stdin, maxSourceBytes))
		if err != nil {
			return "", fmt.Errorf("%w: stdin: %w", ErrReadModule, err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0]) // #nosec G304 -- user-provided path
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadModule, err)
	}
	return string(data), nil
}
