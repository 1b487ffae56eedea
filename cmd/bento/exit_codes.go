package main

import (
	"errors"
	"os"

	bento "github.com/alnah/go-bento"
	"github.com/alnah/go-bento/internal/config"
	"github.com/alnah/go-bento/internal/fileutil"
)

// Exit codes for the bento CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Everything rendered
	ExitGeneral = 1 // General/unexpected error, lint issues in strict mode
	ExitUsage   = 2 // Invalid flags, config, theme or assets
	ExitIO      = 3 // File not found, permission denied, write failure
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadModule) ||
		errors.Is(err, ErrWriteHTML) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, ErrNoFiles) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, bento.ErrInvalidDimensions) ||
		errors.Is(err, bento.ErrInvalidStyle) ||
		errors.Is(err, bento.ErrInvalidHighlightStyle) ||
		errors.Is(err, bento.ErrStyleNotFound) ||
		errors.Is(err, bento.ErrTemplateSetNotFound) ||
		errors.Is(err, bento.ErrIncompleteTemplateSet) ||
		errors.Is(err, bento.ErrInvalidAssetPath) ||
		errors.Is(err, bento.ErrTemplateParse) ||
		errors.Is(err, fileutil.ErrExtensionEmpty) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, ErrUnsupportedShell) {
		return ExitUsage
	}

	return ExitGeneral
}
