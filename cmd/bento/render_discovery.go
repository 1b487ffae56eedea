package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	bento "github.com/alnah/go-bento"
	"github.com/alnah/go-bento/internal/fileutil"
)

// outputExtension is the extension of rendered files.
const outputExtension = "html"

// Sentinel errors for file discovery.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrNoFiles            = errors.New("no module files found")
	ErrInvalidExtension   = errors.New("module file must have .md, .markdown or .txt extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// moduleExtensions are accepted for a single input file.
var moduleExtensions = []string{".md", ".markdown", ".txt"}

// FileToRender represents a single module file to process.
type FileToRender struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds the module files to render.
// A file input is taken as is; a directory is walked and every file whose
// slash-separated path relative to it matches an include glob is selected.
func discoverFiles(inputPath, outputDir string, include []string) ([]FileToRender, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateModuleExtension(inputPath); err != nil {
			return nil, err
		}
		outPath, err := resolveOutputPath(inputPath, outputDir, "")
		if err != nil {
			return nil, err
		}
		return []FileToRender{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToRender
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			if path != inputPath && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !matchesInclude(inputPath, path, include) {
			return nil
		}
		outPath, err := resolveOutputPath(path, outputDir, inputPath)
		if err != nil {
			return err
		}
		files = append(files, FileToRender{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// matchesInclude reports whether path, relative to root, matches any glob.
func matchesInclude(root, path string, include []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return false
	}
	for _, pattern := range include {
		if ok, _ := doublestar.Match(pattern, rel); ok {
			return true
		}
	}
	return false
}

// validateIncludes checks every glob before a walk, so a typo fails fast
// instead of matching nothing.
func validateIncludes(include []string) error {
	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("%w: include pattern %q", ErrInvalidFormat, pattern)
		}
	}
	return nil
}

// resolveOutputPath determines the HTML output path for a module file.
// Without an output directory the HTML lands next to its source; a
// directory input keeps its relative layout under the output directory.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) (string, error) {
	if outputDir == "" {
		return fileutil.ReplaceExtension(inputPath, outputExtension)
	}

	if baseInputDir == "" && strings.HasSuffix(outputDir, "."+outputExtension) {
		return outputDir, nil
	}

	base, err := fileutil.ReplaceExtension(filepath.Base(inputPath), outputExtension)
	if err != nil {
		return "", err
	}

	if baseInputDir != "" {
		if relPath, err := filepath.Rel(baseInputDir, inputPath); err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), base), nil
		}
	}
	return filepath.Join(outputDir, base), nil
}

// validateModuleExtension checks that a single input file looks like module text.
func validateModuleExtension(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range moduleExtensions {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > bento.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, bento.MaxWorkers)
	}
	return nil
}
