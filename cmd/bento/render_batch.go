package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	bento "github.com/alnah/go-bento"
	"github.com/alnah/go-bento/internal/fileutil"
	"github.com/alnah/go-bento/internal/hints"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrReadModule = errors.New("failed to read module file")
	ErrWriteHTML  = errors.New("failed to write HTML file")
)

// ModuleRenderer is the interface for the rendering service.
type ModuleRenderer interface {
	Render(ctx context.Context, input bento.Input) (*bento.Result, error)
}

// Compile-time interface implementation check.
var _ ModuleRenderer = (*bento.Renderer)(nil)

// renderParams groups parameters shared by every file of a batch.
type renderParams struct {
	editable   bool
	size       *bento.Dimensions
	style      *bento.StyleContext
	standalone bool
}

// RenderResult holds the outcome of a single render.
type RenderResult struct {
	InputPath  string
	OutputPath string
	Empty      bool
	Err        error
	Duration   time.Duration
}

// renderBatch renders files concurrently with the given number of workers.
// The Renderer is safe for concurrent use, so workers share it.
// Results keep the order of files.
func renderBatch(ctx context.Context, r ModuleRenderer, files []FileToRender, params *renderParams, workers int) []RenderResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]RenderResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = RenderResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = renderFile(ctx, r, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// renderFile renders a single file and writes the output atomically.
func renderFile(ctx context.Context, r ModuleRenderer, f FileToRender, params *renderParams) RenderResult {
	start := time.Now()
	result := RenderResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) RenderResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %w", ErrReadModule, err))
	}

	module := bento.ModuleContent{Text: string(content)}
	input := module.Input(params.editable)
	input.Size = params.size
	input.Style = params.style

	rendered, err := r.Render(ctx, input)
	if err != nil {
		return fail(err)
	}
	result.Empty = rendered.Empty

	out := rendered.HTML
	if params.standalone {
		out = rendered.Document(documentTitle(f.InputPath))
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return fail(fmt.Errorf("creating output directory: %w%s", err, hints.ForOutputDirectory()))
	}
	if err := fileutil.WriteFileAtomic(f.OutputPath, []byte(out), filePermissions); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrWriteHTML, err))
	}

	result.Duration = time.Since(start)
	return result
}

// documentTitle derives a standalone document title from the file name.
func documentTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ResultSummary holds the count of succeeded and failed renders.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Empty     int
}

// countResults tallies succeeded, failed and empty renders.
func countResults(results []RenderResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		switch {
		case r.Err != nil:
			summary.Failed++
		case r.Empty:
			summary.Succeeded++
			summary.Empty++
		default:
			summary.Succeeded++
		}
	}
	return summary
}

// firstError returns the first failure in file order, or nil.
func firstError(results []RenderResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// printResults outputs render results and returns the summary.
func printResults(results []RenderResult, quiet bool, verbose int, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		note := ""
		if r.Empty {
			note = " [empty]"
		}
		if verbose > 0 {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)%s\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond), note)
		} else {
			fmt.Fprintf(env.Stdout, "Rendered %s%s\n", r.OutputPath, note)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary
}
