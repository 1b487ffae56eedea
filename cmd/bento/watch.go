package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/alnah/go-bento/internal/fileutil"
	"github.com/alnah/go-bento/internal/hints"
	"github.com/alnah/go-bento/internal/logging"
	"github.com/alnah/go-bento/internal/watch"
)

// runWatch renders the input once, then re-renders changed module files
// until ctx is canceled. Render failures are reported and watching continues.
func runWatch(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseWatchFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	plan, err := planRender(positional, &f.render, env)
	if err != nil {
		return err
	}

	info, err := os.Stat(plan.inputPath)
	if err != nil {
		return err
	}

	root := plan.inputPath
	baseInputDir := plan.inputPath
	match := func(path string) bool { return matchesInclude(root, path, plan.include) }
	if !info.IsDir() {
		if err := validateModuleExtension(plan.inputPath); err != nil {
			return err
		}
		target := filepath.Clean(plan.inputPath)
		root = filepath.Dir(target)
		baseInputDir = ""
		match = func(path string) bool { return filepath.Clean(path) == target }
	}

	quiet, verbose := f.render.common.quiet, f.render.common.verbose
	logger := logging.Component("watch")

	files, err := discoverFiles(plan.inputPath, plan.outputDir, plan.include)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		logger.Warn().Str("input", plan.inputPath).Msg("no module files yet")
	}
	printResults(renderBatch(ctx, plan.renderer, files, plan.params, plan.workers), quiet, verbose, env)

	onChange := func(paths []string) {
		var batch []FileToRender
		for _, p := range paths {
			if !fileutil.FileExists(p) {
				logger.Debug().Str("path", p).Msg("source removed")
				continue
			}
			outPath, err := resolveOutputPath(p, plan.outputDir, baseInputDir)
			if err != nil {
				logger.Warn().Err(err).Str("path", p).Msg("skipping")
				continue
			}
			batch = append(batch, FileToRender{InputPath: p, OutputPath: outPath})
		}
		if len(batch) == 0 {
			return
		}
		if !quiet {
			fmt.Fprintf(env.Stdout, "[%s] %d module(s) changed\n", env.Now().Format(time.TimeOnly), len(batch))
		}
		printResults(renderBatch(ctx, plan.renderer, batch, plan.params, plan.workers), quiet, verbose, env)
	}

	if !quiet {
		fmt.Fprintf(env.Stdout, "Watching %s (Ctrl+C to stop)\n", root)
	}

	err = watch.Watch(ctx, root, onChange,
		watch.WithDebounce(f.debounce),
		watch.WithMatch(match),
		watch.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("watching %s: %w%s", root, err, hints.ForWatch())
	}
	return nil
}
