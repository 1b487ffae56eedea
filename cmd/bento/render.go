package main

import (
	"context"
	"fmt"

	bento "github.com/alnah/go-bento"
	"github.com/alnah/go-bento/internal/config"
	"github.com/alnah/go-bento/internal/logging"
)

// renderPlan is everything render and watch resolve before rendering.
type renderPlan struct {
	sess      *session
	renderer  *bento.Renderer
	inputPath string
	outputDir string
	include   []string
	workers   int
	params    *renderParams
}

// planRender merges flags, env and config, and builds the renderer.
func planRender(positional []string, f *renderFlags, env *Environment) (*renderPlan, error) {
	sess, err := newSession(&f.common, env)
	if err != nil {
		return nil, err
	}
	cfg := sess.cfg
	mergeAssetFlags(&f.assets, cfg)
	mergeRenderFlags(f, cfg)

	workers := f.workers
	if workers == 0 {
		workers = sess.env.Workers
	}
	if err := validateWorkers(workers); err != nil {
		return nil, err
	}

	include := cfg.Input.Include
	if len(f.include) > 0 {
		include = f.include
	}
	if err := validateIncludes(include); err != nil {
		return nil, err
	}

	inputPath, err := resolveInputPath(positional, cfg)
	if err != nil {
		return nil, err
	}

	size, err := dimensions(cfg)
	if err != nil {
		return nil, err
	}
	style, err := styleContext(cfg)
	if err != nil {
		return nil, err
	}

	r, err := newRenderer(cfg)
	if err != nil {
		return nil, err
	}

	return &renderPlan{
		sess:      sess,
		renderer:  r,
		inputPath: inputPath,
		outputDir: resolveOutputDir(f.output, cfg),
		include:   include,
		workers:   bento.ResolveWorkers(workers),
		params: &renderParams{
			editable:   cfg.Render.Editable,
			size:       size,
			style:      style,
			standalone: cfg.Output.Standalone,
		},
	}, nil
}

// runRender orchestrates the render command.
func runRender(ctx context.Context, args []string, env *Environment) error {
	f, positional, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	plan, err := planRender(positional, f, env)
	if err != nil {
		return err
	}

	files, err := discoverFiles(plan.inputPath, plan.outputDir, plan.include)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", ErrNoFiles, plan.inputPath)
	}

	plan.sess.logger.Info().
		Int("files", len(files)).
		Int("workers", plan.workers).
		Msg("rendering")

	done := logging.Duration(plan.sess.logger, "render")
	results := renderBatch(ctx, plan.renderer, files, plan.params, plan.workers)
	done()

	summary := printResults(results, f.common.quiet, f.common.verbose, env)
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d render(s) failed: %w", summary.Failed, len(results), firstError(results))
	}
	return nil
}

// mergeRenderFlags merges render flags into cfg. CLI values override config
// values; boolean flags can only switch a setting on.
func mergeRenderFlags(f *renderFlags, cfg *config.Config) {
	if f.module.editable {
		cfg.Render.Editable = true
	}
	if f.module.width != 0 {
		cfg.Render.Width = f.module.width
	}
	if f.module.height != 0 {
		cfg.Render.Height = f.module.height
	}
	if f.standalone {
		cfg.Output.Standalone = true
	}
}

// resolveInputPath returns the positional input or the configured default directory.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir returns the output flag or the configured default directory.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}
