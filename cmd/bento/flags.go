package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-bento/internal/watch"
)

// ErrUsage wraps flag parsing failures.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose int
	noColor bool
}

// assetFlags holds stylesheet and template flags.
type assetFlags struct {
	style     string // name, path or inline CSS
	templates string // shortcode template set name
	assetPath string // override asset directory
	highlight string // chroma style, "none" disables highlighting
}

// moduleFlags holds per-module rendering flags.
type moduleFlags struct {
	editable bool
	width    int
	height   int
}

// renderFlags holds all flags for the render command.
type renderFlags struct {
	common     commonFlags
	assets     assetFlags
	module     moduleFlags
	output     string
	workers    int
	standalone bool
	include    []string
}

// watchFlags holds flags for the watch command: the render flags plus the
// debounce window.
type watchFlags struct {
	render   renderFlags
	debounce time.Duration
}

// expandFlags holds flags for the expand command.
type expandFlags struct {
	common commonFlags
	assets assetFlags
}

// lintFlags holds flags for the lint command.
type lintFlags struct {
	common  commonFlags
	strict  bool
	include []string
}

// shortcodesFlags holds flags for the shortcodes command.
type shortcodesFlags struct {
	format string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.CountVarP(&f.verbose, "verbose", "v", "more output (repeat for debug and trace)")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored log output")
}

// addAssetFlags adds asset-related flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "module style name, CSS file path or inline CSS")
	fs.StringVar(&f.templates, "templates", "", "shortcode template set name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.highlight, "highlight", "", "code highlighting style (\"none\" disables)")
}

// addModuleFlags adds per-module flags to a FlagSet.
func addModuleFlags(fs *flag.FlagSet, f *moduleFlags) {
	fs.BoolVarP(&f.editable, "editable", "e", false, "add the editing overlay")
	fs.IntVar(&f.width, "width", 0, "module width in grid columns (0 = unspecified)")
	fs.IntVar(&f.height, "height", 0, "module height in grid rows (0 = unspecified)")
}

// addRenderFlags registers the render flags on fs.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVarP(&f.standalone, "standalone", "s", false, "write full HTML documents with the stylesheet")
	fs.StringSliceVarP(&f.include, "include", "i", nil, "glob of files to render inside a directory (repeatable)")

	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	addModuleFlags(fs, &f.module)
}

// newRenderFlagSet creates the render FlagSet.
// Shared by parsing and shell completion.
func newRenderFlagSet(f *renderFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	addRenderFlags(fs, f)
	return fs
}

func newWatchFlagSet(f *watchFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	addRenderFlags(fs, &f.render)
	fs.DurationVar(&f.debounce, "debounce", watch.DefaultDebounce, "quiet period before re-rendering")
	return fs
}

func newExpandFlagSet(f *expandFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("expand", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	addAssetFlags(fs, &f.assets)
	return fs
}

func newLintFlagSet(f *lintFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.strict, "strict", false, "exit 1 when issues are found")
	fs.StringSliceVarP(&f.include, "include", "i", nil, "glob of files to lint inside a directory (repeatable)")
	return fs
}

func newShortcodesFlagSet(f *shortcodesFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("shortcodes", flag.ContinueOnError)
	fs.StringVarP(&f.format, "format", "f", formatText, "output format: text, yaml, json")
	return fs
}

// parse runs fs over args with usage going to w, and returns positional args.
func parse(fs *flag.FlagSet, args []string, w io.Writer, usage func(io.Writer)) ([]string, error) {
	fs.SetOutput(w)
	fs.Usage = func() { usage(w) }
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return fs.Args(), nil
}

// parseRenderFlags parses render command flags and returns positional args.
func parseRenderFlags(args []string, w io.Writer) (*renderFlags, []string, error) {
	f := &renderFlags{}
	positional, err := parse(newRenderFlagSet(f), args, w, printRenderUsage)
	if err != nil {
		return nil, nil, err
	}
	return f, positional, nil
}

// parseWatchFlags parses watch command flags and returns positional args.
func parseWatchFlags(args []string, w io.Writer) (*watchFlags, []string, error) {
	f := &watchFlags{}
	positional, err := parse(newWatchFlagSet(f), args, w, printWatchUsage)
	if err != nil {
		return nil, nil, err
	}
	return f, positional, nil
}

// parseExpandFlags parses expand command flags and returns positional args.
func parseExpandFlags(args []string, w io.Writer) (*expandFlags, []string, error) {
	f := &expandFlags{}
	positional, err := parse(newExpandFlagSet(f), args, w, printExpandUsage)
	if err != nil {
		return nil, nil, err
	}
	return f, positional, nil
}

// parseLintFlags parses lint command flags and returns positional args.
func parseLintFlags(args []string, w io.Writer) (*lintFlags, []string, error) {
	f := &lintFlags{}
	positional, err := parse(newLintFlagSet(f), args, w, printLintUsage)
	if err != nil {
		return nil, nil, err
	}
	return f, positional, nil
}

// parseShortcodesFlags parses shortcodes command flags.
func parseShortcodesFlags(args []string, w io.Writer) (*shortcodesFlags, error) {
	f := &shortcodesFlags{}
	if _, err := parse(newShortcodesFlagSet(f), args, w, printShortcodesUsage); err != nil {
		return nil, err
	}
	return f, nil
}
