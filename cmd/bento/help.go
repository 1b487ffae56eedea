package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bento <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render      Render custom module text to HTML")
	fmt.Fprintln(w, "  watch       Re-render modules when their source changes")
	fmt.Fprintln(w, "  expand      Print text with shortcodes expanded")
	fmt.Fprintln(w, "  lint        Report unknown and malformed shortcodes")
	fmt.Fprintln(w, "  shortcodes  List supported shortcodes")
	fmt.Fprintln(w, "  doctor      Check assets, config and environment")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'bento help <command>' for details on a specific command.")
}

func printCommonUsage(w io.Writer) {
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             More output (-vv debug, -vvv trace)")
	fmt.Fprintln(w, "      --no-color            Disable colored log output")
}

func printAssetUsage(w io.Writer) {
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --style <s>           Module style name, CSS file or inline CSS")
	fmt.Fprintln(w, "      --templates <name>    Shortcode template set")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory (styles/, templates/)")
	fmt.Fprintln(w, "      --highlight <style>   Code highlighting style, \"none\" disables")
}

func printModuleOptions(w io.Writer) {
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory")
	fmt.Fprintln(w, "  -i, --include <glob>      Files to render in a directory (default **/*.md)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -s, --standalone          Write full HTML documents with the stylesheet")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Module:")
	fmt.Fprintln(w, "  -e, --editable            Add the editing overlay")
	fmt.Fprintln(w, "      --width <n>           Width in grid columns (0-16)")
	fmt.Fprintln(w, "      --height <n>          Height in grid rows (0-16)")
	fmt.Fprintln(w)
	printAssetUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printRenderUsage prints usage for the render command.
func printRenderUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bento render <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render custom module text (Markdown, HTML and shortcodes) to HTML.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Module file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	printModuleOptions(w)
}

// printWatchUsage prints usage for the watch command.
func printWatchUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bento watch <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Render once, then re-render modules whose source changes. Stop with Ctrl+C.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Module file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Watch:")
	fmt.Fprintln(w, "      --debounce <d>        Quiet period before re-rendering (default 150ms)")
	fmt.Fprintln(w)
	printModuleOptions(w)
}

// printExpandUsage prints usage for the expand command.
func printExpandUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bento expand [file]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print text with shortcodes replaced by their markup.")
	fmt.Fprintln(w, "Reads standard input when file is omitted or \"-\".")
	fmt.Fprintln(w)
	printAssetUsage(w)
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printLintUsage prints usage for the lint command.
func printLintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bento lint <file|dir>... [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Report unknown shortcode kinds and tokens that are not well formed.")
	fmt.Fprintln(w, "Both render as literal text. Exits 0 unless --strict is set.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "      --strict              Exit 1 when issues are found")
	fmt.Fprintln(w, "  -i, --include <glob>      Files to lint in a directory (default **/*.md)")
	fmt.Fprintln(w)
	printCommonUsage(w)
}

// printShortcodesUsage prints usage for the shortcodes command.
func printShortcodesUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bento shortcodes [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List supported shortcodes with their attributes and defaults.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -f, --format <s>          Output format: text, yaml, json")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "render":
		printRenderUsage(env.Stdout)
	case "watch":
		printWatchUsage(env.Stdout)
	case "expand":
		printExpandUsage(env.Stdout)
	case "lint":
		printLintUsage(env.Stdout)
	case "shortcodes":
		printShortcodesUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: bento version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: bento help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
