package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: postpress [flags] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list        List visible posts, most recent first")
	fmt.Fprintln(w, "  show        Print one post's rendered HTML by id")
	fmt.Fprintln(w, "  tags        List tags with visible-post counts")
	fmt.Fprintln(w, "  categories  List categories")
	fmt.Fprintln(w, "  related     List posts related to an id")
	fmt.Fprintln(w, "  toc         Print one post's table of contents")
	fmt.Fprintln(w, "  watch       Report content directory changes")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -C, --content <dir>   Content directory (overrides config)")
	fmt.Fprintln(w, "  -c, --config <path>   Config file path (default: ./postpress.yaml)")
	fmt.Fprintln(w, "  -n, --limit <n>       Max related posts (overrides config)")
	fmt.Fprintln(w, "  -q, --quiet           Suppress diagnostics")
	fmt.Fprintln(w, "  -v, --verbose         Verbose diagnostics")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'postpress help <command>' for details on a specific command.")
}

// printHelp prints help for a specific command, or general usage.
func printHelp(w io.Writer, operands []string) {
	if len(operands) == 0 {
		printUsage(w)
		return
	}
	switch operands[0] {
	case "show", "related", "toc":
		fmt.Fprintf(w, "Usage: postpress %s <id>\n", operands[0])
		fmt.Fprintln(w)
		fmt.Fprintln(w, "The id is the post's declared slug, or its filename without the")
		fmt.Fprintln(w, "markdown extension when no slug is declared. Direct lookup resolves")
		fmt.Fprintln(w, "drafts and future-dated posts too; only listings hide them.")
	case "watch":
		fmt.Fprintln(w, "Usage: postpress watch")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Watches the content directory and reports each markdown change with")
		fmt.Fprintln(w, "a fresh visible-post count. Stop with Ctrl-C.")
	default:
		printUsage(w)
	}
}
