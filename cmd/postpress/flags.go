package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// ErrInvalidFlags indicates flag parsing failed.
var ErrInvalidFlags = errors.New("invalid flags")

// globalFlags holds flags shared across commands.
type globalFlags struct {
	content string
	config  string
	limit   int
	quiet   bool
	verbose bool
}

// parseFlags parses global flags from args and returns the remaining
// positional arguments (command and its operands).
func parseFlags(args []string) (globalFlags, []string, error) {
	var flags globalFlags

	fs := flag.NewFlagSet("postpress", flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {} // help is handled by the help command

	fs.StringVarP(&flags.content, "content", "C", "", "content directory (overrides config)")
	fs.StringVarP(&flags.config, "config", "c", "", "config file path")
	fs.IntVarP(&flags.limit, "limit", "n", 0, "max related posts (overrides config)")
	fs.BoolVarP(&flags.quiet, "quiet", "q", false, "suppress diagnostics")
	fs.BoolVarP(&flags.verbose, "verbose", "v", false, "verbose diagnostics")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return flags, []string{"help"}, nil
		}
		return globalFlags{}, nil, fmt.Errorf("%w: %v", ErrInvalidFlags, err)
	}

	return flags, fs.Args(), nil
}
