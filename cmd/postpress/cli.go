package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	postpress "github.com/alnah/go-postpress"
)

// Sentinel errors for CLI operations.
var (
	ErrNoCommand      = errors.New("no command given")
	ErrUnknownCommand = errors.New("unknown command")
	ErrMissingID      = errors.New("command requires a post id")
)

// run parses arguments, builds the service, and dispatches to a command.
func run(args []string, stdout, stderr io.Writer) error {
	flags, rest, err := parseFlags(args)
	if err != nil {
		return err
	}

	if len(rest) == 0 {
		printUsage(stderr)
		return ErrNoCommand
	}
	command, operands := rest[0], rest[1:]

	switch command {
	case "version":
		fmt.Fprintf(stdout, "postpress %s\n", Version)
		return nil
	case "help":
		printHelp(stdout, operands)
		return nil
	}

	cfg, err := resolveConfig(flags)
	if err != nil {
		return err
	}

	svc := postpress.New(cfg.Content.Dir,
		postpress.WithLogger(newLogger(stderr, flags)),
	)
	ctx := context.Background()

	switch command {
	case "list":
		return runList(ctx, svc, stdout)
	case "show":
		return runShow(ctx, svc, stdout, operands)
	case "tags":
		return runTags(ctx, svc, stdout)
	case "categories":
		return runCategories(ctx, svc, stdout)
	case "related":
		return runRelated(ctx, svc, stdout, operands, cfg.Related.Limit)
	case "toc":
		return runTOC(ctx, svc, stdout, operands)
	case "watch":
		return runWatch(ctx, svc, cfg.Content.Dir, stdout, newLogger(stderr, flags))
	default:
		printUsage(stderr)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}
}

// newLogger builds the diagnostic logger for the requested verbosity.
func newLogger(stderr io.Writer, flags globalFlags) *slog.Logger {
	if flags.quiet {
		return slog.New(slog.DiscardHandler)
	}
	level := slog.LevelWarn
	if flags.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
}

// requireID extracts the single post-id operand.
func requireID(operands []string) (string, error) {
	if len(operands) < 1 || operands[0] == "" {
		return "", ErrMissingID
	}
	return operands[0], nil
}
