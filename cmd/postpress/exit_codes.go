package main

import (
	"errors"

	postpress "github.com/alnah/go-postpress"
	"github.com/alnah/go-postpress/internal/source"
)

// Exit codes for the postpress CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, custom codes < 126.
const (
	ExitSuccess  = 0 // Command completed
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, command, or config
	ExitIO       = 3 // Content directory unreadable
	ExitNotFound = 4 // No post resolves to the requested id
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use
// fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, postpress.ErrPostNotFound) {
		return ExitNotFound
	}

	if errors.Is(err, source.ErrContentDir) {
		return ExitIO
	}

	if errors.Is(err, ErrInvalidFlags) ||
		errors.Is(err, ErrNoCommand) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrMissingID) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) {
		return ExitUsage
	}

	return ExitGeneral
}
