package postpress

import "errors"

// Sentinel errors for library operations.
var (
	// ErrPostNotFound means no source document resolves to the requested id.
	// Callers need this distinct from an empty result: page routes must tell
	// "no such post" apart from "post with no content."
	ErrPostNotFound = errors.New("post not found")
)
