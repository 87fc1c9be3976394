// Package seqerr provides actionable error values for the sequence
// detector, adapted from the teacher's pkg/errors.ActionableError: a
// category, an original message, an affected path, and a fixed list of
// suggestions. Unlike the teacher's errors package, categories here are
// assigned by the caller (one of five fixed detection-error kinds), not
// inferred from an error message by pattern matching — the detector
// always knows exactly which failure occurred.
package seqerr

import "fmt"

// Kind enumerates the detection error kinds.
type Kind string

// The five error kinds a detection entry point may surface. A sixth
// condition, an unparsable frame number in a filename, is deliberately
// absent: it is never surfaced as an error value, only as a false
// ok-result from Sequence.IsIn.
const (
	KindInputNotFound          Kind = "input_not_found"
	KindInputNotADirectory     Kind = "input_not_a_directory"
	KindPatternUnrecognized    Kind = "pattern_unrecognized"
	KindFilesystemRead         Kind = "filesystem_read"
	KindDetectionConfigInvalid Kind = "detection_config_invalid"
)

// Error is an actionable detection error: it carries enough context for
// a CLI or caller to act on the failure rather than just log it.
type Error struct {
	kind        Kind
	message     string
	path        string
	suggestions []string
}

// New builds an Error of the given kind, grounded at path, with
// suggestions for how to resolve it.
func New(kind Kind, path, message string, suggestions ...string) *Error {
	return &Error{
		kind:        kind,
		message:     message,
		path:        path,
		suggestions: suggestions,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.path == "" {
		return e.message
	}

	return fmt.Sprintf("%s: %s", e.message, e.path)
}

// Kind returns the error kind.
func (e *Error) Kind() Kind {
	return e.kind
}

// Path returns the filesystem path this error is about, if any.
func (e *Error) Path() string {
	return e.path
}

// Suggestions returns actionable next steps for resolving the error.
func (e *Error) Suggestions() []string {
	return e.suggestions
}

// NotFound reports that path does not exist.
func NotFound(path string) *Error {
	return New(KindInputNotFound, path, "no such file or directory",
		"check that the path is spelled correctly",
		"check that the path exists: "+path,
	)
}

// NotADirectory reports that path exists but is not a directory, for
// entry points that require a directory to scan.
func NotADirectory(path string) *Error {
	return New(KindInputNotADirectory, path, "not a directory",
		"pass a directory path, not a file path",
	)
}

// PatternUnrecognized reports that filename doesn't match any of the
// accepted pattern flavors (standard, C-style, frame, or frame-neg) for
// a single-filename lookup.
func PatternUnrecognized(filename string) *Error {
	return New(KindPatternUnrecognized, filename, "filename matches no recognized sequence pattern",
		"use a standard pattern (img.####.jpg), a C-style pattern (img.%04d.jpg), or a bare frame number",
	)
}

// FilesystemRead wraps an underlying directory-read failure (permission
// denied, I/O error, and so on) encountered while scanning path.
func FilesystemRead(path string, cause error) *Error {
	return New(KindFilesystemRead, path, "failed to read directory: "+cause.Error(),
		"check permissions with 'ls -la "+path+"'",
		"verify the filesystem backing "+path+" is mounted and healthy",
	)
}

// DetectionConfigInvalid reports a caller-supplied detection option that
// cannot be honored, such as an empty accepted-flavor set.
func DetectionConfigInvalid(message string) *Error {
	return New(KindDetectionConfigInvalid, "", message,
		"accept at least one pattern flavor",
	)
}
