package datastore

import "fmt"

// KeyNotFoundError indicates the source document was loaded but a key
// segment of the path does not exist in it.
type KeyNotFoundError struct {
	// Path is the full dotted path that was requested.
	Path string

	// Key is the segment that was not found.
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("datastore path %q: key %q not found", e.Path, e.Key)
}

// InvalidPathError indicates the dotted path itself is malformed, or the
// path tries to descend into a value that is not a mapping.
type InvalidPathError struct {
	// Path is the full dotted path that was requested.
	Path string

	// Reason describes what is wrong with the path.
	Reason string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid datastore path %q: %s", e.Path, e.Reason)
}

// SourceUnavailableError indicates the YAML file addressed by the path
// could not be read or decoded.
type SourceUnavailableError struct {
	// Path is the full dotted path that was requested.
	Path string

	// File is the file the path resolved to, relative to the datastore root.
	File string

	// Cause is the underlying read or decode error.
	Cause error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("datastore path %q: source %q unavailable: %v", e.Path, e.File, e.Cause)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Cause
}
