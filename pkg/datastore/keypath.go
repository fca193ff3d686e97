package datastore

import "strings"

// keyDelimiter separates path segments. Segments are matched literally,
// so keys containing spaces work; keys containing dots cannot be addressed.
const keyDelimiter = "."

// KeyPath is a parsed dotted datastore path.
type KeyPath struct {
	// Dir is the subdirectory under the datastore root (the namespace).
	Dir string

	// File is the file name within Dir, without extension.
	File string

	// Keys are the remaining segments, navigated through nested mappings.
	// Empty means the whole document.
	Keys []string
}

// ParseKeyPath splits a dotted path of the form "dir.file.key..." into its
// components. At least the directory and file segments must be present.
func ParseKeyPath(path string) (KeyPath, error) {
	segments := strings.Split(path, keyDelimiter)
	if len(segments) < 2 {
		return KeyPath{}, &InvalidPathError{
			Path:   path,
			Reason: "need at least a namespace and a file segment",
		}
	}
	for _, seg := range segments {
		if seg == "" {
			return KeyPath{}, &InvalidPathError{Path: path, Reason: "empty segment"}
		}
	}
	return KeyPath{Dir: segments[0], File: segments[1], Keys: segments[2:]}, nil
}
