// Package datastore resolves dotted paths like "eggs.meta.storage.shelf life"
// against a directory of YAML files. The first segment names a subdirectory,
// the second a file (".yml", with ".yaml" as fallback), and the remaining
// segments navigate nested mappings inside the decoded document.
package datastore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	yamlExtension    = ".yml"
	yamlExtensionAlt = ".yaml"
)

// Store reads values from a datastore directory. Parsed files are cached
// for the lifetime of the Store, so repeated lookups against the same file
// within one report render hit the disk once. A Store is not safe for
// concurrent use; create one per render.
type Store struct {
	root  string
	cache map[string]map[string]any
}

// Open returns a Store rooted at the given directory. The directory is not
// touched until the first Get.
func Open(root string) *Store {
	return &Store{
		root:  root,
		cache: make(map[string]map[string]any),
	}
}

// Root returns the directory the store was opened on.
func (s *Store) Root() string {
	return s.root
}

// Get resolves a dotted path and returns the value it addresses. Scalars
// come back typed as decoded by YAML (string, int, float64, bool); mappings
// and sequences come back as map[string]any and []any.
//
// Errors are *InvalidPathError, *SourceUnavailableError or
// *KeyNotFoundError depending on which stage of resolution failed.
func (s *Store) Get(path string) (any, error) {
	kp, err := ParseKeyPath(path)
	if err != nil {
		return nil, err
	}

	doc, err := s.load(kp, path)
	if err != nil {
		return nil, err
	}

	var node any = doc
	for i, key := range kp.Keys {
		mapping, ok := node.(map[string]any)
		if !ok {
			parent := kp.File
			if i > 0 {
				parent = kp.Keys[i-1]
			}
			return nil, &InvalidPathError{
				Path:   path,
				Reason: fmt.Sprintf("segment %q does not address a mapping", parent),
			}
		}
		child, ok := mapping[key]
		if !ok {
			return nil, &KeyNotFoundError{Path: path, Key: key}
		}
		node = child
	}
	return node, nil
}

// load reads and decodes the file a key path addresses, consulting the
// per-store cache first.
func (s *Store) load(kp KeyPath, path string) (map[string]any, error) {
	rel := filepath.Join(kp.Dir, kp.File)
	if doc, ok := s.cache[rel]; ok {
		return doc, nil
	}

	file := rel + yamlExtension
	data, err := os.ReadFile(filepath.Join(s.root, file))
	if errors.Is(err, fs.ErrNotExist) {
		alt := rel + yamlExtensionAlt
		if altData, altErr := os.ReadFile(filepath.Join(s.root, alt)); altErr == nil {
			data, err = altData, nil
			file = alt
		}
	}
	if err != nil {
		return nil, &SourceUnavailableError{Path: path, File: file, Cause: err}
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &SourceUnavailableError{Path: path, File: file, Cause: err}
	}

	s.cache[rel] = doc
	return doc, nil
}
