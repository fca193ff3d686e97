// Package pantry parses the sectioned configuration format shared by aisle
// and pantry files:
//
//	[produce]
//	potatoes
//	onions|onion
//
//	[freezer]
//	ice cream = expire: 2024-12-01
//
// Section headers are bracketed, one item per line. Aisle files may attach
// aliases with "|"; pantry files may attach attributes after "=". Both are
// accepted everywhere, attributes are ignored.
package pantry

import (
	"bufio"
	"strings"
)

// File is a parsed aisle or pantry configuration.
type File struct {
	sections []section
	// index maps lowercased item names and aliases to their section.
	index map[string]string
}

type section struct {
	name  string
	items []string
}

// Parse reads the sectioned line format. Items appearing before any
// section header land in an unnamed section and still match lookups.
func Parse(content string) *File {
	f := &File{index: make(map[string]string)}

	current := -1
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "--") || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			name := strings.TrimSpace(line[1 : len(line)-1])
			f.sections = append(f.sections, section{name: name})
			current = len(f.sections) - 1
			continue
		}

		if current < 0 {
			f.sections = append(f.sections, section{})
			current = 0
		}

		// Strip pantry attributes, then split aisle aliases.
		if eq := strings.Index(line, "="); eq >= 0 {
			line = strings.TrimSpace(line[:eq])
		}
		names := strings.Split(line, "|")
		primary := strings.TrimSpace(names[0])
		if primary == "" {
			continue
		}
		f.sections[current].items = append(f.sections[current].items, primary)
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, taken := f.index[strings.ToLower(name)]; !taken {
				f.index[strings.ToLower(name)] = f.sections[current].name
			}
		}
	}

	return f
}

// Category returns the section an ingredient belongs to. Matching is
// case-insensitive and covers aliases.
func (f *File) Category(ingredient string) (string, bool) {
	name, ok := f.index[strings.ToLower(ingredient)]
	return name, ok
}

// Contains reports whether an ingredient (or one of its aliases) is listed
// anywhere in the file.
func (f *File) Contains(ingredient string) bool {
	_, ok := f.index[strings.ToLower(ingredient)]
	return ok
}

// Categories returns the section names in file order.
func (f *File) Categories() []string {
	names := make([]string, 0, len(f.sections))
	for _, s := range f.sections {
		names = append(names, s.name)
	}
	return names
}

// Items returns the primary item names of a section, in file order.
func (f *File) Items(category string) []string {
	for _, s := range f.sections {
		if s.name == category {
			return s.items
		}
	}
	return nil
}
