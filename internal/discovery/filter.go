package discovery

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter narrows a file list by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the paths whose file name matches pattern.
// Supports patterns like "*Test.java" or "*Payment*"; a pattern without
// wildcards matches as a substring of the file name.
func (f *Filter) FilterByName(paths []string, pattern string) []string {
	if pattern == "" {
		return paths
	}

	filtered := []string{}
	hasWildcard := strings.ContainsAny(pattern, "*?")
	glob := escapeLiterals(pattern)

	for _, p := range paths {
		name := filepath.Base(filepath.FromSlash(p))

		if hasWildcard {
			if matched, err := doublestar.Match(glob, name); err == nil && matched {
				filtered = append(filtered, p)
			}
			continue
		}

		if strings.Contains(name, pattern) {
			filtered = append(filtered, p)
		}
	}

	return filtered
}
