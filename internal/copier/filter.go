package copier

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileFilter decides which template files are copied.
type FileFilter interface {
	// ShouldInclude returns true if the file with the given name should be copied
	ShouldInclude(name string) bool
}

// GlobFilter implements FileFilter using glob patterns
type GlobFilter struct {
	normalizedPattern string
	isEmpty           bool
}

// NewGlobFilter creates a new GlobFilter with the given pattern.
// Empty pattern matches all files.
func NewGlobFilter(pattern string) *GlobFilter {
	normalized := strings.ToLower(strings.TrimSpace(pattern))

	return &GlobFilter{
		normalizedPattern: normalized,
		isEmpty:           normalized == "",
	}
}

// ShouldInclude returns true if the file should be included based on the glob pattern.
// Matching is case-insensitive, so "*.docx" also takes "MODELO.DOCX".
func (f *GlobFilter) ShouldInclude(name string) bool {
	if f == nil || f.isEmpty {
		return true
	}

	matched, err := doublestar.Match(f.normalizedPattern, strings.ToLower(name))
	if err != nil {
		// If pattern is invalid, don't match
		return false
	}

	return matched
}
