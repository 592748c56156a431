package errors

import "strings"

// PatternMatcher matches error messages to categories using string patterns.
type PatternMatcher interface {
	Match(errorMsg string) ErrorCategory
}

// NewPatternMatcher creates a new PatternMatcher with predefined patterns.
// Categories are tried in order; the first match wins.
func NewPatternMatcher() PatternMatcher {
	return &patternMatcher{
		patterns: []categoryPatterns{
			{CategoryPermission, []string{
				"permission denied",
				"access denied",
				"access is denied",
				"operation not permitted",
				"read-only file system",
			}},
			{CategoryDiskSpace, []string{
				"no space left on device",
				"not enough space on the disk",
				"disk full",
				"quota exceeded",
			}},
			{CategoryInvalidName, []string{
				"invalid argument",
				"file name too long",
				"syntax is incorrect",
				"illegal byte sequence",
			}},
			{CategoryPath, []string{
				"no such file or directory",
				"cannot find the path",
				"cannot find the file",
				"file not found",
				"not a directory",
				"is a directory",
				"file exists",
			}},
			{CategoryCopy, []string{
				"short write",
				"input/output error",
				"i/o error",
				"unexpected eof",
			}},
		},
	}
}

type categoryPatterns struct {
	category ErrorCategory
	needles  []string
}

// patternMatcher is the concrete implementation of PatternMatcher.
type patternMatcher struct {
	patterns []categoryPatterns
}

// Match returns the error category based on pattern matching.
func (m *patternMatcher) Match(errorMsg string) ErrorCategory {
	lowerMsg := strings.ToLower(errorMsg)

	for _, group := range m.patterns {
		for _, pattern := range group.needles {
			if strings.Contains(lowerMsg, pattern) {
				return group.category
			}
		}
	}

	return CategoryUnknown
}
