package errors

import (
	"errors"
	"regexp"
	"strings"
)

// Enricher enriches standard errors with actionable suggestions.
type Enricher interface {
	Enrich(err error, affectedPath string) error
}

// NewEnricher creates a new Enricher with default pattern matcher and suggestion generator.
func NewEnricher() Enricher {
	return &enricher{
		matcher:   NewPatternMatcher(),
		generator: NewSuggestionGenerator(),
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Compiled regexes shared across all enricher instances
	pathExtractionPatterns = []*regexp.Regexp{
		// Unix/Linux paths (absolute and relative)
		regexp.MustCompile(`\b\w+\s+([./][^:]+?):\s`),
		// Windows paths with backslashes
		regexp.MustCompile(`\b\w+\s+([A-Za-z]:\\[^:]+?):\s`),
		// UNC paths
		regexp.MustCompile(`\b\w+\s+(\\\\[^:]+?):\s`),
	}
)

// enricher is the concrete implementation of Enricher.
type enricher struct {
	matcher   PatternMatcher
	generator SuggestionGenerator
}

// Enrich takes a standard error and enriches it with category and actionable suggestions.
// If the error is already an ActionableError, it is returned unchanged.
// If affectedPath is empty, the path recorded by a FilesystemError is used, and
// failing that one is extracted from the error message.
func (e *enricher) Enrich(err error, affectedPath string) error {
	if err == nil {
		return nil
	}

	var actionableErr ActionableError
	if errors.As(err, &actionableErr) {
		return actionableErr
	}

	errMsg := err.Error()

	if affectedPath == "" {
		var fsErr *FilesystemError
		if errors.As(err, &fsErr) {
			affectedPath = fsErr.Path
		} else {
			affectedPath = extractPath(errMsg)
		}
	}

	category := e.matcher.Match(errMsg)
	suggestions := e.generator.Generate(category, affectedPath)

	return &actionableError{
		originalError: errMsg,
		category:      category,
		suggestions:   suggestions,
		affectedPath:  affectedPath,
		cause:         err,
	}
}

// extractPath attempts to extract a file path from common Go error message formats.
// Returns empty string if no path is found.
//
// Recognized formats:
//   - "open /path/to/file: permission denied"
//   - "mkdir C:\Licitacoes\02. FEVEREIRO: access is denied"
//   - "stat \\servidor\share\x: no such file or directory"
//
// Paths may contain spaces, as folder names in case trees usually do.
func extractPath(errorMsg string) string {
	for _, pattern := range pathExtractionPatterns {
		if matches := pattern.FindStringSubmatch(errorMsg); len(matches) > 1 {
			path := strings.TrimSpace(matches[1])
			if path != "" {
				return path
			}
		}
	}

	return ""
}
