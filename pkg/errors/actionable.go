// Package errors provides the error taxonomy of docket and actionable,
// context-aware suggestions for the failures users can fix themselves.
//
// Failures of one unit of work (a folder, a file) are FilesystemError values and
// are reported as events while the batch goes on. A ConfigurationError means the
// destination root itself could not be established and the batch stops.
//
// Basic Usage:
//
//	enricher := errors.NewEnricher()
//	if err := fsys.MkdirAll(dir, 0o755); err != nil {
//	    actionableErr := enricher.Enrich(err, dir)
//	    fmt.Println(actionableErr.Error())
//	    fmt.Println(errors.FormatSuggestions(actionableErr))
//	}
//
// The enricher extracts paths from error messages when none is given:
//
//	err := errors.New("open /srv/licitacoes/proposta.pdf: permission denied")
//	enriched := enricher.Enrich(err, "") // path comes from the message
package errors

import (
	"errors"
	"strings"
)

// Exported constants.
const (
	CategoryCopy        ErrorCategory = "copy"
	CategoryDiskSpace   ErrorCategory = "disk_space"
	CategoryInvalidName ErrorCategory = "invalid_name"
	CategoryPath        ErrorCategory = "path"
	CategoryPermission  ErrorCategory = "permission"
	CategoryUnknown     ErrorCategory = "unknown"
)

// ActionableError represents an error with actionable suggestions for the user.
type ActionableError interface {
	error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError creates a new ActionableError with the given details.
func NewActionableError(
	originalError string,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		originalError: originalError,
		category:      category,
		suggestions:   suggestions,
		affectedPath:  affectedPath,
	}
}

// ErrorCategory represents the type of error that occurred.
type ErrorCategory string

// FormatSuggestions formats the suggestions from an ActionableError as a bulleted list
// for display. Returns empty string if the error is nil or has no suggestions.
func FormatSuggestions(err error) string {
	if err == nil {
		return ""
	}

	var actionable ActionableError
	if !errors.As(err, &actionable) {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	var builder strings.Builder
	for i, suggestion := range suggestions {
		if i > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString("  • ")
		builder.WriteString(suggestion)
	}

	return builder.String()
}

// actionableError is the concrete implementation of ActionableError.
type actionableError struct {
	originalError string
	category      ErrorCategory
	suggestions   []string
	affectedPath  string
	cause         error
}

// AffectedPath returns the file path affected by this error.
func (e *actionableError) AffectedPath() string {
	return e.affectedPath
}

// Category returns the error category.
func (e *actionableError) Category() ErrorCategory {
	return e.category
}

// Error implements the error interface.
func (e *actionableError) Error() string {
	return e.originalError
}

// OriginalError returns the original error message.
func (e *actionableError) OriginalError() string {
	return e.originalError
}

// Suggestions returns the list of actionable suggestions.
func (e *actionableError) Suggestions() []string {
	return e.suggestions
}

// Unwrap returns the enriched error, if any.
func (e *actionableError) Unwrap() error {
	return e.cause
}
