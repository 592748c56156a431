package shared

import (
	"fmt"
	"strings"

	"github.com/joe/docket/internal/events"
	"github.com/joe/docket/pkg/errors"
)

// Error display limits for different screen contexts
const (
	// ErrorLimitInProgress is for the view while a batch is running
	ErrorLimitInProgress = 3

	// ErrorLimitComplete is for the view once the batch finished
	ErrorLimitComplete = 10
)

// ErrorDisplayContext defines the context in which errors are being displayed
type ErrorDisplayContext int

const (
	// ContextInProgress indicates errors shown while the batch runs
	ContextInProgress ErrorDisplayContext = iota
	// ContextComplete indicates errors shown after the batch finished
	ContextComplete
)

// RenderErrorList renders error events with the suggestions of their
// actionable cause, up to the limit of the display context.
func RenderErrorList(errs []events.Event, context ErrorDisplayContext, maxWidth int) string {
	if len(errs) == 0 {
		return ""
	}

	var builder strings.Builder

	limit := getErrorLimit(context)

	for i, event := range errs {
		if i >= limit {
			fmt.Fprintf(&builder, "%s\n", getOverflowMessage(context, len(errs)-limit))

			break
		}

		fmt.Fprintf(&builder, "  %s %s\n", ErrorSymbol(), ErrorStyle().Render(truncate(event.Message, maxWidth)))

		if suggestions := errors.FormatSuggestions(event.Err); suggestions != "" {
			indented := "    " + strings.ReplaceAll(suggestions, "\n", "\n    ")
			fmt.Fprintf(&builder, "%s\n", RenderDim(indented))
		}
	}

	return builder.String()
}

func getErrorLimit(context ErrorDisplayContext) int {
	if context == ContextInProgress {
		return ErrorLimitInProgress
	}

	return ErrorLimitComplete
}

func getOverflowMessage(context ErrorDisplayContext, remaining int) string {
	if context == ContextInProgress {
		return fmt.Sprintf("  ... e mais %d (veja o resumo)", remaining)
	}

	return fmt.Sprintf("  ... e mais %d erro(s)", remaining)
}

func truncate(text string, maxWidth int) string {
	const ellipsis = "..."

	runes := []rune(text)
	if maxWidth <= len(ellipsis) || len(runes) <= maxWidth {
		return text
	}

	return string(runes[:maxWidth-len(ellipsis)]) + ellipsis
}
