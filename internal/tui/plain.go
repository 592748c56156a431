package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/joe/docket/internal/events"
	"github.com/joe/docket/internal/tui/shared"

	pkgerrors "github.com/joe/docket/pkg/errors"
)

// PlainEmitter prints each event as one leveled line, for pipes and logs.
// Error lines are followed by their suggestions.
type PlainEmitter struct {
	W io.Writer
}

// Emit implements events.Emitter.
func (p PlainEmitter) Emit(event events.Event) {
	_, _ = fmt.Fprintln(p.W, shared.RenderEvent(event))

	if event.Level != events.LevelError {
		return
	}

	if suggestions := pkgerrors.FormatSuggestions(event.Err); suggestions != "" {
		_, _ = fmt.Fprintln(p.W, shared.RenderDim("    "+strings.ReplaceAll(suggestions, "\n", "\n    ")))
	}
}

// PrintSummary prints the closing message, badge and counters of result.
func PrintSummary(w io.Writer, result events.BatchResult, success string) {
	msg, level := shared.Toast(result.Outcome(), success)

	_, _ = fmt.Fprintf(w, "\n%s  %s  %s\n",
		shared.LevelStyle(level).Render(msg),
		shared.Badge(result.WarnCount, result.ErrorCount),
		shared.RenderDim(shared.Counters(result.WarnCount, result.ErrorCount)))
}
