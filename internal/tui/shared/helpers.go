package shared

import (
	"fmt"
	"time"

	"github.com/joe/docket/internal/events"
)

// FormatDuration formats duration into human-readable format (e.g., "2m 30s").
// Batches shorter than a second are shown in milliseconds.
func FormatDuration(duration time.Duration) string {
	if duration < time.Second {
		return fmt.Sprintf("%dms", duration.Milliseconds())
	}

	duration = duration.Round(time.Second)
	hours := duration / time.Hour
	duration %= time.Hour
	minutes := duration / time.Minute
	duration %= time.Minute
	seconds := duration / time.Second

	if hours > 0 {
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	} else if minutes > 0 {
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	}

	return fmt.Sprintf("%ds", seconds)
}

// Badge returns the status badge for the counts seen so far.
func Badge(warnings, errs int) string {
	switch {
	case errs > 0:
		return "🔴 Erros"
	case warnings > 0:
		return "🟡 Avisos"
	default:
		return "🟢 OK"
	}
}

// Counters renders the warning and error counters shown next to the badge.
func Counters(warnings, errs int) string {
	return fmt.Sprintf("Avisos: %d  |  Erros: %d", warnings, errs)
}

// Toast returns the closing message for a batch outcome. success is the
// message of a clean run, which depends on the operation.
func Toast(outcome events.Outcome, success string) (string, events.Level) {
	switch outcome {
	case events.OutcomeErrors:
		return "Concluído com erros. Verifique o log.", events.LevelError
	case events.OutcomeWarnings:
		return "Concluído com avisos. Verifique o log.", events.LevelWarn
	default:
		return success, events.LevelOK
	}
}
