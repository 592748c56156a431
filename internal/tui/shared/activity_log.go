package shared

import (
	"strings"

	"github.com/joe/docket/internal/events"
)

// RenderActivityLog renders a chronological log of events with an optional title.
// Only events allowed by filter are shown. If maxEntries > 0, only the most
// recent N of them are displayed.
func RenderActivityLog(title string, entries []events.Event, filter LevelFilter, maxEntries int) string {
	var builder strings.Builder

	if trimmed := strings.TrimSpace(title); trimmed != "" {
		builder.WriteString(RenderLabel(trimmed))
		builder.WriteString("\n")
	}

	visible := make([]events.Event, 0, len(entries))

	for _, entry := range entries {
		if filter.Allows(entry.Level) {
			visible = append(visible, entry)
		}
	}

	if len(visible) == 0 {
		builder.WriteString(RenderDim("  (vazio)"))

		return builder.String()
	}

	if maxEntries > 0 && maxEntries < len(visible) {
		visible = visible[len(visible)-maxEntries:]
	}

	for i, entry := range visible {
		builder.WriteString("  ")
		builder.WriteString(RenderEvent(entry))

		if i < len(visible)-1 {
			builder.WriteString("\n")
		}
	}

	return builder.String()
}
