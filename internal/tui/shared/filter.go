package shared

import "github.com/joe/docket/internal/events"

// LevelFilter selects which events the log shows.
type LevelFilter int

// FilterAll shows every event. Other values show only the events of one
// level, e.g. LevelFilter(events.LevelWarn).
const FilterAll LevelFilter = -1

// Next cycles all → ok → info → warn → error → all.
func (f LevelFilter) Next() LevelFilter {
	switch {
	case f == FilterAll:
		return LevelFilter(events.LevelOK)
	case events.Level(f) >= events.LevelError:
		return FilterAll
	default:
		return f + 1
	}
}

// Allows reports whether an event of level passes the filter.
func (f LevelFilter) Allows(level events.Level) bool {
	return f == FilterAll || events.Level(f) == level
}

func (f LevelFilter) String() string {
	if f == FilterAll {
		return "todos"
	}

	return events.Level(f).String()
}
