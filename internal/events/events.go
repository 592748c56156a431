// Package events defines the log events produced by docket operations and the
// batch result folded from them.
package events

import (
	"fmt"
	"iter"
	"strings"
	"sync/atomic"
)

// Level is the severity of an Event.
type Level int

// Levels, from best to worst.
const (
	LevelOK Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelOK:
		return "ok"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Tag returns the bracketed upper-case label used in log lines, e.g. "[WARN]".
func (l Level) Tag() string {
	return "[" + strings.ToUpper(l.String()) + "]"
}

// Event is one log record of an operation.
type Event struct {
	Level   Level
	Message string

	// Path is the folder or file the event is about, when there is one.
	Path string

	// Err is the cause of an error event, usually an errors.ActionableError.
	// Not-found warnings wrap errors.ErrNotFound.
	Err error
}

// String renders the event as a plain log line.
func (e Event) String() string {
	return e.Level.Tag() + " " + e.Message
}

// OK returns an ok-level event.
func OK(path, format string, args ...any) Event {
	return Event{Level: LevelOK, Message: fmt.Sprintf(format, args...), Path: path}
}

// Info returns an info-level event.
func Info(path, format string, args ...any) Event {
	return Event{Level: LevelInfo, Message: fmt.Sprintf(format, args...), Path: path}
}

// Warn returns a warn-level event.
func Warn(path, format string, args ...any) Event {
	return Event{Level: LevelWarn, Message: fmt.Sprintf(format, args...), Path: path}
}

// Error returns an error-level event carrying err.
func Error(path string, err error, format string, args ...any) Event {
	return Event{Level: LevelError, Message: fmt.Sprintf(format, args...), Path: path, Err: err}
}

// Emitter receives events as they are produced.
type Emitter interface {
	Emit(event Event)
}

// EmitterFunc adapts a function to Emitter.
type EmitterFunc func(Event)

// Emit calls f(event).
func (f EmitterFunc) Emit(event Event) {
	f(event)
}

// Once wraps seq so that it can be ranged over a single time.
// Later ranges yield nothing, so filesystem work is never repeated.
func Once(seq iter.Seq[Event]) iter.Seq[Event] {
	var used atomic.Bool

	return func(yield func(Event) bool) {
		if used.Swap(true) {
			return
		}

		seq(yield)
	}
}

// Concat yields the events of each sequence in turn.
func Concat(seqs ...iter.Seq[Event]) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, seq := range seqs {
			for event := range seq {
				if !yield(event) {
					return
				}
			}
		}
	}
}

// Of yields the given events.
func Of(evts ...Event) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, event := range evts {
			if !yield(event) {
				return
			}
		}
	}
}

// Collect drains seq into a slice.
func Collect(seq iter.Seq[Event]) []Event {
	var out []Event

	for event := range seq {
		out = append(out, event)
	}

	return out
}
