package events

import (
	"iter"
	"time"
)

// Outcome summarizes a batch.
type Outcome int

// Outcomes.
const (
	OutcomeSuccess Outcome = iota
	OutcomeWarnings
	OutcomeErrors
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeWarnings:
		return "succeeded with warnings"
	case OutcomeErrors:
		return "completed with errors"
	default:
		return "unknown"
	}
}

// BatchResult is the value returned by one batch operation.
type BatchResult struct {
	RunID      string
	StartTime  time.Time
	EndTime    time.Time
	OKCount    int
	InfoCount  int
	WarnCount  int
	ErrorCount int
	Events     []Event
}

// Add folds event into the result.
func (r *BatchResult) Add(event Event) {
	switch event.Level {
	case LevelOK:
		r.OKCount++
	case LevelInfo:
		r.InfoCount++
	case LevelWarn:
		r.WarnCount++
	case LevelError:
		r.ErrorCount++
	}

	r.Events = append(r.Events, event)
}

// Outcome reports success, success with warnings, or completion with errors.
func (r *BatchResult) Outcome() Outcome {
	switch {
	case r.ErrorCount > 0:
		return OutcomeErrors
	case r.WarnCount > 0:
		return OutcomeWarnings
	default:
		return OutcomeSuccess
	}
}

// Duration returns the wall time of the batch.
func (r *BatchResult) Duration() time.Duration {
	if r.EndTime.IsZero() {
		return 0
	}

	return r.EndTime.Sub(r.StartTime)
}

// Errors returns the error-level events.
func (r *BatchResult) Errors() []Event {
	return r.filter(LevelError)
}

// Warnings returns the warn-level events.
func (r *BatchResult) Warnings() []Event {
	return r.filter(LevelWarn)
}

func (r *BatchResult) filter(level Level) []Event {
	var out []Event

	for _, event := range r.Events {
		if event.Level == level {
			out = append(out, event)
		}
	}

	return out
}

// Fold drains seq into a new BatchResult.
func Fold(seq iter.Seq[Event]) BatchResult {
	var result BatchResult

	for event := range seq {
		result.Add(event)
	}

	return result
}
