package shared

import "github.com/joe/docket/internal/events"

// BatchDoneMsg is sent when the batch returns. Result holds every event, so
// the view can replace what the bridge streamed with the complete log.
type BatchDoneMsg struct {
	Result events.BatchResult
	Err    error
}
