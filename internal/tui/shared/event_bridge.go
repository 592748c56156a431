package shared

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/docket/internal/events"
)

const bridgeBuffer = 256

// EventMsg wraps an events.Event for use as a tea.Msg.
type EventMsg struct {
	Event events.Event
}

// EventBridge adapts engine events to bubble tea messages.
// It implements events.Emitter and provides a channel for TUI consumption.
type EventBridge struct {
	mu        sync.Mutex
	eventChan chan tea.Msg
	closed    bool
}

// NewEventBridge creates a new event bridge.
func NewEventBridge() *EventBridge {
	return &EventBridge{
		eventChan: make(chan tea.Msg, bridgeBuffer),
	}
}

// Emit implements events.Emitter.
// The send never blocks: when the buffer is full the event is dropped, and
// the final BatchResult still carries it.
func (b *EventBridge) Emit(event events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	select {
	case b.eventChan <- EventMsg{Event: event}:
	default:
	}
}

// Subscribe returns the event channel for receiving events.
func (b *EventBridge) Subscribe() <-chan tea.Msg {
	return b.eventChan
}

// ListenCmd returns a tea.Cmd that blocks until an event is received.
// Use this in Init() or after processing an event to continue listening.
func (b *EventBridge) ListenCmd() tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-b.eventChan
		if !ok {
			return nil
		}

		return msg
	}
}

// Close closes the event channel. Later Emit calls are ignored.
func (b *EventBridge) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.closed {
		b.closed = true
		close(b.eventChan)
	}
}
