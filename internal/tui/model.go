// Package tui is the interactive terminal view of a docket batch: a spinner
// while the batch runs, the colored log streamed from the engine, and a status
// badge with the closing message once it returns.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/joe/docket/internal/events"
	"github.com/joe/docket/internal/tui/shared"
)

// ErrInterrupted is returned when ctrl+c ended the view, whether the batch
// stopped early or was left running.
var ErrInterrupted = errors.New("interrupted before the batch finished")

// Runner runs one batch, sending every event to emitter as it happens.
type Runner func(emitter events.Emitter) (events.BatchResult, error)

// Options holds what the view shows around the log.
type Options struct {
	Title    string
	Subtitle string

	// Success is the closing message of a run without warnings or errors.
	Success string

	// Cancel asks the running batch to stop after the unit in progress.
	// Without it ctrl+c leaves the view at once.
	Cancel func()
}

// Model represents the TUI state
type Model struct {
	opts   Options
	run    Runner
	bridge *shared.EventBridge

	spinner  spinner.Model
	log      []events.Event
	warnings int
	errs     int
	filter   shared.LevelFilter

	done       bool
	cancelling bool
	result     events.BatchResult
	err      error
	width    int
	height   int
	quitting bool
}

// NewModel creates a model that starts run when the program starts.
func NewModel(opts Options, run Runner) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(shared.PrimaryColor())

	return Model{
		opts:    opts,
		run:     run,
		bridge:  shared.NewEventBridge(),
		spinner: s,
		filter:  shared.FilterAll,
	}
}

// Init starts the spinner, the batch and the event listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.bridge.ListenCmd(),
		m.startBatch(),
	)
}

// Done reports whether the batch has returned.
func (m Model) Done() bool {
	return m.done
}

// Cancelling reports whether ctrl+c was pressed and the view waits for the
// batch to stop.
func (m Model) Cancelling() bool {
	return m.cancelling
}

// Err returns the error the batch returned, if any.
func (m Model) Err() error {
	return m.err
}

// Filter returns the current log level filter.
func (m Model) Filter() shared.LevelFilter {
	return m.filter
}

// Log returns the events received so far.
func (m Model) Log() []events.Event {
	return m.log
}

// Result returns the batch result once Done.
func (m Model) Result() events.BatchResult {
	return m.result
}

// startBatch runs the batch in the background and reports when it returns.
func (m Model) startBatch() tea.Cmd {
	run, bridge := m.run, m.bridge

	return func() tea.Msg {
		result, err := run(bridge)
		bridge.Close()

		return shared.BatchDoneMsg{Result: result, Err: err}
	}
}
