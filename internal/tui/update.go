package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/docket/internal/events"
	"github.com/joe/docket/internal/tui/shared"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil

	case shared.EventMsg:
		// Events still buffered after the batch returned are already in the result.
		if m.done {
			return m, nil
		}

		m.append(msg.Event)

		return m, m.bridge.ListenCmd()

	case shared.BatchDoneMsg:
		m.done = true
		m.result = msg.Result
		m.err = msg.Err
		m.log = msg.Result.Events
		m.warnings = msg.Result.WarnCount
		m.errs = msg.Result.ErrorCount

		if m.cancelling {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case spinner.TickMsg:
		if m.done {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m *Model) append(event events.Event) {
	m.log = append(m.log, event)

	switch event.Level {
	case events.LevelWarn:
		m.warnings++
	case events.LevelError:
		m.errs++
	case events.LevelOK, events.LevelInfo:
	}
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case shared.KeyCtrlC:
		// A second ctrl+c, or a batch that cannot be cancelled, leaves at once.
		if m.done || m.cancelling || m.opts.Cancel == nil {
			m.quitting = true

			return m, tea.Quit
		}

		m.cancelling = true
		m.opts.Cancel()

		return m, nil

	case shared.KeyFilter:
		m.filter = m.filter.Next()

		return m, nil

	case "q", "enter", "esc":
		// Only ctrl+c leaves while the batch runs.
		if m.done {
			m.quitting = true

			return m, tea.Quit
		}
	}

	return m, nil
}
