package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/docket/internal/events"
)

// Run shows the interactive view while run executes and returns its result
// once the user closes the view. ErrInterrupted is returned after ctrl+c.
func Run(opts Options, run Runner, programOpts ...tea.ProgramOption) (events.BatchResult, error) {
	program := tea.NewProgram(NewModel(opts, run), programOpts...)

	final, err := program.Run()
	if err != nil {
		return events.BatchResult{}, fmt.Errorf("failed to run interactive view: %w", err)
	}

	model, ok := final.(Model)
	if !ok || !model.Done() || model.Cancelling() {
		return model.Result(), ErrInterrupted
	}

	return model.Result(), model.Err()
}
