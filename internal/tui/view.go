package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/joe/docket/internal/events"
	"github.com/joe/docket/internal/tui/shared"
)

const minContentWidth = 40

// View renders the TUI
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var builder strings.Builder

	builder.WriteString(shared.RenderTitle(m.opts.Title))
	builder.WriteString("\n")

	if m.opts.Subtitle != "" {
		builder.WriteString(shared.RenderDim(m.opts.Subtitle))
		builder.WriteString("\n\n")
	}

	builder.WriteString(m.renderStatus())
	builder.WriteString("\n\n")

	title := fmt.Sprintf("Log (filtro: %s)", m.filter)
	builder.WriteString(shared.RenderBox(shared.RenderActivityLog(title, m.log, m.filter, shared.LogLines)))
	builder.WriteString("\n")

	if m.errs > 0 {
		context := shared.ContextInProgress
		if m.done {
			context = shared.ContextComplete
		}

		builder.WriteString("\n")
		builder.WriteString(shared.RenderErrorList(m.errorEvents(), context, m.contentWidth()))
	}

	builder.WriteString("\n")
	builder.WriteString(shared.RenderDim(m.help()))

	return builder.String()
}

func (m Model) renderStatus() string {
	left := m.spinner.View() + " Executando…"
	if m.cancelling {
		left = m.spinner.View() + " Interrompendo… aguardando a operação atual"
	}

	if m.done {
		outcome := m.result.Outcome()
		msg, level := shared.Toast(outcome, m.opts.Success)
		left = shared.LevelStyle(level).Render(symbolFor(level) + " " + msg)

		if m.result.Duration() > 0 {
			left += shared.RenderDim(" (" + shared.FormatDuration(m.result.Duration()) + ")")
		}
	}

	right := lipgloss.NewStyle().Bold(true).Render(shared.Badge(m.warnings, m.errs)) +
		"  " + shared.RenderDim(shared.Counters(m.warnings, m.errs))

	gap := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 { //nolint:mnd // minimum spacing between status and badge
		gap = 2
	}

	return left + strings.Repeat(" ", gap) + right
}

func (m Model) help() string {
	if m.done {
		return "f: filtrar log  •  q/enter: sair"
	}

	if m.cancelling {
		return "ctrl+c: forçar saída"
	}

	return "f: filtrar log  •  ctrl+c: interromper"
}

func (m Model) errorEvents() []events.Event {
	var out []events.Event

	for _, event := range m.log {
		if event.Level == events.LevelError {
			out = append(out, event)
		}
	}

	return out
}

func (m Model) contentWidth() int {
	if m.width < minContentWidth {
		return minContentWidth * 2 //nolint:mnd // default width before the first WindowSizeMsg
	}

	return m.width - shared.DefaultPadding*2
}

func symbolFor(level events.Level) string {
	switch level {
	case events.LevelError:
		return shared.ErrorSymbol()
	case events.LevelWarn:
		return shared.WarningSymbol()
	default:
		return shared.SuccessSymbol()
	}
}
