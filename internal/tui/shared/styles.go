package shared

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joe/docket/internal/events"
)

// Exported constants organized by category for clarity.
const (
	// DefaultPadding is the default padding for UI elements
	DefaultPadding = 2

	// LogLines is how many log lines the view keeps on screen
	LogLines = 18

	// KeyCtrlC is the key binding for quitting
	KeyCtrlC = "ctrl+c"
	// KeyFilter cycles the log level filter
	KeyFilter = "f"
)

func AccentColor() lipgloss.Color { return lipgloss.Color(accentColorCode) }

// BoxStyle returns the style for boxes with padding
func BoxStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor()).
		Padding(0, 1)
}

func DimColor() lipgloss.Color { return lipgloss.Color(dimColorCode) }

// DimStyle returns the style for dimmed text
func DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(DimColor())
}

func ErrorColor() lipgloss.Color { return lipgloss.Color(errorColorCode) }

// ErrorStyle returns the style for error messages
func ErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(ErrorColor()).
		Bold(true)
}

func InfoColor() lipgloss.Color { return lipgloss.Color(infoColorCode) }

// LabelStyle returns the style for labels
func LabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(InfoColor()).
		Bold(true)
}

// LevelColor returns the log color of level.
func LevelColor(level events.Level) lipgloss.Color {
	switch level {
	case events.LevelOK:
		return SuccessColor()
	case events.LevelWarn:
		return WarningColor()
	case events.LevelError:
		return ErrorColor()
	default:
		return InfoColor()
	}
}

// LevelStyle returns the style of a log line of level.
func LevelStyle(level events.Level) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(LevelColor(level))
	if level == events.LevelError {
		style = style.Bold(true)
	}

	return style
}

func PrimaryColor() lipgloss.Color { return lipgloss.Color(primaryColorCode) }

// RenderBox renders content in a box with consistent styling
func RenderBox(content string) string {
	return BoxStyle().Render(content)
}

// RenderDim renders dimmed text with consistent styling
func RenderDim(text string) string {
	return DimStyle().Render(text)
}

// RenderError renders an error message with consistent styling
func RenderError(text string) string {
	return ErrorStyle().Render(text)
}

// RenderEvent renders event as a colored log line.
func RenderEvent(event events.Event) string {
	return LevelStyle(event.Level).Render(event.String())
}

// RenderLabel renders a label with consistent styling
func RenderLabel(text string) string {
	return LabelStyle().Render(text)
}

// RenderTitle renders a title with consistent styling
func RenderTitle(text string) string {
	return TitleStyle().Render(text)
}

func SuccessColor() lipgloss.Color { return lipgloss.Color(successColorCode) }

// TitleStyle returns the style for titles
func TitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor()).
		MarginBottom(1)
}

func WarningColor() lipgloss.Color { return lipgloss.Color(warningColorCode) }

// unexported constants.
const (
	accentColorCode  = "62"  // Blue
	dimColorCode     = "240" // Dark gray
	errorColorCode   = "196" // Red
	infoColorCode    = "86"  // Cyan
	primaryColorCode = "205" // Pink/purple
	successColorCode = "42"  // Green
	warningColorCode = "214" // Amber
)
