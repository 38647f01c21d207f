package styles

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Symbols - Unicode with ASCII fallbacks
const (
	SymbolSuccess = "✓"
	SymbolWarning = "⚠"
)

var noColorOverride bool

// SetNoColor forces colors off regardless of environment.
func SetNoColor(v bool) {
	noColorOverride = v
}

// NoColor checks if colors should be disabled
func NoColor() bool {
	return noColorOverride || os.Getenv("NO_COLOR") != "" || os.Getenv("SHEETSCOUT_NO_COLOR") != ""
}

// Base text styles
var (
	Bold = lipgloss.NewStyle().Bold(true)
	Dim  = lipgloss.NewStyle().Foreground(Muted)
)

// Semantic styles - use these instead of raw colors
var (
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)

	// Interactive TUI
	HeaderStyle      = lipgloss.NewStyle().Bold(true).Foreground(Info)
	SelectedRowStyle = lipgloss.NewStyle().
				Background(BgHighlight).
				Foreground(TextPrimary)
	SelectedCellStyle = lipgloss.NewStyle().
				Background(Accent).
				Foreground(lipgloss.Color("#000000"))
	ZebraStyle = lipgloss.NewStyle().Background(BgZebra)

	// Help bar
	HelpKey   = lipgloss.NewStyle().Foreground(Accent)
	HelpValue = lipgloss.NewStyle().Foreground(Muted)
)

// render applies a style if colors are enabled
func render(s lipgloss.Style, text string) string {
	if NoColor() {
		return text
	}
	return s.Render(text)
}

// SuccessMsg formats a success message with checkmark
func SuccessMsg(msg string) string {
	symbol := SymbolSuccess
	if NoColor() {
		symbol = "+"
	}
	return fmt.Sprintf("%s %s", render(SuccessStyle, symbol), msg)
}

// ErrorMsg formats an error message
func ErrorMsg(title string) string {
	return render(ErrorStyle, "Error: "+title)
}

// WarningMsg formats a warning message
func WarningMsg(msg string) string {
	symbol := SymbolWarning
	if NoColor() {
		symbol = "!"
	}
	return fmt.Sprintf("%s %s", render(WarningStyle, symbol), msg)
}

// InfoMsg formats an info message
func InfoMsg(msg string) string {
	return render(InfoStyle, msg)
}

// MutedMsg formats muted/secondary text
func MutedMsg(msg string) string {
	return render(MutedStyle, msg)
}

// HelpLine formats a help line (key description)
func HelpLine(key, description string) string {
	return fmt.Sprintf("  %s %s", render(HelpKey, key), render(MutedStyle, description))
}

// Simple string coloring
func Mute(s string) string      { return render(MutedStyle, s) }
func Cyan(s string) string      { return render(InfoStyle, s) }
func ErrorText(s string) string { return render(ErrorStyle, s) }
