package styles

import "github.com/charmbracelet/lipgloss"

// Color palette. Dark mode optimized, semantic colors.
var (
	// Primary semantic colors
	Accent  = lipgloss.Color("#7C3AED") // violet-500 - highlights, selected cell
	Success = lipgloss.Color("#10B981") // emerald-500 - confirmations
	Warning = lipgloss.Color("#F59E0B") // amber-500 - filter matches
	Error   = lipgloss.Color("#EF4444") // red-500 - errors
	Info    = lipgloss.Color("#3B82F6") // blue-500 - headers, engine names
	Muted   = lipgloss.Color("#6B7280") // gray-500 - secondary text

	// Text colors
	TextPrimary   = lipgloss.Color("#F9FAFB") // gray-50 - main text
	TextSecondary = lipgloss.Color("#9CA3AF") // gray-400 - descriptions

	// Background colors
	BgHighlight = lipgloss.Color("#1F2937") // gray-800 - selected row
	BgZebra     = lipgloss.Color("#111827") // gray-900 - even data rows
)
