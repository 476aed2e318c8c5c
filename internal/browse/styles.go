package browse

import "github.com/charmbracelet/lipgloss"

// Color Palette
var (
	impactWhite = lipgloss.Color("#F9FAFB")
	strokeBlack = lipgloss.Color("#111827")
	memeYellow  = lipgloss.Color("#FDE68A")
	mutedGray   = lipgloss.Color("#6B7280")
	alertRed    = lipgloss.Color("#F87171")
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(memeYellow).
			Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(strokeBlack).
			Background(memeYellow).
			Bold(true).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	errorStyle = lipgloss.NewStyle().
			Foreground(alertRed)

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedGray).
			Foreground(impactWhite)

	selectedCellStyle = cellStyle.
				BorderForeground(memeYellow)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(memeYellow).
			Padding(1, 2)

	captionStyle = lipgloss.NewStyle().
			Foreground(impactWhite).
			Bold(true)
)
