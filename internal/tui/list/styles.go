package listview

import "github.com/charmbracelet/lipgloss"

// Colors used by the list host.
//
//nolint:gochecknoglobals // Shared style palette.
var (
	ColorAccent = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	ColorMuted  = lipgloss.AdaptiveColor{Light: "#8A8A8A", Dark: "#6C6C6C"}
	ColorStripe = lipgloss.AdaptiveColor{Light: "#F2F2F2", Dark: "#262626"}
)

// Styles used by the list host and DefaultRender.
//
//nolint:gochecknoglobals // Package-level styles avoid per-frame allocations.
var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	StatusKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	ItemStyle = lipgloss.NewStyle()

	StripeStyle = lipgloss.NewStyle().
			Background(ColorStripe)

	IndexStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
