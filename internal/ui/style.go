package ui

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles shared by the interactive screens.
type Styles struct {
	Base      lipgloss.Style
	Main      lipgloss.Style
	Secondary lipgloss.Style
	Hint      lipgloss.Style
	Accent    lipgloss.Style
	Focus     lipgloss.Style
	Success   lipgloss.Style
	Danger    lipgloss.Style
	Panel     lipgloss.Style
	Dialog    lipgloss.Style
	Toast     lipgloss.Style
}

// NewStyles builds the styles around an accent colour.
func NewStyles(accent string, dark bool) Styles {
	fg := lipgloss.Color("#1F2937")
	muted := lipgloss.Color("#6B7280")

	if dark {
		fg = lipgloss.Color("#F9FAFB")
		muted = lipgloss.Color("#9CA3AF")
	}

	a := lipgloss.Color(accent)

	return Styles{
		Base:      lipgloss.NewStyle().Padding(1, 2),
		Main:      lipgloss.NewStyle().Bold(true).Foreground(fg),
		Secondary: lipgloss.NewStyle().Foreground(fg),
		Hint:      lipgloss.NewStyle().Foreground(muted),
		Accent:    lipgloss.NewStyle().Bold(true).Foreground(a),
		Focus:     lipgloss.NewStyle().Bold(true).Underline(true).Foreground(a),
		Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")),
		Danger:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		Dialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(a).
			Padding(1, 2),
		Toast: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#111827")).
			Background(a).
			Padding(0, 1),
	}
}
