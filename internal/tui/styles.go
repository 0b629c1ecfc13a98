package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	card        lipgloss.Style
	title       lipgloss.Style
	field       lipgloss.Style
	selected    lipgloss.Style
	button      lipgloss.Style
	buttonFocus lipgloss.Style
	label       lipgloss.Style
	labelFocus  lipgloss.Style
	sliderOn    lipgloss.Style
	sliderOff   lipgloss.Style
	noticeOK    lipgloss.Style
	noticeErr   lipgloss.Style
	placeholder lipgloss.Style
}

func newStyles(t Theme) styles {
	accent := colorAccent
	if t.Accent != "" {
		accent = lipgloss.Color(t.Accent)
	}
	border := colorBorder
	if t.Border != "" {
		border = lipgloss.Color(t.Border)
	}

	return styles{
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Foreground(colorText).
			Padding(1, 3),
		title: lipgloss.NewStyle().Foreground(colorText).Bold(true).Underline(true),
		field: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(border).
			Foreground(colorField).
			Padding(0, 1),
		selected: lipgloss.NewStyle().Background(accent).Foreground(colorBg),
		button: lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0).
			Padding(0, 2),
		buttonFocus: lipgloss.NewStyle().
			Foreground(colorBg).
			Background(accent).
			Bold(true).
			Padding(0, 2),
		label:       lipgloss.NewStyle().Foreground(colorMuted),
		labelFocus:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		sliderOn:    lipgloss.NewStyle().Foreground(accent),
		sliderOff:   lipgloss.NewStyle().Foreground(border),
		noticeOK:    lipgloss.NewStyle().Foreground(colorSuccess),
		noticeErr:   lipgloss.NewStyle().Foreground(colorError),
		placeholder: lipgloss.NewStyle().Foreground(colorMuted).Italic(true),
	}
}
