package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/pwgen/internal/generator"
)

const (
	maxCardWidth = 76
	maxSlider    = 24
)

func (a *App) View() string {
	cardW := min(maxCardWidth, max(24, a.width-4))
	// border (2) + horizontal padding (6)
	inner := max(10, cardW-8)

	title := lipgloss.PlaceHorizontal(inner, lipgloss.Center, a.styles.title.Render("Password Generator"))

	rows := []string{
		title,
		"",
		a.renderPasswordRow(inner),
		"",
		a.renderControls(inner),
	}
	if a.notice != "" {
		style := a.styles.noticeOK
		if a.noticeErr {
			style = a.styles.noticeErr
		}
		rows = append(rows, "", style.Render(ansi.Truncate(a.notice, inner, "…")))
	}

	card := a.styles.card.Width(cardW - 2).Render(strings.Join(rows, "\n"))
	help := a.help.View(helpKeys{reg: a.keys})
	page := lipgloss.JoinVertical(lipgloss.Center, card, help)
	return lipgloss.Place(max(1, a.width), max(1, a.height), lipgloss.Center, lipgloss.Center, page)
}

func (a *App) renderPasswordRow(inner int) string {
	button := a.styles.button
	if a.focus == focusCopy {
		button = a.styles.buttonFocus
	}
	copyBtn := button.Render("Copy")

	// field border (2) + padding (2) + gap (1)
	fieldW := max(4, inner-lipgloss.Width(copyBtn)-5)
	field := a.styles.field.Width(fieldW + 2).Render(a.renderPassword(fieldW))

	btnCol := lipgloss.NewStyle().PaddingTop(1).PaddingLeft(1).Render(copyBtn)
	return lipgloss.JoinHorizontal(lipgloss.Top, field, btnCol)
}

// renderPassword highlights the current selection and wraps long passwords
// rather than hiding characters.
func (a *App) renderPassword(width int) string {
	pw := a.widget.Password()
	if pw == "" {
		return a.styles.placeholder.Render("Password")
	}
	sel := a.widget.Selection()
	start, end := min(sel.Start, len(pw)), min(sel.End, len(pw))
	text := pw
	if end > start {
		text = pw[:start] + a.styles.selected.Render(pw[start:end]) + pw[end:]
	}
	return ansi.Hardwrap(text, width, false)
}

func (a *App) renderControls(inner int) string {
	s := a.widget.Settings()

	label := a.styles.label
	if a.focus == focusLength {
		label = a.styles.labelFocus
	}
	slider := renderSlider(s.Length, min(maxSlider, max(4, inner-14)), a.styles.sliderOn, a.styles.sliderOff) + " " + label.Render(fmt.Sprintf("Length: %d", s.Length))

	digits := a.checkbox("Numbers", s.IncludeDigits, a.focus == focusDigits)
	symbols := a.checkbox("Characters", s.IncludeSymbols, a.focus == focusSymbols)

	line := lipgloss.JoinHorizontal(lipgloss.Top, slider, "   ", digits, "   ", symbols)
	if lipgloss.Width(line) <= inner {
		return line
	}
	return lipgloss.JoinVertical(lipgloss.Left, slider, digits, symbols)
}

func (a *App) checkbox(name string, checked, focused bool) string {
	box := "[ ]"
	if checked {
		box = "[x]"
	}
	style := a.styles.label
	if focused {
		style = a.styles.labelFocus
	}
	return style.Render(box + " " + name)
}

func renderSlider(length, width int, on, off lipgloss.Style) string {
	span := generator.MaxLength - generator.MinLength
	filled := (length - generator.MinLength) * width / span
	if length > generator.MinLength && filled == 0 {
		filled = 1
	}
	filled = min(width, max(0, filled))
	return on.Render(strings.Repeat("━", filled)+"●") + off.Render(strings.Repeat("─", width-filled))
}
