package tui

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/uptask/internal/config"
	"github.com/thenoetrevino/uptask/internal/models"
)

// minColumnWidth keeps task names readable on narrow terminals
const minColumnWidth = 18

type styles struct {
	theme config.Theme

	title     lipgloss.Style
	subtle    lipgloss.Style
	column    lipgloss.Style
	active    lipgloss.Style
	task      lipgloss.Style
	selected  lipgloss.Style
	statusBar lipgloss.Style
	info      lipgloss.Style
	warning   lipgloss.Style
	danger    lipgloss.Style
}

func newStyles(t config.Theme) styles {
	t.ApplyDefaults()
	accent := lipgloss.Color(t.Accent)
	subtle := lipgloss.Color(t.Subtle)

	return styles{
		theme: t,

		title:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		subtle: lipgloss.NewStyle().Foreground(subtle),
		column: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(subtle).
			Padding(0, 1),
		active: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1),
		task: lipgloss.NewStyle().Foreground(lipgloss.Color(t.Normal)),
		selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#1C1C1C")).
			Background(accent),
		statusBar: lipgloss.NewStyle().Foreground(subtle),
		info:      lipgloss.NewStyle().Foreground(accent),
		warning:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.OnHold)),
		danger:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Error)),
	}
}

func (s styles) header(status models.TaskStatus) lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1C1C1C")).
		Background(lipgloss.Color(s.theme.StatusColor(status))).
		Padding(0, 1)
}

func (s styles) notice(n notice) string {
	text := n.level.icon() + " " + n.message
	switch n.level {
	case levelWarning:
		return s.warning.Render(text)
	case levelError:
		return s.danger.Render(text)
	}
	return s.info.Render(text)
}
