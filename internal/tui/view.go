package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/uptask/internal/cli"
	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/policy"
)

// View implements tea.Model
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.render()
	return view
}

func (m Model) render() string {
	if !m.loaded {
		if !m.notice.empty() {
			return m.styles.notice(m.notice)
		}
		return "Loading..."
	}

	sections := []string{m.renderHeader(), m.renderBoard(), m.renderStatusBar()}
	if m.showHelp {
		sections = append(sections, m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		sections = append(sections, m.help.ShortHelpView(m.keys.ShortHelp()))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	role := "member"
	if policy.IsManager(m.project.Manager, m.user.ID) {
		role = "manager"
	}
	return fmt.Sprintf("%s  %s  %s",
		m.styles.title.Render(m.project.ProjectName),
		m.styles.subtle.Render(m.project.ClientName),
		m.styles.subtle.Render(role))
}

func (m Model) columnWidth() int {
	n := len(m.columns)
	// two border cells and two padding cells per column
	w := m.width/n - 4
	return max(w, minColumnWidth)
}

func (m Model) renderBoard() string {
	width := m.columnWidth()
	statuses := models.AllStatuses()

	rendered := make([]string, len(statuses))
	for i, status := range statuses {
		rendered[i] = m.renderColumn(i, status, width)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderColumn(i int, status models.TaskStatus, width int) string {
	tasks := m.columns[i]
	active := i == m.col

	var b strings.Builder
	b.WriteString(m.styles.header(status).Render(fmt.Sprintf("%s (%d)", status.Label(), len(tasks))))
	b.WriteString("\n\n")

	if len(tasks) == 0 {
		b.WriteString(m.styles.subtle.Italic(true).Render("No tasks"))
	}
	for j, t := range tasks {
		name := truncate(t.Name, width)
		if active && j == m.row {
			b.WriteString(m.styles.selected.Render(name))
		} else {
			b.WriteString(m.styles.task.Render(name))
		}
		if j < len(tasks)-1 {
			b.WriteString("\n")
		}
	}

	style := m.styles.column
	if active {
		style = m.styles.active
	}
	return style.Width(width + 2).Render(b.String())
}

// renderStatusBar shows the last notice on the left and cache counters on
// the right
func (m Model) renderStatusBar() string {
	left := ""
	if !m.notice.empty() {
		left = m.styles.notice(m.notice)
	}

	metrics := m.app.Cache.Metrics()
	right := m.styles.statusBar.Render(fmt.Sprintf("cache %d hits / %d misses / %d loads",
		metrics.Hits, metrics.Misses, metrics.Loads))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}

func errorMessage(err error) string {
	return cli.Classify(err).Message
}
