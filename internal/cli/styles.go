package cli

import (
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/uptask/internal/config"
	"github.com/thenoetrevino/uptask/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 80

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Status:", "Client:"
	ValueStyle    lipgloss.Style // For field values
	SectionStyle  lipgloss.Style // For section headers like "Description", "Notes"

	theme = config.ThemePreset("default")
)

func init() {
	InitStyles(theme)
}

// InitStyles initializes all CLI styles with the given theme
func InitStyles(t config.Theme) {
	t.ApplyDefaults()
	theme = t

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.Accent)).
		Padding(1, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Accent))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(t.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Normal))

	SectionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.Accent)).
		Bold(true).
		MarginTop(1)
}

// StatusBadge renders a status label on its theme color
func StatusBadge(status models.TaskStatus) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1C1C1C")).
		Background(lipgloss.Color(theme.StatusColor(status))).
		Padding(0, 1).
		Render(status.Label())
}

// Field renders "Label: value"
func Field(label, value string) string {
	return LabelStyle.Render(label+":") + " " + ValueStyle.Render(value)
}

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderMarkdown renders user-written markdown for the terminal. The raw
// text is returned when rendering fails.
func RenderMarkdown(text string, width int) string {
	if strings.TrimSpace(text) == "" {
		return SubtitleStyle.Italic(true).Render("(empty)")
	}
	renderer, err := getRenderer(width)
	if err != nil {
		return text
	}
	rendered, err := renderer.Render(text)
	if err != nil {
		return text
	}
	return strings.Trim(rendered, "\n")
}
