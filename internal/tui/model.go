// Package tui is the interactive board: one column per workflow status,
// kept current by following the query cache's change events.
package tui

import (
	"context"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/uptask/internal/app"
	"github.com/thenoetrevino/uptask/internal/events"
	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/query"
)

const eventBuffer = 32

// Model is the board state
type Model struct {
	ctx       context.Context
	app       *app.App
	projectID string

	project models.Project
	user    models.User
	columns [][]models.TaskSummary
	loaded  bool

	// selection
	col int
	row int

	width  int
	height int

	keys     keyMap
	help     help.Model
	showHelp bool
	styles   styles

	notice   notice
	inFlight bool

	events      <-chan events.Event
	unsubscribe func()
}

// New builds a board for projectID. The model subscribes to the App's bus
// immediately; call Close once the program has exited.
func New(ctx context.Context, a *app.App, projectID string) Model {
	ch, cancel := a.Bus.Subscribe(eventBuffer)
	return Model{
		ctx:         ctx,
		app:         a,
		projectID:   projectID,
		columns:     make([][]models.TaskSummary, len(models.AllStatuses())),
		keys:        newKeyMap(a.Config.KeyMappings),
		help:        help.New(),
		styles:      newStyles(a.Config.Theme),
		events:      ch,
		unsubscribe: cancel,
	}
}

// Close stops following cache events
func (m Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// Init loads the project and starts listening for cache events
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.load(), m.waitForEvent())
}

func (m Model) projectKey() string {
	return query.ProjectKey(m.projectID).String()
}

// setProject regroups the project's tasks into columns and clamps the
// selection so it still points at a task
func (m *Model) setProject(p models.Project) {
	m.project = p
	grouped := p.TasksByStatus()
	for i, status := range models.AllStatuses() {
		m.columns[i] = grouped[status]
	}
	m.loaded = true
	m.clampRow()
}

func (m *Model) clampRow() {
	n := len(m.columns[m.col])
	if m.row >= n {
		m.row = n - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

// selected returns the highlighted task, if the current column has any
func (m Model) selected() (models.TaskSummary, bool) {
	tasks := m.columns[m.col]
	if m.row < 0 || m.row >= len(tasks) {
		return models.TaskSummary{}, false
	}
	return tasks[m.row], true
}

func (m Model) status() models.TaskStatus {
	return models.AllStatuses()[m.col]
}

// moveLocal moves a task between columns without waiting for a refetch.
// The selection follows the task.
func (m *Model) moveLocal(taskID string, to models.TaskStatus) {
	var moved models.TaskSummary
	found := false
	for i, tasks := range m.columns {
		for j, t := range tasks {
			if t.ID == taskID {
				moved = t
				m.columns[i] = append(tasks[:j:j], tasks[j+1:]...)
				found = true
				break
			}
		}
		if found {
			break
		}
	}
	if !found {
		return
	}

	moved.Status = to
	dst := to.Index()
	m.columns[dst] = append(m.columns[dst], moved)
	m.col = dst
	m.row = len(m.columns[dst]) - 1
}
