package tui

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/uptask/internal/events"
	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/policy"
)

// ============================================================================
// Messages
// ============================================================================

type projectLoadedMsg struct {
	project models.Project
	user    models.User
	err     error
}

type statusChangedMsg struct {
	task models.Task
	from models.TaskStatus
	err  error
}

type cacheEventMsg struct {
	event events.Event
}

// ============================================================================
// Commands
// ============================================================================

func (m Model) load() tea.Cmd {
	ctx, a, id := m.ctx, m.app, m.projectID
	return func() tea.Msg {
		user, err := a.AuthService.CurrentUser(ctx)
		if err != nil {
			return projectLoadedMsg{err: err}
		}
		project, err := a.ProjectService.GetProject(ctx, id)
		return projectLoadedMsg{project: project, user: user, err: err}
	}
}

// waitForEvent blocks on the next cache event. It returns nil once the
// subscription is closed, which ends the listening loop.
func (m Model) waitForEvent() tea.Cmd {
	ch, ctx := m.events, m.ctx
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			return cacheEventMsg{event: ev}
		case <-ctx.Done():
			return nil
		}
	}
}

func (m Model) setStatus(t models.TaskSummary, to models.TaskStatus) tea.Cmd {
	ctx, svc := m.ctx, m.app.TaskService
	task := models.Task{ID: t.ID, Name: t.Name, ProjectID: m.projectID, Status: t.Status}
	return func() tea.Msg {
		updated, err := svc.SetStatus(ctx, task, to)
		return statusChangedMsg{task: updated, from: task.Status, err: err}
	}
}

// ============================================================================
// Update
// ============================================================================

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)

	case projectLoadedMsg:
		if msg.err != nil {
			m.notice = notice{level: levelError, message: errorMessage(msg.err)}
			return m, nil
		}
		m.user = msg.user
		m.setProject(msg.project)
		return m, nil

	case statusChangedMsg:
		m.inFlight = false
		if msg.err != nil {
			m.notice = notice{level: levelError, message: errorMessage(msg.err)}
			return m, nil
		}
		m.moveLocal(msg.task.ID, msg.task.Status)
		m.notice = notice{message: fmt.Sprintf("%s: %s → %s", msg.task.Name, msg.from.Label(), msg.task.Status.Label())}
		return m, nil

	case cacheEventMsg:
		return m, tea.Batch(m.handleEvent(msg.event), m.waitForEvent())
	}

	return m, nil
}

// handleEvent refetches the board when the project entry is invalidated,
// removed or the whole cache is cleared. Updates are the result of our own
// fetches and are ignored.
func (m Model) handleEvent(ev events.Event) tea.Cmd {
	switch ev.Type {
	case events.EventCleared:
		return m.load()
	case events.EventInvalidated:
		if ev.Key == m.projectKey() {
			return m.load()
		}
	case events.EventRemoved:
		if ev.Key == m.projectKey() {
			return m.load()
		}
	}
	return nil
}

func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	k := m.keys

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Help):
		m.showHelp = !m.showHelp
		return m, nil
	case key.Matches(msg, k.Refresh):
		m.notice = notice{message: "Refreshing"}
		return m, m.load()
	}

	if !m.loaded {
		return m, nil
	}

	switch {
	case key.Matches(msg, k.PrevColumn):
		if m.col > 0 {
			m.col--
			m.clampRow()
		}
	case key.Matches(msg, k.NextColumn):
		if m.col < len(m.columns)-1 {
			m.col++
			m.clampRow()
		}
	case key.Matches(msg, k.PrevTask):
		if m.row > 0 {
			m.row--
		}
	case key.Matches(msg, k.NextTask):
		if m.row < len(m.columns[m.col])-1 {
			m.row++
		}
	case key.Matches(msg, k.MoveTaskLeft):
		return m.move(models.TaskStatus.Prev)
	case key.Matches(msg, k.MoveTaskRight):
		return m.move(models.TaskStatus.Next)
	}
	return m, nil
}

// move sends the selected task one status along. Only one change is in
// flight at a time so the selection cannot race the server.
func (m Model) move(step func(models.TaskStatus) (models.TaskStatus, bool)) (tea.Model, tea.Cmd) {
	task, ok := m.selected()
	if !ok {
		return m, nil
	}
	if m.inFlight {
		m.notice = notice{level: levelWarning, message: "Waiting for the last change to finish"}
		return m, nil
	}
	if !policy.CanChangeStatus(m.project, m.user) {
		m.notice = notice{level: levelError, message: "Only the manager and team members can change status"}
		return m, nil
	}

	to, ok := step(task.Status)
	if !ok {
		m.notice = notice{level: levelWarning, message: fmt.Sprintf("%s is already %s", task.Name, task.Status.Label())}
		return m, nil
	}

	m.inFlight = true
	m.notice = notice{message: fmt.Sprintf("Moving %s to %s", task.Name, to.Label())}
	return m, m.setStatus(task, to)
}
