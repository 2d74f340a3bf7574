package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/uptask/internal/models"
)

func bindTaskForm(c *gin.Context) (models.TaskForm, bool) {
	var form models.TaskForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Name == "" || form.Description == "" {
		fail(c, http.StatusBadRequest, "Task name and description are required")
		return form, false
	}
	return form, true
}

func (s *Server) createTask(c *gin.Context) {
	form, ok := bindTaskForm(c)
	if !ok {
		return
	}
	p := c.MustGet("project").(*project)

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	t := &models.Task{
		ID:          s.id(),
		Name:        form.Name,
		Description: form.Description,
		ProjectID:   p.id,
		Status:      models.InitialStatus,
		CompletedBy: []models.ActivityLogEntry{},
		Notes:       []models.Note{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks[t.ID] = t
	p.tasks = append(p.tasks, t.ID)
	c.JSON(http.StatusCreated, "Task created")
}

func (s *Server) getTask(c *gin.Context) {
	t := c.MustGet("task").(*models.Task)

	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, t)
}

func (s *Server) updateTask(c *gin.Context) {
	form, ok := bindTaskForm(c)
	if !ok {
		return
	}
	t := c.MustGet("task").(*models.Task)

	s.mu.Lock()
	t.Name = form.Name
	t.Description = form.Description
	t.UpdatedAt = s.now()
	s.mu.Unlock()
	c.JSON(http.StatusOK, "Task updated")
}

func (s *Server) deleteTask(c *gin.Context) {
	p := c.MustGet("project").(*project)
	t := c.MustGet("task").(*models.Task)

	s.mu.Lock()
	delete(s.tasks, t.ID)
	p.tasks = without(p.tasks, t.ID)
	s.mu.Unlock()
	c.JSON(http.StatusOK, "Task deleted")
}

// updateStatus records every transition, repeated statuses included
func (s *Server) updateStatus(c *gin.Context) {
	var body struct {
		Status models.TaskStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || !body.Status.Valid() {
		fail(c, http.StatusBadRequest, "Invalid status")
		return
	}
	t := c.MustGet("task").(*models.Task)

	s.mu.Lock()
	t.Status = body.Status
	t.CompletedBy = append(t.CompletedBy, models.ActivityLogEntry{
		ID:     s.id(),
		User:   currentUser(c),
		Status: body.Status,
	})
	t.UpdatedAt = s.now()
	s.mu.Unlock()
	c.JSON(http.StatusOK, "Task status updated")
}

func (s *Server) createNote(c *gin.Context) {
	var form models.NoteForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Content == "" {
		fail(c, http.StatusBadRequest, "Note content is required")
		return
	}
	t := c.MustGet("task").(*models.Task)

	s.mu.Lock()
	t.Notes = append(t.Notes, models.Note{
		ID:        s.id(),
		Content:   form.Content,
		CreatedBy: currentUser(c),
		TaskID:    t.ID,
		CreatedAt: s.now(),
	})
	s.mu.Unlock()
	c.JSON(http.StatusCreated, "Note created")
}

func (s *Server) deleteNote(c *gin.Context) {
	t := c.MustGet("task").(*models.Task)
	noteID := c.Param("noteId")

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, n := range t.Notes {
		if n.ID != noteID {
			continue
		}
		if n.CreatedBy.ID != currentUser(c).ID {
			fail(c, http.StatusForbidden, "Invalid action")
			return
		}
		t.Notes = append(t.Notes[:i], t.Notes[i+1:]...)
		c.JSON(http.StatusOK, "Note deleted")
		return
	}
	fail(c, http.StatusNotFound, "Note not found")
}
