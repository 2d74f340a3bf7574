package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/uptask/internal/models"
)

// view must be called with s.mu held
func (s *Server) view(p *project) models.Project {
	out := models.Project{
		ID:          p.id,
		ProjectName: p.form.ProjectName,
		ClientName:  p.form.ClientName,
		Description: p.form.Description,
		Manager:     p.manager,
		Tasks:       []models.TaskSummary{},
		Team:        append([]string{}, p.team...),
	}
	for _, id := range p.tasks {
		t := s.tasks[id]
		out.Tasks = append(out.Tasks, models.TaskSummary{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			Status:      t.Status,
		})
	}
	return out
}

func (s *Server) listProjects(c *gin.Context) {
	user := currentUser(c)

	s.mu.Lock()
	defer s.mu.Unlock()
	list := []models.ProjectSummary{}
	for _, p := range s.projects {
		if p.manager != user.ID && !contains(p.team, user.ID) {
			continue
		}
		list = append(list, models.ProjectSummary{
			ID:          p.id,
			ProjectName: p.form.ProjectName,
			ClientName:  p.form.ClientName,
			Description: p.form.Description,
			Manager:     p.manager,
		})
	}
	c.JSON(http.StatusOK, list)
}

func bindProjectForm(c *gin.Context) (models.ProjectForm, bool) {
	var form models.ProjectForm
	if err := c.ShouldBindJSON(&form); err != nil || form.ProjectName == "" || form.ClientName == "" || form.Description == "" {
		fail(c, http.StatusBadRequest, "Project name, client name and description are required")
		return form, false
	}
	return form, true
}

func (s *Server) createProject(c *gin.Context) {
	form, ok := bindProjectForm(c)
	if !ok {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	p := &project{id: s.id(), form: form, manager: currentUser(c).ID, tasks: []string{}, team: []string{}}
	s.projects[p.id] = p
	c.JSON(http.StatusCreated, "Project created")
}

func (s *Server) getProject(c *gin.Context) {
	p := c.MustGet("project").(*project)

	s.mu.Lock()
	defer s.mu.Unlock()
	c.JSON(http.StatusOK, s.view(p))
}

func (s *Server) updateProject(c *gin.Context) {
	form, ok := bindProjectForm(c)
	if !ok {
		return
	}
	p := c.MustGet("project").(*project)

	s.mu.Lock()
	p.form = form
	s.mu.Unlock()
	c.JSON(http.StatusOK, "Project updated")
}

func (s *Server) deleteProject(c *gin.Context) {
	p := c.MustGet("project").(*project)

	s.mu.Lock()
	for _, id := range p.tasks {
		delete(s.tasks, id)
	}
	delete(s.projects, p.id)
	s.mu.Unlock()
	c.JSON(http.StatusOK, "Project deleted")
}
