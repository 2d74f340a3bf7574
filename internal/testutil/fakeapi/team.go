package fakeapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/uptask/internal/models"
)

func member(a *account) models.TeamMember {
	return models.TeamMember{ID: a.ID, Name: a.Name, Email: a.Email}
}

func (s *Server) findMember(c *gin.Context) {
	var form models.EmailForm
	_ = c.ShouldBindJSON(&form)

	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.accountByEmail(form.Email)
	if a == nil {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	c.JSON(http.StatusOK, member(a))
}

func (s *Server) listTeam(c *gin.Context) {
	p := c.MustGet("project").(*project)

	s.mu.Lock()
	defer s.mu.Unlock()
	team := []models.TeamMember{}
	for _, id := range p.team {
		if a, ok := s.accounts[id]; ok {
			team = append(team, member(a))
		}
	}
	c.JSON(http.StatusOK, team)
}

func (s *Server) addMember(c *gin.Context) {
	var body struct {
		ID string `json:"id"`
	}
	_ = c.ShouldBindJSON(&body)
	p := c.MustGet("project").(*project)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[body.ID]; !ok {
		fail(c, http.StatusNotFound, "User not found")
		return
	}
	if body.ID == p.manager || contains(p.team, body.ID) {
		fail(c, http.StatusConflict, "User is already a member of this project")
		return
	}
	p.team = append(p.team, body.ID)
	c.JSON(http.StatusOK, "User added to the project")
}

func (s *Server) removeMember(c *gin.Context) {
	p := c.MustGet("project").(*project)
	userID := c.Param("userId")

	s.mu.Lock()
	defer s.mu.Unlock()
	if !contains(p.team, userID) {
		fail(c, http.StatusNotFound, "User is not a member of this project")
		return
	}
	p.team = without(p.team, userID)
	c.JSON(http.StatusOK, "User removed from the project")
}
