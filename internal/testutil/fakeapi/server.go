// Package fakeapi is an in-memory UpTask backend for tests. It speaks the
// same REST contract as the real server: JWT bearer auth, JSON error bodies
// carrying an "error" field, and activity log entries appended on every
// status change.
package fakeapi

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/thenoetrevino/uptask/internal/models"
)

const tokenTTL = time.Hour

type claims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

type account struct {
	models.User
	password  string
	confirmed bool
}

type project struct {
	form    models.ProjectForm
	id      string
	manager string
	tasks   []string
	team    []string
}

// Server is a running fake backend
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	secret   []byte
	nextID   int
	accounts map[string]*account // by id
	projects map[string]*project
	tasks    map[string]*models.Task
	codes    map[string]string // six digit code -> account id
	requests map[string]int    // "METHOD /path" -> count
	now      func() time.Time
}

// New starts a fake backend that is closed when the test ends
func New(tb testing.TB) *Server {
	tb.Helper()
	gin.SetMode(gin.TestMode)

	s := &Server{
		secret:   []byte("fakeapi-secret"),
		accounts: make(map[string]*account),
		projects: make(map[string]*project),
		tasks:    make(map[string]*models.Task),
		codes:    make(map[string]string),
		requests: make(map[string]int),
		now:      func() time.Time { return time.Now().UTC() },
	}
	s.Server = httptest.NewServer(s.routes())
	tb.Cleanup(s.Close)
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.countRequests())

	auth := r.Group("/auth")
	auth.POST("/create-account", s.createAccount)
	auth.POST("/confirm-account", s.confirmAccount)
	auth.POST("/request-code", s.requestCode)
	auth.POST("/login", s.login)
	auth.POST("/forgot-password", s.forgotPassword)
	auth.POST("/validate-token", s.validateToken)
	auth.POST("/update-password/:token", s.updatePasswordWithToken)

	private := auth.Group("", s.authenticate())
	private.GET("/user", s.currentUser)
	private.POST("/check-password", s.checkPassword)
	private.PUT("/profile", s.updateProfile)
	private.POST("/update-password", s.changePassword)

	projects := r.Group("/projects", s.authenticate())
	projects.GET("", s.listProjects)
	projects.POST("", s.createProject)

	one := projects.Group("/:projectId", s.loadProject())
	one.GET("", s.getProject)
	one.PUT("", s.managerOnly(), s.updateProject)
	one.DELETE("", s.managerOnly(), s.deleteProject)

	one.POST("/tasks", s.managerOnly(), s.createTask)
	one.GET("/tasks/:taskId", s.loadTask(), s.getTask)
	one.PUT("/tasks/:taskId", s.managerOnly(), s.loadTask(), s.updateTask)
	one.DELETE("/tasks/:taskId", s.managerOnly(), s.loadTask(), s.deleteTask)
	one.POST("/tasks/:taskId/status", s.loadTask(), s.updateStatus)
	one.POST("/tasks/:taskId/notes", s.loadTask(), s.createNote)
	one.DELETE("/tasks/:taskId/notes/:noteId", s.loadTask(), s.deleteNote)

	one.POST("/team/find", s.findMember)
	one.GET("/team", s.listTeam)
	one.POST("/team", s.managerOnly(), s.addMember)
	one.DELETE("/team/:userId", s.managerOnly(), s.removeMember)

	return r
}

func (s *Server) countRequests() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.mu.Lock()
		s.requests[c.Request.Method+" "+c.Request.URL.Path]++
		s.mu.Unlock()
		c.Next()
	}
}

// Requests returns how many times method and path were called
func (s *Server) Requests(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests[method+" "+path]
}

// ============================================================================
// Seeding
// ============================================================================

// CreateUser registers a confirmed account
func (s *Server) CreateUser(name, email, password string) models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	a := s.addAccount(name, email, password)
	a.confirmed = true
	return a.User
}

// TokenFor issues a valid session token for a user id
func (s *Server) TokenFor(userID string) string {
	return s.issue(userID, s.now().Add(tokenTTL))
}

// ExpiredTokenFor issues a token whose exp claim is in the past
func (s *Server) ExpiredTokenFor(userID string) string {
	return s.issue(userID, s.now().Add(-time.Minute))
}

// Code returns the last confirmation or reset code issued for email
func (s *Server) Code(email string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for code, id := range s.codes {
		if a, ok := s.accounts[id]; ok && a.Email == email {
			return code
		}
	}
	return ""
}

// Task returns a copy of the stored task
func (s *Server) Task(id string) (models.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	if !ok {
		return models.Task{}, false
	}
	return *t, true
}

func (s *Server) issue(userID string, exp time.Time) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(s.now()),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		panic(fmt.Sprintf("fakeapi: sign token: %v", err))
	}
	return signed
}

// id mimics a Mongo ObjectId; must be called with s.mu held
func (s *Server) id() string {
	s.nextID++
	return fmt.Sprintf("%024x", s.nextID)
}

// addAccount must be called with s.mu held
func (s *Server) addAccount(name, email, password string) *account {
	a := &account{
		User:     models.User{ID: s.id(), Name: name, Email: email},
		password: password,
	}
	s.accounts[a.ID] = a
	return a
}

// issueCode must be called with s.mu held
func (s *Server) issueCode(accountID string) string {
	for code, id := range s.codes {
		if id == accountID {
			delete(s.codes, code)
		}
	}
	code := fmt.Sprintf("%06d", 100000+s.nextID)
	s.nextID++
	s.codes[code] = accountID
	return code
}

func (s *Server) accountByEmail(email string) *account {
	for _, a := range s.accounts {
		if a.Email == email {
			return a
		}
	}
	return nil
}

// ============================================================================
// Middleware
// ============================================================================

func fail(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func (s *Server) authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			fail(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		cl := &claims{}
		token, err := jwt.ParseWithClaims(strings.TrimSpace(parts[1]), cl, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return s.secret, nil
		})
		if err != nil || !token.Valid {
			fail(c, http.StatusUnauthorized, "Invalid token")
			return
		}

		s.mu.Lock()
		a, ok := s.accounts[cl.ID]
		s.mu.Unlock()
		if !ok {
			fail(c, http.StatusUnauthorized, "Invalid token")
			return
		}
		c.Set("user", a.User)
		c.Next()
	}
}

func currentUser(c *gin.Context) models.User {
	return c.MustGet("user").(models.User)
}

func (s *Server) loadProject() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		s.mu.Lock()
		p, ok := s.projects[c.Param("projectId")]
		allowed := ok && (p.manager == user.ID || contains(p.team, user.ID))
		s.mu.Unlock()
		if !ok {
			fail(c, http.StatusNotFound, "Project not found")
			return
		}
		if !allowed {
			fail(c, http.StatusForbidden, "Invalid action")
			return
		}
		c.Set("project", p)
		c.Next()
	}
}

func (s *Server) managerOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.MustGet("project").(*project)
		if p.manager != currentUser(c).ID {
			fail(c, http.StatusForbidden, "Invalid action")
			return
		}
		c.Next()
	}
}

func (s *Server) loadTask() gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.MustGet("project").(*project)
		s.mu.Lock()
		t, ok := s.tasks[c.Param("taskId")]
		s.mu.Unlock()
		if !ok || t.ProjectID != p.id {
			fail(c, http.StatusNotFound, "Task not found")
			return
		}
		c.Set("task", t)
		c.Next()
	}
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func without(ids []string, id string) []string {
	out := ids[:0:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
