package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/uptask/internal/api"
	"github.com/thenoetrevino/uptask/internal/credentials"
	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/testutil/fakeapi"
)

// Session is a logged in user of a fake backend
type Session struct {
	User   models.User
	Store  *credentials.MemoryStore
	Client *api.Client
}

// NewSession creates a confirmed user on srv and a client holding its token
func NewSession(t *testing.T, srv *fakeapi.Server, name string) *Session {
	t.Helper()

	user := srv.CreateUser(name, name+"@example.com", "secret123")
	store := credentials.NewMemoryStore()
	if err := store.Set(srv.TokenFor(user.ID)); err != nil {
		t.Fatalf("Failed to store token: %v", err)
	}

	return &Session{
		User:   user,
		Store:  store,
		Client: api.New(srv.URL, store),
	}
}

// CreateTestProject creates a project managed by the session user
func (s *Session) CreateTestProject(t *testing.T, name string) models.Project {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Client.CreateProject(ctx, models.ProjectForm{
		ProjectName: name,
		ClientName:  "ACME",
		Description: "Test project " + name,
	}); err != nil {
		t.Fatalf("Failed to create project: %v", err)
	}

	list, err := s.Client.ListProjects(ctx)
	if err != nil {
		t.Fatalf("Failed to list projects: %v", err)
	}
	for _, p := range list {
		if p.ProjectName == name {
			project, err := s.Client.GetProject(ctx, p.ID)
			if err != nil {
				t.Fatalf("Failed to load project: %v", err)
			}
			return project
		}
	}
	t.Fatalf("Project %q not found after creation", name)
	return models.Project{}
}

// CreateTestTask creates a task in projectID and returns the full task
func (s *Session) CreateTestTask(t *testing.T, projectID, name string) models.Task {
	t.Helper()
	ctx := context.Background()

	if _, err := s.Client.CreateTask(ctx, projectID, models.TaskForm{Name: name, Description: "Description of " + name}); err != nil {
		t.Fatalf("Failed to create task: %v", err)
	}

	project, err := s.Client.GetProject(ctx, projectID)
	if err != nil {
		t.Fatalf("Failed to load project: %v", err)
	}
	for i := len(project.Tasks) - 1; i >= 0; i-- {
		if project.Tasks[i].Name == name {
			task, err := s.Client.GetTask(ctx, projectID, project.Tasks[i].ID)
			if err != nil {
				t.Fatalf("Failed to load task: %v", err)
			}
			return task
		}
	}
	t.Fatalf("Task %q not found after creation", name)
	return models.Task{}
}

// AddMember adds other to a project managed by the session user
func (s *Session) AddMember(t *testing.T, projectID string, other models.User) {
	t.Helper()
	if _, err := s.Client.AddTeamMember(context.Background(), projectID, other.ID); err != nil {
		t.Fatalf("Failed to add member: %v", err)
	}
}
