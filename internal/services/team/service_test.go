package team

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/uptask/internal/api"
	"github.com/thenoetrevino/uptask/internal/models"
	"github.com/thenoetrevino/uptask/internal/query"
	"github.com/thenoetrevino/uptask/internal/testutil"
	"github.com/thenoetrevino/uptask/internal/testutil/fakeapi"
)

func TestMembership(t *testing.T) {
	srv := fakeapi.New(t)
	manager := testutil.NewSession(t, srv, "manager")
	bob := srv.CreateUser("Bob", "bob@example.com", "secret123")
	project := manager.CreateTestProject(t, "Website")
	cache := query.New()
	svc := NewService(manager.Client, cache)
	ctx := context.Background()

	members, err := svc.ListMembers(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, members)

	found, err := svc.FindByEmail(ctx, project.ID, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, found.ID)

	_, err = svc.AddMember(ctx, project.ID, found.ID)
	require.NoError(t, err)

	entry, _ := cache.Peek(query.ProjectTeamKey(project.ID))
	assert.True(t, entry.Stale)

	members, err = svc.ListMembers(ctx, project.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Bob", members[0].Name)

	_, err = svc.AddMember(ctx, project.ID, found.ID)
	assert.Equal(t, http.StatusConflict, api.StatusCode(err))

	_, err = svc.RemoveMember(ctx, project.ID, bob.ID)
	require.NoError(t, err)

	members, err = svc.ListMembers(ctx, project.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestFindByEmail(t *testing.T) {
	srv := fakeapi.New(t)
	manager := testutil.NewSession(t, srv, "manager")
	project := manager.CreateTestProject(t, "Website")
	svc := NewService(manager.Client, query.New())
	ctx := context.Background()

	_, err := svc.FindByEmail(ctx, project.ID, "not-an-email")
	assert.ErrorIs(t, err, models.ErrInvalidForm)

	_, err = svc.FindByEmail(ctx, project.ID, "nobody@example.com")
	assert.True(t, api.IsNotFound(err))
}
