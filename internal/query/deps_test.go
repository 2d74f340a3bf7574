package query

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffects_CoversEveryMutation(t *testing.T) {
	for m := Mutation(0); m < mutationCount; m++ {
		assert.NotPanics(t, func() { Effects(m, Target{ProjectID: "P", TaskID: "T"}) }, m.String())
		assert.NotContains(t, m.String(), "mutation(", "missing name for mutation %d", int(m))
	}

	assert.Panics(t, func() { Effects(mutationCount, Target{}) })
}

func TestEffects_Table(t *testing.T) {
	target := Target{ProjectID: "P1", TaskID: "T1"}

	tests := []struct {
		mutation Mutation
		want     Effect
	}{
		{TransitionStatus, Effect{Invalidate: []Key{TaskKey("T1"), ProjectKey("P1")}}},
		{CreateNote, Effect{Invalidate: []Key{TaskKey("T1")}}},
		{DeleteNote, Effect{Invalidate: []Key{TaskKey("T1")}}},
		{CreateTask, Effect{Invalidate: []Key{ProjectKey("P1")}}},
		{UpdateTask, Effect{Invalidate: []Key{ProjectKey("P1"), TaskKey("T1")}}},
		{DeleteTask, Effect{Invalidate: []Key{ProjectKey("P1")}, Remove: []Key{TaskKey("T1")}}},
		{AddMember, Effect{Invalidate: []Key{ProjectTeamKey("P1")}}},
		{RemoveMember, Effect{Invalidate: []Key{ProjectTeamKey("P1")}}},
		{CreateProject, Effect{Invalidate: []Key{ProjectsKey()}}},
		{UpdateProject, Effect{Invalidate: []Key{ProjectsKey(), EditProjectKey("P1"), ProjectKey("P1")}}},
		{DeleteProject, Effect{
			Invalidate: []Key{ProjectsKey()},
			Remove:     []Key{ProjectKey("P1"), EditProjectKey("P1"), ProjectTeamKey("P1")},
		}},
		{UpdateProfile, Effect{Invalidate: []Key{UserKey()}}},
		{Login, Effect{ClearAll: true}},
		{Logout, Effect{ClearAll: true}},
	}

	for _, tt := range tests {
		t.Run(tt.mutation.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Effects(tt.mutation, target))
		})
	}
}

func TestApply_TransitionStatus(t *testing.T) {
	c := New()
	var calls atomic.Int32
	ctx := context.Background()

	_, _ = c.Fetch(ctx, TaskKey("T1"), valueLoader(&calls, "task"))
	_, _ = c.Fetch(ctx, ProjectKey("P1"), valueLoader(&calls, "project"))
	_, _ = c.Fetch(ctx, ProjectTeamKey("P1"), valueLoader(&calls, "team"))

	c.Apply(TransitionStatus, Target{ProjectID: "P1", TaskID: "T1"})

	task, _ := c.Peek(TaskKey("T1"))
	project, _ := c.Peek(ProjectKey("P1"))
	team, _ := c.Peek(ProjectTeamKey("P1"))

	assert.True(t, task.Stale)
	assert.True(t, project.Stale)
	assert.False(t, team.Stale, "unrelated keys stay fresh")
}

func TestApply_DeleteTaskRemovesTask(t *testing.T) {
	c := New()
	var calls atomic.Int32
	ctx := context.Background()

	_, _ = c.Fetch(ctx, TaskKey("T1"), valueLoader(&calls, "task"))
	_, _ = c.Fetch(ctx, ProjectKey("P1"), valueLoader(&calls, "project"))

	c.Apply(DeleteTask, Target{ProjectID: "P1", TaskID: "T1"})

	_, ok := c.Peek(TaskKey("T1"))
	assert.False(t, ok)
	project, _ := c.Peek(ProjectKey("P1"))
	assert.True(t, project.Stale)
}

func TestApply_LoginClearsEverything(t *testing.T) {
	c := New()
	var calls atomic.Int32

	_, _ = c.Fetch(context.Background(), UserKey(), valueLoader(&calls, "old-user"))
	c.Apply(Login, Target{})

	_, ok := c.Peek(UserKey())
	assert.False(t, ok)
}
