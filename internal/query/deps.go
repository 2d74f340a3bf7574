package query

import "fmt"

// Mutation names a write operation whose success changes cached data
type Mutation int

const (
	CreateProject Mutation = iota
	UpdateProject
	DeleteProject
	CreateTask
	UpdateTask
	DeleteTask
	TransitionStatus
	CreateNote
	DeleteNote
	AddMember
	RemoveMember
	UpdateProfile
	Login
	Logout

	mutationCount
)

var mutationNames = [mutationCount]string{
	CreateProject:    "create_project",
	UpdateProject:    "update_project",
	DeleteProject:    "delete_project",
	CreateTask:       "create_task",
	UpdateTask:       "update_task",
	DeleteTask:       "delete_task",
	TransitionStatus: "transition_status",
	CreateNote:       "create_note",
	DeleteNote:       "delete_note",
	AddMember:        "add_member",
	RemoveMember:     "remove_member",
	UpdateProfile:    "update_profile",
	Login:            "login",
	Logout:           "logout",
}

func (m Mutation) String() string {
	if m < 0 || m >= mutationCount {
		return fmt.Sprintf("mutation(%d)", int(m))
	}
	return mutationNames[m]
}

// Target carries the ids a mutation acted on
type Target struct {
	ProjectID string
	TaskID    string
}

// Effect is what a mutation does to the cache
type Effect struct {
	Invalidate []Key // marked stale, values kept for display
	Remove     []Key // entities that no longer exist
	ClearAll   bool  // identity changed, nothing cached is trustworthy
}

// Effects is the dependency table from mutations to the keys whose
// underlying data they change. It panics on an unknown mutation.
func Effects(m Mutation, t Target) Effect {
	switch m {
	case CreateProject:
		return Effect{Invalidate: []Key{ProjectsKey()}}
	case UpdateProject:
		return Effect{Invalidate: []Key{ProjectsKey(), EditProjectKey(t.ProjectID), ProjectKey(t.ProjectID)}}
	case DeleteProject:
		return Effect{
			Invalidate: []Key{ProjectsKey()},
			Remove:     []Key{ProjectKey(t.ProjectID), EditProjectKey(t.ProjectID), ProjectTeamKey(t.ProjectID)},
		}
	case CreateTask:
		return Effect{Invalidate: []Key{ProjectKey(t.ProjectID)}}
	case UpdateTask:
		return Effect{Invalidate: []Key{ProjectKey(t.ProjectID), TaskKey(t.TaskID)}}
	case DeleteTask:
		return Effect{
			Invalidate: []Key{ProjectKey(t.ProjectID)},
			Remove:     []Key{TaskKey(t.TaskID)},
		}
	case TransitionStatus:
		// the project's task summaries embed the status
		return Effect{Invalidate: []Key{TaskKey(t.TaskID), ProjectKey(t.ProjectID)}}
	case CreateNote, DeleteNote:
		return Effect{Invalidate: []Key{TaskKey(t.TaskID)}}
	case AddMember, RemoveMember:
		return Effect{Invalidate: []Key{ProjectTeamKey(t.ProjectID)}}
	case UpdateProfile:
		return Effect{Invalidate: []Key{UserKey()}}
	case Login, Logout:
		return Effect{ClearAll: true}
	}
	panic(fmt.Sprintf("query: no cache effects defined for %s", m))
}

// Apply runs the effects of a successful mutation
func (c *Cache) Apply(m Mutation, t Target) {
	effect := Effects(m, t)

	c.logger.Debug("applying mutation effects",
		"mutation", m.String(),
		"project_id", t.ProjectID,
		"task_id", t.TaskID)

	if effect.ClearAll {
		c.Clear()
		return
	}
	c.Remove(effect.Remove...)
	c.Invalidate(effect.Invalidate...)
}
