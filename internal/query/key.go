package query

// Kind tags what a cache key refers to
type Kind string

const (
	KindUser        Kind = "user"
	KindProjects    Kind = "projects"
	KindProject     Kind = "project"
	KindEditProject Kind = "editProject"
	KindTask        Kind = "task"
	KindProjectTeam Kind = "projectTeam"
)

// Key identifies one cached query: an entity kind plus its identifying id.
// Collection kinds (user, projects) have an empty ID.
type Key struct {
	Kind Kind
	ID   string
}

func (k Key) String() string {
	if k.ID == "" {
		return string(k.Kind)
	}
	return string(k.Kind) + ":" + k.ID
}

// UserKey is the authenticated user
func UserKey() Key { return Key{Kind: KindUser} }

// ProjectsKey is the dashboard project list
func ProjectsKey() Key { return Key{Kind: KindProjects} }

// ProjectKey is the full project view, including its task summaries
func ProjectKey(projectID string) Key { return Key{Kind: KindProject, ID: projectID} }

// EditProjectKey is the editable project form
func EditProjectKey(projectID string) Key { return Key{Kind: KindEditProject, ID: projectID} }

// TaskKey is the full task view
func TaskKey(taskID string) Key { return Key{Kind: KindTask, ID: taskID} }

// ProjectTeamKey is a project's member list
func ProjectTeamKey(projectID string) Key { return Key{Kind: KindProjectTeam, ID: projectID} }
