package models

// Project is the full project view with its tasks and team ids
type Project struct {
	ID          string        `json:"_id"`
	ProjectName string        `json:"projectName"`
	ClientName  string        `json:"clientName"`
	Description string        `json:"description"`
	Manager     string        `json:"manager"`
	Tasks       []TaskSummary `json:"tasks"`
	Team        []string      `json:"team"`
}

// ProjectSummary is the dashboard form of a project
type ProjectSummary struct {
	ID          string `json:"_id"`
	ProjectName string `json:"projectName"`
	ClientName  string `json:"clientName"`
	Description string `json:"description"`
	Manager     string `json:"manager"`
}

// ProjectForm is the editable subset of a project
type ProjectForm struct {
	ProjectName string `json:"projectName" validate:"required"`
	ClientName  string `json:"clientName" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (p Project) GetID() string        { return p.ID }
func (p ProjectSummary) GetID() string { return p.ID }

// TasksByStatus groups the project's tasks by status, keeping server order
func (p Project) TasksByStatus() map[TaskStatus][]TaskSummary {
	grouped := make(map[TaskStatus][]TaskSummary, len(statusOrder))
	for _, st := range statusOrder {
		grouped[st] = []TaskSummary{}
	}
	for _, t := range p.Tasks {
		grouped[t.Status] = append(grouped[t.Status], t)
	}
	return grouped
}

// HasMember reports whether userID is in the project team
func (p Project) HasMember(userID string) bool {
	for _, id := range p.Team {
		if id == userID {
			return true
		}
	}
	return false
}
