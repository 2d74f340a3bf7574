package models

import "time"

// Task is the full task view, including its activity log and notes
type Task struct {
	ID          string             `json:"_id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ProjectID   string             `json:"project"`
	Status      TaskStatus         `json:"status"`
	CompletedBy []ActivityLogEntry `json:"completedBy"`
	Notes       []Note             `json:"notes"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ActivityLogEntry records that a user set a task to a status.
// Entries are written by the backend only, one per transition.
type ActivityLogEntry struct {
	ID     string     `json:"_id"`
	User   User       `json:"user"`
	Status TaskStatus `json:"status"`
}

// TaskSummary is the task form embedded in a project
type TaskSummary struct {
	ID          string     `json:"_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
}

func (t Task) GetID() string        { return t.ID }
func (t TaskSummary) GetID() string { return t.ID }

// LastActivity returns the most recent log entry, if any
func (t Task) LastActivity() (ActivityLogEntry, bool) {
	if len(t.CompletedBy) == 0 {
		return ActivityLogEntry{}, false
	}
	return t.CompletedBy[len(t.CompletedBy)-1], true
}
