package models

import "time"

// Note is a comment left on a task by a user
type Note struct {
	ID        string    `json:"_id"`
	Content   string    `json:"content"`
	CreatedBy User      `json:"createdBy"`
	TaskID    string    `json:"task"`
	CreatedAt time.Time `json:"createdAt"`
}

func (n Note) GetID() string { return n.ID }
