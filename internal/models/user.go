package models

// User is an authenticated account as returned by the backend
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// TeamMember is a user projected into a project's membership list
type TeamMember struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (u User) GetID() string       { return u.ID }
func (m TeamMember) GetID() string { return m.ID }
