// Package policy holds the client side authorization rules. The server
// enforces the same rules; these only decide what the client offers.
package policy

import "github.com/thenoetrevino/uptask/internal/models"

// IsManager reports whether userID manages the project
func IsManager(managerID, userID string) bool {
	return managerID != "" && managerID == userID
}

// CanEditTasks reports whether user may create, edit or delete tasks
func CanEditTasks(project models.Project, user models.User) bool {
	return IsManager(project.Manager, user.ID)
}

// CanChangeStatus reports whether user may move tasks between statuses
func CanChangeStatus(project models.Project, user models.User) bool {
	return IsManager(project.Manager, user.ID) || project.HasMember(user.ID)
}

// CanDeleteNote reports whether user wrote the note
func CanDeleteNote(note models.Note, user models.User) bool {
	return user.ID != "" && note.CreatedBy.ID == user.ID
}
