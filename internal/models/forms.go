package models

// Request payloads sent to the backend. Field names match the API.

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegistrationForm struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// ConfirmToken carries a six digit confirmation or reset token
type ConfirmToken struct {
	Token string `json:"token" validate:"required,len=6,numeric"`
}

// EmailForm is used for code requests, forgotten passwords and member lookups
type EmailForm struct {
	Email string `json:"email" validate:"required,email"`
}

type NewPasswordForm struct {
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type UpdatePasswordForm struct {
	CurrentPassword      string `json:"current_password" validate:"required"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

type CheckPasswordForm struct {
	Password string `json:"password" validate:"required"`
}

type ProfileForm struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type TaskForm struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type NoteForm struct {
	Content string `json:"content" validate:"required"`
}

// ProjectFormData is the create/update payload for projects
type ProjectFormData = ProjectForm
