package models

import (
	"errors"
	"testing"
)

// ============================================================================
// Status Tests
// ============================================================================

func TestParseTaskStatus_Valid(t *testing.T) {
	for _, status := range AllStatuses() {
		got, err := ParseTaskStatus(string(status))
		if err != nil {
			t.Fatalf("ParseTaskStatus(%q) returned error: %v", status, err)
		}
		if got != status {
			t.Errorf("Expected %q, got %q", status, got)
		}
	}
}

func TestParseTaskStatus_Invalid(t *testing.T) {
	inputs := []string{"", "done", "Pending", "in_progress", "completed "}

	for _, in := range inputs {
		_, err := ParseTaskStatus(in)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Errorf("ParseTaskStatus(%q): expected ErrInvalidStatus, got %v", in, err)
		}
	}
}

func TestTaskStatus_Labels(t *testing.T) {
	tests := []struct {
		status TaskStatus
		label  string
	}{
		{StatusPending, "Pending"},
		{StatusOnHold, "On Hold"},
		{StatusInProgress, "In Progress"},
		{StatusUnderReview, "Under Review"},
		{StatusCompleted, "Completed"},
		{TaskStatus("archived"), "archived"},
	}

	for _, tt := range tests {
		if got := tt.status.Label(); got != tt.label {
			t.Errorf("Label(%q) = %q, want %q", tt.status, got, tt.label)
		}
	}
}

func TestTaskStatus_NextPrev(t *testing.T) {
	next, ok := StatusPending.Next()
	if !ok || next != StatusOnHold {
		t.Errorf("Expected pending -> onHold, got %q (%v)", next, ok)
	}

	if _, ok := StatusCompleted.Next(); ok {
		t.Error("completed should have no next status")
	}

	prev, ok := StatusCompleted.Prev()
	if !ok || prev != StatusUnderReview {
		t.Errorf("Expected completed -> underReview, got %q (%v)", prev, ok)
	}

	if _, ok := StatusPending.Prev(); ok {
		t.Error("pending should have no previous status")
	}

	if _, ok := TaskStatus("bogus").Next(); ok {
		t.Error("unknown status should have no next status")
	}
}

func TestAllStatuses_ReturnsCopy(t *testing.T) {
	a := AllStatuses()
	a[0] = "mutated"

	if AllStatuses()[0] != StatusPending {
		t.Error("AllStatuses must not expose internal order slice")
	}
}

// ============================================================================
// Struct Tests
// ============================================================================

func TestTask_LastActivity(t *testing.T) {
	task := Task{ID: "t1"}
	if _, ok := task.LastActivity(); ok {
		t.Error("Expected no activity on a fresh task")
	}

	task.CompletedBy = []ActivityLogEntry{
		{ID: "a1", Status: StatusInProgress},
		{ID: "a2", Status: StatusCompleted},
	}
	last, ok := task.LastActivity()
	if !ok || last.ID != "a2" {
		t.Errorf("Expected last entry a2, got %+v", last)
	}
}

func TestProject_TasksByStatus(t *testing.T) {
	p := Project{
		Tasks: []TaskSummary{
			{ID: "1", Status: StatusPending},
			{ID: "2", Status: StatusCompleted},
			{ID: "3", Status: StatusPending},
		},
	}

	grouped := p.TasksByStatus()

	if len(grouped) != len(AllStatuses()) {
		t.Fatalf("Expected a bucket per status, got %d", len(grouped))
	}
	if len(grouped[StatusPending]) != 2 || grouped[StatusPending][1].ID != "3" {
		t.Errorf("Unexpected pending bucket: %+v", grouped[StatusPending])
	}
	if len(grouped[StatusOnHold]) != 0 {
		t.Errorf("Expected empty onHold bucket, got %+v", grouped[StatusOnHold])
	}
}

func TestProject_HasMember(t *testing.T) {
	p := Project{Team: []string{"u1", "u2"}}

	if !p.HasMember("u2") {
		t.Error("Expected u2 to be a member")
	}
	if p.HasMember("u3") {
		t.Error("Did not expect u3 to be a member")
	}
}

// ============================================================================
// Form Validation Tests
// ============================================================================

func TestValidateForm(t *testing.T) {
	valid := RegistrationForm{Name: "Ana", Email: "ana@example.com", Password: "secret123", PasswordConfirmation: "secret123"}
	if err := ValidateForm(valid); err != nil {
		t.Fatalf("Expected valid form, got %v", err)
	}

	tests := []struct {
		name  string
		form  any
		field string
		rule  string
	}{
		{"missing name", RegistrationForm{Email: "a@b.co", Password: "secret123", PasswordConfirmation: "secret123"}, "name", "required"},
		{"short password", RegistrationForm{Name: "a", Email: "a@b.co", Password: "short", PasswordConfirmation: "short"}, "password", "min"},
		{"mismatch", RegistrationForm{Name: "a", Email: "a@b.co", Password: "secret123", PasswordConfirmation: "secret124"}, "password_confirmation", "eqfield"},
		{"bad email", EmailForm{Email: "nope"}, "email", "email"},
		{"short token", ConfirmToken{Token: "123"}, "token", "len"},
		{"letters in token", ConfirmToken{Token: "12a456"}, "token", "numeric"},
		{"empty note", NoteForm{}, "content", "required"},
		{"project without client", ProjectForm{ProjectName: "a", Description: "b"}, "clientName", "required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateForm(tt.form)

			var formErr *FormError
			if !errors.As(err, &formErr) {
				t.Fatalf("Expected *FormError, got %v", err)
			}
			if formErr.Field != tt.field || formErr.Rule != tt.rule {
				t.Errorf("Expected %s/%s, got %s/%s", tt.field, tt.rule, formErr.Field, formErr.Rule)
			}
			if !errors.Is(err, ErrInvalidForm) {
				t.Error("FormError must wrap ErrInvalidForm")
			}
		})
	}
}

func TestFormError_Message(t *testing.T) {
	err := &FormError{Field: "password", Rule: "min", Param: "8"}
	if got := err.Error(); got != "password must be at least 8 characters" {
		t.Errorf("Unexpected message %q", got)
	}
}
