package models

import "fmt"

// TaskStatus is the workflow state of a task as the backend names it
type TaskStatus string

// Task statuses in board order
const (
	StatusPending     TaskStatus = "pending"
	StatusOnHold      TaskStatus = "onHold"
	StatusInProgress  TaskStatus = "inProgress"
	StatusUnderReview TaskStatus = "underReview"
	StatusCompleted   TaskStatus = "completed"
)

// InitialStatus is the status the backend assigns to new tasks
const InitialStatus = StatusPending

var statusOrder = []TaskStatus{
	StatusPending,
	StatusOnHold,
	StatusInProgress,
	StatusUnderReview,
	StatusCompleted,
}

var statusLabels = map[TaskStatus]string{
	StatusPending:     "Pending",
	StatusOnHold:      "On Hold",
	StatusInProgress:  "In Progress",
	StatusUnderReview: "Under Review",
	StatusCompleted:   "Completed",
}

// AllStatuses returns every status in board order. The slice is a copy.
func AllStatuses() []TaskStatus {
	out := make([]TaskStatus, len(statusOrder))
	copy(out, statusOrder)
	return out
}

// ParseTaskStatus converts a wire value into a TaskStatus
func ParseTaskStatus(s string) (TaskStatus, error) {
	status := TaskStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// Valid reports whether s is one of the five workflow statuses
func (s TaskStatus) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human readable name, or the raw value for unknown statuses
func (s TaskStatus) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Index returns the board position of the status, -1 if unknown
func (s TaskStatus) Index() int {
	for i, st := range statusOrder {
		if st == s {
			return i
		}
	}
	return -1
}

// Next returns the status after s in board order.
// The workflow allows any transition; ordering only drives board navigation.
func (s TaskStatus) Next() (TaskStatus, bool) {
	i := s.Index()
	if i < 0 || i == len(statusOrder)-1 {
		return s, false
	}
	return statusOrder[i+1], true
}

// Prev returns the status before s in board order
func (s TaskStatus) Prev() (TaskStatus, bool) {
	i := s.Index()
	if i <= 0 {
		return s, false
	}
	return statusOrder[i-1], true
}

func (s TaskStatus) String() string {
	return string(s)
}
