package schema

import "fmt"

// ValidationError reports the first field of a server payload that did not
// match its schema. Callers must treat the whole payload as untrustworthy.
type ValidationError struct {
	Schema string // entity being parsed, e.g. "task"
	Path   string // dotted path to the offending field, empty for the root
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid %s response: %s", e.Schema, e.Reason)
	}
	return fmt.Sprintf("invalid %s response: %s: %s", e.Schema, e.Path, e.Reason)
}
