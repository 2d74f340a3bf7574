// Package schema validates decoded backend payloads and converts them into
// typed models. Validation is structural, plus membership of the status enum
// and email syntax for users.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/thenoetrevino/uptask/internal/models"
)

var validate = validator.New()

// walker records the first mismatch and turns every later read into a no-op
type walker struct {
	schema string
	err    *ValidationError
}

func newWalker(schema string) *walker {
	return &walker{schema: schema}
}

func (w *walker) fail(path, format string, args ...any) {
	if w.err != nil {
		return
	}
	w.err = &ValidationError{Schema: w.schema, Path: path, Reason: fmt.Sprintf(format, args...)}
}

func (w *walker) failed() bool {
	return w.err != nil
}

// result returns nil when nothing failed. Returning w.err directly would
// produce a non-nil error interface holding a nil pointer.
func (w *walker) result() error {
	if w.err == nil {
		return nil
	}
	return w.err
}

func decode(schemaName string, raw []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &ValidationError{Schema: schemaName, Reason: "malformed JSON: " + err.Error()}
	}
	return v, nil
}

func join(path, field string) string {
	if path == "" {
		return field
	}
	return path + "." + field
}

func index(path string, i int) string {
	return fmt.Sprintf("%s[%d]", path, i)
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func (w *walker) object(path string, v any) map[string]any {
	if w.failed() {
		return nil
	}
	obj, ok := v.(map[string]any)
	if !ok {
		w.fail(path, "expected object, got %s", typeName(v))
		return nil
	}
	return obj
}

func (w *walker) field(path string, obj map[string]any, name string) (any, bool) {
	if w.failed() || obj == nil {
		return nil, false
	}
	v, ok := obj[name]
	if !ok {
		w.fail(join(path, name), "required")
		return nil, false
	}
	return v, true
}

func (w *walker) str(path string, obj map[string]any, name string) string {
	v, ok := w.field(path, obj, name)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		w.fail(join(path, name), "expected string, got %s", typeName(v))
		return ""
	}
	return s
}

func (w *walker) array(path string, obj map[string]any, name string) []any {
	v, ok := w.field(path, obj, name)
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		w.fail(join(path, name), "expected array, got %s", typeName(v))
		return nil
	}
	return arr
}

func (w *walker) stringArray(path string, obj map[string]any, name string) []string {
	arr := w.array(path, obj, name)
	out := make([]string, 0, len(arr))
	for i, item := range arr {
		s, ok := item.(string)
		if !ok {
			w.fail(index(join(path, name), i), "expected string, got %s", typeName(item))
			return nil
		}
		out = append(out, s)
	}
	return out
}

func (w *walker) status(path string, obj map[string]any, name string) models.TaskStatus {
	s := w.str(path, obj, name)
	if w.failed() {
		return ""
	}
	status := models.TaskStatus(s)
	if !status.Valid() {
		w.fail(join(path, name), "unknown status %q", s)
		return ""
	}
	return status
}

func (w *walker) email(path string, obj map[string]any, name string) string {
	s := w.str(path, obj, name)
	if w.failed() {
		return ""
	}
	if err := validate.Var(s, "required,email"); err != nil {
		w.fail(join(path, name), "invalid email %q", s)
		return ""
	}
	return s
}

func (w *walker) timestamp(path string, obj map[string]any, name string) time.Time {
	s := w.str(path, obj, name)
	if w.failed() {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		w.fail(join(path, name), "invalid timestamp %q", s)
		return time.Time{}
	}
	return ts
}
