package schema

import "github.com/thenoetrevino/uptask/internal/models"

func (w *walker) note(path string, v any) models.Note {
	obj := w.object(path, v)
	var createdBy models.User
	if raw, ok := w.field(path, obj, "createdBy"); ok {
		createdBy = w.user(join(path, "createdBy"), raw)
	}
	n := models.Note{
		ID:        w.str(path, obj, "_id"),
		Content:   w.str(path, obj, "content"),
		CreatedBy: createdBy,
		TaskID:    w.str(path, obj, "task"),
		CreatedAt: w.timestamp(path, obj, "createdAt"),
	}
	if w.failed() {
		return models.Note{}
	}
	return n
}

func (w *walker) activity(path string, v any) models.ActivityLogEntry {
	obj := w.object(path, v)
	id := w.str(path, obj, "_id")
	var u models.User
	if raw, ok := w.field(path, obj, "user"); ok {
		u = w.user(join(path, "user"), raw)
	}
	status := w.status(path, obj, "status")
	return models.ActivityLogEntry{ID: id, User: u, Status: status}
}

func (w *walker) task(path string, v any) models.Task {
	obj := w.object(path, v)
	t := models.Task{
		ID:          w.str(path, obj, "_id"),
		Name:        w.str(path, obj, "name"),
		Description: w.str(path, obj, "description"),
		ProjectID:   w.str(path, obj, "project"),
		Status:      w.status(path, obj, "status"),
	}

	logPath := join(path, "completedBy")
	for i, item := range w.array(path, obj, "completedBy") {
		entry := w.activity(index(logPath, i), item)
		if w.failed() {
			break
		}
		t.CompletedBy = append(t.CompletedBy, entry)
	}

	notesPath := join(path, "notes")
	for i, item := range w.array(path, obj, "notes") {
		n := w.note(index(notesPath, i), item)
		if w.failed() {
			break
		}
		t.Notes = append(t.Notes, n)
	}

	t.CreatedAt = w.timestamp(path, obj, "createdAt")
	t.UpdatedAt = w.timestamp(path, obj, "updatedAt")

	if w.failed() {
		return models.Task{}
	}
	if t.CompletedBy == nil {
		t.CompletedBy = []models.ActivityLogEntry{}
	}
	if t.Notes == nil {
		t.Notes = []models.Note{}
	}
	return t
}

func (w *walker) taskSummary(path string, v any) models.TaskSummary {
	obj := w.object(path, v)
	return models.TaskSummary{
		ID:          w.str(path, obj, "_id"),
		Name:        w.str(path, obj, "name"),
		Description: w.str(path, obj, "description"),
		Status:      w.status(path, obj, "status"),
	}
}

// ParseTask validates a full task with its activity log and notes
func ParseTask(raw []byte) (models.Task, error) {
	v, err := decode("task", raw)
	if err != nil {
		return models.Task{}, err
	}
	w := newWalker("task")
	t := w.task("", v)
	return t, w.result()
}

// ParseNote validates a single note
func ParseNote(raw []byte) (models.Note, error) {
	v, err := decode("note", raw)
	if err != nil {
		return models.Note{}, err
	}
	w := newWalker("note")
	n := w.note("", v)
	return n, w.result()
}
