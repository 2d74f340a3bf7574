package schema

import "github.com/thenoetrevino/uptask/internal/models"

func (w *walker) projectForm(path string, obj map[string]any) models.ProjectForm {
	return models.ProjectForm{
		ProjectName: w.str(path, obj, "projectName"),
		ClientName:  w.str(path, obj, "clientName"),
		Description: w.str(path, obj, "description"),
	}
}

// ParseProject validates the full project view, including task summaries
func ParseProject(raw []byte) (models.Project, error) {
	v, err := decode("project", raw)
	if err != nil {
		return models.Project{}, err
	}
	w := newWalker("project")
	obj := w.object("", v)

	form := w.projectForm("", obj)
	p := models.Project{
		ID:          w.str("", obj, "_id"),
		ProjectName: form.ProjectName,
		ClientName:  form.ClientName,
		Description: form.Description,
		Manager:     w.str("", obj, "manager"),
		Tasks:       []models.TaskSummary{},
	}
	for i, item := range w.array("", obj, "tasks") {
		t := w.taskSummary(index("tasks", i), item)
		if w.failed() {
			break
		}
		p.Tasks = append(p.Tasks, t)
	}
	p.Team = w.stringArray("", obj, "team")

	if err := w.result(); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// ParseProjectForm validates only the editable fields of a project
func ParseProjectForm(raw []byte) (models.ProjectForm, error) {
	v, err := decode("project", raw)
	if err != nil {
		return models.ProjectForm{}, err
	}
	w := newWalker("project")
	form := w.projectForm("", w.object("", v))
	if err := w.result(); err != nil {
		return models.ProjectForm{}, err
	}
	return form, nil
}

// ParseProjectSummaries validates the dashboard project list
func ParseProjectSummaries(raw []byte) ([]models.ProjectSummary, error) {
	v, err := decode("projects", raw)
	if err != nil {
		return nil, err
	}
	w := newWalker("projects")
	arr, ok := v.([]any)
	if !ok {
		w.fail("", "expected array, got %s", typeName(v))
		return nil, w.result()
	}

	out := make([]models.ProjectSummary, 0, len(arr))
	for i, item := range arr {
		path := index("", i)
		obj := w.object(path, item)
		form := w.projectForm(path, obj)
		s := models.ProjectSummary{
			ID:          w.str(path, obj, "_id"),
			ProjectName: form.ProjectName,
			ClientName:  form.ClientName,
			Description: form.Description,
			Manager:     w.str(path, obj, "manager"),
		}
		if err := w.result(); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
