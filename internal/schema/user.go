package schema

import "github.com/thenoetrevino/uptask/internal/models"

// user is the single definition of a valid user, reused for every nested
// occurrence (note authors, activity log entries, team members).
func (w *walker) user(path string, v any) models.User {
	obj := w.object(path, v)
	u := models.User{
		ID:    w.str(path, obj, "_id"),
		Name:  w.str(path, obj, "name"),
		Email: w.email(path, obj, "email"),
	}
	if w.failed() {
		return models.User{}
	}
	return u
}

// ParseUser validates the authenticated user payload
func ParseUser(raw []byte) (models.User, error) {
	v, err := decode("user", raw)
	if err != nil {
		return models.User{}, err
	}
	w := newWalker("user")
	u := w.user("", v)
	return u, w.result()
}

// ParseTeamMember validates a single member, as returned by a lookup
func ParseTeamMember(raw []byte) (models.TeamMember, error) {
	v, err := decode("team member", raw)
	if err != nil {
		return models.TeamMember{}, err
	}
	w := newWalker("team member")
	u := w.user("", v)
	if err := w.result(); err != nil {
		return models.TeamMember{}, err
	}
	return models.TeamMember(u), nil
}

// ParseTeamMembers validates a project's member list
func ParseTeamMembers(raw []byte) ([]models.TeamMember, error) {
	v, err := decode("team", raw)
	if err != nil {
		return nil, err
	}
	w := newWalker("team")
	arr, ok := v.([]any)
	if !ok {
		w.fail("", "expected array, got %s", typeName(v))
		return nil, w.result()
	}

	members := make([]models.TeamMember, 0, len(arr))
	for i, item := range arr {
		u := w.user(index("", i), item)
		if w.failed() {
			return nil, w.result()
		}
		members = append(members, models.TeamMember(u))
	}
	return members, nil
}
