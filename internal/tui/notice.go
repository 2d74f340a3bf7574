package tui

// level is the severity of a status bar notice
type level int

const (
	levelInfo level = iota
	levelWarning
	levelError
)

type notice struct {
	level   level
	message string
}

func (n notice) empty() bool {
	return n.message == ""
}

func (l level) icon() string {
	switch l {
	case levelWarning:
		return "⚠"
	case levelError:
		return "✗"
	}
	return "•"
}
