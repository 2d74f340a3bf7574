package config

// KeyMappings defines the configurable board key bindings
type KeyMappings struct {
	// Tasks
	MoveTaskLeft  string `yaml:"move_task_left"`
	MoveTaskRight string `yaml:"move_task_right"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevTask   string `yaml:"prev_task"`
	NextTask   string `yaml:"next_task"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		MoveTaskLeft:  "H",
		MoveTaskRight: "L",

		PrevColumn: "h",
		NextColumn: "l",
		PrevTask:   "k",
		NextTask:   "j",

		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&k.MoveTaskLeft, defaults.MoveTaskLeft)
	fill(&k.MoveTaskRight, defaults.MoveTaskRight)
	fill(&k.PrevColumn, defaults.PrevColumn)
	fill(&k.NextColumn, defaults.NextColumn)
	fill(&k.PrevTask, defaults.PrevTask)
	fill(&k.NextTask, defaults.NextTask)
	fill(&k.Refresh, defaults.Refresh)
	fill(&k.ShowHelp, defaults.ShowHelp)
	fill(&k.Quit, defaults.Quit)
}
