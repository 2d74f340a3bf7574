package config

import "github.com/thenoetrevino/uptask/internal/models"

// Theme holds the colors used for status badges and the board
type Theme struct {
	// Preset name ("default" or "monochrome")
	Preset string `yaml:"preset"`

	Accent string `yaml:"accent"`
	Subtle string `yaml:"subtle"`
	Normal string `yaml:"normal"`
	Error  string `yaml:"error"`

	// One badge color per workflow status
	Pending     string `yaml:"pending"`
	OnHold      string `yaml:"on_hold"`
	InProgress  string `yaml:"in_progress"`
	UnderReview string `yaml:"under_review"`
	Completed   string `yaml:"completed"`
}

func defaultTheme() Theme {
	return Theme{
		Preset:      "default",
		Accent:      "#874BFD",
		Subtle:      "#585858",
		Normal:      "#D0D0D0",
		Error:       "#FF5F5F",
		Pending:     "#8A8A8A",
		OnHold:      "#D75F5F",
		InProgress:  "#5F87D7",
		UnderReview: "#D7AF5F",
		Completed:   "#5FD75F",
	}
}

func monochromeTheme() Theme {
	return Theme{
		Preset:      "monochrome",
		Accent:      "#FFFFFF",
		Subtle:      "#6C6C6C",
		Normal:      "#D0D0D0",
		Error:       "#FFFFFF",
		Pending:     "#9E9E9E",
		OnHold:      "#9E9E9E",
		InProgress:  "#D0D0D0",
		UnderReview: "#D0D0D0",
		Completed:   "#FFFFFF",
	}
}

// ThemePreset returns a preset by name, falling back to the default
func ThemePreset(name string) Theme {
	if name == "monochrome" {
		return monochromeTheme()
	}
	return defaultTheme()
}

// ApplyDefaults fills empty colors from the selected preset
func (t *Theme) ApplyDefaults() {
	preset := ThemePreset(t.Preset)

	fill := func(v *string, d string) {
		if *v == "" {
			*v = d
		}
	}
	fill(&t.Preset, preset.Preset)
	fill(&t.Accent, preset.Accent)
	fill(&t.Subtle, preset.Subtle)
	fill(&t.Normal, preset.Normal)
	fill(&t.Error, preset.Error)
	fill(&t.Pending, preset.Pending)
	fill(&t.OnHold, preset.OnHold)
	fill(&t.InProgress, preset.InProgress)
	fill(&t.UnderReview, preset.UnderReview)
	fill(&t.Completed, preset.Completed)
}

// StatusColor returns the badge color for status
func (t Theme) StatusColor(status models.TaskStatus) string {
	switch status {
	case models.StatusPending:
		return t.Pending
	case models.StatusOnHold:
		return t.OnHold
	case models.StatusInProgress:
		return t.InProgress
	case models.StatusUnderReview:
		return t.UnderReview
	case models.StatusCompleted:
		return t.Completed
	}
	return t.Subtle
}
