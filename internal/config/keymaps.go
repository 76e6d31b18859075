package config

// KeyMappings defines the key bindings of the watch screen
type KeyMappings struct {
	// Tasks
	ToggleDone string `yaml:"toggle_done"`
	DeleteTask string `yaml:"delete_task"`
	Undo       string `yaml:"undo"`

	// Selections
	CycleFilter string `yaml:"cycle_filter"`
	CycleSort   string `yaml:"cycle_sort"`
	ToggleToday string `yaml:"toggle_today"`

	// Navigation
	PrevTask string `yaml:"prev_task"`
	NextTask string `yaml:"next_task"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Tasks
		ToggleDone: "space",
		DeleteTask: "d",
		Undo:       "u",

		// Selections
		CycleFilter: "f",
		CycleSort:   "s",
		ToggleToday: "t",

		// Navigation
		PrevTask: "k",
		NextTask: "j",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.ToggleDone == "" {
		k.ToggleDone = defaults.ToggleDone
	}
	if k.DeleteTask == "" {
		k.DeleteTask = defaults.DeleteTask
	}
	if k.Undo == "" {
		k.Undo = defaults.Undo
	}
	if k.CycleFilter == "" {
		k.CycleFilter = defaults.CycleFilter
	}
	if k.CycleSort == "" {
		k.CycleSort = defaults.CycleSort
	}
	if k.ToggleToday == "" {
		k.ToggleToday = defaults.ToggleToday
	}
	if k.PrevTask == "" {
		k.PrevTask = defaults.PrevTask
	}
	if k.NextTask == "" {
		k.NextTask = defaults.NextTask
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
