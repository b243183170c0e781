package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Navigation
	PrevItem string `yaml:"prev_item"`
	NextItem string `yaml:"next_item"`
	Open     string `yaml:"open"`
	Back     string `yaml:"back"`
	Refresh  string `yaml:"refresh"`

	// Projects
	CreateProject string `yaml:"create_project"`
	EditProject   string `yaml:"edit_project"`
	DeleteProject string `yaml:"delete_project"`

	// Tasks
	AddTask       string `yaml:"add_task"`
	EditTask      string `yaml:"edit_task"`
	EditTaskModal string `yaml:"edit_task_modal"`
	DeleteTask    string `yaml:"delete_task"`
	CycleStatus   string `yaml:"cycle_status"`
	AssignTask    string `yaml:"assign_task"`
	UnassignTask  string `yaml:"unassign_task"`
	ToggleDetails string `yaml:"toggle_details"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Session
	Logout       string `yaml:"logout"`
	SwitchToAuth string `yaml:"switch_auth"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevItem: "k",
		NextItem: "j",
		Open:     "enter",
		Back:     "esc",
		Refresh:  "r",

		CreateProject: "n",
		EditProject:   "p",
		DeleteProject: "d",

		AddTask:       "a",
		EditTask:      "e",
		EditTaskModal: "E",
		DeleteTask:    "d",
		CycleStatus:   "s",
		AssignTask:    "A",
		UnassignTask:  "x",
		ToggleDetails: "space",

		SaveForm: "ctrl+s",

		Logout:       "L",
		SwitchToAuth: "ctrl+r",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	d := DefaultKeyMappings()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}

	fill(&k.PrevItem, d.PrevItem)
	fill(&k.NextItem, d.NextItem)
	fill(&k.Open, d.Open)
	fill(&k.Back, d.Back)
	fill(&k.Refresh, d.Refresh)
	fill(&k.CreateProject, d.CreateProject)
	fill(&k.EditProject, d.EditProject)
	fill(&k.DeleteProject, d.DeleteProject)
	fill(&k.AddTask, d.AddTask)
	fill(&k.EditTask, d.EditTask)
	fill(&k.EditTaskModal, d.EditTaskModal)
	fill(&k.DeleteTask, d.DeleteTask)
	fill(&k.CycleStatus, d.CycleStatus)
	fill(&k.AssignTask, d.AssignTask)
	fill(&k.UnassignTask, d.UnassignTask)
	fill(&k.ToggleDetails, d.ToggleDetails)
	fill(&k.SaveForm, d.SaveForm)
	fill(&k.Logout, d.Logout)
	fill(&k.SwitchToAuth, d.SwitchToAuth)
	fill(&k.ShowHelp, d.ShowHelp)
	fill(&k.Quit, d.Quit)
}
