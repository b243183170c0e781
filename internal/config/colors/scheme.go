package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "kanagawa")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`

	// Semantic colors
	Create string `yaml:"create"` // creation dialogs
	Edit   string `yaml:"edit"`   // edit dialogs
	Delete string `yaml:"delete"` // delete confirmations

	// UI element colors
	Border         string `yaml:"border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Task status badges
	StatusTodo       string `yaml:"status_todo"`
	StatusInProgress string `yaml:"status_in_progress"`
	StatusInReview   string `yaml:"status_in_review"`
	StatusDone       string `yaml:"status_done"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "kanagawa":
		return Kanagawa()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fillFrom(preset)
}

// MergeFrom overrides colors with every non-empty value of other
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	for _, f := range c.fields() {
		if v := *f.of(&other); v != "" {
			*f.of(c) = v
		}
	}
	if other.Preset != "" {
		c.Preset = other.Preset
	}
}

func (c *ColorScheme) fillFrom(base *ColorScheme) {
	for _, f := range c.fields() {
		if *f.of(c) == "" {
			*f.of(c) = *f.of(base)
		}
	}
}

type field struct {
	of func(*ColorScheme) *string
}

func (c *ColorScheme) fields() []field {
	return []field{
		{func(s *ColorScheme) *string { return &s.Accent }},
		{func(s *ColorScheme) *string { return &s.Background }},
		{func(s *ColorScheme) *string { return &s.Create }},
		{func(s *ColorScheme) *string { return &s.Edit }},
		{func(s *ColorScheme) *string { return &s.Delete }},
		{func(s *ColorScheme) *string { return &s.Border }},
		{func(s *ColorScheme) *string { return &s.SelectedBorder }},
		{func(s *ColorScheme) *string { return &s.SelectedBg }},
		{func(s *ColorScheme) *string { return &s.Title }},
		{func(s *ColorScheme) *string { return &s.Subtle }},
		{func(s *ColorScheme) *string { return &s.Normal }},
		{func(s *ColorScheme) *string { return &s.StatusTodo }},
		{func(s *ColorScheme) *string { return &s.StatusInProgress }},
		{func(s *ColorScheme) *string { return &s.StatusInReview }},
		{func(s *ColorScheme) *string { return &s.StatusDone }},
		{func(s *ColorScheme) *string { return &s.InfoFg }},
		{func(s *ColorScheme) *string { return &s.InfoBg }},
		{func(s *ColorScheme) *string { return &s.WarningFg }},
		{func(s *ColorScheme) *string { return &s.WarningBg }},
		{func(s *ColorScheme) *string { return &s.ErrorFg }},
		{func(s *ColorScheme) *string { return &s.ErrorBg }},
		{func(s *ColorScheme) *string { return &s.StatusBarBg }},
		{func(s *ColorScheme) *string { return &s.StatusBarText }},
	}
}
