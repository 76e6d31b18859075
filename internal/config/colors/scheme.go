package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Priority colors
	High   string `yaml:"high"`
	Normal string `yaml:"normal"`
	Low    string `yaml:"low"`

	// Task state colors
	Done    string `yaml:"done"`
	Overdue string `yaml:"overdue"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Text   string `yaml:"text"`

	// Message colors
	Success string `yaml:"success"`
	Warning string `yaml:"warning"`
	Error   string `yaml:"error"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.MergeMissing(*preset)
}

// MergeMissing copies every color of other that c leaves empty
func (c *ColorScheme) MergeMissing(other ColorScheme) {
	for _, f := range c.fields() {
		if *f.dst == "" {
			*f.dst = f.get(&other)
		}
	}
}

// MergeFrom overrides c with every color other sets
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	for _, f := range c.fields() {
		if v := f.get(&other); v != "" {
			*f.dst = v
		}
	}
}

type colorField struct {
	dst *string
	get func(*ColorScheme) string
}

func (c *ColorScheme) fields() []colorField {
	return []colorField{
		{&c.Accent, func(s *ColorScheme) string { return s.Accent }},
		{&c.High, func(s *ColorScheme) string { return s.High }},
		{&c.Normal, func(s *ColorScheme) string { return s.Normal }},
		{&c.Low, func(s *ColorScheme) string { return s.Low }},
		{&c.Done, func(s *ColorScheme) string { return s.Done }},
		{&c.Overdue, func(s *ColorScheme) string { return s.Overdue }},
		{&c.Title, func(s *ColorScheme) string { return s.Title }},
		{&c.Subtle, func(s *ColorScheme) string { return s.Subtle }},
		{&c.Text, func(s *ColorScheme) string { return s.Text }},
		{&c.Success, func(s *ColorScheme) string { return s.Success }},
		{&c.Warning, func(s *ColorScheme) string { return s.Warning }},
		{&c.Error, func(s *ColorScheme) string { return s.Error }},
	}
}
