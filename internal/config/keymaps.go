package config

// KeyMappings defines all configurable key bindings of the layout editor
type KeyMappings struct {
	// Navigation
	PrevContainer string `yaml:"prev_container"`
	NextContainer string `yaml:"next_container"`
	RowUp         string `yaml:"row_up"`
	RowDown       string `yaml:"row_down"`

	// Structure
	InsertBefore    string `yaml:"insert_before"`
	InsertAfter     string `yaml:"insert_after"`
	InsertRowAbove  string `yaml:"insert_row_above"`
	InsertRowBelow  string `yaml:"insert_row_below"`
	DeleteContainer string `yaml:"delete_container"`
	MoveLeft        string `yaml:"move_left"`
	MoveRight       string `yaml:"move_right"`

	// Width
	Grow   string `yaml:"grow"`
	Shrink string `yaml:"shrink"`

	// Content
	CycleContentType string `yaml:"cycle_content_type"`

	// Other
	Reload   string `yaml:"reload"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		PrevContainer: "h",
		NextContainer: "l",
		RowUp:         "k",
		RowDown:       "j",

		InsertBefore:    "i",
		InsertAfter:     "a",
		InsertRowAbove:  "O",
		InsertRowBelow:  "o",
		DeleteContainer: "d",
		MoveLeft:        "H",
		MoveRight:       "L",

		Grow:   "+",
		Shrink: "-",

		CycleContentType: "t",

		Reload:   "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.PrevContainer == "" {
		k.PrevContainer = defaults.PrevContainer
	}
	if k.NextContainer == "" {
		k.NextContainer = defaults.NextContainer
	}
	if k.RowUp == "" {
		k.RowUp = defaults.RowUp
	}
	if k.RowDown == "" {
		k.RowDown = defaults.RowDown
	}
	if k.InsertBefore == "" {
		k.InsertBefore = defaults.InsertBefore
	}
	if k.InsertAfter == "" {
		k.InsertAfter = defaults.InsertAfter
	}
	if k.InsertRowAbove == "" {
		k.InsertRowAbove = defaults.InsertRowAbove
	}
	if k.InsertRowBelow == "" {
		k.InsertRowBelow = defaults.InsertRowBelow
	}
	if k.DeleteContainer == "" {
		k.DeleteContainer = defaults.DeleteContainer
	}
	if k.MoveLeft == "" {
		k.MoveLeft = defaults.MoveLeft
	}
	if k.MoveRight == "" {
		k.MoveRight = defaults.MoveRight
	}
	if k.Grow == "" {
		k.Grow = defaults.Grow
	}
	if k.Shrink == "" {
		k.Shrink = defaults.Shrink
	}
	if k.CycleContentType == "" {
		k.CycleContentType = defaults.CycleContentType
	}
	if k.Reload == "" {
		k.Reload = defaults.Reload
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
