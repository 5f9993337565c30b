package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Modules
	NextModule string `yaml:"next_module"`
	PrevModule string `yaml:"prev_module"`
	NextRow    string `yaml:"next_row"`
	PrevRow    string `yaml:"prev_row"`

	// Data exchange
	Export string `yaml:"export"`
	Import string `yaml:"import"`
	Print  string `yaml:"print"`
	Sync   string `yaml:"sync"`

	// Notifications
	Notifications      string `yaml:"notifications"`
	MarkRead           string `yaml:"mark_read"`
	MarkAllRead        string `yaml:"mark_all_read"`
	DeleteNotification string `yaml:"delete_notification"`
	ClearNotifications string `yaml:"clear_notifications"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		NextModule: "l",
		PrevModule: "h",
		NextRow:    "j",
		PrevRow:    "k",

		Export: "e",
		Import: "i",
		Print:  "p",
		Sync:   "s",

		Notifications:      "n",
		MarkRead:           "enter",
		MarkAllRead:        "a",
		DeleteNotification: "d",
		ClearNotifications: "D",

		ShowHelp: "?",
		Quit:     "q",
	}
}
