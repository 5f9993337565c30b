package colors

// Default returns the default color scheme (green farm theme on light)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		// Document palette
		Primary:    "#2E7D32",
		Border:     "#C8E6C9",
		Background: "#FFFFFF",
		Text:       "#212121",
		Muted:      "#757575",

		// UI elements
		SelectedBg:  "#3A3A3A",
		TableHeader: "#2E7D32",

		// Notifications
		InfoFg:    "#00AFFF",
		InfoBg:    "#00005F",
		SuccessFg: "#5FD75F",
		SuccessBg: "#005F00",
		WarningFg: "#FFD700",
		WarningBg: "#875F00",
		ErrorFg:   "#FF5F5F",
		ErrorBg:   "#5F0000",
	}
}
