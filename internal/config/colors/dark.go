package colors

// Dark returns a dark document variant of the farm theme
func Dark() *ColorScheme {
	return &ColorScheme{
		Preset: "dark",

		Primary:    "#81C784",
		Border:     "#37474F",
		Background: "#1C1C1C",
		Text:       "#D0D0D0",
		Muted:      "#808080",

		SelectedBg:  "#3A3A3A",
		TableHeader: "#81C784",

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
