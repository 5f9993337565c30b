package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Primary:    "#000000",
		Border:     "#888888",
		Background: "#FFFFFF",
		Text:       "#000000",
		Muted:      "#666666",

		SelectedBg:  "#444444",
		TableHeader: "#000000",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#444444",
		SuccessFg: "#FFFFFF",
		SuccessBg: "#444444",
		WarningFg: "#000000",
		WarningBg: "#BBBBBB",
		ErrorFg:   "#FFFFFF",
		ErrorBg:   "#000000",
	}
}
