package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		ContainerBorder: "#808080",
		SelectedBorder:  "#FFFFFF",
		EmptyRow:        "#444444",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		InfoFg:  "#FFFFFF",
		ErrorFg: "#FFFFFF",
	}
}
