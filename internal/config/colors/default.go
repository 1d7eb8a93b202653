package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		ContainerBorder: "#5F87D7",
		SelectedBorder:  "#D75FD7",
		EmptyRow:        "#3A3A3A",

		Title:  "#D75FD7",
		Subtle: "#585858",
		Normal: "#D0D0D0",

		InfoFg:  "#00AFFF",
		ErrorFg: "#FF5F5F",
	}
}
