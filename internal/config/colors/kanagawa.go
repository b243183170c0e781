package colors

// kanagawa wave palette
const (
	sumiInk1     = "#1F1F28"
	sumiInk4     = "#54546D"
	waveBlue1    = "#223249"
	oniViolet    = "#957FB8"
	crystalBlue  = "#7E9CD8"
	springGreen  = "#98BB6C"
	peachRed     = "#FF5D62"
	waveAqua2    = "#7AA89F"
	fujiGray     = "#727169"
	fujiWhite    = "#DCD7BA"
	carpYellow   = "#E6C384"
	winterBlue   = "#252535"
	winterYellow = "#49443C"
	winterRed    = "#43242B"
	samuraiRed   = "#E82424"
	roninYellow  = "#FF9E3B"
	dragonBlue   = "#658594"
)

// Kanagawa returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Kanagawa() *ColorScheme {
	return &ColorScheme{
		Preset: "kanagawa",

		Accent:     oniViolet,
		Background: sumiInk1,

		Create: springGreen,
		Edit:   crystalBlue,
		Delete: peachRed,

		Border:         sumiInk4,
		SelectedBorder: waveAqua2,
		SelectedBg:     waveBlue1,

		Title:  crystalBlue,
		Subtle: fujiGray,
		Normal: fujiWhite,

		StatusTodo:       fujiGray,
		StatusInProgress: crystalBlue,
		StatusInReview:   carpYellow,
		StatusDone:       springGreen,

		InfoFg:    dragonBlue,
		InfoBg:    winterBlue,
		WarningFg: roninYellow,
		WarningBg: winterYellow,
		ErrorFg:   samuraiRed,
		ErrorBg:   winterRed,

		StatusBarBg:   oniViolet,
		StatusBarText: fujiWhite,
	}
}
