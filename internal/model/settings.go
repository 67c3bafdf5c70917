package model

// AppSettings holds the display preferences. They are global: not
// partitioned by user.
type AppSettings struct {
	ShowCultural      bool `json:"showCultural"`
	ShowPsychological bool `json:"showPsychological"`
}

// DefaultSettings shows every perspective.
func DefaultSettings() AppSettings {
	return AppSettings{ShowCultural: true, ShowPsychological: true}
}

// Theme is the colour scheme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"

	DefaultTheme = ThemeDark
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}
