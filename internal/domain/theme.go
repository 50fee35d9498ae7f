package domain

// Theme is the persisted colour scheme preference
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeSepia Theme = "sepia"
)

// Themes lists the cycle order
var Themes = []Theme{ThemeDark, ThemeLight, ThemeSepia}

// ThemePreferenceKey is the storage key of the theme preference
const ThemePreferenceKey = "sf-theme"

// ParseTheme returns the theme named s and whether s was a known theme.
// Unknown names fall back to dark.
func ParseTheme(s string) (Theme, bool) {
	for _, t := range Themes {
		if string(t) == s {
			return t, true
		}
	}
	return ThemeDark, false
}

// Next returns the following theme in the cycle
func (t Theme) Next() Theme {
	for i, candidate := range Themes {
		if candidate == t {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}
