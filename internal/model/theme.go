package model

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Opposite maps dark to light and everything else, including unset, to dark.
func (t Theme) Opposite() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeFromSignal converts a "prefers dark" signal into a theme.
func ThemeFromSignal(prefersDark bool) Theme {
	if prefersDark {
		return ThemeDark
	}
	return ThemeLight
}
