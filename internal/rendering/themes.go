// Package rendering maps a CV document onto the named visual themes.
package rendering

import "fmt"

// Theme identifies one of the built-in visual templates.
type Theme string

// The fixed set of themes.
const (
	ThemeGeminiDark   Theme = "geminiDark"
	ThemeChatGPTLight Theme = "chatGPTLight"
)

// DefaultTheme is used when the caller does not pick one.
const DefaultTheme = ThemeGeminiDark

// ATSNotes documents how well a theme survives automated resume parsing.
type ATSNotes struct {
	Score int      `json:"score"`
	Pros  []string `json:"pros"`
	Cons  []string `json:"cons"`
}

// ThemeInfo pairs a theme name with its ATS compatibility notes.
type ThemeInfo struct {
	Name  Theme    `json:"name"`
	Notes ATSNotes `json:"notes"`
}

var themeNotes = map[Theme]ATSNotes{
	ThemeGeminiDark: {
		Score: 85,
		Pros: []string{
			"Clean, modern design",
			"Good content hierarchy",
			"Readable typography",
			"Proper section separation",
		},
		Cons: []string{
			"Dark theme may not print well without adjustments",
			"Some ATS systems may struggle with gradient text",
		},
	},
	ThemeChatGPTLight: {
		Score: 92,
		Pros: []string{
			"Simple, traditional layout",
			"High text contrast",
			"Print-friendly design",
			"Standard section formatting",
		},
		Cons: []string{
			"Less visual emphasis on section headers",
		},
	},
}

// UnknownThemeError reports a theme name outside the fixed set.
type UnknownThemeError struct {
	Theme Theme
}

func (e *UnknownThemeError) Error() string {
	return fmt.Sprintf("unknown theme: %q", string(e.Theme))
}

// ParseTheme validates a user-supplied theme name. An empty name selects the
// default theme.
func ParseTheme(name string) (Theme, error) {
	if name == "" {
		return DefaultTheme, nil
	}
	theme := Theme(name)
	if _, ok := themeNotes[theme]; !ok {
		return "", &UnknownThemeError{Theme: theme}
	}
	return theme, nil
}

// Themes lists every theme with its ATS notes, in a stable order.
func Themes() []ThemeInfo {
	return []ThemeInfo{
		{Name: ThemeGeminiDark, Notes: themeNotes[ThemeGeminiDark]},
		{Name: ThemeChatGPTLight, Notes: themeNotes[ThemeChatGPTLight]},
	}
}
