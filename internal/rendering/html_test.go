package rendering

import (
	"html/template"
	"testing"

	"github.com/mahmoud/cv-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_AllThemesContainDocumentContent(t *testing.T) {
	cv := types.DefaultCV()

	for _, info := range Themes() {
		t.Run(string(info.Name), func(t *testing.T) {
			html, err := Render(cv, info.Name)
			require.NoError(t, err)

			// Source fields may contain characters the renderer escapes
			// (apostrophes in highlights), so compare escaped forms.
			for _, want := range []string{
				cv.Basics.Name,
				cv.Basics.Email,
				cv.Work[0].Company,
				cv.Work[0].Highlights[0],
				cv.Education[0].Institution,
				cv.Skills[0].Name,
				cv.Projects[0].Name,
			} {
				assert.Contains(t, html, template.HTMLEscapeString(want))
			}
		})
	}
}

func TestRender_UnknownTheme(t *testing.T) {
	_, err := Render(types.DefaultCV(), Theme("neonBrutalist"))

	var unknownErr *UnknownThemeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, Theme("neonBrutalist"), unknownErr.Theme)
}

func TestRender_EscapesUserContent(t *testing.T) {
	cv := types.DefaultCV()
	cv.Basics.Name = `<script>alert("x")</script>`

	html, err := Render(cv, ThemeChatGPTLight)

	require.NoError(t, err)
	assert.NotContains(t, html, `<script>alert`)
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Theme
		wantErr bool
	}{
		{"empty defaults", "", DefaultTheme, false},
		{"gemini dark", "geminiDark", ThemeGeminiDark, false},
		{"chatgpt light", "chatGPTLight", ThemeChatGPTLight, false},
		{"unknown", "corporateBlue", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := ParseTheme(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, theme)
		})
	}
}

func TestDateRange(t *testing.T) {
	assert.Equal(t, "01/2020 - 04/2022", DateRange("01/2020", "04/2022"))
	assert.Equal(t, "01/2020 - Present", DateRange("01/2020", ""))
	assert.Equal(t, "01/2020 - Present", DateRange("01/2020", "Present"))
	assert.Equal(t, "", DateRange("", ""))
}
