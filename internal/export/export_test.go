package export

import (
	"strings"
	"testing"

	"baliance.com/gooxml/document"

	"github.com/mahmoud/cv-studio/internal/rendering"
	"github.com/mahmoud/cv-studio/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// docxText flattens a built document to plain text, one paragraph per line.
func docxText(t *testing.T, doc *document.Document) string {
	t.Helper()

	var text strings.Builder
	for _, para := range doc.Paragraphs() {
		for _, run := range para.Runs() {
			text.WriteString(run.Text())
		}
		text.WriteString("\n")
	}
	return text.String()
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		ext   string
		want  string
	}{
		{"spaces become dashes", "Mahmoud Khashaba", "pdf", "Mahmoud-Khashaba-CV.pdf"},
		{"multiple spaces collapse", "Ada   Lovelace ", "docx", "Ada-Lovelace-CV.docx"},
		{"empty falls back", "", "pdf", "cv-CV.pdf"},
		{"whitespace only falls back", "   ", "docx", "cv-CV.docx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filename(tt.input, tt.ext))
		})
	}
}

func TestBuildDOCX_SectionOrder(t *testing.T) {
	cv := types.DefaultCV()
	content := docxText(t, buildDOCX(cv))

	assert.Contains(t, content, cv.Basics.Name)
	assert.Contains(t, content, cv.Basics.Summary)
	assert.Contains(t, content, bulletPrefix+cv.Work[0].Highlights[0])

	// Sections appear in template order.
	workIdx := strings.Index(content, "Work Experience")
	eduIdx := strings.Index(content, "Education")
	skillsIdx := strings.Index(content, "Skills")
	projectsIdx := strings.Index(content, "Projects")
	require.NotEqual(t, -1, workIdx)
	assert.Less(t, workIdx, eduIdx)
	assert.Less(t, eduIdx, skillsIdx)
	assert.Less(t, skillsIdx, projectsIdx)
}

func TestBuildDOCX_SkipsEmptySections(t *testing.T) {
	content := docxText(t, buildDOCX(&types.CVData{Basics: types.Basics{Name: "Just A Name"}}))

	assert.NotContains(t, content, "Work Experience")
	assert.NotContains(t, content, "Skills")
}

func TestBuildDOCX_ContactLineOmitsEmptyRegion(t *testing.T) {
	cv := &types.CVData{Basics: types.Basics{
		Name:     "Just A Name",
		Email:    "name@example.com",
		Location: types.Location{City: "Cairo"},
	}}

	content := docxText(t, buildDOCX(cv))

	assert.Contains(t, content, "Cairo")
	assert.NotContains(t, content, "Cairo, ")

	cv.Basics.Location.Region = "Cairo Governorate"
	assert.Contains(t, docxText(t, buildDOCX(cv)), "Cairo, Cairo Governorate")
}

func TestPlainText(t *testing.T) {
	cv := types.DefaultCV()

	text, err := PlainText(cv, rendering.ThemeChatGPTLight)
	require.NoError(t, err)

	assert.Contains(t, text, cv.Basics.Name)
	assert.Contains(t, text, cv.Work[0].Highlights[0])
	assert.Contains(t, text, cv.Education[0].Institution)
	// No markup survives extraction.
	assert.NotContains(t, text, "<")
	assert.NotContains(t, text, "{{")
}

func TestPlainText_UnknownTheme(t *testing.T) {
	_, err := PlainText(types.DefaultCV(), rendering.Theme("nope"))

	var exportErr *Error
	require.ErrorAs(t, err, &exportErr)
	assert.Equal(t, "text", exportErr.Format)
}
