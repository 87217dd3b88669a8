package export

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mahmoud/cv-studio/internal/rendering"
	"github.com/mahmoud/cv-studio/internal/types"
)

// previewSelector picks the block-level elements of the rendered templates in
// document order, without double-counting nested containers.
const previewSelector = "h1, h2, .label, .contact, p, .entry-head, .role, li, .keywords, .skill-group"

// PlainText renders the CV in the given theme and strips the result down to
// the text an ATS parser would extract, one block per line.
func PlainText(cv *types.CVData, theme rendering.Theme) (string, error) {
	html, err := rendering.Render(cv, theme)
	if err != nil {
		return "", &Error{Format: "text", Message: "failed to render theme", Cause: err}
	}
	return extractText(html)
}

func extractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", &Error{Format: "text", Message: "failed to parse rendered HTML", Cause: err}
	}

	var lines []string
	doc.Find(previewSelector).Each(func(_ int, s *goquery.Selection) {
		line := collapseWhitespace(s.Text())
		if line != "" {
			lines = append(lines, line)
		}
	})

	return strings.Join(lines, "\n"), nil
}

// collapseWhitespace trims a block and folds internal whitespace runs into
// single spaces, the way an ATS text extractor would.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
