package export

import (
	"io"

	"baliance.com/gooxml/document"
	"baliance.com/gooxml/measurement"

	"github.com/mahmoud/cv-studio/internal/rendering"
	"github.com/mahmoud/cv-studio/internal/types"
)

// Font sizes used by the DOCX walker, in points.
const (
	docxNameSize    = 24
	docxLabelSize   = 14
	docxSectionSize = 16
	docxOrgSize     = 12
)

const bulletPrefix = "• "

// DOCX walks the CV snapshot into a Word document and writes it to w.
func DOCX(cv *types.CVData, w io.Writer) error {
	doc := buildDOCX(cv)
	if err := doc.Save(w); err != nil {
		return &Error{Format: "docx", Message: "failed to write document", Cause: err}
	}
	return nil
}

// buildDOCX maps the document model (headings, paragraphs, bullet runs) onto
// a Word document, in the same section order as the visual templates.
func buildDOCX(cv *types.CVData) *document.Document {
	doc := document.New()

	addHeading(doc, cv.Basics.Name, docxNameSize)
	addHeading(doc, cv.Basics.Label, docxLabelSize)
	addContactLine(doc, &cv.Basics)

	if cv.Basics.Summary != "" {
		para := doc.AddParagraph()
		para.AddRun().AddText(cv.Basics.Summary)
	}

	if len(cv.Work) > 0 {
		addHeading(doc, "Work Experience", docxSectionSize)
		for _, job := range cv.Work {
			addHeading(doc, job.Company, docxOrgSize)

			para := doc.AddParagraph()
			role := para.AddRun()
			role.AddText(job.Position)
			role.Properties().SetBold(true)
			para.AddRun().AddText(" • " + rendering.DateRange(job.StartDate, job.EndDate))

			for _, highlight := range job.Highlights {
				bullet := doc.AddParagraph()
				bullet.AddRun().AddText(bulletPrefix + highlight)
			}
		}
	}

	if len(cv.Education) > 0 {
		addHeading(doc, "Education", docxSectionSize)
		for _, edu := range cv.Education {
			addHeading(doc, edu.Institution, docxOrgSize)

			para := doc.AddParagraph()
			degree := para.AddRun()
			degree.AddText(edu.StudyType + " " + edu.Area)
			degree.Properties().SetBold(true)
			para.AddRun().AddText(" • " + rendering.DateRange(edu.StartDate, edu.EndDate))

			if edu.Description != "" {
				desc := doc.AddParagraph()
				desc.AddRun().AddText(edu.Description)
			}
		}
	}

	if len(cv.Skills) > 0 {
		addHeading(doc, "Skills", docxSectionSize)
		for _, group := range cv.Skills {
			addHeading(doc, group.Name, docxOrgSize)
			para := doc.AddParagraph()
			para.AddRun().AddText(joinKeywords(group.Keywords))
		}
	}

	if len(cv.Projects) > 0 {
		addHeading(doc, "Projects", docxSectionSize)
		for _, project := range cv.Projects {
			addHeading(doc, project.Name, docxOrgSize)
			if project.Description != "" {
				para := doc.AddParagraph()
				para.AddRun().AddText(project.Description)
			}
			for _, highlight := range project.Highlights {
				bullet := doc.AddParagraph()
				bullet.AddRun().AddText(bulletPrefix + highlight)
			}
		}
	}

	if len(cv.Certificates) > 0 {
		addHeading(doc, "Certificates", docxSectionSize)
		for _, cert := range cv.Certificates {
			para := doc.AddParagraph()
			name := para.AddRun()
			name.AddText(cert.Name)
			name.Properties().SetBold(true)
			para.AddRun().AddText(" • " + cert.Issuer + " • " + cert.Date)
		}
	}

	return doc
}

func addHeading(doc *document.Document, text string, sizePoints float64) {
	if text == "" {
		return
	}
	para := doc.AddParagraph()
	run := para.AddRun()
	run.AddText(text)
	run.Properties().SetBold(true)
	run.Properties().SetSize(measurement.Distance(sizePoints) * measurement.Point)
}

func addContactLine(doc *document.Document, b *types.Basics) {
	parts := make([]string, 0, 3)
	if b.Email != "" {
		parts = append(parts, b.Email)
	}
	if b.Phone != "" {
		parts = append(parts, b.Phone)
	}
	if b.Location.City != "" {
		place := b.Location.City
		if b.Location.Region != "" {
			place += ", " + b.Location.Region
		}
		parts = append(parts, place)
	}
	if len(parts) == 0 {
		return
	}

	para := doc.AddParagraph()
	for i, part := range parts {
		if i > 0 {
			para.AddRun().AddText(" • ")
		}
		para.AddRun().AddText(part)
	}
}

func joinKeywords(keywords []string) string {
	out := ""
	for i, kw := range keywords {
		if i > 0 {
			out += ", "
		}
		out += kw
	}
	return out
}
