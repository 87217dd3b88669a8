// Package types provides type definitions for the CV documents handled by cv-studio.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CVData is the canonical in-memory representation of a CV. It is the single
// document owned by the store; every other component reads snapshots of it.
type CVData struct {
	Basics       Basics        `json:"basics"`
	Work         []Work        `json:"work"`
	Education    []Education   `json:"education"`
	Skills       []SkillGroup  `json:"skills"`
	Projects     []Project     `json:"projects,omitempty"`
	Certificates []Certificate `json:"certificates,omitempty"`
}

// Basics holds the contact block and professional summary.
type Basics struct {
	Name     string    `json:"name"`
	Label    string    `json:"label"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	URL      string    `json:"url"`
	Summary  string    `json:"summary"`
	Location Location  `json:"location"`
	Profiles []Profile `json:"profiles"`
}

// Location is the physical location block under basics.
type Location struct {
	Address     string `json:"address"`
	PostalCode  string `json:"postalCode"`
	City        string `json:"city"`
	Region      string `json:"region"`
	CountryCode string `json:"countryCode"`
}

// Profile is a social/professional network profile link.
type Profile struct {
	Network  string `json:"network"`
	Username string `json:"username"`
	URL      string `json:"url"`
}

// Work is a single work history entry. An empty EndDate or the literal
// "Present" marks a current position.
type Work struct {
	Company    string   `json:"company"`
	Position   string   `json:"position"`
	Website    string   `json:"website"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate,omitempty"`
	Highlights []string `json:"highlights"`
	Keywords   []string `json:"keywords,omitempty"`
}

// Education is a single education entry.
type Education struct {
	Institution string `json:"institution"`
	Area        string `json:"area"`
	StudyType   string `json:"studyType"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

// SkillGroup is a named skill category with its proficiency level and keywords.
type SkillGroup struct {
	Name     string   `json:"name"`
	Level    string   `json:"level"`
	Keywords []string `json:"keywords"`
}

// Project is an optional portfolio project entry.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
	URL         string   `json:"url,omitempty"`
}

// Certificate is an optional certification entry.
type Certificate struct {
	Name   string `json:"name"`
	Date   string `json:"date"`
	Issuer string `json:"issuer"`
	URL    string `json:"url,omitempty"`
}

// Clone returns a deep copy of the CVData. Exporters and the store hand out
// clones so concurrent edits can never tear a document mid-read.
func (cv *CVData) Clone() *CVData {
	out := *cv

	out.Basics.Profiles = append([]Profile(nil), cv.Basics.Profiles...)

	out.Work = make([]Work, len(cv.Work))
	for i, w := range cv.Work {
		w.Highlights = append([]string(nil), w.Highlights...)
		w.Keywords = append([]string(nil), w.Keywords...)
		out.Work[i] = w
	}

	out.Education = append([]Education(nil), cv.Education...)

	out.Skills = make([]SkillGroup, len(cv.Skills))
	for i, s := range cv.Skills {
		s.Keywords = append([]string(nil), s.Keywords...)
		out.Skills[i] = s
	}

	if cv.Projects != nil {
		out.Projects = make([]Project, len(cv.Projects))
		for i, p := range cv.Projects {
			p.Highlights = append([]string(nil), p.Highlights...)
			p.Keywords = append([]string(nil), p.Keywords...)
			out.Projects[i] = p
		}
	}

	if cv.Certificates != nil {
		out.Certificates = append([]Certificate(nil), cv.Certificates...)
	}

	return &out
}

// TotalSkillKeywords counts keywords across all skill groups.
func (cv *CVData) TotalSkillKeywords() int {
	total := 0
	for _, group := range cv.Skills {
		total += len(group.Keywords)
	}
	return total
}
