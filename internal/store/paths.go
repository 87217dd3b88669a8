package store

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mahmoud/cv-studio/internal/types"
)

// PathError reports a field path that does not resolve to an editable leaf.
type PathError struct {
	Path    []string
	Message string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("invalid field path %q: %s", strings.Join(e.Path, "."), e.Message)
}

// resolve walks a field path to the *string leaf it addresses. Every editable
// text field of the document has an explicit accessor here; there is no
// reflection, so a typo in a path is an error rather than a silent no-op.
func resolve(cv *types.CVData, path []string) (*string, error) {
	if len(path) < 2 {
		return nil, &PathError{Path: path, Message: "path too short"}
	}

	switch path[0] {
	case "basics":
		return resolveBasics(&cv.Basics, path)
	case "work":
		i, err := entry(path, len(cv.Work))
		if err != nil {
			return nil, err
		}
		return resolveWork(&cv.Work[i], path)
	case "education":
		i, err := entry(path, len(cv.Education))
		if err != nil {
			return nil, err
		}
		return resolveEducation(&cv.Education[i], path)
	case "skills":
		i, err := entry(path, len(cv.Skills))
		if err != nil {
			return nil, err
		}
		return resolveSkillGroup(&cv.Skills[i], path)
	case "projects":
		i, err := entry(path, len(cv.Projects))
		if err != nil {
			return nil, err
		}
		return resolveProject(&cv.Projects[i], path)
	case "certificates":
		i, err := entry(path, len(cv.Certificates))
		if err != nil {
			return nil, err
		}
		return resolveCertificate(&cv.Certificates[i], path)
	default:
		return nil, &PathError{Path: path, Message: "unknown section " + path[0]}
	}
}

// entry resolves the list index at path[1] for a top-level entry list and
// requires a field name after it, so the per-section resolvers can read
// path[2] unconditionally.
func entry(path []string, length int) (int, error) {
	i, err := index(path, 1, length)
	if err != nil {
		return 0, err
	}
	if len(path) < 3 {
		return 0, &PathError{Path: path, Message: "entry needs a field name"}
	}
	return i, nil
}

func resolveBasics(b *types.Basics, path []string) (*string, error) {
	switch path[1] {
	case "name":
		return leaf(&b.Name, path, 2)
	case "label":
		return leaf(&b.Label, path, 2)
	case "email":
		return leaf(&b.Email, path, 2)
	case "phone":
		return leaf(&b.Phone, path, 2)
	case "url":
		return leaf(&b.URL, path, 2)
	case "summary":
		return leaf(&b.Summary, path, 2)
	case "location":
		if len(path) != 3 {
			return nil, &PathError{Path: path, Message: "location needs a sub-field"}
		}
		switch path[2] {
		case "address":
			return &b.Location.Address, nil
		case "postalCode":
			return &b.Location.PostalCode, nil
		case "city":
			return &b.Location.City, nil
		case "region":
			return &b.Location.Region, nil
		case "countryCode":
			return &b.Location.CountryCode, nil
		default:
			return nil, &PathError{Path: path, Message: "unknown location field " + path[2]}
		}
	case "profiles":
		i, err := index(path, 2, len(b.Profiles))
		if err != nil {
			return nil, err
		}
		if len(path) != 4 {
			return nil, &PathError{Path: path, Message: "profile needs a sub-field"}
		}
		switch path[3] {
		case "network":
			return &b.Profiles[i].Network, nil
		case "username":
			return &b.Profiles[i].Username, nil
		case "url":
			return &b.Profiles[i].URL, nil
		default:
			return nil, &PathError{Path: path, Message: "unknown profile field " + path[3]}
		}
	default:
		return nil, &PathError{Path: path, Message: "unknown basics field " + path[1]}
	}
}

func resolveWork(w *types.Work, path []string) (*string, error) {
	switch path[2] {
	case "company":
		return leaf(&w.Company, path, 3)
	case "position":
		return leaf(&w.Position, path, 3)
	case "website":
		return leaf(&w.Website, path, 3)
	case "startDate":
		return leaf(&w.StartDate, path, 3)
	case "endDate":
		return leaf(&w.EndDate, path, 3)
	case "highlights":
		i, err := index(path, 3, len(w.Highlights))
		if err != nil {
			return nil, err
		}
		return leaf(&w.Highlights[i], path, 4)
	case "keywords":
		i, err := index(path, 3, len(w.Keywords))
		if err != nil {
			return nil, err
		}
		return leaf(&w.Keywords[i], path, 4)
	default:
		return nil, &PathError{Path: path, Message: "unknown work field " + path[2]}
	}
}

func resolveEducation(e *types.Education, path []string) (*string, error) {
	switch path[2] {
	case "institution":
		return leaf(&e.Institution, path, 3)
	case "area":
		return leaf(&e.Area, path, 3)
	case "studyType":
		return leaf(&e.StudyType, path, 3)
	case "startDate":
		return leaf(&e.StartDate, path, 3)
	case "endDate":
		return leaf(&e.EndDate, path, 3)
	case "gpa":
		return leaf(&e.GPA, path, 3)
	case "description":
		return leaf(&e.Description, path, 3)
	default:
		return nil, &PathError{Path: path, Message: "unknown education field " + path[2]}
	}
}

func resolveSkillGroup(s *types.SkillGroup, path []string) (*string, error) {
	switch path[2] {
	case "name":
		return leaf(&s.Name, path, 3)
	case "level":
		return leaf(&s.Level, path, 3)
	case "keywords":
		i, err := index(path, 3, len(s.Keywords))
		if err != nil {
			return nil, err
		}
		return leaf(&s.Keywords[i], path, 4)
	default:
		return nil, &PathError{Path: path, Message: "unknown skills field " + path[2]}
	}
}

func resolveProject(p *types.Project, path []string) (*string, error) {
	switch path[2] {
	case "name":
		return leaf(&p.Name, path, 3)
	case "description":
		return leaf(&p.Description, path, 3)
	case "url":
		return leaf(&p.URL, path, 3)
	case "highlights":
		i, err := index(path, 3, len(p.Highlights))
		if err != nil {
			return nil, err
		}
		return leaf(&p.Highlights[i], path, 4)
	case "keywords":
		i, err := index(path, 3, len(p.Keywords))
		if err != nil {
			return nil, err
		}
		return leaf(&p.Keywords[i], path, 4)
	default:
		return nil, &PathError{Path: path, Message: "unknown projects field " + path[2]}
	}
}

func resolveCertificate(c *types.Certificate, path []string) (*string, error) {
	switch path[2] {
	case "name":
		return leaf(&c.Name, path, 3)
	case "date":
		return leaf(&c.Date, path, 3)
	case "issuer":
		return leaf(&c.Issuer, path, 3)
	case "url":
		return leaf(&c.URL, path, 3)
	default:
		return nil, &PathError{Path: path, Message: "unknown certificates field " + path[2]}
	}
}

// leaf returns ptr if the path ends exactly at wantLen segments.
func leaf(ptr *string, path []string, wantLen int) (*string, error) {
	if len(path) != wantLen {
		return nil, &PathError{Path: path, Message: "path does not end at a text field"}
	}
	return ptr, nil
}

// index parses path[pos] as a list index and bounds-checks it.
func index(path []string, pos, length int) (int, error) {
	if len(path) <= pos {
		return 0, &PathError{Path: path, Message: "missing list index"}
	}
	i, err := strconv.Atoi(path[pos])
	if err != nil {
		return 0, &PathError{Path: path, Message: "list index is not a number: " + path[pos]}
	}
	if i < 0 || i >= length {
		return 0, &PathError{Path: path, Message: fmt.Sprintf("list index %d out of range (len %d)", i, length)}
	}
	return i, nil
}
