// Package scoring computes the heuristic ATS compatibility score for a CV.
package scoring

import (
	"math"
	"regexp"
	"unicode/utf16"

	"github.com/mahmoud/cv-studio/internal/types"
)

// Point values per category. A category's max only enters the denominator
// when it applies; see Score for the per-section rules.
const (
	namePoints      = 10
	emailPoints     = 10
	phonePoints     = 5
	locationPoints  = 5
	summaryPoints   = 15
	workPoints      = 30
	skillsPoints    = 15
	educationPoints = 10
	projectsPoints  = 10
)

// Summary length bounds in characters.
const (
	summaryMinLen = 50
	summaryMaxLen = 1000
)

// actionVerbRe matches highlights that open with a strong action verb.
var actionVerbRe = regexp.MustCompile(`^(?i:Led|Developed|Created|Managed|Implemented|Achieved|Reduced|Increased|Improved|Built|Designed|Launched|Collaborated|Executed|Generated|Optimized|Produced|Resolved|Streamlined|Transformed)`)

// resultsRe matches highlights that mention a measurable outcome.
var resultsRe = regexp.MustCompile(`(?i:increased|decreased|reduced|improved|grew|achieved|gained|saved|delivered|generated|resulted|succeeded)`)

// Score evaluates a CV against the ATS heuristics and returns a 0-100 score
// with at most five prioritized feedback strings. It is a pure function: it
// never fails, never mutates its input, and degrades the score instead of
// erroring on missing fields.
func Score(cv *types.CVData) types.ScoreResult {
	var fb feedbackList
	earned := 0
	maxPoints := 0

	earned += scoreBasics(&cv.Basics, &fb)
	maxPoints += namePoints + emailPoints + phonePoints + locationPoints + summaryPoints

	earned += scoreWork(cv.Work, &fb)
	maxPoints += workPoints

	earned += scoreSkills(cv, &fb)
	maxPoints += skillsPoints

	earned += scoreEducation(cv.Education, &fb)
	maxPoints += educationPoints

	// Projects are the only optional category: an absent or empty section
	// adds nothing to the denominator.
	if len(cv.Projects) > 0 {
		earned += scoreProjects(cv.Projects, &fb)
		maxPoints += projectsPoints
	}

	score := 0
	if maxPoints > 0 {
		score = int(math.Round(100 * float64(earned) / float64(maxPoints)))
	}

	return types.ScoreResult{
		Score:    score,
		Feedback: fb.top(maxFeedbackItems),
	}
}

func scoreBasics(b *types.Basics, fb *feedbackList) int {
	earned := 0

	if trimmed(b.Name) {
		earned += namePoints
	} else {
		fb.add(msgAddName, priorityContact)
	}

	if containsAt(b.Email) {
		earned += emailPoints
	} else {
		fb.add(msgAddEmail, priorityContact)
	}

	if trimmed(b.Phone) {
		earned += phonePoints
	} else {
		fb.add(msgAddPhone, priorityDefault)
	}

	if b.Location.City != "" {
		earned += locationPoints
	} else {
		fb.add(msgAddLocation, priorityDefault)
	}

	switch {
	case b.Summary == "":
		fb.add(msgAddSummary, prioritySummary)
	case charLen(b.Summary) < summaryMinLen:
		fb.add(msgExpandSummary, prioritySummary)
	case charLen(b.Summary) > summaryMaxLen:
		earned += 10
		fb.add(msgShortenSummary, prioritySummary)
	default:
		earned += summaryPoints
	}

	return earned
}

func scoreWork(work []types.Work, fb *feedbackList) int {
	if len(work) == 0 {
		fb.add(msgAddWork, priorityWork)
		return 0
	}

	earned := 0
	if len(work) >= 2 {
		earned += 10
	} else {
		earned += 5
		fb.add(msgMoreWork, priorityWork)
	}

	goodDescriptions := true
	actionVerbs := true
	results := true
	dates := true

	for _, job := range work {
		if job.StartDate == "" || job.EndDate == "" {
			dates = false
		}

		if len(job.Highlights) == 0 {
			// A job with no bullets only falsifies the description check;
			// the verb and result ratios are left to the jobs that have them.
			goodDescriptions = false
			continue
		}

		verbCount := 0
		resultsCount := 0
		for _, highlight := range job.Highlights {
			if actionVerbRe.MatchString(highlight) {
				verbCount++
			}
			if resultsRe.MatchString(highlight) {
				resultsCount++
			}
			if charLen(highlight) < 20 {
				goodDescriptions = false
			}
		}

		if float64(verbCount) < float64(len(job.Highlights))/2 {
			actionVerbs = false
		}
		if float64(resultsCount) < float64(len(job.Highlights))/3 {
			results = false
		}
	}

	if goodDescriptions {
		earned += 5
	} else {
		fb.add(msgExpandDescriptions, priorityDefault)
	}
	if actionVerbs {
		earned += 5
	} else {
		fb.add(msgActionVerbs, priorityHighlights)
	}
	if results {
		earned += 5
	} else {
		fb.add(msgMeasurableResults, priorityHighlights)
	}
	if dates {
		earned += 5
	} else {
		fb.add(msgWorkDates, priorityDates)
	}

	return earned
}

func scoreSkills(cv *types.CVData, fb *feedbackList) int {
	if len(cv.Skills) == 0 {
		fb.add(msgAddSkills, prioritySkills)
		return 0
	}

	switch total := cv.TotalSkillKeywords(); {
	case total > 15:
		return skillsPoints
	case total > 8:
		fb.add(msgMoreSkills, prioritySkills)
		return 10
	case total > 4:
		fb.add(msgMoreSkills, prioritySkills)
		return 5
	default:
		fb.add(msgMoreSkills, prioritySkills)
		return 0
	}
}

func scoreEducation(education []types.Education, fb *feedbackList) int {
	if len(education) == 0 {
		fb.add(msgAddEducation, priorityEducation)
		return 0
	}

	for _, edu := range education {
		if edu.Institution == "" || edu.Area == "" || edu.StudyType == "" ||
			edu.StartDate == "" || edu.EndDate == "" {
			fb.add(msgCompleteEducation, priorityEducation)
			return 5
		}
	}
	return educationPoints
}

func scoreProjects(projects []types.Project, fb *feedbackList) int {
	for _, p := range projects {
		if p.Name == "" || charLen(p.Description) < 30 || len(p.Keywords) < 2 {
			fb.add(msgEnhanceProjects, priorityProjects)
			return 5
		}
	}
	return projectsPoints
}

// charLen counts UTF-16 code units. Byte or rune counts band non-ASCII text
// differently near the length thresholds.
func charLen(s string) int {
	return len(utf16.Encode([]rune(s)))
}

func trimmed(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return true
		}
	}
	return false
}

func containsAt(s string) bool {
	for _, r := range s {
		if r == '@' {
			return true
		}
	}
	return false
}
