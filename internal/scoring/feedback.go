package scoring

import "sort"

// maxFeedbackItems caps the feedback returned to the caller.
const maxFeedbackItems = 5

// Feedback priorities. Each feedback message carries its priority from the
// moment it is generated, so ranking never depends on the message wording.
const (
	priorityContact    = 10 // missing name or email
	priorityWork       = 9  // missing or thin work history
	priorityHighlights = 8  // weak action verbs or no measurable results
	prioritySkills     = 7
	prioritySummary    = 6
	priorityEducation  = 5
	priorityProjects   = 4
	priorityDates      = 3
	priorityDefault    = 1
)

// Feedback messages, one per failed check.
const (
	msgAddName            = "Add your full name"
	msgAddEmail           = "Include a valid email address"
	msgAddPhone           = "Add your phone number"
	msgAddLocation        = "Include your location (city/region)"
	msgAddSummary         = "Add a professional summary"
	msgExpandSummary      = "Expand your professional summary (aim for 3-5 sentences)"
	msgShortenSummary     = "Shorten your summary to be more concise (aim for 3-5 sentences)"
	msgAddWork            = "Add work experience"
	msgMoreWork           = "Include at least 2 work experiences if possible"
	msgExpandDescriptions = "Expand your job descriptions with more details"
	msgActionVerbs        = "Begin achievement bullets with strong action verbs"
	msgMeasurableResults  = "Include measurable results in your job descriptions"
	msgWorkDates          = "Include clear start and end dates for all positions"
	msgAddSkills          = "Add relevant skills"
	msgMoreSkills         = "Add more relevant skills (aim for 15+ skills total)"
	msgAddEducation       = "Add education details"
	msgCompleteEducation  = "Complete all education fields (institution, degree, dates)"
	msgEnhanceProjects    = "Enhance project descriptions and include tech stack for each project"
)

type feedbackItem struct {
	text     string
	priority int
}

// feedbackList accumulates feedback in generation order.
type feedbackList struct {
	items []feedbackItem
}

func (l *feedbackList) add(text string, priority int) {
	l.items = append(l.items, feedbackItem{text: text, priority: priority})
}

// top returns the n highest-priority messages. Ties keep generation order.
func (l *feedbackList) top(n int) []string {
	sorted := make([]feedbackItem, len(l.items))
	copy(sorted, l.items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].priority > sorted[j].priority
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}

	out := make([]string, 0, len(sorted))
	for _, item := range sorted {
		out = append(out, item.text)
	}
	return out
}
