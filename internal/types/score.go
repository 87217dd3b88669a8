package types

// ScoreResult is the outcome of an ATS compatibility scoring pass. It is
// ephemeral: recomputed from scratch on every document change, never stored.
type ScoreResult struct {
	Score    int      `json:"score"`
	Feedback []string `json:"feedback"`
}

// Qualitative score labels shown next to the numeric score.
const (
	LabelExcellent        = "Excellent"
	LabelGood             = "Good"
	LabelFair             = "Fair"
	LabelNeedsImprovement = "Needs improvement"
)

// ScoreLabel maps a 0-100 score to its qualitative label.
func ScoreLabel(score int) string {
	switch {
	case score >= 85:
		return LabelExcellent
	case score >= 70:
		return LabelGood
	case score >= 50:
		return LabelFair
	default:
		return LabelNeedsImprovement
	}
}
