package discovery

import "strings"

// Keyword sets used to classify a scheme's coarse target type. A scheme is
// "of type X" when any keyword from X's set appears, case-insensitively, in
// its target-audience, eligibility text, or name.
var (
	studentKeywords = []string{
		"student", "education", "internship", "youth", "scholarship",
		"university", "college", "degree", "school",
	}
	farmerKeywords = []string{
		"farmer", "agriculture", "crop", "land", "rural", "kisan",
		"harvest", "tractor", "seed", "fertilizer",
	}
)

// classifierText concatenates the scheme fields used for keyword typing.
func classifierText(s schemeText) string {
	return strings.ToLower(s.TargetAudience + " " + s.EligibilityText + " " + s.Name)
}

// schemeText is the minimal view of a scheme needed for keyword typing.
type schemeText struct {
	TargetAudience  string
	EligibilityText string
	Name            string
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
