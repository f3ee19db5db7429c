package eligibility

import (
	"math"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

// DefaultConfidence is used when no external refinement signal is available.
const DefaultConfidence = 0.5

// Aggregate combines per-rule verdicts and the document gap into one overall
// status. Decision order, first match wins:
//  1. any failed mandatory rule (weight >= 1.0) -> NOT_ELIGIBLE
//  2. any conditional rule or missing required document -> CONDITIONALLY_ELIGIBLE
//  3. at least one pass and no failures -> ELIGIBLE
//  4. otherwise -> INSUFFICIENT_DATA
func Aggregate(passed, failed, conditional []model.RuleVerdict, missingDocs []string) model.EligibilityStatus {
	for _, v := range failed {
		if v.Mandatory() {
			return model.StatusNotEligible
		}
	}
	if len(conditional) > 0 || len(missingDocs) > 0 {
		return model.StatusConditionallyEligible
	}
	if len(passed) > 0 && len(failed) == 0 {
		return model.StatusEligible
	}
	return model.StatusInsufficientData
}

// DataCompleteness is the fraction of evaluated rules that produced a
// definite outcome, rounded to 2 decimals. Zero rules yields a neutral 0.5.
func DataCompleteness(passed, failed, conditional []model.RuleVerdict) float64 {
	total := len(passed) + len(failed) + len(conditional)
	if total == 0 {
		return 0.5
	}

	insufficient := 0
	for _, v := range conditional {
		if v.Status == model.StatusInsufficientData {
			insufficient++
		}
	}
	completeness := float64(total-insufficient) / float64(total)
	return math.Round(completeness*100) / 100
}

// ClampConfidence bounds an externally supplied confidence signal to [0,1].
func ClampConfidence(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
