package eligibility

import (
	"time"

	"go.uber.org/zap"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

// Assess produces the complete eligibility assessment for one (profile,
// scheme) pair: per-rule verdicts, the aggregated status, and the document
// gap. Pure and synchronous; the result is fully usable without any
// downstream enrichment.
func Assess(p model.Profile, s model.SchemeRecord) model.EligibilityAssessment {
	passed, failed, conditional := EvaluateRules(p, s.Criteria.Structured)
	gap := AnalyzeDocuments(s.DocumentsRequired, p.AvailableDocuments)
	status := Aggregate(passed, failed, conditional, gap.Missing)

	a := model.EligibilityAssessment{
		SchemeID:           s.SchemeID,
		SchemeName:         s.Name,
		OverallStatus:      status,
		ConfidenceScore:    DefaultConfidence,
		DataCompleteness:   DataCompleteness(passed, failed, conditional),
		PassedRules:        passed,
		FailedRules:        failed,
		ConditionalRules:   conditional,
		RequiredDocuments:  gap.Requirements,
		MissingDocuments:   gap.Missing,
		AvailableDocuments: gap.Available,
		AssessedAt:         time.Now().UTC(),
	}

	zap.L().Debug("eligibility: assessed scheme",
		zap.String("scheme_id", s.SchemeID),
		zap.String("status", string(status)),
		zap.Int("passed", len(passed)),
		zap.Int("failed", len(failed)),
		zap.Int("conditional", len(conditional)),
		zap.Int("missing_documents", len(gap.Missing)),
	)
	return a
}
