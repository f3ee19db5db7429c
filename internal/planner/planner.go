// Package planner turns a set of eligibility assessments into an ordered,
// actionable to-do list. Generation is fully deterministic: the same
// assessments always yield the same plan.
package planner

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

// Timelines attached to generated steps, keyed by how urgent the step is.
const (
	timelineImmediate = "immediate"
	timelineOneWeek   = "within 1 week"
	timelineTwoWeeks  = "within 2 weeks"
	timelineOneMonth  = "within 1 month"
	timelineOngoing   = "ongoing"
)

// Build produces the action plan for a set of assessments. Steps come out in
// a fixed order: document acquisition (most urgent first), applications for
// eligible schemes, verification for conditional schemes, then longer-term
// improvements.
func Build(assessments []model.EligibilityAssessment) model.ActionPlan {
	var plan model.ActionPlan

	var eligible, conditional []model.EligibilityAssessment
	for _, a := range assessments {
		switch a.OverallStatus {
		case model.StatusEligible:
			eligible = append(eligible, a)
			plan.EligibleSchemes = append(plan.EligibleSchemes, a.SchemeID)
		case model.StatusConditionallyEligible:
			conditional = append(conditional, a)
			plan.ConditionalSchemes = append(plan.ConditionalSchemes, a.SchemeID)
		}
	}

	var steps []model.ActionStep
	steps = append(steps, documentSteps(append(append([]model.EligibilityAssessment{}, eligible...), conditional...))...)
	steps = append(steps, applicationSteps(eligible)...)
	steps = append(steps, verificationSteps(conditional)...)
	steps = append(steps, improvementSteps(assessments)...)

	for i := range steps {
		steps[i].Order = i + 1
	}
	plan.Steps = steps
	plan.Summary = fmt.Sprintf("%d scheme(s) ready to apply, %d conditionally eligible, %d action step(s)",
		len(eligible), len(conditional), len(steps))

	zap.L().Info("planner: built action plan",
		zap.Int("eligible", len(eligible)),
		zap.Int("conditional", len(conditional)),
		zap.Int("steps", len(steps)),
	)
	return plan
}

// documentSteps emits one step per distinct missing document across the
// given assessments, most urgent first. The first scheme that needs the
// document contributes its requirement details.
func documentSteps(assessments []model.EligibilityAssessment) []model.ActionStep {
	type docNeed struct {
		req      model.DocumentRequirement
		schemeID string
	}
	needs := make(map[string]docNeed)
	var order []string

	for _, a := range assessments {
		missing := make(map[string]bool, len(a.MissingDocuments))
		for _, d := range a.MissingDocuments {
			missing[d] = true
		}
		for _, req := range a.RequiredDocuments {
			if !missing[req.DocumentType] {
				continue
			}
			if _, seen := needs[req.DocumentType]; seen {
				continue
			}
			needs[req.DocumentType] = docNeed{req: req, schemeID: a.SchemeID}
			order = append(order, req.DocumentType)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return urgencyRank(needs[order[i]].req.Urgency) < urgencyRank(needs[order[j]].req.Urgency)
	})

	steps := make([]model.ActionStep, 0, len(order))
	for _, doc := range order {
		need := needs[doc]
		detail := need.req.Description
		if len(need.req.Alternatives) > 0 {
			detail += ". Accepted alternatives: " + strings.Join(need.req.Alternatives, ", ")
		}
		steps = append(steps, model.ActionStep{
			Title:    "Obtain " + humanizeDocument(doc),
			Detail:   detail,
			Category: model.StepDocument,
			SchemeID: need.schemeID,
			Timeline: documentTimeline(need.req.Urgency),
		})
	}
	return steps
}

func applicationSteps(eligible []model.EligibilityAssessment) []model.ActionStep {
	steps := make([]model.ActionStep, 0, len(eligible))
	for _, a := range eligible {
		steps = append(steps, model.ActionStep{
			Title:    "Apply for " + a.SchemeName,
			Detail:   "All eligibility criteria are met. Submit the application with the required documents.",
			Category: model.StepApplication,
			SchemeID: a.SchemeID,
			Timeline: timelineOneWeek,
		})
	}
	return steps
}

// verificationSteps emits one step per conditional rule so the applicant
// knows exactly which requirement still needs proof.
func verificationSteps(conditional []model.EligibilityAssessment) []model.ActionStep {
	var steps []model.ActionStep
	for _, a := range conditional {
		for _, rule := range a.ConditionalRules {
			steps = append(steps, model.ActionStep{
				Title:    fmt.Sprintf("Verify %s for %s", strings.ToLower(rule.RuleName), a.SchemeName),
				Detail:   rule.Reasoning,
				Category: model.StepVerification,
				SchemeID: a.SchemeID,
				Timeline: timelineTwoWeeks,
			})
		}
	}
	return steps
}

// improvementSteps collects deduplicated improvement suggestions from every
// assessment, regardless of outcome.
func improvementSteps(assessments []model.EligibilityAssessment) []model.ActionStep {
	seen := make(map[string]bool)
	var steps []model.ActionStep
	for _, a := range assessments {
		for _, s := range a.ImprovementSuggestions {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			steps = append(steps, model.ActionStep{
				Title:    s,
				Category: model.StepImprovement,
				SchemeID: a.SchemeID,
				Timeline: timelineOngoing,
			})
		}
	}
	return steps
}

func urgencyRank(u model.DocumentUrgency) int {
	switch u {
	case model.UrgencyHigh:
		return 0
	case model.UrgencyMedium:
		return 1
	default:
		return 2
	}
}

func documentTimeline(u model.DocumentUrgency) string {
	switch u {
	case model.UrgencyHigh:
		return timelineImmediate
	case model.UrgencyMedium:
		return timelineTwoWeeks
	default:
		return timelineOneMonth
	}
}

func humanizeDocument(doc string) string {
	words := strings.Fields(strings.ReplaceAll(doc, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
