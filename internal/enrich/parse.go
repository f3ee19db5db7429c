package enrich

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/jansahayak/sahayak-cli/internal/eligibility"
	"github.com/jansahayak/sahayak-cli/internal/model"
)

type matchRefinement struct {
	AdjustedRelevanceScore *float64       `json:"adjusted_relevance_score"`
	MatchingCriteria       []string       `json:"matching_criteria"`
	PotentialBenefits      map[string]any `json:"potential_benefits"`
	ConfidenceLevel        string         `json:"confidence_level"`
	Reasoning              string         `json:"reasoning"`
}

type assessmentExplanation struct {
	EligibilityExplanation string   `json:"eligibility_explanation"`
	KeyStrengths           []string `json:"key_strengths"`
	MainConcerns           []string `json:"main_concerns"`
	ImmediateActions       []string `json:"immediate_actions"`
	ImprovementSuggestions []string `json:"improvement_suggestions"`
	ConfidenceScore        *float64 `json:"confidence_score"`
}

func parseMatchRefinement(text string) (matchRefinement, error) {
	var out matchRefinement
	if err := json.Unmarshal([]byte(cleanJSON(text)), &out); err != nil {
		return out, eris.Wrap(err, "enrich: parse match refinement")
	}
	return out, nil
}

func parseExplanation(text string) (assessmentExplanation, error) {
	var out assessmentExplanation
	if err := json.Unmarshal([]byte(cleanJSON(text)), &out); err != nil {
		return out, eris.Wrap(err, "enrich: parse explanation")
	}
	return out, nil
}

// applyMatchRefinement merges refinement fields into the baseline match.
// Absent or invalid fields keep their baseline values.
func applyMatchRefinement(match model.SchemeMatch, r matchRefinement) model.SchemeMatch {
	if r.AdjustedRelevanceScore != nil {
		match.RelevanceScore = round3(clamp01(*r.AdjustedRelevanceScore))
	}
	if len(r.MatchingCriteria) > 0 {
		match.MatchingCriteria = r.MatchingCriteria
	}
	if len(r.PotentialBenefits) > 0 {
		match.PotentialBenefits = r.PotentialBenefits
	}
	switch model.ConfidenceLevel(strings.ToLower(r.ConfidenceLevel)) {
	case model.ConfidenceLow, model.ConfidenceMedium, model.ConfidenceHigh:
		match.ConfidenceLevel = model.ConfidenceLevel(strings.ToLower(r.ConfidenceLevel))
	}
	return match
}

// applyExplanation merges explanation fields into the baseline assessment.
func applyExplanation(a model.EligibilityAssessment, e assessmentExplanation) model.EligibilityAssessment {
	if e.EligibilityExplanation != "" {
		a.EligibilityReasoning = e.EligibilityExplanation
	}
	if len(e.ImprovementSuggestions) > 0 {
		a.ImprovementSuggestions = e.ImprovementSuggestions
	}
	if e.ConfidenceScore != nil {
		a.ConfidenceScore = eligibility.ClampConfidence(*e.ConfidenceScore)
	}
	return a
}

// cleanJSON attempts to extract a JSON object from text that may contain
// markdown code fences or other wrapping.
func cleanJSON(text string) string {
	text = strings.TrimSpace(text)

	// Strip markdown code fences.
	if strings.HasPrefix(text, "```json") {
		text = strings.TrimPrefix(text, "```json")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	} else if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
	}

	// Find first { and last }.
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		text = text[start : end+1]
	}

	return strings.TrimSpace(text)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
