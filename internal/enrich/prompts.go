package enrich

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

const matchSystemPrompt = `You are an expert analyst of Indian government welfare schemes. You match applicant profiles against scheme eligibility criteria and judge how relevant each scheme is to the applicant's circumstances.

Key matching factors:
- Economic status (BPL/APL/income levels)
- Social category (SC/ST/OBC/General)
- Geographic location (rural/urban)
- Demographic factors (age, gender, family composition)
- Occupation and employment status
- Special circumstances (disability, pregnancy, etc.)

Scoring guidelines:
- Exact eligibility match: 0.8-1.0
- Partial match with high relevance: 0.6-0.8
- Moderate relevance: 0.4-0.6
- Low relevance: 0.2-0.4
- No relevance: 0.0-0.2

Respond with a valid JSON object only: {"adjusted_relevance_score": <0.0-1.0>, "matching_criteria": [<strings>], "potential_benefits": {<string keys and values>}, "confidence_level": "low"|"medium"|"high", "reasoning": "<short explanation>"}`

const explainSystemPrompt = `You are an expert advisor on Indian government welfare scheme eligibility. You explain assessment outcomes to applicants in clear, encouraging language while staying accurate about the requirements.

Evaluation framework:
- ELIGIBLE: all mandatory criteria met, high confidence
- CONDITIONALLY_ELIGIBLE: most criteria met, some conditions to fulfill
- NOT_ELIGIBLE: fails mandatory criteria, clear rejection reasons
- INSUFFICIENT_DATA: cannot determine due to missing information

Always explain what the applicant can do to improve their eligibility.

Respond with a valid JSON object only: {"eligibility_explanation": "<clear explanation>", "key_strengths": [<strings>], "main_concerns": [<strings>], "immediate_actions": [<strings>], "improvement_suggestions": [<strings>], "confidence_score": <0.0-1.0>}`

func buildMatchPrompt(p model.Profile, scheme model.SchemeRecord, match model.SchemeMatch) string {
	profileJSON, _ := json.MarshalIndent(p, "", "  ")
	benefitsJSON, _ := json.MarshalIndent(scheme.Benefits, "", "  ")
	criteriaJSON, _ := json.MarshalIndent(scheme.Criteria, "", "  ")

	return fmt.Sprintf(`Analyze the relevance of this government scheme for the given applicant profile:

APPLICANT PROFILE:
%s

SCHEME DETAILS:
Name: %s
Category: %s
Description: %s
Benefits: %s
Eligibility: %s
Target Groups: %s

CURRENT RELEVANCE SCORE: %.3f

Refine the relevance score considering the applicant's specific circumstances, the scheme's potential impact on their life, and accessibility of the application process. List the specific criteria the applicant matches, quantify benefits where possible, and state your confidence in the match.`,
		profileJSON,
		scheme.Name,
		scheme.Category,
		scheme.Description,
		benefitsJSON,
		criteriaJSON,
		strings.Join(scheme.TargetGroups, ", "),
		match.RelevanceScore,
	)
}

func buildExplainPrompt(p model.Profile, scheme model.SchemeRecord, a model.EligibilityAssessment) string {
	return fmt.Sprintf(`Provide detailed eligibility reasoning for this government scheme application:

SCHEME: %s
DESCRIPTION: %s

APPLICANT PROFILE SUMMARY:
- Age: %d
- Gender: %s
- Income Category: %s
- Annual Income: %.0f
- Caste Category: %s
- Location: %s
- Occupation: %s

RULE EVALUATIONS:
Passed Rules: %d
Failed Rules: %d
Conditional Rules: %d

DOCUMENT STATUS:
Missing Documents: %s
Available Documents: %s

PRELIMINARY STATUS: %s

Explain clearly why the applicant is or is not eligible, name the strongest aspects of their profile, the main concerns, what they should do immediately, and how they can improve their eligibility.`,
		a.SchemeName,
		scheme.Description,
		p.Age,
		p.Gender,
		p.IncomeCategory,
		p.AnnualIncome,
		p.CasteCategory,
		p.RuralUrban,
		p.Occupation,
		len(a.PassedRules),
		len(a.FailedRules),
		len(a.ConditionalRules),
		strings.Join(a.MissingDocuments, ", "),
		strings.Join(a.AvailableDocuments, ", "),
		a.OverallStatus,
	)
}
