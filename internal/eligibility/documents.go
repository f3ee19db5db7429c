package eligibility

import (
	"strings"

	"github.com/jansahayak/sahayak-cli/internal/model"
)

// documentAlternatives maps a document type to accepted substitutes. An
// unmapped document has no alternatives.
var documentAlternatives = map[string][]string{
	"aadhaar_card":       {"voter_id", "passport", "driving_license"},
	"income_certificate": {"salary_certificate", "tax_returns", "bank_statements"},
	"caste_certificate":  {"community_certificate", "tribe_certificate"},
	"bank_account":       {"passbook_copy", "bank_statement", "cancelled_cheque"},
	"age_proof":          {"birth_certificate", "school_certificate", "passport"},
}

// documentDescriptions provides user-facing descriptions for common types.
var documentDescriptions = map[string]string{
	"aadhaar_card":         "12-digit unique identity document",
	"voter_id":             "Electoral identity card",
	"income_certificate":   "Official certificate showing annual income",
	"caste_certificate":    "Government-issued caste category certificate",
	"bank_account":         "Active bank account details",
	"ration_card":          "Food distribution card from PDS",
	"domicile_certificate": "Proof of residence in state or district",
}

// DocumentGap is the result of diffing a scheme's required documents against
// the applicant's available ones. Missing and Available always partition the
// required list exactly.
type DocumentGap struct {
	Requirements []model.DocumentRequirement `json:"requirements"`
	Missing      []string                    `json:"missing"`
	Available    []string                    `json:"available"`
}

// AnalyzeDocuments diffs required against available documents. Matching is
// exact and case-sensitive by construction; callers normalize case upstream.
func AnalyzeDocuments(required, available []string) DocumentGap {
	availableSet := make(map[string]bool, len(available))
	for _, d := range available {
		availableSet[d] = true
	}

	gap := DocumentGap{}
	for _, doc := range required {
		has := availableSet[doc]
		gap.Requirements = append(gap.Requirements, model.DocumentRequirement{
			DocumentType: doc,
			Required:     true,
			Available:    has,
			Alternatives: documentAlternatives[doc],
			Urgency:      documentUrgency(doc),
			Description:  documentDescription(doc),
		})
		if has {
			gap.Available = append(gap.Available, doc)
		} else {
			gap.Missing = append(gap.Missing, doc)
		}
	}
	return gap
}

// documentUrgency assigns a fixed priority tier: identity-class documents are
// high, income/caste/domicile-class medium, everything else low.
func documentUrgency(doc string) model.DocumentUrgency {
	lower := strings.ToLower(doc)
	for _, kw := range []string{"aadhaar", "identity", "voter"} {
		if strings.Contains(lower, kw) {
			return model.UrgencyHigh
		}
	}
	for _, kw := range []string{"income", "caste", "domicile"} {
		if strings.Contains(lower, kw) {
			return model.UrgencyMedium
		}
	}
	return model.UrgencyLow
}

func documentDescription(doc string) string {
	if d, ok := documentDescriptions[doc]; ok {
		return d
	}
	return "Required document: " + titleCase(strings.ReplaceAll(doc, "_", " "))
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
