package checklist

import (
	"strings"

	"github.com/arbazmubasher1/HygieneChecklist/model"
)

// ValidationResult lists every item blocking submission. Both lists are
// computed in full so the user sees all problems at once instead of the
// first one found.
type ValidationResult struct {
	Incomplete     []string `json:"incomplete,omitempty"`
	MissingRemarks []string `json:"missing_remarks,omitempty"`
}

func (r ValidationResult) OK() bool {
	return len(r.Incomplete) == 0 && len(r.MissingRemarks) == 0
}

// Validate walks the catalog in order and reports unanswered items and
// non-compliant items whose remark is empty or whitespace-only. Items not
// in the catalog are ignored even if the store holds answers for them.
func Validate(catalog []Group, answers *AnswerStore) ValidationResult {
	var result ValidationResult
	for _, item := range ItemNames(catalog) {
		a := answers.Get(item)
		switch a.Selection {
		case model.Unanswered:
			result.Incomplete = append(result.Incomplete, item)
		case model.NonCompliant:
			if strings.TrimSpace(a.Remark) == "" {
				result.MissingRemarks = append(result.MissingRemarks, item)
			}
		}
	}
	return result
}
