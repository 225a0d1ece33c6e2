package checklist

import (
	"math"

	"github.com/arbazmubasher1/HygieneChecklist/model"
)

// ScoreOf counts answered items against compliant ones. Total covers only
// items marked either way, so a fully validated form scores over the whole
// catalog. An empty form scores 0%, never a division error.
func ScoreOf(catalog []Group, answers *AnswerStore) model.Score {
	var score model.Score
	for _, item := range ItemNames(catalog) {
		a := answers.Get(item)
		if !a.Selection.Answered() {
			continue
		}
		score.Total++
		if a.Selection == model.Compliant {
			score.Correct++
		}
	}
	if score.Total > 0 {
		pct := 100 * float64(score.Correct) / float64(score.Total)
		score.Percentage = math.Round(pct*100) / 100
	}
	return score
}
