package checklist

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arbazmubasher1/HygieneChecklist/model"
)

func TestScoreEmptyForm(t *testing.T) {
	catalog := []Group{{Name: GroupGrooming, Items: []string{"Clean Shirt"}}}

	score := ScoreOf(catalog, NewAnswerStore())
	assert.Equal(t, model.Score{Correct: 0, Total: 0, Percentage: 0}, score)
}

func TestScoreCountsAnsweredOnly(t *testing.T) {
	catalog := []Group{{Name: GroupGrooming, Items: []string{"a", "b", "c", "d", "e", "f"}}}
	answers := NewAnswerStore()
	answers.SetSelection("a", model.Compliant)
	answers.SetSelection("b", model.Compliant)
	answers.SetSelection("c", model.Compliant)
	answers.SetSelection("d", model.NonCompliant)
	answers.SetSelection("e", model.NonCompliant)
	// f stays unanswered

	score := ScoreOf(catalog, answers)
	assert.Equal(t, model.Score{Correct: 3, Total: 5, Percentage: 60}, score)
}

func TestScoreRoundsToTwoDecimals(t *testing.T) {
	catalog := []Group{{Name: GroupGrooming, Items: []string{"a", "b", "c"}}}
	answers := NewAnswerStore()
	answers.SetSelection("a", model.Compliant)
	answers.SetSelection("b", model.NonCompliant)
	answers.SetSelection("c", model.NonCompliant)

	score := ScoreOf(catalog, answers)
	assert.Equal(t, 33.33, score.Percentage)

	answers.SetSelection("b", model.Compliant)
	score = ScoreOf(catalog, answers)
	assert.Equal(t, 66.67, score.Percentage)
}

func TestScoreAllCompliant(t *testing.T) {
	catalog := []Group{{Name: GroupSafety, Items: []string{"Helmet", "Gloves"}}}
	answers := NewAnswerStore()
	answers.SetSelection("Helmet", model.Compliant)
	answers.SetSelection("Gloves", model.Compliant)

	score := ScoreOf(catalog, answers)
	assert.Equal(t, model.Score{Correct: 2, Total: 2, Percentage: 100}, score)
}
