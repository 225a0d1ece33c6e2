package checklist

import (
	"github.com/arbazmubasher1/HygieneChecklist/model"
)

// AnswerStore maps item names to their current answer. It replaces the
// label-keyed session map of the original form with a typed lookup, so
// similarly named items cannot collide.
type AnswerStore struct {
	answers map[string]model.Answer
}

func NewAnswerStore() *AnswerStore {
	return &AnswerStore{answers: map[string]model.Answer{}}
}

// Get returns the current answer for an item, defaulting to an unanswered
// one with no remark. The default is not stored until a mutation happens.
func (s *AnswerStore) Get(item string) model.Answer {
	if a, ok := s.answers[item]; ok {
		return a
	}
	return model.Answer{Selection: model.Unanswered}
}

// SetSelection records the tri-state choice for one item. Marking an item
// compliant clears any remark it carried; marking it non-compliant leaves
// the remark alone, the caller must then collect one. No other item is
// touched.
func (s *AnswerStore) SetSelection(item string, sel model.Selection) {
	a := s.Get(item)
	a.Selection = sel
	if sel == model.Compliant {
		a.Remark = ""
	}
	s.answers[item] = a
}

// SetRemark records the free-text remark for one item.
func (s *AnswerStore) SetRemark(item, text string) {
	a := s.Get(item)
	a.Remark = text
	s.answers[item] = a
}

// Discard drops the stored answer for an item. Used when a context change
// removes the item from the catalog.
func (s *AnswerStore) Discard(item string) {
	delete(s.answers, item)
}

// Len reports how many items hold a stored answer.
func (s *AnswerStore) Len() int {
	return len(s.answers)
}
