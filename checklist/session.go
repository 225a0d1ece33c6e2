package checklist

import (
	"errors"
	"time"

	"github.com/arbazmubasher1/HygieneChecklist/model"
)

// State of one fill-in-and-submit session.
type State int

const (
	// Filling is the initial state and the state a blocked submission
	// returns to.
	Filling State = iota
	// Submitted is terminal: the session produced its record.
	Submitted
)

// ErrSessionSubmitted is returned when a terminal session is mutated or
// submitted again. A new inspection needs a new session.
var ErrSessionSubmitted = errors.New("session already submitted")

// SubmitGate is the full set of reasons blocking a submission: the per-item
// validation result plus the signature and manager-verification checks.
type SubmitGate struct {
	ValidationResult
	MissingSignature  bool `json:"missing_signature,omitempty"`
	ManagerUnverified bool `json:"manager_unverified,omitempty"`
}

func (g SubmitGate) Blocked() bool {
	return !g.OK() || g.MissingSignature || g.ManagerUnverified
}

// Session owns the state of one form being filled: the context, the catalog
// derived from it, and the answers collected so far.
type Session struct {
	ctx     model.FormContext
	catalog []Group
	answers *AnswerStore
	state   State
}

func NewSession(ctx model.FormContext) *Session {
	return &Session{
		ctx:     ctx,
		catalog: Catalog(ctx),
		answers: NewAnswerStore(),
	}
}

func (s *Session) Context() model.FormContext { return s.ctx }
func (s *Session) Catalog() []Group           { return s.catalog }
func (s *Session) State() State               { return s.state }

// SetContext swaps the categorical inputs and recomputes the catalog.
// Answers for items no longer on the form are discarded; answers for items
// that survive the change keep their state.
func (s *Session) SetContext(ctx model.FormContext) error {
	if s.state == Submitted {
		return ErrSessionSubmitted
	}
	s.ctx = ctx
	old := ItemNames(s.catalog)
	s.catalog = Catalog(ctx)

	kept := map[string]bool{}
	for _, item := range ItemNames(s.catalog) {
		kept[item] = true
	}
	for _, item := range old {
		if !kept[item] {
			s.answers.Discard(item)
		}
	}
	return nil
}

func (s *Session) Answer(item string) model.Answer {
	return s.answers.Get(item)
}

func (s *Session) SetSelection(item string, sel model.Selection) error {
	if s.state == Submitted {
		return ErrSessionSubmitted
	}
	s.answers.SetSelection(item, sel)
	return nil
}

func (s *Session) SetRemark(item, text string) error {
	if s.state == Submitted {
		return ErrSessionSubmitted
	}
	s.answers.SetRemark(item, text)
	return nil
}

// Check runs the submission gate without changing state, so callers can
// refuse early before spending work on image uploads.
func (s *Session) Check(signaturePresent, managerVerified bool) SubmitGate {
	return SubmitGate{
		ValidationResult:  Validate(s.catalog, s.answers),
		MissingSignature:  !signaturePresent,
		ManagerUnverified: !managerVerified,
	}
}

// Submit runs the gate one final time and, if it passes, scores the form,
// assembles the record and moves the session to its terminal state. A
// blocked submission returns the gate and leaves the session in Filling so
// the user can fix the reported items and try again.
func (s *Session) Submit(
	identity Identity,
	signaturePresent, managerVerified bool,
	links ImageLinks,
	now time.Time,
) (model.SubmissionRecord, SubmitGate, error) {
	if s.state == Submitted {
		return model.SubmissionRecord{}, SubmitGate{}, ErrSessionSubmitted
	}

	gate := s.Check(signaturePresent, managerVerified)
	if gate.Blocked() {
		return model.SubmissionRecord{}, gate, nil
	}

	score := ScoreOf(s.catalog, s.answers)
	record := Assemble(s.ctx, identity, s.catalog, s.answers, score, links, now)
	s.state = Submitted
	return record, gate, nil
}
