package session

import (
	"time"

	"github.com/abhisek/topiq/internal/question"
	"github.com/abhisek/topiq/internal/store"
)

// Phase is the UI-facing lifecycle of a running quiz.
type Phase int

const (
	PhaseSetup    Phase = iota // collecting topic/count, no questions loaded
	PhaseActive                // serving questions
	PhaseFeedback              // showing per-question feedback
	PhaseFinished              // finished, summary available
)

// State is the in-memory quiz session. It exclusively owns the live copy;
// the store holds the durable one, reconciled by explicit save/load rather
// than shared references.
type State struct {
	// ID is assigned by the store on the first save and is empty until then.
	ID string

	// Topic the questions were generated for.
	Topic string

	// Questions is fixed once the session is created.
	Questions []question.Question

	// Answers parallels Questions. A slot is written at most once; the zero
	// Answer is the unanswered sentinel.
	Answers []question.Answer

	// CurrentIndex is the question being shown, always in [0, len(Questions)).
	CurrentIndex int

	// Score counts correctly answered questions so far. It is derived state:
	// always recomputable from Questions and Answers.
	Score int

	Status store.Status
	Phase  Phase

	CreatedAt   time.Time
	CompletedAt time.Time
	LastSavedAt time.Time
}

// New builds an in-memory session over freshly generated questions. The
// session has no ID until first saved.
func New(topic string, questions []question.Question) *State {
	return &State{
		Topic:     topic,
		Questions: questions,
		Answers:   make([]question.Answer, len(questions)),
		Status:    store.StatusIncomplete,
		Phase:     PhaseActive,
		CreatedAt: time.Now(),
	}
}

// Current returns the question at the current index.
func (s *State) Current() question.Question {
	return s.Questions[s.CurrentIndex]
}

// Answered reports whether the question at index has been answered.
func (s *State) Answered(index int) bool {
	return index >= 0 && index < len(s.Answers) && s.Answers[index].Answered()
}

// AnsweredCount returns how many questions have been answered.
func (s *State) AnsweredCount() int {
	n := 0
	for _, a := range s.Answers {
		if a.Answered() {
			n++
		}
	}
	return n
}

// Unanswered returns the indices of unanswered questions, in order.
func (s *State) Unanswered() []int {
	var idx []int
	for i, a := range s.Answers {
		if !a.Answered() {
			idx = append(idx, i)
		}
	}
	return idx
}

// Finished reports whether the session has reached its terminal status.
func (s *State) Finished() bool {
	return s.Status == store.StatusCompleted
}

// finishedAndSynced reports whether the session is completed and its terminal
// snapshot made it to storage. A completed session whose finishing save failed
// has LastSavedAt before CompletedAt and still needs a retry.
func (s *State) finishedAndSynced() bool {
	return s.Finished() && !s.LastSavedAt.Before(s.CompletedAt)
}

// toRecord copies the session into a store record. Slices are copied so the
// durable snapshot cannot alias live state.
func toRecord(s *State) *store.SessionRecord {
	qs := make([]question.Question, len(s.Questions))
	copy(qs, s.Questions)
	as := make([]question.Answer, len(s.Answers))
	copy(as, s.Answers)

	return &store.SessionRecord{
		ID:           s.ID,
		Topic:        s.Topic,
		Questions:    qs,
		Answers:      as,
		CurrentIndex: s.CurrentIndex,
		Score:        s.Score,
		Status:       s.Status,
		CreatedAt:    s.CreatedAt,
		CompletedAt:  s.CompletedAt,
		LastSavedAt:  s.LastSavedAt,
	}
}

// fromRecord rebuilds the in-memory session from a stored snapshot.
func fromRecord(rec *store.SessionRecord) *State {
	phase := PhaseActive
	if rec.Status == store.StatusCompleted {
		phase = PhaseFinished
	}
	index := rec.CurrentIndex
	if index < 0 || index >= len(rec.Questions) {
		index = 0
	}
	return &State{
		ID:           rec.ID,
		Topic:        rec.Topic,
		Questions:    rec.Questions,
		Answers:      rec.Answers,
		CurrentIndex: index,
		Score:        rec.Score,
		Status:       rec.Status,
		Phase:        phase,
		CreatedAt:    rec.CreatedAt,
		CompletedAt:  rec.CompletedAt,
		LastSavedAt:  rec.LastSavedAt,
	}
}
