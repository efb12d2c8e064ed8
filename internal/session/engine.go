package session

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/topiq/internal/question"
	"github.com/abhisek/topiq/internal/store"
)

// Engine runs quiz sessions against a persistence backend. All state-machine
// transitions go through it; the store is never touched by callers directly.
type Engine struct {
	repo store.SessionRepo
}

// NewEngine builds an engine over the given session repository.
func NewEngine(repo store.SessionRepo) *Engine {
	return &Engine{repo: repo}
}

// Create starts a new session over freshly generated questions and persists
// it immediately. On a storage failure the session is still returned and
// usable in memory, alongside a StorageError; the next successful save will
// sync it.
func (e *Engine) Create(ctx context.Context, topic string, questions []question.Question) (*State, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	st := New(topic, questions)
	if err := e.save(ctx, st); err != nil {
		return st, err
	}
	return st, nil
}

// Resume reloads a stored session. Missing ids surface store.ErrNotFound.
func (e *Engine) Resume(ctx context.Context, id string) (*State, error) {
	rec, err := e.repo.Load(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, &StorageError{Op: "load", Err: err}
	}
	return fromRecord(rec), nil
}

// SubmitAnswer records the answer for the question at index. Each slot is
// written at most once: resubmitting an answered index is a silent no-op, so
// the first answer and its correctness stand. Correctness is recomputed from
// the question, never stored. A snapshot is written fire-and-forget; its
// failure is logged and left for the next autosave.
func (e *Engine) SubmitAnswer(ctx context.Context, st *State, index int, ans question.Answer) error {
	if st.Finished() {
		return ErrAlreadyFinished
	}
	if index < 0 || index >= len(st.Questions) {
		return fmt.Errorf("answer index %d out of range [0,%d)", index, len(st.Questions))
	}
	if st.Answers[index].Answered() || !ans.Answered() {
		return nil
	}

	st.Answers[index] = ans
	if question.Evaluate(st.Questions[index], ans) {
		st.Score++
	}

	if err := e.save(ctx, st); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to snapshot session: %v\n", err)
	}
	return nil
}

// Direction selects which way Advance moves.
type Direction int

const (
	Next Direction = iota
	Previous
)

// Advance moves the current index by one in the given direction. Moving past
// either end is a no-op, so the index invariant holds unconditionally.
// Navigation never requires the current question to be answered.
func (e *Engine) Advance(st *State, dir Direction) error {
	if st.Finished() {
		return ErrAlreadyFinished
	}
	switch dir {
	case Next:
		if st.CurrentIndex < len(st.Questions)-1 {
			st.CurrentIndex++
		}
	case Previous:
		if st.CurrentIndex > 0 {
			st.CurrentIndex--
		}
	}
	return nil
}

// Finish completes the session. Every question must be answered; otherwise
// an IncompleteError names the missing slots and the session stays
// incomplete. Completion is terminal: answers and score freeze, and further
// mutations fail with ErrAlreadyFinished.
func (e *Engine) Finish(ctx context.Context, st *State) error {
	if st.Finished() {
		return ErrAlreadyFinished
	}
	if missing := st.Unanswered(); len(missing) > 0 {
		return &IncompleteError{Unanswered: missing}
	}

	st.Status = store.StatusCompleted
	st.CompletedAt = time.Now()
	st.Phase = PhaseFinished

	if err := e.save(ctx, st); err != nil {
		return err
	}
	return nil
}

// Retake starts a fresh session over a completed session's topic and
// questions, with wiped answers, score, and timestamps. The source record is
// read-only here and is never modified.
func (e *Engine) Retake(ctx context.Context, id string) (*State, error) {
	rec, err := e.repo.Load(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
		return nil, &StorageError{Op: "load", Err: err}
	}
	return e.Create(ctx, rec.Topic, rec.Questions)
}

// Save writes the current session snapshot. Used by autosave and the
// quit-time flush.
func (e *Engine) Save(ctx context.Context, st *State) error {
	return e.save(ctx, st)
}

// Delete removes a stored session.
func (e *Engine) Delete(ctx context.Context, id string) error {
	if err := e.repo.Delete(ctx, id); err != nil {
		return &StorageError{Op: "delete", Err: err}
	}
	return nil
}

// List returns stored sessions matching the filter, newest-first.
func (e *Engine) List(ctx context.Context, f store.Filter) ([]*store.SessionRecord, error) {
	recs, err := e.repo.List(ctx, f)
	if err != nil {
		return nil, &StorageError{Op: "list", Err: err}
	}
	return recs, nil
}

func (e *Engine) save(ctx context.Context, st *State) error {
	prevSaved := st.LastSavedAt
	st.LastSavedAt = time.Now()
	rec := toRecord(st)
	id, err := e.repo.Save(ctx, rec)
	if err != nil {
		// LastSavedAt tracks durable snapshots only, so a failed save
		// leaves the state marked unsynced for the next cycle.
		st.LastSavedAt = prevSaved
		return &StorageError{Op: "save", Err: err}
	}
	st.ID = id
	if st.CreatedAt.IsZero() {
		st.CreatedAt = rec.CreatedAt
	}
	return nil
}
