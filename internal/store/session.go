package store

import (
	"context"
	"errors"
	"time"

	"github.com/abhisek/topiq/internal/question"
)

// ErrNotFound is returned when a session id does not exist in the store.
var ErrNotFound = errors.New("session not found")

// Status is the lifecycle state of a persisted session. The only legal
// transition is incomplete → completed, once.
type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusCompleted  Status = "completed"
)

// SessionRecord is the durable snapshot of a quiz session. The in-memory
// session and the stored record are reconciled by explicit save/load, never
// shared by reference.
type SessionRecord struct {
	// ID is assigned by the store on first save and opaque to callers.
	ID string

	Topic     string
	Questions []question.Question

	// Answers parallels Questions; an unanswered slot holds the zero
	// (AnswerNone) sentinel.
	Answers []question.Answer

	CurrentIndex int
	Score        int
	Status       Status

	CreatedAt   time.Time
	CompletedAt time.Time // zero until finished
	LastSavedAt time.Time // zero until first snapshot
}

// Filter narrows a List query. Zero values match everything.
type Filter struct {
	Status Status    // exact match
	Topic  string    // case-insensitive substring
	Since  time.Time // created at or after
}

// SessionRepo is the four-operation persistence contract. It is the only
// storage surface the session engine touches.
type SessionRepo interface {
	// Save writes the full record, assigning and returning a new id when
	// rec.ID is empty. An existing id overwrites the stored record.
	Save(ctx context.Context, rec *SessionRecord) (string, error)

	// Load returns the record for id, or ErrNotFound.
	Load(ctx context.Context, id string) (*SessionRecord, error)

	// Delete removes the record for id. Deleting a missing id is not an
	// error.
	Delete(ctx context.Context, id string) error

	// List returns records matching the filter, newest-first.
	List(ctx context.Context, f Filter) ([]*SessionRecord, error)
}
