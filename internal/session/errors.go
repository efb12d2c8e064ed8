package session

import (
	"errors"
	"fmt"
)

// ErrNoQuestions is returned when a session is created with an empty
// question list.
var ErrNoQuestions = errors.New("session requires at least one question")

// ErrAlreadyFinished is returned by mutations on a completed session.
var ErrAlreadyFinished = errors.New("session already finished")

// IncompleteError rejects a finish call while questions remain unanswered.
type IncompleteError struct {
	// Unanswered holds the 0-based indices still missing an answer.
	Unanswered []int
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%d questions unanswered", len(e.Unanswered))
}

// StorageError wraps a persistence failure. The in-memory session stays
// usable; the snapshot is simply unsynced until the next save succeeds.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
