package screen

import "github.com/abhisek/topiq/internal/session"

// StartQuizMsg asks the application root to open a quiz over an existing
// in-memory session. Screens that cannot import the quiz screen directly
// (to keep imports acyclic) emit this instead.
type StartQuizMsg struct {
	State *session.State
}
