package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/topiq/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is an optional interface for screens that show a header
// status, e.g. the question counter during a quiz.
type StatusProvider interface {
	Status() string
}

// Closer is an optional interface for screens that need a final action
// before being popped, e.g. flushing an in-progress quiz to the store.
type Closer interface {
	Close() tea.Cmd
}

// EscHandler is an optional interface for screens that want esc delivered
// to them instead of popping the screen, e.g. to cancel an inline search.
type EscHandler interface {
	WantsEsc() bool
}
