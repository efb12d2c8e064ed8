package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/topiq/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	s2 := &stubScreen{title: "quiz"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "quiz" {
		t.Errorf("expected active 'quiz', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPushScreenMsg(t *testing.T) {
	r := New(&stubScreen{title: "home"})

	s2 := &stubScreen{title: "history"}
	r.Update(PushScreenMsg{Screen: s2})

	if r.Active().Title() != "history" {
		t.Errorf("expected active 'history', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run via PushScreenMsg")
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "quiz"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	r.Push(&stubScreen{title: "quiz"})

	s3 := &stubScreen{title: "results"}
	r.Update(ReplaceScreenMsg{Screen: s3})

	if r.Depth() != 2 {
		t.Errorf("expected depth 2 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "results" {
		t.Errorf("expected active 'results', got %q", r.Active().Title())
	}
	if !s3.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}
