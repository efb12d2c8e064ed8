package history

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/topiq/internal/question"
	"github.com/abhisek/topiq/internal/router"
	"github.com/abhisek/topiq/internal/session"
	"github.com/abhisek/topiq/internal/store"
)

// memRepo is an in-memory SessionRepo for screen tests.
type memRepo struct {
	records map[string]*store.SessionRecord
	nextID  int
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[string]*store.SessionRecord)}
}

func (r *memRepo) Save(_ context.Context, rec *store.SessionRecord) (string, error) {
	if rec.ID == "" {
		r.nextID++
		rec.ID = string(rune('a' + r.nextID))
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	cp := *rec
	r.records[rec.ID] = &cp
	return rec.ID, nil
}

func (r *memRepo) Load(_ context.Context, id string) (*store.SessionRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *memRepo) Delete(_ context.Context, id string) error {
	delete(r.records, id)
	return nil
}

func (r *memRepo) List(_ context.Context, f store.Filter) ([]*store.SessionRecord, error) {
	var out []*store.SessionRecord
	for _, rec := range r.records {
		if f.Status != "" && rec.Status != f.Status {
			continue
		}
		if f.Topic != "" && !strings.Contains(strings.ToLower(rec.Topic), strings.ToLower(f.Topic)) {
			continue
		}
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func singleQuestion() []question.Question {
	return []question.Question{{
		Kind:   question.KindMultipleChoice,
		Prompt: "Pick A.",
		Choices: []question.Choice{
			{Label: "A", Text: "yes"},
			{Label: "B", Text: "no"},
		},
		CorrectLabel: "A",
	}}
}

// testScreen seeds sessions for the given topics and returns a loaded screen.
func testScreen(t *testing.T, topics ...string) *HistoryScreen {
	t.Helper()
	engine := session.NewEngine(newMemRepo())
	ctx := context.Background()
	for _, topic := range topics {
		if _, err := engine.Create(ctx, topic, singleQuestion()); err != nil {
			t.Fatalf("Create %q: %v", topic, err)
		}
	}

	s := New(engine, nil)
	s.Update(s.Init()())
	return s
}

func TestHistoryScreen_Title(t *testing.T) {
	s := testScreen(t)
	if s.Title() != "History" {
		t.Errorf("Title = %q, want %q", s.Title(), "History")
	}
}

func TestHistoryScreen_EscOwnedOnlyWhileSearching(t *testing.T) {
	s := testScreen(t, "go basics")

	if s.WantsEsc() {
		t.Error("esc should pop the screen when no search prompt is open")
	}
	s.Update(keyPress('/'))
	if !s.WantsEsc() {
		t.Error("esc should stay on the screen while searching")
	}
}

func TestHistoryScreen_EscCancelsSearch(t *testing.T) {
	s := testScreen(t, "go basics", "spanish verbs")

	s.Update(keyPress('/'))
	s.Update(keyPress('g'))
	s.Update(keyPress('o'))
	if s.search != "go" {
		t.Fatalf("search = %q, want %q", s.search, "go")
	}

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if s.searching {
		t.Error("expected search prompt closed after esc")
	}
	if s.search != "" {
		t.Errorf("search = %q, want cleared", s.search)
	}
	if cmd == nil {
		t.Fatal("expected a reload command after cancelling a search")
	}
	msg := cmd()
	if _, ok := msg.(router.PopScreenMsg); ok {
		t.Fatal("esc during search must not pop the screen")
	}
	loaded, ok := msg.(historyLoadedMsg)
	if !ok {
		t.Fatalf("cmd msg = %T, want historyLoadedMsg", msg)
	}
	s.Update(loaded)
	if len(s.sessions) != 2 {
		t.Errorf("sessions = %d, want 2 (unfiltered after cancel)", len(s.sessions))
	}
}

func TestHistoryScreen_EnterAppliesSearch(t *testing.T) {
	s := testScreen(t, "go basics", "spanish verbs")

	s.Update(keyPress('/'))
	for _, r := range "verbs" {
		s.Update(keyPress(r))
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if s.searching {
		t.Error("expected search prompt closed after enter")
	}
	if cmd == nil {
		t.Fatal("expected a reload command after applying a search")
	}
	loaded, ok := cmd().(historyLoadedMsg)
	if !ok {
		t.Fatalf("cmd msg = %T, want historyLoadedMsg", cmd())
	}
	s.Update(loaded)
	if len(s.sessions) != 1 || s.sessions[0].Topic != "spanish verbs" {
		t.Errorf("filtered sessions = %+v, want only spanish verbs", s.sessions)
	}
}

func TestHistoryScreen_BackspaceEditsSearch(t *testing.T) {
	s := testScreen(t)

	s.Update(keyPress('/'))
	s.Update(keyPress('g'))
	s.Update(keyPress('o'))
	s.Update(specialKey(tea.KeyBackspace))
	if s.search != "g" {
		t.Errorf("search = %q, want %q", s.search, "g")
	}
}
