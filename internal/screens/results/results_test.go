package results

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/topiq/internal/question"
	"github.com/abhisek/topiq/internal/router"
	"github.com/abhisek/topiq/internal/screen"
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

func (r *memRepo) List(_ context.Context, _ store.Filter) ([]*store.SessionRecord, error) {
	var out []*store.SessionRecord
	for _, rec := range r.records {
		cp := *rec
		out = append(out, &cp)
	}
	return out, nil
}

func finishedState(t *testing.T) (*session.Engine, *session.State) {
	t.Helper()
	engine := session.NewEngine(newMemRepo())

	questions := []question.Question{
		{
			Kind:   question.KindMultipleChoice,
			Prompt: "What closes a channel?",
			Choices: []question.Choice{
				{Label: "A", Text: "close"},
				{Label: "B", Text: "delete"},
			},
			CorrectLabel: "A",
		},
		{
			Kind:   question.KindMultipleChoice,
			Prompt: "What starts a goroutine?",
			Choices: []question.Choice{
				{Label: "A", Text: "run"},
				{Label: "B", Text: "go"},
			},
			CorrectLabel: "B",
		},
	}

	ctx := context.Background()
	st, err := engine.Create(ctx, "Go concurrency", questions)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := engine.SubmitAnswer(ctx, st, 0, question.ChoiceAnswer("A")); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if err := engine.SubmitAnswer(ctx, st, 1, question.ChoiceAnswer("A")); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if err := engine.Finish(ctx, st); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	return engine, st
}

func TestResultsScreen_Title(t *testing.T) {
	engine, st := finishedState(t)
	s := New(engine, st)
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestResultsScreen_ViewShowsScore(t *testing.T) {
	engine, st := finishedState(t)
	s := New(engine, st)

	view := s.View(80, 24)
	if !strings.Contains(view, "Quiz complete!") {
		t.Error("expected completion banner in view")
	}
	if !strings.Contains(view, "1/2") {
		t.Errorf("expected score 1/2 in view, got:\n%s", view)
	}
	// 50% lands in the needs-work band; its message renders in the band color.
	if !strings.Contains(view, question.BandNeedsWork.Message()) {
		t.Errorf("expected band message %q in view", question.BandNeedsWork.Message())
	}
}

func TestBandColors(t *testing.T) {
	bands := []question.Band{
		question.BandPerfect,
		question.BandGreat,
		question.BandPass,
		question.BandNeedsWork,
		question.BandPoor,
	}
	for _, band := range bands {
		if bandColor(band) == nil {
			t.Errorf("bandColor(%q) = nil, want a color", band)
		}
	}
}

func TestResultsScreen_EnterPops(t *testing.T) {
	engine, st := finishedState(t)
	s := New(engine, st)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a PopScreenMsg on Enter")
	}
}

func TestResultsScreen_RetakeStartsFreshSession(t *testing.T) {
	engine, st := finishedState(t)
	s := New(engine, st)

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on retake")
	}
	msg, ok := cmd().(screen.StartQuizMsg)
	if !ok {
		t.Fatal("expected a StartQuizMsg on retake")
	}
	if msg.State.ID == st.ID {
		t.Error("retake reused the original session ID")
	}
	if msg.State.AnsweredCount() != 0 {
		t.Errorf("retake AnsweredCount = %d, want 0", msg.State.AnsweredCount())
	}
	if st.Score != 1 {
		t.Errorf("original Score = %d, want 1", st.Score)
	}
}
