package quiz

import (
	"context"
	"testing"

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

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []question.Question {
	return []question.Question{
		{
			Kind:   question.KindMultipleChoice,
			Prompt: "Which keyword declares a constant?",
			Choices: []question.Choice{
				{Label: "A", Text: "const"},
				{Label: "B", Text: "var"},
				{Label: "C", Text: "static"},
			},
			CorrectLabel: "A",
		},
		{
			Kind:   question.KindMultipleChoice,
			Prompt: "Which builtin appends to a slice?",
			Choices: []question.Choice{
				{Label: "A", Text: "push"},
				{Label: "B", Text: "append"},
			},
			CorrectLabel: "B",
		},
	}
}

func testScreen(t *testing.T) (*QuizScreen, *session.State) {
	t.Helper()
	engine := session.NewEngine(newMemRepo())
	st, err := engine.Create(context.Background(), "Go basics", testQuestions())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return New(engine, st), st
}

func TestQuizScreen_Title(t *testing.T) {
	s, _ := testScreen(t)
	if s.Title() != "Quiz: Go basics" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz: Go basics")
	}
}

func TestQuizScreen_Status(t *testing.T) {
	s, _ := testScreen(t)
	if got := s.Status(); got != "Q 1/2 · 0 answered · score 0" {
		t.Errorf("Status = %q, want %q", got, "Q 1/2 · 0 answered · score 0")
	}
}

func TestQuizScreen_SubmitShowsFeedbackThenAdvances(t *testing.T) {
	s, st := testScreen(t)

	// Select choice A on question 1.
	s.Update(specialKey(tea.KeyEnter))
	if !st.Answered(0) {
		t.Fatal("expected question 0 answered after enter")
	}
	if !s.showFeedback {
		t.Error("expected feedback after submitting")
	}

	// Dismissing feedback advances to the next question.
	s.Update(specialKey(tea.KeyEnter))
	if s.showFeedback {
		t.Error("expected feedback dismissed")
	}
	if st.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d, want 1", st.CurrentIndex)
	}
}

func TestQuizScreen_AnsweredQuestionIsReadOnly(t *testing.T) {
	s, st := testScreen(t)

	s.Update(specialKey(tea.KeyEnter)) // answer A
	s.Update(specialKey(tea.KeyEnter)) // dismiss, advance to q2
	s.Update(specialKey(tea.KeyLeft))  // back to q1

	s.Update(keyPress('j'))
	s.Update(specialKey(tea.KeyEnter))

	if st.Answers[0].Label != "A" {
		t.Errorf("answer changed to %q, want original %q", st.Answers[0].Label, "A")
	}
}

func TestQuizScreen_NavigationStopsAtBounds(t *testing.T) {
	s, st := testScreen(t)

	s.Update(specialKey(tea.KeyLeft))
	if st.CurrentIndex != 0 {
		t.Errorf("CurrentIndex = %d after left at first question, want 0", st.CurrentIndex)
	}

	s.Update(specialKey(tea.KeyRight))
	s.Update(specialKey(tea.KeyRight))
	if st.CurrentIndex != 1 {
		t.Errorf("CurrentIndex = %d after right at last question, want 1", st.CurrentIndex)
	}
}

func TestQuizScreen_FinishRequiresAllAnswered(t *testing.T) {
	s, st := testScreen(t)

	s.Update(keyPress('f'))
	if st.Finished() {
		t.Error("session finished with unanswered questions")
	}
	if s.errMsg == "" {
		t.Error("expected an error message about remaining questions")
	}
}

func TestQuizScreen_FinishReplacesWithResults(t *testing.T) {
	s, st := testScreen(t)

	s.Update(specialKey(tea.KeyEnter)) // answer q1
	s.Update(specialKey(tea.KeyEnter)) // advance
	s.Update(keyPress('j'))            // move to B
	s.Update(specialKey(tea.KeyEnter)) // answer q2
	s.Update(specialKey(tea.KeyEnter)) // dismiss

	_, cmd := s.Update(keyPress('f'))
	if cmd == nil {
		t.Fatal("expected a command on finish")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected a ReplaceScreenMsg to the results screen")
	}
	if !st.Finished() {
		t.Error("expected session finished")
	}
	if st.Score != 2 {
		t.Errorf("Score = %d, want 2", st.Score)
	}
}

func TestQuizScreen_ViewRendersPrompt(t *testing.T) {
	s, _ := testScreen(t)
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty view")
	}
}
