package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/topiq/internal/question"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"quiz_sessions", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}

func sampleQuestions() []question.Question {
	return []question.Question{
		{
			Kind:   question.KindMultipleChoice,
			Prompt: "What is the capital of France?",
			Choices: []question.Choice{
				{Label: "A", Text: "Paris"},
				{Label: "B", Text: "Lyon"},
			},
			CorrectLabel: "A",
			Explanation:  "Paris is the capital.",
		},
		{
			Kind:         question.KindOrdering,
			Prompt:       "Order the steps.",
			Items:        []string{"boil water", "add pasta", "drain"},
			CorrectOrder: []int{0, 1, 2},
		},
		{
			Kind:   question.KindMatching,
			Prompt: "Match countries to capitals.",
			Left: []question.Choice{
				{Label: "A", Text: "France"},
				{Label: "B", Text: "Spain"},
			},
			Right: []question.Choice{
				{Label: "1", Text: "Madrid"},
				{Label: "2", Text: "Paris"},
			},
			CorrectPairs: []question.Pair{{Left: "A", Right: "2"}, {Left: "B", Right: "1"}},
		},
	}
}

func TestSessionSaveAssignsID(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	rec := &SessionRecord{
		Topic:     "geography",
		Questions: sampleQuestions(),
		Answers:   make([]question.Answer, 3),
		Status:    StatusIncomplete,
	}
	id, err := repo.Save(ctx, rec)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if id == "" {
		t.Fatal("expected non-empty session id")
	}
	if rec.ID != id {
		t.Errorf("rec.ID = %q, want %q", rec.ID, id)
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	questions := sampleQuestions()
	answers := []question.Answer{
		question.ChoiceAnswer("A"),
		question.SequenceAnswer(2, 0, 1),
		{},
	}
	saved := time.Now().UTC().Truncate(time.Second)
	rec := &SessionRecord{
		Topic:        "geography",
		Questions:    questions,
		Answers:      answers,
		CurrentIndex: 2,
		Score:        1,
		Status:       StatusIncomplete,
		LastSavedAt:  saved,
	}

	id, err := repo.Save(ctx, rec)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx, id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Topic != "geography" {
		t.Errorf("topic = %q, want geography", got.Topic)
	}
	if len(got.Questions) != 3 {
		t.Fatalf("questions = %d, want 3", len(got.Questions))
	}
	if got.Questions[0].Kind != question.KindMultipleChoice {
		t.Errorf("question 0 kind = %q, want multiple-choice", got.Questions[0].Kind)
	}
	if got.Questions[2].CorrectPairs[0] != (question.Pair{Left: "A", Right: "2"}) {
		t.Errorf("matching pair = %+v", got.Questions[2].CorrectPairs[0])
	}
	if got.CurrentIndex != 2 {
		t.Errorf("current index = %d, want 2", got.CurrentIndex)
	}
	if got.Score != 1 {
		t.Errorf("score = %d, want 1", got.Score)
	}
	if !got.Answers[0].Answered() || got.Answers[0].Label != "A" {
		t.Errorf("answer 0 = %+v, want choice A", got.Answers[0])
	}
	if got.Answers[2].Answered() {
		t.Error("answer 2 should be unanswered")
	}
	if !got.LastSavedAt.Equal(saved) {
		t.Errorf("last saved = %v, want %v", got.LastSavedAt, saved)
	}
	if got.CompletedAt != (time.Time{}) {
		t.Errorf("completed at = %v, want zero", got.CompletedAt)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created at should be set by the store")
	}
}

func TestSessionSaveUpserts(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	rec := &SessionRecord{
		Topic:     "history",
		Questions: sampleQuestions(),
		Answers:   make([]question.Answer, 3),
		Status:    StatusIncomplete,
	}
	id, err := repo.Save(ctx, rec)
	if err != nil {
		t.Fatalf("first save: %v", err)
	}

	rec.Score = 3
	rec.Status = StatusCompleted
	rec.CompletedAt = time.Now().UTC().Truncate(time.Second)
	id2, err := repo.Save(ctx, rec)
	if err != nil {
		t.Fatalf("second save: %v", err)
	}
	if id2 != id {
		t.Fatalf("second save id = %q, want %q", id2, id)
	}

	count, err := s.Client().QuizSession.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}

	got, err := repo.Load(ctx, id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Status != StatusCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if got.Score != 3 {
		t.Errorf("score = %d, want 3", got.Score)
	}
	if got.CompletedAt.IsZero() {
		t.Error("completed at should survive the round trip")
	}
}

func TestSessionLoadNotFound(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()

	_, err := repo.Load(context.Background(), "no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("load missing = %v, want ErrNotFound", err)
	}
}

func TestSessionDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	rec := &SessionRecord{
		Topic:     "math",
		Questions: sampleQuestions(),
		Answers:   make([]question.Answer, 3),
		Status:    StatusIncomplete,
	}
	id, err := repo.Save(ctx, rec)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.Load(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("load after delete = %v, want ErrNotFound", err)
	}

	// Deleting a missing id is not an error.
	if err := repo.Delete(ctx, "no-such-id"); err != nil {
		t.Errorf("delete missing: %v", err)
	}
}

func TestSessionListNewestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	topics := []string{"alpha", "beta", "gamma"}
	for i, topic := range topics {
		rec := &SessionRecord{
			Topic:     topic,
			Questions: sampleQuestions(),
			Answers:   make([]question.Answer, 3),
			Status:    StatusIncomplete,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if _, err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("save %s: %v", topic, err)
		}
	}

	recs, err := repo.List(ctx, Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("listed %d sessions, want 3", len(recs))
	}
	for i, want := range []string{"gamma", "beta", "alpha"} {
		if recs[i].Topic != want {
			t.Errorf("recs[%d].Topic = %q, want %q", i, recs[i].Topic, want)
		}
	}
}

func TestSessionListFilters(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second).Add(-time.Hour)
	seed := []struct {
		topic  string
		status Status
		offset time.Duration
	}{
		{"World Geography", StatusCompleted, 0},
		{"Roman History", StatusIncomplete, 10 * time.Minute},
		{"Geography of Asia", StatusIncomplete, 20 * time.Minute},
	}
	for _, sd := range seed {
		rec := &SessionRecord{
			Topic:     sd.topic,
			Questions: sampleQuestions(),
			Answers:   make([]question.Answer, 3),
			Status:    sd.status,
			CreatedAt: base.Add(sd.offset),
		}
		if _, err := repo.Save(ctx, rec); err != nil {
			t.Fatalf("save %s: %v", sd.topic, err)
		}
	}

	byStatus, err := repo.List(ctx, Filter{Status: StatusIncomplete})
	if err != nil {
		t.Fatalf("list by status: %v", err)
	}
	if len(byStatus) != 2 {
		t.Errorf("incomplete sessions = %d, want 2", len(byStatus))
	}

	byTopic, err := repo.List(ctx, Filter{Topic: "geography"})
	if err != nil {
		t.Fatalf("list by topic: %v", err)
	}
	if len(byTopic) != 2 {
		t.Errorf("geography sessions = %d, want 2", len(byTopic))
	}

	since, err := repo.List(ctx, Filter{Since: base.Add(5 * time.Minute)})
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(since) != 2 {
		t.Errorf("recent sessions = %d, want 2", len(since))
	}
}

func TestLoadRejectsCorruptPayload(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Client().QuizSession.Create().
		SetSessionID("corrupt").
		SetTopic("broken").
		SetQuestionCount(1).
		SetPayload(map[string]any{"questions": "not-an-array"}).
		Save(ctx)
	if err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	_, err = s.Sessions().Load(ctx, "corrupt")
	if err == nil {
		t.Fatal("expected validation error for corrupt payload")
	}
}

func TestEventRepoAppendAndRecent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-model",
			Purpose:      "quiz-generation",
			InputTokens:  100 + i,
			OutputTokens: 200 + i,
			LatencyMs:    int64(50 * (i + 1)),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("recent returned %d events, want 2", len(events))
	}
	if events[0].Provider != "mock" || !events[0].Success {
		t.Errorf("event = %+v", events[0])
	}
}
