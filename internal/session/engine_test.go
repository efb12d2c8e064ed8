package session

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/abhisek/topiq/internal/question"
	"github.com/abhisek/topiq/internal/store"
)

// memRepo is an in-memory SessionRepo for engine tests.
type memRepo struct {
	records  map[string]*store.SessionRecord
	nextID   int
	failSave bool
	saves    int
}

func newMemRepo() *memRepo {
	return &memRepo{records: map[string]*store.SessionRecord{}}
}

func (r *memRepo) Save(ctx context.Context, rec *store.SessionRecord) (string, error) {
	if r.failSave {
		return "", errors.New("disk full")
	}
	r.saves++
	if rec.ID == "" {
		r.nextID++
		rec.ID = string(rune('a' + r.nextID - 1))
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	cp := *rec
	cp.Questions = append([]question.Question(nil), rec.Questions...)
	cp.Answers = append([]question.Answer(nil), rec.Answers...)
	r.records[rec.ID] = &cp
	return rec.ID, nil
}

func (r *memRepo) Load(ctx context.Context, id string) (*store.SessionRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *rec
	cp.Questions = append([]question.Question(nil), rec.Questions...)
	cp.Answers = append([]question.Answer(nil), rec.Answers...)
	return &cp, nil
}

func (r *memRepo) Delete(ctx context.Context, id string) error {
	delete(r.records, id)
	return nil
}

func (r *memRepo) List(ctx context.Context, f store.Filter) ([]*store.SessionRecord, error) {
	var recs []*store.SessionRecord
	for _, rec := range r.records {
		if f.Status != "" && rec.Status != f.Status {
			continue
		}
		recs = append(recs, rec)
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].CreatedAt.After(recs[j].CreatedAt)
	})
	return recs, nil
}

func testQuestions() []question.Question {
	return []question.Question{
		{
			Kind:   question.KindMultipleChoice,
			Prompt: "Pick B.",
			Choices: []question.Choice{
				{Label: "A", Text: "wrong"},
				{Label: "B", Text: "right"},
			},
			CorrectLabel: "B",
		},
		{
			Kind:         question.KindOrdering,
			Prompt:       "Order x, y, z.",
			Items:        []string{"x", "y", "z"},
			CorrectOrder: []int{1, 2, 0},
		},
		{
			Kind:   question.KindMatching,
			Prompt: "Match.",
			Left:   []question.Choice{{Label: "A", Text: "a"}, {Label: "B", Text: "b"}},
			Right:  []question.Choice{{Label: "1", Text: "one"}, {Label: "2", Text: "two"}},
			CorrectPairs: []question.Pair{
				{Left: "A", Right: "2"},
				{Left: "B", Right: "1"},
			},
		},
	}
}

func newTestEngine() (*Engine, *memRepo) {
	repo := newMemRepo()
	return NewEngine(repo), repo
}

func TestCreateRequiresQuestions(t *testing.T) {
	e, _ := newTestEngine()
	_, err := e.Create(context.Background(), "anything", nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("create with no questions = %v, want ErrNoQuestions", err)
	}
}

func TestCreatePersistsImmediately(t *testing.T) {
	e, repo := newTestEngine()
	st, err := e.Create(context.Background(), "go basics", testQuestions())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if st.ID == "" {
		t.Fatal("expected assigned id after create")
	}
	if _, ok := repo.records[st.ID]; !ok {
		t.Fatal("session not persisted on create")
	}
	if st.Status != store.StatusIncomplete {
		t.Errorf("status = %q, want incomplete", st.Status)
	}
	if st.CurrentIndex != 0 || st.Score != 0 {
		t.Errorf("index/score = %d/%d, want 0/0", st.CurrentIndex, st.Score)
	}
	for i := range st.Answers {
		if st.Answers[i].Answered() {
			t.Errorf("answer %d should start unanswered", i)
		}
	}
}

func TestCreateSurvivesStorageFailure(t *testing.T) {
	e, repo := newTestEngine()
	repo.failSave = true

	st, err := e.Create(context.Background(), "go basics", testQuestions())
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("create with failing store = %v, want StorageError", err)
	}
	if st == nil {
		t.Fatal("session should remain usable in memory despite storage failure")
	}

	// The session keeps working unsynced.
	if err := e.Advance(st, Next); err != nil {
		t.Errorf("advance on unsynced session: %v", err)
	}
}

func TestResumeRoundTrip(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()

	st, err := e.Create(ctx, "go basics", testQuestions())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := e.SubmitAnswer(ctx, st, 0, question.ChoiceAnswer("B")); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := e.Advance(st, Next); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if err := e.Save(ctx, st); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := e.Resume(ctx, st.ID)
	if err != nil {
		t.Fatalf("resume: %v", err)
	}
	if got.Topic != st.Topic {
		t.Errorf("topic = %q, want %q", got.Topic, st.Topic)
	}
	if got.CurrentIndex != 1 {
		t.Errorf("index = %d, want 1", got.CurrentIndex)
	}
	if got.Score != 1 {
		t.Errorf("score = %d, want 1", got.Score)
	}
	if !got.Answers[0].Answered() || got.Answers[0].Label != "B" {
		t.Errorf("answer 0 = %+v, want choice B", got.Answers[0])
	}
	if got.Phase != PhaseActive {
		t.Errorf("phase = %v, want active", got.Phase)
	}
}

func TestResumeNotFound(t *testing.T) {
	e, _ := newTestEngine()
	_, err := e.Resume(context.Background(), "missing")
	if !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("resume missing = %v, want ErrNotFound", err)
	}
}

func TestSubmitAnswerScoresCorrect(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	st, _ := e.Create(ctx, "t", testQuestions())

	if err := e.SubmitAnswer(ctx, st, 0, question.ChoiceAnswer("B")); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if st.Score != 1 {
		t.Errorf("score after correct answer = %d, want 1", st.Score)
	}

	if err := e.SubmitAnswer(ctx, st, 1, question.SequenceAnswer(0, 1, 2)); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if st.Score != 1 {
		t.Errorf("score after wrong answer = %d, want 1", st.Score)
	}
}

func TestSubmitAnswerAtMostOnce(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	st, _ := e.Create(ctx, "t", testQuestions())

	if err := e.SubmitAnswer(ctx, st, 0, question.ChoiceAnswer("A")); err != nil {
		t.Fatalf("first submit: %v", err)
	}
	// Second submission with a different (correct) answer must be ignored.
	if err := e.SubmitAnswer(ctx, st, 0, question.ChoiceAnswer("B")); err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if st.Answers[0].Label != "A" {
		t.Errorf("answer = %q, want first submission A", st.Answers[0].Label)
	}
	if st.Score != 0 {
		t.Errorf("score = %d, want 0 (first answer was wrong)", st.Score)
	}
}

func TestSubmitAnswerIndexOutOfRange(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	st, _ := e.Create(ctx, "t", testQuestions())

	if err := e.SubmitAnswer(ctx, st, 3, question.ChoiceAnswer("A")); err == nil {
		t.Error("expected error for out-of-range index")
	}
	if err := e.SubmitAnswer(ctx, st, -1, question.ChoiceAnswer("A")); err == nil {
		t.Error("expected error for negative index")
	}
}

func TestSubmitAnswerSnapshots(t *testing.T) {
	e, repo := newTestEngine()
	ctx := context.Background()
	st, _ := e.Create(ctx, "t", testQuestions())

	before := repo.saves
	if err := e.SubmitAnswer(ctx, st, 0, question.ChoiceAnswer("B")); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if repo.saves != before+1 {
		t.Errorf("saves = %d, want %d (submit triggers a snapshot)", repo.saves, before+1)
	}

	// A failing snapshot is logged, never propagated.
	repo.failSave = true
	if err := e.SubmitAnswer(ctx, st, 1, question.SequenceAnswer(1, 2, 0)); err != nil {
		t.Errorf("submit with failing snapshot = %v, want nil", err)
	}
	if st.Score != 2 {
		t.Errorf("score = %d, want 2 (answer recorded despite failed snapshot)", st.Score)
	}
}

func TestAdvanceBounds(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	st, _ := e.Create(ctx, "t", testQuestions())
	n := len(st.Questions)

	// Previous at index 0 is a no-op.
	if err := e.Advance(st, Previous); err != nil {
		t.Fatalf("advance: %v", err)
	}
	if st.CurrentIndex != 0 {
		t.Errorf("index after previous at 0 = %d, want 0", st.CurrentIndex)
	}

	// Walk forward past the end; index must stay in range throughout.
	for i := 0; i < n+3; i++ {
		if err := e.Advance(st, Next); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		if st.CurrentIndex < 0 || st.CurrentIndex >= n {
			t.Fatalf("index %d out of range after advance", st.CurrentIndex)
		}
	}
	if st.CurrentIndex != n-1 {
		t.Errorf("index = %d, want %d (next at last is a no-op)", st.CurrentIndex, n-1)
	}
}

func TestFinishRejectsIncomplete(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	st, _ := e.Create(ctx, "t", testQuestions())

	// Answer 2 of 3.
	e.SubmitAnswer(ctx, st, 0, question.ChoiceAnswer("B"))
	e.SubmitAnswer(ctx, st, 2, question.MatchAnswer(
		question.Pair{Left: "A", Right: "2"},
		question.Pair{Left: "B", Right: "1"},
	))

	err := e.Finish(ctx, st)
	var inc *IncompleteError
	if !errors.As(err, &inc) {
		t.Fatalf("finish = %v, want IncompleteError", err)
	}
	if len(inc.Unanswered) != 1 || inc.Unanswered[0] != 1 {
		t.Errorf("unanswered = %v, want [1]", inc.Unanswered)
	}
	if st.Status != store.StatusIncomplete {
		t.Errorf("status = %q, want incomplete after rejected finish", st.Status)
	}
}

func TestFinishFreezesSession(t *testing.T) {
	e, repo := newTestEngine()
	ctx := context.Background()
	st, _ := e.Create(ctx, "t", testQuestions())

	e.SubmitAnswer(ctx, st, 0, question.ChoiceAnswer("B"))
	e.SubmitAnswer(ctx, st, 1, question.SequenceAnswer(1, 2, 0))
	e.SubmitAnswer(ctx, st, 2, question.MatchAnswer(
		question.Pair{Left: "B", Right: "1"},
		question.Pair{Left: "A", Right: "2"},
	))

	if err := e.Finish(ctx, st); err != nil {
		t.Fatalf("finish: %v", err)
	}
	if st.Status != store.StatusCompleted {
		t.Errorf("status = %q, want completed", st.Status)
	}
	if st.CompletedAt.IsZero() {
		t.Error("completed timestamp not set")
	}
	if repo.records[st.ID].Status != store.StatusCompleted {
		t.Error("completed status not persisted")
	}

	// Terminal: all further mutation is rejected.
	if err := e.SubmitAnswer(ctx, st, 0, question.ChoiceAnswer("A")); !errors.Is(err, ErrAlreadyFinished) {
		t.Errorf("submit after finish = %v, want ErrAlreadyFinished", err)
	}
	if err := e.Advance(st, Next); !errors.Is(err, ErrAlreadyFinished) {
		t.Errorf("advance after finish = %v, want ErrAlreadyFinished", err)
	}
	if err := e.Finish(ctx, st); !errors.Is(err, ErrAlreadyFinished) {
		t.Errorf("second finish = %v, want ErrAlreadyFinished", err)
	}
}

func TestRetakeLeavesSourceUntouched(t *testing.T) {
	e, repo := newTestEngine()
	ctx := context.Background()
	st, _ := e.Create(ctx, "go basics", testQuestions())

	e.SubmitAnswer(ctx, st, 0, question.ChoiceAnswer("B"))
	e.SubmitAnswer(ctx, st, 1, question.SequenceAnswer(1, 2, 0))
	e.SubmitAnswer(ctx, st, 2, question.MatchAnswer(
		question.Pair{Left: "A", Right: "2"},
		question.Pair{Left: "B", Right: "1"},
	))
	if err := e.Finish(ctx, st); err != nil {
		t.Fatalf("finish: %v", err)
	}

	fresh, err := e.Retake(ctx, st.ID)
	if err != nil {
		t.Fatalf("retake: %v", err)
	}
	if fresh.ID == st.ID {
		t.Fatal("retake must create a new session id")
	}
	if fresh.Topic != st.Topic || len(fresh.Questions) != len(st.Questions) {
		t.Error("retake must copy topic and questions")
	}
	if fresh.Score != 0 || fresh.Status != store.StatusIncomplete {
		t.Errorf("retake score/status = %d/%q, want 0/incomplete", fresh.Score, fresh.Status)
	}
	for i := range fresh.Answers {
		if fresh.Answers[i].Answered() {
			t.Errorf("retake answer %d should be unanswered", i)
		}
	}

	src := repo.records[st.ID]
	if src.Status != store.StatusCompleted || src.Score != 3 {
		t.Errorf("source record mutated by retake: %+v", src)
	}
}

func TestAutosaveSkipsCompleted(t *testing.T) {
	e, repo := newTestEngine()
	ctx := context.Background()
	st, _ := e.Create(ctx, "t", testQuestions())
	saver := NewSaver(e, time.Millisecond)

	// First tick after the interval saves an in-progress session.
	time.Sleep(2 * time.Millisecond)
	if !saver.MaybeSave(ctx, st) {
		t.Error("expected autosave for in-progress session")
	}

	e.SubmitAnswer(ctx, st, 0, question.ChoiceAnswer("B"))
	e.SubmitAnswer(ctx, st, 1, question.SequenceAnswer(1, 2, 0))
	e.SubmitAnswer(ctx, st, 2, question.MatchAnswer(
		question.Pair{Left: "A", Right: "2"},
		question.Pair{Left: "B", Right: "1"},
	))
	if err := e.Finish(ctx, st); err != nil {
		t.Fatalf("finish: %v", err)
	}

	before := repo.saves
	time.Sleep(2 * time.Millisecond)
	if saver.MaybeSave(ctx, st) {
		t.Error("autosave must skip completed sessions")
	}
	saver.Flush(ctx, st)
	if repo.saves != before {
		t.Errorf("saves = %d, want %d (no writes after completion)", repo.saves, before)
	}
}

func TestAutosaveRetriesUnsyncedFinish(t *testing.T) {
	e, repo := newTestEngine()
	ctx := context.Background()
	st, _ := e.Create(ctx, "t", testQuestions())
	saver := NewSaver(e, time.Millisecond)

	e.SubmitAnswer(ctx, st, 0, question.ChoiceAnswer("B"))
	e.SubmitAnswer(ctx, st, 1, question.SequenceAnswer(1, 2, 0))
	e.SubmitAnswer(ctx, st, 2, question.MatchAnswer(
		question.Pair{Left: "A", Right: "2"},
		question.Pair{Left: "B", Right: "1"},
	))

	// The finishing save fails: the session is completed in memory but the
	// stored record still says incomplete.
	repo.failSave = true
	err := e.Finish(ctx, st)
	var serr *StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("finish with failing store = %v, want StorageError", err)
	}
	if st.Status != store.StatusCompleted {
		t.Fatalf("status = %q, want completed despite failed save", st.Status)
	}
	if repo.records[st.ID].Status != store.StatusIncomplete {
		t.Fatal("stored record should still be incomplete")
	}

	// Once storage recovers, the saver retries the terminal snapshot.
	repo.failSave = false
	time.Sleep(2 * time.Millisecond)
	if !saver.MaybeSave(ctx, st) {
		t.Error("expected autosave retry for unsynced completed session")
	}
	if repo.records[st.ID].Status != store.StatusCompleted {
		t.Error("completed status not persisted on retry")
	}

	// Synced now: no further writes.
	before := repo.saves
	saver.Flush(ctx, st)
	if repo.saves != before {
		t.Errorf("saves = %d, want %d (synced completed session is frozen)", repo.saves, before)
	}
}

func TestSaverRespectsInterval(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	st, _ := e.Create(ctx, "t", testQuestions())
	saver := NewSaver(e, time.Hour)

	if !saver.MaybeSave(ctx, st) {
		t.Error("first tick should save")
	}
	if saver.MaybeSave(ctx, st) {
		t.Error("second tick inside the interval should not save")
	}
}

func TestBuildSummary(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	st, _ := e.Create(ctx, "go basics", testQuestions())

	e.SubmitAnswer(ctx, st, 0, question.ChoiceAnswer("B"))
	e.SubmitAnswer(ctx, st, 1, question.SequenceAnswer(0, 1, 2)) // wrong
	e.SubmitAnswer(ctx, st, 2, question.MatchAnswer(
		question.Pair{Left: "A", Right: "2"},
		question.Pair{Left: "B", Right: "1"},
	))
	if err := e.Finish(ctx, st); err != nil {
		t.Fatalf("finish: %v", err)
	}

	sum := BuildSummary(st)
	if sum.Correct != 2 || sum.Total != 3 {
		t.Errorf("correct/total = %d/%d, want 2/3", sum.Correct, sum.Total)
	}
	if sum.Percentage != 67 {
		t.Errorf("percentage = %d, want 67", sum.Percentage)
	}
	if sum.Band != question.BandPass {
		t.Errorf("band = %q, want pass", sum.Band)
	}
	if sum.Message == "" {
		t.Error("expected non-empty band message")
	}
}

func TestScoreMatchesRecomputation(t *testing.T) {
	e, _ := newTestEngine()
	ctx := context.Background()
	st, _ := e.Create(ctx, "t", testQuestions())

	e.SubmitAnswer(ctx, st, 0, question.ChoiceAnswer("B"))
	e.SubmitAnswer(ctx, st, 1, question.SequenceAnswer(1, 2, 0))
	e.SubmitAnswer(ctx, st, 2, question.MatchAnswer(question.Pair{Left: "A", Right: "1"}, question.Pair{Left: "B", Right: "2"}))

	recomputed := 0
	for i, q := range st.Questions {
		if question.Evaluate(q, st.Answers[i]) {
			recomputed++
		}
	}
	if st.Score != recomputed {
		t.Errorf("running score = %d, recomputed = %d", st.Score, recomputed)
	}
}
