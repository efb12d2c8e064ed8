package quizgen

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/topiq/internal/llm"
	"github.com/abhisek/topiq/internal/question"
)

const sampleBatch = `Question: What is the capital of France?
A. Paris
B. Lyon
C. Nice
D. Marseille
Correct answer: A
Reason: Paris has been the capital since 987.
---
Question: Arrange the planets by distance from the sun.
Items:
A. Earth
B. Mercury
C. Venus
Correct sequence: 2,3,1
Reason: Mercury is closest, then Venus, then Earth.
---
Question: Match the inventor to the invention.
Column A:
A. Bell
B. Edison
Column B:
1. Phonograph
2. Telephone
Correct matches: A-2,B-1
Reason: Bell patented the telephone in 1876.`

func batchInput(count int) GenerateInput {
	return GenerateInput{
		Topic:      "general knowledge",
		Difficulty: DifficultyMedium,
		Count:      count,
		Mix:        VariantMix{MultipleChoice: true, Ordering: true, Matching: true},
	}
}

func TestGenerateParsesAllVariants(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: sampleBatch})
	g := New(mock, DefaultConfig())

	qs, err := g.Generate(context.Background(), batchInput(3))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 3 {
		t.Fatalf("generated %d questions, want 3", len(qs))
	}

	wantKinds := []question.Kind{
		question.KindMultipleChoice,
		question.KindOrdering,
		question.KindMatching,
	}
	for i, want := range wantKinds {
		if qs[i].Kind != want {
			t.Errorf("question %d kind = %q, want %q", i, qs[i].Kind, want)
		}
	}
	if qs[1].CorrectOrder[0] != 1 {
		t.Errorf("ordering not converted to 0-based: %v", qs[1].CorrectOrder)
	}
}

func TestGenerateDropsMalformedBlocks(t *testing.T) {
	content := sampleBatch + "\n---\nThis block has no recognizable structure."
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	g := New(mock, DefaultConfig())

	qs, err := g.Generate(context.Background(), batchInput(10))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 3 {
		t.Errorf("generated %d questions, want 3 (malformed block dropped)", len(qs))
	}
}

func TestGenerateEmptyResponseFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: ""})
	g := New(mock, DefaultConfig())

	_, err := g.Generate(context.Background(), batchInput(5))
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("generate with empty response = %v, want ErrNoQuestions", err)
	}
}

func TestGenerateTruncatesOvershoot(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: sampleBatch})
	g := New(mock, DefaultConfig())

	qs, err := g.Generate(context.Background(), batchInput(2))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(qs) != 2 {
		t.Errorf("generated %d questions, want 2 (extras dropped)", len(qs))
	}
}

func TestGenerateRejectsBadCount(t *testing.T) {
	g := New(llm.NewMockProvider(), DefaultConfig())

	for _, count := range []int{0, -1, MaxQuestions + 1} {
		if _, err := g.Generate(context.Background(), batchInput(count)); err == nil {
			t.Errorf("count %d: expected error", count)
		}
	}
}

func TestGenerateOneExcludesExisting(t *testing.T) {
	block := `Question: What is the capital of Spain?
A. Madrid
B. Barcelona
C. Seville
D. Valencia
Correct answer: A
Reason: Madrid is the capital.`
	mock := llm.NewMockProvider(llm.MockResponse{Content: block})
	g := New(mock, DefaultConfig())

	input := batchInput(1)
	input.Mix = DefaultMix()
	input.Exclude = []string{"What is the capital of France?"}

	q, err := g.GenerateOne(context.Background(), input)
	if err != nil {
		t.Fatalf("generate one: %v", err)
	}
	if q.Prompt != "What is the capital of Spain?" {
		t.Errorf("prompt = %q", q.Prompt)
	}

	sent := mock.Calls[0].Messages[0].Content
	if !strings.Contains(sent, "What is the capital of France?") {
		t.Error("dedup list missing from prompt")
	}
}

func TestGenerateOneEmptyResponseFails(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: "no questions here"})
	g := New(mock, DefaultConfig())

	_, err := g.GenerateOne(context.Background(), batchInput(1))
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("generate one = %v, want ErrNoQuestions", err)
	}
}

func TestBuildDedupTruncates(t *testing.T) {
	prompts := []string{"one", "two", "three", "four"}
	got := buildDedup(prompts, 2)
	if strings.Contains(got, "one") || !strings.Contains(got, "four") {
		t.Errorf("dedup list = %q, want only the last 2 entries", got)
	}
	if buildDedup(nil, 5) != "None" {
		t.Error("empty dedup list should read None")
	}
}

func TestBatchMessageListsFormats(t *testing.T) {
	msg := buildBatchMessage(batchInput(5))
	for _, marker := range []string{"Correct answer:", "Correct sequence:", "Correct matches:", `"---"`} {
		if !strings.Contains(msg, marker) {
			t.Errorf("batch message missing %q", marker)
		}
	}
}
