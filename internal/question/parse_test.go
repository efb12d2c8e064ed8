package question

import (
	"reflect"
	"testing"
)

const mcBlock = `Question: Which keyword declares a constant in Go?
A. var
B. const
C. let
D. final
Correct answer: B
Reason: Go uses the const keyword for compile-time constants.`

const orderingBlock = `Question: Arrange the steps of a compile-run cycle.
Items:
1. Run the binary
2. Write the source
3. Compile the source
Correct sequence: 2,3,1
Reason: Source is written, then compiled, then executed.`

const matchingBlock = `Question: Match each language to its first release year.
Column A:
A. Go
B. C
Column B:
1. 1972
2. 2009
Correct matches: A-2,B-1
Reason: Go was announced in 2009.
Reason: C dates back to 1972.`

func TestParseBlockMultipleChoice(t *testing.T) {
	q, err := ParseBlock(mcBlock)
	if err != nil {
		t.Fatalf("ParseBlock: %v", err)
	}

	if q.Kind != KindMultipleChoice {
		t.Errorf("kind = %q, want %q", q.Kind, KindMultipleChoice)
	}
	if q.Prompt != "Which keyword declares a constant in Go?" {
		t.Errorf("prompt = %q", q.Prompt)
	}
	if len(q.Choices) != 4 {
		t.Fatalf("len(choices) = %d, want 4", len(q.Choices))
	}
	if q.Choices[1].Label != "B" || q.Choices[1].Text != "const" {
		t.Errorf("choices[1] = %+v", q.Choices[1])
	}
	if q.CorrectLabel != "B" {
		t.Errorf("correct label = %q, want B", q.CorrectLabel)
	}
	if q.Explanation == "" {
		t.Error("expected explanation")
	}
}

func TestParseBlockVietnamesePrefixes(t *testing.T) {
	block := `Câu hỏi: Thủ đô của Việt Nam là gì?
A. Hà Nội
B. Đà Nẵng
Đáp án đúng: A
Lý do: Hà Nội là thủ đô.`

	q, err := ParseBlock(block)
	if err != nil {
		t.Fatalf("ParseBlock: %v", err)
	}
	if q.Prompt != "Thủ đô của Việt Nam là gì?" {
		t.Errorf("prompt = %q", q.Prompt)
	}
	if q.CorrectLabel != "A" {
		t.Errorf("correct label = %q, want A", q.CorrectLabel)
	}
	if q.Explanation != "Hà Nội là thủ đô." {
		t.Errorf("explanation = %q", q.Explanation)
	}
}

func TestParseBlockMultipleChoicePermissiveChoices(t *testing.T) {
	// Fewer than 4 options is tolerated as long as prompt and correct
	// answer are present.
	block := `Question: True or false: Go has generics.
A. True
B. False
Correct answer: A`

	q, err := ParseBlock(block)
	if err != nil {
		t.Fatalf("ParseBlock: %v", err)
	}
	if len(q.Choices) != 2 {
		t.Errorf("len(choices) = %d, want 2", len(q.Choices))
	}
}

func TestParseBlockMultipleChoiceFailures(t *testing.T) {
	tests := []struct {
		name  string
		block string
	}{
		{"empty", "   \n \n"},
		{"missing prompt", "A. one\nB. two\nCorrect answer: A"},
		{"missing correct answer", "Question: pick one\nA. one\nB. two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBlock(tt.block); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestParseBlockOrdering(t *testing.T) {
	q, err := ParseBlock(orderingBlock)
	if err != nil {
		t.Fatalf("ParseBlock: %v", err)
	}

	if q.Kind != KindOrdering {
		t.Errorf("kind = %q, want %q", q.Kind, KindOrdering)
	}
	wantItems := []string{"Run the binary", "Write the source", "Compile the source"}
	if !reflect.DeepEqual(q.Items, wantItems) {
		t.Errorf("items = %v, want %v", q.Items, wantItems)
	}
	// "2,3,1" converts to 0-based [1,2,0].
	if !reflect.DeepEqual(q.CorrectOrder, []int{1, 2, 0}) {
		t.Errorf("correct order = %v, want [1 2 0]", q.CorrectOrder)
	}
}

func TestParseBlockOrderingFailures(t *testing.T) {
	tests := []struct {
		name  string
		block string
	}{
		{
			"no items",
			"Question: order these\nCorrect sequence: 1",
		},
		{
			"sequence length mismatch",
			"Question: order these\nItems:\n1. a\n2. b\nCorrect sequence: 1",
		},
		{
			"out of range",
			"Question: order these\nItems:\n1. a\n2. b\nCorrect sequence: 1,3",
		},
		{
			"duplicate entry",
			"Question: order these\nItems:\n1. a\n2. b\nCorrect sequence: 1,1",
		},
		{
			"not a number",
			"Question: order these\nItems:\n1. a\n2. b\nCorrect sequence: 1,x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBlock(tt.block); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestParseBlockMatching(t *testing.T) {
	q, err := ParseBlock(matchingBlock)
	if err != nil {
		t.Fatalf("ParseBlock: %v", err)
	}

	if q.Kind != KindMatching {
		t.Errorf("kind = %q, want %q", q.Kind, KindMatching)
	}
	if len(q.Left) != 2 || len(q.Right) != 2 {
		t.Fatalf("columns = %d/%d, want 2/2", len(q.Left), len(q.Right))
	}
	if q.Left[0].Label != "A" || q.Left[0].Text != "Go" {
		t.Errorf("left[0] = %+v", q.Left[0])
	}
	wantPairs := []Pair{{Left: "A", Right: "2"}, {Left: "B", Right: "1"}}
	if !reflect.DeepEqual(q.CorrectPairs, wantPairs) {
		t.Errorf("pairs = %v, want %v", q.CorrectPairs, wantPairs)
	}
	if len(q.PairExplanations) != 2 {
		t.Errorf("len(pair explanations) = %d, want 2", len(q.PairExplanations))
	}
}

func TestParseBlockMatchingFailures(t *testing.T) {
	tests := []struct {
		name  string
		block string
	}{
		{
			"missing column",
			"Question: match\nColumn A:\nA. x\nCorrect matches: A-1",
		},
		{
			"unknown label",
			"Question: match\nColumn A:\nA. x\nColumn B:\n1. y\nCorrect matches: C-1",
		},
		{
			"malformed pair",
			"Question: match\nColumn A:\nA. x\nColumn B:\n1. y\nCorrect matches: A1",
		},
		{
			"no matches line",
			"Question: match\nColumn A:\nA. x\nColumn B:\n1. y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseBlock(tt.block); err == nil {
				t.Error("expected parse error")
			}
		})
	}
}

func TestParseBatch(t *testing.T) {
	content := mcBlock + "\n---\n" + "garbage block without markers" + "\n---\n" + orderingBlock + "\n---\n"

	questions := ParseBatch(content)
	if len(questions) != 2 {
		t.Fatalf("len(questions) = %d, want 2 (malformed block dropped)", len(questions))
	}
	if questions[0].Kind != KindMultipleChoice || questions[1].Kind != KindOrdering {
		t.Errorf("kinds = %q, %q", questions[0].Kind, questions[1].Kind)
	}
}

func TestParseBatchEmptyResponse(t *testing.T) {
	if got := ParseBatch(""); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
	if got := ParseBatch("---\n---"); len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}
