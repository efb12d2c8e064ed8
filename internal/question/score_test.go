package question

import "testing"

func mcQuestion() Question {
	return Question{
		Kind:   KindMultipleChoice,
		Prompt: "Pick B",
		Choices: []Choice{
			{Label: "A", Text: "first"},
			{Label: "B", Text: "second"},
		},
		CorrectLabel: "B",
	}
}

func orderingQuestion() Question {
	// Correct 1-based sequence 2,3,1 over [x y z] -> 0-based [1 2 0].
	return Question{
		Kind:         KindOrdering,
		Prompt:       "Order the items",
		Items:        []string{"x", "y", "z"},
		CorrectOrder: []int{1, 2, 0},
	}
}

func matchingQuestion() Question {
	return Question{
		Kind:   KindMatching,
		Prompt: "Match them",
		Left:   []Choice{{Label: "A", Text: "go"}, {Label: "B", Text: "c"}},
		Right:  []Choice{{Label: "1", Text: "1972"}, {Label: "2", Text: "2009"}},
		CorrectPairs: []Pair{
			{Left: "A", Right: "2"},
			{Left: "B", Right: "1"},
		},
	}
}

func TestEvaluateMultipleChoice(t *testing.T) {
	q := mcQuestion()

	if !Evaluate(q, ChoiceAnswer("B")) {
		t.Error("exact label match should be correct")
	}
	if Evaluate(q, ChoiceAnswer("A")) {
		t.Error("wrong label should be incorrect")
	}
	if Evaluate(q, ChoiceAnswer("b")) {
		t.Error("label comparison is exact, lowercase should be incorrect")
	}
	if Evaluate(q, Answer{}) {
		t.Error("unanswered sentinel should never be correct")
	}
}

func TestEvaluateOrdering(t *testing.T) {
	q := orderingQuestion()

	if !Evaluate(q, SequenceAnswer(1, 2, 0)) {
		t.Error("matching permutation should be correct")
	}
	if Evaluate(q, SequenceAnswer(0, 1, 2)) {
		t.Error("wrong order should be incorrect")
	}
	if Evaluate(q, SequenceAnswer(1, 2)) {
		t.Error("shorter sequence should be incorrect")
	}
}

func TestEvaluateMatching(t *testing.T) {
	q := matchingQuestion()

	// Same pairs in reversed submission order are still a set match.
	reversed := MatchAnswer(Pair{Left: "B", Right: "1"}, Pair{Left: "A", Right: "2"})
	if !Evaluate(q, reversed) {
		t.Error("pair order must not matter")
	}

	if Evaluate(q, MatchAnswer(Pair{Left: "A", Right: "2"})) {
		t.Error("cardinality mismatch should be incorrect")
	}
	wrong := MatchAnswer(Pair{Left: "A", Right: "1"}, Pair{Left: "B", Right: "2"})
	if Evaluate(q, wrong) {
		t.Error("swapped pairs should be incorrect")
	}
	dup := MatchAnswer(Pair{Left: "A", Right: "2"}, Pair{Left: "A", Right: "2"})
	if Evaluate(q, dup) {
		t.Error("duplicate pair should not satisfy cardinality")
	}
}

func TestEvaluateKindMismatch(t *testing.T) {
	if Evaluate(mcQuestion(), SequenceAnswer(0)) {
		t.Error("sequence answer to a multiple-choice question should be incorrect")
	}
	if Evaluate(orderingQuestion(), ChoiceAnswer("A")) {
		t.Error("choice answer to an ordering question should be incorrect")
	}
}
