package question

// Evaluate reports whether the answer is correct for the question. It is
// pure: correctness is always recomputed from the question and the stored
// answer, never cached alongside them.
//
// Rules per variant:
//   - multiple-choice: exact label match.
//   - ordering: the submitted 0-based sequence equals the correct
//     permutation position by position.
//   - matching: set equality over unordered pairs, so the same pairs in a
//     different submission order are still correct.
func Evaluate(q Question, a Answer) bool {
	if !a.Answered() {
		return false
	}

	switch q.Kind {
	case KindMultipleChoice:
		return a.Kind == AnswerChoice && a.Label == q.CorrectLabel

	case KindOrdering:
		if a.Kind != AnswerSequence || len(a.Sequence) != len(q.CorrectOrder) {
			return false
		}
		for i, idx := range a.Sequence {
			if idx != q.CorrectOrder[i] {
				return false
			}
		}
		return true

	case KindMatching:
		if a.Kind != AnswerMatches || len(a.Matches) != len(q.CorrectPairs) {
			return false
		}
		correct := make(map[string]string, len(q.CorrectPairs))
		for _, p := range q.CorrectPairs {
			correct[p.Left] = p.Right
		}
		for _, m := range a.Matches {
			right, ok := correct[m.Left]
			if !ok || right != m.Right {
				return false
			}
			// Consume the pair so duplicate submissions cannot satisfy
			// the cardinality check.
			delete(correct, m.Left)
		}
		return true
	}

	return false
}
