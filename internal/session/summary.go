package session

import "github.com/abhisek/topiq/internal/question"

// Summary holds the data displayed on the results screen.
type Summary struct {
	Topic      string
	Total      int
	Correct    int
	Percentage int
	Band       question.Band
	Message    string
}

// BuildSummary derives the results view from a session. The score is
// recomputed from the stored answers rather than trusted, so a summary built
// from a reloaded snapshot always agrees with review rendering.
func BuildSummary(st *State) *Summary {
	correct := 0
	for i, q := range st.Questions {
		if question.Evaluate(q, st.Answers[i]) {
			correct++
		}
	}

	pct := question.Percentage(correct, len(st.Questions))
	band := question.BandFor(pct)
	return &Summary{
		Topic:      st.Topic,
		Total:      len(st.Questions),
		Correct:    correct,
		Percentage: pct,
		Band:       band,
		Message:    band.Message(),
	}
}
