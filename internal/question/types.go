package question

// Kind is the question variant tag.
type Kind string

const (
	// KindMultipleChoice is a single-answer question with labeled choices.
	KindMultipleChoice Kind = "multiple-choice"

	// KindOrdering asks the user to arrange items into the correct sequence.
	KindOrdering Kind = "ordering"

	// KindMatching asks the user to pair items from two columns.
	KindMatching Kind = "matching"
)

// Choice is a single labeled option, e.g. {"A", "An interface type"} for a
// multiple-choice answer or {"1", "1972"} for a right-column matching item.
type Choice struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// Pair connects a left-column label to a right-column label.
type Pair struct {
	Left  string `json:"left"`
	Right string `json:"right"`
}

// Question is a parsed, ready-to-ask question. Which fields are populated
// depends on Kind; scoring and rendering switch exhaustively on it.
type Question struct {
	Kind   Kind   `json:"kind"`
	Prompt string `json:"prompt"`

	// Multiple-choice fields.
	Choices      []Choice `json:"choices,omitempty"`
	CorrectLabel string   `json:"correct_label,omitempty"`

	// Ordering fields. CorrectOrder holds 0-based indices into Items: the
	// item at Items[CorrectOrder[0]] comes first, and so on.
	Items        []string `json:"items,omitempty"`
	CorrectOrder []int    `json:"correct_order,omitempty"`

	// Matching fields.
	Left         []Choice `json:"left,omitempty"`
	Right        []Choice `json:"right,omitempty"`
	CorrectPairs []Pair   `json:"correct_pairs,omitempty"`

	// Explanation is the worked reasoning shown after answering.
	// For matching questions PairExplanations may carry one entry per pair
	// instead; Explanation then holds the first of them.
	Explanation      string   `json:"explanation,omitempty"`
	PairExplanations []string `json:"pair_explanations,omitempty"`
}

// AnswerKind tags the shape of a user's answer.
type AnswerKind string

const (
	// AnswerNone is the unanswered sentinel. The zero Answer has this kind,
	// so a freshly allocated answer slice is all-unanswered.
	AnswerNone AnswerKind = ""

	AnswerChoice   AnswerKind = "choice"
	AnswerSequence AnswerKind = "sequence"
	AnswerMatches  AnswerKind = "matches"
)

// Answer is a user's answer to one question. One type covers every question
// variant so that a session can hold a uniform answer slice; the unanswered
// sentinel is the zero value rather than a per-variant nil or empty slice.
type Answer struct {
	Kind AnswerKind `json:"kind"`

	// Label is the chosen option for multiple-choice.
	Label string `json:"label,omitempty"`

	// Sequence is the submitted item order for ordering questions,
	// 0-based indices into Question.Items.
	Sequence []int `json:"sequence,omitempty"`

	// Matches are the submitted pairs for matching questions.
	Matches []Pair `json:"matches,omitempty"`
}

// Answered reports whether the answer slot has been set.
func (a Answer) Answered() bool {
	return a.Kind != AnswerNone
}

// ChoiceAnswer builds a multiple-choice answer.
func ChoiceAnswer(label string) Answer {
	return Answer{Kind: AnswerChoice, Label: label}
}

// SequenceAnswer builds an ordering answer from 0-based item indices.
func SequenceAnswer(order ...int) Answer {
	return Answer{Kind: AnswerSequence, Sequence: order}
}

// MatchAnswer builds a matching answer.
func MatchAnswer(pairs ...Pair) Answer {
	return Answer{Kind: AnswerMatches, Matches: pairs}
}
