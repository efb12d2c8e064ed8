package quizgen

import (
	"context"
	"errors"

	"github.com/abhisek/topiq/internal/question"
)

// Difficulty is the requested difficulty level for a quiz.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// VariantMix selects which question kinds a quiz may contain.
type VariantMix struct {
	MultipleChoice bool
	Ordering       bool
	Matching       bool
}

// DefaultMix is all multiple-choice, matching the common case.
func DefaultMix() VariantMix {
	return VariantMix{MultipleChoice: true}
}

// kinds returns the enabled kinds, defaulting to multiple-choice when the
// mix is empty.
func (m VariantMix) kinds() []question.Kind {
	var ks []question.Kind
	if m.MultipleChoice {
		ks = append(ks, question.KindMultipleChoice)
	}
	if m.Ordering {
		ks = append(ks, question.KindOrdering)
	}
	if m.Matching {
		ks = append(ks, question.KindMatching)
	}
	if len(ks) == 0 {
		ks = []question.Kind{question.KindMultipleChoice}
	}
	return ks
}

// GenerateInput holds all context needed to generate a quiz.
type GenerateInput struct {
	// Topic is the user-entered subject, in any language. Generated
	// questions follow the topic's language.
	Topic string

	// Difficulty is the requested difficulty level.
	Difficulty Difficulty

	// Count is the number of questions requested, within [MinQuestions,
	// MaxQuestions].
	Count int

	// Mix selects the allowed question variants.
	Mix VariantMix

	// Exclude lists prompts of questions already in the quiz, so a
	// replacement or addition does not duplicate them.
	Exclude []string
}

// MinQuestions and MaxQuestions bound the requested count.
const (
	MinQuestions = 1
	MaxQuestions = 50
)

// ErrNoQuestions is returned when a generation response yields zero
// parseable questions. The caller reports it and stays on the setup screen.
var ErrNoQuestions = errors.New("no questions could be generated")

// Generator produces quiz questions.
type Generator interface {
	// Generate produces up to input.Count questions. Blocks that fail to
	// parse are dropped; an entirely unusable response is ErrNoQuestions.
	Generate(ctx context.Context, input GenerateInput) ([]question.Question, error)

	// GenerateOne produces a single question, avoiding the prompts listed
	// in input.Exclude. Used to replace or add a question during preview.
	GenerateOne(ctx context.Context, input GenerateInput) (question.Question, error)
}
