package quizgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/topiq/internal/question"
)

const systemPrompt = `You are a quiz author creating questions for a study application.

Rules:
- Write questions in the same language as the given topic.
- Every question must be self-contained, factually correct, and unambiguous.
- Follow the requested output format exactly. Do not add numbering, markdown, or commentary around the blocks.
- Separate consecutive question blocks with a line containing only "---".
- The reason line must briefly justify the correct answer.
- Do not repeat any question from the "existing questions" list.`

const multipleChoiceFormat = `Question: <question>
A. <answer A>
B. <answer B>
C. <answer C>
D. <answer D>
Correct answer: <letter of correct answer>
Reason: <reason for correct answer>`

const orderingFormat = `Question: <question>
Items:
A. <item>
B. <item>
C. <item>
D. <item>
Correct sequence: <comma-separated 1-based positions, e.g. 2,3,1,4>
Reason: <reason for the correct order>`

const matchingFormat = `Question: <question>
Column A:
A. <left item>
B. <left item>
Column B:
1. <right item>
2. <right item>
Correct matches: <pairs like A-2,B-1>
Reason: <reason for the matches>`

var kindFormats = map[question.Kind]string{
	question.KindMultipleChoice: multipleChoiceFormat,
	question.KindOrdering:       orderingFormat,
	question.KindMatching:       matchingFormat,
}

var kindNames = map[question.Kind]string{
	question.KindMultipleChoice: "multiple-choice (4 options, exactly 1 correct)",
	question.KindOrdering:       "ordering (arrange items into the correct sequence)",
	question.KindMatching:       "matching (pair items from column A with column B)",
}

// buildBatchMessage constructs the user message for a full quiz request.
func buildBatchMessage(input GenerateInput) string {
	kinds := input.Mix.kinds()

	var b strings.Builder
	fmt.Fprintf(&b, "Create %d different questions about: %s.\n", input.Count, input.Topic)
	if input.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s.\n", input.Difficulty)
	}

	b.WriteString("Allowed question types:\n")
	for _, k := range kinds {
		fmt.Fprintf(&b, "- %s\n", kindNames[k])
	}
	if len(kinds) > 1 {
		b.WriteString("Mix the types across the quiz.\n")
	}

	b.WriteString("\nReturn each question in the matching format below and separate blocks with \"---\":\n")
	for _, k := range kinds {
		b.WriteString("\n")
		b.WriteString(kindFormats[k])
		b.WriteString("\n")
	}
	return b.String()
}

// buildSingleMessage constructs the user message for one replacement or
// additional question, with a dedup list of existing prompts.
func buildSingleMessage(input GenerateInput, maxExclude int) string {
	kinds := input.Mix.kinds()
	k := kinds[0]

	var b strings.Builder
	fmt.Fprintf(&b, "Create 1 %s question about: %s.\n", kindNames[k], input.Topic)
	if input.Difficulty != "" {
		fmt.Fprintf(&b, "Difficulty: %s.\n", input.Difficulty)
	}

	b.WriteString("It must not duplicate any of these existing questions:\n")
	b.WriteString(buildDedup(input.Exclude, maxExclude))

	b.WriteString("\n\nReturn in the format:\n")
	b.WriteString(kindFormats[k])
	return b.String()
}

// buildDedup formats existing prompts for the dedup list, keeping only the
// most recent entries when the list exceeds max.
func buildDedup(prompts []string, max int) string {
	if len(prompts) == 0 {
		return "None"
	}
	if max > 0 && len(prompts) > max {
		prompts = prompts[len(prompts)-max:]
	}

	var b strings.Builder
	for i, p := range prompts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return strings.TrimRight(b.String(), "\n")
}
