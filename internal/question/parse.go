package question

import (
	"fmt"
	"strconv"
	"strings"
)

// BlockSeparator delimits question blocks in a generated batch.
const BlockSeparator = "---"

// ParseError describes why a raw block could not be parsed into a Question.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "parse question: " + e.Reason
}

// Prompt and field prefixes recognized in generated blocks. Matching is
// case-sensitive; English and Vietnamese forms are accepted because the
// generator localizes its output to the topic language.
var (
	promptPrefixes  = []string{"Question:", "Câu hỏi:"}
	correctPrefixes = []string{"Correct answer:", "Đáp án đúng:"}
	reasonPrefixes  = []string{"Reason:", "Lý do:"}
)

const (
	itemsHeader    = "Items:"
	columnAHeader  = "Column A:"
	columnBHeader  = "Column B:"
	sequencePrefix = "Correct sequence:"
	matchesPrefix  = "Correct matches:"
)

// ParseBlock parses one raw text block into a Question. The variant is
// detected from the block's markers: "Correct sequence:" means ordering,
// "Correct matches:" or a column header means matching, anything else is
// multiple-choice. A malformed block yields a *ParseError and no Question.
func ParseBlock(raw string) (Question, error) {
	lines := splitLines(raw)
	if len(lines) == 0 {
		return Question{}, &ParseError{Reason: "empty block"}
	}

	switch detectKind(lines) {
	case KindOrdering:
		return parseOrdering(lines)
	case KindMatching:
		return parseMatching(lines)
	default:
		return parseMultipleChoice(lines)
	}
}

// ParseBatch splits a generated response on the "---" separator and parses
// each block, silently dropping the ones that fail. An empty result is not
// an error here; the caller decides whether zero questions is fatal.
func ParseBatch(content string) []Question {
	var questions []Question
	for _, block := range strings.Split(content, BlockSeparator) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		q, err := ParseBlock(block)
		if err != nil {
			continue
		}
		questions = append(questions, q)
	}
	return questions
}

func splitLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func detectKind(lines []string) Kind {
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, sequencePrefix):
			return KindOrdering
		case strings.HasPrefix(line, matchesPrefix),
			line == columnAHeader, line == columnBHeader:
			return KindMatching
		}
	}
	return KindMultipleChoice
}

// stripPrefix returns the trimmed remainder after the first matching prefix,
// or ("", false) when none matches.
func stripPrefix(line string, prefixes []string) (string, bool) {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return strings.TrimSpace(line[len(p):]), true
		}
	}
	return "", false
}

// choiceLabel returns the label of an "A."-style option line, or "" when the
// line is not an option. Labels are a single letter A-D or digit 1-9.
func choiceLabel(line string) string {
	if len(line) < 2 || line[1] != '.' {
		return ""
	}
	c := line[0]
	if (c >= 'A' && c <= 'D') || (c >= '1' && c <= '9') {
		return string(c)
	}
	return ""
}

func parseChoiceLine(line string) (Choice, bool) {
	label := choiceLabel(line)
	if label == "" {
		return Choice{}, false
	}
	return Choice{Label: label, Text: strings.TrimSpace(line[2:])}, true
}

// parseMultipleChoice requires a prompt and a correct-answer label. The
// choices list is permissive: fewer than 4 options does not fail the block.
func parseMultipleChoice(lines []string) (Question, error) {
	q := Question{Kind: KindMultipleChoice}

	for _, line := range lines {
		if v, ok := stripPrefix(line, promptPrefixes); ok {
			q.Prompt = v
		} else if v, ok := stripPrefix(line, correctPrefixes); ok {
			q.CorrectLabel = v
		} else if v, ok := stripPrefix(line, reasonPrefixes); ok {
			q.Explanation = v
		} else if c, ok := parseChoiceLine(line); ok {
			q.Choices = append(q.Choices, c)
		}
	}

	if q.Prompt == "" {
		return Question{}, &ParseError{Reason: "missing question prompt"}
	}
	if q.CorrectLabel == "" {
		return Question{}, &ParseError{Reason: "missing correct answer"}
	}
	return q, nil
}

// parseOrdering requires a prompt, at least one item, and a comma-separated
// 1-based sequence that is a permutation of the item positions. The stored
// order is converted to 0-based indices.
func parseOrdering(lines []string) (Question, error) {
	q := Question{Kind: KindOrdering}
	var rawSequence string
	inItems := false

	for _, line := range lines {
		if v, ok := stripPrefix(line, promptPrefixes); ok {
			q.Prompt = v
			inItems = false
		} else if line == itemsHeader {
			inItems = true
		} else if v, ok := stripPrefix(line, []string{sequencePrefix}); ok {
			rawSequence = v
			inItems = false
		} else if v, ok := stripPrefix(line, reasonPrefixes); ok {
			q.Explanation = v
			inItems = false
		} else if c, ok := parseChoiceLine(line); ok && inItems {
			q.Items = append(q.Items, c.Text)
		}
	}

	if q.Prompt == "" {
		return Question{}, &ParseError{Reason: "missing question prompt"}
	}
	if len(q.Items) == 0 {
		return Question{}, &ParseError{Reason: "ordering question has no items"}
	}

	order, err := parseSequence(rawSequence, len(q.Items))
	if err != nil {
		return Question{}, err
	}
	q.CorrectOrder = order
	return q, nil
}

// parseSequence converts "2,3,1" into validated 0-based indices. The input
// must be a permutation of 1..n.
func parseSequence(raw string, n int) ([]int, error) {
	if raw == "" {
		return nil, &ParseError{Reason: "missing correct sequence"}
	}
	parts := strings.Split(raw, ",")
	if len(parts) != n {
		return nil, &ParseError{Reason: fmt.Sprintf("sequence has %d entries, want %d", len(parts), n)}
	}

	order := make([]int, n)
	seen := make([]bool, n)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, &ParseError{Reason: fmt.Sprintf("bad sequence entry %q", part)}
		}
		if v < 1 || v > n || seen[v-1] {
			return nil, &ParseError{Reason: fmt.Sprintf("sequence is not a permutation of 1..%d", n)}
		}
		seen[v-1] = true
		order[i] = v - 1
	}
	return order, nil
}

// parseMatching requires a prompt, both columns, and a "L-R,L-R" match list
// whose labels all exist in their columns. Reason lines accumulate as
// per-pair explanations.
func parseMatching(lines []string) (Question, error) {
	q := Question{Kind: KindMatching}
	var rawMatches string
	column := 0 // 0 none, 1 left, 2 right

	for _, line := range lines {
		if v, ok := stripPrefix(line, promptPrefixes); ok {
			q.Prompt = v
			column = 0
		} else if line == columnAHeader {
			column = 1
		} else if line == columnBHeader {
			column = 2
		} else if v, ok := stripPrefix(line, []string{matchesPrefix}); ok {
			rawMatches = v
			column = 0
		} else if v, ok := stripPrefix(line, reasonPrefixes); ok {
			q.PairExplanations = append(q.PairExplanations, v)
			column = 0
		} else if c, ok := parseChoiceLine(line); ok {
			switch column {
			case 1:
				q.Left = append(q.Left, c)
			case 2:
				q.Right = append(q.Right, c)
			}
		}
	}

	if len(q.PairExplanations) > 0 {
		q.Explanation = q.PairExplanations[0]
	}

	if q.Prompt == "" {
		return Question{}, &ParseError{Reason: "missing question prompt"}
	}
	if len(q.Left) == 0 || len(q.Right) == 0 {
		return Question{}, &ParseError{Reason: "matching question is missing a column"}
	}

	pairs, err := parsePairs(rawMatches, q.Left, q.Right)
	if err != nil {
		return Question{}, err
	}
	q.CorrectPairs = pairs
	return q, nil
}

// parsePairs converts "A-2,B-1" into pairs, checking each label against its
// column.
func parsePairs(raw string, left, right []Choice) ([]Pair, error) {
	if raw == "" {
		return nil, &ParseError{Reason: "missing correct matches"}
	}

	var pairs []Pair
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		l, r, ok := strings.Cut(part, "-")
		if !ok {
			return nil, &ParseError{Reason: fmt.Sprintf("bad match entry %q", part)}
		}
		l, r = strings.TrimSpace(l), strings.TrimSpace(r)
		if !hasLabel(left, l) || !hasLabel(right, r) {
			return nil, &ParseError{Reason: fmt.Sprintf("match %q names an unknown label", part)}
		}
		pairs = append(pairs, Pair{Left: l, Right: r})
	}
	return pairs, nil
}

func hasLabel(col []Choice, label string) bool {
	for _, c := range col {
		if c.Label == label {
			return true
		}
	}
	return false
}
