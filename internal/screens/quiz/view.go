package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/topiq/internal/question"
	"github.com/abhisek/topiq/internal/ui/components"
	"github.com/abhisek/topiq/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(s.renderProgress(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	q := s.state.Current()
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Foreground(theme.Text).
		Bold(true).
		Render("  " + q.Prompt))
	b.WriteString("\n\n")

	idx := s.state.CurrentIndex
	if s.showFeedback || s.state.Answered(idx) {
		b.WriteString(s.renderFeedback(q, s.state.Answers[idx]))
	} else {
		b.WriteString(s.renderInteraction())
	}

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render("  "+s.errMsg) + "\n")
	}

	return b.String()
}

func (s *QuizScreen) renderProgress(width int) string {
	answered := s.state.AnsweredCount()
	total := len(s.state.Questions)
	bar := components.NewProgressBar(
		fmt.Sprintf("  %d/%d answered", answered, total),
		float64(answered)/float64(total),
		false,
		width-8,
	)
	return bar.View()
}

func (s *QuizScreen) renderInteraction() string {
	switch s.current.kind {
	case question.KindMultipleChoice:
		return s.current.picker.View(false, "", "") +
			"\n" + theme.Hint.Render("  ↑/↓ select · enter submit")
	case question.KindOrdering:
		return s.current.arranger.View() +
			"\n" + theme.Hint.Render("  ↑/↓ move cursor · K/J move item · enter submit")
	case question.KindMatching:
		return s.current.matcher.View()
	}
	return ""
}

// renderFeedback shows the correctness verdict and the worked explanation
// for an answered question. Correctness is recomputed from the stored
// answer, so review after resume renders identically.
func (s *QuizScreen) renderFeedback(q question.Question, ans question.Answer) string {
	var b strings.Builder

	if question.Evaluate(q, ans) {
		b.WriteString(theme.Correct.Render("  ✓ Correct") + "\n\n")
	} else {
		b.WriteString(theme.Incorrect.Render("  ✗ Incorrect") + "\n\n")
	}

	switch q.Kind {
	case question.KindMultipleChoice:
		picker := components.NewChoicePicker(q.Choices)
		b.WriteString(picker.View(true, q.CorrectLabel, ans.Label))

	case question.KindOrdering:
		b.WriteString(theme.Subtitle.Render("  Your order") + "\n")
		b.WriteString(renderSequence(q.Items, ans.Sequence))
		b.WriteString("\n" + theme.Subtitle.Render("  Correct order") + "\n")
		b.WriteString(renderSequence(q.Items, q.CorrectOrder))

	case question.KindMatching:
		correct := make(map[string]string, len(q.CorrectPairs))
		for _, p := range q.CorrectPairs {
			correct[p.Left] = p.Right
		}
		for _, p := range ans.Matches {
			line := fmt.Sprintf("  %s → %s", p.Left, p.Right)
			if correct[p.Left] == p.Right {
				b.WriteString(theme.Correct.Render(line) + "\n")
			} else {
				b.WriteString(theme.Incorrect.Render(
					fmt.Sprintf("%s (correct: %s)", line, correct[p.Left])) + "\n")
			}
		}
	}

	if q.Explanation != "" {
		b.WriteString("\n" + theme.Hint.Render("  "+q.Explanation) + "\n")
	}
	if q.Kind == question.KindMatching {
		for i, expl := range q.PairExplanations {
			if i == 0 && expl == q.Explanation {
				continue
			}
			b.WriteString(theme.Hint.Render("  "+expl) + "\n")
		}
	}

	return b.String()
}

// renderSequence shows items in the order given by 0-based indices.
func renderSequence(items []string, order []int) string {
	var b strings.Builder
	for pos, idx := range order {
		if idx < 0 || idx >= len(items) {
			continue
		}
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("    %d. %s", pos+1, items[idx])) + "\n")
	}
	return b.String()
}
