package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/topiq/internal/question"
	"github.com/abhisek/topiq/internal/ui/theme"
)

// MatchPicker pairs items from two columns. The cursor moves over the left
// column; pressing a right item's label (1-9) assigns that match, backspace
// clears it, and enter submits once every left item is paired.
type MatchPicker struct {
	Left   []question.Choice
	Right  []question.Choice
	Cursor int

	// assigned maps left label to right label.
	assigned map[string]string

	// Done is set on submit; Pairs is the final set of matches.
	Done  bool
	Pairs []question.Pair
}

// NewMatchPicker creates a picker over the question's columns.
func NewMatchPicker(left, right []question.Choice) MatchPicker {
	return MatchPicker{
		Left:     left,
		Right:    right,
		assigned: make(map[string]string),
	}
}

// Complete reports whether every left item has a match.
func (m MatchPicker) Complete() bool {
	return len(m.assigned) == len(m.Left)
}

// Update handles navigation, assignment, and submit.
func (m MatchPicker) Update(msg tea.Msg) (MatchPicker, tea.Cmd) {
	if m.Done {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Left)-1 {
			m.Cursor++
		}
	case "backspace":
		delete(m.assigned, m.Left[m.Cursor].Label)
	case "enter":
		if m.Complete() {
			m.Done = true
			m.Pairs = m.pairs()
		}
	default:
		if len(key) == 1 && hasRightLabel(m.Right, key) {
			m.assigned[m.Left[m.Cursor].Label] = key
			if m.Cursor < len(m.Left)-1 {
				m.Cursor++
			}
		}
	}

	return m, nil
}

func hasRightLabel(right []question.Choice, label string) bool {
	for _, c := range right {
		if c.Label == label {
			return true
		}
	}
	return false
}

// pairs converts assignments into match pairs, in left-column order.
func (m MatchPicker) pairs() []question.Pair {
	pairs := make([]question.Pair, 0, len(m.assigned))
	for _, l := range m.Left {
		if r, ok := m.assigned[l.Label]; ok {
			pairs = append(pairs, question.Pair{Left: l.Label, Right: r})
		}
	}
	return pairs
}

// View renders both columns and the current assignments.
func (m MatchPicker) View() string {
	var b strings.Builder

	b.WriteString(theme.Subtitle.Render("Column A") + "\n")
	for i, l := range m.Left {
		marker := " "
		if r, ok := m.assigned[l.Label]; ok {
			marker = "→ " + r
		}
		line := fmt.Sprintf("  %s. %s  %s", l.Label, l.Text, marker)
		if i == m.Cursor && !m.Done {
			b.WriteString(theme.Selected.Render("▸"+line[1:]) + "\n")
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n")
		}
	}

	b.WriteString("\n" + theme.Subtitle.Render("Column B") + "\n")
	for _, r := range m.Right {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(
			fmt.Sprintf("  %s. %s", r.Label, r.Text)) + "\n")
	}

	if !m.Done {
		if m.Complete() {
			b.WriteString("\n" + theme.Hint.Render("enter submit · backspace clear match"))
		} else {
			b.WriteString("\n" + theme.Hint.Render("press a number to match the highlighted item"))
		}
	}

	return b.String()
}
