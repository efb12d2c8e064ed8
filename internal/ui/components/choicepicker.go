package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/topiq/internal/question"
	"github.com/abhisek/topiq/internal/ui/theme"
)

// ChoicePicker selects one labeled option for a multiple-choice question.
type ChoicePicker struct {
	Choices []question.Choice
	Cursor  int

	// Done and Chosen are set once the user confirms a choice.
	Done   bool
	Chosen string
}

// NewChoicePicker creates a picker over the question's choices.
func NewChoicePicker(choices []question.Choice) ChoicePicker {
	return ChoicePicker{Choices: choices}
}

// Update handles keyboard navigation and selection.
func (p ChoicePicker) Update(msg tea.Msg) (ChoicePicker, tea.Cmd) {
	if p.Done {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Cursor > 0 {
			p.Cursor--
		}
	case "down", "j":
		if p.Cursor < len(p.Choices)-1 {
			p.Cursor++
		}
	case "enter":
		if p.Cursor >= 0 && p.Cursor < len(p.Choices) {
			p.Done = true
			p.Chosen = p.Choices[p.Cursor].Label
		}
	}

	return p, nil
}

// View renders the choices. When feedback is on, the correct choice is
// highlighted green and a wrong pick red.
func (p ChoicePicker) View(feedback bool, correctLabel, chosenLabel string) string {
	var s string
	for i, c := range p.Choices {
		prefix := "  "
		if i == p.Cursor && !feedback && !p.Done {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s. %s", prefix, c.Label, c.Text)

		switch {
		case feedback && c.Label == correctLabel:
			s += theme.Correct.Render(line) + "\n"
		case feedback && c.Label == chosenLabel:
			s += theme.Incorrect.Render(line) + "\n"
		case feedback:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == p.Cursor:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
