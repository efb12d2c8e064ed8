package results

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/topiq/internal/question"
	"github.com/abhisek/topiq/internal/router"
	"github.com/abhisek/topiq/internal/screen"
	"github.com/abhisek/topiq/internal/session"
	"github.com/abhisek/topiq/internal/ui/layout"
	"github.com/abhisek/topiq/internal/ui/theme"
)

// ResultsScreen displays a completed session's score, band message, and a
// per-question verdict list.
type ResultsScreen struct {
	engine  *session.Engine
	state   *session.State
	summary *session.Summary
	errMsg  string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a finished session.
func New(engine *session.Engine, state *session.State) *ResultsScreen {
	return &ResultsScreen{
		engine:  engine,
		state:   state,
		summary: session.BuildSummary(state),
	}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Retake"},
		{Key: "Enter/Esc", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "enter", "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "r", "R":
		fresh, err := s.engine.Retake(context.Background(), s.state.ID)
		if err != nil {
			s.errMsg = fmt.Sprintf("Retake failed: %v", err)
			return s, nil
		}
		return s, func() tea.Msg { return screen.StartQuizMsg{State: fresh} }
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	sum := s.summary
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Quiz complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Topic: " + sum.Topic))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Score: %d/%d        %d%%", sum.Correct, sum.Total, sum.Percentage)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(bandColor(sum.Band)).
		Render(sum.Message))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	// Per-question verdicts, recomputed from the stored answers.
	for i, q := range s.state.Questions {
		verdict := theme.Incorrect.Render("✗")
		if question.Evaluate(q, s.state.Answers[i]) {
			verdict = theme.Correct.Render("✓")
		}
		prompt := q.Prompt
		if len(prompt) > width-12 && width > 12 {
			prompt = prompt[:width-15] + "..."
		}
		line := fmt.Sprintf("  %s  %2d. %s", verdict, i+1, prompt)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render("  "+s.errMsg) + "\n")
	}

	return b.String()
}

// bandColor maps a score band to its display color.
func bandColor(band question.Band) color.Color {
	switch band {
	case question.BandPerfect, question.BandGreat:
		return theme.Success
	case question.BandPass:
		return theme.Accent
	default:
		return theme.Error
	}
}
