package preview

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/topiq/internal/question"
	"github.com/abhisek/topiq/internal/quizgen"
	"github.com/abhisek/topiq/internal/router"
	"github.com/abhisek/topiq/internal/screen"
	"github.com/abhisek/topiq/internal/screens/quiz"
	"github.com/abhisek/topiq/internal/session"
	"github.com/abhisek/topiq/internal/ui/layout"
	"github.com/abhisek/topiq/internal/ui/theme"
)

// questionMsg carries the outcome of an async replace or add request.
type questionMsg struct {
	Question question.Question
	Replace  int // index to replace, or -1 to append
	Err      error
}

// PreviewScreen shows generated questions before the quiz starts. Individual
// questions can be deleted, regenerated, or added up to the requested count.
type PreviewScreen struct {
	engine    *session.Engine
	generator quizgen.Generator
	input     quizgen.GenerateInput
	questions []question.Question

	cursor int
	busy   bool
	errMsg string
}

var _ screen.Screen = (*PreviewScreen)(nil)
var _ screen.KeyHintProvider = (*PreviewScreen)(nil)

// New creates the preview screen over freshly generated questions.
func New(engine *session.Engine, generator quizgen.Generator, input quizgen.GenerateInput, questions []question.Question) *PreviewScreen {
	return &PreviewScreen{
		engine:    engine,
		generator: generator,
		input:     input,
		questions: questions,
	}
}

func (s *PreviewScreen) Init() tea.Cmd {
	return nil
}

func (s *PreviewScreen) Title() string {
	return "Preview"
}

func (s *PreviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start quiz"},
		{Key: "D", Description: "Delete"},
		{Key: "R", Description: "Replace"},
		{Key: "A", Description: "Add"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PreviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionMsg:
		s.busy = false
		if msg.Err != nil {
			s.errMsg = fmt.Sprintf("Generation failed: %v", msg.Err)
			return s, nil
		}
		s.errMsg = ""
		if msg.Replace >= 0 && msg.Replace < len(s.questions) {
			s.questions[msg.Replace] = msg.Question
		} else {
			s.questions = append(s.questions, msg.Question)
		}
		return s, nil

	case tea.KeyMsg:
		if s.busy {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.questions)-1 {
				s.cursor++
			}
		case "d", "D":
			s.deleteCurrent()
		case "r", "R":
			if len(s.questions) > 0 {
				s.busy = true
				return s, s.generateOne(s.cursor)
			}
		case "a", "A":
			if len(s.questions) >= s.input.Count {
				s.errMsg = fmt.Sprintf("The quiz can have at most %d questions.", s.input.Count)
				return s, nil
			}
			s.busy = true
			return s, s.generateOne(-1)
		case "enter":
			return s.startQuiz()
		}
	}

	return s, nil
}

// deleteCurrent removes the selected question, keeping at least one.
func (s *PreviewScreen) deleteCurrent() {
	if len(s.questions) <= 1 {
		s.errMsg = "A quiz needs at least one question."
		return
	}
	s.errMsg = ""
	s.questions = append(s.questions[:s.cursor], s.questions[s.cursor+1:]...)
	if s.cursor >= len(s.questions) {
		s.cursor = len(s.questions) - 1
	}
}

// generateOne requests a single question that avoids duplicating the
// current set. replaceIdx < 0 appends instead of replacing.
func (s *PreviewScreen) generateOne(replaceIdx int) tea.Cmd {
	input := s.input
	input.Exclude = make([]string, 0, len(s.questions))
	for _, q := range s.questions {
		input.Exclude = append(input.Exclude, q.Prompt)
	}

	return func() tea.Msg {
		q, err := s.generator.GenerateOne(context.Background(), input)
		return questionMsg{Question: q, Replace: replaceIdx, Err: err}
	}
}

// startQuiz creates the session and hands over to the quiz screen.
func (s *PreviewScreen) startQuiz() (screen.Screen, tea.Cmd) {
	st, err := s.engine.Create(context.Background(), s.input.Topic, s.questions)
	if st == nil {
		s.errMsg = fmt.Sprintf("Could not start the quiz: %v", err)
		return s, nil
	}
	if err != nil {
		// Unsynced but playable; the next snapshot retries.
		fmt.Fprintf(os.Stderr, "warning: failed to persist new session: %v\n", err)
	}

	engine, state := s.engine, st
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: quiz.New(engine, state)}
	}
}

func (s *PreviewScreen) View(width, height int) string {
	var b strings.Builder

	header := fmt.Sprintf("  %d questions on %q", len(s.questions), s.input.Topic)
	b.WriteString(theme.Body.Bold(true).Render(header) + "\n\n")

	for i, q := range s.questions {
		prefix := "  "
		if i == s.cursor {
			prefix = "▸ "
		}
		prompt := q.Prompt
		if len(prompt) > width-20 && width > 20 {
			prompt = prompt[:width-23] + "..."
		}
		line := fmt.Sprintf("%s%2d. [%s] %s", prefix, i+1, shortKind(q.Kind), prompt)
		if i == s.cursor {
			b.WriteString(theme.Selected.Render(line) + "\n")
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n")
		}
	}

	if s.busy {
		b.WriteString("\n" + theme.Hint.Render("  Generating…") + "\n")
	}
	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render("  "+s.errMsg) + "\n")
	}

	return b.String()
}

func shortKind(k question.Kind) string {
	switch k {
	case question.KindOrdering:
		return "order"
	case question.KindMatching:
		return "match"
	default:
		return "choice"
	}
}
