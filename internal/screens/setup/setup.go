package setup

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/topiq/internal/question"
	"github.com/abhisek/topiq/internal/quizgen"
	"github.com/abhisek/topiq/internal/router"
	"github.com/abhisek/topiq/internal/screen"
	"github.com/abhisek/topiq/internal/screens/preview"
	"github.com/abhisek/topiq/internal/session"
	"github.com/abhisek/topiq/internal/ui/components"
	"github.com/abhisek/topiq/internal/ui/layout"
	"github.com/abhisek/topiq/internal/ui/theme"
)

// field indices of the setup form, in tab order.
const (
	fieldTopic = iota
	fieldCount
	fieldDifficulty
	fieldMix
	fieldGenerate
	fieldEnd
)

var difficulties = []quizgen.Difficulty{
	quizgen.DifficultyEasy,
	quizgen.DifficultyMedium,
	quizgen.DifficultyHard,
}

var mixLabels = []string{"multiple-choice", "ordering", "matching"}

// generatedMsg carries the outcome of an async generation request.
type generatedMsg struct {
	Questions []question.Question
	Input     quizgen.GenerateInput
	Err       error
}

// SetupScreen collects topic, count, difficulty, and variant mix, then runs
// generation. The generate action is disabled while a request is in flight
// so a double press cannot start two generations.
type SetupScreen struct {
	engine    *session.Engine
	generator quizgen.Generator

	topic      components.TextInput
	count      components.TextInput
	difficulty int
	mix        [3]bool
	focus      int

	generating bool
	errMsg     string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

// New creates the setup screen.
func New(engine *session.Engine, generator quizgen.Generator) *SetupScreen {
	topic := components.NewTextInput("e.g. the solar system", false, 120)
	count := components.NewTextInput("5", true, 2)
	return &SetupScreen{
		engine:    engine,
		generator: generator,
		topic:     topic,
		count:     count,
		mix:       [3]bool{true, false, false},
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return s.topic.Init()
}

func (s *SetupScreen) Title() string {
	return "New Quiz"
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Generate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		s.generating = false
		if msg.Err != nil {
			s.errMsg = generationError(msg.Err)
			return s, nil
		}
		s.errMsg = ""
		return s, func() tea.Msg {
			return router.PushScreenMsg{
				Screen: preview.New(s.engine, s.generator, msg.Input, msg.Questions),
			}
		}

	case tea.KeyMsg:
		if s.generating {
			return s, nil
		}
		switch msg.String() {
		case "tab", "shift+tab":
			s.moveFocus(msg.String() == "tab")
			return s, nil
		case "enter":
			return s.handleEnter()
		case " ":
			if s.focus == fieldMix {
				return s, nil // handled below via digit keys
			}
		}
		switch s.focus {
		case fieldTopic:
			var cmd tea.Cmd
			s.topic, cmd = s.topic.Update(msg)
			return s, cmd
		case fieldCount:
			var cmd tea.Cmd
			s.count, cmd = s.count.Update(msg)
			return s, cmd
		case fieldDifficulty:
			switch msg.String() {
			case "left", "h":
				if s.difficulty > 0 {
					s.difficulty--
				}
			case "right", "l":
				if s.difficulty < len(difficulties)-1 {
					s.difficulty++
				}
			}
		case fieldMix:
			switch msg.String() {
			case "1", "2", "3":
				i := int(msg.String()[0] - '1')
				s.mix[i] = !s.mix[i]
			}
		}
	}

	return s, nil
}

func (s *SetupScreen) moveFocus(forward bool) {
	if forward {
		s.focus = (s.focus + 1) % fieldEnd
	} else {
		s.focus = (s.focus + fieldEnd - 1) % fieldEnd
	}
}

func (s *SetupScreen) handleEnter() (screen.Screen, tea.Cmd) {
	if s.focus != fieldGenerate {
		s.moveFocus(true)
		return s, nil
	}

	input, err := s.buildInput()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.errMsg = ""
	s.generating = true
	return s, s.generate(input)
}

func (s *SetupScreen) buildInput() (quizgen.GenerateInput, error) {
	topic := strings.TrimSpace(s.topic.Value())
	if topic == "" {
		return quizgen.GenerateInput{}, fmt.Errorf("enter a topic first")
	}

	count, err := s.count.NumericValue()
	if err != nil {
		return quizgen.GenerateInput{}, fmt.Errorf("enter a question count")
	}
	if count < quizgen.MinQuestions || count > quizgen.MaxQuestions {
		return quizgen.GenerateInput{}, fmt.Errorf(
			"question count must be between %d and %d", quizgen.MinQuestions, quizgen.MaxQuestions)
	}

	return quizgen.GenerateInput{
		Topic:      topic,
		Difficulty: difficulties[s.difficulty],
		Count:      count,
		Mix: quizgen.VariantMix{
			MultipleChoice: s.mix[0],
			Ordering:       s.mix[1],
			Matching:       s.mix[2],
		},
	}, nil
}

// generate runs the LLM request off the update loop.
func (s *SetupScreen) generate(input quizgen.GenerateInput) tea.Cmd {
	return func() tea.Msg {
		qs, err := s.generator.Generate(context.Background(), input)
		return generatedMsg{Questions: qs, Input: input, Err: err}
	}
}

// generationError maps generation failures to a user-facing message with a
// retry affordance.
func generationError(err error) string {
	return fmt.Sprintf("Unable to create questions: %v. Adjust the topic and try again.", err)
}

func (s *SetupScreen) View(width, height int) string {
	var b strings.Builder

	label := func(field int, text string) string {
		if s.focus == field {
			return theme.Selected.Render("▸ " + text)
		}
		return theme.Body.Render("  " + text)
	}

	b.WriteString(label(fieldTopic, "Topic") + "\n")
	b.WriteString("    " + s.topic.View() + "\n\n")

	b.WriteString(label(fieldCount, fmt.Sprintf("Questions (%d-%d)", quizgen.MinQuestions, quizgen.MaxQuestions)) + "\n")
	b.WriteString("    " + s.count.View() + "\n\n")

	b.WriteString(label(fieldDifficulty, "Difficulty") + "\n")
	var diffs []string
	for i, d := range difficulties {
		if i == s.difficulty {
			diffs = append(diffs, theme.Selected.Render("["+string(d)+"]"))
		} else {
			diffs = append(diffs, theme.Hint.Render(" "+string(d)+" "))
		}
	}
	b.WriteString("    " + strings.Join(diffs, " ") + "\n\n")

	b.WriteString(label(fieldMix, "Question types (toggle with 1/2/3)") + "\n")
	for i, name := range mixLabels {
		mark := "[ ]"
		if s.mix[i] {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("    %s %d. %s\n", mark, i+1, name))
	}
	b.WriteString("\n")

	if s.generating {
		b.WriteString("    " + theme.Hint.Render("Generating questions…") + "\n")
	} else {
		b.WriteString(label(fieldGenerate, "Generate") + "\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Incorrect.Render("  "+s.errMsg) + "\n")
	}

	return lipgloss.NewStyle().Padding(1, 4).Width(width).Render(b.String())
}
