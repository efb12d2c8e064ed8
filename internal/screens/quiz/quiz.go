package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/topiq/internal/question"
	"github.com/abhisek/topiq/internal/router"
	"github.com/abhisek/topiq/internal/screen"
	"github.com/abhisek/topiq/internal/screens/results"
	sess "github.com/abhisek/topiq/internal/session"
	"github.com/abhisek/topiq/internal/ui/components"
	"github.com/abhisek/topiq/internal/ui/layout"
)

// interaction is the per-question answer widget, rebuilt on navigation.
type interaction struct {
	picker   components.ChoicePicker
	arranger components.OrderArranger
	matcher  components.MatchPicker
	kind     question.Kind
}

// QuizScreen runs an in-progress session: answering, navigation, feedback,
// autosave, and finish.
type QuizScreen struct {
	engine *sess.Engine
	saver  *sess.Saver
	state  *sess.State

	current      interaction
	showFeedback bool
	errMsg       string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)
var _ screen.StatusProvider = (*QuizScreen)(nil)
var _ screen.Closer = (*QuizScreen)(nil)

// New creates a quiz screen over an already-created session.
func New(engine *sess.Engine, state *sess.State) *QuizScreen {
	s := &QuizScreen{
		engine: engine,
		saver:  sess.NewSaver(engine, sess.DefaultAutosaveInterval),
		state:  state,
	}
	s.rebuildInteraction()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return autosaveTick()
}

func (s *QuizScreen) Title() string {
	return "Quiz: " + s.state.Topic
}

// Status shows the question counter and running score in the header.
func (s *QuizScreen) Status() string {
	return fmt.Sprintf("Q %d/%d · %d answered · score %d",
		s.state.CurrentIndex+1, len(s.state.Questions), s.state.AnsweredCount(), s.state.Score)
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.showFeedback {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "←/→", Description: "Navigate"},
		{Key: "Enter", Description: "Submit"},
	}
	if len(s.state.Unanswered()) == 0 {
		hints = append(hints, layout.KeyHint{Key: "F", Description: "Finish"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Save & exit"})
}

// Close flushes a final best-effort snapshot when the screen is dismissed.
func (s *QuizScreen) Close() tea.Cmd {
	s.saver.Flush(context.Background(), s.state)
	return nil
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case autosaveTickMsg:
		s.saver.MaybeSave(context.Background(), s.state)
		if s.state.Finished() {
			return s, nil
		}
		return s, autosaveTick()

	case feedbackDoneMsg:
		s.dismissFeedback()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.showFeedback {
		switch msg.String() {
		case "enter", " ":
			s.dismissFeedback()
		}
		return s, nil
	}

	switch msg.String() {
	case "left":
		s.navigate(sess.Previous)
		return s, nil
	case "right":
		s.navigate(sess.Next)
		return s, nil
	case "f", "F":
		return s.finish()
	}

	if s.state.Answered(s.state.CurrentIndex) {
		// Answered questions are read-only; only navigation applies.
		return s, nil
	}

	return s, s.updateInteraction(msg)
}

// navigate moves the index and rebuilds the answer widget for the new
// question.
func (s *QuizScreen) navigate(dir sess.Direction) {
	prev := s.state.CurrentIndex
	if err := s.engine.Advance(s.state, dir); err != nil {
		return
	}
	if s.state.CurrentIndex != prev {
		s.errMsg = ""
		s.rebuildInteraction()
	}
}

// updateInteraction forwards a key to the active widget and submits the
// answer once the widget completes.
func (s *QuizScreen) updateInteraction(msg tea.KeyMsg) tea.Cmd {
	var ans question.Answer

	switch s.current.kind {
	case question.KindMultipleChoice:
		s.current.picker, _ = s.current.picker.Update(msg)
		if s.current.picker.Done {
			ans = question.ChoiceAnswer(s.current.picker.Chosen)
		}
	case question.KindOrdering:
		s.current.arranger, _ = s.current.arranger.Update(msg)
		if s.current.arranger.Done {
			ans = question.SequenceAnswer(s.current.arranger.Sequence...)
		}
	case question.KindMatching:
		s.current.matcher, _ = s.current.matcher.Update(msg)
		if s.current.matcher.Done {
			ans = question.MatchAnswer(s.current.matcher.Pairs...)
		}
	}

	if !ans.Answered() {
		return nil
	}

	if err := s.engine.SubmitAnswer(context.Background(), s.state, s.state.CurrentIndex, ans); err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.showFeedback = true
	return nil
}

// dismissFeedback hides the feedback overlay and moves on to the next
// question when there is one.
func (s *QuizScreen) dismissFeedback() {
	s.showFeedback = false
	if s.state.CurrentIndex < len(s.state.Questions)-1 {
		s.navigate(sess.Next)
	}
}

// finish completes the quiz or reports which questions remain.
func (s *QuizScreen) finish() (screen.Screen, tea.Cmd) {
	err := s.engine.Finish(context.Background(), s.state)
	if err != nil {
		var inc *sess.IncompleteError
		if errors.As(err, &inc) {
			s.errMsg = fmt.Sprintf("Answer all questions first: %d remaining.", len(inc.Unanswered))
			return s, nil
		}
		var serr *sess.StorageError
		if errors.As(err, &serr) {
			// Completed in memory; the result screen still works and the
			// record syncs on a later save.
			s.errMsg = ""
		} else {
			s.errMsg = err.Error()
			return s, nil
		}
	}

	engine, state := s.engine, s.state
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: results.New(engine, state)}
	}
}

// rebuildInteraction resets the answer widget for the current question.
func (s *QuizScreen) rebuildInteraction() {
	q := s.state.Current()
	s.current = interaction{kind: q.Kind}
	switch q.Kind {
	case question.KindMultipleChoice:
		s.current.picker = components.NewChoicePicker(q.Choices)
	case question.KindOrdering:
		s.current.arranger = components.NewOrderArranger(q.Items)
	case question.KindMatching:
		s.current.matcher = components.NewMatchPicker(q.Left, q.Right)
	}
}

// autosaveTick drives the saver once a second; the saver applies its own
// interval.
func autosaveTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return autosaveTickMsg(t)
	})
}
