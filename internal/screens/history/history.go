package history

import (
	"context"
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/topiq/internal/quizgen"
	"github.com/abhisek/topiq/internal/router"
	"github.com/abhisek/topiq/internal/screen"
	"github.com/abhisek/topiq/internal/screens/quiz"
	"github.com/abhisek/topiq/internal/screens/results"
	"github.com/abhisek/topiq/internal/session"
	"github.com/abhisek/topiq/internal/store"
	"github.com/abhisek/topiq/internal/ui/layout"
	"github.com/abhisek/topiq/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []*store.SessionRecord
	Err      error
}

// statusFilter cycles all → incomplete → completed.
var statusFilters = []store.Status{"", store.StatusIncomplete, store.StatusCompleted}

type sortMode int

const (
	sortNewest sortMode = iota
	sortOldest
	sortScore
)

// HistoryScreen lists past quiz sessions. Incomplete sessions resume where
// they left off; completed ones open their results.
type HistoryScreen struct {
	engine    *session.Engine
	generator quizgen.Generator

	sessions  []*store.SessionRecord
	selected  int
	filterIdx int
	sort      sortMode
	searching bool
	search    string
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.EscHandler = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(engine *session.Engine, generator quizgen.Generator) *HistoryScreen {
	return &HistoryScreen{engine: engine, generator: generator}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) load() tea.Cmd {
	filter := store.Filter{
		Status: statusFilters[s.filterIdx],
		Topic:  s.search,
	}
	engine := s.engine
	return func() tea.Msg {
		sessions, err := engine.List(context.Background(), filter)
		return historyLoadedMsg{Sessions: sessions, Err: err}
	}
}

// applySort reorders the loaded list. The store returns newest-first.
func (s *HistoryScreen) applySort() {
	switch s.sort {
	case sortOldest:
		sort.SliceStable(s.sessions, func(i, j int) bool {
			return s.sessions[i].CreatedAt.Before(s.sessions[j].CreatedAt)
		})
	case sortScore:
		sort.SliceStable(s.sessions, func(i, j int) bool {
			return sessionPct(s.sessions[i]) > sessionPct(s.sessions[j])
		})
	default:
		sort.SliceStable(s.sessions, func(i, j int) bool {
			return s.sessions[i].CreatedAt.After(s.sessions[j].CreatedAt)
		})
	}
}

// sessionPct is the completed percentage, with in-progress sessions last.
func sessionPct(rec *store.SessionRecord) int {
	if rec.Status != store.StatusCompleted || len(rec.Questions) == 0 {
		return -1
	}
	return rec.Score * 100 / len(rec.Questions)
}

func (s *HistoryScreen) Title() string {
	return "History"
}

// WantsEsc keeps esc on this screen while the search prompt is open, so
// cancelling a search does not pop back to home.
func (s *HistoryScreen) WantsEsc() bool {
	return s.searching
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Search"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "R", Description: "Retake"},
		{Key: "D", Description: "Delete"},
		{Key: "F", Description: "Filter"},
		{Key: "/", Description: "Search"},
		{Key: "S/O", Description: "Sort"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.errMsg = ""
			s.sessions = msg.Sessions
			s.applySort()
			if s.selected >= len(s.sessions) {
				s.selected = max(0, len(s.sessions)-1)
			}
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if s.searching {
			return s.handleSearchKey(msg)
		}
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
			return s, nil
		case "f", "F":
			s.filterIdx = (s.filterIdx + 1) % len(statusFilters)
			s.loaded = false
			return s, s.load()
		case "o", "O":
			if s.sort == sortNewest {
				s.sort = sortOldest
			} else {
				s.sort = sortNewest
			}
			s.applySort()
			return s, nil
		case "s", "S":
			if s.sort == sortScore {
				s.sort = sortNewest
			} else {
				s.sort = sortScore
			}
			s.applySort()
			return s, nil
		case "/":
			s.searching = true
			return s, nil
		case "d", "D":
			return s.deleteSelected()
		case "r", "R":
			return s.retakeSelected()
		case "enter":
			return s.openSelected()
		}
	}
	return s, nil
}

// handleSearchKey edits the topic search while the "/" prompt is active.
func (s *HistoryScreen) handleSearchKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "enter":
		s.searching = false
		s.loaded = false
		return s, s.load()
	case "esc":
		s.searching = false
		if s.search != "" {
			s.search = ""
			s.loaded = false
			return s, s.load()
		}
		return s, nil
	case "backspace":
		if len(s.search) > 0 {
			runes := []rune(s.search)
			s.search = string(runes[:len(runes)-1])
		}
		return s, nil
	}

	if key, ok := msg.(tea.KeyPressMsg); ok && key.Text != "" {
		s.search += key.Text
	}
	return s, nil
}

// openSelected resumes an incomplete session or shows a completed one.
func (s *HistoryScreen) openSelected() (screen.Screen, tea.Cmd) {
	rec := s.current()
	if rec == nil {
		return s, nil
	}

	st, err := s.engine.Resume(context.Background(), rec.ID)
	if err != nil {
		s.errMsg = fmt.Sprintf("Could not open session: %v", err)
		return s, nil
	}

	var next screen.Screen
	if st.Finished() {
		next = results.New(s.engine, st)
	} else {
		next = quiz.New(s.engine, st)
	}
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

// retakeSelected starts a fresh session with the same questions.
func (s *HistoryScreen) retakeSelected() (screen.Screen, tea.Cmd) {
	rec := s.current()
	if rec == nil {
		return s, nil
	}

	st, err := s.engine.Retake(context.Background(), rec.ID)
	if st == nil {
		s.errMsg = fmt.Sprintf("Could not retake quiz: %v", err)
		return s, nil
	}

	engine := s.engine
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: quiz.New(engine, st)}
	}
}

func (s *HistoryScreen) deleteSelected() (screen.Screen, tea.Cmd) {
	rec := s.current()
	if rec == nil {
		return s, nil
	}

	if err := s.engine.Delete(context.Background(), rec.ID); err != nil {
		s.errMsg = fmt.Sprintf("Could not delete session: %v", err)
		return s, nil
	}
	return s, s.load()
}

func (s *HistoryScreen) current() *store.SessionRecord {
	if s.selected < 0 || s.selected >= len(s.sessions) {
		return nil
	}
	return s.sessions[s.selected]
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}

	var b strings.Builder
	b.WriteString("\n")

	// Stats header over the unfiltered meaning of the current list.
	var completed, correct, scored int
	for _, rec := range s.sessions {
		if rec.Status == store.StatusCompleted {
			completed++
			if n := len(rec.Questions); n > 0 {
				correct += rec.Score * 100 / n
				scored++
			}
		}
	}
	stats := fmt.Sprintf("%d quizzes · %d completed · %d in progress",
		len(s.sessions), completed, len(s.sessions)-completed)
	if scored > 0 {
		stats += fmt.Sprintf(" · %d%% avg score", correct/scored)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Bold(true).Render(stats)))
	b.WriteString("\n")

	showing := fmt.Sprintf("Showing: %s · sorted by %s", filterLabel(statusFilters[s.filterIdx]), sortLabel(s.sort))
	if s.searching {
		showing = fmt.Sprintf("Search topic: %s█", s.search)
	} else if s.search != "" {
		showing += fmt.Sprintf(" · topic ~ %q", s.search)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(showing)))
	b.WriteString("\n\n")

	if len(s.sessions) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No quizzes here yet. Start one from the home screen!"))
		return b.String()
	}

	for i, rec := range s.sessions {
		dateStr := rec.CreatedAt.Format("Jan 02, 2006")

		var status string
		if rec.Status == store.StatusCompleted {
			status = fmt.Sprintf("%d/%d", rec.Score, len(rec.Questions))
		} else {
			answered := 0
			for _, a := range rec.Answers {
				if a.Answered() {
					answered++
				}
			}
			status = fmt.Sprintf("in progress (%d/%d)", answered, len(rec.Questions))
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		topic := rec.Topic
		if len(topic) > 32 {
			topic = topic[:29] + "..."
		}

		line := fmt.Sprintf("%s%s  %-32s  %d questions  %s",
			prefix, dateStr, topic, len(rec.Questions), status)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}

func sortLabel(m sortMode) string {
	switch m {
	case sortOldest:
		return "oldest"
	case sortScore:
		return "score"
	default:
		return "newest"
	}
}

func filterLabel(st store.Status) string {
	switch st {
	case store.StatusIncomplete:
		return "in progress"
	case store.StatusCompleted:
		return "completed"
	default:
		return "all"
	}
}
