package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/topiq/internal/quizgen"
	"github.com/abhisek/topiq/internal/router"
	"github.com/abhisek/topiq/internal/screen"
	"github.com/abhisek/topiq/internal/screens/history"
	"github.com/abhisek/topiq/internal/screens/setup"
	"github.com/abhisek/topiq/internal/session"
	"github.com/abhisek/topiq/internal/store"
	"github.com/abhisek/topiq/internal/ui/components"
	"github.com/abhisek/topiq/internal/ui/theme"
)

// HomeScreen is the application's entry menu.
type HomeScreen struct {
	menu      components.Menu
	total     int
	completed int
	llmReady  bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. A nil generator means no LLM provider is
// configured; the new-quiz entry is disabled and says so.
func New(engine *session.Engine, generator quizgen.Generator) *HomeScreen {
	var total, completed int
	if recs, err := engine.List(context.Background(), store.Filter{}); err == nil {
		total = len(recs)
		for _, r := range recs {
			if r.Status == store.StatusCompleted {
				completed++
			}
		}
	}

	newQuizLabel := "NEW QUIZ"
	if generator == nil {
		newQuizLabel = "NEW QUIZ (no LLM provider configured)"
	}

	items := []components.MenuItem{
		{Label: newQuizLabel, Disabled: generator == nil, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: setup.New(engine, generator)}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(engine, generator)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:      components.NewMenu(items),
		total:     total,
		completed: completed,
		llmReady:  generator != nil,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("topiq"))
	sections = append(sections, theme.Subtitle.Width(width).Render("LLM-generated quizzes in your terminal"))

	stats := fmt.Sprintf("%d quizzes · %d completed", h.total, h.completed)
	sections = append(sections, theme.Hint.Width(width).Render(stats))

	menu := lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(h.menu.View())
	sections = append(sections, menu)

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
