package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/topiq/internal/quizgen"
	"github.com/abhisek/topiq/internal/router"
	"github.com/abhisek/topiq/internal/screen"
	"github.com/abhisek/topiq/internal/screens/home"
	"github.com/abhisek/topiq/internal/screens/quiz"
	"github.com/abhisek/topiq/internal/session"
	"github.com/abhisek/topiq/internal/ui/layout"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	engine *session.Engine
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(engine *session.Engine, generator quizgen.Generator) AppModel {
	homeScreen := home.New(engine, generator)
	return AppModel{
		engine: engine,
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StartQuizMsg:
		return m, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: quiz.New(m.engine, msg.State)}
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Batch(m.closeActive(), tea.Quit)
		case "esc":
			if eh, ok := m.router.Active().(screen.EscHandler); ok && eh.WantsEsc() {
				return m, m.router.Update(msg)
			}
			if m.router.Depth() > 1 {
				closeCmd := m.closeActive()
				pop := func() tea.Msg { return router.PopScreenMsg{} }
				return m, tea.Sequence(closeCmd, pop)
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// closeActive gives the active screen a chance to flush state before it
// leaves the stack.
func (m AppModel) closeActive() tea.Cmd {
	if c, ok := m.router.Active().(screen.Closer); ok {
		return c.Close()
	}
	return nil
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	status := ""
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}

	header := layout.RenderHeader(title, status, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = append(hp.KeyHints(), layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(engine *session.Engine, generator quizgen.Generator) error {
	p := tea.NewProgram(newAppModel(engine, generator))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
