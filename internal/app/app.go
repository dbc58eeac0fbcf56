// Package app is the root Bubble Tea model. It keeps the router in step
// with the engine: whenever the engine switches screens the router is
// reset to a fresh screen for it.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/fractiz/internal/game"
	"github.com/abhisek/fractiz/internal/router"
	"github.com/abhisek/fractiz/internal/screen"
	"github.com/abhisek/fractiz/internal/screens/credits"
	"github.com/abhisek/fractiz/internal/screens/levelselect"
	"github.com/abhisek/fractiz/internal/screens/play"
	"github.com/abhisek/fractiz/internal/screens/result"
	"github.com/abhisek/fractiz/internal/screens/title"
	"github.com/abhisek/fractiz/internal/ui/layout"
)

// Options configures the app.
type Options struct {
	Engine *game.Engine
	Logger *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	engine *game.Engine
	logger *zap.Logger
	router *router.Router
	shown  game.Screen
	width  int
	height int
}

// New builds the model on the screen the engine is currently in.
func New(opts Options) AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	shown := opts.Engine.State().Screen
	return AppModel{
		engine: opts.Engine,
		logger: logger.Named("ui"),
		router: router.New(screenFor(shown, opts.Engine)),
		shown:  shown,
	}
}

// screenFor builds the screen shown for s.
func screenFor(s game.Screen, engine *game.Engine) screen.Screen {
	switch s {
	case game.ScreenLevelSelect:
		return levelselect.New(engine)
	case game.ScreenGame:
		return play.New(engine)
	case game.ScreenResult:
		return result.New(engine)
	case game.ScreenCredits:
		return credits.New(engine)
	default:
		return title.New(engine)
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m.sync(cmd)
}

// sync resets the router when the engine has moved to another screen.
func (m AppModel) sync(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	current := m.engine.State().Screen
	if current == m.shown {
		return m, cmd
	}
	m.logger.Debug("screen changed",
		zap.Stringer("from", m.shown),
		zap.Stringer("to", current),
	)
	m.shown = current
	return m, tea.Batch(cmd, m.router.Reset(screenFor(current, m.engine)))
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
	var titleText, status string
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "move"},
		{Key: "enter", Description: "select"},
		{Key: "ctrl+c", Description: "quit"},
	}
	if active != nil {
		titleText = active.Title()
		if sp, ok := active.(screen.StatusProvider); ok {
			status = sp.Status()
		}
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}

	header := layout.RenderHeader(titleText, status, m.width)
	footer := layout.RenderFooter(hints, m.width)
	content := m.router.View(m.width, layout.ContentHeight(header, footer, m.height))

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(New(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
