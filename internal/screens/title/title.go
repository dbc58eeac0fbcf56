// Package title is the start menu.
package title

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fractiz/internal/game"
	"github.com/abhisek/fractiz/internal/ui/layout"
	"github.com/abhisek/fractiz/internal/router"
	"github.com/abhisek/fractiz/internal/screen"
	"github.com/abhisek/fractiz/internal/screens/howto"
	"github.com/abhisek/fractiz/internal/ui/components"
	"github.com/abhisek/fractiz/internal/ui/theme"
)

// TitleScreen shows the banner and the main menu.
type TitleScreen struct {
	engine *game.Engine
	menu   components.Menu
}

var _ screen.Screen = (*TitleScreen)(nil)

func New(engine *game.Engine) *TitleScreen {
	items := []components.MenuItem{
		{Label: "はじめる  Start", Action: func() tea.Cmd {
			engine.Sounds().PlayClick()
			engine.ShowLevelSelect()
			return nil
		}},
		{Label: "あそびかた  How to play", Action: func() tea.Cmd {
			engine.Sounds().PlayClick()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: howto.New(engine.Config())}
			}
		}},
		{Label: "クレジット  Credits", Action: func() tea.Cmd {
			engine.Sounds().PlayClick()
			engine.ShowCredits()
			return nil
		}},
		{Label: "おわる  Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	return &TitleScreen{engine: engine, menu: components.NewMenu(items)}
}

func (t *TitleScreen) Init() tea.Cmd {
	return nil
}

func (t *TitleScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	t.menu, cmd = t.menu.Update(msg)
	return t, cmd
}

func (t *TitleScreen) View(width, height int) string {
	tagline := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("分数をくらべてみよう！")

	sections := []string{
		RenderBanner(width),
		"",
		tagline,
		"",
		theme.Card.Render(t.menu.View()),
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(sections, "\n"))
}

func (t *TitleScreen) Title() string {
	return "Title"
}

func (t *TitleScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "move"},
		{Key: "enter", Description: "select"},
		{Key: "ctrl+c", Description: "quit"},
	}
}
