// Package credits shows the static credits page.
package credits

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fractiz/internal/game"
	"github.com/abhisek/fractiz/internal/screen"
	"github.com/abhisek/fractiz/internal/ui/layout"
	"github.com/abhisek/fractiz/internal/ui/theme"
)

var lines = []string{
	"Fractiz",
	"",
	"分数くらべクイズ",
	"",
	"Built with Bubble Tea, Lip Gloss and Cobra",
	"by Charm and the Go community.",
	"",
	"Thanks for playing!",
}

type CreditsScreen struct {
	engine *game.Engine
}

var _ screen.Screen = (*CreditsScreen)(nil)

func New(engine *game.Engine) *CreditsScreen {
	return &CreditsScreen{engine: engine}
}

func (c *CreditsScreen) Init() tea.Cmd {
	return nil
}

func (c *CreditsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			c.engine.ResetGame()
		}
	}
	return c, nil
}

func (c *CreditsScreen) View(width, height int) string {
	body := lipgloss.NewStyle().
		Foreground(theme.Text).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, theme.Card.Render(body))
}

func (c *CreditsScreen) Title() string {
	return "Credits"
}

func (c *CreditsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "esc", Description: "back"}}
}
