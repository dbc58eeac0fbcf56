// Package howto explains fractions, the controls and the scoring.
package howto

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fractiz/internal/catalog"
	"github.com/abhisek/fractiz/internal/fraction"
	"github.com/abhisek/fractiz/internal/game"
	"github.com/abhisek/fractiz/internal/router"
	"github.com/abhisek/fractiz/internal/screen"
	"github.com/abhisek/fractiz/internal/ui/components"
	"github.com/abhisek/fractiz/internal/ui/layout"
	"github.com/abhisek/fractiz/internal/ui/theme"
)

type example struct {
	f      fraction.Fraction
	visual catalog.VisualType
	text   string
}

var examples = []example{
	{fraction.New(1, 2), catalog.VisualCircle, "ケーキを2つに分けた1つ分"},
	{fraction.New(3, 5), catalog.VisualRectangle, "チョコを5つに分けた3つ分"},
	{fraction.New(2, 3), catalog.VisualLiquid, "コップを3つに分けた2つ分"},
}

// HowToScreen is pushed over the title screen; Esc pops it.
type HowToScreen struct {
	cfg game.Config
}

var _ screen.Screen = (*HowToScreen)(nil)

func New(cfg game.Config) *HowToScreen {
	return &HowToScreen{cfg: cfg}
}

func (h *HowToScreen) Init() tea.Cmd {
	return nil
}

func (h *HowToScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc", "enter", "q":
			return h, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return h, nil
}

func (h *HowToScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Heading.Render("分数ってなに？"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render("下の数は「いくつに分けたか」、上の数は「そのうちいくつか」です。"))
	b.WriteString("\n\n")
	for _, ex := range examples {
		fmt.Fprintf(&b, "  %-5s %s  %s\n",
			ex.f.String(),
			components.FractionBar(ex.f, ex.visual, true),
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(ex.text))
	}

	b.WriteString("\n")
	b.WriteString(theme.Heading.Render("あそびかた"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(strings.Join([]string{
		"1〜3 か ↑↓ + Enter でこたえを選びます。",
		fmt.Sprintf("%d秒たつと h でヒントが見られます。", int(h.cfg.HintDelay.Seconds())),
		"q でゲームをやめられます。",
	}, "\n")))

	b.WriteString("\n\n")
	b.WriteString(theme.Heading.Render("とくてん"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(scoring(h.cfg)))

	card := theme.Card.Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func scoring(cfg game.Config) string {
	if cfg.HintedPoints == cfg.PointsPerCorrect {
		return fmt.Sprintf("正解すると%d点。ヒントを見ても点数は同じです。", cfg.PointsPerCorrect)
	}
	return fmt.Sprintf("正解で%d点、ヒントを見たあとの正解は%d点です。", cfg.PointsPerCorrect, cfg.HintedPoints)
}

func (h *HowToScreen) Title() string {
	return "How to play"
}

func (h *HowToScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{{Key: "esc", Description: "back"}}
}
