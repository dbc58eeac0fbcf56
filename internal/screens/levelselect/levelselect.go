// Package levelselect lets the player pick a tier.
package levelselect

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fractiz/internal/catalog"
	"github.com/abhisek/fractiz/internal/game"
	"github.com/abhisek/fractiz/internal/screen"
	"github.com/abhisek/fractiz/internal/ui/components"
	"github.com/abhisek/fractiz/internal/ui/layout"
	"github.com/abhisek/fractiz/internal/ui/theme"
)

// LevelSelectScreen lists the tiers. A tier is chosen with its number, by
// moving the cursor, or by typing its name into the input and pressing Enter.
type LevelSelectScreen struct {
	engine   *game.Engine
	tiers    []catalog.Tier
	selected int
	input    components.TextInput
}

var _ screen.Screen = (*LevelSelectScreen)(nil)

func New(engine *game.Engine) *LevelSelectScreen {
	return &LevelSelectScreen{
		engine: engine,
		tiers:  catalog.AllTiers(),
		input:  components.NewTextInput("easy / normal / hard", 8),
	}
}

func (l *LevelSelectScreen) Init() tea.Cmd {
	return l.input.Init()
}

func (l *LevelSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		l.input, cmd = l.input.Update(msg)
		return l, cmd
	}

	switch key := kmsg.String(); key {
	case "esc":
		l.engine.ResetGame()
		return l, nil
	case "up":
		if l.selected > 0 {
			l.selected--
		}
		return l, nil
	case "down":
		if l.selected < len(l.tiers)-1 {
			l.selected++
		}
		return l, nil
	case "1", "2", "3":
		if l.input.Value() == "" {
			l.start(l.tiers[int(key[0]-'1')])
			return l, nil
		}
	case "enter":
		l.submit()
		return l, nil
	}

	var cmd tea.Cmd
	l.input, cmd = l.input.Update(msg)
	return l, cmd
}

// submit starts the typed tier, or the highlighted one when nothing is typed.
func (l *LevelSelectScreen) submit() {
	typed := strings.ToLower(strings.TrimSpace(l.input.Value()))
	if typed == "" {
		l.start(l.tiers[l.selected])
		return
	}
	tier, err := catalog.ParseTier(typed)
	if err != nil {
		l.input.Submit(false)
		return
	}
	l.input.Submit(l.engine.CanStart(tier))
	l.start(tier)
}

// start launches tier. A tier without questions marks the input invalid
// and stays on this screen.
func (l *LevelSelectScreen) start(tier catalog.Tier) {
	if !l.engine.CanStart(tier) {
		l.input.Submit(false)
		return
	}
	l.engine.Sounds().PlayClick()
	l.engine.StartGame(tier)
}

func (l *LevelSelectScreen) View(width, height int) string {
	var rows []string
	for i, t := range l.tiers {
		label := fmt.Sprintf("%d) %s", i+1, t.DisplayName())
		desc := lipgloss.NewStyle().Foreground(theme.TextDim).Render(t.Description())
		if i == l.selected {
			rows = append(rows, theme.Selected.Render("▸ "+label)+"  "+desc)
		} else {
			rows = append(rows, theme.Unselected.Render("  "+label)+"  "+desc)
		}
	}

	sections := []string{
		theme.Heading.Render("レベルをえらんでください"),
		"",
		strings.Join(rows, "\n\n"),
		"",
		theme.Hint.Render("レベル名を入力してもOK"),
		l.input.View(),
	}
	card := theme.Card.Render(strings.Join(sections, "\n"))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}

func (l *LevelSelectScreen) Title() string {
	return "Level"
}

func (l *LevelSelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "1-3", Description: "pick"},
		{Key: "↑↓", Description: "move"},
		{Key: "enter", Description: "start"},
		{Key: "esc", Description: "back"},
	}
}
