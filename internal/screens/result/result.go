// Package result shows the score and reviews the wrong answers.
package result

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/fractiz/internal/game"
	"github.com/abhisek/fractiz/internal/screen"
	"github.com/abhisek/fractiz/internal/ui/components"
	"github.com/abhisek/fractiz/internal/ui/layout"
	"github.com/abhisek/fractiz/internal/ui/theme"
)

// maxReview caps the wrong answers listed so the menu stays on screen.
const maxReview = 5

// ResultScreen renders the Summary of the game that just ended.
type ResultScreen struct {
	engine  *game.Engine
	summary game.Summary
	menu    components.Menu
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

func New(engine *game.Engine) *ResultScreen {
	items := []components.MenuItem{
		{Label: "もういちど  Play again", Action: func() tea.Cmd {
			engine.Sounds().PlayClick()
			engine.ShowLevelSelect()
			return nil
		}},
		{Label: "タイトルへ  Title", Action: func() tea.Cmd {
			engine.Sounds().PlayClick()
			engine.ResetGame()
			return nil
		}},
	}
	return &ResultScreen{
		engine:  engine,
		summary: engine.Summary(),
		menu:    components.NewMenu(items),
	}
}

func (r *ResultScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultScreen) Title() string {
	return "Result"
}

func (r *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "move"},
		{Key: "enter", Description: "select"},
		{Key: "esc", Description: "title"},
	}
}

func (r *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "esc" {
		r.engine.ResetGame()
		return r, nil
	}
	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *ResultScreen) View(width, height int) string {
	sum := r.summary
	center := func(s string) string { return lipgloss.PlaceHorizontal(width, lipgloss.Center, s) }

	var b strings.Builder

	heading := "おつかれさま！"
	if sum.GoodJob {
		heading = "すばらしい！"
	}
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(heading)))
	b.WriteString("\n\n")

	stats := fmt.Sprintf("とくてん %d点    正解 %d/%d    正答率 %d%%    じかん %s",
		sum.Score, sum.Correct, sum.Answered, sum.Accuracy, formatDuration(sum.Duration))
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text).Render(stats)))
	b.WriteString("\n\n")
	b.WriteString(center(theme.Heading.Render(sum.Message)))
	b.WriteString("\n\n")

	if len(sum.WrongAnswers) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", min(width-8, 60)))
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render("まちがえた問題")))
		b.WriteString("\n")
		b.WriteString(center(divider))
		b.WriteString("\n")
		for i, w := range sum.WrongAnswers {
			if i == maxReview {
				more := fmt.Sprintf("ほか %d問", len(sum.WrongAnswers)-maxReview)
				b.WriteString(center(lipgloss.NewStyle().Foreground(theme.TextDim).Render(more)))
				b.WriteString("\n")
				break
			}
			b.WriteString(center(renderWrong(w)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(center(theme.Card.Render(r.menu.View())))
	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

// renderWrong prints one reviewed mistake: prompt, the pick, and the answer.
func renderWrong(w game.WrongAnswer) string {
	q := w.Question
	pick, want := "?", "?"
	if w.Selected >= 0 && w.Selected < len(q.Options) {
		pick = q.Options[w.Selected].DisplayText
	}
	if w.Correct >= 0 && w.Correct < len(q.Options) {
		want = q.Options[w.Correct].DisplayText
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render(q.Text+"  ") +
		theme.Incorrect.Render("あなた "+pick) + "  " +
		theme.Correct.Render("正解 "+want)
}

func formatDuration(d time.Duration) string {
	secs := int(d.Round(time.Second).Seconds())
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
