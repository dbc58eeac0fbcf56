package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/fractiz/internal/game"
	"github.com/abhisek/fractiz/internal/ui/components"
	"github.com/abhisek/fractiz/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	st := p.engine.State()

	var body string
	if st.Current == nil {
		body = lipgloss.NewStyle().
			Foreground(theme.Error).
			Render("このレベルには問題がありません。\nq でゲームをおわります。")
	} else {
		cw := min(width-4, 72)
		sections := []string{
			components.NewProgressBar("", st.QuestionsAnswered, st.MaxQuestions, cw).View(),
			"",
			theme.Prompt.Render(st.Current.Text),
			"",
			p.choices.View(),
			"",
			p.renderFooterLine(st),
		}
		body = lipgloss.NewStyle().Width(cw).Render(strings.Join(sections, "\n"))
	}

	if p.confirming {
		body = lipgloss.JoinVertical(lipgloss.Center, body, "", p.confirm.View())
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// renderFooterLine shows answer feedback, the hint, or the hint countdown.
func (p *PlayScreen) renderFooterLine(st game.State) string {
	if p.answer != nil {
		return renderFeedback(*p.answer, st)
	}
	switch {
	case st.HintShown && st.Current.Hint != nil:
		return theme.Hint.Render("ヒント: " + st.Current.Hint.Message)
	case st.HintEnabled:
		return theme.Hint.Render("h でヒントが見られます")
	default:
		return lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("ヒントまであと%d秒", p.engine.HintRemaining()))
	}
}

func renderFeedback(ans game.Answer, st game.State) string {
	if ans.Correct {
		return lipgloss.NewStyle().
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("正解！ +%d点", ans.Points))
	}
	line := "ざんねん…"
	if st.Current != nil && ans.CorrectIndex >= 0 && ans.CorrectIndex < len(st.Current.Options) {
		line += "  正解は " + st.Current.Options[ans.CorrectIndex].DisplayText
	}
	return lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line)
}
