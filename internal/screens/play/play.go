// Package play is the question screen of a running game.
package play

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/fractiz/internal/game"
	"github.com/abhisek/fractiz/internal/screen"
	"github.com/abhisek/fractiz/internal/ui/components"
	"github.com/abhisek/fractiz/internal/ui/layout"
)

const tickInterval = time.Second

// PlayScreen shows the current question and forwards answers to the engine.
// Navigation away from it happens when the engine leaves ScreenGame.
type PlayScreen struct {
	engine    *game.Engine
	sessionID string

	// questionKey identifies the question the choices were built for.
	questionKey string
	choices     components.Choices

	answer     *game.Answer
	confirming bool
	confirm    components.Confirm
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)

func New(engine *game.Engine) *PlayScreen {
	p := &PlayScreen{
		engine:    engine,
		sessionID: engine.State().SessionID,
	}
	p.sync()
	return p
}

func (p *PlayScreen) Init() tea.Cmd {
	return p.tick()
}

func (p *PlayScreen) Title() string {
	return "Game"
}

// Status reports progress, score and correct answers for the header.
func (p *PlayScreen) Status() string {
	st := p.engine.State()
	n := min(st.QuestionsAnswered+1, st.MaxQuestions)
	if st.AwaitingNext {
		n = st.QuestionsAnswered
	}
	return fmt.Sprintf("Q %d/%d  %d点  正解 %d  ", n, st.MaxQuestions, st.Score, st.CorrectAnswers)
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.confirming {
		return []layout.KeyHint{
			{Key: "y", Description: "quit game"},
			{Key: "n", Description: "keep going"},
		}
	}
	if p.answer != nil {
		return nil
	}
	hints := []layout.KeyHint{
		{Key: "1-3", Description: "answer"},
		{Key: "↑↓", Description: "move"},
		{Key: "enter", Description: "answer"},
	}
	if p.engine.State().HintEnabled {
		hints = append(hints, layout.KeyHint{Key: "h", Description: "hint"})
	}
	return append(hints, layout.KeyHint{Key: "q", Description: "quit"})
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case timerTickMsg:
		cmd = p.handleTick(msg)
	case feedbackDoneMsg:
		p.handleFeedbackDone(msg)
	case tea.KeyPressMsg:
		cmd = p.handleKey(msg)
	}
	p.sync()
	return p, cmd
}

func (p *PlayScreen) tick() tea.Cmd {
	id := p.sessionID
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return timerTickMsg{SessionID: id}
	})
}

func (p *PlayScreen) handleTick(msg timerTickMsg) tea.Cmd {
	if msg.SessionID != p.sessionID {
		return nil
	}
	p.engine.Tick()
	if !p.engine.State().Active {
		return nil
	}
	return p.tick()
}

func (p *PlayScreen) handleFeedbackDone(msg feedbackDoneMsg) {
	if p.engine.FollowUp(msg.FollowUp) {
		p.answer = nil
	}
}

func (p *PlayScreen) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if p.confirming {
		var cmd tea.Cmd
		p.confirm, cmd = p.confirm.Update(msg)
		return cmd
	}

	switch key := msg.String(); key {
	case "q", "esc":
		p.openConfirm()
		return nil
	case "h":
		p.engine.ShowHint()
		p.choices.Filled = p.engine.State().ShowVisuals
		return nil
	case "1", "2", "3":
		return p.answerAt(int(key[0] - '1'))
	case "enter", "space":
		return p.answerAt(p.choices.Selected)
	}

	p.choices, _ = p.choices.Update(msg)
	return nil
}

func (p *PlayScreen) answerAt(i int) tea.Cmd {
	ans, ok := p.engine.AnswerQuestion(i)
	if !ok {
		return nil
	}
	p.answer = &ans
	p.choices.Reveal(ans.Selected, ans.CorrectIndex)
	follow := ans.FollowUp
	return tea.Tick(p.engine.Config().FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{FollowUp: follow}
	})
}

func (p *PlayScreen) openConfirm() {
	p.confirming = true
	p.confirm = components.NewConfirm(
		"ゲームをやめますか？",
		"やめる (y)", "つづける (n)",
		func() tea.Cmd {
			p.confirming = false
			p.engine.QuitGame()
			return nil
		},
		func() tea.Cmd {
			p.confirming = false
			return nil
		},
	)
}

// sync rebuilds the choices when the engine has moved to another question.
func (p *PlayScreen) sync() {
	st := p.engine.State()
	if st.Current == nil {
		p.questionKey = ""
		return
	}
	key := fmt.Sprintf("%s#%d", st.Current.ID, st.QuestionsAnswered)
	if st.AwaitingNext {
		return
	}
	if key != p.questionKey {
		p.questionKey = key
		p.answer = nil
		p.choices = components.NewChoices(st.Current.Options)
	}
	p.choices.Filled = st.ShowVisuals
}
