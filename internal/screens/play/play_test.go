package play

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/fractiz/internal/catalog"
	"github.com/abhisek/fractiz/internal/game"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestScreen(t *testing.T) (*PlayScreen, *game.Engine, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	e := game.New(game.Options{
		Now:  clock.Now,
		Rand: rand.New(rand.NewPCG(3, 5)),
	})
	e.StartGame(catalog.TierEasy)
	return New(e), e, clock
}

func press(p *PlayScreen, s string) tea.Cmd {
	var msg tea.KeyPressMsg
	switch s {
	case "enter":
		msg = tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		msg = tea.KeyPressMsg{Code: tea.KeyEscape}
	case "down":
		msg = tea.KeyPressMsg{Code: tea.KeyDown}
	default:
		msg = tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
	}
	_, cmd := p.Update(msg)
	return cmd
}

func TestNewBuildsChoicesForCurrentQuestion(t *testing.T) {
	p, e, _ := newTestScreen(t)
	st := e.State()
	if len(p.choices.Options) != len(st.Current.Options) {
		t.Fatalf("choices has %d options, question has %d", len(p.choices.Options), len(st.Current.Options))
	}
	if p.Init() == nil {
		t.Error("Init should schedule the timer tick")
	}
	if got := p.Status(); !strings.Contains(got, "Q 1/5") {
		t.Errorf("Status() = %q, want Q 1/5", got)
	}
}

func TestAnswerShowsFeedbackThenAdvances(t *testing.T) {
	p, e, _ := newTestScreen(t)
	correct := e.State().Current.CorrectIndex()

	cmd := press(p, string(rune('1'+correct)))
	if cmd == nil {
		t.Fatal("answering should schedule the feedback follow-up")
	}
	if p.answer == nil || !p.answer.Correct {
		t.Fatalf("answer = %+v, want correct", p.answer)
	}
	if !e.State().AwaitingNext {
		t.Error("engine should await the follow-up")
	}
	if !strings.Contains(ansi.Strip(p.View(100, 30)), "正解！") {
		t.Error("feedback missing from view")
	}

	// Keys during feedback are ignored.
	if press(p, "1") != nil {
		t.Error("second answer during feedback should be ignored")
	}
	if got := e.State().QuestionsAnswered; got != 1 {
		t.Errorf("QuestionsAnswered = %d, want 1", got)
	}

	p.Update(feedbackDoneMsg{FollowUp: p.answer.FollowUp})
	st := e.State()
	if st.AwaitingNext || st.Current == nil {
		t.Fatal("follow-up should draw the next question")
	}
	if p.answer != nil || p.choices.Chosen != -1 {
		t.Error("choices should be rebuilt for the next question")
	}
	if st.QuestionsAnswered != 1 {
		t.Errorf("QuestionsAnswered = %d, want 1", st.QuestionsAnswered)
	}
}

func TestWrongAnswerFeedback(t *testing.T) {
	p, e, _ := newTestScreen(t)
	q := e.State().Current
	wrong := 1 - q.CorrectIndex()

	press(p, string(rune('1'+wrong)))
	view := ansi.Strip(p.View(100, 30))
	if !strings.Contains(view, "ざんねん") {
		t.Error("view missing wrong-answer feedback")
	}
	if !strings.Contains(view, q.Options[q.CorrectIndex()].DisplayText) {
		t.Error("view should name the correct answer")
	}
}

func TestEnterAnswersSelected(t *testing.T) {
	p, e, _ := newTestScreen(t)
	press(p, "down")
	press(p, "enter")
	if p.answer == nil || p.answer.Selected != 1 {
		t.Fatalf("answer = %+v, want option 1", p.answer)
	}
	if e.State().QuestionsAnswered != 1 {
		t.Error("engine did not record the answer")
	}
}

func TestStaleFeedbackIgnored(t *testing.T) {
	p, e, _ := newTestScreen(t)
	press(p, "1")
	stale := p.answer.FollowUp
	stale.Answered = 0

	p.Update(feedbackDoneMsg{FollowUp: stale})
	if !e.State().AwaitingNext {
		t.Error("stale follow-up should not advance")
	}
}

func TestHintCountdownAndHint(t *testing.T) {
	p, e, clock := newTestScreen(t)
	if !strings.Contains(ansi.Strip(p.View(100, 30)), "ヒントまであと10秒") {
		t.Error("countdown missing")
	}

	press(p, "h")
	if e.State().HintShown {
		t.Fatal("hint should stay locked before the delay")
	}

	clock.Advance(10 * time.Second)
	if _, cmd := p.Update(timerTickMsg{SessionID: p.sessionID}); cmd == nil {
		t.Error("tick should reschedule while the game runs")
	}
	if !e.State().HintEnabled {
		t.Fatal("tick after the delay should unlock the hint")
	}

	press(p, "h")
	if !e.State().HintShown || !p.choices.Filled {
		t.Error("h should show the hint and fill the visuals")
	}
	if !strings.Contains(ansi.Strip(p.View(100, 30)), "ヒント: ") {
		t.Error("hint message missing from view")
	}
}

func TestTickFromOtherSessionDropped(t *testing.T) {
	p, _, _ := newTestScreen(t)
	_, cmd := p.Update(timerTickMsg{SessionID: "old"})
	if cmd != nil {
		t.Error("tick from another session should not reschedule")
	}
}

func TestQuitConfirm(t *testing.T) {
	p, e, _ := newTestScreen(t)

	press(p, "q")
	if !p.confirming {
		t.Fatal("q should open the confirm")
	}
	if !strings.Contains(ansi.Strip(p.View(100, 30)), "ゲームをやめますか？") {
		t.Error("confirm missing from view")
	}
	press(p, "n")
	if p.confirming || e.State().Screen != game.ScreenGame {
		t.Fatal("n should close the confirm and keep playing")
	}

	press(p, "esc")
	press(p, "y")
	if got := e.State().Screen; got != game.ScreenResult {
		t.Errorf("Screen = %v, want result", got)
	}
}
