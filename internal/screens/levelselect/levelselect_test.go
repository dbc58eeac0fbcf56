package levelselect

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/fractiz/internal/audio"
	"github.com/abhisek/fractiz/internal/catalog"
	"github.com/abhisek/fractiz/internal/game"
)

func newTestScreen() (*LevelSelectScreen, *game.Engine) {
	l, e, _ := newRecordedScreen(catalog.Default())
	return l, e
}

func newRecordedScreen(c *catalog.Catalog) (*LevelSelectScreen, *game.Engine, *audio.Recorder) {
	rec := &audio.Recorder{}
	e := game.New(game.Options{Catalog: c, Sounds: rec})
	e.ShowLevelSelect()
	return New(e), e, rec
}

func keyMsg(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	}
	return tea.KeyPressMsg{Code: []rune(s)[0], Text: s}
}

func TestNumberKeyStartsTier(t *testing.T) {
	l, e, rec := newRecordedScreen(catalog.Default())
	l.Update(keyMsg("2"))

	st := e.State()
	if st.Screen != game.ScreenGame || st.Tier != catalog.TierNormal {
		t.Errorf("screen %v tier %v, want game/normal", st.Screen, st.Tier)
	}
	if got := rec.Count("click"); got != 1 {
		t.Errorf("clicks = %d, want 1", got)
	}
	if got := rec.Count("bgm-start"); got != 1 {
		t.Errorf("bgm starts = %d, want 1", got)
	}
}

func TestEmptyTierStaysOnLevelSelect(t *testing.T) {
	easyOnly, err := catalog.New(catalog.Default().Tier(catalog.TierEasy))
	if err != nil {
		t.Fatal(err)
	}
	l, e, rec := newRecordedScreen(easyOnly)
	l.Update(keyMsg("3"))

	if st := e.State(); st.Active || st.Screen != game.ScreenLevelSelect {
		t.Errorf("active %v screen %v, want inactive on levelSelect", st.Active, st.Screen)
	}
	if submitted, valid := l.input.Submitted(); !submitted || valid {
		t.Errorf("Submitted() = %v, %v; want true, false", submitted, valid)
	}
	if got := rec.Calls(); len(got) != 0 {
		t.Errorf("sounds = %v, want none", got)
	}
}

func TestArrowsAndEnter(t *testing.T) {
	l, e := newTestScreen()
	l.Update(keyMsg("down"))
	l.Update(keyMsg("down"))
	l.Update(keyMsg("down"))
	l.Update(keyMsg("up"))
	l.Update(keyMsg("enter"))

	if got := e.State().Tier; got != catalog.TierNormal {
		t.Errorf("Tier = %v, want normal", got)
	}
}

func TestTypedTier(t *testing.T) {
	l, e := newTestScreen()
	l.input.Model.SetValue("Hard")
	l.Update(keyMsg("enter"))

	if got := e.State().Tier; got != catalog.TierHard {
		t.Errorf("Tier = %v, want hard", got)
	}
}

func TestTypedUnknownTier(t *testing.T) {
	l, e := newTestScreen()
	l.input.Model.SetValue("expert")
	l.Update(keyMsg("enter"))

	if e.State().Active {
		t.Fatal("unknown tier should not start a game")
	}
	if submitted, valid := l.input.Submitted(); !submitted || valid {
		t.Errorf("Submitted() = %v, %v; want true, false", submitted, valid)
	}
}

func TestEscReturnsToTitle(t *testing.T) {
	l, e := newTestScreen()
	l.Update(keyMsg("esc"))
	if got := e.State().Screen; got != game.ScreenTitle {
		t.Errorf("Screen = %v, want title", got)
	}
}

func TestViewListsTiers(t *testing.T) {
	l, _ := newTestScreen()
	view := ansi.Strip(l.View(100, 30))
	for _, tier := range catalog.AllTiers() {
		if !strings.Contains(view, tier.DisplayName()) {
			t.Errorf("view missing %s", tier.DisplayName())
		}
	}
}
