package audio

import (
	"bytes"
	"testing"
)

func TestBell_RingsPerCue(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, true, nil)

	b.PlayCorrect()
	b.PlayIncorrect()
	b.PlayClick()
	b.StartBGM()

	if got := buf.String(); got != "\a\a\a" {
		t.Errorf("wrote %q, want three bells", got)
	}
}

func TestBell_Disabled(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf, false, nil)
	b.PlayCorrect()
	b.PlayGoodJob()
	if buf.Len() != 0 {
		t.Errorf("disabled bell wrote %q", buf.String())
	}
}

func TestRecorder(t *testing.T) {
	r := &Recorder{}
	r.PlayHint()
	r.PlayHint()
	r.StopBGM()

	if r.Count("hint") != 2 {
		t.Errorf("Count(hint) = %d, want 2", r.Count("hint"))
	}
	calls := r.Calls()
	if len(calls) != 3 || calls[2] != "bgm-stop" {
		t.Errorf("Calls() = %v", calls)
	}
}
