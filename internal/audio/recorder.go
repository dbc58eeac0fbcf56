package audio

import (
	"sync"

	"github.com/abhisek/fractiz/internal/game"
)

// Recorder records cue names in call order. Used by screen tests.
type Recorder struct {
	mu    sync.Mutex
	calls []string
}

var _ game.Sounds = (*Recorder)(nil)

func (r *Recorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, name)
}

// Calls returns a copy of the recorded cue names.
func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.calls))
	copy(out, r.calls)
	return out
}

// Count returns how many times name was played.
func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c == name {
			n++
		}
	}
	return n
}

func (r *Recorder) PlayCorrect()      { r.record("correct") }
func (r *Recorder) PlayIncorrect()    { r.record("incorrect") }
func (r *Recorder) PlayClick()        { r.record("click") }
func (r *Recorder) PlayHint()         { r.record("hint") }
func (r *Recorder) PlayGameComplete() { r.record("complete") }
func (r *Recorder) PlayGoodJob()      { r.record("goodjob") }
func (r *Recorder) StartBGM()         { r.record("bgm-start") }
func (r *Recorder) StopBGM()          { r.record("bgm-stop") }
