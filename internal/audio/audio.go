// Package audio provides game.Sounds implementations for a terminal.
package audio

import (
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/abhisek/fractiz/internal/game"
)

// bell is the ASCII BEL control character.
const bell = "\a"

// Bell rings the terminal bell for answer feedback. Terminals have no
// music channel, so BGM calls are only logged.
type Bell struct {
	mu      sync.Mutex
	w       io.Writer
	enabled bool
	logger  *zap.Logger
}

var _ game.Sounds = (*Bell)(nil)

// NewBell returns a Bell writing to w. When enabled is false every cue is
// dropped.
func NewBell(w io.Writer, enabled bool, logger *zap.Logger) *Bell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bell{w: w, enabled: enabled, logger: logger}
}

// ring writes n bells.
func (b *Bell) ring(cue string, n int) {
	if !b.enabled {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for range n {
		if _, err := io.WriteString(b.w, bell); err != nil {
			b.logger.Debug("bell write failed", zap.String("cue", cue), zap.Error(err))
			return
		}
	}
}

func (b *Bell) PlayCorrect()      { b.ring("correct", 1) }
func (b *Bell) PlayIncorrect()    { b.ring("incorrect", 2) }
func (b *Bell) PlayClick()        {}
func (b *Bell) PlayHint()         { b.ring("hint", 1) }
func (b *Bell) PlayGameComplete() { b.ring("complete", 1) }
func (b *Bell) PlayGoodJob()      { b.ring("goodjob", 2) }

func (b *Bell) StartBGM() {
	if b.enabled {
		b.logger.Debug("bgm start requested")
	}
}

func (b *Bell) StopBGM() {
	if b.enabled {
		b.logger.Debug("bgm stop requested")
	}
}
