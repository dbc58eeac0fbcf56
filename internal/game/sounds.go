package game

// Sounds is the audio capability the engine calls on transitions.
// Implementations must not block.
type Sounds interface {
	PlayCorrect()
	PlayIncorrect()
	PlayClick()
	PlayHint()
	PlayGameComplete()
	PlayGoodJob()
	StartBGM()
	StopBGM()
}

// NopSounds discards every call.
type NopSounds struct{}

func (NopSounds) PlayCorrect()      {}
func (NopSounds) PlayIncorrect()    {}
func (NopSounds) PlayClick()        {}
func (NopSounds) PlayHint()         {}
func (NopSounds) PlayGameComplete() {}
func (NopSounds) PlayGoodJob()      {}
func (NopSounds) StartBGM()         {}
func (NopSounds) StopBGM()          {}
