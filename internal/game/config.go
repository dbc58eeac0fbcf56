package game

import "time"

// Config holds the game rules.
type Config struct {
	// MaxQuestions ends the session after this many answers. Default: 5.
	MaxQuestions int

	// WorkingSize is the number of questions sampled per session. Default: 5.
	WorkingSize int

	// PointsPerCorrect is awarded for a correct answer. Default: 10.
	PointsPerCorrect int

	// HintedPoints is awarded for a correct answer after the hint was shown.
	// Default: 10, the same as an unhinted answer. Zero means the default.
	HintedPoints int

	// HintDelay is how long a question must be on screen before the hint unlocks.
	HintDelay time.Duration

	// FeedbackDelay is how long the UI shows answer feedback before calling FollowUp.
	FeedbackDelay time.Duration

	// GoodJobScore is the final score at or above which the good-job sound plays.
	GoodJobScore int
}

// DefaultConfig returns the standard rules.
func DefaultConfig() Config {
	return Config{
		MaxQuestions:     5,
		WorkingSize:      5,
		PointsPerCorrect: 10,
		HintedPoints:     10,
		HintDelay:        10 * time.Second,
		FeedbackDelay:    1500 * time.Millisecond,
		GoodJobScore:     30,
	}
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c == (Config{}) {
		return d
	}
	if c.MaxQuestions <= 0 {
		c.MaxQuestions = d.MaxQuestions
	}
	if c.WorkingSize <= 0 {
		c.WorkingSize = d.WorkingSize
	}
	if c.PointsPerCorrect <= 0 {
		c.PointsPerCorrect = d.PointsPerCorrect
	}
	if c.HintedPoints <= 0 {
		c.HintedPoints = d.HintedPoints
	}
	if c.HintDelay <= 0 {
		c.HintDelay = d.HintDelay
	}
	if c.FeedbackDelay <= 0 {
		c.FeedbackDelay = d.FeedbackDelay
	}
	if c.GoodJobScore <= 0 {
		c.GoodJobScore = d.GoodJobScore
	}
	return c
}
