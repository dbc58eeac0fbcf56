package play

import "github.com/abhisek/fractiz/internal/game"

// timerTickMsg drives the hint countdown. It carries the session so ticks
// scheduled by an earlier game are dropped.
type timerTickMsg struct {
	SessionID string
}

// feedbackDoneMsg ends the feedback window after an answer.
type feedbackDoneMsg struct {
	FollowUp game.FollowUp
}
