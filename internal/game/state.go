package game

import (
	"time"

	"github.com/abhisek/fractiz/internal/catalog"
	"github.com/abhisek/fractiz/internal/pool"
)

// Screen is the top-level screen the UI should show.
type Screen int

const (
	ScreenTitle       Screen = iota // Start menu
	ScreenLevelSelect               // Tier picker
	ScreenGame                      // Answering questions
	ScreenResult                    // Score and mistake review
	ScreenCredits                   // Static credits page
)

func (s Screen) String() string {
	switch s {
	case ScreenTitle:
		return "title"
	case ScreenLevelSelect:
		return "levelSelect"
	case ScreenGame:
		return "game"
	case ScreenResult:
		return "result"
	case ScreenCredits:
		return "credits"
	default:
		return "unknown"
	}
}

// WrongAnswer records a missed question for the post-game review.
type WrongAnswer struct {
	Question catalog.Question
	Selected int // Index the learner picked
	Correct  int // Index of the correct option
}

// State is the full session state. The Engine is its only writer.
type State struct {
	// Screen is the screen the UI should display.
	Screen Screen

	// Tier is the difficulty chosen at StartGame.
	Tier catalog.Tier

	// Score never decreases within a session.
	Score int

	// Current is the question on screen (nil outside a game).
	Current *catalog.Question

	// QuestionsAnswered counts answers given this session, right or wrong.
	QuestionsAnswered int

	// CorrectAnswers counts correct answers this session.
	CorrectAnswers int

	// Mistakes counts wrong answers on the current question.
	Mistakes int

	// HintShown is true once the learner has opened the hint for the current question.
	HintShown bool

	// HintEnabled is true once HintDelay has passed since QuestionStart.
	HintEnabled bool

	// ShowVisuals fills the option visuals; set together with HintShown.
	ShowVisuals bool

	// WrongAnswers lists missed questions in the order they were answered.
	WrongAnswers []WrongAnswer

	// QuestionStart is when the current question was drawn.
	QuestionStart time.Time

	// GameStart is when StartGame ran.
	GameStart time.Time

	// TotalGameTime is the session length in whole seconds, set when the game ends.
	TotalGameTime int

	// MaxQuestions is the number of answers that ends a session.
	MaxQuestions int

	// Active is true between StartGame and EndGame/QuitGame.
	Active bool

	// AwaitingNext is true between an answer and its follow-up.
	AwaitingNext bool

	// LastCorrect records whether the most recent answer was correct.
	LastCorrect bool

	// SessionID is a UUID assigned at StartGame.
	SessionID string

	// pool is the session's draw state. Reset with the rest of State.
	pool pool.State
}

// newState returns the default state shown on the title screen.
func newState(cfg Config) State {
	return State{
		Screen:       ScreenTitle,
		MaxQuestions: cfg.MaxQuestions,
	}
}

// clone returns a copy for readers outside the engine.
func (s State) clone() State {
	out := s
	if s.Current != nil {
		q := *s.Current
		out.Current = &q
	}
	if s.WrongAnswers != nil {
		out.WrongAnswers = make([]WrongAnswer, len(s.WrongAnswers))
		copy(out.WrongAnswers, s.WrongAnswers)
	}
	out.pool = pool.State{}
	return out
}
