// Package game implements the quiz session state machine.
//
// The Engine is driven from a single goroutine (the UI loop). Every
// transition runs to completion and silently ignores calls whose
// preconditions do not hold.
package game

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/fractiz/internal/catalog"
	"github.com/abhisek/fractiz/internal/pool"
)

// Options configures an Engine. Zero fields get defaults.
type Options struct {
	Catalog *catalog.Catalog
	Config  Config
	Sounds  Sounds
	Logger  *zap.Logger
	Now     func() time.Time
	Rand    *rand.Rand
}

// Engine owns a session's State and exposes its transitions.
// It is not safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	cfg     Config
	sounds  Sounds
	logger  *zap.Logger
	now     func() time.Time
	rng     *rand.Rand
	state   State
}

// Answer describes the effect of AnswerQuestion.
type Answer struct {
	Correct      bool
	Selected     int
	CorrectIndex int
	Points       int

	// FollowUp must be passed to Engine.FollowUp after Config.FeedbackDelay.
	FollowUp FollowUp
}

// FollowUp identifies the answer a delayed follow-up belongs to.
type FollowUp struct {
	SessionID string
	Answered  int
}

// New creates an Engine on the title screen.
func New(opts Options) *Engine {
	e := &Engine{
		catalog: opts.Catalog,
		cfg:     opts.Config.withDefaults(),
		sounds:  opts.Sounds,
		logger:  opts.Logger,
		now:     opts.Now,
		rng:     opts.Rand,
	}
	if e.catalog == nil {
		e.catalog = catalog.Default()
	}
	if e.sounds == nil {
		e.sounds = NopSounds{}
	}
	if e.logger == nil {
		e.logger = zap.NewNop()
	}
	if e.now == nil {
		e.now = time.Now
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e.state = newState(e.cfg)
	return e
}

// State returns a copy of the current session state.
func (e *Engine) State() State {
	return e.state.clone()
}

// Config returns the rules the engine runs with.
func (e *Engine) Config() Config {
	return e.cfg
}

// Sounds returns the audio capability, for UI-only cues such as clicks.
func (e *Engine) Sounds() Sounds {
	return e.sounds
}

// StartGame begins a new session for tier and draws the first question.
// A tier with no questions in the catalog is refused and the state is left
// unchanged.
func (e *Engine) StartGame(tier catalog.Tier) {
	if !tier.Valid() {
		return
	}
	if !e.CanStart(tier) {
		e.logger.Warn("no questions for tier, not starting", zap.String("tier", tier.String()))
		return
	}
	now := e.now()

	e.state = newState(e.cfg)
	e.state.Screen = ScreenGame
	e.state.Tier = tier
	e.state.Active = true
	e.state.GameStart = now
	e.state.SessionID = uuid.New().String()
	e.state.pool = pool.Initialize(e.catalog.Tier(tier), tier, e.cfg.WorkingSize, e.rng)

	e.logger.Info("game started",
		zap.String("session_id", e.state.SessionID),
		zap.String("tier", tier.String()),
		zap.Int("working_set", len(e.state.pool.Working)),
	)

	e.drawNext(now)
	e.sounds.StartBGM()
}

// CanStart reports whether tier is valid and has questions to play.
func (e *Engine) CanStart(tier catalog.Tier) bool {
	return tier.Valid() && len(e.catalog.Tier(tier)) > 0
}

// AnswerQuestion judges the option at index i. The bool is false when the
// call was ignored.
func (e *Engine) AnswerQuestion(i int) (Answer, bool) {
	s := &e.state
	if !s.Active || s.Current == nil || s.AwaitingNext {
		return Answer{}, false
	}
	if i < 0 || i >= len(s.Current.Options) {
		return Answer{}, false
	}

	q := *s.Current
	ans := Answer{
		Selected:     i,
		CorrectIndex: q.CorrectIndex(),
		Correct:      q.Options[i].IsCorrect,
	}

	if ans.Correct {
		ans.Points = e.cfg.PointsPerCorrect
		if s.HintShown {
			ans.Points = e.cfg.HintedPoints
		}
		s.Score += ans.Points
		s.CorrectAnswers++
		s.Mistakes = 0
		e.sounds.PlayCorrect()
	} else {
		s.Mistakes++
		s.WrongAnswers = append(s.WrongAnswers, WrongAnswer{
			Question: q,
			Selected: i,
			Correct:  ans.CorrectIndex,
		})
		e.sounds.PlayIncorrect()
	}

	s.QuestionsAnswered++
	s.LastCorrect = ans.Correct
	s.HintShown = false
	s.HintEnabled = false
	s.ShowVisuals = false
	s.AwaitingNext = true

	ans.FollowUp = FollowUp{SessionID: s.SessionID, Answered: s.QuestionsAnswered}

	e.logger.Debug("question answered",
		zap.String("session_id", s.SessionID),
		zap.String("question_id", q.ID),
		zap.Int("selected", i),
		zap.Bool("correct", ans.Correct),
		zap.Int("score", s.Score),
	)
	return ans, true
}

// FollowUp runs the transition scheduled after an answer: EndGame once
// MaxQuestions answers are in, NextQuestion otherwise. It re-reads the
// live state and ignores tokens from an earlier answer or session.
func (e *Engine) FollowUp(f FollowUp) bool {
	s := &e.state
	if !s.Active || !s.AwaitingNext {
		return false
	}
	if f.SessionID != s.SessionID || f.Answered != s.QuestionsAnswered {
		return false
	}

	if s.QuestionsAnswered >= s.MaxQuestions {
		e.EndGame()
	} else {
		e.NextQuestion()
	}
	return true
}

// ShowHint reveals the hint and fills the visuals once the hint is unlocked.
func (e *Engine) ShowHint() {
	s := &e.state
	if !s.Active || !s.HintEnabled || s.Current == nil {
		return
	}
	s.HintShown = true
	s.ShowVisuals = true
	e.sounds.PlayHint()
}

// NextQuestion draws the next question for the active tier.
func (e *Engine) NextQuestion() {
	if !e.state.Active {
		return
	}
	e.drawNext(e.now())
}

// EndGame finishes the session and moves to the result screen.
func (e *Engine) EndGame() {
	e.finish("completed")
}

// QuitGame abandons the session and moves to the result screen.
func (e *Engine) QuitGame() {
	e.finish("quit")
}

func (e *Engine) finish(reason string) {
	s := &e.state
	if !s.Active {
		return
	}

	elapsed := e.now().Sub(s.GameStart)
	s.TotalGameTime = int(math.Round(elapsed.Seconds()))
	if s.TotalGameTime < 0 {
		s.TotalGameTime = 0
	}
	s.Active = false
	s.AwaitingNext = false
	s.Screen = ScreenResult

	e.sounds.StopBGM()
	e.sounds.PlayGameComplete()
	if s.Score >= e.cfg.GoodJobScore {
		e.sounds.PlayGoodJob()
	}

	e.logger.Info("game ended",
		zap.String("session_id", s.SessionID),
		zap.String("reason", reason),
		zap.Int("score", s.Score),
		zap.Int("correct", s.CorrectAnswers),
		zap.Int("answered", s.QuestionsAnswered),
		zap.Int("seconds", s.TotalGameTime),
	)
}

// ResetGame restores the default state and returns to the title screen.
func (e *Engine) ResetGame() {
	if e.state.Active {
		e.sounds.StopBGM()
	}
	e.state = newState(e.cfg)
}

// ShowCredits switches to the credits screen.
func (e *Engine) ShowCredits() {
	e.state.Screen = ScreenCredits
}

// ShowLevelSelect switches to the tier picker.
func (e *Engine) ShowLevelSelect() {
	e.state.Screen = ScreenLevelSelect
}

// Tick unlocks the hint once HintDelay has passed on the current question.
// The UI calls it once a second.
func (e *Engine) Tick() {
	s := &e.state
	if !s.Active || s.HintEnabled || s.AwaitingNext || s.Current == nil {
		return
	}
	if e.now().Sub(s.QuestionStart) >= e.cfg.HintDelay {
		s.HintEnabled = true
	}
}

// HintRemaining returns the whole seconds until the hint unlocks.
func (e *Engine) HintRemaining() int {
	s := e.state
	if !s.Active || s.HintEnabled || s.Current == nil {
		return 0
	}
	left := e.cfg.HintDelay - e.now().Sub(s.QuestionStart)
	if left <= 0 {
		return 0
	}
	return int(math.Ceil(left.Seconds()))
}

// drawNext replaces the current question and resets per-question state.
func (e *Engine) drawNext(now time.Time) {
	s := &e.state
	q, next, out := pool.Draw(s.pool, e.rng)
	s.pool = next

	s.Mistakes = 0
	s.HintShown = false
	s.HintEnabled = false
	s.ShowVisuals = false
	s.AwaitingNext = false
	s.QuestionStart = now

	if !out.OK {
		s.Current = nil
		e.logger.Error("no questions for tier",
			zap.String("session_id", s.SessionID),
			zap.String("tier", s.Tier.String()),
		)
		return
	}
	if out.Refilled {
		e.logger.Warn("working set exhausted, resampled; questions may repeat",
			zap.String("session_id", s.SessionID),
			zap.String("tier", s.Tier.String()),
			zap.Int("answered", s.QuestionsAnswered),
		)
	}
	s.Current = &q
}
