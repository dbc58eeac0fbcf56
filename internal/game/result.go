package game

import (
	"math"
	"time"

	"github.com/abhisek/fractiz/internal/catalog"
)

// Summary is the data shown on the result screen.
type Summary struct {
	SessionID    string
	Tier         catalog.Tier
	Score        int
	Correct      int
	Answered     int
	Accuracy     int // Rounded percent, 0 when nothing was answered
	Duration     time.Duration
	Message      string
	WrongAnswers []WrongAnswer
	GoodJob      bool // Score reached Config.GoodJobScore
}

// Summary builds the result summary from the current state.
func (e *Engine) Summary() Summary {
	s := e.State()
	acc := Accuracy(s.CorrectAnswers, s.QuestionsAnswered)
	return Summary{
		SessionID:    s.SessionID,
		Tier:         s.Tier,
		Score:        s.Score,
		Correct:      s.CorrectAnswers,
		Answered:     s.QuestionsAnswered,
		Accuracy:     acc,
		Duration:     time.Duration(s.TotalGameTime) * time.Second,
		Message:      ResultMessage(acc),
		WrongAnswers: s.WrongAnswers,
		GoodJob:      s.Score >= e.cfg.GoodJobScore,
	}
}

// Accuracy returns correct/answered as a rounded percentage.
func Accuracy(correct, answered int) int {
	if answered <= 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(answered) * 100))
}

// ResultMessage returns the encouragement for an accuracy percentage.
func ResultMessage(accuracy int) string {
	switch {
	case accuracy >= 90:
		return "素晴らしい成績です！"
	case accuracy >= 70:
		return "よくできました！"
	case accuracy >= 50:
		return "がんばりました！"
	default:
		return "もう一度挑戦してみよう！"
	}
}
