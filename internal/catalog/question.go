package catalog

import (
	"fmt"

	"github.com/abhisek/fractiz/internal/fraction"
)

// QuestionType identifies how a question is judged.
type QuestionType string

const (
	TypeCompare    QuestionType = "compare"    // Pick the larger of two fractions
	TypeEquivalent QuestionType = "equivalent" // Pick the fraction equal to the one in the prompt
	TypeOddOneOut  QuestionType = "oddOneOut"  // Pick the one fraction not equal to the other two
)

// VisualType is the rendering style of an option's fraction.
type VisualType string

const (
	VisualCircle    VisualType = "circle"
	VisualRectangle VisualType = "rectangle"
	VisualLiquid    VisualType = "liquid"
)

// AnimationType is the hint animation style.
type AnimationType string

const (
	AnimationSplit   AnimationType = "split"
	AnimationFill    AnimationType = "fill"
	AnimationCompare AnimationType = "compare"
)

// Tier is a difficulty level. Each tier has its own question list.
type Tier int

const (
	TierEasy   Tier = 1
	TierNormal Tier = 2
	TierHard   Tier = 3
)

// AllTiers returns every tier in display order.
func AllTiers() []Tier {
	return []Tier{TierEasy, TierNormal, TierHard}
}

// String returns the tier key used in config, flags and catalog files.
func (t Tier) String() string {
	switch t {
	case TierEasy:
		return "easy"
	case TierNormal:
		return "normal"
	case TierHard:
		return "hard"
	default:
		return fmt.Sprintf("tier(%d)", int(t))
	}
}

// DisplayName returns the learner-facing tier name.
func (t Tier) DisplayName() string {
	switch t {
	case TierEasy:
		return "初級"
	case TierNormal:
		return "中級"
	case TierHard:
		return "上級"
	default:
		return t.String()
	}
}

// Description returns a one-line summary of the tier's content.
func (t Tier) Description() string {
	switch t {
	case TierEasy:
		return "2分の1、3分の1など かんたんな分数"
	case TierNormal:
		return "6分の1、8分の1まで 少し複雑な分数"
	case TierHard:
		return "複雑な分数の比較と等価問題"
	default:
		return ""
	}
}

// Valid reports whether t is one of the known tiers.
func (t Tier) Valid() bool {
	return t >= TierEasy && t <= TierHard
}

// ParseTier converts a tier key ("easy", "normal", "hard") to a Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "easy", "1":
		return TierEasy, nil
	case "normal", "2":
		return TierNormal, nil
	case "hard", "3":
		return TierHard, nil
	default:
		return 0, fmt.Errorf("unknown tier %q (want easy, normal or hard)", s)
	}
}

// Option is one selectable answer.
type Option struct {
	Fraction    fraction.Fraction
	DisplayText string
	Visual      VisualType
	IsCorrect   bool
}

// Hint is shown on request once the hint unlocks.
type Hint struct {
	Message   string
	Animation AnimationType
}

// Question is a single catalog entry.
type Question struct {
	ID         string
	Type       QuestionType
	Text       string
	Options    []Option
	Difficulty int
	Hint       *Hint
}

// Tier returns the tier the question belongs to.
func (q Question) Tier() Tier {
	return Tier(q.Difficulty)
}

// CorrectIndex returns the index of the first correct option, or -1.
func (q Question) CorrectIndex() int {
	for i, o := range q.Options {
		if o.IsCorrect {
			return i
		}
	}
	return -1
}
