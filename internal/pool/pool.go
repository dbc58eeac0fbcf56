// Package pool selects questions for a session without repeats.
//
// State is a value owned by the caller. Draw never mutates its input; it
// returns the next State, so a session's draw history cannot leak into the
// next session.
package pool

import (
	"math/rand/v2"

	"github.com/abhisek/fractiz/internal/catalog"
)

// DefaultWorkingSize is the number of questions sampled per session.
const DefaultWorkingSize = 5

// State is the per-session draw state for one tier.
type State struct {
	// Tier is the difficulty level this state draws from.
	Tier catalog.Tier

	// Source is the tier's full question list. Refills resample from it.
	Source []catalog.Question

	// Working is the subset sampled at session start.
	Working []catalog.Question

	// Used holds the IDs already returned from Working.
	Used map[string]bool

	// Size is the working-set size used for refills.
	Size int
}

// Outcome describes a single draw.
type Outcome struct {
	// OK is false only when Source is empty.
	OK bool

	// Refilled is set when the working set was exhausted and resampled
	// before this draw. Questions may repeat within a session after a refill.
	Refilled bool
}

// SampleSubset returns the first n questions of a shuffled copy of questions.
// n is capped at len(questions).
func SampleSubset(questions []catalog.Question, n int, rng *rand.Rand) []catalog.Question {
	shuffled := make([]catalog.Question, len(questions))
	copy(shuffled, questions)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n < 0 {
		n = 0
	}
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n]
}

// Initialize builds a fresh working set for a new session.
func Initialize(source []catalog.Question, tier catalog.Tier, size int, rng *rand.Rand) State {
	return State{
		Tier:    tier,
		Source:  source,
		Working: SampleSubset(source, size, rng),
		Used:    map[string]bool{},
		Size:    size,
	}
}

// Remaining returns how many working-set questions have not been drawn.
func (s State) Remaining() int {
	n := 0
	for _, q := range s.Working {
		if !s.Used[q.ID] {
			n++
		}
	}
	return n
}

// Draw picks a random unused question from the working set and returns it
// with the updated state. When the working set is exhausted it is resampled
// from Source and the used set cleared before drawing.
func Draw(s State, rng *rand.Rand) (catalog.Question, State, Outcome) {
	if len(s.Source) == 0 {
		return catalog.Question{}, s, Outcome{}
	}

	next := State{
		Tier:    s.Tier,
		Source:  s.Source,
		Working: s.Working,
		Used:    make(map[string]bool, len(s.Used)+1),
		Size:    s.Size,
	}
	for id := range s.Used {
		next.Used[id] = true
	}

	var out Outcome
	available := unused(next)
	if len(available) == 0 {
		size := s.Size
		if size <= 0 {
			size = DefaultWorkingSize
		}
		next.Working = SampleSubset(s.Source, size, rng)
		next.Used = map[string]bool{}
		available = next.Working
		out.Refilled = true
	}

	q := available[rng.IntN(len(available))]
	next.Used[q.ID] = true
	out.OK = true
	return q, next, out
}

func unused(s State) []catalog.Question {
	var out []catalog.Question
	for _, q := range s.Working {
		if !s.Used[q.ID] {
			out = append(out, q)
		}
	}
	return out
}
