// Package catalog holds the fraction question catalog, partitioned by tier.
package catalog

import (
	"fmt"
	"strings"
)

// Catalog is an immutable, indexed set of questions.
// Returned slices share Option and Hint storage and must be treated as read-only.
type Catalog struct {
	questions []Question
	byID      map[string]int
	byTier    map[Tier][]Question
}

// defaultCatalog is built once from seed.go.
var defaultCatalog = mustNew(seedQuestions())

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog
}

// New builds a catalog, rejecting entries the game cannot present:
// duplicate IDs, unknown tiers, option counts outside 2..3 and zero
// denominators. Content rules (which option is correct) are the
// validator's job, not the catalog's.
func New(questions []Question) (*Catalog, error) {
	c := &Catalog{
		questions: questions,
		byID:      make(map[string]int, len(questions)),
		byTier:    make(map[Tier][]Question),
	}

	var errs []string
	for i, q := range questions {
		if q.ID == "" {
			errs = append(errs, fmt.Sprintf("question #%d: empty ID", i))
			continue
		}
		if _, dup := c.byID[q.ID]; dup {
			errs = append(errs, fmt.Sprintf("question %q: duplicate ID", q.ID))
			continue
		}
		if !q.Tier().Valid() {
			errs = append(errs, fmt.Sprintf("question %q: difficulty %d is not a known tier", q.ID, q.Difficulty))
		}
		if n := len(q.Options); n < 2 || n > 3 {
			errs = append(errs, fmt.Sprintf("question %q: has %d options, want 2 or 3", q.ID, n))
		}
		for j, o := range q.Options {
			if o.Fraction.Denominator <= 0 || o.Fraction.Numerator < 0 {
				errs = append(errs, fmt.Sprintf("question %q option %d: invalid fraction %s", q.ID, j, o.Fraction))
			}
		}
		c.byID[q.ID] = i
		c.byTier[q.Tier()] = append(c.byTier[q.Tier()], q)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("catalog is invalid:\n  %s", strings.Join(errs, "\n  "))
	}
	return c, nil
}

func mustNew(questions []Question) *Catalog {
	c, err := New(questions)
	if err != nil {
		panic(err)
	}
	return c
}

// All returns every question in authoring order.
func (c *Catalog) All() []Question {
	out := make([]Question, len(c.questions))
	copy(out, c.questions)
	return out
}

// Tier returns the questions of one tier in authoring order.
func (c *Catalog) Tier(t Tier) []Question {
	qs := c.byTier[t]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// Get returns a question by ID.
func (c *Catalog) Get(id string) (Question, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Question{}, false
	}
	return c.questions[i], true
}

// Len returns the number of questions.
func (c *Catalog) Len() int {
	return len(c.questions)
}
