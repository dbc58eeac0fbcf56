// Package validator checks catalog questions for authoring mistakes.
//
// It is an offline tool: the game never calls it while a session runs.
package validator

import (
	"fmt"

	"github.com/abhisek/fractiz/internal/catalog"
	"github.com/abhisek/fractiz/internal/fraction"
)

// Result is the outcome of checking one question.
type Result struct {
	QuestionID string
	Valid      bool
	Errors     []string
	Warnings   []string
}

func (r *Result) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *Result) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Check runs the rules for the question's type plus the common warnings.
func Check(q catalog.Question) Result {
	r := Result{QuestionID: q.ID, Valid: true}

	switch q.Type {
	case catalog.TypeCompare:
		checkCompare(q, &r)
	case catalog.TypeEquivalent:
		checkEquivalent(q, &r)
	case catalog.TypeOddOneOut:
		checkOddOneOut(q, &r)
	default:
		r.fail("unknown question type %q", q.Type)
		return r
	}

	checkCommon(q, &r)
	return r
}

// checkCompare: two options, one correct, unequal values, and the correct
// one must be the larger since the prompt asks for it.
func checkCompare(q catalog.Question, r *Result) {
	if len(q.Options) != 2 {
		r.fail("compare question needs exactly 2 options, has %d", len(q.Options))
	}
	correct := correctIndexes(q)
	if len(correct) != 1 {
		r.fail("compare question needs exactly 1 correct option, has %d", len(correct))
	}
	if len(q.Options) < 2 {
		return
	}

	a, b := q.Options[0].Fraction, q.Options[1].Fraction
	if fraction.Equal(a, b) {
		r.fail("compare options %s and %s have the same value", a, b)
		return
	}
	if len(correct) == 1 && len(q.Options) == 2 {
		other := q.Options[1-correct[0]].Fraction
		if fraction.Compare(q.Options[correct[0]].Fraction, other) < 0 {
			r.fail("correct option %s is smaller than %s", q.Options[correct[0]].Fraction, other)
		}
	}
}

// checkEquivalent: one correct, and no incorrect option may share its value.
func checkEquivalent(q catalog.Question, r *Result) {
	correct := correctIndexes(q)
	if len(correct) != 1 {
		r.fail("equivalent question needs exactly 1 correct option, has %d", len(correct))
	}
	if len(correct) == 0 {
		return
	}

	want := q.Options[correct[0]].Fraction
	for i, o := range q.Options {
		if o.IsCorrect {
			continue
		}
		if fraction.Equal(want, o.Fraction) {
			r.fail("incorrect option %d (%s) equals the correct option %s", i, o.Fraction, want)
		}
	}
}

// checkOddOneOut: three options, one correct, and the two incorrect options
// form a value-equal pair the correct one does not belong to.
func checkOddOneOut(q catalog.Question, r *Result) {
	if len(q.Options) != 3 {
		r.fail("oddOneOut question needs exactly 3 options, has %d", len(q.Options))
	}
	correct := correctIndexes(q)
	if len(correct) != 1 {
		r.fail("oddOneOut question needs exactly 1 correct option, has %d", len(correct))
	}

	var pair []fraction.Fraction
	for _, o := range q.Options {
		if !o.IsCorrect {
			pair = append(pair, o.Fraction)
		}
	}
	if len(pair) != 2 {
		return
	}
	if !fraction.Equal(pair[0], pair[1]) {
		r.fail("matching pair %s and %s are not equal", pair[0], pair[1])
		return
	}
	if len(correct) == 1 && fraction.Equal(q.Options[correct[0]].Fraction, pair[0]) {
		r.fail("odd option %s equals the matching pair", q.Options[correct[0]].Fraction)
	}
}

func checkCommon(q catalog.Question, r *Result) {
	if q.Hint == nil || q.Hint.Message == "" {
		r.warn("no hint message")
	}
	if q.Difficulty < 1 || q.Difficulty > 3 {
		r.warn("difficulty %d is outside 1..3", q.Difficulty)
	}
	for i, o := range q.Options {
		if o.DisplayText != o.Fraction.String() {
			r.warn("option %d displays %q but its value is %s", i, o.DisplayText, o.Fraction)
		}
	}
}

func correctIndexes(q catalog.Question) []int {
	var out []int
	for i, o := range q.Options {
		if o.IsCorrect {
			out = append(out, i)
		}
	}
	return out
}
