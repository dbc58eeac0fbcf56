package validator

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/fractiz/internal/catalog"
)

// TierStats counts questions per tier.
type TierStats struct {
	Total int
	Valid int
}

// Summary is the whole-catalog result.
type Summary struct {
	Total        int
	Valid        int
	Invalid      int
	ErrorCount   int
	WarningCount int

	// Results holds only questions with errors or warnings, in input order.
	Results []Result

	Tiers map[catalog.Tier]TierStats
}

// CheckAll checks every question and aggregates the results.
func CheckAll(questions []catalog.Question) Summary {
	s := Summary{Tiers: make(map[catalog.Tier]TierStats)}

	for _, q := range questions {
		r := Check(q)
		s.Total++
		ts := s.Tiers[q.Tier()]
		ts.Total++
		if r.Valid {
			s.Valid++
			ts.Valid++
		} else {
			s.Invalid++
		}
		s.Tiers[q.Tier()] = ts
		s.ErrorCount += len(r.Errors)
		s.WarningCount += len(r.Warnings)

		if !r.Valid || len(r.Warnings) > 0 {
			s.Results = append(s.Results, r)
		}
	}
	return s
}

// OK reports whether no question failed.
func (s Summary) OK() bool {
	return s.Invalid == 0
}

// Err returns nil when every question is valid, otherwise one error
// listing each failure.
func (s Summary) Err() error {
	if s.OK() {
		return nil
	}
	var errs []string
	for _, r := range s.Results {
		for _, e := range r.Errors {
			errs = append(errs, fmt.Sprintf("%s: %s", r.QuestionID, e))
		}
	}
	return fmt.Errorf("catalog validation failed (%d of %d questions):\n  %s",
		s.Invalid, s.Total, strings.Join(errs, "\n  "))
}

// Write prints a human-readable report.
func (s Summary) Write(w io.Writer) {
	fmt.Fprintln(w, "=== Catalog check ===")

	for _, r := range s.Results {
		fmt.Fprintf(w, "\n%s:\n", r.QuestionID)
		for _, e := range r.Errors {
			fmt.Fprintf(w, "  error:   %s\n", e)
		}
		for _, warn := range r.Warnings {
			fmt.Fprintf(w, "  warning: %s\n", warn)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-10s %6s %6s\n", "TIER", "TOTAL", "VALID")
	fmt.Fprintln(w, strings.Repeat("\u2500", 24))
	for _, t := range catalog.AllTiers() {
		ts, ok := s.Tiers[t]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%-10s %6d %6d\n", t, ts.Total, ts.Valid)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Questions: %d  Valid: %d  Invalid: %d  Errors: %d  Warnings: %d\n",
		s.Total, s.Valid, s.Invalid, s.ErrorCount, s.WarningCount)
	if s.OK() {
		fmt.Fprintln(w, "All questions are valid.")
	} else {
		fmt.Fprintln(w, "Some questions need fixing.")
	}
}
