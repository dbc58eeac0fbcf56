// Package fraction provides comparison over numerator/denominator pairs.
//
// Fractions are never auto-reduced: 2/4 and 1/2 are distinct surface forms
// that compare equal by cross-multiplication.
package fraction

import (
	"fmt"
	"strconv"
	"strings"
)

// Fraction is a non-negative rational number. Denominator must be > 0.
type Fraction struct {
	Numerator   int `yaml:"numerator" json:"numerator"`
	Denominator int `yaml:"denominator" json:"denominator"`
}

// New returns n/d.
func New(n, d int) Fraction {
	return Fraction{Numerator: n, Denominator: d}
}

// Compare returns the sign of a - b: 1 if a > b, -1 if a < b, 0 if equal.
func Compare(a, b Fraction) int {
	lhs := int64(a.Numerator) * int64(b.Denominator)
	rhs := int64(b.Numerator) * int64(a.Denominator)
	switch {
	case lhs > rhs:
		return 1
	case lhs < rhs:
		return -1
	default:
		return 0
	}
}

// Equal reports whether a and b have the same value.
func Equal(a, b Fraction) bool {
	return Compare(a, b) == 0
}

// String renders the fraction as "n/d".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Numerator, f.Denominator)
}

// Value returns the fraction as a float. Display only.
func (f Fraction) Value() float64 {
	return float64(f.Numerator) / float64(f.Denominator)
}

// Reduce returns the fraction in lowest terms.
func (f Fraction) Reduce() Fraction {
	g := gcd(f.Numerator, f.Denominator)
	if g == 0 {
		return f
	}
	return Fraction{Numerator: f.Numerator / g, Denominator: f.Denominator / g}
}

// Parse parses "n/d" into a Fraction.
func Parse(s string) (Fraction, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "/", 2)
	if len(parts) != 2 {
		return Fraction{}, fmt.Errorf("invalid fraction format: %q", s)
	}
	num, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Fraction{}, fmt.Errorf("invalid numerator: %w", err)
	}
	den, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Fraction{}, fmt.Errorf("invalid denominator: %w", err)
	}
	if den == 0 {
		return Fraction{}, fmt.Errorf("zero denominator in %q", s)
	}
	if num < 0 || den < 0 {
		return Fraction{}, fmt.Errorf("negative fraction %q", s)
	}
	return Fraction{Numerator: num, Denominator: den}, nil
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
