package draft

import (
	"fmt"
	"strings"

	"github.com/abhisek/fractiz/internal/catalog"
)

const systemPrompt = `You write fraction questions for a Japanese quiz game aimed at children aged 7 to 10.

Rules:
- Output one question as JSON matching the schema.
- Use only proper fractions or whole units (numerator <= denominator), denominators 2 to 12.
- Exactly one option has "correct": true.
- compare: exactly 2 options of different value; the correct one is the larger.
- equivalent: 2 options; the correct one has the same value as "target" but a different denominator; the other does not.
- oddOneOut: exactly 3 options; two share a value with different denominators, the correct one is the different one.
- For compare and oddOneOut set target to 0/1.
- Use the same visual for every option.
- The hint is one short sentence in Japanese, written for a child, and never states the answer.
- Do not reuse any option set listed under "Already in the catalog".`

var typeRules = map[catalog.QuestionType]string{
	catalog.TypeCompare:    "compare (pick the larger of two fractions)",
	catalog.TypeEquivalent: "equivalent (pick the fraction equal to the target)",
	catalog.TypeOddOneOut:  "oddOneOut (pick the fraction that differs from the other two)",
}

var tierRules = map[catalog.Tier]string{
	catalog.TierEasy:   "easy: denominators 2 to 4, values far apart",
	catalog.TierNormal: "normal: denominators up to 8",
	catalog.TierHard:   "hard: denominators up to 12, values close together",
}

func userMessage(req Request, existing []catalog.Question, maxExisting int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Question type: %s\n", typeRules[req.Type])
	fmt.Fprintf(&b, "Difficulty: %s\n", tierRules[req.Tier])
	b.WriteString("\nAlready in the catalog:\n")
	b.WriteString(optionSets(existing, maxExisting))
	return b.String()
}

// optionSets lists the most recent option sets, one per line, or "None".
func optionSets(questions []catalog.Question, max int) string {
	if max > 0 && len(questions) > max {
		questions = questions[len(questions)-max:]
	}
	if len(questions) == 0 {
		return "None"
	}
	lines := make([]string, len(questions))
	for i, q := range questions {
		parts := make([]string, len(q.Options))
		for j, o := range q.Options {
			parts[j] = o.Fraction.String()
		}
		lines[i] = fmt.Sprintf("%d. %s: %s", i+1, q.Type, strings.Join(parts, " vs "))
	}
	return strings.Join(lines, "\n")
}
