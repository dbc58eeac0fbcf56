// Package draft asks an LLM for new catalog questions and keeps only the
// ones that pass the catalog validator.
package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/fractiz/internal/catalog"
	"github.com/abhisek/fractiz/internal/fraction"
	"github.com/abhisek/fractiz/internal/llm"
	"github.com/abhisek/fractiz/internal/validator"
)

const purpose = "question-draft"

type Config struct {
	MaxTokens   int
	Temperature float64

	// MaxExisting caps how many existing option sets go into the prompt.
	MaxExisting int
}

func DefaultConfig() Config {
	return Config{MaxTokens: 512, Temperature: 0.8, MaxExisting: 30}
}

// Request names what to draft. Count is clamped to at least 1.
type Request struct {
	Tier  catalog.Tier
	Type  catalog.QuestionType
	Count int
}

// Result holds drafts that passed validation and the ones that did not.
type Result struct {
	Accepted []catalog.Question
	Rejected []*RejectedError
}

// RejectedError is a draft the validator turned down.
type RejectedError struct {
	Draft    catalog.Question
	Messages []string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("draft %s rejected: %s", e.Draft.ID, strings.Join(e.Messages, "; "))
}

// Drafter drafts questions against an existing catalog.
type Drafter struct {
	provider llm.Provider
	catalog  *catalog.Catalog
	config   Config
	logger   *zap.Logger
	newID    func(catalog.Tier) string
}

func New(provider llm.Provider, cat *catalog.Catalog, cfg Config, logger *zap.Logger) *Drafter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Drafter{
		provider: provider,
		catalog:  cat,
		config:   cfg,
		logger:   logger.Named("draft"),
		newID: func(t catalog.Tier) string {
			return fmt.Sprintf("%s_draft_%s", t, uuid.NewString()[:8])
		},
	}
}

// Draft requests req.Count questions one at a time. Accepted drafts are
// added to the dedup list for the following requests. A provider error
// stops the run and is returned alongside what was drafted so far.
func (d *Drafter) Draft(ctx context.Context, req Request) (*Result, error) {
	if !req.Tier.Valid() {
		return nil, fmt.Errorf("draft: unknown tier %d", req.Tier)
	}
	if _, ok := typeRules[req.Type]; !ok {
		return nil, fmt.Errorf("draft: unknown question type %q", req.Type)
	}
	count := max(req.Count, 1)

	ctx = llm.WithPurpose(ctx, purpose)
	existing := d.catalog.All()
	res := &Result{}

	for i := 0; i < count; i++ {
		q, err := d.one(ctx, req, existing)
		var rejected *RejectedError
		switch {
		case errors.As(err, &rejected):
			d.logger.Info("draft rejected", zap.String("question_id", q.ID), zap.Strings("reasons", rejected.Messages))
			res.Rejected = append(res.Rejected, rejected)
		case err != nil:
			return res, fmt.Errorf("draft %d of %d: %w", i+1, count, err)
		default:
			d.logger.Info("draft accepted", zap.String("question_id", q.ID), zap.Stringer("tier", req.Tier))
			res.Accepted = append(res.Accepted, q)
			existing = append(existing, q)
		}
	}
	return res, nil
}

type draftOption struct {
	Fraction draftFraction `json:"fraction"`
	Visual   string        `json:"visual"`
	Correct  bool          `json:"correct"`
}

type draftFraction struct {
	Numerator   int `json:"numerator"`
	Denominator int `json:"denominator"`
}

func (f draftFraction) value() fraction.Fraction { return fraction.New(f.Numerator, f.Denominator) }

type draftOutput struct {
	Target  draftFraction `json:"target"`
	Options []draftOption `json:"options"`
	Hint    string        `json:"hint"`
}

func (d *Drafter) one(ctx context.Context, req Request, existing []catalog.Question) (catalog.Question, error) {
	resp, err := d.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: userMessage(req, existing, d.config.MaxExisting)}},
		Schema:      questionSchema,
		MaxTokens:   d.config.MaxTokens,
		Temperature: d.config.Temperature,
	})
	if err != nil {
		return catalog.Question{}, err
	}

	var out draftOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return catalog.Question{}, fmt.Errorf("decode draft: %w", err)
	}

	q := build(d.newID(req.Tier), req, out)
	result := validator.Check(q)
	msgs := result.Errors
	if req.Type == catalog.TypeEquivalent {
		msgs = append(msgs, checkTarget(out)...)
	}
	if dup, ok := duplicateOf(q, existing); ok {
		msgs = append(msgs, fmt.Sprintf("same option set as %s", dup))
	}
	if len(msgs) > 0 {
		return q, &RejectedError{Draft: q, Messages: msgs}
	}
	return q, nil
}

func build(id string, req Request, out draftOutput) catalog.Question {
	q := catalog.Question{
		ID:         id,
		Type:       req.Type,
		Difficulty: int(req.Tier),
		Options:    make([]catalog.Option, len(out.Options)),
		Hint:       &catalog.Hint{Message: strings.TrimSpace(out.Hint), Animation: catalog.AnimationCompare},
	}
	switch req.Type {
	case catalog.TypeCompare:
		q.Text = catalog.PromptCompare
	case catalog.TypeEquivalent:
		q.Text = catalog.EquivalentPrompt(out.Target.value())
		q.Hint.Animation = catalog.AnimationSplit
	case catalog.TypeOddOneOut:
		q.Text = catalog.PromptOddOneOut
	}
	for i, o := range out.Options {
		f := o.Fraction.value()
		q.Options[i] = catalog.Option{
			Fraction:    f,
			DisplayText: f.String(),
			Visual:      catalog.VisualType(o.Visual),
			IsCorrect:   o.Correct,
		}
	}
	return q
}

// checkTarget ensures the correct option of an equivalent draft matches the
// target named in its prompt.
func checkTarget(out draftOutput) []string {
	target := out.Target.value()
	if target.Denominator <= 0 {
		return []string{"target has no denominator"}
	}
	for _, o := range out.Options {
		if o.Correct && !fraction.Equal(o.Fraction.value(), target) {
			return []string{fmt.Sprintf("correct option %s does not equal target %s", o.Fraction.value(), target)}
		}
	}
	return nil
}

// duplicateOf reports an existing question of the same type whose options
// have the same values in any order.
func duplicateOf(q catalog.Question, existing []catalog.Question) (string, bool) {
	key := optionKey(q)
	for _, e := range existing {
		if e.Type == q.Type && optionKey(e) == key {
			return e.ID, true
		}
	}
	return "", false
}

func optionKey(q catalog.Question) string {
	parts := make([]string, len(q.Options))
	for i, o := range q.Options {
		parts[i] = o.Fraction.Reduce().String()
	}
	slices.Sort(parts)
	return strings.Join(parts, ",")
}
