package catalog

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/abhisek/fractiz/internal/fraction"
)

// FormatVersion is the catalog file format written by WriteYAML.
// Files with a different major version are rejected.
const FormatVersion = "v1.0.0"

type fileCatalog struct {
	Format    string         `yaml:"format"`
	Questions []fileQuestion `yaml:"questions"`
}

type fileQuestion struct {
	ID      string       `yaml:"id"`
	Tier    string       `yaml:"tier"`
	Type    string       `yaml:"type"`
	Text    string       `yaml:"text"`
	Options []fileOption `yaml:"options"`
	Hint    *fileHint    `yaml:"hint,omitempty"`
}

type fileOption struct {
	Fraction string `yaml:"fraction"`
	Display  string `yaml:"display,omitempty"`
	Visual   string `yaml:"visual"`
	Correct  bool   `yaml:"correct,omitempty"`
}

type fileHint struct {
	Message   string `yaml:"message"`
	Animation string `yaml:"animation"`
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load decodes a YAML catalog and builds it with New.
func Load(r io.Reader) (*Catalog, error) {
	var fc fileCatalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	if !semver.IsValid(fc.Format) {
		return nil, fmt.Errorf("catalog format %q is not a semantic version", fc.Format)
	}
	if semver.Major(fc.Format) != semver.Major(FormatVersion) {
		return nil, fmt.Errorf("catalog format %s is not supported (want %s.x)", fc.Format, semver.Major(FormatVersion))
	}

	questions := make([]Question, 0, len(fc.Questions))
	for i, fq := range fc.Questions {
		q, err := fq.toQuestion()
		if err != nil {
			return nil, fmt.Errorf("question #%d (%s): %w", i, fq.ID, err)
		}
		questions = append(questions, q)
	}
	return New(questions)
}

func (fq fileQuestion) toQuestion() (Question, error) {
	tier, err := ParseTier(fq.Tier)
	if err != nil {
		return Question{}, err
	}

	switch QuestionType(fq.Type) {
	case TypeCompare, TypeEquivalent, TypeOddOneOut:
	default:
		return Question{}, fmt.Errorf("unknown question type %q", fq.Type)
	}

	q := Question{
		ID:         fq.ID,
		Type:       QuestionType(fq.Type),
		Text:       fq.Text,
		Difficulty: int(tier),
	}

	for j, fo := range fq.Options {
		fr, err := fraction.Parse(fo.Fraction)
		if err != nil {
			return Question{}, fmt.Errorf("option %d: %w", j, err)
		}
		visual := VisualType(fo.Visual)
		switch visual {
		case VisualCircle, VisualRectangle, VisualLiquid:
		case "":
			visual = VisualRectangle
		default:
			return Question{}, fmt.Errorf("option %d: unknown visual %q", j, fo.Visual)
		}
		display := fo.Display
		if display == "" {
			display = fr.String()
		}
		q.Options = append(q.Options, Option{
			Fraction:    fr,
			DisplayText: display,
			Visual:      visual,
			IsCorrect:   fo.Correct,
		})
	}

	if fq.Hint != nil {
		anim := AnimationType(fq.Hint.Animation)
		switch anim {
		case AnimationSplit, AnimationFill, AnimationCompare:
		case "":
			anim = AnimationCompare
		default:
			return Question{}, fmt.Errorf("unknown hint animation %q", fq.Hint.Animation)
		}
		q.Hint = &Hint{Message: fq.Hint.Message, Animation: anim}
	}

	return q, nil
}

// WriteYAML encodes questions in the catalog file format.
func WriteYAML(w io.Writer, questions []Question) error {
	fc := fileCatalog{Format: FormatVersion}
	for _, q := range questions {
		fq := fileQuestion{
			ID:   q.ID,
			Tier: q.Tier().String(),
			Type: string(q.Type),
			Text: q.Text,
		}
		for _, o := range q.Options {
			fo := fileOption{
				Fraction: o.Fraction.String(),
				Visual:   string(o.Visual),
				Correct:  o.IsCorrect,
			}
			if o.DisplayText != o.Fraction.String() {
				fo.Display = o.DisplayText
			}
			fq.Options = append(fq.Options, fo)
		}
		if q.Hint != nil {
			fq.Hint = &fileHint{Message: q.Hint.Message, Animation: string(q.Hint.Animation)}
		}
		fc.Questions = append(fc.Questions, fq)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fc); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
