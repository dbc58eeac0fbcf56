package catalog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/abhisek/fractiz/internal/fraction"
)

func TestDefault_TenPerTier(t *testing.T) {
	c := Default()
	if c.Len() != 30 {
		t.Errorf("Len() = %d, want 30", c.Len())
	}
	for _, tier := range AllTiers() {
		qs := c.Tier(tier)
		if len(qs) != 10 {
			t.Errorf("Tier(%s) has %d questions, want 10", tier, len(qs))
		}
		for _, q := range qs {
			if q.Tier() != tier {
				t.Errorf("question %s in tier %s reports tier %s", q.ID, tier, q.Tier())
			}
			if !strings.HasPrefix(q.ID, tier.String()+"_") {
				t.Errorf("question %s does not carry the %s prefix", q.ID, tier)
			}
		}
	}
}

func TestDefault_EasyIsCompareOnly(t *testing.T) {
	for _, q := range Default().Tier(TierEasy) {
		if q.Type != TypeCompare {
			t.Errorf("easy question %s has type %s", q.ID, q.Type)
		}
		if q.Text != "大きいほうを選択してください" {
			t.Errorf("easy question %s has prompt %q", q.ID, q.Text)
		}
	}
}

func TestDefault_Get(t *testing.T) {
	q, ok := Default().Get("easy_1")
	if !ok {
		t.Fatal("easy_1 not found")
	}
	if q.CorrectIndex() != 0 {
		t.Errorf("easy_1 CorrectIndex() = %d, want 0", q.CorrectIndex())
	}
	if q.Options[0].Fraction != fraction.New(1, 2) {
		t.Errorf("easy_1 option 0 = %s, want 1/2", q.Options[0].Fraction)
	}

	if _, ok := Default().Get("nope"); ok {
		t.Error("Get(nope) should not be found")
	}
}

func TestDefault_EquivalentPromptNamesTarget(t *testing.T) {
	q, _ := Default().Get("hard_8")
	if q.Text != "7/14と同じ大きさはどれですか？" {
		t.Errorf("hard_8 text = %q", q.Text)
	}
}

func TestTier_ReturnsCopy(t *testing.T) {
	c := Default()
	qs := c.Tier(TierEasy)
	qs[0].ID = "mutated"
	if c.Tier(TierEasy)[0].ID == "mutated" {
		t.Error("Tier() leaked internal storage")
	}
}

func TestNew_RejectsBadEntries(t *testing.T) {
	good := compareQ("x_1", 1, "h", opt(1, 2, VisualCircle, true), opt(1, 3, VisualCircle, false))
	dup := good
	badTier := good
	badTier.ID = "x_2"
	badTier.Difficulty = 7
	oneOpt := good
	oneOpt.ID = "x_3"
	oneOpt.Options = oneOpt.Options[:1]
	zeroDen := compareQ("x_4", 1, "h", opt(1, 0, VisualCircle, true), opt(1, 3, VisualCircle, false))

	_, err := New([]Question{good, dup, badTier, oneOpt, zeroDen})
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"duplicate ID", "not a known tier", "has 1 options", "invalid fraction"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error missing %q: %v", want, err)
		}
	}
}

func TestParseTier(t *testing.T) {
	for in, want := range map[string]Tier{"easy": TierEasy, "normal": TierNormal, "hard": TierHard, "2": TierNormal} {
		got, err := ParseTier(in)
		if err != nil || got != want {
			t.Errorf("ParseTier(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseTier("expert"); err == nil {
		t.Error("ParseTier(expert) expected error")
	}
}

func TestWriteYAML_LoadsBack(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteYAML(&buf, Default().Tier(TierNormal)); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	c, err := Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", c.Len())
	}
	q, ok := c.Get("normal_3")
	if !ok {
		t.Fatal("normal_3 missing after load")
	}
	if q.Type != TypeOddOneOut || len(q.Options) != 3 || q.CorrectIndex() != 2 {
		t.Errorf("normal_3 did not survive: %+v", q)
	}
	if q.Hint == nil || q.Hint.Animation != AnimationCompare {
		t.Errorf("normal_3 hint = %+v", q.Hint)
	}
}

func TestLoad_Defaults(t *testing.T) {
	src := `format: v1.2.0
questions:
  - id: custom_1
    tier: easy
    type: compare
    text: pick
    options:
      - fraction: 1/2
        correct: true
      - fraction: 1/5
`
	c, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	q, _ := c.Get("custom_1")
	if q.Options[1].DisplayText != "1/5" {
		t.Errorf("display = %q, want 1/5", q.Options[1].DisplayText)
	}
	if q.Options[0].Visual != VisualRectangle {
		t.Errorf("visual = %q, want rectangle", q.Options[0].Visual)
	}
	if q.Hint != nil {
		t.Errorf("hint = %+v, want nil", q.Hint)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"bad format", "format: one\nquestions: []\n", "not a semantic version"},
		{"future major", "format: v2.0.0\nquestions: []\n", "not supported"},
		{"unknown tier", "format: v1.0.0\nquestions:\n  - id: a\n    tier: expert\n    type: compare\n", "unknown tier"},
		{"unknown type", "format: v1.0.0\nquestions:\n  - id: a\n    tier: easy\n    type: sort\n", "unknown question type"},
		{"bad fraction", "format: v1.0.0\nquestions:\n  - id: a\n    tier: easy\n    type: compare\n    options:\n      - fraction: x\n", "invalid fraction format"},
		{"unknown field", "format: v1.0.0\nbogus: 1\n", "bogus"},
	}
	for _, tc := range tests {
		_, err := Load(strings.NewReader(tc.src))
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not contain %q", tc.name, err, tc.want)
		}
	}
}
