package catalog

import "github.com/abhisek/fractiz/internal/fraction"

// Prompts shared by every question of a type.
const (
	PromptCompare   = "大きいほうを選択してください"
	PromptOddOneOut = "仲間はずれはどれですか？"
)

// EquivalentPrompt asks for the option equal to target.
func EquivalentPrompt(target fraction.Fraction) string {
	return target.String() + "と同じ大きさはどれですか？"
}

// opt builds an option whose display text is the plain fraction.
func opt(n, d int, v VisualType, correct bool) Option {
	f := fraction.New(n, d)
	return Option{Fraction: f, DisplayText: f.String(), Visual: v, IsCorrect: correct}
}

func compareQ(id string, difficulty int, hint string, opts ...Option) Question {
	return Question{
		ID:         id,
		Type:       TypeCompare,
		Text:       PromptCompare,
		Options:    opts,
		Difficulty: difficulty,
		Hint:       &Hint{Message: hint, Animation: AnimationCompare},
	}
}

func equivalentQ(id string, difficulty int, target fraction.Fraction, hint string, opts ...Option) Question {
	return Question{
		ID:         id,
		Type:       TypeEquivalent,
		Text:       EquivalentPrompt(target),
		Options:    opts,
		Difficulty: difficulty,
		Hint:       &Hint{Message: hint, Animation: AnimationSplit},
	}
}

func oddOneOutQ(id string, difficulty int, hint string, opts ...Option) Question {
	return Question{
		ID:         id,
		Type:       TypeOddOneOut,
		Text:       PromptOddOneOut,
		Options:    opts,
		Difficulty: difficulty,
		Hint:       &Hint{Message: hint, Animation: AnimationCompare},
	}
}

// seedQuestions returns the built-in catalog, ten questions per tier.
func seedQuestions() []Question {
	const (
		c = VisualCircle
		r = VisualRectangle
		l = VisualLiquid
	)
	return []Question{
		// Easy: compare only.
		compareQ("easy_1", 1, "ケーキを見比べてみてください。どちらが大きいでしょうか。", opt(1, 2, c, true), opt(1, 3, c, false)),
		compareQ("easy_2", 1, "チョコレートを見比べてみてください。", opt(1, 4, r, false), opt(1, 2, r, true)),
		compareQ("easy_3", 1, "ジュースの量を見比べてみてください。", opt(2, 3, l, true), opt(1, 3, l, false)),
		compareQ("easy_4", 1, "ピザを見比べてみてください。", opt(3, 4, c, true), opt(1, 4, c, false)),
		compareQ("easy_5", 1, "半分と3分の1、どちらが大きいでしょう。", opt(1, 3, r, false), opt(2, 4, r, true)),
		compareQ("easy_6", 1, "全部と4分の3、どちらが多いでしょう。", opt(2, 2, l, true), opt(3, 4, l, false)),
		compareQ("easy_7", 1, "4分の1と3分の2を比べてみましょう。", opt(1, 4, c, false), opt(2, 3, c, true)),
		compareQ("easy_8", 1, "全部と半分、どちらが大きいでしょう。", opt(3, 3, c, true), opt(2, 4, c, false)),
		compareQ("easy_9", 1, "半分と4分の1を比べてみましょう。", opt(1, 2, r, true), opt(1, 4, r, false)),
		compareQ("easy_10", 1, "3分の2と4分の3を比べてみましょう。", opt(2, 3, l, false), opt(3, 4, l, true)),

		// Normal
		equivalentQ("normal_1", 2, fraction.New(1, 2), "同じ大きさでも、切り方が違うことがあります。", opt(2, 4, r, true), opt(1, 3, r, false)),
		equivalentQ("normal_2", 2, fraction.New(2, 3), "6つに分けても、3つに分けても同じ量になることがあります。", opt(4, 6, c, true), opt(1, 2, c, false)),
		oddOneOutQ("normal_3", 2, "2つは同じ量です。1つだけ違います。", opt(1, 2, l, false), opt(2, 4, l, false), opt(1, 3, l, true)),
		compareQ("normal_4", 2, "6つに分けた中で、3つと4つを比べてみましょう。", opt(3, 6, r, false), opt(4, 6, r, true)),
		equivalentQ("normal_5", 2, fraction.New(3, 4), "8つに分けても4つに分けても同じ大きさになります。", opt(6, 8, c, true), opt(2, 3, c, false)),
		oddOneOutQ("normal_6", 2, "3分の2と6分の4は同じ大きさです。", opt(2, 3, r, false), opt(4, 6, r, false), opt(1, 4, r, true)),
		compareQ("normal_7", 2, "8分の5と半分、どちらが多いでしょう。", opt(5, 8, l, true), opt(2, 4, l, false)),
		equivalentQ("normal_8", 2, fraction.New(1, 3), "6つに分けても3つに分けても同じになります。", opt(2, 6, c, true), opt(1, 4, c, false)),
		compareQ("normal_9", 2, "5分の2と7分の3、どちらが大きいでしょう。", opt(2, 5, l, false), opt(3, 7, l, true)),
		oddOneOutQ("normal_10", 2, "6分の3と2分の1は同じ大きさです。", opt(3, 6, c, false), opt(1, 2, c, false), opt(2, 5, c, true)),

		// Hard
		compareQ("hard_1", 3, "12分の7と半分を比べてみましょう。", opt(7, 12, c, true), opt(4, 8, c, false)),
		equivalentQ("hard_2", 3, fraction.New(5, 10), "10個の半分は5個です。", opt(1, 2, r, true), opt(3, 5, r, false)),
		oddOneOutQ("hard_3", 3, "4分の3と8分の6は同じ大きさです。", opt(3, 4, l, false), opt(6, 8, l, false), opt(2, 5, l, true)),
		compareQ("hard_4", 3, "10分の8と9分の7、どちらが大きいでしょう。", opt(8, 10, r, true), opt(7, 9, r, false)),
		equivalentQ("hard_5", 3, fraction.New(9, 12), "12を4で割ると3、9を3で割ると3です。", opt(3, 4, c, true), opt(2, 3, c, false)),
		compareQ("hard_6", 3, "どちらも全体にとても近い大きさです。", opt(11, 12, l, true), opt(9, 10, l, false)),
		oddOneOutQ("hard_7", 3, "3分の2と12分の8は同じ大きさです。", opt(2, 3, r, false), opt(8, 12, r, false), opt(3, 5, r, true)),
		equivalentQ("hard_8", 3, fraction.New(7, 14), "14を2で割ると7、7を1で割ると7です。", opt(1, 2, r, true), opt(3, 7, r, false)),
		compareQ("hard_9", 3, "9分の4と11分の5、どちらが大きいでしょう。", opt(4, 9, c, false), opt(5, 11, c, true)),
		equivalentQ("hard_10", 3, fraction.New(6, 9), "9を3で割ると3、6を3で割ると2です。", opt(2, 3, l, true), opt(3, 5, l, false)),
	}
}
