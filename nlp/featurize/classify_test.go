package featurize

import (
	nlp "itgfeat/nlp/types"

	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		rule     *nlp.Rule
		expected RuleClass
	}{
		{
			"binary concatenation",
			&nlp.Rule{
				LHS: nlp.Span{Label: nlp.SpanLabel, Start: 0, End: 2},
				RHS: []nlp.Item{
					nlp.Span{Label: nlp.SpanLabel, Start: 0, End: 1},
					nlp.Span{Label: nlp.SpanLabel, Start: 1, End: 2},
				},
			},
			ClassBinary,
		},
		{
			"binary recursive deletion",
			&nlp.Rule{
				LHS: nlp.Span{Label: nlp.DeletionLabel, Start: 0, End: 1},
				RHS: []nlp.Item{
					nlp.Span{Label: nlp.DeletionLabel, Start: 0, End: 1},
					nlp.Span{Label: nlp.InsertionLabel, Start: 1, End: 1},
				},
			},
			ClassBinary,
		},
		{
			"terminal deletion",
			&nlp.Rule{
				LHS: nlp.Span{Label: nlp.DeletionLabel, Start: 0, End: 1},
				RHS: []nlp.Item{nlp.Terminal("the")},
			},
			ClassDeletion,
		},
		{
			"terminal insertion",
			&nlp.Rule{
				LHS: nlp.Span{Label: nlp.InsertionLabel, Start: 1, End: 1},
				RHS: []nlp.Item{nlp.Terminal("le")},
			},
			ClassInsertion,
		},
		{
			"terminal translation",
			&nlp.Rule{
				LHS: nlp.Span{Label: nlp.TranslationLabel, Start: 0, End: 1},
				RHS: []nlp.Item{nlp.Terminal("le")},
			},
			ClassTranslation,
		},
		{
			"terminal under generic label",
			&nlp.Rule{
				LHS: nlp.Span{Label: nlp.SpanLabel, Start: 0, End: 1},
				RHS: []nlp.Item{nlp.Terminal("the")},
			},
			ClassTerminal,
		},
		{
			"start production",
			&nlp.Rule{
				LHS: nlp.StartLabel,
				RHS: []nlp.Item{nlp.Span{Label: nlp.SpanLabel, Start: 0, End: 2}},
			},
			ClassStart,
		},
		{
			"upgrade",
			&nlp.Rule{
				LHS: nlp.Span{Label: nlp.SpanLabel, Start: 0, End: 1},
				RHS: []nlp.Item{nlp.Span{Label: nlp.TranslationLabel, Start: 0, End: 1}},
			},
			ClassUpgrade,
		},
		{
			"unreached configuration",
			&nlp.Rule{
				LHS: nlp.Span{Label: nlp.DeletionLabel, Start: 0, End: 1},
				RHS: []nlp.Item{nlp.Span{Label: nlp.SpanLabel, Start: 0, End: 1}},
			},
			ClassNone,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, Classify(test.rule))
		})
	}
}

func TestClassifyBinaryShapeDominates(t *testing.T) {
	// A two-item rhs is binary even when its items would otherwise match
	// the terminal branch.
	rule := &nlp.Rule{
		LHS: nlp.Span{Label: nlp.TranslationLabel, Start: 0, End: 1},
		RHS: []nlp.Item{nlp.Terminal("le"), nlp.Terminal("chat")},
	}
	assert.Equal(t, ClassBinary, Classify(rule))
}
