package featurize

import (
	nlp "itgfeat/nlp/types"
)

// RuleClass is the closed set of rule categories the featurizer dispatches
// on. ClassNone names the structurally possible but unreached grammar
// configuration (a non-start, non-X lhs span over a single nonterminal rhs).
type RuleClass int

const (
	ClassNone RuleClass = iota
	ClassBinary
	ClassTerminal
	ClassDeletion
	ClassInsertion
	ClassTranslation
	ClassStart
	ClassUpgrade
)

var classNames = map[RuleClass]string{
	ClassNone:        "none",
	ClassBinary:      "binary",
	ClassTerminal:    "terminal",
	ClassDeletion:    "deletion",
	ClassInsertion:   "insertion",
	ClassTranslation: "translation",
	ClassStart:       "start",
	ClassUpgrade:     "upgrade",
}

func (c RuleClass) String() string {
	return classNames[c]
}

// lhsLabel resolves a rule's left-hand symbol to its nonterminal label and
// reports whether the symbol is a source-indexed span.
func lhsLabel(item nlp.Item) (nlp.Nonterminal, bool) {
	switch lhs := item.(type) {
	case nlp.Span:
		return lhs.Label, true
	case nlp.Nonterminal:
		return lhs, false
	}
	panic("Rule lhs is neither a span nor a nonterminal")
}

// Classify assigns a rule to exactly one category. The checks are ordered
// by priority: binary shape first, then terminal-ness, then start vs.
// upgrade by label identity; a rule may structurally satisfy more than one
// loose description, so the order is load-bearing.
func Classify(rule *nlp.Rule) RuleClass {
	if len(rule.RHS) == 2 {
		return ClassBinary
	}
	label, isSpan := lhsLabel(rule.LHS)
	if _, isTerminal := rule.RHS[0].(nlp.Terminal); isTerminal {
		switch label {
		case nlp.DeletionLabel:
			return ClassDeletion
		case nlp.InsertionLabel:
			return ClassInsertion
		case nlp.TranslationLabel:
			return ClassTranslation
		}
		return ClassTerminal
	}
	if label != nlp.SpanLabel {
		if !isSpan {
			return ClassStart
		}
		return ClassNone
	}
	return ClassUpgrade
}
