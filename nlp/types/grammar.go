package types

import (
	"fmt"
	"strings"
)

// Nonterminal labels of the inversion-transduction grammar. X spans
// concatenate and reorder, D deletes, I inserts, T translates; the bare
// start symbol ties the root X span to the grammar.
const (
	SpanLabel        Nonterminal = "X"
	DeletionLabel    Nonterminal = "D"
	InsertionLabel   Nonterminal = "I"
	TranslationLabel Nonterminal = "T"
	StartLabel       Nonterminal = "S"
)

// Epsilon marks the null side of a deletion or insertion event in the
// alignment table.
const Epsilon Terminal = "-EPS-"

// Item is a grammar symbol occurrence on either side of a rule: a Terminal
// word, a bare Nonterminal (the start symbol), or a source-indexed Span.
type Item interface {
	fmt.Stringer
}

type Terminal string

func (t Terminal) String() string {
	return "'" + string(t) + "'"
}

type Nonterminal string

func (n Nonterminal) String() string {
	return "[" + string(n) + "]"
}

// Span is a nonterminal instance covering source lattice states
// [Start, End). Invariant: Start <= End; unit spans have End == Start+1.
type Span struct {
	Label      Nonterminal
	Start, End int
}

func (s Span) String() string {
	return fmt.Sprintf("[%s,%d,%d]", string(s.Label), s.Start, s.End)
}

var (
	_ Item = Terminal("")
	_ Item = Nonterminal("")
	_ Item = Span{}
)

// Rule is a hyperedge of the parse forest: LHS is a Span or the bare start
// Nonterminal, RHS holds one or two items.
type Rule struct {
	LHS Item
	RHS []Item
}

func (r *Rule) String() string {
	rhs := make([]string, len(r.RHS))
	for i, item := range r.RHS {
		rhs[i] = item.String()
	}
	return r.LHS.String() + " -> " + strings.Join(rhs, " ")
}

// Forest is the collection of all rule instances consistent with parsing
// one source sentence.
type Forest []*Rule

// Derivation is a single derivation tying a forest to a concrete target
// sentence. By convention its last rule is the designated terminal rule.
type Derivation []*Rule

func (d Derivation) TerminalRule() *Rule {
	if len(d) == 0 {
		return nil
	}
	return d[len(d)-1]
}
