package types

import (
	"fmt"
)

// SourceLattice is the linear automaton over a source sentence that grammar
// spans index into. A sentence of n words has n+1 states; the word at
// position i labels the transition from state i to state i+1.
type SourceLattice struct {
	words []string
}

func NewSourceLattice(sent BasicSentence) *SourceLattice {
	return &SourceLattice{words: sent.Tokens()}
}

func (l *SourceLattice) NumStates() int {
	return len(l.words) + 1
}

// WordsInSpan returns the words covered between states start and end, empty
// for start == end. The end state is clamped to the last word so the span
// past the sentence (outside-phrase queries use NumStates) stays total.
func (l *SourceLattice) WordsInSpan(start, end int) []string {
	if start < 0 || start > end {
		panic(fmt.Sprintf("Malformed span (%d,%d)", start, end))
	}
	if end > len(l.words) {
		end = len(l.words)
	}
	if start >= end {
		return nil
	}
	return l.words[start:end:end]
}

// WordInSpan resolves a unit span to its single covered word.
func (l *SourceLattice) WordInSpan(start, end int) string {
	words := l.WordsInSpan(start, end)
	if len(words) != 1 {
		panic(fmt.Sprintf("Span (%d,%d) does not cover exactly one word", start, end))
	}
	return words[0]
}
