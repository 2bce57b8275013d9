package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatticeStates(t *testing.T) {
	lattice := NewSourceLattice(BasicSentence{"the", "cat", "sat"})
	assert.Equal(t, 4, lattice.NumStates())
}

func TestWordsInSpan(t *testing.T) {
	lattice := NewSourceLattice(BasicSentence{"the", "cat", "sat"})
	assert.Equal(t, []string{"the"}, lattice.WordsInSpan(0, 1))
	assert.Equal(t, []string{"cat", "sat"}, lattice.WordsInSpan(1, 3))
	assert.Empty(t, lattice.WordsInSpan(2, 2))
	// the end state clamps so outside-phrase queries with NumStates are total
	assert.Equal(t, []string{"sat"}, lattice.WordsInSpan(2, lattice.NumStates()))
	assert.Empty(t, lattice.WordsInSpan(3, lattice.NumStates()))
}

func TestWordsInSpanMalformed(t *testing.T) {
	lattice := NewSourceLattice(BasicSentence{"the", "cat"})
	require.Panics(t, func() {
		lattice.WordsInSpan(2, 1)
	})
}

func TestWordInSpan(t *testing.T) {
	lattice := NewSourceLattice(BasicSentence{"the", "cat"})
	assert.Equal(t, "cat", lattice.WordInSpan(1, 2))
	require.Panics(t, func() {
		lattice.WordInSpan(0, 2)
	})
	require.Panics(t, func() {
		lattice.WordInSpan(1, 1)
	})
}
