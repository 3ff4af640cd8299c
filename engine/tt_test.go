package engine

import (
	"testing"

	"github.com/kalinauskas/corvid/board"
	"github.com/stretchr/testify/assert"
)

func TestTTStoreProbeRoundTrip(t *testing.T) {
	tt := NewTranspositionTable(1)
	m := board.Move{From: 12, To: 28, Piece: board.Pawn}
	tt.Store(0xdeadbeefcafef00d, 5, 123, BoundExact, m)

	entry, ok := tt.Probe(0xdeadbeefcafef00d)
	assert.True(t, ok)
	assert.Equal(t, Score(123), entry.Score)
	assert.Equal(t, BoundExact, entry.Bound)
	assert.Equal(t, m, entry.BestMove)
}

func TestTTProbeMissOnKeyMismatch(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(1, 5, 100, BoundExact, board.Move{})

	// A different key that happens to collide in the same slot (mask is
	// derived from the low bits; flipping only high bits keeps the index
	// but changes the verification tag) must never return a hit.
	_, ok := tt.Probe(1 | (1 << 40))
	assert.False(t, ok)
}

func TestTTReplacementPrefersDeeperSameGeneration(t *testing.T) {
	tt := NewTranspositionTable(1)
	key := uint64(77)
	tt.Store(key, 8, 50, BoundExact, board.Move{})
	tt.Store(key, 3, 999, BoundExact, board.Move{}) // shallower: must not replace

	entry, ok := tt.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, Score(50), entry.Score)
	assert.EqualValues(t, 8, entry.Depth)
}

func TestTTNewGenerationAllowsOverwriteOfStaleEntry(t *testing.T) {
	tt := NewTranspositionTable(1)
	key := uint64(77)
	tt.Store(key, 8, 50, BoundExact, board.Move{})
	tt.NewGeneration()
	tt.Store(key, 1, 999, BoundExact, board.Move{})

	entry, ok := tt.Probe(key)
	assert.True(t, ok)
	assert.Equal(t, Score(999), entry.Score)
}

func TestTTClearRemovesAllEntries(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(1, 1, 1, BoundExact, board.Move{})
	tt.Clear()
	_, ok := tt.Probe(1)
	assert.False(t, ok)
}
