package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidchess/corvid/board"
)

func TestTranspositionTable_StoreAndProbe(t *testing.T) {
	tt := NewTranspositionTable(1)
	hash := uint64(0x1122334455667788)
	mv := board.Move{From: 1, To: 2, Piece: board.Knight}

	_, ok := tt.Probe(hash)
	assert.False(t, ok)

	tt.Store(hash, 42, 5, TTFlagExact, mv)
	entry, ok := tt.Probe(hash)
	require.True(t, ok)
	assert.Equal(t, 42, entry.Score)
	assert.Equal(t, 5, entry.Depth)
	assert.Equal(t, TTFlagExact, entry.Flag)
	assert.Equal(t, mv, entry.BestMove)
}

func TestTranspositionTable_BucketCollisionRejected(t *testing.T) {
	tt := NewTranspositionTable(1)
	// Craft two hashes with the same low bits (same bucket) but different
	// upper 32 bits (different full hash); probing with the second must
	// not return the first's entry.
	hashA := uint64(0x00000000_00000001)
	hashB := uint64(0x00000001_00000001)

	tt.Store(hashA, 10, 1, TTFlagExact, board.Move{})
	_, ok := tt.Probe(hashB)
	assert.False(t, ok)
}

func TestTranspositionTable_ClearRemovesEntries(t *testing.T) {
	tt := NewTranspositionTable(1)
	tt.Store(1, 1, 1, TTFlagExact, board.Move{})
	tt.Clear()
	_, ok := tt.Probe(1)
	assert.False(t, ok)
}

func TestTranspositionTable_SizeIsPowerOfTwo(t *testing.T) {
	tt := NewTranspositionTable(1)
	size := tt.Size()
	assert.Equal(t, size&(size-1), uint64(0))
}

func TestTranspositionTable_Hashfull(t *testing.T) {
	tt := NewTranspositionTable(1)
	assert.Equal(t, 0, tt.Hashfull())

	tt.Store(1, 1, 1, TTFlagExact, board.Move{})
	assert.Greater(t, tt.Hashfull(), 0)
}

func TestTranspositionTable_DefaultsOnNonPositiveSize(t *testing.T) {
	tt := NewTranspositionTable(0)
	assert.Greater(t, tt.SizeMB(), 0)
}
