package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvidchess/corvid/board"
)

func move(from, to board.Bitboard) board.Move {
	return board.Move{From: from, To: to, Piece: board.Pawn}
}

func TestKillerTable_StoreAndPriority(t *testing.T) {
	k := newKillerTable()
	m1 := move(1, 2)
	m2 := move(3, 4)

	assert.Equal(t, 0, k.priority(5, m1))

	k.store(5, m1)
	assert.Equal(t, KillerPriority+KillerSize, k.priority(5, m1))

	k.store(5, m2)
	// m2 is now most recent (slot 0), m1 shifted to slot 1.
	assert.Equal(t, KillerPriority+KillerSize, k.priority(5, m2))
	assert.Equal(t, KillerPriority+KillerSize-1, k.priority(5, m1))
}

func TestKillerTable_CapsAtKillerSize(t *testing.T) {
	k := newKillerTable()
	for i := 0; i < KillerSize+3; i++ {
		k.store(0, move(board.Bitboard(1<<uint(i)), board.Bitboard(1<<uint(i+1))))
	}
	assert.Equal(t, KillerSize, k.count[0])
}

func TestKillerTable_DoesNotDuplicateExistingEntry(t *testing.T) {
	k := newKillerTable()
	m1 := move(1, 2)
	k.store(0, m1)
	k.store(0, m1)
	assert.Equal(t, 1, k.count[0])
}

func TestKillerTable_DifferentPliesIndependent(t *testing.T) {
	k := newKillerTable()
	m1 := move(1, 2)
	k.store(0, m1)
	assert.Equal(t, 0, k.priority(1, m1))
}

func TestKillerTable_Clear(t *testing.T) {
	k := newKillerTable()
	k.store(0, move(1, 2))
	k.clear()
	assert.Equal(t, 0, k.count[0])
}

func TestKillerTable_OutOfRangePlyIsNoop(t *testing.T) {
	k := newKillerTable()
	k.store(MaxDepth+5, move(1, 2))
	assert.Equal(t, 0, k.priority(MaxDepth+5, move(1, 2)))
}
