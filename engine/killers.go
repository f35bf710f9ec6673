package engine

import "github.com/corvidchess/corvid/board"

// KillerSize is the number of quiet moves remembered per ply (§3).
const KillerSize = 2

// KillerPriority is the move-ordering score assigned to a killer match at
// slot i (0 = most recent), per §4.7: 1,000,000 + (KILLER_SIZE - i).
const KillerPriority = 1_000_000

// killerTable is a per-ply small ring of recent moves that produced a
// β-cutoff or raised α at that ply (§3, §4.7); captures are not excluded.
// It is purely a move-ordering hint, never consulted for correctness, and
// is cleared on restart (never reused across games).
type killerTable struct {
	moves [MaxDepth][KillerSize]board.Move
	count [MaxDepth]int
}

func newKillerTable() *killerTable {
	return &killerTable{}
}

func (k *killerTable) clear() {
	*k = killerTable{}
}

// slotOf returns the ring index of m at ply if it is a killer there, and
// whether it was found.
func (k *killerTable) slotOf(ply int, m board.Move) (int, bool) {
	if ply < 0 || ply >= MaxDepth {
		return 0, false
	}
	for i := 0; i < k.count[ply]; i++ {
		if k.moves[ply][i] == m {
			return i, true
		}
	}
	return 0, false
}

// store inserts m at slot 0 of ply's ring, rotating the rest right and
// capping at KillerSize, per §4.7.
func (k *killerTable) store(ply int, m board.Move) {
	if ply < 0 || ply >= MaxDepth {
		return
	}
	if _, found := k.slotOf(ply, m); found {
		return
	}
	for i := KillerSize - 1; i > 0; i-- {
		k.moves[ply][i] = k.moves[ply][i-1]
	}
	k.moves[ply][0] = m
	if k.count[ply] < KillerSize {
		k.count[ply]++
	}
}

// priority returns the move-ordering priority of m at ply, per §4.7.
func (k *killerTable) priority(ply int, m board.Move) int {
	if i, found := k.slotOf(ply, m); found {
		return KillerPriority + (KillerSize - i)
	}
	return 0
}
