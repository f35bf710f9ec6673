package engine

import (
	"unsafe"

	"github.com/corvidchess/corvid/board"
)

// TTFlag indicates what type of bound the score represents.
type TTFlag uint8

const (
	TTFlagNone  TTFlag = 0
	TTFlagExact TTFlag = 1
	TTFlagLower TTFlag = 2
	TTFlagUpper TTFlag = 3
)

// TTEntry is a single transposition table slot: the position's full
// Zobrist hash (for verification against collisions within the bucket),
// the best move found, its score, the depth it was searched to, and the
// bound kind (§3/§4.5).
type TTEntry struct {
	Hash     uint64
	BestMove board.Move
	Score    int
	Depth    int
	Flag     TTFlag
}

// TranspositionTable is a bounded hash map with one TTEntry per bucket
// (§4.5). The bucket is chosen by the low bits of the Zobrist hash (as many
// as the power-of-two size needs), not by its upper 32 bits. With one slot
// per bucket,
// "evict by uniform random choice of an existing slot" degenerates to
// simply overwriting that slot — there is exactly one existing entry to
// choose among.
type TranspositionTable struct {
	entries []TTEntry
	size    uint64
	mask    uint64
}

// DefaultHashMB is the default transposition table size in megabytes.
const DefaultHashMB = 64

const ttEntrySize = uint64(unsafe.Sizeof(TTEntry{}))

// NewTranspositionTable creates a transposition table sized to the nearest
// power-of-two entry count that fits in sizeMB megabytes.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	if sizeMB <= 0 {
		sizeMB = DefaultHashMB
	}

	numEntries := (uint64(sizeMB) * 1024 * 1024) / ttEntrySize

	size := uint64(1)
	for size*2 <= numEntries {
		size *= 2
	}
	if size == 0 {
		size = 1
	}

	return &TranspositionTable{
		entries: make([]TTEntry, size),
		size:    size,
		mask:    size - 1,
	}
}

func (tt *TranspositionTable) index(hash uint64) uint64 {
	return hash & tt.mask
}

func (tt *TranspositionTable) verify(hash uint64, entry *TTEntry) bool {
	return entry.Hash == hash
}

// Probe looks up hash's bucket, returning the entry and true only if the
// stored full hash actually matches (guards against two different
// positions sharing a bucket index).
func (tt *TranspositionTable) Probe(hash uint64) (TTEntry, bool) {
	entry := &tt.entries[tt.index(hash)]
	if entry.Flag == TTFlagNone || !tt.verify(hash, entry) {
		return TTEntry{}, false
	}
	return *entry, true
}

// Store writes an entry, evicting whatever occupied the bucket (§4.5).
// Callers must never store a result from an aborted (completed=false)
// search — that invariant is enforced by the search driver, not here.
func (tt *TranspositionTable) Store(hash uint64, score, depth int, flag TTFlag, bestMove board.Move) {
	tt.entries[tt.index(hash)] = TTEntry{
		Hash:     hash,
		Score:    score,
		Depth:    depth,
		Flag:     flag,
		BestMove: bestMove,
	}
}

// Clear resets every entry, used on restart.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
}

// Size returns the number of buckets.
func (tt *TranspositionTable) Size() uint64 { return tt.size }

// SizeMB returns the approximate size in megabytes.
func (tt *TranspositionTable) SizeMB() int {
	return int((tt.size * ttEntrySize) / (1024 * 1024))
}

// Hashfull returns the permille of entries in use, sampling the first 1000
// for speed, matching the UCI `info hashfull` convention.
func (tt *TranspositionTable) Hashfull() int {
	sample := uint64(1000)
	if sample > tt.size {
		sample = tt.size
	}
	if sample == 0 {
		return 0
	}

	used := 0
	for i := uint64(0); i < sample; i++ {
		if tt.entries[i].Flag != TTFlagNone {
			used++
		}
	}
	return (used * 1000) / int(sample)
}
