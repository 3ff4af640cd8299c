package engine

import "github.com/kalinauskas/corvid/board"

// Bound indicates what relationship a stored score has to the true
// minimax value of its subtree.
type Bound uint8

const (
	BoundNone  Bound = 0
	BoundExact Bound = 1 // PV node: the stored score is the true value.
	BoundLower Bound = 2 // Fail-high: the true value is >= stored score.
	BoundUpper Bound = 3 // Fail-low: the true value is <= stored score.
)

// TTEntry is a single transposition table slot. Score is already
// ply-adjusted for mate distances (score.go) before it is stored.
type TTEntry struct {
	Key      uint32 // upper 32 bits of the Zobrist key, for verification
	BestMove board.Move
	Score    Score
	Depth    int8
	Bound    Bound
	Age      uint8
}

// TranspositionTable is a fixed-capacity, single-owner hash table of
// search results keyed by Zobrist hash, indexed by key & mask. It
// persists across moves within a game (the façade owns it); NewGame
// bumps the generation counter instead of clearing, so stale entries
// age out under the replacement policy rather than walking the whole
// table.
type TranspositionTable struct {
	entries []TTEntry
	mask    uint64
	age     uint8
}

const ttEntrySize = 48 // bytes per TTEntry on a 64-bit platform

// NewTranspositionTable allocates a table sized to the nearest power
// of two of sizeMB megabytes' worth of entries.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	if sizeMB <= 0 {
		sizeMB = 1
	}
	want := uint64(sizeMB) * 1024 * 1024 / ttEntrySize
	size := uint64(1)
	for size*2 <= want {
		size *= 2
	}
	if size*2-want < want-size {
		size *= 2
	}
	if size == 0 {
		size = 1
	}
	return &TranspositionTable{
		entries: make([]TTEntry, size),
		mask:    size - 1,
	}
}

func (tt *TranspositionTable) index(key uint64) uint64 {
	return key & tt.mask
}

// Probe returns the entry for key if its key matches, and whether it
// was found. A mismatched key (a collision in the slot) must never be
// mistaken for a hit.
func (tt *TranspositionTable) Probe(key uint64) (TTEntry, bool) {
	e := &tt.entries[tt.index(key)]
	if e.Bound == BoundNone {
		return TTEntry{}, false
	}
	if e.Key != uint32(key>>32) {
		return TTEntry{}, false
	}
	return *e, true
}

// Store writes an entry for key under the replacement policy: always
// replace an empty slot or a slot holding a different position; for a
// matching key, replace only if the new entry searched at least as
// deep, or the existing entry is from an earlier generation.
func (tt *TranspositionTable) Store(key uint64, depth int, score Score, bound Bound, best board.Move) {
	idx := tt.index(key)
	e := &tt.entries[idx]
	newKey := uint32(key >> 32)

	if e.Bound != BoundNone && e.Key == newKey && e.Depth > int8(depth) && e.Age == tt.age {
		return
	}

	*e = TTEntry{
		Key:      newKey,
		BestMove: best,
		Score:    score,
		Depth:    int8(depth),
		Bound:    bound,
		Age:      tt.age,
	}
}

// NewGeneration marks existing entries as aged, so a fresh search
// naturally overwrites them before equal-or-deeper same-generation
// entries, without the cost of clearing the whole table.
func (tt *TranspositionTable) NewGeneration() {
	tt.age++
}

// Clear discards all entries and resets the generation counter.
func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = TTEntry{}
	}
	tt.age = 0
}

// Hashfull estimates, in permille, how full the table is, by sampling
// its first entries — the UCI `info hashfull` field.
func (tt *TranspositionTable) Hashfull() int {
	sample := uint64(1000)
	if sample > uint64(len(tt.entries)) {
		sample = uint64(len(tt.entries))
	}
	if sample == 0 {
		return 0
	}
	used := 0
	for i := uint64(0); i < sample; i++ {
		if tt.entries[i].Bound != BoundNone && tt.entries[i].Age == tt.age {
			used++
		}
	}
	return int(used * 1000 / int(sample))
}
