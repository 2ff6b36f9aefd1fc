package engine

import "github.com/kespar/branchmate/board"

// NodeKind classifies how a stored score bounds the true value of a
// position, following the usual alpha-beta convention.
type NodeKind uint8

const (
	NodeUnknown NodeKind = iota
	NodeExact
	NodeLowerBound
	NodeUpperBound
)

// Entry is a transposition-table record: the search depth it was
// computed at, the bound it represents, and the move that produced it.
type Entry struct {
	Key      uint64
	Depth    int
	Value    float64
	Kind     NodeKind
	BestMove board.Move
}

// TranspositionTable is a flat, always-replace cache from Zobrist key to
// search result. An Engine keeps one table across its searches; it is
// read and written only by the worker goroutine running the current
// search (and cleared by Engine.NewGame between searches) — no internal
// locking.
type TranspositionTable struct {
	entries map[uint64]Entry

	hits, misses, writes int
}

// NewTranspositionTable returns an empty table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{entries: make(map[uint64]Entry)}
}

// Probe returns the entry stored for key, if any.
func (t *TranspositionTable) Probe(key uint64) (Entry, bool) {
	e, ok := t.entries[key]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return e, ok
}

// Store unconditionally replaces whatever was stored for key.
func (t *TranspositionTable) Store(key uint64, value float64, kind NodeKind, depth int, best board.Move) {
	t.writes++
	t.entries[key] = Entry{Key: key, Depth: depth, Value: value, Kind: kind, BestMove: best}
}

// Clear drops every entry.
func (t *TranspositionTable) Clear() {
	t.entries = make(map[uint64]Entry)
	t.hits, t.misses, t.writes = 0, 0, 0
}

// Stats reports hit/miss/write counters accumulated since the last
// Clear — a debug-only accessor, not consulted by search logic.
func (t *TranspositionTable) Stats() (hits, misses, writes int) {
	return t.hits, t.misses, t.writes
}
