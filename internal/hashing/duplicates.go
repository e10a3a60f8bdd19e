package hashing

import "sync"

// GameSignature identifies the final position of a replayed match.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Plies is the number of moves applied
	Plies int
	// Index is the position of the game in its input
	Index int
}

// DuplicateDetector tracks final positions to find games that end identically.
// It is safe for concurrent use.
type DuplicateDetector struct {
	mu sync.Mutex
	// seen maps a hash to the first game that reached it
	seen map[uint64]GameSignature
	// exactMatch also requires equal ply counts
	exactMatch     bool
	duplicateCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		seen:       make(map[uint64]GameSignature),
		exactMatch: exactMatch,
	}
}

// CheckAndAdd records sig and reports the earlier game it duplicates, if any.
func (d *DuplicateDetector) CheckAndAdd(sig GameSignature) (GameSignature, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if first, ok := d.seen[sig.Hash]; ok {
		if !d.exactMatch || first.Plies == sig.Plies {
			d.duplicateCount++
			return first, true
		}
		return GameSignature{}, false
	}
	d.seen[sig.Hash] = sig
	return GameSignature{}, false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.duplicateCount
}

// UniqueCount returns the number of distinct final positions.
func (d *DuplicateDetector) UniqueCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
