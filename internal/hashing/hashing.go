// Package hashing detects scripts that end in the same position.
package hashing

import (
	"github.com/lgbarn/chesscore/internal/chess"
)

// DuplicateDetector tracks seen final positions.
type DuplicateDetector struct {
	// hashTable maps Zobrist hashes to the signatures that produced them
	hashTable map[uint64][]Signature
	// useExactMatch also compares move counts
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// Signature identifies one finished script.
type Signature struct {
	// Name is the script the position came from
	Name string
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// WeakHash is a fast hash for collision checks
	WeakHash uint32
	// MoveCount is the number of committed moves
	MoveCount int
}

// NewDuplicateDetector creates a new duplicate detector.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]Signature),
		useExactMatch: exactMatch,
	}
}

// CheckAndAdd records the final position of a script. If an earlier script
// ended in the same position, its signature is returned with true.
func (d *DuplicateDetector) CheckAndAdd(name string, board *chess.Board, moves int) (Signature, bool) {
	if board == nil {
		return Signature{}, false
	}

	sig := Signature{
		Name:      name,
		Hash:      GenerateZobristHash(board),
		WeakHash:  WeakHash(board),
		MoveCount: moves,
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return existing, true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return Signature{}, false
}

func (d *DuplicateDetector) signaturesMatch(a, b Signature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.MoveCount != b.MoveCount {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}
