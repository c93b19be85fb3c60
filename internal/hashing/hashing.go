// Package hashing provides duplicate detection for replayed games.
package hashing

import (
	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// DuplicateDetector tracks seen games for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores signatures by final position hash
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same move sequence
	useExactMatch bool
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the hash of the final position and the team to move
	Hash uint64
	// MoveCount is the number of plies in the game
	MoveCount int
	// MovesHash is the hash of the move sequence
	MovesHash uint64
}

// NewDuplicateDetector creates a new duplicate detector. Without exactMatch
// two games are duplicates when they reach the same position after the same
// number of plies.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// Signature computes the signature of g as it stands.
func Signature(g *engine.Game) GameSignature {
	return GameSignature{
		Hash:      PositionHash(g.Board(), g.ToMove()),
		MoveCount: g.Plies(),
		MovesHash: MovesHash(g.Moves()),
	}
}

// PositionHash hashes a piece layout together with the team to move.
func PositionHash(b *engine.Board, toMove chess.Team) uint64 {
	d := xxhash.New()
	d.WriteString(b.Fingerprint()) //nolint:errcheck // Digest writes never fail
	d.WriteString(toMove.String()) //nolint:errcheck
	return d.Sum64()
}

// MovesHash hashes a move sequence.
func MovesHash(moves []chess.ResolvedMove) uint64 {
	d := xxhash.New()
	for _, rm := range moves {
		d.WriteString(rm.String()) //nolint:errcheck // Digest writes never fail
		d.WriteString(" ")         //nolint:errcheck
	}
	return d.Sum64()
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(g *engine.Game) bool {
	if g == nil {
		return false
	}

	sig := Signature(g)
	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.MoveCount != b.MoveCount {
		return false
	}
	if d.useExactMatch && a.MovesHash != b.MovesHash {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
