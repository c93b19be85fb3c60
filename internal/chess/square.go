package chess

import "fmt"

// Square is a board coordinate. File 0 is the a-file, rank 0 is the first rank.
type Square struct {
	File int
	Rank int
}

// NoSquare is a coordinate that never lies on the board.
var NoSquare = Square{File: -1, Rank: -1}

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square{File: file, Rank: rank}
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	sq := Square{File: int(s[0]) - 'a', Rank: int(s[1]) - '1'}
	if !sq.InBounds() {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}
	return sq, nil
}

// MustSquare is ParseSquare for literals known to be valid.
func MustSquare(s string) Square {
	sq, err := ParseSquare(s)
	if err != nil {
		panic(err)
	}
	return sq
}

// InBounds returns true if the square lies on the 8x8 board.
func (sq Square) InBounds() bool {
	return sq.File >= FirstFile && sq.File <= LastFile &&
		sq.Rank >= FirstRank && sq.Rank <= LastRank
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if !sq.InBounds() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File, '1'+sq.Rank)
}

// Add returns the square offset by d.
func (sq Square) Add(d Square) Square {
	return Square{File: sq.File + d.File, Rank: sq.Rank + d.Rank}
}

// Sub returns the offset from other to sq.
func (sq Square) Sub(other Square) Square {
	return Square{File: sq.File - other.File, Rank: sq.Rank - other.Rank}
}

// Step normalizes an offset to a unit step: each component becomes -1, 0 or 1.
func (sq Square) Step() Square {
	return Square{File: sign(sq.File), Rank: sign(sq.Rank)}
}

// AllSquares returns every board square, rank by rank from a1 to h8.
func AllSquares() []Square {
	squares := make([]Square, 0, BoardSize*BoardSize)
	for rank := FirstRank; rank <= LastRank; rank++ {
		for file := FirstFile; file <= LastFile; file++ {
			squares = append(squares, Square{File: file, Rank: rank})
		}
	}
	return squares
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
