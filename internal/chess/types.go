// Package chess provides core chess types and operations.
package chess

// Team identifies the owner of a piece or the winner of a game.
type Team int

const (
	// NoTeam means "no such team" for lookups and "no winner yet" for outcomes.
	NoTeam Team = iota - 1
	White
	Black
	// BothTeams is the outcome of a drawn game.
	BothTeams
)

// String returns the string representation of a team.
func (t Team) String() string {
	switch t {
	case White:
		return "White"
	case Black:
		return "Black"
	case BothTeams:
		return "Both"
	default:
		return "None"
	}
}

// Opponent returns the other playing team. NoTeam and BothTeams have no opponent.
func (t Team) Opponent() Team {
	switch t {
	case White:
		return Black
	case Black:
		return White
	default:
		return NoTeam
	}
}

// IsPlayer reports whether t is White or Black.
func (t Team) IsPlayer() bool {
	return t == White || t == Black
}

// Forward returns the rank direction pawns of the team advance in.
func (t Team) Forward() int {
	if t == Black {
		return -1
	}
	return 1
}

// HomeRank returns the rank of the team's back row.
func (t Team) HomeRank() int {
	if t == Black {
		return LastRank
	}
	return FirstRank
}

// PieceKind classifies a piece.
type PieceKind int

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the string representation of a piece kind.
func (k PieceKind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece kind (uppercase).
func (k PieceKind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a piece kind.
func KindFromLetter(c byte) PieceKind {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	default:
		return NoKind
	}
}

// IsPromotionTarget reports whether a pawn may promote to k.
func (k PieceKind) IsPromotionTarget() bool {
	switch k {
	case Knight, Bishop, Rook, Queen:
		return true
	default:
		return false
	}
}

// CastleSide tells which rook a castle is played with.
type CastleSide int

const (
	NoCastle CastleSide = iota
	Kingside
	Queenside
)

// String returns the castling notation for the side.
func (s CastleSide) String() string {
	switch s {
	case Kingside:
		return "O-O"
	case Queenside:
		return "O-O-O"
	default:
		return ""
	}
}

// Constants for board dimensions.
const (
	BoardSize = 8
	FirstRank = 0
	LastRank  = BoardSize - 1
	FirstFile = 0
	LastFile  = BoardSize - 1
)
