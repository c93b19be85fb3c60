package chess

// Piece is a piece on the board. The kind set is closed; behaviour that
// depends on the kind switches on Kind.
type Piece struct {
	Kind PieceKind

	// Forward is the rank direction a pawn advances in (+1 or -1).
	// It is zero for every other kind.
	Forward int

	// Moved is set once the piece has moved. It removes the pawn's
	// double step and the castling eligibility of kings and rooks.
	Moved bool
}

// NewPiece creates an unmoved piece of the given kind for a team.
func NewPiece(kind PieceKind, team Team) Piece {
	p := Piece{Kind: kind}
	if kind == Pawn {
		p.Forward = team.Forward()
	}
	return p
}

// NewPawn creates an unmoved pawn advancing in the given rank direction.
func NewPawn(forward int) Piece {
	return Piece{Kind: Pawn, Forward: forward}
}

// IsNone returns true for the zero Piece.
func (p Piece) IsNone() bool {
	return p.Kind == NoKind
}

// WithMoved returns a copy of the piece marked as moved.
func (p Piece) WithMoved() Piece {
	p.Moved = true
	return p
}

// CanReach reports whether the geometric shape of m is one this piece can
// produce. Board occupancy, check and turn order are not considered.
func (p Piece) CanReach(m Move) bool {
	if m.IsNull() {
		return false
	}
	d := m.To.Sub(m.From)
	df, dr := abs(d.File), abs(d.Rank)

	switch p.Kind {
	case Pawn:
		if d.Rank == p.Forward {
			return df <= 1
		}
		return d.Rank == 2*p.Forward && df == 0 && !p.Moved

	case Knight:
		return df+dr == 3 && df != 0 && dr != 0

	case Bishop:
		return df == dr

	case Rook:
		return df == 0 || dr == 0

	case Queen:
		return df == dr || df == 0 || dr == 0

	case King:
		return df <= 1 && dr <= 1
	}

	return false
}
