package chess

import "strings"

// Move describes a move by its origin and destination squares.
type Move struct {
	From Square
	To   Square

	// The piece a pawn promotes to (NoKind if not a promotion).
	Promotion PieceKind
}

// NewMove creates a move between two squares.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// IsNull returns true if the move does not change squares.
func (m Move) IsNull() bool {
	return m.From == m.To
}

// String returns the coordinate form of the move (e.g., "e7e8q").
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoKind {
		s += strings.ToLower(string(m.Promotion.Letter()))
	}
	return s
}

// MoveAttributes are the properties the resolver derives for a move.
type MoveAttributes struct {
	Captures  bool
	Checks    bool
	Promotes  bool
	Castles   bool
	Side      CastleSide
	EnPassant bool
}

// ResolvedMove is a fully specified move together with its validity.
type ResolvedMove struct {
	Valid bool
	Team  Team
	Kind  PieceKind
	Move  Move
	Attrs MoveAttributes
}

// Same reports whether two resolved moves are the same move: they agree on
// team, origin, destination and piece kind. Attributes and the promotion
// target are derived during resolution and do not take part.
func (r ResolvedMove) Same(other ResolvedMove) bool {
	return r.Team == other.Team &&
		r.Kind == other.Kind &&
		r.Move.From == other.Move.From &&
		r.Move.To == other.Move.To
}

// IsCapture returns true if this move is a capture.
func (r ResolvedMove) IsCapture() bool {
	return r.Attrs.Captures
}

// IsCastle returns true if this move is a castling move.
func (r ResolvedMove) IsCastle() bool {
	return r.Attrs.Castles
}

// String returns the long algebraic form of the move (e.g., "Ng1-f3",
// "e7xd8=Q", "O-O"). Invalid moves render with a leading '?'.
func (r ResolvedMove) String() string {
	var sb strings.Builder
	if !r.Valid {
		sb.WriteByte('?')
	}
	if r.Attrs.Castles {
		sb.WriteString(r.Attrs.Side.String())
	} else {
		if r.Kind != Pawn && r.Kind != NoKind {
			sb.WriteByte(r.Kind.Letter())
		}
		sb.WriteString(r.Move.From.String())
		if r.Attrs.Captures {
			sb.WriteByte('x')
		} else {
			sb.WriteByte('-')
		}
		sb.WriteString(r.Move.To.String())
		if r.Move.Promotion != NoKind {
			sb.WriteByte('=')
			sb.WriteByte(r.Move.Promotion.Letter())
		}
	}
	if r.Attrs.Checks {
		sb.WriteByte('+')
	}
	return sb.String()
}

// MoveRequest is a partially specified move, as read from move notation.
type MoveRequest struct {
	// Kind of the moving piece; NoKind accepts any.
	Kind PieceKind

	// Destination square. Unused for castle requests.
	To Square

	// Origin disambiguation; -1 when unspecified.
	FromFile int
	FromRank int

	Promotion PieceKind

	// Castle is set for O-O and O-O-O requests.
	Castle CastleSide

	// Text is the notation the request was read from.
	Text string
}

// NewMoveRequest returns a request for any piece moving to sq.
func NewMoveRequest(to Square) MoveRequest {
	return MoveRequest{To: to, FromFile: -1, FromRank: -1}
}

// HasOrigin returns true if both origin coordinates are given.
func (r MoveRequest) HasOrigin() bool {
	return r.FromFile >= 0 && r.FromRank >= 0
}

// Matches reports whether sq satisfies the request's origin disambiguation.
func (r MoveRequest) Matches(sq Square) bool {
	if r.FromFile >= 0 && sq.File != r.FromFile {
		return false
	}
	if r.FromRank >= 0 && sq.Rank != r.FromRank {
		return false
	}
	return true
}
