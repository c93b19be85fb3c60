package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// hypothetical describes a move that is treated as played without touching
// the board. The piece on from stands on to; for castling and en passant a
// second square is freed (rook origin or captured pawn) and, for castling,
// the rook lands on filled.
type hypothetical struct {
	from, to chess.Square
	freed    chess.Square
	filled   chess.Square
}

// standing is the hypothetical that changes nothing. Resolving against it
// reads the current position without the self-check gate.
var standing = &hypothetical{
	from:   chess.NoSquare,
	to:     chess.NoSquare,
	freed:  chess.NoSquare,
	filled: chess.NoSquare,
}

func (h *hypothetical) vacates(sq chess.Square) bool {
	return sq == h.from || sq == h.freed
}

func (h *hypothetical) fills(sq chess.Square) bool {
	return sq == h.to || sq == h.filled
}

// occupant returns the piece and team standing on sq once h is played.
func (g *Game) occupant(sq chess.Square, h *hypothetical) (chess.Piece, chess.Team, bool) {
	switch {
	case sq == h.to:
		return g.board.At(h.from)
	case sq == h.filled:
		return g.board.At(h.freed)
	case h.vacates(sq):
		return chess.Piece{}, chess.NoTeam, false
	}
	return g.board.At(sq)
}

// Resolve decides whether team can play m with a piece of the given kind
// (NoKind accepts any) in the current position. The returned move carries
// the derived attributes; Valid is false for any illegal move. A king moved
// onto its own unmoved rook is a castle request.
func (g *Game) Resolve(m chess.Move, team chess.Team, kind chess.PieceKind) chess.ResolvedMove {
	return g.resolve(m, team, kind, nil)
}

// resolve runs the legality gates in order and stops at the first failure.
// A nil h is a top-level call: it reads the real position and runs the
// self-check gate. A non-nil h reads the position as if h had been played
// and never recurses.
func (g *Game) resolve(m chess.Move, team chess.Team, kind chess.PieceKind, h *hypothetical) chess.ResolvedMove {
	rm := chess.ResolvedMove{Team: team, Kind: kind, Move: m}
	view := h
	if view == nil {
		view = standing
	}

	// Bounds
	if !m.To.InBounds() || !m.From.InBounds() || m.IsNull() {
		return rm
	}

	// Ownership
	piece, owner, ok := g.board.At(m.From)
	if !ok || owner != team {
		return rm
	}

	// Capture target
	target, targetTeam, occupied := g.occupant(m.To, view)

	// Castle detection
	var side chess.CastleSide
	if occupied && targetTeam == team {
		side = castleSide(m, piece, target)
		if side == chess.NoCastle {
			return rm
		}
		rm.Attrs.Castles = true
		rm.Attrs.Side = side
	} else if occupied {
		rm.Attrs.Captures = true
	}

	// Kind filter
	if kind != chess.NoKind && kind != piece.Kind {
		return rm
	}
	rm.Kind = piece.Kind

	// Promotion gate
	if m.Promotion != chess.NoKind && (piece.Kind != chess.Pawn || !m.Promotion.IsPromotionTarget()) {
		return rm
	}

	// Shape gate
	if side == chess.NoCastle && !piece.CanReach(m) {
		return rm
	}

	// A piece the hypothetical move removes cannot itself move.
	if h != nil && (m.From == h.to || m.From == h.freed) {
		return rm
	}

	if piece.Kind == chess.Pawn && !g.pawnRules(&rm, piece, occupied) {
		return rm
	}

	if piece.Kind != chess.Knight && !g.pathClear(m.From, m.To, view) {
		return rm
	}

	if h == nil {
		if g.exposesKing(rm, piece) {
			return rm
		}
	}

	rm.Valid = true
	return rm
}

// castleSide reports the side of a castle encoded as a king moving onto its
// own rook. Both must be unmoved, on the same rank, and at least three files
// apart so the king's two-square landing lies between them.
func castleSide(m chess.Move, king, rook chess.Piece) chess.CastleSide {
	if king.Kind != chess.King || rook.Kind != chess.Rook {
		return chess.NoCastle
	}
	if king.Moved || rook.Moved || m.From.Rank != m.To.Rank {
		return chess.NoCastle
	}
	d := m.To.Sub(m.From)
	if d.File > -3 && d.File < 3 {
		return chess.NoCastle
	}
	if d.File > 0 {
		return chess.Kingside
	}
	return chess.Queenside
}

// castleLanding returns the squares the king and rook land on when the king
// on from castles with the rook on rook.
func castleLanding(from, rook chess.Square) (kingTo, rookTo chess.Square) {
	dir := rook.Sub(from).Step().File
	kingTo = chess.NewSquare(from.File+2*dir, from.Rank)
	rookTo = chess.NewSquare(from.File+dir, from.Rank)
	return kingTo, rookTo
}

// pathClear scans the squares strictly between from and to. Squares the
// hypothetical fills block; squares it vacates are passable.
func (g *Game) pathClear(from, to chess.Square, h *hypothetical) bool {
	step := to.Sub(from).Step()
	for sq := from.Add(step); sq != to; sq = sq.Add(step) {
		if h.fills(sq) {
			return false
		}
		if h.vacates(sq) {
			continue
		}
		if !g.board.IsEmpty(sq) {
			return false
		}
	}
	return true
}

// exposesKing reports whether playing rm would leave the mover's king
// attacked. For a castle it also rejects castling out of or through check.
func (g *Game) exposesKing(rm chess.ResolvedMove, piece chess.Piece) bool {
	m := rm.Move
	h := &hypothetical{from: m.From, to: m.To, freed: chess.NoSquare, filled: chess.NoSquare}

	switch {
	case rm.Attrs.Castles:
		kingTo, rookTo := castleLanding(m.From, m.To)
		crossed := chess.NewSquare((m.From.File+kingTo.File)/2, m.From.Rank)
		if g.attacked(m.From, rm.Team, standing) {
			return true
		}
		if g.attacked(crossed, rm.Team, &hypothetical{
			from: m.From, to: crossed, freed: chess.NoSquare, filled: chess.NoSquare,
		}) {
			return true
		}
		h = &hypothetical{from: m.From, to: kingTo, freed: m.To, filled: rookTo}

	case rm.Attrs.EnPassant:
		h.freed = g.lastMove.Move.To
	}

	kingSq := h.to
	if piece.Kind != chess.King {
		kingSq = g.mustKing(rm.Team)
	}
	return g.attacked(kingSq, rm.Team, h)
}

// attacked reports whether any piece opposing team could move onto sq once
// h is played.
func (g *Game) attacked(sq chess.Square, team chess.Team, h *hypothetical) bool {
	opp := team.Opponent()
	for _, from := range g.board.Squares(opp) {
		if g.resolve(chess.NewMove(from, sq), opp, chess.NoKind, h).Valid {
			return true
		}
	}
	return false
}

// mustKing returns the team's king square. A missing king means the board
// has been corrupted.
func (g *Game) mustKing(team chess.Team) chess.Square {
	sq, ok := g.board.King(team)
	if !ok {
		panic(errors.Wrapf(errors.ErrInconsistentBoard, "no %s king on the board", team))
	}
	return sq
}
