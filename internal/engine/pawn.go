package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnRules applies the pawn-only gates to rm. A diagonal step must capture,
// either the piece on the destination or a pawn en passant; a straight step
// must land on an empty square. Reaching the far rank promotes, to a queen
// unless the move names another piece.
func (g *Game) pawnRules(rm *chess.ResolvedMove, pawn chess.Piece, occupied bool) bool {
	m := rm.Move

	if m.To.File != m.From.File {
		if !occupied {
			if !g.enPassantTarget(rm.Team, m.To) {
				return false
			}
			rm.Attrs.Captures = true
			rm.Attrs.EnPassant = true
		}
	} else if occupied {
		return false
	}

	if m.To.Rank == farRank(pawn) {
		rm.Attrs.Promotes = true
		if rm.Move.Promotion == chess.NoKind {
			rm.Move.Promotion = chess.Queen
		}
	} else if m.Promotion != chess.NoKind {
		return false
	}
	return true
}

// enPassantTarget reports whether a pawn of team landing on sq captures en
// passant: the previous ply must be an opposing two-square pawn advance that
// passed over sq.
func (g *Game) enPassantTarget(team chess.Team, sq chess.Square) bool {
	last := g.lastMove
	if !last.Valid || last.Team == team || last.Kind != chess.Pawn {
		return false
	}
	from, to := last.Move.From, last.Move.To
	if d := to.Sub(from); (d.Rank != 2 && d.Rank != -2) || d.File != 0 {
		return false
	}
	passed := chess.NewSquare(from.File, (from.Rank+to.Rank)/2)
	if sq != passed {
		return false
	}
	_, victimTeam, ok := g.board.At(to)
	return ok && victimTeam == last.Team
}

// farRank returns the rank a pawn promotes on.
func farRank(pawn chess.Piece) int {
	if pawn.Forward < 0 {
		return chess.FirstRank
	}
	return chess.LastRank
}
