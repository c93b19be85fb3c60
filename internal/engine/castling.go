package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// applyCastle performs a castle encoded as the king moving onto its rook:
// the king lands two squares toward the rook and the rook lands on the
// square the king crossed.
func (g *Game) applyCastle(m chess.Move) error {
	kingTo, rookTo := castleLanding(m.From, m.To)

	if !g.board.relocate(m.From, kingTo) {
		return missingPiece(m.From)
	}
	if !g.board.relocate(m.To, rookTo) {
		return missingPiece(m.To)
	}
	return nil
}
