package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// HasMoves returns true if any piece of team has at least one legal move.
func (g *Game) HasMoves(team chess.Team) bool {
	for _, from := range g.board.Squares(team) {
		for _, to := range chess.AllSquares() {
			if g.Resolve(chess.NewMove(from, to), team, chess.NoKind).Valid {
				return true
			}
		}
	}
	return false
}

// LegalMoves returns every legal move of team, ordered by origin and then
// destination square. A promotion is listed once, with the default queen;
// castles are listed as the king moving onto its rook.
func (g *Game) LegalMoves(team chess.Team) []chess.ResolvedMove {
	var moves []chess.ResolvedMove
	for _, from := range g.board.Squares(team) {
		for _, to := range chess.AllSquares() {
			if rm := g.Resolve(chess.NewMove(from, to), team, chess.NoKind); rm.Valid {
				moves = append(moves, rm)
			}
		}
	}
	return moves
}
