package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// sq parses a square literal.
func sq(s string) chess.Square {
	return chess.MustSquare(s)
}

// mv builds a move from two square literals.
func mv(from, to string) chess.Move {
	return chess.NewMove(sq(from), sq(to))
}

// newTestGame starts a game from a FEN piece placement.
func newTestGame(t *testing.T, placement string, opts ...Option) *Game {
	t.Helper()
	board, err := ParsePlacement(placement)
	if err != nil {
		t.Fatalf("ParsePlacement(%q) failed: %v", placement, err)
	}
	g, err := NewGame(board, opts...)
	if err != nil {
		t.Fatalf("NewGame(%q) failed: %v", placement, err)
	}
	return g
}

// play applies coordinate moves ("e2e4") for the team to move.
func play(t *testing.T, g *Game, moves ...string) {
	t.Helper()
	for _, s := range moves {
		rm := g.Resolve(mv(s[:2], s[2:4]), g.ToMove(), chess.NoKind)
		if !rm.Valid {
			t.Fatalf("move %s by %s resolved invalid", s, g.ToMove())
		}
		if err := g.Apply(rm); err != nil {
			t.Fatalf("Apply(%s) failed: %v", s, err)
		}
	}
}

// pieceAt returns the kind and team on a square literal.
func pieceAt(g *Game, s string) (chess.PieceKind, chess.Team) {
	p, team, _ := g.board.At(sq(s))
	return p.Kind, team
}
