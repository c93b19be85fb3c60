package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/notation"
)

// NewGame starts a game from a FEN piece placement.
func NewGame(placement string, opts ...engine.Option) (*engine.Game, error) {
	board, err := engine.ParsePlacement(placement)
	if err != nil {
		return nil, err
	}
	return engine.NewGame(board, opts...)
}

// Replay plays a move list ("1. e4 e5 2. Nf3") on g for the side to move.
// It stops at the first move that fails and reports its text.
func Replay(g *engine.Game, moveText string) error {
	s := notation.NewScanner(strings.NewReader(moveText))
	for {
		tok, ok := s.Next()
		if !ok {
			return s.Err()
		}
		req, err := notation.Parse(tok.Text)
		if err != nil {
			return err
		}
		if _, err := g.Play(req, g.ToMove()); err != nil {
			return fmt.Errorf("ply %d: %w", g.Plies()+1, err)
		}
	}
}

// MustGame starts a game from a FEN piece placement.
// It calls t.Fatal if the placement or options are rejected.
func MustGame(t *testing.T, placement string, opts ...engine.Option) *engine.Game {
	t.Helper()
	g, err := NewGame(placement, opts...)
	if err != nil {
		t.Fatalf("failed to start game from %q: %v", placement, err)
	}
	return g
}

// MustPlay plays each move for the side to move.
// It calls t.Fatal on the first move that cannot be played.
func MustPlay(t *testing.T, g *engine.Game, moves ...string) {
	t.Helper()
	for _, text := range moves {
		req, err := notation.Parse(text)
		if err != nil {
			t.Fatalf("failed to read move %q: %v", text, err)
		}
		if _, err := g.Play(req, g.ToMove()); err != nil {
			t.Fatalf("failed to play %q at ply %d: %v", text, g.Plies()+1, err)
		}
	}
}

// MustReplay starts a game from placement and replays moveText on it.
// It calls t.Fatal if any step fails.
func MustReplay(t *testing.T, placement, moveText string, opts ...engine.Option) *engine.Game {
	t.Helper()
	g := MustGame(t, placement, opts...)
	if err := Replay(g, moveText); err != nil {
		t.Fatalf("failed to replay %q: %v", moveText, err)
	}
	return g
}
