package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// StandardPlacement is the piece placement of a standard game.
const StandardPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// DefaultDrawPlies is the number of reversible plies that draws a game.
const DefaultDrawPlies = 50

// GameConfig holds the rules every replayed game starts with.
type GameConfig struct {
	// StartPlacement is a FEN piece placement; fields after the first are ignored.
	StartPlacement string

	// FirstMover is the team that makes the first move.
	FirstMover chess.Team

	// DrawPlies is the reversible ply count that ends the game in a draw.
	DrawPlies int
}

// NewGameConfig creates a GameConfig with default values.
func NewGameConfig() *GameConfig {
	return &GameConfig{
		StartPlacement: StandardPlacement,
		FirstMover:     chess.White,
		DrawPlies:      DefaultDrawPlies,
	}
}

// Validate checks that the game configuration is usable.
// The placement itself is checked when a game is built from it.
func (g *GameConfig) Validate() error {
	if strings.TrimSpace(g.StartPlacement) == "" {
		return fmt.Errorf("empty start placement: %w", errors.ErrInvalidConfig)
	}
	if !g.FirstMover.IsPlayer() {
		return fmt.Errorf("first mover %s is not a player: %w", g.FirstMover, errors.ErrInvalidConfig)
	}
	if g.DrawPlies <= 0 {
		return fmt.Errorf("draw plies %d must be positive: %w", g.DrawPlies, errors.ErrInvalidConfig)
	}
	return nil
}

// ParseTeam reads a team name ("white", "w", "black", "b") in any case.
func ParseTeam(s string) (chess.Team, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return chess.White, nil
	case "black", "b":
		return chess.Black, nil
	}
	return chess.NoTeam, fmt.Errorf("unknown team %q: %w", s, errors.ErrInvalidConfig)
}
