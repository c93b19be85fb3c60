package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// DefaultDrawPlies is the reversible-move count at which the game is drawn.
const DefaultDrawPlies = 50

// Game owns a board and the history needed to judge moves on it: the last
// move played (for en passant), the reversible-move counter and the log of
// position fingerprints. A Game is not safe for concurrent use.
type Game struct {
	id         string
	board      *Board
	firstMover chess.Team
	drawPlies  int

	lastMove   chess.ResolvedMove
	moves      []chess.ResolvedMove
	reversible int
	history    []string
}

// Option configures a Game.
type Option func(*Game)

// WithFirstMover sets the team that moves first. The default is White.
func WithFirstMover(team chess.Team) Option {
	return func(g *Game) {
		g.firstMover = team
	}
}

// WithDrawPlies sets the reversible-move count that draws the game.
func WithDrawPlies(n int) Option {
	return func(g *Game) {
		g.drawPlies = n
	}
}

// WithID sets the game identifier instead of generating one.
func WithID(id string) Option {
	return func(g *Game) {
		g.id = id
	}
}

// NewGame starts a game on a copy of board. The team that does not move
// first must not already be in check.
func NewGame(board *Board, opts ...Option) (*Game, error) {
	if board == nil {
		return nil, &errors.PlacementError{Err: errors.ErrInvalidPlacement, Detail: "no board"}
	}

	g := &Game{
		board:      board.Clone(),
		firstMover: chess.White,
		drawPlies:  DefaultDrawPlies,
	}
	for _, opt := range opts {
		opt(g)
	}

	if !g.firstMover.IsPlayer() {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "first mover %s", g.firstMover)
	}
	if g.drawPlies <= 0 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "draw plies %d", g.drawPlies)
	}
	if g.id == "" {
		g.id = uuid.NewString()
	}

	waiting := g.firstMover.Opponent()
	if g.IsChecked(waiting) {
		return nil, &errors.PlacementError{
			Err:    errors.ErrInvalidPlacement,
			Square: g.mustKing(waiting).String(),
			Detail: fmt.Sprintf("%s is in check but not to move", waiting),
		}
	}

	g.history = append(g.history, g.board.Fingerprint())
	return g, nil
}

// NewStandardGame starts a game from the standard initial position.
func NewStandardGame(opts ...Option) (*Game, error) {
	board, err := ParsePlacement(InitialPlacement)
	if err != nil {
		return nil, err
	}
	return NewGame(board, opts...)
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Board returns a copy of the current board.
func (g *Game) Board() *Board {
	return g.board.Clone()
}

// LastMove returns the most recently applied move. ok is false before the
// first move.
func (g *Game) LastMove() (rm chess.ResolvedMove, ok bool) {
	return g.lastMove, g.lastMove.Valid
}

// Moves returns the moves applied so far.
func (g *Game) Moves() []chess.ResolvedMove {
	return append([]chess.ResolvedMove(nil), g.moves...)
}

// Plies returns the number of moves applied.
func (g *Game) Plies() int {
	return len(g.moves)
}

// ReversiblePlies returns the number of plies since the last capture or
// pawn move.
func (g *Game) ReversiblePlies() int {
	return g.reversible
}

// History returns the position fingerprints, starting with the initial
// position.
func (g *Game) History() []string {
	return append([]string(nil), g.history...)
}

// FirstMover returns the team that moved first.
func (g *Game) FirstMover() chess.Team {
	return g.firstMover
}

// ToMove returns the team whose turn it is.
func (g *Game) ToMove() chess.Team {
	if !g.lastMove.Valid {
		return g.firstMover
	}
	return g.lastMove.Team.Opponent()
}
