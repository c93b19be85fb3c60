package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Reason explains a game outcome.
type Reason int

const (
	Ongoing Reason = iota
	Checkmate
	Stalemate
	FiftyMoveRule
	ThreefoldRepetition
)

// String returns the string representation of a reason.
func (r Reason) String() string {
	switch r {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case FiftyMoveRule:
		return "fifty-move rule"
	case ThreefoldRepetition:
		return "threefold repetition"
	default:
		return "ongoing"
	}
}

// Outcome is the state of a game: the winner (NoTeam while ongoing,
// BothTeams for a draw) and why.
type Outcome struct {
	Winner chess.Team
	Reason Reason
}

// IsOver returns true once the game has a result.
func (o Outcome) IsOver() bool {
	return o.Winner != chess.NoTeam
}

// Result returns the PGN-style result string ("1-0", "0-1", "1/2-1/2", "*").
func (o Outcome) Result() string {
	switch o.Winner {
	case chess.White:
		return "1-0"
	case chess.Black:
		return "0-1"
	case chess.BothTeams:
		return "1/2-1/2"
	default:
		return "*"
	}
}

// repetitionLimit is the number of occurrences of a position that draws.
const repetitionLimit = 3

// Status judges the position for the team to move. Having no legal move is
// checkmate when in check and stalemate otherwise. Failing that, the game is
// drawn once the reversible-move counter reaches the draw limit or the
// current position has occurred three times.
func (g *Game) Status() Outcome {
	toMove := g.ToMove()

	if !g.HasMoves(toMove) {
		if g.IsChecked(toMove) {
			return Outcome{Winner: toMove.Opponent(), Reason: Checkmate}
		}
		return Outcome{Winner: chess.BothTeams, Reason: Stalemate}
	}

	if g.reversible >= g.drawPlies {
		return Outcome{Winner: chess.BothTeams, Reason: FiftyMoveRule}
	}

	if g.repetitions() >= repetitionLimit {
		return Outcome{Winner: chess.BothTeams, Reason: ThreefoldRepetition}
	}

	return Outcome{Winner: chess.NoTeam, Reason: Ongoing}
}

// Winner returns the winning team, BothTeams for a draw, or NoTeam while
// the game is ongoing.
func (g *Game) Winner() chess.Team {
	return g.Status().Winner
}

// repetitions counts the occurrences of the current position in history.
func (g *Game) repetitions() int {
	current := g.history[len(g.history)-1]
	n := 0
	for _, fp := range g.history {
		if fp == current {
			n++
		}
	}
	return n
}
