package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Apply plays rm on the board. The move is resolved again against the
// current position and must still be valid and the same move; a move whose
// piece kind or team no longer matches is refused as imprecise.
func (g *Game) Apply(rm chess.ResolvedMove) error {
	if !rm.Valid {
		return errors.Wrapf(errors.ErrIllegalMove, "%s", rm)
	}

	current := g.Resolve(rm.Move, rm.Team, rm.Kind)
	if !current.Valid {
		return errors.Wrapf(errors.ErrIllegalMove, "%s", rm)
	}
	if !current.Same(rm) {
		return errors.Wrapf(errors.ErrImpreciseMove, "%s resolves to %s", rm, current)
	}

	var err error
	if current.Attrs.Castles {
		err = g.applyCastle(current.Move)
	} else {
		err = g.applyPieceMove(current)
	}
	if err != nil {
		return err
	}

	if current.Attrs.Captures || current.Kind == chess.Pawn {
		g.reversible = 0
	} else {
		g.reversible++
	}

	current.Attrs.Checks = g.IsChecked(current.Team.Opponent())
	g.lastMove = current
	g.moves = append(g.moves, current)
	g.history = append(g.history, g.board.Fingerprint())
	return nil
}

// applyPieceMove relocates the mover, removing whatever it captures. A
// promoting pawn is replaced by a new piece of the promotion kind.
func (g *Game) applyPieceMove(rm chess.ResolvedMove) error {
	m := rm.Move

	if rm.Attrs.EnPassant {
		if _, _, ok := g.board.remove(g.lastMove.Move.To); !ok {
			return missingPiece(g.lastMove.Move.To)
		}
	} else if rm.Attrs.Captures {
		if _, _, ok := g.board.remove(m.To); !ok {
			return missingPiece(m.To)
		}
	}

	if rm.Attrs.Promotes {
		if _, _, ok := g.board.remove(m.From); !ok {
			return missingPiece(m.From)
		}
		g.board.put(m.To, chess.NewPiece(m.Promotion, rm.Team).WithMoved(), rm.Team)
		return nil
	}

	if !g.board.relocate(m.From, m.To) {
		return missingPiece(m.From)
	}
	return nil
}

// missingPiece reports a square the executor expected to hold a piece.
func missingPiece(sq chess.Square) error {
	return errors.Wrapf(errors.ErrInconsistentBoard, "no piece on %s", sq)
}
