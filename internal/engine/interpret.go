package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Candidates returns the moves of team that could satisfy req judging by
// piece kind, origin disambiguation and movement shape alone. Castle
// requests, and coordinate requests that move the king two files, become
// the king moving onto the rook of that side. A coordinate request moving
// the king onto its own rook is passed through as it stands.
func (g *Game) Candidates(req chess.MoveRequest, team chess.Team) []chess.Move {
	if req.Castle != chess.NoCastle {
		return g.castleCandidates(req.Castle, team)
	}
	if !req.To.InBounds() {
		return nil
	}

	if from, ok := kingOrigin(g.board, req, team); ok {
		if side := kingStep(from, req.To); side != chess.NoCastle {
			return g.castleCandidates(side, team)
		}
		if from.Rank == req.To.Rank && g.board.TeamAt(req.To) == team && g.board.KindAt(req.To) == chess.Rook {
			return []chess.Move{chess.NewMove(from, req.To)}
		}
	}

	var moves []chess.Move
	for _, from := range g.board.Squares(team) {
		if !req.Matches(from) {
			continue
		}
		p, _, _ := g.board.At(from)
		if req.Kind != chess.NoKind && p.Kind != req.Kind {
			continue
		}
		m := chess.Move{From: from, To: req.To, Promotion: req.Promotion}
		if !p.CanReach(m) {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// kingOrigin returns the king's square when req names it as the origin.
func kingOrigin(b *Board, req chess.MoveRequest, team chess.Team) (chess.Square, bool) {
	if !req.HasOrigin() || (req.Kind != chess.NoKind && req.Kind != chess.King) {
		return chess.NoSquare, false
	}
	from := chess.NewSquare(req.FromFile, req.FromRank)
	if king, ok := b.King(team); !ok || king != from {
		return chess.NoSquare, false
	}
	return from, true
}

// kingStep reports the castle side of a king move two files along its rank.
func kingStep(from, to chess.Square) chess.CastleSide {
	switch d := to.Sub(from); {
	case d.Rank != 0:
		return chess.NoCastle
	case d.File == 2:
		return chess.Kingside
	case d.File == -2:
		return chess.Queenside
	}
	return chess.NoCastle
}

// castleCandidates returns the king moving onto each rook of team on the
// king's rank and the given side.
func (g *Game) castleCandidates(side chess.CastleSide, team chess.Team) []chess.Move {
	king, ok := g.board.King(team)
	if !ok {
		return nil
	}
	var moves []chess.Move
	for _, sq := range g.board.Squares(team) {
		if sq.Rank != king.Rank || g.board.KindAt(sq) != chess.Rook {
			continue
		}
		if (side == chess.Kingside && sq.File > king.File) || (side == chess.Queenside && sq.File < king.File) {
			moves = append(moves, chess.NewMove(king, sq))
		}
	}
	return moves
}

// Play resolves req for team and applies the single legal move it names.
// It fails with ErrIllegalMove when no candidate is legal or team is not to
// move, and with ErrAmbiguousMove when several are. The game is unchanged
// on error.
func (g *Game) Play(req chess.MoveRequest, team chess.Team) (chess.ResolvedMove, error) {
	if team != g.ToMove() {
		return chess.ResolvedMove{}, errors.Wrapf(errors.ErrIllegalMove, "%s: %s is not to move", describe(req), team)
	}

	kind := req.Kind
	if req.Castle != chess.NoCastle {
		kind = chess.King
	}

	var legal []chess.ResolvedMove
	for _, m := range g.Candidates(req, team) {
		if rm := g.Resolve(m, team, kind); rm.Valid {
			legal = append(legal, rm)
		}
	}

	switch len(legal) {
	case 0:
		return chess.ResolvedMove{}, errors.Wrap(errors.ErrIllegalMove, describe(req))
	case 1:
		if err := g.Apply(legal[0]); err != nil {
			return chess.ResolvedMove{}, err
		}
		return g.lastMove, nil
	default:
		names := make([]string, len(legal))
		for i, rm := range legal {
			names[i] = rm.String()
		}
		return chess.ResolvedMove{}, errors.Wrapf(errors.ErrAmbiguousMove, "%s matches %s", describe(req), strings.Join(names, ", "))
	}
}

// describe names a request in error messages.
func describe(req chess.MoveRequest) string {
	if req.Text != "" {
		return req.Text
	}
	if req.Castle != chess.NoCastle {
		return req.Castle.String()
	}
	return fmt.Sprintf("%s to %s", req.Kind, req.To)
}
