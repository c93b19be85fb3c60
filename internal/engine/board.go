// Package engine provides chess move validation and board manipulation.
package engine

import (
	"fmt"
	"sort"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Board holds the pieces of both teams, one square-to-piece mapping per team.
// A square appears in at most one mapping.
type Board struct {
	pieces [2]map[chess.Square]chess.Piece
}

// NewBoard creates a board from one mapping per team. The maps are copied.
// Every square must lie on the board, no square may be held by both teams,
// and each team must have exactly one king.
func NewBoard(white, black map[chess.Square]chess.Piece) (*Board, error) {
	b := &Board{}
	for i, src := range []map[chess.Square]chess.Piece{white, black} {
		team := chess.Team(i)
		b.pieces[i] = make(map[chess.Square]chess.Piece, len(src))
		kings := 0
		for sq, p := range src {
			if !sq.InBounds() {
				return nil, &errors.PlacementError{
					Err:    errors.ErrInvalidPlacement,
					Detail: fmt.Sprintf("%s piece off the board at (%d,%d)", team, sq.File, sq.Rank),
				}
			}
			if p.IsNone() {
				return nil, &errors.PlacementError{
					Err:    errors.ErrInvalidPlacement,
					Square: sq.String(),
					Detail: "empty piece",
				}
			}
			if p.Kind == chess.King {
				kings++
			}
			if p.Kind == chess.Pawn && p.Forward == 0 {
				p.Forward = team.Forward()
			}
			b.pieces[i][sq] = p
		}
		if kings != 1 {
			return nil, &errors.PlacementError{
				Err:    errors.ErrInvalidPlacement,
				Detail: fmt.Sprintf("%s has %d kings, want 1", team, kings),
			}
		}
	}

	for sq := range b.pieces[chess.White] {
		if _, ok := b.pieces[chess.Black][sq]; ok {
			return nil, &errors.PlacementError{
				Err:    errors.ErrInvalidPlacement,
				Square: sq.String(),
				Detail: "held by both teams",
			}
		}
	}
	return b, nil
}

// At returns the piece on sq and its team. ok is false for an empty square.
func (b *Board) At(sq chess.Square) (p chess.Piece, team chess.Team, ok bool) {
	for _, t := range []chess.Team{chess.White, chess.Black} {
		if p, ok := b.pieces[t][sq]; ok {
			return p, t, true
		}
	}
	return chess.Piece{}, chess.NoTeam, false
}

// TeamAt returns the team holding sq, or NoTeam.
func (b *Board) TeamAt(sq chess.Square) chess.Team {
	_, team, _ := b.At(sq)
	return team
}

// KindAt returns the kind of the piece on sq, or NoKind.
func (b *Board) KindAt(sq chess.Square) chess.PieceKind {
	p, _, _ := b.At(sq)
	return p.Kind
}

// IsEmpty returns true if no piece stands on sq.
func (b *Board) IsEmpty(sq chess.Square) bool {
	_, _, ok := b.At(sq)
	return !ok
}

// King returns the square of the team's king. ok is false if the team has none.
func (b *Board) King(team chess.Team) (chess.Square, bool) {
	if !team.IsPlayer() {
		return chess.NoSquare, false
	}
	for sq, p := range b.pieces[team] {
		if p.Kind == chess.King {
			return sq, true
		}
	}
	return chess.NoSquare, false
}

// Squares returns the squares held by team, ordered rank by rank from a1.
func (b *Board) Squares(team chess.Team) []chess.Square {
	if !team.IsPlayer() {
		return nil
	}
	squares := make([]chess.Square, 0, len(b.pieces[team]))
	for sq := range b.pieces[team] {
		squares = append(squares, sq)
	}
	sort.Slice(squares, func(i, j int) bool {
		if squares[i].Rank != squares[j].Rank {
			return squares[i].Rank < squares[j].Rank
		}
		return squares[i].File < squares[j].File
	})
	return squares
}

// Count returns the number of pieces held by team.
func (b *Board) Count(team chess.Team) int {
	if !team.IsPlayer() {
		return 0
	}
	return len(b.pieces[team])
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{}
	for i := range b.pieces {
		c.pieces[i] = make(map[chess.Square]chess.Piece, len(b.pieces[i]))
		for sq, p := range b.pieces[i] {
			c.pieces[i][sq] = p
		}
	}
	return c
}

// put places p for team on sq, replacing whatever stood there.
func (b *Board) put(sq chess.Square, p chess.Piece, team chess.Team) {
	b.remove(sq)
	b.pieces[team][sq] = p
}

// remove clears sq and returns what stood there.
func (b *Board) remove(sq chess.Square) (chess.Piece, chess.Team, bool) {
	p, team, ok := b.At(sq)
	if ok {
		delete(b.pieces[team], sq)
	}
	return p, team, ok
}

// relocate moves the piece on from to to, marking it moved. It reports
// false if from is empty.
func (b *Board) relocate(from, to chess.Square) bool {
	p, team, ok := b.remove(from)
	if !ok {
		return false
	}
	b.put(to, p.WithMoved(), team)
	return true
}
