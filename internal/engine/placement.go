package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialPlacement is the piece placement of the standard starting position.
const InitialPlacement = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR"

// ParsePlacement creates a board from the piece placement field of a FEN
// string. Only the first space-separated field is read. Pawns off their
// starting rank, rooks off their corners and kings off their starting square
// are marked as moved.
func ParsePlacement(s string) (*Board, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, &errors.PlacementError{Err: errors.ErrInvalidPlacement, Detail: "empty placement"}
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != chess.BoardSize {
		return nil, &errors.PlacementError{
			Err:    errors.ErrInvalidPlacement,
			Detail: fmt.Sprintf("got %d ranks, want %d", len(ranks), chess.BoardSize),
		}
	}

	white := make(map[chess.Square]chess.Piece)
	black := make(map[chess.Square]chess.Piece)

	for i, row := range ranks {
		rank := chess.LastRank - i
		file := chess.FirstFile
		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}

			kind := chess.KindFromLetter(c)
			if kind == chess.NoKind {
				return nil, &errors.PlacementError{
					Err:    errors.ErrInvalidPlacement,
					Detail: fmt.Sprintf("invalid piece character %q on rank %d", c, rank+1),
				}
			}
			if file > chess.LastFile {
				return nil, &errors.PlacementError{
					Err:    errors.ErrInvalidPlacement,
					Detail: fmt.Sprintf("rank %d overflows", rank+1),
				}
			}

			sq := chess.NewSquare(file, rank)
			team := chess.White
			if c >= 'a' && c <= 'z' {
				team = chess.Black
			}
			p := chess.NewPiece(kind, team)
			p.Moved = !atHome(kind, team, sq)

			if team == chess.White {
				white[sq] = p
			} else {
				black[sq] = p
			}
			file++
		}
		if file != chess.BoardSize {
			return nil, &errors.PlacementError{
				Err:    errors.ErrInvalidPlacement,
				Detail: fmt.Sprintf("rank %d has %d files, want %d", rank+1, file, chess.BoardSize),
			}
		}
	}

	return NewBoard(white, black)
}

// atHome reports whether a piece of this kind on sq still counts as unmoved.
// Only pawns, rooks and kings carry state that depends on having moved.
func atHome(kind chess.PieceKind, team chess.Team, sq chess.Square) bool {
	switch kind {
	case chess.Pawn:
		return sq.Rank == team.HomeRank()+team.Forward()
	case chess.Rook:
		return sq.Rank == team.HomeRank() && (sq.File == chess.FirstFile || sq.File == chess.LastFile)
	case chess.King:
		return sq.Rank == team.HomeRank() && sq.File == 4
	default:
		return true
	}
}

// Placement writes the board in FEN piece placement form.
func (b *Board) Placement() string {
	var sb strings.Builder
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		empty := 0
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			p, team, ok := b.At(chess.NewSquare(file, rank))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceLetter(p.Kind, team))
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}
	return sb.String()
}

// pieceLetter returns the FEN letter for a piece: uppercase for White,
// lowercase for Black.
func pieceLetter(kind chess.PieceKind, team chess.Team) byte {
	c := kind.Letter()
	if team == chess.Black {
		c += 'a' - 'A'
	}
	return c
}
