package engine

import (
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Fingerprint returns a canonical encoding of the piece layout, used to
// detect repeated positions. Ranks run from 8 down to 1; each square is the
// piece kind digit followed by w or b, or '-' when empty, and every rank
// ends with '/'.
func (b *Board) Fingerprint() string {
	var sb strings.Builder
	sb.Grow(chess.BoardSize * (chess.BoardSize*2 + 1))
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			p, team, ok := b.At(chess.NewSquare(file, rank))
			if !ok {
				sb.WriteByte('-')
				continue
			}
			sb.WriteString(strconv.Itoa(int(p.Kind)))
			if team == chess.White {
				sb.WriteByte('w')
			} else {
				sb.WriteByte('b')
			}
		}
		sb.WriteByte('/')
	}
	return sb.String()
}
