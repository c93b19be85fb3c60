// Package notation reads move text into partial move requests.
package notation

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// isCol returns true if c is a valid file character.
func isCol(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// isPiece returns the piece kind named by an uppercase piece letter.
// Lowercase letters are files, so 'b' never means a bishop here.
func isPiece(c byte) chess.PieceKind {
	switch c {
	case 'K', 'Q', 'R', 'B', 'N', 'P':
		return chess.KindFromLetter(c)
	}
	return chess.NoKind
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isSuffix returns true for check marks and annotation glyphs.
func isSuffix(c byte) bool {
	return c == '+' || c == '#' || c == '!' || c == '?'
}

// decoder walks a move string one character at a time.
type decoder struct {
	text string
	pos  int
}

func (d *decoder) current() byte {
	if d.pos >= len(d.text) {
		return 0
	}
	return d.text[d.pos]
}

func (d *decoder) advance() {
	if d.pos < len(d.text) {
		d.pos++
	}
}

// square reads a file and rank pair. It consumes nothing on failure.
func (d *decoder) square() (chess.Square, bool) {
	if d.pos+1 >= len(d.text) || !isCol(d.text[d.pos]) || !isRank(d.text[d.pos+1]) {
		return chess.NoSquare, false
	}
	sq := chess.NewSquare(int(d.text[d.pos]-'a'), int(d.text[d.pos+1]-'1'))
	d.pos += 2
	return sq, true
}

// Parse reads a move in standard algebraic notation (e4, exd5, Nbd7, R1e2,
// Qh4e1, e8=Q, O-O-O) or coordinate notation (e2e4, e2-e4, e7e8q). Trailing
// check marks and annotation glyphs are ignored. Errors wrap ErrNotation.
//
// A lowercase start is a pawn move unless it names both squares, in which
// case the request carries a full origin and any piece kind.
func Parse(text string) (chess.MoveRequest, error) {
	req := chess.NewMoveRequest(chess.NoSquare)
	req.Text = text
	d := &decoder{text: text}

	var ok bool
	switch c := d.current(); {
	case isCol(c):
		ok = d.pawnOrCoordinate(&req)
	case isPiece(c) != chess.NoKind:
		req.Kind = isPiece(c)
		d.advance()
		ok = d.pieceMove(&req)
	case isCastlingChar(c):
		ok = d.castle(&req)
	}
	if !ok {
		return chess.MoveRequest{}, errors.Wrapf(errors.ErrNotation, "%q", text)
	}

	for isSuffix(d.current()) {
		d.advance()
	}
	if d.current() != 0 {
		return chess.MoveRequest{}, errors.Wrapf(errors.ErrNotation, "%q: unexpected %q", text, d.text[d.pos:])
	}
	return req, nil
}

// pawnOrCoordinate reads e4, exd5, e8=Q and the coordinate forms e2e4,
// e2-e4 and e7e8q.
func (d *decoder) pawnOrCoordinate(req *chess.MoveRequest) bool {
	if from, ok := d.square(); ok {
		if isCapture(d.current()) {
			d.advance()
		}
		to, ok := d.square()
		if !ok {
			if d.pos != 2 {
				return false
			}
			// e4
			req.Kind = chess.Pawn
			req.To = from
			return d.promotion(req)
		}
		req.FromFile, req.FromRank = from.File, from.Rank
		req.To = to
		return d.promotion(req)
	}

	// exd5
	fromFile := int(d.current() - 'a')
	d.advance()
	if isCapture(d.current()) {
		d.advance()
	}
	to, ok := d.square()
	if !ok {
		return false
	}
	if df := to.File - fromFile; df != 1 && df != -1 {
		return false
	}
	req.Kind = chess.Pawn
	req.FromFile = fromFile
	req.To = to
	return d.promotion(req)
}

// promotion reads an optional '=' and promotion letter. Either case is
// accepted after a destination square.
func (d *decoder) promotion(req *chess.MoveRequest) bool {
	hasEquals := d.current() == '='
	if hasEquals {
		d.advance()
	}
	kind := chess.KindFromLetter(d.current())
	if !kind.IsPromotionTarget() {
		return !hasEquals
	}
	req.Promotion = kind
	d.advance()
	return true
}

// pieceMove reads everything after the piece letter: f3, xf3, bd7, 1e2,
// h4e1 and h4xe1.
func (d *decoder) pieceMove(req *chess.MoveRequest) bool {
	if isRank(d.current()) {
		// R1e2, R1xe2
		req.FromRank = int(d.current() - '1')
		d.advance()
		if isCapture(d.current()) {
			d.advance()
		}
		to, ok := d.square()
		req.To = to
		return ok
	}

	if isCapture(d.current()) {
		// Rxe1
		d.advance()
		to, ok := d.square()
		req.To = to
		return ok
	}

	if first, ok := d.square(); ok {
		if isCapture(d.current()) {
			d.advance()
		}
		to, ok := d.square()
		if !ok {
			// Re1
			req.To = first
			return true
		}
		// Qh4e1
		req.FromFile, req.FromRank = first.File, first.Rank
		req.To = to
		return true
	}

	if !isCol(d.current()) {
		return false
	}
	// Nbd7, Nbxd7
	req.FromFile = int(d.current() - 'a')
	d.advance()
	if isCapture(d.current()) {
		d.advance()
	}
	to, ok := d.square()
	req.To = to
	return ok
}

// castle reads O-O, O-O-O and their zero and unhyphenated variants.
func (d *decoder) castle(req *chess.MoveRequest) bool {
	count := 0
	for isCastlingChar(d.current()) {
		count++
		d.advance()
		if d.current() == '-' {
			d.advance()
			if !isCastlingChar(d.current()) {
				return false
			}
		}
	}

	req.Kind = chess.King
	switch count {
	case 2:
		req.Castle = chess.Kingside
	case 3:
		req.Castle = chess.Queenside
	default:
		return false
	}
	return true
}
