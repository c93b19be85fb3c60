// Package output provides game summary formatting as text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// RenderBoard writes the board as eight lines, rank 8 first. White pieces
// are uppercase, Black lowercase and empty squares '.'. Each line ends with
// its rank digit and a footer names the files.
func RenderBoard(w io.Writer, b *engine.Board) {
	var sb strings.Builder
	for rank := chess.LastRank; rank >= chess.FirstRank; rank-- {
		for file := chess.FirstFile; file <= chess.LastFile; file++ {
			sb.WriteByte(squareLetter(b, chess.NewSquare(file, rank)))
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte('\n')
	}
	for file := chess.FirstFile; file <= chess.LastFile; file++ {
		if file > chess.FirstFile {
			sb.WriteByte(' ')
		}
		sb.WriteByte(byte('a' + file))
	}
	sb.WriteByte('\n')
	io.WriteString(w, sb.String()) //nolint:errcheck // best-effort diagram
}

// squareLetter returns the diagram letter for a square.
func squareLetter(b *engine.Board, sq chess.Square) byte {
	p, team, ok := b.At(sq)
	if !ok {
		return '.'
	}
	letter := p.Kind.Letter()
	if team == chess.Black {
		letter += 'a' - 'A'
	}
	return letter
}

// WriteMoveText writes numbered moves followed by the result, wrapping
// lines at the writer's limit. A game Black opens starts with "1...".
func WriteMoveText(ow *OutputWriter, moves []string, firstMover chess.Team, result string) {
	offset := 0
	if firstMover == chess.Black {
		offset = 1
	}

	for i, move := range moves {
		ply := i + offset
		switch {
		case ply%2 == 0:
			ow.Write(fmt.Sprintf("%d.", ply/2+1))
		case i == 0:
			ow.Write(fmt.Sprintf("%d...", ply/2+1))
		}
		ow.Write(move)
	}

	if result != "" {
		ow.Write(result)
	}
	ow.NewLine()
}
