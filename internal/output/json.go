package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/processing"
)

// GameSummary describes a replayed game.
type GameSummary struct {
	ID        string   `json:"id"`
	Source    string   `json:"source,omitempty"`
	Moves     []string `json:"moves"`
	Placement string   `json:"placement"`
	Result    string   `json:"result"`
	Reason    string   `json:"reason"`
	Plies     int      `json:"plies"`
	Error     string   `json:"error,omitempty"`

	Analysis *processing.GameAnalysis `json:"analysis"`

	// Text output only
	FirstMover chess.Team    `json:"-"`
	Board      *engine.Board `json:"-"`
}

// JSONOutput holds multiple summaries for array output.
type JSONOutput struct {
	Games []*GameSummary `json:"games"`
}

// NewSummary summarises g as it stands. A non-nil err records why the
// replay stopped early.
func NewSummary(g *engine.Game, source string, err error) *GameSummary {
	moves := g.Moves()
	outcome := g.Status()
	board := g.Board()

	s := &GameSummary{
		ID:         g.ID(),
		Source:     source,
		Moves:      make([]string, len(moves)),
		Placement:  board.Placement(),
		Result:     outcome.Result(),
		Reason:     outcome.Reason.String(),
		Plies:      len(moves),
		FirstMover: g.FirstMover(),
		Board:      board,
		Analysis:   processing.AnalyzeGame(g),
	}
	for i, rm := range moves {
		s.Moves[i] = rm.String()
	}
	if err != nil {
		s.Error = err.Error()
	}
	return s
}

// WriteSummaryJSON writes a single summary as indented JSON.
func WriteSummaryJSON(w io.Writer, s *GameSummary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s)
}
