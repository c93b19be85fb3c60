// Package processing provides analysis of replayed games.
package processing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// GameAnalysis holds counts gathered from the moves of a game.
type GameAnalysis struct {
	Captures        int `json:"captures"`
	Checks          int `json:"checks"`
	Castles         int `json:"castles"`
	EnPassant       int `json:"en_passant"`
	Promotions      int `json:"promotions"`
	Underpromotions int `json:"underpromotions"`

	// MaxRepeats is the most times any one position occurred.
	MaxRepeats int `json:"max_repeats"`
}

// RepetitionDetected returns true if some position occurred three times.
func (ga *GameAnalysis) RepetitionDetected() bool {
	return ga.MaxRepeats >= 3
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (ga *GameAnalysis) UnderpromotionFound() bool {
	return ga.Underpromotions > 0
}

// AnalyzeGame counts the features of the moves played so far in g.
func AnalyzeGame(g *engine.Game) *GameAnalysis {
	analysis := &GameAnalysis{}

	for _, rm := range g.Moves() {
		if rm.Attrs.Captures {
			analysis.Captures++
		}
		if rm.Attrs.Checks {
			analysis.Checks++
		}
		if rm.Attrs.Castles {
			analysis.Castles++
		}
		if rm.Attrs.EnPassant {
			analysis.EnPassant++
		}
		if rm.Attrs.Promotes {
			analysis.Promotions++
			if rm.Move.Promotion != chess.Queen {
				analysis.Underpromotions++
			}
		}
	}

	positionCount := make(map[string]int)
	for _, fp := range g.History() {
		positionCount[fp]++
		if positionCount[fp] > analysis.MaxRepeats {
			analysis.MaxRepeats = positionCount[fp]
		}
	}

	return analysis
}
