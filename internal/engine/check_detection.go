package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsChecked returns true if any opposing piece could move onto the team's
// king square. The attacker's own pins are ignored: a pinned piece still
// gives check.
func (g *Game) IsChecked(team chess.Team) bool {
	if !team.IsPlayer() {
		return false
	}
	return g.attacked(g.mustKing(team), team, standing)
}
