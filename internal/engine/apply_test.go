package engine

import (
	"errors"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// Castling is encoded as the king moving onto its rook.
func TestApply_Castling(t *testing.T) {
	tests := []struct {
		name     string
		move     chess.Move
		wantKing string
		wantRook string
		emptied  []string
	}{
		{"kingside", mv("e1", "h1"), "g1", "f1", []string{"e1", "h1"}},
		{"queenside", mv("e1", "a1"), "c1", "d1", []string{"e1", "a1", "b1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, "4k3/8/8/8/8/8/8/R3K2R")
			rm := g.Resolve(tt.move, chess.White, chess.NoKind)
			if !rm.Valid || !rm.Attrs.Castles {
				t.Fatalf("Resolve(%s) = %+v, want a valid castle", tt.move, rm)
			}
			if err := g.Apply(rm); err != nil {
				t.Fatalf("Apply() failed: %v", err)
			}

			if kind, team := pieceAt(g, tt.wantKing); kind != chess.King || team != chess.White {
				t.Errorf("%s holds %s %s, want White King", tt.wantKing, team, kind)
			}
			if kind, team := pieceAt(g, tt.wantRook); kind != chess.Rook || team != chess.White {
				t.Errorf("%s holds %s %s, want White Rook", tt.wantRook, team, kind)
			}
			for _, s := range tt.emptied {
				if !g.board.IsEmpty(sq(s)) {
					t.Errorf("%s should be empty", s)
				}
			}

			king, _, _ := g.board.At(sq(tt.wantKing))
			rook, _, _ := g.board.At(sq(tt.wantRook))
			if !king.Moved || !rook.Moved {
				t.Error("castled king and rook should be marked moved")
			}
			if g.ReversiblePlies() != 1 {
				t.Errorf("ReversiblePlies() = %d, want 1", g.ReversiblePlies())
			}
		})
	}
}

// En passant removes the pawn that made the double step.
func TestApply_EnPassant(t *testing.T) {
	g := newTestGame(t, "4k3/8/8/8/3p4/8/4P3/4K3")
	play(t, g, "e2e4", "d4e3")

	if kind, team := pieceAt(g, "e3"); kind != chess.Pawn || team != chess.Black {
		t.Errorf("e3 holds %s %s, want Black Pawn", team, kind)
	}
	for _, s := range []string{"e4", "d4", "e2"} {
		if !g.board.IsEmpty(sq(s)) {
			t.Errorf("%s should be empty", s)
		}
	}
	if g.board.Count(chess.White) != 1 {
		t.Errorf("White has %d pieces, want 1", g.board.Count(chess.White))
	}

	last, ok := g.LastMove()
	if !ok || !last.Attrs.EnPassant || !last.Attrs.Captures {
		t.Errorf("LastMove() = %+v, want an en passant capture", last)
	}
}

func TestApply_Promotion(t *testing.T) {
	tests := []struct {
		name      string
		promotion chess.PieceKind
		want      chess.PieceKind
		wantCheck bool
	}{
		{"default queen", chess.NoKind, chess.Queen, true},
		{"rook", chess.Rook, chess.Rook, true},
		{"knight", chess.Knight, chess.Knight, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, "k7/4P3/8/8/8/8/8/4K3")
			rm := g.Resolve(chess.Move{From: sq("e7"), To: sq("e8"), Promotion: tt.promotion}, chess.White, chess.NoKind)
			if err := g.Apply(rm); err != nil {
				t.Fatalf("Apply() failed: %v", err)
			}

			p, team, ok := g.board.At(sq("e8"))
			if !ok || team != chess.White || p.Kind != tt.want || !p.Moved {
				t.Errorf("e8 holds %+v (%s), want moved White %s", p, team, tt.want)
			}
			if !g.board.IsEmpty(sq("e7")) {
				t.Error("e7 should be empty")
			}

			last, _ := g.LastMove()
			if last.Attrs.Checks != tt.wantCheck {
				t.Errorf("LastMove().Attrs.Checks = %v, want %v", last.Attrs.Checks, tt.wantCheck)
			}
		})
	}
}

func TestApply_CapturePromotion(t *testing.T) {
	g := newTestGame(t, "3rk3/4P3/8/8/8/8/8/4K3")
	play(t, g, "e7d8")

	if kind, team := pieceAt(g, "d8"); kind != chess.Queen || team != chess.White {
		t.Errorf("d8 holds %s %s, want White Queen", team, kind)
	}
	if g.board.Count(chess.Black) != 1 {
		t.Errorf("Black has %d pieces, want 1", g.board.Count(chess.Black))
	}
	last, _ := g.LastMove()
	if !last.Attrs.Captures || !last.Attrs.Promotes || !last.Attrs.Checks {
		t.Errorf("LastMove().Attrs = %+v, want capture, promotion and check", last.Attrs)
	}
}

func TestApply_ReversibleCounter(t *testing.T) {
	g := newTestGame(t, InitialPlacement)

	steps := []struct {
		move string
		want int
	}{
		{"g1f3", 1},
		{"g8f6", 2},
		{"e2e4", 0},
		{"b8c6", 1},
		{"f3e5", 2},
		{"c6e5", 0},
	}

	for _, step := range steps {
		play(t, g, step.move)
		if got := g.ReversiblePlies(); got != step.want {
			t.Errorf("after %s ReversiblePlies() = %d, want %d", step.move, got, step.want)
		}
	}

	if got := len(g.History()); got != len(steps)+1 {
		t.Errorf("len(History()) = %d, want %d", got, len(steps)+1)
	}
	if g.Plies() != len(steps) {
		t.Errorf("Plies() = %d, want %d", g.Plies(), len(steps))
	}
}

func TestApply_Refusals(t *testing.T) {
	tests := []struct {
		name    string
		rm      func(g *Game) chess.ResolvedMove
		wantErr error
	}{
		{
			name: "invalid move",
			rm: func(g *Game) chess.ResolvedMove {
				return g.Resolve(mv("e2", "e5"), chess.White, chess.NoKind)
			},
			wantErr: chesserrors.ErrIllegalMove,
		},
		{
			name: "kind left unspecified",
			rm: func(g *Game) chess.ResolvedMove {
				return chess.ResolvedMove{Valid: true, Team: chess.White, Move: mv("e2", "e4")}
			},
			wantErr: chesserrors.ErrImpreciseMove,
		},
		{
			name: "wrong kind",
			rm: func(g *Game) chess.ResolvedMove {
				return chess.ResolvedMove{Valid: true, Team: chess.White, Kind: chess.Queen, Move: mv("e2", "e4")}
			},
			wantErr: chesserrors.ErrIllegalMove,
		},
		{
			name: "forged validity",
			rm: func(g *Game) chess.ResolvedMove {
				return chess.ResolvedMove{Valid: true, Team: chess.White, Kind: chess.Pawn, Move: mv("e2", "e5")}
			},
			wantErr: chesserrors.ErrIllegalMove,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, InitialPlacement)
			before := g.board.Fingerprint()

			err := g.Apply(tt.rm(g))
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Apply() error = %v, want %v", err, tt.wantErr)
			}
			if g.board.Fingerprint() != before {
				t.Error("refused move changed the board")
			}
			if g.Plies() != 0 {
				t.Errorf("Plies() = %d, want 0", g.Plies())
			}
		})
	}
}

func TestApply_StaleMove(t *testing.T) {
	g := newTestGame(t, InitialPlacement)
	rm := g.Resolve(mv("e2", "e4"), chess.White, chess.NoKind)
	if err := g.Apply(rm); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	if err := g.Apply(rm); !errors.Is(err, chesserrors.ErrIllegalMove) {
		t.Errorf("replaying a stale move: error = %v, want ErrIllegalMove", err)
	}
}

func TestApply_MissingPiece(t *testing.T) {
	g := newTestGame(t, InitialPlacement)
	rm := chess.ResolvedMove{Valid: true, Team: chess.White, Kind: chess.Rook, Move: mv("d4", "d5")}

	if err := g.applyPieceMove(rm); !errors.Is(err, chesserrors.ErrInconsistentBoard) {
		t.Errorf("applyPieceMove() error = %v, want ErrInconsistentBoard", err)
	}
	if err := g.applyCastle(mv("d4", "h4")); !errors.Is(err, chesserrors.ErrInconsistentBoard) {
		t.Errorf("applyCastle() error = %v, want ErrInconsistentBoard", err)
	}
}

func TestMustKing_PanicsWithoutKing(t *testing.T) {
	board := &Board{pieces: [2]map[chess.Square]chess.Piece{
		{sq("e1"): chess.NewPiece(chess.King, chess.White)},
		{},
	}}
	g := &Game{board: board}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, chesserrors.ErrInconsistentBoard) {
			t.Errorf("recovered %v, want ErrInconsistentBoard", r)
		}
	}()
	g.IsChecked(chess.Black)
}
