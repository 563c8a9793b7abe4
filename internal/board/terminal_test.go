package board

import "testing"

func TestTerminalStateCheckmate(t *testing.T) {
	// Back-rank mate: black king h8 boxed in by its own pawns.
	pos := mustParseFEN(t, "R6k/6pp/8/8/8/8/8/K7 b - - 0 1")

	if got := pos.TerminalState(); got != Checkmate {
		t.Errorf("terminal state = %v, want checkmate", got)
	}
	if !pos.IsInCheck() {
		t.Error("checkmate implies check")
	}
	if len(pos.AllLegalMoves()) != 0 {
		t.Error("checkmate implies no legal moves")
	}
}

func TestTerminalStateNotCheckmate(t *testing.T) {
	// The king can capture the giving rook.
	pos := mustParseFEN(t, "6Rk/8/8/8/8/8/8/K7 b - - 0 1")

	if got := pos.TerminalState(); got != Running {
		t.Errorf("terminal state = %v, want running", got)
	}
}

func TestTerminalStateStalemate(t *testing.T) {
	// Classic corner stalemate: black king a8, white queen c7, white king a6.
	pos := mustParseFEN(t, "k7/2Q5/K7/8/8/8/8/8 b - - 0 1")

	if pos.IsInCheck() {
		t.Fatal("stalemate position must not be check")
	}
	if got := pos.TerminalState(); got != Stalemate {
		t.Errorf("terminal state = %v, want stalemate", got)
	}
}

func TestTerminalStateFiftyMoveDraw(t *testing.T) {
	pos := mustParseFEN(t, "4k3/8/8/8/8/8/4R3/4K3 w - - 100 80")

	if got := pos.TerminalState(); got != DrawFiftyMove {
		t.Errorf("terminal state = %v, want fifty-move draw", got)
	}
	if !pos.TerminalState().IsDraw() {
		t.Error("fifty-move state should report as a draw")
	}
}

func TestTerminalStateInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want TerminalState
	}{
		{"king vs king", "8/8/4k3/8/8/3K4/8/8 w - - 0 1", DrawInsufficientMaterial},
		{"king and knight vs king", "8/8/4k3/8/8/3KN3/8/8 w - - 0 1", DrawInsufficientMaterial},
		{"king and bishop vs king", "8/8/4k3/8/8/3KB3/8/8 w - - 0 1", DrawInsufficientMaterial},
		{"same-colored bishops", "8/8/4kb2/8/8/3KB3/8/8 w - - 0 1", DrawInsufficientMaterial},
		{"opposite-colored bishops", "8/8/4k1b1/8/8/3KB3/8/8 w - - 0 1", Running},
		{"two knights", "8/8/4k3/8/8/3KNN2/8/8 w - - 0 1", Running},
		{"knight vs bishop", "8/8/4kb2/8/8/3KN3/8/8 w - - 0 1", Running},
		{"lone pawn", "8/8/4k3/8/8/3K4/4P3/8 w - - 0 1", Running},
		{"lone rook", "8/8/4k3/8/8/3KR3/8/8 w - - 0 1", Running},
		{"lone queen", "8/8/4k3/8/8/3KQ3/8/8 w - - 0 1", Running},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParseFEN(t, tc.fen)
			if got := pos.TerminalState(); got != tc.want {
				t.Errorf("terminal state = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestEnPassantTargetOnlyAfterDoublePush(t *testing.T) {
	pos := NewPosition()

	pos.ExecuteMove(NewMove(WhitePawn, E2, E4))
	if got := pos.EnPassantTarget(); got != E3 {
		t.Fatalf("en passant target = %v, want e3", got)
	}

	pos.ExecuteMove(NewMove(BlackKnight, G8, F6))
	if got := pos.EnPassantTarget(); got != NoSquare {
		t.Errorf("en passant target = %v, want none after a non-pawn move", got)
	}

	pos.ExecuteMove(NewMove(WhitePawn, E4, E5))
	if got := pos.EnPassantTarget(); got != NoSquare {
		t.Errorf("en passant target = %v, want none after a single push", got)
	}
}
