package board

import "testing"

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		StartFEN,
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"8/8/8/3Pp3/8/8/8/4K2k w - e6 0 1",
		"8/8/4k3/8/8/3K4/8/8 w - - 12 34",
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}

	for _, fen := range fens {
		pos, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if got := pos.ToFEN(); got != fen {
			t.Errorf("round trip of %q = %q", fen, got)
		}
	}
}

func TestParseFENDefaultsClockFields(t *testing.T) {
	pos, err := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	if pos.HalfMoveClock() != 0 {
		t.Errorf("half-move clock = %d, want 0", pos.HalfMoveClock())
	}
	if pos.FullMoveNumber() != 1 {
		t.Errorf("full-move number = %d, want 1", pos.FullMoveNumber())
	}
	// The emitter always produces all six fields.
	if got, want := pos.ToFEN(), StartFEN; got != want {
		t.Errorf("ToFEN() = %q, want %q", got, want)
	}
}

func TestParseFENErrors(t *testing.T) {
	bad := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",          // seven ranks
		"rnbqkbnr/pppppppp/9/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", // bad digit
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", // bad side
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w XYZ - 0 1",  // bad castling
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",
		"8/8/8/8/8/8/8/8 w - - 0 1",       // no kings
		"4k3/8/8/8/8/8/8/4K3 w - - -1 1",  // negative clock
		"p3k3/8/8/8/8/8/8/4K2P w - - 0 1", // pawns on back ranks
	}

	for _, fen := range bad {
		if _, err := ParseFEN(fen); err == nil {
			t.Errorf("ParseFEN(%q) succeeded, want error", fen)
		}
	}
}

func TestParseFENStartingPosition(t *testing.T) {
	pos := NewPosition()

	if pos.SideToMove() != White {
		t.Errorf("side to move = %v, want White", pos.SideToMove())
	}
	if pos.CastlingRights() != AllCastling {
		t.Errorf("castling rights = %v, want KQkq", pos.CastlingRights())
	}
	if pos.EnPassantTarget() != NoSquare {
		t.Errorf("en passant = %v, want none", pos.EnPassantTarget())
	}
	if got := pos.PieceAt(E1); got != WhiteKing {
		t.Errorf("piece at e1 = %v, want white king", got)
	}
	if got := pos.PieceAt(D8); got != BlackQueen {
		t.Errorf("piece at d8 = %v, want black queen", got)
	}
	if got := pos.KingSquare(Black); got != E8 {
		t.Errorf("black king square = %v, want e8", got)
	}
	if got := len(pos.FindPieces(Pawn, White)); got != 8 {
		t.Errorf("white pawns = %d, want 8", got)
	}
}
