package board

// simBoard is a lightweight board for hypothetical move application during
// legality checks. It carries only what attack detection needs: the mailbox
// array and the king squares. Stack-allocated, no GC pressure.
type simBoard struct {
	squares    [64]Piece
	kingSquare [2]Square
}

// sim creates a simBoard snapshot of the position.
func (p *Position) sim() simBoard {
	return simBoard{
		squares:    p.squares,
		kingSquare: p.kingSquare,
	}
}

// applyMove applies a move to the simBoard (no validation). enPassant is the
// position's en passant target before the move, used to remove the bypassed
// pawn on an en passant capture.
func (v *simBoard) applyMove(m Move, enPassant Square) {
	us := m.Piece.Color()
	pt := m.Piece.Type()

	// En passant capture removes the pawn behind the target square.
	if pt == Pawn && m.To == enPassant && enPassant != NoSquare {
		if us == White {
			v.squares[m.To-8] = NoPiece
		} else {
			v.squares[m.To+8] = NoPiece
		}
	}

	// Castling relocates the rook on the king's rank.
	if m.IsCastling() {
		rank := m.From.Rank()
		if m.To.File() > m.From.File() {
			v.squares[NewSquare(5, rank)] = v.squares[NewSquare(7, rank)]
			v.squares[NewSquare(7, rank)] = NoPiece
		} else {
			v.squares[NewSquare(3, rank)] = v.squares[NewSquare(0, rank)]
			v.squares[NewSquare(0, rank)] = NoPiece
		}
	}

	v.squares[m.To] = m.Piece
	v.squares[m.From] = NoPiece

	if pt == King {
		v.kingSquare[us] = m.To
	}
}

// kingAttacked reports whether the given color's king is attacked.
func (v *simBoard) kingAttacked(c Color) bool {
	return attackedBy(&v.squares, v.kingSquare[c], c.Other())
}
