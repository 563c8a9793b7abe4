package board

// CanCastleKingside returns true if the side to move may castle kingside:
// the right is held, the king is not in check, the f and g squares are empty,
// and neither the squares the king crosses nor its destination is attacked.
func (p *Position) CanCastleKingside() bool {
	us := p.sideToMove
	them := us.Other()
	rank := homeRank(us)

	if !p.castlingRights.CanCastle(us, true) {
		return false
	}

	// A right can survive in a hand-written FEN even when the king or rook
	// is off its home square; treat it as void.
	if p.kingSquare[us] != NewSquare(4, rank) || p.squares[NewSquare(7, rank)] != NewPiece(Rook, us) {
		return false
	}

	fSq, gSq := NewSquare(5, rank), NewSquare(6, rank)
	if p.squares[fSq] != NoPiece || p.squares[gSq] != NoPiece {
		return false
	}

	eSq := NewSquare(4, rank)
	return !p.IsSquareAttacked(eSq, them) &&
		!p.IsSquareAttacked(fSq, them) &&
		!p.IsSquareAttacked(gSq, them)
}

// CanCastleQueenside returns true if the side to move may castle queenside:
// the right is held, the king is not in check, the b, c, and d squares are
// empty, and neither the squares the king crosses nor its destination is
// attacked.
func (p *Position) CanCastleQueenside() bool {
	us := p.sideToMove
	them := us.Other()
	rank := homeRank(us)

	if !p.castlingRights.CanCastle(us, false) {
		return false
	}

	if p.kingSquare[us] != NewSquare(4, rank) || p.squares[NewSquare(0, rank)] != NewPiece(Rook, us) {
		return false
	}

	bSq, cSq, dSq := NewSquare(1, rank), NewSquare(2, rank), NewSquare(3, rank)
	if p.squares[bSq] != NoPiece || p.squares[cSq] != NoPiece || p.squares[dSq] != NoPiece {
		return false
	}

	eSq := NewSquare(4, rank)
	return !p.IsSquareAttacked(eSq, them) &&
		!p.IsSquareAttacked(dSq, them) &&
		!p.IsSquareAttacked(cSq, them)
}

// castlingMoves emits the king destination moves for every castle currently
// legal for the side to move.
func (p *Position) castlingMoves() []Move {
	us := p.sideToMove
	rank := homeRank(us)
	king := NewPiece(King, us)
	from := NewSquare(4, rank)

	var moves []Move
	if p.CanCastleKingside() {
		moves = append(moves, NewMove(king, from, NewSquare(6, rank)))
	}
	if p.CanCastleQueenside() {
		moves = append(moves, NewMove(king, from, NewSquare(2, rank)))
	}
	return moves
}

// homeRank returns the back rank for the given color.
func homeRank(c Color) int {
	if c == White {
		return 0
	}
	return 7
}
