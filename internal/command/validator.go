package command

import "github.com/hailam/voicechess/internal/board"

// Validate reports whether the command resolves against the position: Resign
// always does, castles when the respective castle is legal, Promote when a
// pawn can promote, and Move/Capture when exactly one legal move matches.
// Callers needing to distinguish no-match from ambiguous should inspect
// MatchingMoves themselves.
func Validate(cmd Command, pos *board.Position) bool {
	switch cmd.Action {
	case ActionResign:
		return true
	case ActionShortCastle:
		return pos.CanCastleKingside()
	case ActionLongCastle:
		return pos.CanCastleQueenside()
	case ActionPromote:
		return canPromote(pos)
	case ActionMove, ActionCapture:
		return len(MatchingMoves(cmd, pos)) == 1
	default:
		return false
	}
}

// MatchingMoves enumerates the legal moves matching a Move or Capture
// command's descriptors. Castling is excluded — it is commanded explicitly.
func MatchingMoves(cmd Command, pos *board.Position) []board.Move {
	if cmd.Action != ActionMove && cmd.Action != ActionCapture {
		return nil
	}

	var matches []board.Move
	for _, start := range startSquares(cmd.Start, pos) {
		for _, m := range pos.LegalMovesFrom(start) {
			if m.IsCastling() {
				continue
			}
			if !endMatches(cmd.End, m, pos) {
				continue
			}
			if cmd.Action == ActionCapture && !isCapture(m, pos) {
				continue
			}
			matches = append(matches, m)
		}
	}
	return matches
}

// Resolve returns the concrete move a command denotes, when it denotes
// exactly one: the matched move for Move/Capture, or the king's castle move
// for a castle command. Resign and Promote carry no move.
func Resolve(cmd Command, pos *board.Position) (board.Move, bool) {
	switch cmd.Action {
	case ActionShortCastle, ActionLongCastle:
		king := pos.KingSquare(pos.SideToMove())
		for _, m := range pos.LegalMovesFrom(king) {
			if !m.IsCastling() {
				continue
			}
			kingside := m.To.File() > m.From.File()
			if kingside == (cmd.Action == ActionShortCastle) {
				return m, true
			}
		}
		return board.Move{}, false
	case ActionMove, ActionCapture:
		matches := MatchingMoves(cmd, pos)
		if len(matches) == 1 {
			return matches[0], true
		}
		return board.Move{}, false
	default:
		return board.Move{}, false
	}
}

// startSquares resolves the start descriptor to candidate origin squares,
// all holding side-to-move pieces.
func startSquares(info Info, pos *board.Position) []board.Square {
	us := pos.SideToMove()

	switch info.Kind {
	case InfoSquare:
		piece := pos.PieceAt(info.Square)
		if piece != board.NoPiece && piece.Color() == us {
			return []board.Square{info.Square}
		}
		return nil
	case InfoFile:
		var squares []board.Square
		for rank := 0; rank < 8; rank++ {
			sq := board.NewSquare(info.File, rank)
			piece := pos.PieceAt(sq)
			if piece != board.NoPiece && piece.Color() == us {
				squares = append(squares, sq)
			}
		}
		return squares
	case InfoPiece:
		return pos.FindPieces(info.Piece, us)
	default:
		var squares []board.Square
		for sq := board.A1; sq <= board.H8; sq++ {
			piece := pos.PieceAt(sq)
			if piece != board.NoPiece && piece.Color() == us {
				squares = append(squares, sq)
			}
		}
		return squares
	}
}

// endMatches reports whether the move's destination satisfies the end
// descriptor. A piece-kind descriptor names a target piece of the opposite
// color, not a destination.
func endMatches(info Info, m board.Move, pos *board.Position) bool {
	switch info.Kind {
	case InfoSquare:
		return m.To == info.Square
	case InfoFile:
		return m.To.File() == info.File
	case InfoPiece:
		target := pos.PieceAt(m.To)
		return target != board.NoPiece &&
			target.Color() == pos.SideToMove().Other() &&
			target.Type() == info.Piece
	default:
		return true
	}
}

// isCapture reports whether the move takes a piece: the destination holds an
// opponent piece, or a pawn lands on the en passant target.
func isCapture(m board.Move, pos *board.Position) bool {
	target := pos.PieceAt(m.To)
	if target != board.NoPiece && target.Color() == pos.SideToMove().Other() {
		return true
	}
	return m.Piece.Type() == board.Pawn && m.To == pos.EnPassantTarget() && m.To != board.NoSquare
}

// canPromote reports whether any legal pawn move promotes.
func canPromote(pos *board.Position) bool {
	for _, sq := range pos.FindPieces(board.Pawn, pos.SideToMove()) {
		for _, m := range pos.LegalMovesFrom(sq) {
			if m.IsPromotion() {
				return true
			}
		}
	}
	return false
}
