// Package command turns transcribed utterances into structured move intents
// and resolves them against a position.
package command

import "github.com/hailam/voicechess/internal/board"

// Action is the verb of a command.
type Action int

const (
	ActionNone Action = iota
	ActionMove
	ActionCapture
	ActionResign
	ActionPromote
	ActionShortCastle
	ActionLongCastle
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case ActionMove:
		return "move"
	case ActionCapture:
		return "capture"
	case ActionResign:
		return "resign"
	case ActionPromote:
		return "promote"
	case ActionShortCastle:
		return "castle kingside"
	case ActionLongCastle:
		return "castle queenside"
	default:
		return "none"
	}
}

// InfoKind tags the variant held by an Info.
type InfoKind int

const (
	InfoNone InfoKind = iota
	InfoPiece
	InfoFile
	InfoSquare
)

// Info is a closed tagged value describing one end of a command: a piece
// kind, a file, or a square. The zero value means absent.
type Info struct {
	Kind   InfoKind
	Piece  board.PieceType
	File   int
	Square board.Square
}

// PieceInfo constructs a piece-kind descriptor.
func PieceInfo(pt board.PieceType) Info {
	return Info{Kind: InfoPiece, Piece: pt}
}

// FileInfo constructs a file descriptor (0=a, 7=h).
func FileInfo(file int) Info {
	return Info{Kind: InfoFile, File: file}
}

// SquareInfo constructs a square descriptor.
func SquareInfo(sq board.Square) Info {
	return Info{Kind: InfoSquare, Square: sq}
}

// String returns a readable form of the descriptor.
func (i Info) String() string {
	switch i.Kind {
	case InfoPiece:
		return i.Piece.String()
	case InfoFile:
		return string(rune('a' + i.File))
	case InfoSquare:
		return i.Square.String()
	default:
		return "-"
	}
}

// Command is a parsed user intent: an optional start descriptor, an action,
// and an optional end descriptor.
type Command struct {
	Start  Info
	Action Action
	End    Info
}

// String returns a readable form of the command.
func (c Command) String() string {
	return c.Start.String() + " " + c.Action.String() + " " + c.End.String()
}
