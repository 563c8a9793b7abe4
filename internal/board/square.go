// Package board implements the chess rules engine: board representation,
// legal move generation, and terminal-state detection.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// squareNames maps square index to algebraic name; squareIndex is the inverse.
// Both are built once at package init.
var (
	squareNames [64]string
	squareIndex map[string]Square
)

func init() {
	squareIndex = make(map[string]Square, 64)
	for sq := A1; sq <= H8; sq++ {
		name := string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
		squareNames[sq] = name
		squareIndex[name] = sq
	}
}

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return squareNames[sq]
}

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// OnBoard returns true if both coordinates are within the board.
func OnBoard(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	sq, ok := squareIndex[s]
	if !ok {
		return NoSquare, fmt.Errorf("invalid square: %s", s)
	}
	return sq, nil
}

// IsValid returns true if the square is a valid board square (0-63).
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

// IsLight returns true if the square is light-colored.
// A square is light when file+rank is even under this mapping.
func (sq Square) IsLight() bool {
	return (sq.File()+sq.Rank())%2 == 0
}
