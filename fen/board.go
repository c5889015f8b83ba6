package fen

import "fmt"

// Coordinate addresses a square by 1-based rank and file.
type Coordinate struct {
	Rank int
	File int
}

// Valid reports whether both components are in [1,8].
func (c Coordinate) Valid() bool {
	return c.Rank >= 1 && c.Rank <= 8 && c.File >= 1 && c.File <= 8
}

// String returns the algebraic name of the square, e.g. "e4".
func (c Coordinate) String() string {
	if !c.Valid() {
		return "-"
	}
	return string([]byte{byte('a' + c.File - 1), byte('0' + c.Rank)})
}

// ParseSquare decodes an algebraic square name such as "c6".
func ParseSquare(s string) (Coordinate, bool) {
	if len(s) != 2 {
		return Coordinate{}, false
	}
	c := Coordinate{File: int(s[0]) - 'a' + 1, Rank: int(s[1]) - '0'}
	return c, c.Valid()
}

// Board is an 8x8 grid of pieces indexed by (rank-1, file-1).
// The zero value is an empty board.
type Board struct {
	cells [8][8]Piece
}

// NewBoard returns a board with all 64 squares empty.
func NewBoard() *Board { return &Board{} }

// InsertPiece puts p on (rank, file) and returns whatever was there before,
// NoPiece if the square was empty. It panics if the coordinate is off the board.
func (b *Board) InsertPiece(rank, file int, p Piece) Piece {
	mustBeOnBoard(rank, file)
	prev := b.cells[rank-1][file-1]
	b.cells[rank-1][file-1] = p
	return prev
}

// PieceAt returns the piece on (rank, file). It panics if the coordinate is off the board.
func (b *Board) PieceAt(rank, file int) Piece {
	mustBeOnBoard(rank, file)
	return b.cells[rank-1][file-1]
}

// Count returns the number of occupied squares.
func (b *Board) Count() int {
	n := 0
	for r := range b.cells {
		for f := range b.cells[r] {
			if b.cells[r][f] != NoPiece {
				n++
			}
		}
	}
	return n
}

// Equal reports whether both boards hold the same pieces on the same squares.
func (b *Board) Equal(other *Board) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.cells == other.cells
}

func mustBeOnBoard(rank, file int) {
	if rank < 1 || rank > 8 || file < 1 || file > 8 {
		panic(fmt.Sprintf("fen: square (rank %d, file %d) is off the board", rank, file))
	}
}
