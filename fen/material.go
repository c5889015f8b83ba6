package fen

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// PieceCount is the number of copies of one piece on a board.
type PieceCount struct {
	Piece Piece
	Count int
}

// Material lists every piece present on the board with its count,
// white pieces first, each color ordered pawn to king.
func (b *Board) Material() []PieceCount {
	counts := make(map[Piece]int)
	for r := range b.cells {
		for _, p := range b.cells[r] {
			if p != NoPiece {
				counts[p]++
			}
		}
	}
	pieces := maps.Keys(counts)
	slices.Sort(pieces)
	out := make([]PieceCount, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, PieceCount{Piece: p, Count: counts[p]})
	}
	return out
}
