package fen

import "math/rand"

// Zobrist hashing tables for pieces, castling, en passant, and side to move.
var zobristPiece [15][64]uint64 // indexed by piece code, then (rank-1)*8 + (file-1)
var zobristCastle [16]uint64    // one key per castling rights mask
var zobristEnPassant [8]uint64  // en passant file a-h
var zobristSide uint64          // Black to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are stable across runs.
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := 0; p < 15; p++ {
		for sq := 0; sq < 64; sq++ {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for cr := 0; cr < 16; cr++ {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := 0; f < 8; f++ {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Hash returns the Zobrist key of the position. Move counters are not part of it,
// and the en passant file only counts when the field names a real square.
func (g *GameState) Hash() uint64 {
	var key uint64

	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			if p := g.board.cells[r][f]; p != NoPiece {
				key ^= zobristPiece[p][r*8+f]
			}
		}
	}

	if g.activeColor == Black {
		key ^= zobristSide
	}

	key ^= zobristCastle[int(g.castling&AllCastling)]

	if sq, ok := g.EnPassantSquare(); ok {
		key ^= zobristEnPassant[sq.File-1]
	}
	return key
}
