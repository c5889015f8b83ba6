package fen

import (
	"strconv"
	"strings"
)

// StartPosition is the FEN of the standard initial chess position.
const StartPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// CastlingRights is a bit set of the four castling availabilities.
type CastlingRights uint8

const (
	// White king-side (short) castling
	CastlingWhiteK CastlingRights = 1 << iota
	// White queen-side (long) castling
	CastlingWhiteQ
	// Black king-side castling
	CastlingBlackK
	// Black queen-side castling
	CastlingBlackQ

	NoCastling  CastlingRights = 0
	AllCastling                = CastlingWhiteK | CastlingWhiteQ | CastlingBlackK | CastlingBlackQ
)

var castlingLetters = [...]struct {
	flag CastlingRights
	ch   byte
}{
	{CastlingWhiteK, 'K'},
	{CastlingWhiteQ, 'Q'},
	{CastlingBlackK, 'k'},
	{CastlingBlackQ, 'q'},
}

// Has reports whether every right in mask is present.
func (c CastlingRights) Has(mask CastlingRights) bool { return c&mask == mask }

// String returns the canonical FEN castling field ("KQkq" order, "-" when empty).
func (c CastlingRights) String() string {
	if c&AllCastling == 0 {
		return "-"
	}
	var sb strings.Builder
	for _, l := range castlingLetters {
		if c&l.flag != 0 {
			sb.WriteByte(l.ch)
		}
	}
	return sb.String()
}

// GameState is a decoded FEN position. It is built only by a Parser and
// cannot be changed afterwards.
type GameState struct {
	board          Board
	activeColor    Color
	castling       CastlingRights
	enPassant      string
	halfmoveClock  uint32
	fullmoveNumber uint32
}

// Board returns a copy of the piece placement.
func (g *GameState) Board() *Board {
	b := g.board
	return &b
}

// PieceAt is shorthand for Board().PieceAt without the copy.
func (g *GameState) PieceAt(rank, file int) Piece { return g.board.PieceAt(rank, file) }

// ActiveColor reports the side to move.
func (g *GameState) ActiveColor() Color { return g.activeColor }

// CastlingRights returns all four castling flags as a bit set.
func (g *GameState) CastlingRights() CastlingRights { return g.castling }

func (g *GameState) WhiteKingSide() bool  { return g.castling.Has(CastlingWhiteK) }
func (g *GameState) WhiteQueenSide() bool { return g.castling.Has(CastlingWhiteQ) }
func (g *GameState) BlackKingSide() bool  { return g.castling.Has(CastlingBlackK) }
func (g *GameState) BlackQueenSide() bool { return g.castling.Has(CastlingBlackQ) }

// EnPassant returns the en passant field exactly as it appeared in the FEN.
func (g *GameState) EnPassant() string { return g.enPassant }

// EnPassantSquare decodes the en passant field. ok is false for "-" or
// anything that is not an algebraic square.
func (g *GameState) EnPassantSquare() (sq Coordinate, ok bool) { return ParseSquare(g.enPassant) }

// HalfmoveClock returns the number of half-moves since the last capture or pawn advance.
func (g *GameState) HalfmoveClock() uint32 { return g.halfmoveClock }

// FullmoveNumber returns the move counter, incremented after Black's move.
func (g *GameState) FullmoveNumber() uint32 { return g.fullmoveNumber }

// Equal reports whether two states decode to the same position and counters.
func (g *GameState) Equal(other *GameState) bool {
	if g == nil || other == nil {
		return g == other
	}
	return *g == *other
}

// FEN encodes the state back into Forsyth-Edwards Notation.
func (g *GameState) FEN() string {
	var sb strings.Builder

	// 1. Piece placement
	for rank := 8; rank >= 1; rank-- {
		empty := 0
		for file := 1; file <= 8; file++ {
			p := g.board.cells[rank-1][file-1]
			if p == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte('0' + byte(empty))
				empty = 0
			}
			sb.WriteRune(p.Char())
		}
		if empty > 0 {
			sb.WriteByte('0' + byte(empty))
		}
		if rank > 1 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')

	// 2. Side to move
	sb.WriteString(g.activeColor.String())
	sb.WriteByte(' ')

	// 3. Castling rights
	sb.WriteString(g.castling.String())
	sb.WriteByte(' ')

	// 4. En passant, verbatim
	sb.WriteString(g.enPassant)
	sb.WriteByte(' ')

	// 5-6. Counters
	sb.WriteString(strconv.FormatUint(uint64(g.halfmoveClock), 10))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatUint(uint64(g.fullmoveNumber), 10))
	return sb.String()
}

func (g *GameState) String() string { return g.FEN() }
