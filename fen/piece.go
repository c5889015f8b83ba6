package fen

// Color identifies a side.
type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// String returns the FEN active-color letter.
func (c Color) String() string {
	if c == Black {
		return "b"
	}
	return "w"
}

// PieceKind is a colorless piece type.
type PieceKind uint8

const (
	NoKind PieceKind = 0
	Pawn   PieceKind = 1
	Knight PieceKind = 2
	Bishop PieceKind = 3
	Rook   PieceKind = 4
	Queen  PieceKind = 5
	King   PieceKind = 6
)

var kindLetters = [...]byte{0, 'p', 'n', 'b', 'r', 'q', 'k'}

// Piece is a colored piece or NoPiece.
type Piece uint8

const (
	NoPiece     Piece = 0
	WhitePawn   Piece = 1
	WhiteKnight Piece = 2
	WhiteBishop Piece = 3
	WhiteRook   Piece = 4
	WhiteQueen  Piece = 5
	WhiteKing   Piece = 6

	// Black pieces are encoded as (white piece | 8):
	// piece & 7 gives the kind, piece & 8 != 0 marks Black.
	BlackPawn   Piece = 1 | 8
	BlackKnight Piece = 2 | 8
	BlackBishop Piece = 3 | 8
	BlackRook   Piece = 4 | 8
	BlackQueen  Piece = 5 | 8
	BlackKing   Piece = 6 | 8
)

// NewPiece combines a color and a kind. NoKind yields NoPiece.
func NewPiece(c Color, k PieceKind) Piece {
	if k == NoKind || k > King {
		return NoPiece
	}
	if c == Black {
		return Piece(k) | 8
	}
	return Piece(k)
}

// Kind returns the colorless type of the piece.
func (p Piece) Kind() PieceKind { return PieceKind(p & 7) }

// Color returns the side that owns the piece. NoPiece reports White.
func (p Piece) Color() Color {
	if p&8 != 0 {
		return Black
	}
	return White
}

// Char returns the FEN letter for p, or '.' for NoPiece.
func (p Piece) Char() rune {
	k := p.Kind()
	if p == NoPiece || k > King {
		return '.'
	}
	ch := rune(kindLetters[k])
	if p.Color() == White {
		ch -= 'a' - 'A'
	}
	return ch
}

func (p Piece) String() string { return string(p.Char()) }

// PieceFromChar decodes a single FEN piece letter.
func PieceFromChar(ch rune) (Piece, error) {
	switch ch {
	case 'P':
		return WhitePawn, nil
	case 'N':
		return WhiteKnight, nil
	case 'B':
		return WhiteBishop, nil
	case 'R':
		return WhiteRook, nil
	case 'Q':
		return WhiteQueen, nil
	case 'K':
		return WhiteKing, nil
	case 'p':
		return BlackPawn, nil
	case 'n':
		return BlackKnight, nil
	case 'b':
		return BlackBishop, nil
	case 'r':
		return BlackRook, nil
	case 'q':
		return BlackQueen, nil
	case 'k':
		return BlackKing, nil
	default:
		return NoPiece, &PieceCharError{Char: ch}
	}
}
