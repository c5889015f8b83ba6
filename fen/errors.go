package fen

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField       = errors.New("missing field")
	ErrMalformedPlacement = errors.New("malformed piece placement")
	ErrInvalidPieceChar   = errors.New("invalid piece character")
	ErrInvalidRunLength   = errors.New("invalid empty-square run length")
	ErrFileOverflow       = errors.New("rank runs past file h")

	// Returned only by a strict parser.
	ErrInvalidActiveColor = errors.New("invalid active color")
	ErrInvalidCastling    = errors.New("invalid castling availability")
	ErrInvalidEnPassant   = errors.New("invalid en passant square")
	ErrInvalidCounter     = errors.New("invalid move counter")
	ErrTrailingFields     = errors.New("unexpected trailing fields")
)

// Field names one of the six space-separated FEN fields.
type Field string

const (
	FieldPlacement   Field = "placement"
	FieldActiveColor Field = "active-color"
	FieldCastling    Field = "castling"
	FieldEnPassant   Field = "en-passant"
	FieldHalfmove    Field = "halfmove"
	FieldFullmove    Field = "fullmove"
	FieldTrailing    Field = "trailing"
)

// fieldOrder is the positional layout of a FEN record.
var fieldOrder = [...]Field{
	FieldPlacement,
	FieldActiveColor,
	FieldCastling,
	FieldEnPassant,
	FieldHalfmove,
	FieldFullmove,
}

// FieldError reports a problem with a single FEN field.
type FieldError struct {
	Field Field
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("fen: %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("fen: %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// PlacementError reports a problem in the piece placement field.
// Rank is the rank being decoded, or 0 when the field as a whole is at fault.
type PlacementError struct {
	Rank int
	Row  string
	Err  error
}

func (e *PlacementError) Error() string {
	if e.Rank == 0 {
		return fmt.Sprintf("fen: placement: %v", e.Err)
	}
	return fmt.Sprintf("fen: placement rank %d %q: %v", e.Rank, e.Row, e.Err)
}

func (e *PlacementError) Unwrap() error { return e.Err }

// PieceCharError is returned when a character is not one of the twelve FEN piece letters.
type PieceCharError struct {
	Char rune
}

func (e *PieceCharError) Error() string {
	return fmt.Sprintf("%v %q", ErrInvalidPieceChar, e.Char)
}

func (e *PieceCharError) Is(target error) bool { return target == ErrInvalidPieceChar }
