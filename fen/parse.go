package fen

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Parser decodes FEN strings into GameStates. The zero value is not usable;
// build one with NewParser. A Parser holds no mutable state and may be shared.
type Parser struct {
	strict bool
	logger *zap.Logger
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict rejects inputs the default parser tolerates: an active color
// other than w/b, unknown castling letters, malformed en passant squares,
// non-numeric counters and fields past the sixth.
func WithStrict(strict bool) Option {
	return func(p *Parser) { p.strict = strict }
}

// WithLogger routes parser diagnostics to l. Nil restores the no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		if l == nil {
			l = zap.NewNop()
		}
		p.logger = l
	}
}

// NewParser returns a lenient, silent parser unless opts say otherwise.
func NewParser(opts ...Option) *Parser {
	p := &Parser{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var defaultParser = NewParser()

// ParseFEN parses s with the default lenient parser.
func ParseFEN(s string) (*GameState, error) { return defaultParser.Parse(s) }

// MustParseFEN is like ParseFEN but panics on invalid input.
func MustParseFEN(s string) *GameState {
	gs, err := ParseFEN(s)
	if err != nil {
		panic(err)
	}
	return gs
}

// Parse decodes a complete FEN record. On error no GameState is returned.
func (p *Parser) Parse(s string) (*GameState, error) {
	gs, err := p.parse(s)
	if err != nil {
		p.logger.Debug("fen parse failed", zap.String("fen", s), zap.Error(err))
		return nil, err
	}
	return gs, nil
}

func (p *Parser) parse(s string) (*GameState, error) {
	fields := strings.Split(s, " ")
	if len(fields) < len(fieldOrder) {
		return nil, &FieldError{Field: fieldOrder[len(fields)], Err: ErrMissingField}
	}
	if p.strict && len(fields) > len(fieldOrder) {
		extra := strings.Join(fields[len(fieldOrder):], " ")
		return nil, &FieldError{Field: FieldTrailing, Value: extra, Err: ErrTrailingFields}
	}

	gs := &GameState{}
	if err := decodePlacement(fields[0], &gs.board); err != nil {
		return nil, err
	}

	var err error
	if gs.activeColor, err = p.activeColor(fields[1]); err != nil {
		return nil, err
	}
	if gs.castling, err = p.castling(fields[2]); err != nil {
		return nil, err
	}
	if gs.enPassant, err = p.enPassant(fields[3]); err != nil {
		return nil, err
	}
	if gs.halfmoveClock, err = p.counter(FieldHalfmove, fields[4]); err != nil {
		return nil, err
	}
	if gs.fullmoveNumber, err = p.counter(FieldFullmove, fields[5]); err != nil {
		return nil, err
	}
	return gs, nil
}

// decodePlacement fills board from the first FEN field, rank 8 first.
func decodePlacement(field string, board *Board) error {
	rows := strings.Split(field, "/")
	if len(rows) > 8 {
		return &PlacementError{Err: fmt.Errorf("%w: %d rows, want 8", ErrMalformedPlacement, len(rows))}
	}

	for i := 0; i < 8; i++ {
		rank := 8 - i
		if i >= len(rows) {
			return &PlacementError{Rank: rank, Err: fmt.Errorf("%w: %d rows, want 8", ErrMalformedPlacement, len(rows))}
		}
		row := rows[i]
		file := 1
		for _, ch := range row {
			if ch >= '0' && ch <= '9' {
				n := int(ch - '0')
				if n < 1 || n > 8 {
					return &PlacementError{Rank: rank, Row: row, Err: fmt.Errorf("%w: %c", ErrInvalidRunLength, ch)}
				}
				file += n
				if file > 9 {
					return &PlacementError{Rank: rank, Row: row, Err: ErrFileOverflow}
				}
				continue
			}
			piece, err := PieceFromChar(ch)
			if err != nil {
				return &PlacementError{Rank: rank, Row: row, Err: err}
			}
			if file > 8 {
				return &PlacementError{Rank: rank, Row: row, Err: ErrFileOverflow}
			}
			board.InsertPiece(rank, file, piece)
			file++
		}
		if file != 9 {
			return &PlacementError{Rank: rank, Row: row, Err: fmt.Errorf("%w: row covers %d files, want 8", ErrMalformedPlacement, file-1)}
		}
	}
	return nil
}

func (p *Parser) activeColor(v string) (Color, error) {
	switch v {
	case "w":
		return White, nil
	case "b":
		return Black, nil
	}
	if p.strict {
		return White, &FieldError{Field: FieldActiveColor, Value: v, Err: ErrInvalidActiveColor}
	}
	p.logger.Debug("unknown active color, assuming black", zap.String("value", v))
	return Black, nil
}

func (p *Parser) castling(v string) (CastlingRights, error) {
	if !p.strict {
		var c CastlingRights
		for _, l := range castlingLetters {
			if strings.IndexByte(v, l.ch) >= 0 {
				c |= l.flag
			}
		}
		return c, nil
	}

	if v == "-" {
		return NoCastling, nil
	}
	if v == "" {
		return NoCastling, &FieldError{Field: FieldCastling, Err: ErrInvalidCastling}
	}
	var c CastlingRights
	for i := 0; i < len(v); i++ {
		flag := castlingFlag(v[i])
		if flag == NoCastling || c&flag != 0 {
			return NoCastling, &FieldError{Field: FieldCastling, Value: v, Err: ErrInvalidCastling}
		}
		c |= flag
	}
	return c, nil
}

func castlingFlag(ch byte) CastlingRights {
	for _, l := range castlingLetters {
		if l.ch == ch {
			return l.flag
		}
	}
	return NoCastling
}

func (p *Parser) enPassant(v string) (string, error) {
	if !p.strict || v == "-" {
		return v, nil
	}
	sq, ok := ParseSquare(v)
	if !ok || (sq.Rank != 3 && sq.Rank != 6) {
		return "", &FieldError{Field: FieldEnPassant, Value: v, Err: ErrInvalidEnPassant}
	}
	return v, nil
}

func (p *Parser) counter(field Field, v string) (uint32, error) {
	n, err := strconv.ParseUint(v, 10, 32)
	if err == nil {
		return uint32(n), nil
	}
	if p.strict {
		return 0, &FieldError{Field: field, Value: v, Err: fmt.Errorf("%w: %v", ErrInvalidCounter, err)}
	}
	p.logger.Debug("unparsable move counter, using 0", zap.String("field", string(field)), zap.String("value", v))
	return 0, nil
}
