package fen_test

import (
	"errors"
	"testing"

	"chess-fen/fen"
)

func TestStrictAcceptsCanonical(t *testing.T) {
	p := fen.NewParser(fen.WithStrict(true))
	for _, s := range []string{
		fen.StartPosition,
		sicilian,
		"4k3/8/8/8/8/8/8/4K3 b - - 0 60",
		"r3k2r/8/8/8/8/8/8/R3K2R w qK e3 3 9",
	} {
		if _, err := p.Parse(s); err != nil {
			t.Errorf("strict Parse(%q): %v", s, err)
		}
	}
}

func TestStrictRejections(t *testing.T) {
	const board = "4k3/8/8/8/8/8/8/4K3"
	cases := []struct {
		name  string
		in    string
		field fen.Field
		want  error
	}{
		{"active color", board + " x - - 0 1", fen.FieldActiveColor, fen.ErrInvalidActiveColor},
		{"castling letter", board + " w KX - 0 1", fen.FieldCastling, fen.ErrInvalidCastling},
		{"castling repeat", board + " w KK - 0 1", fen.FieldCastling, fen.ErrInvalidCastling},
		{"castling empty", board + " w  - 0 1", fen.FieldCastling, fen.ErrInvalidCastling},
		{"en passant text", board + " w - e9 0 1", fen.FieldEnPassant, fen.ErrInvalidEnPassant},
		{"en passant rank", board + " w - e4 0 1", fen.FieldEnPassant, fen.ErrInvalidEnPassant},
		{"halfmove", board + " w - - x 1", fen.FieldHalfmove, fen.ErrInvalidCounter},
		{"fullmove", board + " w - - 0 -3", fen.FieldFullmove, fen.ErrInvalidCounter},
		{"trailing", board + " w - - 0 1 extra", fen.FieldTrailing, fen.ErrTrailingFields},
	}
	strict := fen.NewParser(fen.WithStrict(true))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := strict.Parse(tc.in)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			var fe *fen.FieldError
			if !errors.As(err, &fe) || fe.Field != tc.field {
				t.Fatalf("expected field %s, got %v", tc.field, err)
			}
			if tc.want == fen.ErrTrailingFields {
				return
			}
			if _, err := fen.ParseFEN(tc.in); err != nil {
				t.Fatalf("lenient parser rejected %q: %v", tc.in, err)
			}
		})
	}
}

func TestStrictStillChecksPlacement(t *testing.T) {
	_, err := fen.NewParser(fen.WithStrict(true)).Parse("8/8/8/8/8/8/8 w - - 0 1")
	if !errors.Is(err, fen.ErrMalformedPlacement) {
		t.Fatalf("expected ErrMalformedPlacement, got %v", err)
	}
}
