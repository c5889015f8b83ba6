// Package interop converts fen.GameState values into the position types of
// third-party chess libraries. Every conversion goes through the FEN text so
// the target library applies its own validation.
package interop

import (
	"errors"
	"fmt"

	"chess-fen/fen"
)

// ErrUnsupported is returned when a game state carries a field the target
// library cannot represent, such as a non-square en passant text.
var ErrUnsupported = errors.New("interop: position not representable")

// canonicalFEN returns gs as FEN after checking the fields that lenient
// parsing may have left unvalidated.
func canonicalFEN(gs *fen.GameState) (string, error) {
	if gs == nil {
		return "", fmt.Errorf("%w: nil game state", ErrUnsupported)
	}
	if ep := gs.EnPassant(); ep != "-" {
		if _, ok := gs.EnPassantSquare(); !ok {
			return "", fmt.Errorf("%w: en passant %q", ErrUnsupported, ep)
		}
	}
	return gs.FEN(), nil
}
