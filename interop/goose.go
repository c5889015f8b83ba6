package interop

import (
	"fmt"

	"github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-fen/fen"
)

// ToGoose builds a GooseEngine move-generator board.
func ToGoose(gs *fen.GameState) (*goosemg.Board, error) {
	s, err := canonicalFEN(gs)
	if err != nil {
		return nil, err
	}
	b, err := goosemg.ParseFEN(s)
	if err != nil {
		return nil, fmt.Errorf("%w: goosemg: %v", ErrUnsupported, err)
	}
	return b, nil
}
