package interop

import (
	"fmt"

	nchess "github.com/corentings/chess/v2"

	"chess-fen/fen"
)

// ToGame starts a corentings/chess game at the given position.
func ToGame(gs *fen.GameState) (*nchess.Game, error) {
	s, err := canonicalFEN(gs)
	if err != nil {
		return nil, err
	}
	option, err := nchess.FEN(s)
	if err != nil {
		return nil, fmt.Errorf("%w: chess: %v", ErrUnsupported, err)
	}
	return nchess.NewGame(option), nil
}
