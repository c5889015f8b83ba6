package interop

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"chess-fen/fen"
)

// ToDragontooth builds a dragontoothmg board. dragontoothmg panics on input it
// cannot parse; that panic is turned into an error.
func ToDragontooth(gs *fen.GameState) (b dragontoothmg.Board, err error) {
	s, err := canonicalFEN(gs)
	if err != nil {
		return dragontoothmg.Board{}, err
	}
	defer func() {
		if r := recover(); r != nil {
			b = dragontoothmg.Board{}
			err = fmt.Errorf("%w: dragontoothmg: %v", ErrUnsupported, r)
		}
	}()
	return dragontoothmg.ParseFen(s), nil
}
