package interop_test

import (
	"errors"
	"math/bits"
	"testing"

	nchess "github.com/corentings/chess/v2"
	"github.com/Oliverans/GooseEngineMG/goosemg"

	"chess-fen/fen"
	"chess-fen/interop"
)

func TestToDragontoothStartPosition(t *testing.T) {
	b, err := interop.ToDragontooth(fen.MustParseFEN(fen.StartPosition))
	if err != nil {
		t.Fatalf("ToDragontooth: %v", err)
	}
	if !b.Wtomove {
		t.Errorf("expected white to move")
	}
	if n := bits.OnesCount64(b.White.Pawns); n != 8 {
		t.Errorf("white pawns = %d, want 8", n)
	}
	if n := len(b.GenerateLegalMoves()); n != 20 {
		t.Errorf("legal moves = %d, want 20", n)
	}
}

func TestToDragontoothSideToMove(t *testing.T) {
	gs := fen.MustParseFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	b, err := interop.ToDragontooth(gs)
	if err != nil {
		t.Fatalf("ToDragontooth: %v", err)
	}
	if b.Wtomove {
		t.Errorf("expected black to move")
	}
	if n := bits.OnesCount64(b.White.All | b.Black.All); n != gs.Board().Count() {
		t.Errorf("occupancy %d, board count %d", n, gs.Board().Count())
	}
}

func TestToGooseStartPosition(t *testing.T) {
	b, err := interop.ToGoose(fen.MustParseFEN(fen.StartPosition))
	if err != nil {
		t.Fatalf("ToGoose: %v", err)
	}
	if n := goosemg.Perft(b, 1); n != 20 {
		t.Errorf("perft(1) = %d, want 20", n)
	}
}

func TestToGameStartPosition(t *testing.T) {
	game, err := interop.ToGame(fen.MustParseFEN(fen.StartPosition))
	if err != nil {
		t.Fatalf("ToGame: %v", err)
	}
	pos := game.Position()
	if pos.Turn() != nchess.White {
		t.Errorf("turn = %v, want white", pos.Turn())
	}
	a8 := pos.Board().Piece(nchess.NewSquare(nchess.FileA, nchess.Rank8))
	if a8.Type() != nchess.Rook || a8.Color() != nchess.Black {
		t.Errorf("a8 = %v, want black rook", a8)
	}
	if n := len(game.ValidMoves()); n != 20 {
		t.Errorf("valid moves = %d, want 20", n)
	}
}

func TestUnrepresentableEnPassant(t *testing.T) {
	gs, err := fen.ParseFEN("4k3/8/8/8/8/8/8/4K3 w - zz 0 1")
	if err != nil {
		t.Fatalf("lenient ParseFEN: %v", err)
	}
	if _, err := interop.ToDragontooth(gs); !errors.Is(err, interop.ErrUnsupported) {
		t.Errorf("ToDragontooth: expected ErrUnsupported, got %v", err)
	}
	if _, err := interop.ToGoose(gs); !errors.Is(err, interop.ErrUnsupported) {
		t.Errorf("ToGoose: expected ErrUnsupported, got %v", err)
	}
	if _, err := interop.ToGame(gs); !errors.Is(err, interop.ErrUnsupported) {
		t.Errorf("ToGame: expected ErrUnsupported, got %v", err)
	}
	if _, err := interop.ToGame(nil); !errors.Is(err, interop.ErrUnsupported) {
		t.Errorf("ToGame(nil): expected ErrUnsupported, got %v", err)
	}
}
