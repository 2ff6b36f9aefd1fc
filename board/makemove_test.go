package board_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kespar/branchmate/board"
	"github.com/kespar/branchmate/fen"
	"github.com/kespar/branchmate/square"
)

// snapshot captures every field make/unmake is supposed to restore, for
// comparison via go-cmp rather than hand-rolled field checks.
type snapshot struct {
	Squares        [64]board.Piece
	WhiteToMove    bool
	Castle         board.CastleRights
	EnPassantNot   string
	HalfmoveClock  int
	FullmoveNumber int
	Hash           uint64
}

func snapshotOf(b *board.Board) snapshot {
	var s snapshot
	for sq := 0; sq < square.Count; sq++ {
		s.Squares[sq] = b.PieceAt(square.Square(sq))
	}
	s.WhiteToMove = b.WhiteToMove()
	s.Castle = b.CastleRights()
	s.EnPassantNot = b.EnPassant().Notation()
	s.HalfmoveClock = b.HalfmoveClock()
	s.FullmoveNumber = b.FullmoveNumber()
	s.Hash = b.Hash()
	return s
}

func TestMakeUnmakeRestoresBoardExactly(t *testing.T) {
	t.Parallel()
	positions := []string{
		board.DefaultStartingPositionFEN,
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
		"3q3r/6K1/2n1b3/2q1k3/4n3/8/r7/qq1qqq1q b - - 1 59",
		"8/4k3/7q/8/8/4N3/4K3/4R3 w - - 0 1",
	}
	for _, p := range positions {
		p := p
		t.Run(p, func(t *testing.T) {
			t.Parallel()
			b, err := fen.Parse(p)
			if err != nil {
				t.Fatalf("fen.Parse: %v", err)
			}
			before := snapshotOf(b)
			for _, mv := range board.GenerateLegalMoves(b) {
				pre := snapshotOf(b)
				undo := board.MakeMove(b, mv)
				board.UnmakeMove(b, mv, undo)
				after := snapshotOf(b)
				if diff := cmp.Diff(pre, after); diff != "" {
					t.Fatalf("make/unmake %s did not restore the board (-before +after):\n%s", mv, diff)
				}
			}
			if diff := cmp.Diff(before, snapshotOf(b)); diff != "" {
				t.Fatalf("board mutated after exhaustive make/unmake (-before +after):\n%s", diff)
			}
		})
	}
}

func TestZobristKeyInsensitiveToMoveOrder(t *testing.T) {
	t.Parallel()
	// 1. Nf3 Nf6  2. Nc3 Nc6  vs  1. Nc3 Nc6  2. Nf3 Nf6 reach the same
	// placement, side to move, castling rights, and en-passant state.
	a, err := fen.Parse(board.DefaultStartingPositionFEN)
	if err != nil {
		t.Fatalf("fen.Parse: %v", err)
	}
	playUCI(t, a, "g1f3", "g8f6", "b1c3", "b8c6")

	b, err := fen.Parse(board.DefaultStartingPositionFEN)
	if err != nil {
		t.Fatalf("fen.Parse: %v", err)
	}
	playUCI(t, b, "b1c3", "b8c6", "g1f3", "g8f6")

	if a.Hash() != b.Hash() {
		t.Fatalf("expected identical Zobrist keys for transposed move orders, got %x and %x", a.Hash(), b.Hash())
	}
}

func playUCI(t *testing.T, b *board.Board, moves ...string) {
	t.Helper()
	for _, u := range moves {
		from, err := square.FromNotation(u[0:2])
		if err != nil {
			t.Fatalf("bad move %q: %v", u, err)
		}
		to, err := square.FromNotation(u[2:4])
		if err != nil {
			t.Fatalf("bad move %q: %v", u, err)
		}
		var found board.Move
		var ok bool
		for _, mv := range board.GenerateLegalMoves(b) {
			if mv.From == from && mv.To == to {
				found, ok = mv, true
				break
			}
		}
		if !ok {
			t.Fatalf("move %q is not legal in this position", u)
		}
		board.MakeMove(b, found)
	}
}
