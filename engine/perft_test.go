package engine

import (
	"fmt"
	"testing"

	"github.com/kespar/branchmate/board"
	"github.com/kespar/branchmate/fen"
)

func TestPerft(t *testing.T) {
	t.Parallel()

	// Results obtained from https://www.chessprogramming.org/Perft_Results.
	tests := []struct {
		fen       string
		depth     int
		wantNodes uint64
	}{
		{fen: board.DefaultStartingPositionFEN, depth: 0, wantNodes: 1},
		{fen: board.DefaultStartingPositionFEN, depth: 1, wantNodes: 20},
		{fen: board.DefaultStartingPositionFEN, depth: 2, wantNodes: 400},
		{fen: board.DefaultStartingPositionFEN, depth: 3, wantNodes: 8_902},
		{fen: board.DefaultStartingPositionFEN, depth: 4, wantNodes: 197_281},
		{fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", depth: 2, wantNodes: 2_039},
		{fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", depth: 3, wantNodes: 97_862},
		{fen: "k7/8/8/8/8/8/8/7K w - - 0 1", depth: 1, wantNodes: 3},
		{fen: "3q3r/6K1/2n1b3/2q1k3/4n3/8/r7/qq1qqq1q b - - 1 59", depth: 1, wantNodes: 147},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("perft(%d): %s", tt.depth, tt.fen), func(t *testing.T) {
			t.Parallel()
			b, err := fen.Parse(tt.fen)
			if err != nil {
				t.Fatalf("fen.Parse: %v", err)
			}
			got := Perft(b, tt.depth)
			if got != tt.wantNodes {
				t.Errorf("Perft(%d) = %d, want %d", tt.depth, got, tt.wantNodes)
			}
		})
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	t.Parallel()
	b, err := fen.Parse(board.DefaultStartingPositionFEN)
	if err != nil {
		t.Fatalf("fen.Parse: %v", err)
	}
	divide := PerftDivide(b, 3)
	var sum uint64
	for _, n := range divide {
		sum += n
	}
	if want := Perft(b, 3); sum != want {
		t.Fatalf("sum of PerftDivide branches = %d, want Perft(3) = %d", sum, want)
	}
}
