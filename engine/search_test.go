package engine

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/kespar/branchmate/fen"
)

func TestFindBestMoveMateInOnePuzzles(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		fen      string
		depth    int
		wantUCI  string
	}{
		{
			name:    "lone rook delivers back-rank mate",
			fen:     "4k3/8/4K3/8/8/8/8/7R w - - 0 1",
			depth:   2,
			wantUCI: "h1h8",
		},
		{
			name:    "black rook mirrors the mate",
			fen:     "7r/8/8/8/8/4k3/8/4K3 b - - 0 1",
			depth:   2,
			wantUCI: "h8h1",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := fen.Parse(tt.fen)
			if err != nil {
				t.Fatalf("fen.Parse: %v", err)
			}
			var stop atomic.Bool
			mv, _, _ := FindBestMove(b, tt.depth, &stop, time.Time{}, NewTranspositionTable())
			if mv.UCI() != tt.wantUCI {
				t.Fatalf("FindBestMove() = %s, want %s", mv.UCI(), tt.wantUCI)
			}
		})
	}
}

func TestFindBestMoveTacticalPositions(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		fen     string
		depth   int
		wantUCI string
	}{
		{
			name:    "knight fork into a falling queen",
			fen:     "rnb1kbnr/pppp1ppp/8/4p1q1/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 0 1",
			depth:   2,
			wantUCI: "f3g5",
		},
		{
			name:    "knight-rook battery wins the queen",
			fen:     "8/4k3/7q/8/8/4N3/4K3/4R3 w - - 0 1",
			depth:   4,
			wantUCI: "e3f5",
		},
		{
			name:    "queen sacrifice forces mate",
			fen:     "r6k/1p1b1Qbp/1n2B1pN/p7/Pq6/8/1P4PP/R6K w - - 1 27",
			depth:   4,
			wantUCI: "f7g8",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := fen.Parse(tt.fen)
			if err != nil {
				t.Fatalf("fen.Parse: %v", err)
			}
			var stop atomic.Bool
			mv, _, _ := FindBestMove(b, tt.depth, &stop, time.Time{}, NewTranspositionTable())
			if mv.UCI() != tt.wantUCI {
				t.Fatalf("FindBestMove() = %s, want %s", mv.UCI(), tt.wantUCI)
			}
		})
	}
}

func TestFindBestMoveStopFlagSetBeforeSearchReturnsPromptly(t *testing.T) {
	t.Parallel()
	b, err := fen.Parse("r6k/1p1b1Qbp/1n2B1pN/p7/Pq6/8/1P4PP/R6K w - - 1 27")
	if err != nil {
		t.Fatalf("fen.Parse: %v", err)
	}
	var stop atomic.Bool
	stop.Store(true)

	done := make(chan struct{})
	var mv struct{ uci string }
	go func() {
		m, _, _ := FindBestMove(b, 6, &stop, time.Time{}, NewTranspositionTable())
		mv.uci = m.UCI()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("FindBestMove did not return promptly after stop was set before the call")
	}
}

func TestFindBestMoveNoLegalMovesReturnsZeroMove(t *testing.T) {
	t.Parallel()
	// Black king boxed into a8 by the white king and queen, not in check.
	b, err := fen.Parse("k7/8/KQ6/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("fen.Parse: %v", err)
	}
	var stop atomic.Bool
	mv, score, _ := FindBestMove(b, 3, &stop, time.Time{}, NewTranspositionTable())
	if !mv.IsZero() {
		t.Fatalf("expected zero move for a position with no legal moves, got %s", mv.UCI())
	}
	if score != 0 {
		t.Fatalf("expected score 0 for no legal moves, got %v", score)
	}
}
