package engine

import "github.com/kespar/branchmate/board"

// Perft counts the leaf nodes of the legal game tree rooted at b, depth
// plies deep. It is a generator-correctness diagnostic (property 6 in
// the testable-properties table), not part of search: it walks
// board.GenerateLegalMoves directly via make/unmake rather than cloning the
// board per node.
func Perft(b *board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var nodes uint64
	for _, mv := range board.GenerateLegalMoves(b) {
		undo := board.MakeMove(b, mv)
		nodes += Perft(b, depth-1)
		board.UnmakeMove(b, mv, undo)
	}
	return nodes
}

// PerftDivide breaks the depth-deep perft count down by root move, in
// UCI move notation. Useful for isolating a generator bug to a specific
// root branch.
func PerftDivide(b *board.Board, depth int) map[string]uint64 {
	divide := make(map[string]uint64)
	if depth == 0 {
		return divide
	}
	for _, mv := range board.GenerateLegalMoves(b) {
		undo := board.MakeMove(b, mv)
		divide[mv.UCI()] = Perft(b, depth-1)
		board.UnmakeMove(b, mv, undo)
	}
	return divide
}
