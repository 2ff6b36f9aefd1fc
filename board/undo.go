package board

import "github.com/kespar/branchmate/square"

// UndoInfo captures every mutable field of Board before a move is
// applied, which is sufficient for UnmakeMove to restore the position
// bit-exactly, including its Zobrist key.
type UndoInfo struct {
	// MovedPiece is whatever occupied Move.From before the move — for a
	// promotion this is the pawn, not the piece that lands on To.
	MovedPiece Piece

	Castle    CastleRights
	EnPassant square.Square

	HalfmoveClock  int
	FullmoveNumber int

	WhiteToMove bool

	Hash uint64
}
