package board

import (
	"testing"

	"github.com/kespar/branchmate/square"
)

func emptyBoard() *Board {
	b := &Board{}
	for sq := square.Square(0); int(sq) < square.Count; sq++ {
		b.SetPieceAt(sq, Empty)
	}
	b.SetEnPassant(square.None)
	b.whiteToMove = true
	b.RecomputeHash()
	return b
}

func TestIsSquareAttackedByRookAcrossOpenFile(t *testing.T) {
	t.Parallel()
	b := emptyBoard()
	b.SetPieceAt(square.A1, WhiteRook)
	if !IsSquareAttacked(b, square.A8, true) {
		t.Fatalf("expected a1 rook to attack a8 along the open a-file")
	}
}

func TestIsSquareAttackedDoesNotWrapAcrossEdges(t *testing.T) {
	t.Parallel()
	b := emptyBoard()
	// The edge-wrap hazard is in the knight/king deltas: a knight on the
	// h-file must not be seen as attacking a square on the a-file of the
	// same rank.
	b.SetPieceAt(square.New(4, 7), WhiteKnight) // h4
	if IsSquareAttacked(b, square.New(4, 0), true) {
		t.Fatalf("h4 knight must not attack a4: that requires wrapping the (drow,dfile) knight pattern across the board edge")
	}
}

func TestIsSquareAttackedBlockedRay(t *testing.T) {
	t.Parallel()
	b := emptyBoard()
	b.SetPieceAt(square.A1, WhiteRook)
	b.SetPieceAt(square.New(4, 0), WhiteKnight) // a4 blocks the ray
	if IsSquareAttacked(b, square.A8, true) {
		t.Fatalf("expected the a4 knight to block the a1 rook's attack on a8")
	}
}

func TestIsKingInCheck(t *testing.T) {
	t.Parallel()
	b := emptyBoard()
	b.SetPieceAt(square.E1, WhiteKing)
	b.SetPieceAt(square.E8, BlackRook)
	if !IsKingInCheck(b, true) {
		t.Fatalf("expected white king on e1 to be in check from a rook on e8 down an open file")
	}
}
