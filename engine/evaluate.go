package engine

import (
	"github.com/kespar/branchmate/board"
	"github.com/kespar/branchmate/square"
)

// pieceValue holds the material weight for each kind. Evaluation is
// deliberately material-only — no piece-square tables, no mobility.
var pieceValue = map[board.Kind]float64{
	board.KindPawn:   1.0,
	board.KindKnight: 3.2,
	board.KindBishop: 3.3,
	board.KindRook:   5.0,
	board.KindQueen:  9.0,
	board.KindKing:   1000.0,
}

// Evaluate returns the material balance of b from White's perspective:
// positive favors White, negative favors Black, zero is level.
func Evaluate(b *board.Board) float64 {
	var total float64
	for sq := square.Square(0); int(sq) < square.Count; sq++ {
		p := b.PieceAt(sq)
		if p == board.Empty {
			continue
		}
		v := pieceValue[p.Kind()]
		if p.IsWhite() {
			total += v
		} else {
			total -= v
		}
	}
	return total
}
