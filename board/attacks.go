package board

import "github.com/kespar/branchmate/square"

// knightDeltas and kingDeltas are (drow, dfile) offsets, validated by
// component deltas rather than raw index arithmetic so they never wrap
// across the a/h file boundary.
var knightDeltas = [8][2]int{
	{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
	{1, -2}, {1, 2}, {2, -1}, {2, 1},
}

var kingDeltas = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

var diagonalDeltas = [4][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
var orthogonalDeltas = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// IsSquareAttacked reports whether sq is attacked by any piece of the
// color named by byWhite, computed outward from sq rather than by
// enumerating every attacker's pseudo-legal moves.
func IsSquareAttacked(b *Board, sq square.Square, byWhite bool) bool {
	row, file := sq.Row(), sq.File()

	// Pawns: check the two squares a pawn of byWhite's color would
	// capture from onto sq.
	pawnRow := row + 1 // White pawns capture from one row "below" sq
	if !byWhite {
		pawnRow = row - 1
	}
	if pawnRow >= 0 && pawnRow < square.Ranks {
		for _, df := range [2]int{-1, 1} {
			pf := file + df
			if pf < 0 || pf >= square.Files {
				continue
			}
			if b.PieceAt(square.New(pawnRow, pf)) == OfKind(KindPawn, byWhite) {
				return true
			}
		}
	}

	for _, d := range knightDeltas {
		r, f := row+d[0], file+d[1]
		if r < 0 || r >= square.Ranks || f < 0 || f >= square.Files {
			continue
		}
		if b.PieceAt(square.New(r, f)) == OfKind(KindKnight, byWhite) {
			return true
		}
	}

	for _, d := range kingDeltas {
		r, f := row+d[0], file+d[1]
		if r < 0 || r >= square.Ranks || f < 0 || f >= square.Files {
			continue
		}
		if b.PieceAt(square.New(r, f)) == OfKind(KindKing, byWhite) {
			return true
		}
	}

	for _, d := range diagonalDeltas {
		r, f := row+d[0], file+d[1]
		for r >= 0 && r < square.Ranks && f >= 0 && f < square.Files {
			p := b.PieceAt(square.New(r, f))
			if p != Empty {
				if p.IsColor(byWhite) && (p.Kind() == KindBishop || p.Kind() == KindQueen) {
					return true
				}
				break
			}
			r += d[0]
			f += d[1]
		}
	}

	for _, d := range orthogonalDeltas {
		r, f := row+d[0], file+d[1]
		for r >= 0 && r < square.Ranks && f >= 0 && f < square.Files {
			p := b.PieceAt(square.New(r, f))
			if p != Empty {
				if p.IsColor(byWhite) && (p.Kind() == KindRook || p.Kind() == KindQueen) {
					return true
				}
				break
			}
			r += d[0]
			f += d[1]
		}
	}

	return false
}

// IsKingInCheck reports whether the king of the given color is attacked
// in the current position.
func IsKingInCheck(b *Board, white bool) bool {
	ksq := b.KingSquare(white)
	if ksq == square.None {
		return false
	}
	return IsSquareAttacked(b, ksq, !white)
}
