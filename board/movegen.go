package board

import "github.com/kespar/branchmate/square"

// GeneratePseudoLegalMoves returns every move available to the side to
// move, ignoring whether it leaves that side's own king in check.
func GeneratePseudoLegalMoves(b *Board) []Move {
	white := b.whiteToMove
	var mvs []Move
	for sq := square.Square(0); int(sq) < square.Count; sq++ {
		p := b.PieceAt(sq)
		if p == Empty || !p.IsColor(white) {
			continue
		}
		switch p.Kind() {
		case KindPawn:
			genPawnMoves(b, sq, white, &mvs)
		case KindKnight:
			genStepMoves(b, sq, white, knightDeltas, &mvs)
		case KindBishop:
			genSlideMoves(b, sq, white, diagonalDeltas, &mvs)
		case KindRook:
			genSlideMoves(b, sq, white, orthogonalDeltas, &mvs)
		case KindQueen:
			genSlideMoves(b, sq, white, diagonalDeltas, &mvs)
			genSlideMoves(b, sq, white, orthogonalDeltas, &mvs)
		case KindKing:
			genStepMoves(b, sq, white, kingDeltas, &mvs)
		}
	}
	genCastleMoves(b, white, &mvs)
	return mvs
}

// GenerateLegalMoves filters GeneratePseudoLegalMoves down to moves that
// do not leave the moving side's own king in check.
func GenerateLegalMoves(b *Board) []Move {
	white := b.whiteToMove
	pseudo := GeneratePseudoLegalMoves(b)
	legal := make([]Move, 0, len(pseudo))
	for _, mv := range pseudo {
		undo := MakeMove(b, mv)
		inCheck := IsKingInCheck(b, white)
		UnmakeMove(b, mv, undo)
		if !inCheck {
			legal = append(legal, mv)
		}
	}
	return legal
}

func addPawnMove(b *Board, mvs *[]Move, from, to square.Square, promote bool, white bool) {
	captured := b.PieceAt(to)
	if !promote {
		*mvs = append(*mvs, Move{From: from, To: to, Captured: captured})
		return
	}
	for _, k := range PromotionKinds {
		*mvs = append(*mvs, Move{From: from, To: to, Captured: captured, Promoted: OfKind(k, white)})
	}
}

func genPawnMoves(b *Board, from square.Square, white bool, mvs *[]Move) {
	row, file := from.Row(), from.File()
	var forward, startRow, lastRow int
	if white {
		forward, startRow, lastRow = -1, 6, 0
	} else {
		forward, startRow, lastRow = 1, 1, 7
	}

	oneRow := row + forward
	if oneRow >= 0 && oneRow < square.Ranks {
		oneSq := square.New(oneRow, file)
		if b.PieceAt(oneSq) == Empty {
			addPawnMove(b, mvs, from, oneSq, oneRow == lastRow, white)

			if row == startRow {
				twoRow := row + 2*forward
				twoSq := square.New(twoRow, file)
				if b.PieceAt(twoSq) == Empty {
					*mvs = append(*mvs, Move{From: from, To: twoSq})
				}
			}
		}

		for _, df := range [2]int{-1, 1} {
			f := file + df
			if f < 0 || f >= square.Files {
				continue
			}
			to := square.New(oneRow, f)
			if to == b.enPassant {
				*mvs = append(*mvs, Move{
					From:        from,
					To:          to,
					Captured:    OfKind(KindPawn, !white),
					IsEnPassant: true,
				})
				continue
			}
			target := b.PieceAt(to)
			if target != Empty && target.IsColor(!white) {
				addPawnMove(b, mvs, from, to, oneRow == lastRow, white)
			}
		}
	}
}

func genStepMoves(b *Board, from square.Square, white bool, deltas [8][2]int, mvs *[]Move) {
	row, file := from.Row(), from.File()
	for _, d := range deltas {
		r, f := row+d[0], file+d[1]
		if r < 0 || r >= square.Ranks || f < 0 || f >= square.Files {
			continue
		}
		to := square.New(r, f)
		target := b.PieceAt(to)
		if target != Empty && target.IsColor(white) {
			continue
		}
		*mvs = append(*mvs, Move{From: from, To: to, Captured: target})
	}
}

func genSlideMoves(b *Board, from square.Square, white bool, deltas [4][2]int, mvs *[]Move) {
	row, file := from.Row(), from.File()
	for _, d := range deltas {
		r, f := row+d[0], file+d[1]
		for r >= 0 && r < square.Ranks && f >= 0 && f < square.Files {
			to := square.New(r, f)
			target := b.PieceAt(to)
			if target != Empty {
				if target.IsColor(!white) {
					*mvs = append(*mvs, Move{From: from, To: to, Captured: target})
				}
				break
			}
			*mvs = append(*mvs, Move{From: from, To: to})
			r += d[0]
			f += d[1]
		}
	}
}

func genCastleMoves(b *Board, white bool, mvs *[]Move) {
	rights := b.castle
	if white {
		if rights.WhiteKingside &&
			b.PieceAt(square.F1) == Empty && b.PieceAt(square.G1) == Empty &&
			!IsSquareAttacked(b, square.E1, false) &&
			!IsSquareAttacked(b, square.F1, false) &&
			!IsSquareAttacked(b, square.G1, false) {
			*mvs = append(*mvs, Move{From: square.E1, To: square.G1, IsCastle: true})
		}
		if rights.WhiteQueenside &&
			b.PieceAt(square.D1) == Empty && b.PieceAt(square.C1) == Empty && b.PieceAt(square.New(7, 1)) == Empty &&
			!IsSquareAttacked(b, square.E1, false) &&
			!IsSquareAttacked(b, square.D1, false) &&
			!IsSquareAttacked(b, square.C1, false) {
			*mvs = append(*mvs, Move{From: square.E1, To: square.C1, IsCastle: true})
		}
		return
	}
	if rights.BlackKingside &&
		b.PieceAt(square.F8) == Empty && b.PieceAt(square.G8) == Empty &&
		!IsSquareAttacked(b, square.E8, true) &&
		!IsSquareAttacked(b, square.F8, true) &&
		!IsSquareAttacked(b, square.G8, true) {
		*mvs = append(*mvs, Move{From: square.E8, To: square.G8, IsCastle: true})
	}
	if rights.BlackQueenside &&
		b.PieceAt(square.D8) == Empty && b.PieceAt(square.C8) == Empty && b.PieceAt(square.New(0, 1)) == Empty &&
		!IsSquareAttacked(b, square.E8, true) &&
		!IsSquareAttacked(b, square.D8, true) &&
		!IsSquareAttacked(b, square.C8, true) {
		*mvs = append(*mvs, Move{From: square.E8, To: square.C8, IsCastle: true})
	}
}
