package board

import "github.com/kespar/branchmate/square"

// castleRookSquares maps a castling move's king destination file (the
// generator always identifies kingside by To's file being 6) to the
// rook's origin and destination squares on the mover's own back rank.
func castleRookSquares(to square.Square) (rookFrom, rookTo square.Square) {
	row := to.Row()
	if to.File() == 6 { // kingside
		return square.New(row, 7), square.New(row, 5)
	}
	return square.New(row, 0), square.New(row, 3) // queenside
}

// MakeMove applies mv to b, mutating it in place, and returns an
// UndoInfo sufficient to reverse it with UnmakeMove. The caller is
// responsible for only applying pseudo-legal moves produced for the
// side currently to move.
func MakeMove(b *Board, mv Move) UndoInfo {
	undo := UndoInfo{
		MovedPiece:     b.PieceAt(mv.From),
		Castle:         b.castle,
		EnPassant:      b.enPassant,
		HalfmoveClock:  b.halfmoveClock,
		FullmoveNumber: b.fullmoveNumber,
		WhiteToMove:    b.whiteToMove,
		Hash:           b.hash,
	}

	movingPiece := undo.MovedPiece
	white := b.whiteToMove

	b.SetPieceAt(mv.From, Empty)

	if mv.IsEnPassant {
		capturedPawnSquare := mv.To - 8
		if white {
			capturedPawnSquare = mv.To + 8
		}
		b.SetPieceAt(capturedPawnSquare, Empty)
	} else if mv.Captured != Empty {
		b.SetPieceAt(mv.To, Empty)
	}

	if mv.IsCastle {
		rookFrom, rookTo := castleRookSquares(mv.To)
		rook := b.PieceAt(rookFrom)
		b.SetPieceAt(rookFrom, Empty)
		b.SetPieceAt(rookTo, rook)
	}

	if mv.Promoted != Empty {
		b.SetPieceAt(mv.To, mv.Promoted)
	} else {
		b.SetPieceAt(mv.To, movingPiece)
	}

	// Castling rights: a king move clears both rights for that color; a
	// move touching either rook's home corner (as mover or as captured
	// piece) clears that corner's right.
	if movingPiece.Kind() == KindKing {
		if white {
			b.castle.WhiteKingside, b.castle.WhiteQueenside = false, false
		} else {
			b.castle.BlackKingside, b.castle.BlackQueenside = false, false
		}
	}
	clearCastleRightsTouching(b, mv.From)
	clearCastleRightsTouching(b, mv.To)

	// En-passant target: set iff a pawn advanced exactly two rows.
	b.enPassant = square.None
	if movingPiece.Kind() == KindPawn {
		delta := int(mv.To) - int(mv.From)
		if delta == 16 || delta == -16 {
			b.enPassant = (mv.From + mv.To) / 2
		}
	}

	if movingPiece.Kind() == KindPawn || mv.Captured != Empty {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}

	if !white {
		b.fullmoveNumber++
	}

	b.whiteToMove = !white

	b.hash = Hash(b)

	return undo
}

func clearCastleRightsTouching(b *Board, sq square.Square) {
	switch sq {
	case square.A1:
		b.castle.WhiteQueenside = false
	case square.H1:
		b.castle.WhiteKingside = false
	case square.A8:
		b.castle.BlackQueenside = false
	case square.H8:
		b.castle.BlackKingside = false
	}
}

// UnmakeMove reverses mv, restoring every field captured in undo and
// re-placing pieces exactly as they stood before MakeMove ran.
func UnmakeMove(b *Board, mv Move, undo UndoInfo) {
	b.castle = undo.Castle
	b.enPassant = undo.EnPassant
	b.halfmoveClock = undo.HalfmoveClock
	b.fullmoveNumber = undo.FullmoveNumber
	b.whiteToMove = undo.WhiteToMove
	b.hash = undo.Hash

	b.SetPieceAt(mv.To, Empty)

	if mv.IsCastle {
		rookFrom, rookTo := castleRookSquares(mv.To)
		rook := b.PieceAt(rookTo)
		b.SetPieceAt(rookTo, Empty)
		b.SetPieceAt(rookFrom, rook)
	}

	b.SetPieceAt(mv.From, undo.MovedPiece)

	if mv.IsEnPassant {
		capturedPawnSquare := mv.To - 8
		if undo.WhiteToMove {
			capturedPawnSquare = mv.To + 8
		}
		b.SetPieceAt(capturedPawnSquare, OfKind(KindPawn, !undo.WhiteToMove))
	} else if mv.Captured != Empty {
		b.SetPieceAt(mv.To, mv.Captured)
	}
}
