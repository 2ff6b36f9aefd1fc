package board

import "github.com/kespar/branchmate/square"

// Move is a value describing a single ply: source and destination
// square, an optional promotion, the piece captured (if any), and the
// en-passant/castle flags that change how MakeMove/UnmakeMove apply it.
type Move struct {
	From, To square.Square

	// Promoted is the piece kind to appear on To, or Empty for a
	// non-promoting move.
	Promoted Piece

	// Captured is the piece removed by this move, or Empty.
	Captured Piece

	IsEnPassant bool
	IsCastle    bool
}

// IsCapture reports whether the move removes an enemy piece.
func (m Move) IsCapture() bool {
	return m.Captured != Empty
}

// IsPromotion reports whether the move promotes a pawn.
func (m Move) IsPromotion() bool {
	return m.Promoted != Empty
}

// IsZero reports whether m is the zero-value Move, used as a "no move"
// sentinel by the search and the engine façade.
func (m Move) IsZero() bool {
	return m == Move{}
}

// UCI renders m in UCI long-algebraic form: source square, destination
// square, and an optional lowercase promotion letter, e.g. "e2e4",
// "a7a8q".
func (m Move) UCI() string {
	if m.IsZero() {
		return "0000"
	}
	s := m.From.Notation() + m.To.Notation()
	if m.IsPromotion() {
		s += m.Promoted.SymbolFEN() // SymbolFEN already lowercases black; force lowercase either way
	}
	return lowerPromotionSuffix(s, m)
}

func lowerPromotionSuffix(s string, m Move) string {
	if !m.IsPromotion() {
		return s
	}
	// SymbolFEN colors the letter by the piece's own side; UCI promotion
	// letters are always lowercase regardless of which side promotes.
	n := len(s)
	b := []byte(s)
	if b[n-1] >= 'A' && b[n-1] <= 'Z' {
		b[n-1] += 'a' - 'A'
	}
	return string(b)
}

func (m Move) String() string {
	return m.UCI()
}
