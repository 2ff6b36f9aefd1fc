package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/kespar/branchmate/square"
)

// DefaultStartingPositionFEN is the FEN of the standard chess starting
// position.
const DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// CastleRights tracks the four independent castling permissions.
type CastleRights struct {
	WhiteKingside, WhiteQueenside bool
	BlackKingside, BlackQueenside bool
}

// Board is a mutable chess position: a 64-square array plus the side to
// move, castling rights, en-passant target, and move counters. It is
// owned by the caller (the engine façade during a search) and mutated
// in place by MakeMove/UnmakeMove rather than cloned per node.
type Board struct {
	squares [square.Count]Piece

	whiteToMove bool

	castle CastleRights

	// enPassant is the square a pawn would move to when capturing
	// en-passant, or square.None.
	enPassant square.Square

	halfmoveClock  int
	fullmoveNumber int

	hash uint64
}

// NewBoard returns a board set to the standard starting position.
func NewBoard() *Board {
	b := &Board{}
	b.resetToStartingArrangement()
	b.hash = Hash(b)
	return b
}

func (b *Board) resetToStartingArrangement() {
	for i := range b.squares {
		b.squares[i] = Empty
	}
	back := []Kind{KindRook, KindKnight, KindBishop, KindQueen, KindKing, KindBishop, KindKnight, KindRook}
	for file, k := range back {
		b.squares[square.New(0, file)] = OfKind(k, false)
		b.squares[square.New(7, file)] = OfKind(k, true)
	}
	for file := 0; file < square.Files; file++ {
		b.squares[square.New(1, file)] = BlackPawn
		b.squares[square.New(6, file)] = WhitePawn
	}
	b.whiteToMove = true
	b.castle = CastleRights{true, true, true, true}
	b.enPassant = square.None
	b.halfmoveClock = 0
	b.fullmoveNumber = 1
}

// PieceAt returns the piece occupying sq.
func (b *Board) PieceAt(sq square.Square) Piece {
	return b.squares[sq]
}

// SetPieceAt places p on sq, bypassing move semantics. Used by the FEN
// decoder to populate a freshly-allocated board.
func (b *Board) SetPieceAt(sq square.Square, p Piece) {
	b.squares[sq] = p
}

// WhiteToMove reports whether White is to move.
func (b *Board) WhiteToMove() bool { return b.whiteToMove }

// SetWhiteToMove sets the side to move. Used by the FEN decoder.
func (b *Board) SetWhiteToMove(white bool) { b.whiteToMove = white }

// CastleRights returns the current castling rights.
func (b *Board) CastleRights() CastleRights { return b.castle }

// SetCastleRights overwrites the castling rights. Used by the FEN decoder.
func (b *Board) SetCastleRights(c CastleRights) { b.castle = c }

// EnPassant returns the current en-passant target square, or square.None.
func (b *Board) EnPassant() square.Square { return b.enPassant }

// SetEnPassant sets the en-passant target square. Used by the FEN decoder.
func (b *Board) SetEnPassant(sq square.Square) { b.enPassant = sq }

// HalfmoveClock returns the halfmove clock (moves since last capture or
// pawn push).
func (b *Board) HalfmoveClock() int { return b.halfmoveClock }

// SetHalfmoveClock sets the halfmove clock. Used by the FEN decoder.
func (b *Board) SetHalfmoveClock(n int) { b.halfmoveClock = n }

// FullmoveNumber returns the full move number.
func (b *Board) FullmoveNumber() int { return b.fullmoveNumber }

// SetFullmoveNumber sets the full move number. Used by the FEN decoder.
func (b *Board) SetFullmoveNumber(n int) { b.fullmoveNumber = n }

// Hash returns the Zobrist key of the current position.
func (b *Board) Hash() uint64 { return b.hash }

// RecomputeHash recomputes and stores the Zobrist key from scratch. The
// FEN decoder calls this once after populating a board directly.
func (b *Board) RecomputeHash() {
	b.hash = Hash(b)
}

// KingSquare returns the square of the king belonging to the given
// color, or square.None if absent (should not happen in legal play).
func (b *Board) KingSquare(white bool) square.Square {
	target := OfKind(KindKing, white)
	for sq := square.Square(0); int(sq) < square.Count; sq++ {
		if b.squares[sq] == target {
			return sq
		}
	}
	return square.None
}

// Clone returns a deep copy of b. Used where the caller needs a
// throwaway board (the search worker started by Engine.Go, the
// "go perft" command) rather than make/unmake in place.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Dump renders the board as an ASCII diagram with a coordinate frame.
func (b *Board) Dump() string {
	var sb strings.Builder
	for row := 0; row < square.Ranks; row++ {
		sb.WriteString("   +---+---+---+---+---+---+---+---+\n")
		fmt.Fprintf(&sb, " %d |", square.New(row, 0).Rank())
		for file := 0; file < square.Files; file++ {
			p := b.squares[square.New(row, file)]
			sym := p.SymbolFEN()
			if sym == "" {
				sym = " "
			}
			fmt.Fprintf(&sb, " %s |", sym)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("   +---+---+---+---+---+---+---+---+\n    ")
	for file := 0; file < square.Files; file++ {
		fmt.Fprintf(&sb, " %c  ", square.New(0, file).FileRune())
	}
	return sb.String()
}

// Draw renders a colorized terminal board, alternating light/dark
// squares and drawing each side's pieces with its own unicode glyphs.
func (b *Board) Draw() string {
	var sb strings.Builder
	light := color.New(color.BgHiWhite, color.FgBlack)
	dark := color.New(color.BgBlack, color.FgWhite)
	for row := 0; row < square.Ranks; row++ {
		fmt.Fprintf(&sb, "%s ", color.New(color.Bold).Sprintf("%d", square.New(row, 0).Rank()))
		for file := 0; file < square.Files; file++ {
			sq := square.New(row, file)
			p := b.squares[sq]
			cell := dark
			if (row+file)%2 == 0 {
				cell = light
			}
			glyph := p.SymbolUnicode()
			sb.WriteString(cell.Sprintf(" %s ", glyph))
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  ")
	for file := 0; file < square.Files; file++ {
		fmt.Fprintf(&sb, " %c ", square.New(0, file).FileRune())
	}
	return sb.String()
}

// DebugString summarizes non-board state, mirroring what a "d" UCI
// command would print alongside Draw.
func (b *Board) DebugString() string {
	return fmt.Sprintf("turn: %s\ncastle: %s\nep: %s\nhalf: %d\nfull: %d\nhash: %016x",
		sideName(b.whiteToMove), b.castle.fenFragment(), b.enPassant.Notation(), b.halfmoveClock, b.fullmoveNumber, b.hash)
}

func sideName(white bool) string {
	if white {
		return "white"
	}
	return "black"
}

func (c CastleRights) fenFragment() string {
	var sb strings.Builder
	if c.WhiteKingside {
		sb.WriteByte('K')
	}
	if c.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if c.BlackKingside {
		sb.WriteByte('k')
	}
	if c.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
