// Package fen decodes and encodes Forsyth-Edwards Notation. It is an
// external collaborator of the board package: its only contract with
// the core is the board data model — it populates a Board through the
// exported setters board.Board exposes for exactly this purpose.
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/kespar/branchmate/board"
	"github.com/kespar/branchmate/square"
)

// ErrInvalid wraps every malformed-FEN condition: too few fields, a
// rank of the wrong length, an unrecognized piece letter, or a
// non-integer clock.
var ErrInvalid = errors.New("invalid fen")

// Parse decodes a FEN string into a freshly allocated Board. On error
// it returns nil — the caller's existing board, if any, is left
// untouched by the decode attempt.
func Parse(s string) (*board.Board, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, fmt.Errorf("%w: expected 6 space-separated fields, got %d", ErrInvalid, len(fields))
	}

	b := board.NewBoard()
	if err := parsePlacement(b, fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		b.SetWhiteToMove(true)
	case "b":
		b.SetWhiteToMove(false)
	default:
		return nil, fmt.Errorf("%w: active color must be 'w' or 'b', got %q", ErrInvalid, fields[1])
	}

	rights, err := parseCastling(fields[2])
	if err != nil {
		return nil, err
	}
	b.SetCastleRights(rights)

	ep, err := parseEnPassant(fields[3])
	if err != nil {
		return nil, err
	}
	b.SetEnPassant(ep)

	half, err := strconv.Atoi(fields[4])
	if err != nil || half < 0 {
		return nil, fmt.Errorf("%w: invalid halfmove clock %q", ErrInvalid, fields[4])
	}
	b.SetHalfmoveClock(half)

	full, err := strconv.Atoi(fields[5])
	if err != nil || full < 1 {
		return nil, fmt.Errorf("%w: invalid fullmove number %q", ErrInvalid, fields[5])
	}
	b.SetFullmoveNumber(full)

	b.RecomputeHash()
	return b, nil
}

func parsePlacement(b *board.Board, placement string) error {
	rows := strings.Split(placement, "/")
	if len(rows) != square.Ranks {
		return fmt.Errorf("%w: expected %d ranks, got %d", ErrInvalid, square.Ranks, len(rows))
	}
	for row, rank := range rows {
		file := 0
		for _, c := range rank {
			if file >= square.Files {
				return fmt.Errorf("%w: rank %q overflows the board", ErrInvalid, rank)
			}
			if unicode.IsDigit(c) {
				skip := int(c - '0')
				if skip < 1 || skip > 8 {
					return fmt.Errorf("%w: invalid empty-square run %q", ErrInvalid, string(c))
				}
				for i := 0; i < skip; i++ {
					b.SetPieceAt(square.New(row, file), board.Empty)
					file++
				}
				continue
			}
			p, err := pieceFromFENLetter(c)
			if err != nil {
				return err
			}
			b.SetPieceAt(square.New(row, file), p)
			file++
		}
		if file != square.Files {
			return fmt.Errorf("%w: rank %q does not cover all %d files", ErrInvalid, rank, square.Files)
		}
	}
	return nil
}

func pieceFromFENLetter(c rune) (board.Piece, error) {
	white := unicode.IsUpper(c)
	switch unicode.ToUpper(c) {
	case 'P':
		return board.OfKind(board.KindPawn, white), nil
	case 'N':
		return board.OfKind(board.KindKnight, white), nil
	case 'B':
		return board.OfKind(board.KindBishop, white), nil
	case 'R':
		return board.OfKind(board.KindRook, white), nil
	case 'Q':
		return board.OfKind(board.KindQueen, white), nil
	case 'K':
		return board.OfKind(board.KindKing, white), nil
	default:
		return board.Empty, fmt.Errorf("%w: unknown piece letter %q", ErrInvalid, string(c))
	}
}

func parseCastling(field string) (board.CastleRights, error) {
	var rights board.CastleRights
	if field == "-" {
		return rights, nil
	}
	if len(field) > 4 {
		return rights, fmt.Errorf("%w: invalid castling field %q", ErrInvalid, field)
	}
	for _, c := range field {
		switch c {
		case 'K':
			rights.WhiteKingside = true
		case 'Q':
			rights.WhiteQueenside = true
		case 'k':
			rights.BlackKingside = true
		case 'q':
			rights.BlackQueenside = true
		default:
			return rights, fmt.Errorf("%w: invalid castling letter %q", ErrInvalid, string(c))
		}
	}
	return rights, nil
}

func parseEnPassant(field string) (square.Square, error) {
	if field == "-" {
		return square.None, nil
	}
	sq, err := square.FromNotation(field)
	if err != nil {
		return square.None, fmt.Errorf("%w: invalid en-passant target %q: %v", ErrInvalid, field, err)
	}
	return sq, nil
}

// String encodes b back into FEN. The UCI "d" debug command uses it to
// print the current position's FEN.
func String(b *board.Board) string {
	var sb strings.Builder
	for row := 0; row < square.Ranks; row++ {
		skip := 0
		for file := 0; file < square.Files; file++ {
			p := b.PieceAt(square.New(row, file))
			if p == board.Empty {
				skip++
				continue
			}
			if skip > 0 {
				sb.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			sb.WriteString(p.SymbolFEN())
		}
		if skip > 0 {
			sb.WriteString(strconv.Itoa(skip))
		}
		if row < square.Ranks-1 {
			sb.WriteByte('/')
		}
	}

	if b.WhiteToMove() {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	sb.WriteString(castlingField(b.CastleRights()))
	sb.WriteByte(' ')

	if b.EnPassant() == square.None {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.EnPassant().Notation())
	}

	fmt.Fprintf(&sb, " %d %d", b.HalfmoveClock(), b.FullmoveNumber())
	return sb.String()
}

func castlingField(r board.CastleRights) string {
	var sb strings.Builder
	if r.WhiteKingside {
		sb.WriteByte('K')
	}
	if r.WhiteQueenside {
		sb.WriteByte('Q')
	}
	if r.BlackKingside {
		sb.WriteByte('k')
	}
	if r.BlackQueenside {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}
