package board

import (
	"math/rand"
	"sync"

	"github.com/kespar/branchmate/square"
)

// Re-seeding these tables on every hash call would silently produce a
// different key for the same position across calls. They are instead
// built exactly once, the first time any board is hashed, via
// sync.Once: every position hashed afterwards in the process shares the
// same random tables.
var (
	zobristOnce sync.Once

	zobristPiece         [13][square.Count]uint64
	zobristCastleRight   [4]uint64 // WK, WQ, BK, BQ
	zobristEnPassantFile [square.Files]uint64
	zobristWhiteToMove   uint64
)

func ensureZobristTables() {
	zobristOnce.Do(func() {
		r := rand.New(rand.NewSource(0x5A0B81_57))
		for p := Piece(1); p < 13; p++ {
			for sq := 0; sq < square.Count; sq++ {
				zobristPiece[p][sq] = r.Uint64()
			}
		}
		for i := range zobristCastleRight {
			zobristCastleRight[i] = r.Uint64()
		}
		for i := range zobristEnPassantFile {
			zobristEnPassantFile[i] = r.Uint64()
		}
		zobristWhiteToMove = r.Uint64()
	})
}

// Hash computes the Zobrist key of b from scratch: an XOR fold over
// occupied squares, the set castling rights, the en-passant file (if
// any), and the side to move.
func Hash(b *Board) uint64 {
	ensureZobristTables()

	var key uint64
	for sq := 0; sq < square.Count; sq++ {
		if p := b.squares[sq]; p != Empty {
			key ^= zobristPiece[p][sq]
		}
	}

	if b.castle.WhiteKingside {
		key ^= zobristCastleRight[0]
	}
	if b.castle.WhiteQueenside {
		key ^= zobristCastleRight[1]
	}
	if b.castle.BlackKingside {
		key ^= zobristCastleRight[2]
	}
	if b.castle.BlackQueenside {
		key ^= zobristCastleRight[3]
	}

	if b.enPassant.OnBoard() {
		key ^= zobristEnPassantFile[b.enPassant.File()]
	}

	if b.whiteToMove {
		key ^= zobristWhiteToMove
	}

	return key
}
