package board

// Result summarizes whether a position is ongoing, checkmate, or
// stalemate. The halfmove-clock-based fifty-move flag is informational
// only: draw detection is deliberately left out of search, so nothing
// in this module treats ResultFiftyMoveReached as terminal.
type Result uint8

const (
	ResultInProgress Result = iota
	ResultCheck
	ResultCheckmate
	ResultStalemate
	ResultFiftyMoveReached
)

func (r Result) String() string {
	switch r {
	case ResultCheck:
		return "check"
	case ResultCheckmate:
		return "checkmate"
	case ResultStalemate:
		return "stalemate"
	case ResultFiftyMoveReached:
		return "fifty-move rule reached"
	default:
		return "in progress"
	}
}

// EvaluateResult classifies the position for display purposes (the "d"
// UCI command, debug logging) — it is not consulted by search, which
// works directly off GenerateLegalMoves and IsKingInCheck.
func EvaluateResult(b *Board) Result {
	legal := GenerateLegalMoves(b)
	inCheck := IsKingInCheck(b, b.WhiteToMove())
	if len(legal) == 0 {
		if inCheck {
			return ResultCheckmate
		}
		return ResultStalemate
	}
	if b.HalfmoveClock() >= 100 {
		return ResultFiftyMoveReached
	}
	if inCheck {
		return ResultCheck
	}
	return ResultInProgress
}
