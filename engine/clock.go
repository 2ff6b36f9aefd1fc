package engine

import (
	"time"

	"golang.org/x/exp/constraints"
)

// DefaultDepth is applied when a "go" command carries no depth and no
// movetime-style limit.
const DefaultDepth = 5

const (
	MaxMovetime = 24 * time.Hour
	minMovetime = 50 * time.Millisecond
	movetimeMargin = 20 * time.Millisecond

	// expectedRemainingMoves is the horizon used to carve a per-move
	// slice out of a game clock budget. Not a sophisticated
	// time-management policy — just enough to turn wtime/btime into a
	// single hard deadline.
	expectedRemainingMoves = 40
)

// ClockConfig mirrors the time-related fields of a UCI "go" command.
type ClockConfig struct {
	WhiteTime      time.Duration
	BlackTime      time.Duration
	WhiteIncrement time.Duration
	BlackIncrement time.Duration
	Movetime       time.Duration
	Infinite       bool
}

// Deadline computes the wall-clock instant a search must stop by, given
// cfg and whose turn it is to move. A zero Deadline means the search is
// bounded only by depth, not by time.
func Deadline(now time.Time, whiteToMove bool, cfg ClockConfig) time.Time {
	switch {
	case cfg.Infinite:
		return time.Time{}
	case cfg.Movetime > 0:
		return now.Add(budget(cfg.Movetime))
	case cfg.WhiteTime > 0 || cfg.BlackTime > 0:
		remaining, increment := cfg.BlackTime, cfg.BlackIncrement
		if whiteToMove {
			remaining, increment = cfg.WhiteTime, cfg.WhiteIncrement
		}
		slice := remaining/expectedRemainingMoves + increment
		return now.Add(budget(slice))
	default:
		return time.Time{}
	}
}

// budget clamps a raw duration into [minMovetime, MaxMovetime] and leaves
// a safety margin so the deadline is crossed with time to spare.
func budget(d time.Duration) time.Duration {
	d -= movetimeMargin
	return clamp(d, minMovetime, MaxMovetime)
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
