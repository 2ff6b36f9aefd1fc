package engine

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/kespar/branchmate/board"
	"github.com/kespar/branchmate/fen"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Mate sits well outside any reachable material evaluation (the heaviest
// legal material swing is on the order of a thousand, dominated by the
// king's own value) so a checkmate terminal can never be confused with a
// real score.
const Mate = 1_000_000.0

// MaxSearchDepth bounds recursion for movetime- or stop-only searches
// (UCI "go infinite" or a plain "go movetime N") that carry no explicit
// depth: nothing in this position space needs more plies than this to
// terminate via checkmate or stalemate.
const MaxSearchDepth = 64

// ErrIllegalMove is returned when a "position ... moves" replay or a
// "go"-adjacent move string does not name a currently legal move.
var ErrIllegalMove = errors.New("illegal move")

// DefaultLogger writes UCI output lines to standard output.
func DefaultLogger(a ...any) {
	fmt.Println(a...)
}

// PositionParams is the decoded form of a UCI "position" command.
type PositionParams struct {
	FEN   string // empty means the standard starting position
	Moves []string
}

// GoParams is the decoded form of a UCI "go" command. Zero-valued fields
// are simply absent from the request; Engine.Go fills in its own
// defaults (depth 5 when nothing else constrains the search).
type GoParams struct {
	Depth     int
	Movetime  time.Duration
	WhiteTime time.Duration
	BlackTime time.Duration
	WhiteInc  time.Duration
	BlackInc  time.Duration
	MovesToGo int
	Nodes     uint64
	Mate      int
	Infinite  bool
}

// EngineConfig configures a new Engine.
type EngineConfig struct {
	Logger func(...any)
}

// Engine owns the board and transposition table for one UCI session and
// runs at most one search at a time on a single background worker, so
// that "stop" and other commands stay responsive while "go" is in
// flight.
type Engine struct {
	mu    sync.Mutex
	board *board.Board
	tt    *TranspositionTable

	logger func(...any)

	stop atomic.Bool
	wg   sync.WaitGroup
}

// NewEngine returns an Engine positioned at the standard starting
// position with an empty transposition table.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Logger == nil {
		cfg.Logger = DefaultLogger
	}
	return &Engine{
		board:  board.NewBoard(),
		tt:     NewTranspositionTable(),
		logger: cfg.Logger,
	}
}

// NewGame resets the transposition table and the board. Callers MUST NOT
// invoke this while a search is running.
func (e *Engine) NewGame() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tt.Clear()
	e.board = board.NewBoard()
}

// SetPosition resets the board, either to the standard starting position
// or to a FEN-decoded one, then replays each UCI move string by looking
// it up in the legal move list for the position reached so far. Callers
// MUST NOT invoke this while a search is running; Go enforces that by
// stopping any in-flight search first.
func (e *Engine) SetPosition(params PositionParams) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	var b *board.Board
	if params.FEN == "" {
		b = board.NewBoard()
	} else {
		parsed, err := fen.Parse(params.FEN)
		if err != nil {
			return err
		}
		b = parsed
	}

	for _, uciMove := range params.Moves {
		mv, ok := findLegalMove(b, uciMove)
		if !ok {
			return fmt.Errorf("%w: %q", ErrIllegalMove, uciMove)
		}
		board.MakeMove(b, mv)
	}

	e.board = b
	return nil
}

func findLegalMove(b *board.Board, uci string) (board.Move, bool) {
	for _, mv := range board.GenerateLegalMoves(b) {
		if mv.UCI() == uci {
			return mv, true
		}
	}
	return board.Move{}, false
}

// Go cancels any in-flight search, then launches a new one in the
// background. The worker emits "info ..." and "bestmove ..." lines
// through the configured logger when it finishes or is stopped.
func (e *Engine) Go(params GoParams) {
	e.Stop()

	e.mu.Lock()
	b := e.board.Clone()
	tt := e.tt
	logger := e.logger
	e.mu.Unlock()

	depth := params.Depth
	deadline := Deadline(time.Now(), b.WhiteToMove(), ClockConfig{
		WhiteTime:      params.WhiteTime,
		BlackTime:      params.BlackTime,
		WhiteIncrement: params.WhiteInc,
		BlackIncrement: params.BlackInc,
		Movetime:       params.Movetime,
		Infinite:       params.Infinite,
	})
	switch {
	case depth != 0:
		// explicit depth request, used as-is
	case deadline.IsZero() && !params.Infinite:
		depth = DefaultDepth
	default:
		// time- or stop-bounded search with no explicit depth: cap the
		// ply count generously and let the deadline/stop flag end it.
		depth = MaxSearchDepth
	}

	e.stop.Store(false)
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		start := time.Now()
		mv, score, nodes := FindBestMove(b, depth, &e.stop, deadline, tt)
		elapsed := time.Since(start)
		logger(formatInfo(depth, score, nodes, elapsed))
		logger(formatBestMove(mv))
	}()
}

// Stop requests cancellation of any in-flight search and waits for the
// worker to finish. It is idempotent: calling it with no active search
// is a no-op.
func (e *Engine) Stop() {
	e.stop.Store(true)
	e.wg.Wait()
}

// Board exposes the engine's current position. The caller must not
// mutate it while a search is in flight.
func (e *Engine) Board() *board.Board {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.board
}

// SetLogger replaces the function used to emit "info"/"bestmove" lines.
func (e *Engine) SetLogger(logger func(...any)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logger = logger
}

func formatBestMove(mv board.Move) string {
	if mv.IsZero() {
		return "bestmove 0000"
	}
	return "bestmove " + mv.UCI()
}

func formatInfo(depth int, score float64, nodes uint64, elapsed time.Duration) string {
	nps := float64(nodes) / (elapsed.Seconds() + 1e-9)
	return message.NewPrinter(language.English).
		Sprintf("info depth %d score %s nodes %d nps %.0f time %d",
			depth, formatScore(score), nodes, nps, elapsed.Milliseconds())
}

func formatScore(score float64) string {
	if score >= Mate-1000 {
		return "mate 1"
	}
	if score <= -(Mate - 1000) {
		return "mate -1"
	}
	return fmt.Sprintf("cp %d", int(math.Round(score*100)))
}

// searcher holds the mutable state threaded through one call to
// FindBestMove: the transposition table it reads and writes, the
// cancellation flag and deadline it polls, and a running node count.
type searcher struct {
	tt       *TranspositionTable
	stop     *atomic.Bool
	deadline time.Time
	nodes    uint64
}

func (s *searcher) timeUp() bool {
	if s.stop.Load() {
		return true
	}
	return !s.deadline.IsZero() && time.Now().After(s.deadline)
}

// FindBestMove runs a fixed-depth negamax alpha-beta search rooted at b
// and returns the best move found, its score from White's perspective
// negated to the side to move (i.e. the side-to-move-relative score the
// root negamax call produced), and the node count. It returns the zero
// Move if the position has no legal moves.
//
// depth, stop and deadline are polled at the top of every recursive call
// and between root-move iterations, matching the granularity the source
// engine uses: cancellation is observed at node entry, not mid-node.
func FindBestMove(b *board.Board, depth int, stop *atomic.Bool, deadline time.Time, tt *TranspositionTable) (board.Move, float64, uint64) {
	s := &searcher{tt: tt, stop: stop, deadline: deadline}

	moves := board.GenerateLegalMoves(b)
	if len(moves) == 0 {
		return board.Move{}, 0, s.nodes
	}

	best := moves[0]
	bestScore := math.Inf(-1)
	alpha, beta := -Mate-1, Mate+1

	for _, mv := range moves {
		if s.timeUp() {
			break
		}
		undo := board.MakeMove(b, mv)
		score := -s.alphaBeta(b, depth-1, -beta, -alpha)
		board.UnmakeMove(b, mv, undo)

		if score > bestScore {
			bestScore = score
			best = mv
		}
		if score > alpha {
			alpha = score
		}
	}
	return best, bestScore, s.nodes
}

// alphaBeta implements the negamax alpha-beta recursion: depth 0 returns
// the side-to-move-relative material evaluation, a TT hit at sufficient
// depth tightens or resolves the window, and otherwise every legal move
// is tried with the window negated and swapped.
func (s *searcher) alphaBeta(b *board.Board, depth int, alpha, beta float64) float64 {
	s.nodes++

	if s.timeUp() {
		return 0
	}

	if depth == 0 {
		return evaluateRelative(b)
	}

	key := b.Hash()
	if entry, ok := s.tt.Probe(key); ok && entry.Depth >= depth {
		switch entry.Kind {
		case NodeExact:
			return entry.Value
		case NodeLowerBound:
			if entry.Value > alpha {
				alpha = entry.Value
			}
		case NodeUpperBound:
			if entry.Value < beta {
				beta = entry.Value
			}
		}
		if alpha >= beta {
			return entry.Value
		}
	}

	moves := board.GenerateLegalMoves(b)
	if len(moves) == 0 {
		if board.IsKingInCheck(b, b.WhiteToMove()) {
			return -Mate
		}
		return 0
	}

	kind := NodeUpperBound
	bestScore := math.Inf(-1)
	var bestMove board.Move
	for _, mv := range moves {
		undo := board.MakeMove(b, mv)
		score := -s.alphaBeta(b, depth-1, -beta, -alpha)
		board.UnmakeMove(b, mv, undo)

		if score > bestScore {
			bestScore = score
			bestMove = mv
		}
		if score > alpha {
			alpha = score
			kind = NodeExact
		}
		if alpha >= beta {
			kind = NodeLowerBound
			break
		}
	}

	s.tt.Store(key, bestScore, kind, depth, bestMove)
	return bestScore
}

// evaluateRelative converts Evaluate's White-relative score into the
// side-to-move-relative score negamax expects.
func evaluateRelative(b *board.Board) float64 {
	if b.WhiteToMove() {
		return Evaluate(b)
	}
	return -Evaluate(b)
}
