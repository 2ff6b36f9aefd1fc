// Package uci is a thin text-protocol façade over the engine: it decodes
// UCI command lines into PositionParams/GoParams and renders the
// engine's output lines. It holds no chess logic of its own.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kespar/branchmate/board"
	"github.com/kespar/branchmate/engine"
	"github.com/kespar/branchmate/fen"
)

var (
	EngineName   = "Branchmate"
	EngineAuthor = "branchmate contributors"
)

// Interface drives one UCI session over an input/output stream pair.
type Interface struct {
	in  *bufio.Reader
	out io.Writer

	engine *engine.Engine
	debug  bool
}

// NewInterface constructs a session reading commands from in and
// writing protocol lines to out.
func NewInterface(in io.Reader, out io.Writer) *Interface {
	return &Interface{
		in:     bufio.NewReader(in),
		out:    out,
		engine: engine.NewEngine(engine.EngineConfig{}),
	}
}

// Run reads commands until "quit" or end of input.
func (i *Interface) Run() error {
	for {
		line, err := i.in.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		args := strings.Fields(line)
		switch args[0] {
		case "uci":
			i.handleUCI()
		case "isready":
			i.println("readyok")
		case "ucinewgame":
			i.engine.NewGame()
		case "position":
			i.handlePosition(args[1:])
		case "go":
			i.handleGo(args[1:])
		case "stop":
			i.engine.Stop()
		case "d":
			i.handleDraw()
		case "debug":
			i.handleDebug(args[1:])
		case "setoption":
			// accepted, no configurable options yet
		case "register":
			i.println("registration checking")
		case "ponderhit":
			// no pondering support; accepted as a no-op
		case "quit":
			i.engine.Stop()
			return nil
		default:
			i.println(fmt.Sprintf("info string unknown command %q", args[0]))
		}
	}
}

// handleDraw renders the "d" debug command: a colorized board, the
// non-board state beneath it, a check/checkmate/stalemate classification,
// and the FEN of the current position.
func (i *Interface) handleDraw() {
	b := i.engine.Board()
	if i.debug {
		// ASCII, no ANSI codes, so it stays readable piped to a log file.
		i.println(b.Dump())
	} else {
		i.println(b.Draw())
	}
	i.println(b.DebugString())
	i.println(board.EvaluateResult(b))
	i.println(fen.String(b))
}

func (i *Interface) handleUCI() {
	i.println(fmt.Sprintf("id name %s", EngineName))
	i.println(fmt.Sprintf("id author %s", EngineAuthor))
	i.println("uciok")
}

func (i *Interface) handleDebug(args []string) {
	if len(args) == 0 {
		return
	}
	switch args[0] {
	case "on":
		i.debug = true
	case "off":
		i.debug = false
	}
}

func (i *Interface) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	params := engine.PositionParams{}
	rest := args[1:]
	switch args[0] {
	case "startpos":
		// zero-value FEN means the standard starting position
	case "fen":
		n := 0
		for n < len(rest) && rest[n] != "moves" {
			n++
		}
		params.FEN = strings.Join(rest[:n], " ")
		rest = rest[n:]
	default:
		return
	}

	if len(rest) > 0 && rest[0] == "moves" {
		params.Moves = rest[1:]
	}

	if err := i.engine.SetPosition(params); err != nil {
		i.println(fmt.Sprintf("info string %v", err))
	}
}

func (i *Interface) handleGo(args []string) {
	if len(args) > 0 && args[0] == "perft" {
		i.handlePerft(args[1:])
		return
	}

	var params engine.GoParams
	for n := 0; n < len(args); n++ {
		switch args[n] {
		case "depth":
			n++
			params.Depth = atoiOr(args, n, 0)
		case "movetime":
			n++
			params.Movetime = time.Duration(atoiOr(args, n, 0)) * time.Millisecond
		case "wtime":
			n++
			params.WhiteTime = time.Duration(atoiOr(args, n, 0)) * time.Millisecond
		case "btime":
			n++
			params.BlackTime = time.Duration(atoiOr(args, n, 0)) * time.Millisecond
		case "winc":
			n++
			params.WhiteInc = time.Duration(atoiOr(args, n, 0)) * time.Millisecond
		case "binc":
			n++
			params.BlackInc = time.Duration(atoiOr(args, n, 0)) * time.Millisecond
		case "movestogo":
			n++
			params.MovesToGo = atoiOr(args, n, 0)
		case "nodes":
			n++
			params.Nodes = uint64(atoiOr(args, n, 0))
		case "mate":
			n++
			params.Mate = atoiOr(args, n, 0)
		case "infinite":
			params.Infinite = true
		default:
			// unknown sub-token, ignored per protocol
		}
	}

	i.engine.SetLogger(i.println)
	i.engine.Go(params)
}

func (i *Interface) handlePerft(args []string) {
	if len(args) == 0 {
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil {
		return
	}
	b := i.engine.Board().Clone()
	divide := engine.PerftDivide(b, depth)
	var total uint64
	for mv, n := range divide {
		i.println(fmt.Sprintf("%s: %d", mv, n))
		total += n
	}
	i.println(fmt.Sprintf("nodes searched: %d", total))
}

func atoiOr(args []string, i, fallback int) int {
	if i < 0 || i >= len(args) {
		return fallback
	}
	v, err := strconv.Atoi(args[i])
	if err != nil {
		return fallback
	}
	return v
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
