// Package uciproto is the thin UCI protocol wrapper excluded from the core
// per §1 ("the UCI text protocol loop... excluded as external collaborator")
// but required by §6 to accept the listed commands. Structure is grounded
// on _examples/Oliverans-GooseEngine/uci.go's bufio.Scanner token loop and
// switch-on-first-token dispatch.
package uciproto

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"goosecore/bitboard"
	"goosecore/board"
	"goosecore/eval"
	"goosecore/magic"
	"goosecore/movegen"
	"goosecore/search"
	"goosecore/tt"
	"goosecore/zobrist"
)

// Engine holds everything constructed once at process start and shared
// downward (§9's "cyclic ownership" note: the engine owns every subsystem,
// nothing points back up to it).
type Engine struct {
	out io.Writer

	zobrist *zobrist.Table
	magic   *magic.Tables
	gen     *movegen.Generator
	tt      *tt.Table
	eval    eval.Evaluator
	nn      *eval.NNEvaluator
	search  *search.Search

	pos *board.Board

	searchCancel context.CancelFunc
}

// NewEngine builds every subsystem once, per §3's lifecycle note.
func NewEngine(out io.Writer, hashMB int) *Engine {
	zt := zobrist.New()
	mg := magic.New()
	gen := movegen.New(mg)
	table := tt.New(hashMB)
	evaluator := eval.NewMaterial()
	s := search.New(gen, table, evaluator)

	pos, _ := board.ParseFEN(board.StartFEN, zt)

	return &Engine{
		out: out, zobrist: zt, magic: mg, gen: gen, tt: table, eval: evaluator, search: s, pos: pos,
	}
}

// Run drives the UCI read loop until "quit" or EOF.
func (e *Engine) Run(r io.Reader) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd := strings.ToLower(fields[0])
		switch cmd {
		case "uci":
			e.handleUCI()
		case "isready":
			fmt.Fprintln(e.out, "readyok")
		case "ucinewgame":
			e.handleNewGame()
		case "position":
			e.handlePosition(fields[1:])
		case "go":
			e.handleGo(fields[1:])
		case "stop":
			if e.searchCancel != nil {
				e.searchCancel()
			}
			e.search.Stop()
		case "setoption":
			e.handleSetOption(fields[1:])
		case "d", "display", "print":
			fmt.Fprintln(e.out, e.pos.ToFEN())
		case "quit":
			e.nn.Close()
			return
		default:
			// §7: malformed/unknown input is ignored silently, never aborts.
		}
	}
}

func (e *Engine) handleUCI() {
	fmt.Fprintln(e.out, "id name goosecore")
	fmt.Fprintln(e.out, "id author goosecore contributors")
	fmt.Fprintln(e.out, "option name Hash type spin default 256 min 1 max 1024")
	fmt.Fprintln(e.out, "option name Clear Hash type button")
	fmt.Fprintln(e.out, "option name Threads type spin default 1 min 1 max 64")
	fmt.Fprintln(e.out, "option name NullMove type check default true")
	fmt.Fprintln(e.out, "option name LateMove type check default true")
	fmt.Fprintln(e.out, "option name Futility type check default true")
	fmt.Fprintln(e.out, "option name Razoring type check default true")
	fmt.Fprintln(e.out, "option name AllPruning type check default true")
	fmt.Fprintln(e.out, "option name OpeningBook type string default <empty>")
	fmt.Fprintln(e.out, "option name SyzygyPath type string default <empty>")
	fmt.Fprintln(e.out, "option name EvalFile type string default <empty>")
	fmt.Fprintln(e.out, "uciok")
}

func (e *Engine) handleNewGame() {
	e.tt.Clear()
	e.gen.ResetHistory()
	e.pos, _ = board.ParseFEN(board.StartFEN, e.zobrist)
}

func (e *Engine) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}
	idx := 0
	var fen string
	switch args[0] {
	case "startpos":
		fen = board.StartFEN
		idx = 1
	case "fen":
		idx = 1
		var parts []string
		for idx < len(args) && args[idx] != "moves" {
			parts = append(parts, args[idx])
			idx++
		}
		fen = strings.Join(parts, " ")
	default:
		return
	}
	pos, err := board.ParseFEN(fen, e.zobrist)
	if err != nil {
		log.Printf("uci: malformed FEN %q: %v", fen, err)
		return
	}
	e.pos = pos
	if idx < len(args) && args[idx] == "moves" {
		for _, token := range args[idx+1:] {
			m, ok := e.parseUCIMove(token)
			if !ok {
				log.Printf("uci: malformed move %q", token)
				continue
			}
			e.pos.MakeMove(m)
		}
	}
}

func (e *Engine) parseUCIMove(token string) (bitboard.Move, bool) {
	if token == "0000" {
		return bitboard.NullMove, true
	}
	legal := e.gen.LegalMoves(e.pos)
	for _, m := range legal {
		if m.String() == token {
			return m, true
		}
	}
	return bitboard.NullMove, false
}

func (e *Engine) handleGo(args []string) {
	depth := 64
	var moveTime time.Duration
	var wtime, btime, winc, binc time.Duration
	perftDepth := -1
	infinite := false

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			i++
			if i < len(args) {
				depth, _ = strconv.Atoi(args[i])
			}
		case "movetime":
			i++
			if i < len(args) {
				ms, _ := strconv.Atoi(args[i])
				moveTime = time.Duration(ms) * time.Millisecond
			}
		case "wtime":
			i++
			if i < len(args) {
				ms, _ := strconv.Atoi(args[i])
				wtime = time.Duration(ms) * time.Millisecond
			}
		case "btime":
			i++
			if i < len(args) {
				ms, _ := strconv.Atoi(args[i])
				btime = time.Duration(ms) * time.Millisecond
			}
		case "winc":
			i++
			if i < len(args) {
				ms, _ := strconv.Atoi(args[i])
				winc = time.Duration(ms) * time.Millisecond
			}
		case "binc":
			i++
			if i < len(args) {
				ms, _ := strconv.Atoi(args[i])
				binc = time.Duration(ms) * time.Millisecond
			}
		case "infinite":
			infinite = true
		case "perft":
			i++
			if i < len(args) {
				perftDepth, _ = strconv.Atoi(args[i])
			}
		}
	}

	if perftDepth >= 0 {
		nodes := e.gen.PerftCached(e.pos, perftDepth, e.tt)
		fmt.Fprintf(e.out, "nodes %d\n", nodes)
		return
	}

	// Non-goal per §1: no time-management heuristics beyond a simple
	// movetime budget. wtime/btime get a flat fraction, nothing adaptive.
	if moveTime == 0 && !infinite {
		clock, inc := wtime, winc
		if e.pos.SideToMove() == bitboard.Black {
			clock, inc = btime, binc
		}
		if clock > 0 {
			moveTime = clock/20 + inc/2
		}
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if moveTime > 0 {
		ctx, cancel = context.WithTimeout(ctx, moveTime)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	e.searchCancel = cancel

	result := e.search.StartSearch(ctx, e.pos, depth, func(r search.Result) {
		e.printInfo(r)
	})
	cancel()

	best := bitboard.NullMove
	if len(result.PV) > 0 {
		best = result.PV[0]
	}
	fmt.Fprintf(e.out, "bestmove %s\n", best.String())
}

func (e *Engine) printInfo(r search.Result) {
	pvStrs := make([]string, len(r.PV))
	for i, m := range r.PV {
		pvStrs[i] = m.String()
	}
	scoreStr := fmt.Sprintf("cp %d", r.Score)
	if r.Score >= search.MateConst-search.MaxPly {
		scoreStr = fmt.Sprintf("mate %d", (search.MateConst-r.Score+1)/2)
	} else if r.Score <= -search.MateConst+search.MaxPly {
		scoreStr = fmt.Sprintf("mate -%d", (search.MateConst+r.Score+1)/2)
	}
	fmt.Fprintf(e.out, "info depth %d score %s nodes %d pv %s\n", r.Depth, scoreStr, r.Nodes, strings.Join(pvStrs, " "))
}

func (e *Engine) handleSetOption(args []string) {
	// Expected shape: name <Name...> value <V> (value part optional for
	// buttons like "Clear Hash").
	joined := strings.Join(args, " ")
	parts := strings.SplitN(joined, " value ", 2)
	name := strings.TrimSpace(strings.TrimPrefix(parts[0], "name "))
	var value string
	if len(parts) == 2 {
		value = strings.TrimSpace(parts[1])
	}

	switch strings.ToLower(name) {
	case "hash":
		mb, err := strconv.Atoi(value)
		if err != nil {
			return
		}
		if mb < 1 {
			mb = 1
		}
		if mb > 1024 {
			mb = 1024
		}
		e.tt.Resize(mb)
	case "clear hash":
		e.tt.Clear()
	case "nullmove":
		e.search.NullMove = value == "true"
	case "latemove":
		e.search.LateMove = value == "true"
	case "futility":
		e.search.Futility = value == "true"
	case "razoring":
		e.search.Razoring = value == "true"
	case "allpruning":
		on := value == "true"
		e.search.NullMove, e.search.LateMove, e.search.Futility, e.search.Razoring = on, on, on, on
	case "evalfile":
		e.loadEvalFile(value)
	case "openingbook", "syzygypath":
		// External collaborators (§1 exclusion); accepted and ignored by
		// the core, per §7's "file I/O... is the responsibility of
		// external collaborators."
	}
}

// loadEvalFile switches the evaluator to an ONNX model, per §2's "material
// or MLP" pluggability. A load failure is logged and the engine keeps
// whatever evaluator it already had — §7's "never abort" applies to the
// model file exactly as it does to malformed FEN/move input; the model is
// an external collaborator like the Syzygy path above it, not the core.
func (e *Engine) loadEvalFile(modelPath string) {
	if modelPath == "" || modelPath == "<empty>" {
		return
	}
	nn, err := eval.NewNNEvaluator(modelPath, "")
	if err != nil {
		log.Printf("uci: EvalFile %q failed to load, keeping current evaluator: %v", modelPath, err)
		return
	}
	if e.nn != nil {
		e.nn.Close()
	}
	e.nn = nn
	e.eval = nn
	e.search.Eval = nn
}
