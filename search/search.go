// Package search implements iterative-deepening negamax alpha-beta with
// quiescence, grounded algorithmically on
// _examples/original_source/src/search.cpp's AlphaBeta/Quiesce (which tracks
// §4.7 almost line for line) and stylistically on the teacher's
// _examples/Oliverans-GooseEngine/engine/search.go (PV handling, UCI info
// lines, toggle flags).
package search

import (
	"context"
	"log"
	"math/bits"
	"sync/atomic"

	"github.com/google/uuid"

	"goosecore/bitboard"
	"goosecore/board"
	"goosecore/eval"
	"goosecore/movegen"
	"goosecore/tt"
)

// Search owns the mutable state of one engine: the shared move generator
// and transposition table, the pluggable evaluator, and the four selective
// pruning toggles named in _examples/original_source/src/search.h.
type Search struct {
	Gen   *movegen.Generator
	TT    *tt.Table
	Eval  eval.Evaluator
	TBProbe func(b *board.Board) (wdl int, ok bool)

	NullMove bool
	LateMove bool
	Futility bool
	Razoring bool

	stop  atomic.Bool
	nodes uint64

	killers [MaxPly][2]bitboard.Move
}

// New builds a Search with every pruning toggle enabled, matching the
// teacher's default UCI options.
func New(gen *movegen.Generator, table *tt.Table, evaluator eval.Evaluator) *Search {
	return &Search{
		Gen: gen, TT: table, Eval: evaluator,
		NullMove: true, LateMove: true, Futility: true, Razoring: true,
	}
}

// Stop sets the cooperative cancellation flag (§5). Observed with relaxed
// ordering — atomic.Bool's Load/Store already give that on every Go target.
func (s *Search) Stop() { s.stop.Store(true) }

func (s *Search) resetStop() { s.stop.Store(false) }

func (s *Search) stopped() bool { return s.stop.Load() }

// Result is one completed iterative-deepening depth's report.
type Result struct {
	Depth int
	Score int
	Nodes uint64
	PV    []bitboard.Move
}

func nonPawnMaterial(b *board.Board, c bitboard.Color) bool {
	for pt := bitboard.Knight; pt <= bitboard.Queen; pt++ {
		if b.PieceBitboard(bitboard.MakePiece(c, pt)) != 0 {
			return true
		}
	}
	return false
}

// hasOnlyCastlingEmpty reports whether neither side retains any castling
// right, the §4.7 step-2 gate for consulting the tablebase oracle.
func hasOnlyCastlingEmpty(b *board.Board) bool {
	return b.CastlingRights() == bitboard.NoCastling
}

// alphaBeta implements §4.7's fifteen-step node body. ply is the distance
// from the search root; isRoot exempts the TT cutoff at the root
// per the original's "can_prune = max_depth != depth".
func (s *Search) alphaBeta(b *board.Board, depth, ply, alpha, beta int, isRoot bool) (int, []bitboard.Move) {
	s.nodes++

	// Step 2: tablebase oracle (external collaborator; never fatal on miss).
	if s.TBProbe != nil && hasOnlyCastlingEmpty(b) {
		if wdl, ok := s.TBProbe(b); ok {
			return wdlToScore(wdl), nil
		}
	}

	legal := s.Gen.LegalMoves(b)

	// Step 3: terminal checks.
	if len(legal) == 0 {
		if s.Gen.InCheck(b, b.SideToMove()) {
			return -(MateConst - ply), nil
		}
		return DrawScore, nil
	}
	if b.IsInsufficientMaterial() || b.HalfmoveClock() >= 100 {
		return DrawScore, nil
	}

	// Step 4: horizon.
	if depth <= 0 {
		return s.quiescence(b, alpha, beta, ply)
	}

	alphaOrig := alpha

	// Step 5: TT probe.
	var ttMove bitboard.Move
	key := b.Hash()
	if entry, ok := s.TT.Probe(key); ok && entry.Key == key {
		ttMove = entry.Move
		if entry.Depth >= depth && !isRoot {
			score := scoreFromTT(entry.Eval, ply)
			switch entry.Flag {
			case tt.FlagExact:
				return score, []bitboard.Move{entry.Move}
			case tt.FlagLower:
				if score >= beta {
					return score, nil
				}
			case tt.FlagUpper:
				if score <= alpha {
					return score, nil
				}
			}
		}
	}

	inCheck := s.Gen.InCheck(b, b.SideToMove())

	// Step 6: null-move pruning.
	if s.NullMove && !isRoot && depth >= 2 && !inCheck && nonPawnMaterial(b, b.SideToMove()) {
		const reduction = 2
		nullState := b.MakeNullMove()
		score, _ := s.alphaBeta(b, depth-1-reduction, ply+1, -beta, -beta+1, false)
		score = -score
		b.UnmakeNullMove(nullState)
		if s.stopped() {
			return alpha, nil
		}
		if score >= beta {
			return beta, nil
		}
	}

	// Step 7: static evaluation.
	e := s.Eval.Evaluate(b)

	// Step 8: razoring.
	if s.Razoring && !isRoot && !inCheck && e < alpha-(514+294*depth*depth) {
		return s.quiescence(b, alpha, beta, ply)
	}

	// Step 9: futility.
	if s.Futility && !isRoot && !inCheck && depth > 0 {
		margin := 200 * (bits.Len(uint(depth)) - 1)
		if e-margin >= beta {
			return (2*beta + e) / 3, nil
		}
	}

	// Step 10: order moves.
	ordered := s.Gen.OrderMovesWithKillers(legal, b.SideToMove(), ttMove, s.killers[ply])

	var best bitboard.Move
	var bestPV []bitboard.Move
	mover := b.SideToMove()

	// Step 11: iterate.
	for i, m := range ordered {
		child := b.Clone()
		child.MakeMove(m)

		reduction := 0
		if s.LateMove && i >= 10 {
			reduction = (bits.Len(uint(i)) - 1) / 4
			if reduction > 4 {
				reduction = 4
			}
		}
		childDepth := depth - 1 - reduction
		score, childPV := s.alphaBeta(child, childDepth, ply+1, -beta, -alpha, false)
		score = -score

		// Step 14: cooperative cancellation.
		if s.stopped() {
			return alpha, bestPV
		}

		// Step 12: beta cutoff.
		if score >= beta {
			if !m.IsCapture() && !m.IsPromotion() {
				s.Gen.RecordCutoff(mover, m, depth)
				s.killers[ply][1] = s.killers[ply][0]
				s.killers[ply][0] = m
			}
			s.TT.Store(key, depth, s.nodes, scoreToTT(beta, ply), tt.FlagLower, m)
			return beta, append([]bitboard.Move{m}, childPV...)
		}

		// Step 13: raise alpha.
		if score > alpha {
			alpha = score
			best = m
			bestPV = append([]bitboard.Move{m}, childPV...)
		}
	}

	// Step 15: classify and store.
	flag := tt.FlagUpper
	if alpha > alphaOrig {
		flag = tt.FlagExact
	}
	s.TT.Store(key, depth, s.nodes, scoreToTT(alpha, ply), flag, best)
	return alpha, bestPV
}

// quiescence implements §4.7's five-step tactical extension.
func (s *Search) quiescence(b *board.Board, alpha, beta, ply int) (int, []bitboard.Move) {
	s.nodes++

	// Step 1: terminal checks, same as alphaBeta steps 2-3, mate/stalemate
	// first so a side checkmated at the horizon is never misreported by the
	// stand-pat cutoff below.
	if s.TBProbe != nil && hasOnlyCastlingEmpty(b) {
		if wdl, ok := s.TBProbe(b); ok {
			return wdlToScore(wdl), nil
		}
	}
	legal := s.Gen.LegalMoves(b)
	if len(legal) == 0 {
		if s.Gen.InCheck(b, b.SideToMove()) {
			return -(MateConst - ply), nil
		}
		return DrawScore, nil
	}
	if b.IsInsufficientMaterial() || b.HalfmoveClock() >= 100 {
		return DrawScore, nil
	}

	// Step 2: stand pat.
	standPat := s.Eval.Evaluate(b)
	if standPat >= beta {
		return beta, nil
	}
	if standPat > alpha {
		alpha = standPat
	}

	// Step 3: tactical move set.
	tactical := s.Gen.CapturesPromotionsAndChecks(b, legal)
	ordered := s.Gen.OrderMoves(tactical, b.SideToMove(), bitboard.NullMove)

	const queenValue = 900
	var bestPV []bitboard.Move
	for _, m := range ordered {
		// Step 4: delta pruning.
		delta := queenValue
		if m.IsPromotion() {
			delta += queenValue - 200
		}
		if standPat+delta < alpha {
			return alpha, bestPV
		}

		child := b.Clone()
		child.MakeMove(m)
		score, childPV := s.quiescence(child, -beta, -alpha, ply+1)
		score = -score

		if s.stopped() {
			return alpha, bestPV
		}

		if score >= beta {
			return beta, append([]bitboard.Move{m}, childPV...)
		}
		if score > alpha {
			alpha = score
			bestPV = append([]bitboard.Move{m}, childPV...)
		}
	}
	return alpha, bestPV
}

// StartSearch runs iterative deepening from depth 1 to maxDepth,
// publishing one Result per completed depth and tagging the run with a
// session UUID for log correlation (grounded on
// _examples/H1W0XXX-xionghan/internal/server/game/manager.go's
// uuid.NewString() session tagging) — never written to the UCI stream
// itself, only to the diagnostic logger.
func (s *Search) StartSearch(ctx context.Context, b *board.Board, maxDepth int, onResult func(Result)) Result {
	s.resetStop()
	s.nodes = 0
	// ply tracks maxDepth 1:1 while depth>0 (§4.7 step 10's killers[ply]
	// lookup), so an unclamped caller-supplied depth (e.g. "go depth 129"
	// from UCI, which has no protocol-level upper bound) would index past
	// the end of the fixed-size killers table. Clamp rather than panic.
	if maxDepth > MaxPly {
		maxDepth = MaxPly
	}
	if maxDepth < 1 {
		maxDepth = 1
	}
	sessionID := uuid.NewString()
	log.Printf("search session=%s start depth=%d fen=%s", sessionID, maxDepth, b.ToFEN())

	var last Result
	for depth := 1; depth <= maxDepth; depth++ {
		select {
		case <-ctx.Done():
			s.Stop()
		default:
		}
		if s.stopped() {
			break
		}
		score, pv := s.alphaBeta(b, depth, 0, -MaxScore, MaxScore, true)
		if s.stopped() && depth > 1 {
			// Partial depth: the previous completed PV remains authoritative.
			break
		}
		last = Result{Depth: depth, Score: score, Nodes: s.nodes, PV: pv}
		if onResult != nil {
			onResult(last)
		}
		if isMateScore(score) {
			break
		}
	}
	log.Printf("search session=%s done depth=%d nodes=%d score=%d", sessionID, last.Depth, last.Nodes, last.Score)
	return last
}
