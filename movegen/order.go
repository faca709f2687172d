package movegen

import (
	"sort"

	"goosecore/bitboard"
)

// pieceValue mirrors the material scale used for MVV/LVA ordering; it is
// independent of (and coarser than) whatever the pluggable Evaluation
// interface uses for static scoring.
var pieceValue = map[bitboard.PieceType]int{
	bitboard.Pawn:   100,
	bitboard.Knight: 300,
	bitboard.Bishop: 300,
	bitboard.Rook:   500,
	bitboard.Queen:  900,
	bitboard.King:   10000,
}

// OrderMoves sorts moves per §4.5: hash move first, then captures by
// MVV/LVA descending, then promotions by promoted-piece value descending,
// then quiets by history score descending (OrderMovesWithKillers adds the
// killer-move bonus). Sort is stable so ties keep generation order.
func (g *Generator) OrderMoves(moves []bitboard.Move, side bitboard.Color, hashMove bitboard.Move) []bitboard.Move {
	return g.orderMoves(moves, side, hashMove, [2]bitboard.Move{})
}

// OrderMovesWithKillers is OrderMoves plus a killer-move bonus for the two
// quiet moves that most recently caused a beta-cutoff at this ply, per §2's
// "MVV/LVA + killer/history" ordering.
func (g *Generator) OrderMovesWithKillers(moves []bitboard.Move, side bitboard.Color, hashMove bitboard.Move, killers [2]bitboard.Move) []bitboard.Move {
	return g.orderMoves(moves, side, hashMove, killers)
}

func (g *Generator) orderMoves(moves []bitboard.Move, side bitboard.Color, hashMove bitboard.Move, killers [2]bitboard.Move) []bitboard.Move {
	scored := make([]struct {
		m     bitboard.Move
		score int
	}, len(moves))
	for i, m := range moves {
		scored[i].m = m
		switch {
		case !hashMove.IsNull() && m == hashMove:
			scored[i].score = 1 << 30
		case m.IsCapture():
			victim := pieceValue[m.CapturePiece().Type()]
			attacker := pieceValue[m.Piece().Type()]
			scored[i].score = 1<<20 + 100*victim - attacker
		case m.IsPromotion():
			scored[i].score = 1<<19 + pieceValue[m.PromotionPieceType()]
		case m == killers[0]:
			scored[i].score = 1<<18 + 1
		case m == killers[1]:
			scored[i].score = 1 << 18
		default:
			scored[i].score = int(g.history[side][m.From()][m.To()])
		}
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
	out := make([]bitboard.Move, len(scored))
	for i, s := range scored {
		out[i] = s.m
	}
	return out
}

// RecordCutoff bumps the history score for a quiet move that caused a
// beta-cutoff, clamped per §4.5 ("clamped to a maximum (≈ 2^24)").
func (g *Generator) RecordCutoff(side bitboard.Color, m bitboard.Move, depth int) {
	if m.IsCapture() || m.IsPromotion() {
		return
	}
	v := g.history[side][m.From()][m.To()] + int32(depth*depth)
	if v > historyMax {
		v = historyMax
	}
	g.history[side][m.From()][m.To()] = v
}
