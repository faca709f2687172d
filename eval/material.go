package eval

import (
	"goosecore/bitboard"
	"goosecore/board"
)

// pieceCentipawns mirrors the PAWN/KNIGHT/BISHOP/ROOK/QUEEN/KING values in
// _examples/original_source/src/types.h's Piece_Value enum and the
// MATERIAL_EVAL table in _examples/original_source/src/search.h.
var pieceCentipawns = [6]int{100, 300, 300, 500, 900, 0}

// Material is the simplest Evaluator: sum of each side's piece values,
// from the side-to-move's perspective.
type Material struct{}

func NewMaterial() *Material { return &Material{} }

func (Material) Evaluate(b *board.Board) int {
	var white, black int
	for pt := bitboard.Pawn; pt <= bitboard.Queen; pt++ {
		white += b.PieceBitboard(bitboard.MakePiece(bitboard.White, pt)).PopCount() * pieceCentipawns[pt]
		black += b.PieceBitboard(bitboard.MakePiece(bitboard.Black, pt)).PopCount() * pieceCentipawns[pt]
	}
	score := white - black
	if b.SideToMove() == bitboard.Black {
		return -score
	}
	return score
}
