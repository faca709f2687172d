// Package movegen generates pseudo-legal and legal moves over a board's
// bitboards, grounded on the attack/check logic in
// _examples/Oliverans-GooseEngine/goosemg/movegen.go's computeCheckAndPins
// helpers and on the pawn-shift patterns in
// _examples/original_source/src/move_generator.cpp's sliding_attack/
// is_square_attacked.
package movegen

import (
	"goosecore/bitboard"
	"goosecore/board"
	"goosecore/magic"
)

// Generator holds the shared, read-only magic attack tables plus the
// per-side/from/to history-heuristic table (§4.5's "history[side][from][to]",
// reset on ucinewgame).
type Generator struct {
	magic   *magic.Tables
	history [2][64][64]int32
}

const historyMax = 1 << 24

// New builds a move generator bound to a (shared) magic table set.
func New(m *magic.Tables) *Generator {
	return &Generator{magic: m}
}

// ResetHistory clears the history table, per §4.5's "reset on ucinewgame."
func (g *Generator) ResetHistory() {
	g.history = [2][64][64]int32{}
}

func pawnAttackSquares(sqBB bitboard.Bitboard, color bitboard.Color) bitboard.Bitboard {
	if color == bitboard.White {
		return bitboard.ShiftNorthEast(sqBB) | bitboard.ShiftNorthWest(sqBB)
	}
	return bitboard.ShiftSouthEast(sqBB) | bitboard.ShiftSouthWest(sqBB)
}

// pawnAttackersOf returns the squares from which a byColor pawn would
// attack sq; i.e. the reverse of pawnAttackSquares.
func pawnAttackersOf(sq bitboard.Square, byColor bitboard.Color) bitboard.Bitboard {
	return pawnAttackSquares(sq.Bitboard(), byColor.Other())
}

// IsSquareAttacked reports whether any byColor piece attacks sq given the
// board's current occupancy, per §4.5's legality-filter check detection.
func (g *Generator) IsSquareAttacked(b *board.Board, sq bitboard.Square, byColor bitboard.Color) bool {
	occ := b.AllOccupancy()

	if g.magic.KnightAttacks(sq)&b.PieceBitboard(bitboard.MakePiece(byColor, bitboard.Knight)) != 0 {
		return true
	}
	if g.magic.KingAttacks(sq)&b.PieceBitboard(bitboard.MakePiece(byColor, bitboard.King)) != 0 {
		return true
	}
	diagonal := b.PieceBitboard(bitboard.MakePiece(byColor, bitboard.Bishop)) | b.PieceBitboard(bitboard.MakePiece(byColor, bitboard.Queen))
	if g.magic.BishopAttacks(sq, occ)&diagonal != 0 {
		return true
	}
	orthogonal := b.PieceBitboard(bitboard.MakePiece(byColor, bitboard.Rook)) | b.PieceBitboard(bitboard.MakePiece(byColor, bitboard.Queen))
	if g.magic.RookAttacks(sq, occ)&orthogonal != 0 {
		return true
	}
	pawns := b.PieceBitboard(bitboard.MakePiece(byColor, bitboard.Pawn))
	if pawns&pawnAttackersOf(sq, byColor) != 0 {
		return true
	}
	return false
}

// InCheck reports whether c's king is currently attacked.
func (g *Generator) InCheck(b *board.Board, c bitboard.Color) bool {
	king := b.KingSquare(c)
	if king == bitboard.NoSquare {
		return false
	}
	return g.IsSquareAttacked(b, king, c.Other())
}
