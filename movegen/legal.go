package movegen

import (
	"goosecore/bitboard"
	"goosecore/board"
)

// LegalMoves filters PseudoLegalMoves down to moves that do not leave the
// mover's own king in check, via copy-make (the §9 open-question resolution:
// "copy-make is simpler and is preferred").
func (g *Generator) LegalMoves(b *board.Board) []bitboard.Move {
	pseudo := g.PseudoLegalMoves(b)
	mover := b.SideToMove()
	legal := make([]bitboard.Move, 0, len(pseudo))
	for _, m := range pseudo {
		copy := b.Clone()
		copy.MakeMove(m)
		if !g.IsSquareAttacked(copy, copy.KingSquare(mover), mover.Other()) {
			legal = append(legal, m)
		}
	}
	return legal
}

// HasLegalMoves is a short-circuiting variant used for fast terminal checks.
func (g *Generator) HasLegalMoves(b *board.Board) bool {
	pseudo := g.PseudoLegalMoves(b)
	mover := b.SideToMove()
	for _, m := range pseudo {
		copy := b.Clone()
		copy.MakeMove(m)
		if !g.IsSquareAttacked(copy, copy.KingSquare(mover), mover.Other()) {
			return true
		}
	}
	return false
}

// GivesCheck reports whether playing m leaves the opponent in check, used
// by quiescence's "quiet moves that deliver check" inclusion rule (§4.5).
func (g *Generator) GivesCheck(b *board.Board, m bitboard.Move) bool {
	copy := b.Clone()
	copy.MakeMove(m)
	return g.InCheck(copy, copy.SideToMove())
}

// CapturesPromotionsAndChecks narrows legal moves to the quiescence move
// set of §4.7: captures, promotions, and quiet checks.
func (g *Generator) CapturesPromotionsAndChecks(b *board.Board, legal []bitboard.Move) []bitboard.Move {
	out := make([]bitboard.Move, 0, len(legal))
	for _, m := range legal {
		if m.IsCapture() || m.IsPromotion() || m.IsEnPassant() {
			out = append(out, m)
			continue
		}
		if g.GivesCheck(b, m) {
			out = append(out, m)
		}
	}
	return out
}
