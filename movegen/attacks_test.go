package movegen

import (
	"testing"

	"goosecore/bitboard"
	"goosecore/magic"
)

func TestIsSquareAttackedByPawn(t *testing.T) {
	g := New(magic.New())
	b := newBoard(t, "4k3/8/8/4p3/8/8/8/4K3 b - - 0 1")
	d4, _ := bitboard.ParseSquare("d4")
	if !g.IsSquareAttacked(b, d4, bitboard.Black) {
		t.Fatalf("d4 should be attacked by the black pawn on e5")
	}
	d6, _ := bitboard.ParseSquare("d6")
	if g.IsSquareAttacked(b, d6, bitboard.Black) {
		t.Fatalf("d6 should not be attacked by the black pawn on e5")
	}
}

func TestInCheckUnrelatedRookIsNotCheck(t *testing.T) {
	g := New(magic.New())
	b := newBoard(t, "4k3/8/8/8/8/8/8/4K2R w - - 0 1")
	if g.InCheck(b, bitboard.White) {
		t.Fatalf("white king should not be in check here")
	}
}

func TestInCheckAlignedRook(t *testing.T) {
	g := New(magic.New())
	b := newBoard(t, "4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	if !g.InCheck(b, bitboard.White) {
		t.Fatalf("white king on e1 should be in check from the rook on a1")
	}
}

func TestResetHistoryClearsScores(t *testing.T) {
	g := New(magic.New())
	from, _ := bitboard.ParseSquare("e2")
	to, _ := bitboard.ParseSquare("e4")
	m := bitboard.NewMove(from, to, bitboard.WhitePawn, bitboard.NoPiece, bitboard.NoPieceType, bitboard.CastleNone, bitboard.NoSquare)
	g.RecordCutoff(bitboard.White, m, 5)
	g.ResetHistory()
	if g.history[bitboard.White][from][to] != 0 {
		t.Fatalf("ResetHistory did not clear the table")
	}
}
