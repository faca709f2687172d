package zobrist

import "goosecore/bitboard"

import "testing"

func TestNewIsDeterministic(t *testing.T) {
	a, b := New(), New()
	if *a != *b {
		t.Fatalf("two default-seeded tables diverged")
	}
}

func TestNewSeededVaries(t *testing.T) {
	a, b := NewSeeded(1), NewSeeded(2)
	if *a == *b {
		t.Fatalf("two differently-seeded tables produced identical words")
	}
}

func TestTableWordsAreDistinct(t *testing.T) {
	tbl := New()
	seen := make(map[uint64]bool, TableSize)
	collisions := 0
	for _, k := range tbl.keys {
		if seen[k] {
			collisions++
		}
		seen[k] = true
	}
	if collisions > 1 {
		t.Fatalf("%d colliding words out of %d, table looks degenerate", collisions, TableSize)
	}
}

func TestCastlingDeltaIsXOROfParts(t *testing.T) {
	tbl := New()
	want := tbl.Castling(bitboard.WhiteOO) ^ tbl.Castling(bitboard.BlackOOO)
	got := tbl.CastlingDelta(bitboard.WhiteOO | bitboard.BlackOOO)
	if got != want {
		t.Fatalf("CastlingDelta = %d, want %d", got, want)
	}
}

func TestPieceSquareCoversFullRange(t *testing.T) {
	tbl := New()
	if tbl.PieceSquare(bitboard.BlackPawn, 0) == tbl.PieceSquare(bitboard.WhiteKing, 63) {
		t.Fatalf("distinct (piece, square) pairs collided (may be coincidence, but flag for review)")
	}
}
