package bitboard

import "testing"

func TestSquareRankFileRoundTrip(t *testing.T) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			sq := SquareFromRankFile(rank, file)
			if sq.Rank() != rank || sq.File() != file {
				t.Fatalf("rank=%d file=%d round-tripped to rank=%d file=%d", rank, file, sq.Rank(), sq.File())
			}
		}
	}
}

func TestParseSquareRoundTrip(t *testing.T) {
	for _, s := range []string{"a8", "h8", "a1", "h1", "e4", "d5"} {
		sq, ok := ParseSquare(s)
		if !ok {
			t.Fatalf("ParseSquare(%q) failed", s)
		}
		if got := sq.String(); got != s {
			t.Fatalf("ParseSquare(%q).String() = %q", s, got)
		}
	}
}

func TestPopCountAndPopLSB(t *testing.T) {
	bb := Bitboard(0)
	bb |= SquareFromRankFile(0, 0).Bitboard()
	bb |= SquareFromRankFile(3, 4).Bitboard()
	bb |= SquareFromRankFile(7, 7).Bitboard()
	if bb.PopCount() != 3 {
		t.Fatalf("PopCount() = %d, want 3", bb.PopCount())
	}
	var seen []Square
	for bb != 0 {
		seen = append(seen, bb.PopLSB())
	}
	if len(seen) != 3 {
		t.Fatalf("PopLSB drained %d squares, want 3", len(seen))
	}
}

func TestShiftsStayInBoard(t *testing.T) {
	a1 := SquareFromRankFile(7, 0).Bitboard()
	if ShiftWest(a1) != 0 {
		t.Fatalf("ShiftWest off the a-file should vanish, got nonzero")
	}
	h1 := SquareFromRankFile(7, 7).Bitboard()
	if ShiftEast(h1) != 0 {
		t.Fatalf("ShiftEast off the h-file should vanish, got nonzero")
	}
}

func TestMakePieceRoundTrip(t *testing.T) {
	for _, c := range []Color{White, Black} {
		for pt := Pawn; pt <= King; pt++ {
			p := MakePiece(c, pt)
			if p.Color() != c || p.Type() != pt {
				t.Fatalf("MakePiece(%v,%v) round-tripped to (%v,%v)", c, pt, p.Color(), p.Type())
			}
		}
	}
}
