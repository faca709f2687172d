package movegen

import (
	"context"
	"testing"

	"goosecore/board"
	"goosecore/magic"
	"goosecore/tt"
	"goosecore/zobrist"
)

func newBoard(t *testing.T, fen string) *board.Board {
	t.Helper()
	zt := zobrist.New()
	b, err := board.ParseFEN(fen, zt)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return b
}

func TestPerftInitialPosition(t *testing.T) {
	g := New(magic.New())
	b := newBoard(t, board.StartFEN)
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 20},
		{2, 400},
		{3, 8902},
	}
	for _, c := range cases {
		if got := g.Perft(b, c.depth); got != c.want {
			t.Fatalf("perft depth %d: got %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftKiwipete(t *testing.T) {
	g := New(magic.New())
	b := newBoard(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	cases := []struct {
		depth int
		want  uint64
	}{
		{1, 48},
		{2, 2039},
		{3, 97862},
	}
	for _, c := range cases {
		if got := g.Perft(b, c.depth); got != c.want {
			t.Fatalf("Kiwipete perft depth %d: got %d, want %d", c.depth, got, c.want)
		}
	}
}

func TestPerftEnPassantPosition(t *testing.T) {
	g := New(magic.New())
	b := newBoard(t, "k7/8/8/3pP3/8/8/8/7K w - d6 0 2")
	if got := g.Perft(b, 6); got != 30076 {
		t.Fatalf("EP perft depth 6: got %d, want 30076", got)
	}
}

func TestPerftPosition5(t *testing.T) {
	g := New(magic.New())
	b := newBoard(t, "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8")
	if got := g.Perft(b, 3); got != 62379 {
		t.Fatalf("position5 perft depth 3: got %d, want 62379", got)
	}
}

func TestPerftCachedMatchesUncached(t *testing.T) {
	g := New(magic.New())
	b := newBoard(t, board.StartFEN)
	table := tt.New(16)
	if got := g.PerftCached(b, 3, table); got != 8902 {
		t.Fatalf("PerftCached depth 3: got %d, want 8902", got)
	}
	if got := g.PerftCached(b, 3, table); got != 8902 {
		t.Fatalf("PerftCached depth 3 (cache hit): got %d, want 8902", got)
	}
}

func TestPerftParallelMatchesSequential(t *testing.T) {
	g := New(magic.New())
	b := newBoard(t, board.StartFEN)
	want := g.Perft(b, 4)
	got, err := g.PerftParallel(context.Background(), b, 4)
	if err != nil {
		t.Fatalf("PerftParallel: %v", err)
	}
	if got != want {
		t.Fatalf("PerftParallel depth 4: got %d, want %d (sequential)", got, want)
	}
}

func TestPerftDivideSumsToPerft(t *testing.T) {
	g := New(magic.New())
	b := newBoard(t, board.StartFEN)
	entries := g.PerftDivide(b, 3)
	var sum uint64
	for _, e := range entries {
		sum += e.Nodes
	}
	if want := g.Perft(b, 3); sum != want {
		t.Fatalf("sum of divide entries = %d, want %d", sum, want)
	}
	if len(entries) != 20 {
		t.Fatalf("divide produced %d root moves, want 20", len(entries))
	}
}
