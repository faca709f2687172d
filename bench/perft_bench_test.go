package bench

import (
	"testing"

	"goosecore/board"
	"goosecore/magic"
	"goosecore/movegen"
	"goosecore/zobrist"
)

func benchPerft(b *testing.B, fen string, depth int) {
	zt := zobrist.New()
	bd, err := board.ParseFEN(fen, zt)
	if err != nil {
		b.Fatalf("ParseFEN: %v", err)
	}
	gen := movegen.New(magic.New())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gen.Perft(bd, depth)
	}
}

func BenchmarkPerft_Initial_D4(b *testing.B) {
	benchPerft(b, board.StartFEN, 4)
}

func BenchmarkPerft_Kiwipete_D3(b *testing.B) {
	fen := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	benchPerft(b, fen, 3)
}
