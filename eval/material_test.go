package eval

import (
	"testing"

	"goosecore/board"
	"goosecore/zobrist"
)

func TestMaterialEvaluateStartposIsZero(t *testing.T) {
	zt := zobrist.New()
	b, err := board.ParseFEN(board.StartFEN, zt)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := NewMaterial()
	if got := m.Evaluate(b); got != 0 {
		t.Fatalf("startpos material eval = %d, want 0", got)
	}
}

func TestMaterialEvaluateFavorsExtraQueen(t *testing.T) {
	zt := zobrist.New()
	b, err := board.ParseFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1", zt)
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}
	m := NewMaterial()
	if got := m.Evaluate(b); got <= 0 {
		t.Fatalf("white up a queen should score positive from white's perspective, got %d", got)
	}
}

func TestMaterialEvaluateIsSideRelative(t *testing.T) {
	zt := zobrist.New()
	white, _ := board.ParseFEN("4k3/8/8/8/8/8/8/Q3K3 w - - 0 1", zt)
	black, _ := board.ParseFEN("4k3/8/8/8/8/8/8/Q3K3 b - - 0 1", zt)
	m := NewMaterial()
	if m.Evaluate(white) != -m.Evaluate(black) {
		t.Fatalf("flipping side to move on an identical board should negate the score")
	}
}
