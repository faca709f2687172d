package bitboard

import "testing"

func TestNewMoveRoundTrip(t *testing.T) {
	from, _ := ParseSquare("e2")
	to, _ := ParseSquare("e4")
	m := NewMove(from, to, WhitePawn, NoPiece, NoPieceType, CastleNone, NoSquare)
	if m.From() != from || m.To() != to {
		t.Fatalf("From/To round trip failed: got %v->%v", m.From(), m.To())
	}
	if m.Piece() != WhitePawn {
		t.Fatalf("Piece() = %v, want WhitePawn", m.Piece())
	}
	if m.IsCapture() || m.IsPromotion() || m.IsCastle() || m.IsEnPassant() {
		t.Fatalf("quiet move misclassified: %+v", m)
	}
	if got := m.String(); got != "e2e4" {
		t.Fatalf("String() = %q, want e2e4", got)
	}
}

func TestNewMoveCapture(t *testing.T) {
	from, _ := ParseSquare("d4")
	to, _ := ParseSquare("e5")
	m := NewMove(from, to, WhitePawn, BlackPawn, NoPieceType, CastleNone, NoSquare)
	if !m.IsCapture() {
		t.Fatalf("expected capture")
	}
	if m.CapturePiece() != BlackPawn {
		t.Fatalf("CapturePiece() = %v, want BlackPawn", m.CapturePiece())
	}
}

func TestNewMovePromotion(t *testing.T) {
	from, _ := ParseSquare("e7")
	to, _ := ParseSquare("e8")
	m := NewMove(from, to, WhitePawn, NoPiece, Queen, CastleNone, NoSquare)
	if !m.IsPromotion() {
		t.Fatalf("expected promotion")
	}
	if m.PromotionPieceType() != Queen {
		t.Fatalf("PromotionPieceType() = %v, want Queen", m.PromotionPieceType())
	}
	if got := m.String(); got != "e7e8q" {
		t.Fatalf("String() = %q, want e7e8q", got)
	}
}

func TestNewMoveEnPassant(t *testing.T) {
	from, _ := ParseSquare("d5")
	to, _ := ParseSquare("e6")
	ep, _ := ParseSquare("e5")
	m := NewMove(from, to, WhitePawn, NoPiece, NoPieceType, CastleNone, ep)
	if !m.IsEnPassant() {
		t.Fatalf("expected en passant classification")
	}
	if m.EnPassantSquare() != ep {
		t.Fatalf("EnPassantSquare() = %v, want %v", m.EnPassantSquare(), ep)
	}
	if m.IsCapture() {
		t.Fatalf("en passant move should not carry a packed capture piece")
	}
}

func TestNewMoveCastle(t *testing.T) {
	from, _ := ParseSquare("e1")
	to, _ := ParseSquare("g1")
	m := NewMove(from, to, WhiteKing, NoPiece, NoPieceType, CastleKingSide, NoSquare)
	if !m.IsCastle() || m.CastleKind() != CastleKingSide {
		t.Fatalf("castle classification failed: %+v", m)
	}
}

func TestNullMove(t *testing.T) {
	if !NullMove.IsNull() {
		t.Fatalf("NullMove.IsNull() = false")
	}
	if got := NullMove.String(); got != "0000" {
		t.Fatalf("NullMove.String() = %q, want 0000", got)
	}
}
