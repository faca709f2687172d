package bitboard

// Move packs a move record into a single uint32, mirroring the teacher's
// bitfield encoding (goosemg/move.go) but laid out to satisfy §3 exactly:
// from, to, moved piece, captured piece, promotion piece, plus one packed
// byte holding castling kind and the en-passant target file/square.
//
// Layout (low to high bit):
//
//	from              bits 0..5
//	to                bits 6..11
//	piece             bits 12..15
//	capturePiece      bits 16..19
//	promotionPiece    bits 20..23
//	castling          bits 24..25   (0 none, 1 king-side, 2 queen-side)
//	enPassantTarget   bits 26..31   (6 bits; 63 means "none")
type Move uint32

const (
	moveFromShift     = 0
	moveToShift       = 6
	movePieceShift    = 12
	moveCaptureShift  = 16
	movePromoShift    = 20
	moveCastleShift   = 24
	moveEPShift       = 26

	moveSquareMask = 0x3F
	movePieceMask  = 0xF
	moveCastleMask = 0x3
)

// sentinelPiece4 is the 4-bit sentinel for "no promotion" / "no capture",
// distinct from every valid piece-type/piece index, and sentinelEP6 is the
// 6-bit "no en-passant target" value. Resolves the §9 open question about
// the overloaded zero encoding: neither sentinel is ever a valid value.
const (
	sentinelPiece4 = 0xF
	sentinelEP6    = 0x3F
)

// CastleNone, CastleKingSide, CastleQueenSide are the castling-kind tag.
const (
	CastleNone      = 0
	CastleKingSide  = 1
	CastleQueenSide = 2
)

// NewMove builds a quiet/capture/promotion move record.
func NewMove(from, to Square, piece, capturePiece Piece, promotion PieceType, castle int, epTarget Square) Move {
	m := Move(uint32(from)&moveSquareMask) << moveFromShift
	m |= Move(uint32(to)&moveSquareMask) << moveToShift
	m |= Move(uint32(piece)&movePieceMask) << movePieceShift
	cap := uint32(sentinelPiece4)
	if capturePiece != NoPiece {
		cap = uint32(capturePiece)
	}
	m |= Move(cap&movePieceMask) << moveCaptureShift
	promo := uint32(sentinelPiece4)
	if promotion != NoPieceType {
		promo = uint32(promotion)
	}
	m |= Move(promo&movePieceMask) << movePromoShift
	m |= Move(uint32(castle)&moveCastleMask) << moveCastleShift
	ep := uint32(sentinelEP6)
	if epTarget != NoSquare {
		ep = uint32(epTarget) & moveSquareMask
	}
	m |= Move(ep) << moveEPShift
	return m
}

func (m Move) From() Square { return Square((m >> moveFromShift) & moveSquareMask) }
func (m Move) To() Square   { return Square((m >> moveToShift) & moveSquareMask) }
func (m Move) Piece() Piece { return Piece((m >> movePieceShift) & movePieceMask) }

func (m Move) CapturePiece() Piece {
	v := Piece((m >> moveCaptureShift) & movePieceMask)
	if v == sentinelPiece4 {
		return NoPiece
	}
	return v
}

func (m Move) IsCapture() bool { return (m>>moveCaptureShift)&movePieceMask != sentinelPiece4 }

// PromotionPieceType returns the promotion piece type, or NoPieceType if
// this move is not a promotion. There is exactly one sentinel and it is
// never a valid promotion target.
func (m Move) PromotionPieceType() PieceType {
	v := PieceType((m >> movePromoShift) & movePieceMask)
	if v == sentinelPiece4 {
		return NoPieceType
	}
	return v
}

func (m Move) IsPromotion() bool { return (m>>movePromoShift)&movePieceMask != sentinelPiece4 }

func (m Move) CastleKind() int { return int((m >> moveCastleShift) & moveCastleMask) }
func (m Move) IsCastle() bool  { return m.CastleKind() != CastleNone }

// EnPassantSquare returns the en-passant target carried in this move's
// packed byte, or NoSquare.
func (m Move) EnPassantSquare() Square {
	v := (m >> moveEPShift) & moveSquareMask
	if v == sentinelEP6 {
		return NoSquare
	}
	return Square(v)
}

func (m Move) IsEnPassant() bool {
	return m.EnPassantSquare() != NoSquare && m.CapturePiece() == NoPiece && m.Piece().Type() == Pawn
}

// NullMove is the zero value; used as "no move" (UCI "0000"/"(none)").
var NullMove Move

func (m Move) IsNull() bool { return m == NullMove }

var promoLetters = map[PieceType]byte{Knight: 'n', Bishop: 'b', Rook: 'r', Queen: 'q'}

// String renders UCI long algebraic notation: <from><to>[promo].
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if pt := m.PromotionPieceType(); pt != NoPieceType {
		s += string(promoLetters[pt])
	}
	return s
}
