// Package zobrist builds the 781-word keyed hash-contribution table
// described in spec §3/§4.2 and grounded on _examples/original_source/src/zobrist.cpp,
// which fills the same table from the same CGW64 stream.
package zobrist

import (
	"goosecore/bitboard"
	"goosecore/prng"
)

const (
	// NumPieceSquare covers the twelve piece bitboards over 64 squares.
	NumPieceSquare = 12 * 64
	// BlackToMove is the index of the side-to-move contribution.
	BlackToMove = NumPieceSquare
	// castling rights occupy the next four words, en passant files the
	// eight after that.
	castlingBase  = BlackToMove + 1
	enPassantBase = castlingBase + 4
	TableSize     = enPassantBase + 8
)

// Table holds the 781 random words used to compute and incrementally
// maintain a position's Zobrist key.
type Table struct {
	keys [TableSize]uint64
}

// New fills a fresh table from the default-seeded CGW64 stream, matching
// the original implementation's zero-argument Zobrist() constructor.
func New() *Table {
	return NewSeeded(prng.DefaultSeed)
}

// NewSeeded fills a table from an explicit seed; useful for deterministic
// tests that need a reproducible, non-default table.
func NewSeeded(seed uint64) *Table {
	t := &Table{}
	rng := prng.NewSeeded(seed)
	for i := range t.keys {
		t.keys[i] = rng.Next()
	}
	return t
}

// PieceSquare returns the word for (piece, square).
func (t *Table) PieceSquare(p bitboard.Piece, s bitboard.Square) uint64 {
	return t.keys[int(p)*64+int(s)]
}

// SideToMove returns the word XORed in when Black is to move.
func (t *Table) SideToMove() uint64 { return t.keys[BlackToMove] }

// Castling returns the word for a single right; the words are laid out in
// the order WhiteOO, WhiteOOO, BlackOO, BlackOOO (matching the
// CastlingRights bit order in package bitboard).
func (t *Table) Castling(right bitboard.CastlingRights) uint64 {
	switch right {
	case bitboard.WhiteOO:
		return t.keys[castlingBase+0]
	case bitboard.WhiteOOO:
		return t.keys[castlingBase+1]
	case bitboard.BlackOO:
		return t.keys[castlingBase+2]
	case bitboard.BlackOOO:
		return t.keys[castlingBase+3]
	}
	return 0
}

// EnPassantFile returns the word for the en-passant target's file (0..7).
func (t *Table) EnPassantFile(file int) uint64 {
	return t.keys[enPassantBase+file]
}

// CastlingDelta XORs together the words for every right present in `rights`;
// used to fold the whole castling-rights nibble into a key in one call.
func (t *Table) CastlingDelta(rights bitboard.CastlingRights) uint64 {
	var delta uint64
	for _, r := range []bitboard.CastlingRights{bitboard.WhiteOO, bitboard.WhiteOOO, bitboard.BlackOO, bitboard.BlackOOO} {
		if rights.Has(r) {
			delta ^= t.Castling(r)
		}
	}
	return delta
}
