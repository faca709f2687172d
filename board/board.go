// Package board implements the position representation and make-move
// mutation described in spec §4.4, grounded structurally on
// _examples/Oliverans-GooseEngine/goosemg/board.go (piece bitboards +
// mailbox + incremental Zobrist key) and algorithmically on
// _examples/Oliverans-GooseEngine/goosemg/makemove.go's seven-rule ordering.
package board

import (
	"goosecore/bitboard"
	"goosecore/zobrist"
)

// Board is a complete position: twelve piece bitboards, a mailbox for O(1)
// piece lookup, side to move, castling rights, en-passant target, clocks,
// and the incrementally-maintained Zobrist key. It holds no pointers except
// the shared, read-only Zobrist table, so copying a Board by value (as the
// search stack does per §3) is a true independent snapshot.
type Board struct {
	pieces     [12]bitboard.Bitboard
	occupancy  [2]bitboard.Bitboard
	mailbox    [64]bitboard.Piece
	sideToMove bitboard.Color
	castling   bitboard.CastlingRights
	epSquare   bitboard.Square
	halfmove   int
	fullmove   int
	hash       uint64

	zobrist *zobrist.Table
}

// New returns an empty board bound to the given (shared) Zobrist table.
func New(zt *zobrist.Table) *Board {
	b := &Board{zobrist: zt, epSquare: bitboard.NoSquare}
	for i := range b.mailbox {
		b.mailbox[i] = bitboard.NoPiece
	}
	return b
}

// Clone returns an independent copy; cheap because Board has no pointer
// fields besides the shared read-only Zobrist table.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func (b *Board) PieceBitboard(p bitboard.Piece) bitboard.Bitboard { return b.pieces[p] }
func (b *Board) Occupancy(c bitboard.Color) bitboard.Bitboard     { return b.occupancy[c] }
func (b *Board) AllOccupancy() bitboard.Bitboard                  { return b.occupancy[bitboard.Black] | b.occupancy[bitboard.White] }
func (b *Board) PieceAt(s bitboard.Square) bitboard.Piece         { return b.mailbox[s] }
func (b *Board) SideToMove() bitboard.Color                       { return b.sideToMove }
func (b *Board) CastlingRights() bitboard.CastlingRights          { return b.castling }
func (b *Board) EnPassantSquare() bitboard.Square                 { return b.epSquare }
func (b *Board) HalfmoveClock() int                               { return b.halfmove }
func (b *Board) FullmoveNumber() int                              { return b.fullmove }
func (b *Board) Hash() uint64                                     { return b.hash }
func (b *Board) KingSquare(c bitboard.Color) bitboard.Square {
	return b.pieces[bitboard.MakePiece(c, bitboard.King)].LSB()
}

func (b *Board) addPiece(p bitboard.Piece, s bitboard.Square) {
	b.pieces[p] |= s.Bitboard()
	b.occupancy[p.Color()] |= s.Bitboard()
	b.mailbox[s] = p
	b.hash ^= b.zobrist.PieceSquare(p, s)
}

func (b *Board) removePiece(p bitboard.Piece, s bitboard.Square) {
	b.pieces[p] &^= s.Bitboard()
	b.occupancy[p.Color()] &^= s.Bitboard()
	b.mailbox[s] = bitboard.NoPiece
	b.hash ^= b.zobrist.PieceSquare(p, s)
}

func (b *Board) movePiece(p bitboard.Piece, from, to bitboard.Square) {
	b.removePiece(p, from)
	b.addPiece(p, to)
}

// ComputeHash recomputes the Zobrist key from scratch (the "full" mode of
// §4.2), used by FEN loading and by tests asserting full==incremental.
func (b *Board) ComputeHash() uint64 {
	var h uint64
	for p := bitboard.BlackPawn; p <= bitboard.WhiteKing; p++ {
		bb := b.pieces[p]
		for bb != 0 {
			s := bb.PopLSB()
			h ^= b.zobrist.PieceSquare(p, s)
		}
	}
	if b.sideToMove == bitboard.Black {
		h ^= b.zobrist.SideToMove()
	}
	h ^= b.zobrist.CastlingDelta(b.castling)
	if b.epSquare != bitboard.NoSquare {
		h ^= b.zobrist.EnPassantFile(b.epSquare.File())
	}
	return h
}

// sameColorSquares reports whether every set square of bb has the same
// square color (an empty set counts as one color).
func sameColorSquares(bb bitboard.Bitboard) bool {
	const darkSquares = bitboard.Bitboard(0x55AA55AA55AA55AA)
	onDark := bb & darkSquares
	onLight := bb &^ darkSquares
	return onDark == 0 || onLight == 0
}

// IsInsufficientMaterial implements the corrected contract from §9: draw iff
// the remaining material is K vs K, KB vs K (either side), KN vs K (either
// side), or any collection of bishops all on one square color with no other
// non-king pieces on the board. This replaces the tautological predicate bug
// in _examples/original_source/src/search.cpp's is_insufficient_material.
func (b *Board) IsInsufficientMaterial() bool {
	for _, c := range []bitboard.Color{bitboard.Black, bitboard.White} {
		pawns := b.pieces[bitboard.MakePiece(c, bitboard.Pawn)]
		rooks := b.pieces[bitboard.MakePiece(c, bitboard.Rook)]
		queens := b.pieces[bitboard.MakePiece(c, bitboard.Queen)]
		if pawns != 0 || rooks != 0 || queens != 0 {
			return false
		}
	}
	whiteKnights := b.pieces[bitboard.WhiteKnight].PopCount()
	blackKnights := b.pieces[bitboard.BlackKnight].PopCount()
	whiteBishops := b.pieces[bitboard.WhiteBishop]
	blackBishops := b.pieces[bitboard.BlackBishop]
	whiteMinor := whiteKnights + whiteBishops.PopCount()
	blackMinor := blackKnights + blackBishops.PopCount()

	if whiteMinor == 0 && blackMinor == 0 {
		return true
	}
	// A single knight (either side) with no other minors anywhere: K+N vs K.
	if whiteMinor+blackMinor == 1 && (whiteKnights == 1 || blackKnights == 1) {
		return true
	}
	if whiteKnights > 0 || blackKnights > 0 {
		// Any knight present alongside another minor is potentially
		// mating material (KN+B, KNN can in principle force mate with
		// cooperation); only the lone-knight case above is a forced draw.
		return false
	}
	// Only bishops remain (besides kings): drawn iff every bishop, on
	// either side, sits on squares of a single color.
	allBishops := whiteBishops | blackBishops
	return sameColorSquares(allBishops)
}
