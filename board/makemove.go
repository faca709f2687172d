package board

import "goosecore/bitboard"

// Home squares used by castling-rights bookkeeping and rook relocation,
// consistent with the §3 mapping (rank 0 = 8th rank, so White's back rank
// is rank 7).
const (
	whiteKingHome      = bitboard.Square(60) // e1
	whiteRookKingSide  = bitboard.Square(63) // h1
	whiteRookQueenSide = bitboard.Square(56) // a1
	whiteKingSideDest  = bitboard.Square(62) // g1
	whiteKSRookDest    = bitboard.Square(61) // f1
	whiteQueenSideDest = bitboard.Square(58) // c1
	whiteQSRookDest    = bitboard.Square(59) // d1

	blackKingHome      = bitboard.Square(4) // e8
	blackRookKingSide  = bitboard.Square(7) // h8
	blackRookQueenSide = bitboard.Square(0) // a8
	blackKingSideDest  = bitboard.Square(6) // g8
	blackKSRookDest    = bitboard.Square(5) // f8
	blackQueenSideDest = bitboard.Square(2) // c8
	blackQSRookDest    = bitboard.Square(3) // d8
)

// MoveState carries everything UnmakeMove needs to reverse a MakeMove call:
// the captured piece (if any) and its square (which differs from `to` for
// en-passant captures), and the prior clocks/rights/hash.
type MoveState struct {
	Move bitboard.Move

	CapturedPiece  bitboard.Piece
	CapturedSquare bitboard.Square

	PrevCastling bitboard.CastlingRights
	PrevEP       bitboard.Square
	PrevHalfmove int
	PrevFullmove int
	PrevHash     uint64
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// MakeMove applies the seven ordered rules of §4.4 in place and returns the
// undo state. It does not check legality; the caller (movegen's legality
// filter, per §4.5) is responsible for rejecting moves that leave the mover's
// own king in check.
func (b *Board) MakeMove(m bitboard.Move) MoveState {
	st := MoveState{
		Move:           m,
		CapturedPiece:  bitboard.NoPiece,
		CapturedSquare: bitboard.NoSquare,
		PrevCastling:   b.castling,
		PrevEP:         b.epSquare,
		PrevHalfmove:   b.halfmove,
		PrevFullmove:   b.fullmove,
		PrevHash:       b.hash,
	}

	from, to := m.From(), m.To()
	piece := m.Piece()
	mover := piece.Color()

	// Clear the previous en-passant word before deciding the new target
	// (rule 1), so the hash always reflects "no ep" in between.
	if b.epSquare != bitboard.NoSquare {
		b.hash ^= b.zobrist.EnPassantFile(b.epSquare.File())
	}
	b.epSquare = bitboard.NoSquare

	// Rule 1: double pawn push opens an en-passant target behind the pawn.
	if piece.Type() == bitboard.Pawn && abs(int(to)-int(from)) == 16 {
		var behind bitboard.Square
		if mover == bitboard.White {
			behind = to + 8
		} else {
			behind = to - 8
		}
		b.epSquare = behind
		b.hash ^= b.zobrist.EnPassantFile(behind.File())
	}

	// Rule 2: king move strips both of that side's castling rights.
	if piece.Type() == bitboard.King {
		if mover == bitboard.White {
			b.clearCastling(bitboard.WhiteOO | bitboard.WhiteOOO)
		} else {
			b.clearCastling(bitboard.BlackOO | bitboard.BlackOOO)
		}
	}

	// Rule 3: a rook leaving its original corner strips that side's right.
	switch from {
	case whiteRookKingSide:
		b.clearCastling(bitboard.WhiteOO)
	case whiteRookQueenSide:
		b.clearCastling(bitboard.WhiteOOO)
	case blackRookKingSide:
		b.clearCastling(bitboard.BlackOO)
	case blackRookQueenSide:
		b.clearCastling(bitboard.BlackOOO)
	}

	// Rule 4: capturing the opponent's rook on its original corner strips
	// their corresponding right, even if that rook never itself moved.
	switch to {
	case whiteRookKingSide:
		b.clearCastling(bitboard.WhiteOO)
	case whiteRookQueenSide:
		b.clearCastling(bitboard.WhiteOOO)
	case blackRookKingSide:
		b.clearCastling(bitboard.BlackOO)
	case blackRookQueenSide:
		b.clearCastling(bitboard.BlackOOO)
	}

	// Rule 5: apply the bitboard mutation for this move's category.
	isCaptureOrPawnMove := piece.Type() == bitboard.Pawn
	switch {
	case m.IsEnPassant():
		var victimSquare bitboard.Square
		if mover == bitboard.White {
			victimSquare = to + 8
		} else {
			victimSquare = to - 8
		}
		victim := b.mailbox[victimSquare]
		b.removePiece(victim, victimSquare)
		b.movePiece(piece, from, to)
		st.CapturedPiece = victim
		st.CapturedSquare = victimSquare
		isCaptureOrPawnMove = true

	case m.IsCastle():
		b.movePiece(piece, from, to)
		switch m.CastleKind() {
		case bitboard.CastleKingSide:
			if mover == bitboard.White {
				b.movePiece(bitboard.WhiteRook, whiteRookKingSide, whiteKSRookDest)
			} else {
				b.movePiece(bitboard.BlackRook, blackRookKingSide, blackKSRookDest)
			}
		case bitboard.CastleQueenSide:
			if mover == bitboard.White {
				b.movePiece(bitboard.WhiteRook, whiteRookQueenSide, whiteQSRookDest)
			} else {
				b.movePiece(bitboard.BlackRook, blackRookQueenSide, blackQSRookDest)
			}
		}

	default:
		captured := b.mailbox[to]
		if captured != bitboard.NoPiece {
			b.removePiece(captured, to)
			st.CapturedPiece = captured
			st.CapturedSquare = to
			isCaptureOrPawnMove = true
		}
		b.removePiece(piece, from)
		if promo := m.PromotionPieceType(); promo != bitboard.NoPieceType {
			b.addPiece(bitboard.MakePiece(mover, promo), to)
		} else {
			b.addPiece(piece, to)
		}
	}

	// Rule 6: halfmove clock.
	if isCaptureOrPawnMove {
		b.halfmove = 0
	} else {
		b.halfmove++
	}

	// Rule 7: flip side to move, advance fullmove counter after Black moves.
	b.hash ^= b.zobrist.SideToMove()
	if b.sideToMove == bitboard.Black {
		b.fullmove++
	}
	b.sideToMove = b.sideToMove.Other()

	return st
}

func (b *Board) clearCastling(rights bitboard.CastlingRights) {
	toClear := b.castling & rights
	if toClear == 0 {
		return
	}
	b.hash ^= b.zobrist.CastlingDelta(toClear)
	b.castling = b.castling.Clear(toClear)
}

// UnmakeMove reverses a MakeMove call given the state it returned. Null
// moves are undone by UnmakeNullMove instead; the legality filter itself
// prefers copy-make per the §9 open-question resolution.
func (b *Board) UnmakeMove(st MoveState) {
	m := st.Move
	from, to := m.From(), m.To()
	piece := m.Piece()
	mover := piece.Color()

	switch {
	case m.IsEnPassant():
		b.removePiece(piece, to)
		b.addPiece(piece, from)
		b.addPiece(st.CapturedPiece, st.CapturedSquare)

	case m.IsCastle():
		b.movePiece(piece, to, from)
		switch m.CastleKind() {
		case bitboard.CastleKingSide:
			if mover == bitboard.White {
				b.movePiece(bitboard.WhiteRook, whiteKSRookDest, whiteRookKingSide)
			} else {
				b.movePiece(bitboard.BlackRook, blackKSRookDest, blackRookKingSide)
			}
		case bitboard.CastleQueenSide:
			if mover == bitboard.White {
				b.movePiece(bitboard.WhiteRook, whiteQSRookDest, whiteRookQueenSide)
			} else {
				b.movePiece(bitboard.BlackRook, blackQSRookDest, blackRookQueenSide)
			}
		}

	default:
		if promo := m.PromotionPieceType(); promo != bitboard.NoPieceType {
			b.removePiece(bitboard.MakePiece(mover, promo), to)
		} else {
			b.removePiece(piece, to)
		}
		b.addPiece(piece, from)
		if st.CapturedPiece != bitboard.NoPiece {
			b.addPiece(st.CapturedPiece, st.CapturedSquare)
		}
	}

	b.castling = st.PrevCastling
	b.epSquare = st.PrevEP
	b.halfmove = st.PrevHalfmove
	b.fullmove = st.PrevFullmove
	b.hash = st.PrevHash
	b.sideToMove = mover
}

// MakeNullMove flips side to move and clears the en-passant target without
// moving a piece, used by null-move pruning (§4.7 step 6).
func (b *Board) MakeNullMove() MoveState {
	st := MoveState{
		Move:         bitboard.NullMove,
		PrevCastling: b.castling,
		PrevEP:       b.epSquare,
		PrevHalfmove: b.halfmove,
		PrevFullmove: b.fullmove,
		PrevHash:     b.hash,
	}
	if b.epSquare != bitboard.NoSquare {
		b.hash ^= b.zobrist.EnPassantFile(b.epSquare.File())
		b.epSquare = bitboard.NoSquare
	}
	b.hash ^= b.zobrist.SideToMove()
	b.sideToMove = b.sideToMove.Other()
	return st
}

// UnmakeNullMove reverses MakeNullMove.
func (b *Board) UnmakeNullMove(st MoveState) {
	b.castling = st.PrevCastling
	b.epSquare = st.PrevEP
	b.halfmove = st.PrevHalfmove
	b.fullmove = st.PrevFullmove
	b.hash = st.PrevHash
	b.sideToMove = b.sideToMove.Other()
}
