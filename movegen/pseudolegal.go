package movegen

import (
	"goosecore/bitboard"
	"goosecore/board"
)

var promotionPieces = [4]bitboard.PieceType{bitboard.Queen, bitboard.Rook, bitboard.Bishop, bitboard.Knight}

func addTargets(moves *[]bitboard.Move, b *board.Board, from bitboard.Square, piece bitboard.Piece, targets bitboard.Bitboard) {
	for targets != 0 {
		to := targets.PopLSB()
		capture := b.PieceAt(to)
		*moves = append(*moves, bitboard.NewMove(from, to, piece, capture, bitboard.NoPieceType, bitboard.CastleNone, bitboard.NoSquare))
	}
}

func (g *Generator) generatePawnMoves(moves *[]bitboard.Move, b *board.Board, color bitboard.Color) {
	piece := bitboard.MakePiece(color, bitboard.Pawn)
	pawns := b.PieceBitboard(piece)
	empty := ^b.AllOccupancy()
	opponents := b.Occupancy(color.Other())

	var promoRank bitboard.Bitboard
	var singlePush, doublePush bitboard.Bitboard
	var startRank bitboard.Bitboard
	if color == bitboard.White {
		promoRank = bitboard.Rank8
		startRank = bitboard.Rank2
		singlePush = bitboard.ShiftNorth(pawns) & empty
		fromStart := pawns & startRank
		doublePush = bitboard.ShiftNorth(bitboard.ShiftNorth(fromStart)&empty) & empty
	} else {
		promoRank = bitboard.Rank1
		startRank = bitboard.Rank7
		singlePush = bitboard.ShiftSouth(pawns) & empty
		fromStart := pawns & startRank
		doublePush = bitboard.ShiftSouth(bitboard.ShiftSouth(fromStart)&empty) & empty
	}

	emitPush := func(to bitboard.Square, fromOffset int) {
		from := to - bitboard.Square(fromOffset)
		if to.Bitboard()&promoRank != 0 {
			for _, pt := range promotionPieces {
				*moves = append(*moves, bitboard.NewMove(from, to, piece, bitboard.NoPiece, pt, bitboard.CastleNone, bitboard.NoSquare))
			}
			return
		}
		*moves = append(*moves, bitboard.NewMove(from, to, piece, bitboard.NoPiece, bitboard.NoPieceType, bitboard.CastleNone, bitboard.NoSquare))
	}

	bb := singlePush
	for bb != 0 {
		to := bb.PopLSB()
		emitPush(to, signedStep(color, 8))
	}
	bb = doublePush
	for bb != 0 {
		to := bb.PopLSB()
		emitPush(to, signedStep(color, 16))
	}

	var leftCap, rightCap bitboard.Bitboard
	if color == bitboard.White {
		leftCap = bitboard.ShiftNorthWest(pawns) & opponents
		rightCap = bitboard.ShiftNorthEast(pawns) & opponents
	} else {
		leftCap = bitboard.ShiftSouthWest(pawns) & opponents
		rightCap = bitboard.ShiftSouthEast(pawns) & opponents
	}
	emitCapture := func(to bitboard.Square, fromOffset int) {
		from := to - bitboard.Square(fromOffset)
		captured := b.PieceAt(to)
		if to.Bitboard()&promoRank != 0 {
			for _, pt := range promotionPieces {
				*moves = append(*moves, bitboard.NewMove(from, to, piece, captured, pt, bitboard.CastleNone, bitboard.NoSquare))
			}
			return
		}
		*moves = append(*moves, bitboard.NewMove(from, to, piece, captured, bitboard.NoPieceType, bitboard.CastleNone, bitboard.NoSquare))
	}
	// leftCap is the North-West shift for White, South-West for Black;
	// rightCap is North-East for White, South-East for Black. Each shift
	// moves the source bit by the offsets below, so `from = to - offset`.
	bb = leftCap
	for bb != 0 {
		to := bb.PopLSB()
		off := -9
		if color == bitboard.Black {
			off = 7
		}
		emitCapture(to, off)
	}
	bb = rightCap
	for bb != 0 {
		to := bb.PopLSB()
		off := -7
		if color == bitboard.Black {
			off = 9
		}
		emitCapture(to, off)
	}

	if ep := b.EnPassantSquare(); ep != bitboard.NoSquare {
		epBB := ep.Bitboard()
		attackersBB := pawnAttackersOf(ep, color)
		attackers := pawns & attackersBB
		for attackers != 0 {
			from := attackers.PopLSB()
			_ = epBB
			*moves = append(*moves, bitboard.NewMove(from, ep, piece, bitboard.NoPiece, bitboard.NoPieceType, bitboard.CastleNone, ep))
		}
	}
}

// signedStep returns the `to - from` distance for a pawn push of `step`
// plies for the given color, so push-target squares can recover `from`.
func signedStep(color bitboard.Color, step int) int {
	if color == bitboard.White {
		return -step
	}
	return step
}

func (g *Generator) generateKnightMoves(moves *[]bitboard.Move, b *board.Board, color bitboard.Color) {
	piece := bitboard.MakePiece(color, bitboard.Knight)
	knights := b.PieceBitboard(piece)
	notFriends := ^b.Occupancy(color)
	for knights != 0 {
		from := knights.PopLSB()
		targets := g.magic.KnightAttacks(from) & notFriends
		addTargets(moves, b, from, piece, targets)
	}
}

func (g *Generator) generateKingMoves(moves *[]bitboard.Move, b *board.Board, color bitboard.Color) {
	piece := bitboard.MakePiece(color, bitboard.King)
	from := b.KingSquare(color)
	if from == bitboard.NoSquare {
		return
	}
	notFriends := ^b.Occupancy(color)
	targets := g.magic.KingAttacks(from) & notFriends
	addTargets(moves, b, from, piece, targets)
	g.generateCastlingMoves(moves, b, color)
}

func (g *Generator) generateSlidingMoves(moves *[]bitboard.Move, b *board.Board, color bitboard.Color, pt bitboard.PieceType) {
	piece := bitboard.MakePiece(color, pt)
	pieces := b.PieceBitboard(piece)
	occ := b.AllOccupancy()
	notFriends := ^b.Occupancy(color)
	for pieces != 0 {
		from := pieces.PopLSB()
		var targets bitboard.Bitboard
		switch pt {
		case bitboard.Bishop:
			targets = g.magic.BishopAttacks(from, occ)
		case bitboard.Rook:
			targets = g.magic.RookAttacks(from, occ)
		case bitboard.Queen:
			targets = g.magic.QueenAttacks(from, occ)
		}
		targets &= notFriends
		addTargets(moves, b, from, piece, targets)
	}
}

func (g *Generator) generateCastlingMoves(moves *[]bitboard.Move, b *board.Board, color bitboard.Color) {
	occ := b.AllOccupancy()
	rights := b.CastlingRights()
	if color == bitboard.White {
		if rights.Has(bitboard.WhiteOO) &&
			occ&(bitboard.Square(61).Bitboard()|bitboard.Square(62).Bitboard()) == 0 &&
			!g.IsSquareAttacked(b, 60, bitboard.Black) && !g.IsSquareAttacked(b, 61, bitboard.Black) && !g.IsSquareAttacked(b, 62, bitboard.Black) {
			*moves = append(*moves, bitboard.NewMove(60, 62, bitboard.WhiteKing, bitboard.NoPiece, bitboard.NoPieceType, bitboard.CastleKingSide, bitboard.NoSquare))
		}
		if rights.Has(bitboard.WhiteOOO) &&
			occ&(bitboard.Square(57).Bitboard()|bitboard.Square(58).Bitboard()|bitboard.Square(59).Bitboard()) == 0 &&
			!g.IsSquareAttacked(b, 60, bitboard.Black) && !g.IsSquareAttacked(b, 59, bitboard.Black) && !g.IsSquareAttacked(b, 58, bitboard.Black) {
			*moves = append(*moves, bitboard.NewMove(60, 58, bitboard.WhiteKing, bitboard.NoPiece, bitboard.NoPieceType, bitboard.CastleQueenSide, bitboard.NoSquare))
		}
		return
	}
	if rights.Has(bitboard.BlackOO) &&
		occ&(bitboard.Square(5).Bitboard()|bitboard.Square(6).Bitboard()) == 0 &&
		!g.IsSquareAttacked(b, 4, bitboard.White) && !g.IsSquareAttacked(b, 5, bitboard.White) && !g.IsSquareAttacked(b, 6, bitboard.White) {
		*moves = append(*moves, bitboard.NewMove(4, 6, bitboard.BlackKing, bitboard.NoPiece, bitboard.NoPieceType, bitboard.CastleKingSide, bitboard.NoSquare))
	}
	if rights.Has(bitboard.BlackOOO) &&
		occ&(bitboard.Square(1).Bitboard()|bitboard.Square(2).Bitboard()|bitboard.Square(3).Bitboard()) == 0 &&
		!g.IsSquareAttacked(b, 4, bitboard.White) && !g.IsSquareAttacked(b, 3, bitboard.White) && !g.IsSquareAttacked(b, 2, bitboard.White) {
		*moves = append(*moves, bitboard.NewMove(4, 2, bitboard.BlackKing, bitboard.NoPiece, bitboard.NoPieceType, bitboard.CastleQueenSide, bitboard.NoSquare))
	}
}

// PseudoLegalMoves generates every move for the side to move without
// checking whether it leaves the mover's own king in check (§4.5).
func (g *Generator) PseudoLegalMoves(b *board.Board) []bitboard.Move {
	color := b.SideToMove()
	moves := make([]bitboard.Move, 0, 48)
	g.generatePawnMoves(&moves, b, color)
	g.generateKnightMoves(&moves, b, color)
	g.generateSlidingMoves(&moves, b, color, bitboard.Bishop)
	g.generateSlidingMoves(&moves, b, color, bitboard.Rook)
	g.generateSlidingMoves(&moves, b, color, bitboard.Queen)
	g.generateKingMoves(&moves, b, color)
	return moves
}
