package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"goosecore/bitboard"
	"goosecore/zobrist"
)

// StartFEN is the standard initial position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrMalformedFEN is returned for FEN text that cannot be parsed at all
// (empty input, bad piece placement). Per §7, callers should fall
// back to a safe default rather than abort.
var ErrMalformedFEN = errors.New("board: malformed FEN")

// ParseFEN parses a standard six-field FEN. Fields past piece-placement are
// optional; missing ones default per §4.4 ("All fields besides pieces
// default to sentinel/zero if FEN is truncated").
func ParseFEN(fen string, zt *zobrist.Table) (*Board, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 1 {
		return nil, ErrMalformedFEN
	}
	b := New(zt)

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", ErrMalformedFEN, len(ranks))
	}
	for r, rankStr := range ranks {
		file := 0
		for _, ch := range rankStr {
			switch {
			case ch >= '1' && ch <= '8':
				file += int(ch - '0')
			default:
				p, ok := bitboard.PieceFromLetter(byte(ch))
				if !ok {
					return nil, fmt.Errorf("%w: bad piece letter %q", ErrMalformedFEN, ch)
				}
				if file > 7 {
					return nil, fmt.Errorf("%w: rank %d overflows", ErrMalformedFEN, r)
				}
				b.addPiece(p, bitboard.SquareFromRankFile(r, file))
				file++
			}
		}
	}

	b.sideToMove = bitboard.White
	if len(fields) >= 2 {
		switch fields[1] {
		case "w":
			b.sideToMove = bitboard.White
		case "b":
			b.sideToMove = bitboard.Black
		}
	}

	b.castling = bitboard.NoCastling
	if len(fields) >= 3 && fields[2] != "-" {
		for _, ch := range fields[2] {
			switch ch {
			case 'K':
				b.castling |= bitboard.WhiteOO
			case 'Q':
				b.castling |= bitboard.WhiteOOO
			case 'k':
				b.castling |= bitboard.BlackOO
			case 'q':
				b.castling |= bitboard.BlackOOO
			}
		}
	}

	b.epSquare = bitboard.NoSquare
	if len(fields) >= 4 && fields[3] != "-" {
		if sq, ok := bitboard.ParseSquare(fields[3]); ok {
			b.epSquare = sq
		}
	}

	b.halfmove = 0
	if len(fields) >= 5 {
		if n, err := strconv.Atoi(fields[4]); err == nil && n >= 0 {
			b.halfmove = n
		}
	}

	b.fullmove = 1
	if len(fields) >= 6 {
		if n, err := strconv.Atoi(fields[5]); err == nil && n >= 1 {
			b.fullmove = n
		}
	}

	b.hash = b.ComputeHash()
	return b, nil
}

// ToFEN serializes the current position.
func (b *Board) ToFEN() string {
	var sb strings.Builder
	for r := 0; r < 8; r++ {
		empty := 0
		for f := 0; f < 8; f++ {
			p := b.mailbox[bitboard.SquareFromRankFile(r, f)]
			if p == bitboard.NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if r != 7 {
			sb.WriteByte('/')
		}
	}
	sb.WriteByte(' ')
	sb.WriteString(b.sideToMove.String())
	sb.WriteByte(' ')
	if b.castling == bitboard.NoCastling {
		sb.WriteByte('-')
	} else {
		if b.castling.Has(bitboard.WhiteOO) {
			sb.WriteByte('K')
		}
		if b.castling.Has(bitboard.WhiteOOO) {
			sb.WriteByte('Q')
		}
		if b.castling.Has(bitboard.BlackOO) {
			sb.WriteByte('k')
		}
		if b.castling.Has(bitboard.BlackOOO) {
			sb.WriteByte('q')
		}
	}
	sb.WriteByte(' ')
	if b.epSquare == bitboard.NoSquare {
		sb.WriteByte('-')
	} else {
		sb.WriteString(b.epSquare.String())
	}
	fmt.Fprintf(&sb, " %d %d", b.halfmove, b.fullmove)
	return sb.String()
}
