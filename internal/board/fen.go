/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package board

import (
	"errors"
	"strconv"
	"strings"

	. "github.com/chessevo/evochess/internal/types"
)

// ErrMalformedFEN is returned by NewFromFEN when the input cannot be
// parsed (spec.md §7 "Malformed FEN" -> "not loaded" sentinel).
var ErrMalformedFEN = errors.New("board: malformed fen")

// NewFromFEN parses a FEN string using ordinary FEN case conventions
// (uppercase = White) and swaps case on ingestion to this system's
// inverted convention (lowercase = White, spec.md §6). The en-passant
// target field, if present, is synthesised into LastMove as a
// two-square pawn advance so the rules engine's en-passant check (which
// reads LastMove, not a dedicated field) sees a freshly-loaded FEN the
// same way it sees a played game. Partial FENs - missing halfmove clock
// or fullmove number - are accepted; anything that fails to parse the
// piece placement, side to move, or castling fields returns
// ErrMalformedFEN.
func NewFromFEN(fen string) (*Board, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) < 2 {
		return nil, ErrMalformedFEN
	}

	b := &Board{LastMove: MoveNone}

	if err := parsePlacement(b, fields[0]); err != nil {
		return nil, err
	}

	var sideToMove Color
	switch fields[1] {
	case "w":
		sideToMove = White
	case "b":
		sideToMove = Black
	default:
		return nil, ErrMalformedFEN
	}

	castling := "-"
	if len(fields) >= 3 {
		castling = fields[2]
	}
	if err := parseCastling(b, castling); err != nil {
		return nil, err
	}

	epTarget := "-"
	if len(fields) >= 4 {
		epTarget = fields[3]
	}

	halfmove := 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, ErrMalformedFEN
		}
		halfmove = n
	}
	b.HalfmoveClock = halfmove

	fullmove := 1
	if len(fields) >= 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, ErrMalformedFEN
		}
		fullmove = n
	}
	b.Ply = 2 * (fullmove - 1)
	if sideToMove == Black {
		b.Ply++
	}

	if epTarget != "-" {
		move, err := epTargetToLastMove(epTarget)
		if err != nil {
			return nil, err
		}
		b.LastMove = move
	}

	b.RepetitionHistory = []string{b.Fingerprint()}

	return b, nil
}

// parsePlacement fills b.Grid and b.PieceCount from FEN's piece
// placement field (rank 8 first, files a-h, '/' separated).
func parsePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return ErrMalformedFEN
	}
	for i := range b.Grid {
		b.Grid[i] = Empty
	}

	for rankIdx, rankStr := range ranks {
		rank := Rank8 - Rank(rankIdx)
		file := FileA
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += File(c - '0')
				continue
			}
			if !file.IsValid() {
				return ErrMalformedFEN
			}
			piece, ok := fenCharToPiece(byte(c))
			if !ok {
				return ErrMalformedFEN
			}
			sq := NewSquare(file, rank)
			b.Grid[sq] = piece
			b.PieceCount++
			file++
		}
		if int(file) != 8 {
			return ErrMalformedFEN
		}
	}
	return nil
}

// fenCharToPiece maps one ordinary-FEN piece letter (uppercase = White)
// to this system's tagged Piece, swapping case to the inverted
// convention along the way.
func fenCharToPiece(c byte) (Piece, bool) {
	color := Black
	lower := c
	if c >= 'a' && c <= 'z' {
		color = White
		lower = c - ('a' - 'A')
	} else if c < 'A' || c > 'Z' {
		return Empty, false
	}
	switch lower {
	case 'K':
		return Piece{Color: color, Type: King}, true
	case 'Q':
		return Piece{Color: color, Type: Queen}, true
	case 'R':
		return Piece{Color: color, Type: Rook}, true
	case 'B':
		return Piece{Color: color, Type: Bishop}, true
	case 'N':
		return Piece{Color: color, Type: Knight}, true
	case 'P':
		return Piece{Color: color, Type: Pawn}, true
	default:
		return Empty, false
	}
}

// parseCastling fills b.CastleRights from FEN's "KQkq"-shaped field,
// swapping case the same way the piece placement does: FEN's uppercase
// (White) letters become this system's White (lowercase-rendered)
// rights, and vice versa.
func parseCastling(b *Board, field string) error {
	if field == "-" {
		return nil
	}
	for _, c := range field {
		switch c {
		case 'K':
			b.CastleRights[White][Kingside] = true
		case 'Q':
			b.CastleRights[White][Queenside] = true
		case 'k':
			b.CastleRights[Black][Kingside] = true
		case 'q':
			b.CastleRights[Black][Queenside] = true
		default:
			return ErrMalformedFEN
		}
	}
	return nil
}

// epTargetToLastMove synthesises a two-square pawn advance ending at
// the given en-passant target square, so that LastMove reads the same
// way it would if the advance had actually just been played (spec.md
// §6). The target rank determines direction: rank 6 means Black's
// (White-capturing) advance 7->5 in this system's row numbering is
// expressed via FEN rank 7->rank5 for a black pawn, rank 3 means White
// advanced 2->4.
func epTargetToLastMove(target string) (Move, error) {
	if len(target) != 2 {
		return "", ErrMalformedFEN
	}
	fc, rc := target[0], target[1]
	if fc < 'a' || fc > 'h' {
		return "", ErrMalformedFEN
	}
	file := File(fc - 'a')
	switch rc {
	case '6':
		// Black pawn advanced from rank 7 to rank 5 over this target.
		from := NewSquare(file, Rank7)
		to := NewSquare(file, Rank5)
		return NewMove(from, to, Black, NoPieceType), nil
	case '3':
		// White pawn advanced from rank 2 to rank 4 over this target.
		from := NewSquare(file, Rank2)
		to := NewSquare(file, Rank4)
		return NewMove(from, to, White, NoPieceType), nil
	default:
		return "", ErrMalformedFEN
	}
}
