/*
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

package types

import "strings"

// Move is this system's wire format for a ply: a 4-character
// "FromFile FromRank ToFile ToRank" string, optionally followed by a
// 5th promotion-piece letter in the mover's opposite-case convention
// (spec.md §6). It is a plain string rather than a packed integer so
// the rules engine, the search and the persisted game log all share
// one representation.
type Move string

// MoveNone is the canonical "no previous move" sentinel used to
// initialise Board.LastMove at game start. It cannot be produced by
// NewMove/ParseMove since no file is ever "-".
const MoveNone Move = "----"

// NoMoveSentinel is written by the search when the root position has
// no legal move (spec.md §4.4 "No-move-available at root").
const NoMoveSentinel Move = "nomo"

// NewMove builds the string encoding of a move. promo is NoPieceType
// for a non-promoting move; a Queen promotion is encoded with no
// suffix at all (the 4-character form), matching spec.md §6.
func NewMove(from, to Square, mover Color, promo PieceType) Move {
	s := strings.ToUpper(from.String() + to.String())
	if promo != NoPieceType && promo != Queen {
		letter := promo.String()
		if !mover.IsUppercase() {
			letter = toUpper(letter)
		}
		s += letter
	}
	return Move(s)
}

// From returns the origin square encoded in m.
func (m Move) From() Square {
	sq, _ := parseSquare(string(m), 0)
	return sq
}

// To returns the destination square encoded in m.
func (m Move) To() Square {
	sq, _ := parseSquare(string(m), 2)
	return sq
}

// Promotion returns the promotion piece type encoded in m, or
// NoPieceType if m is a 4-character move.
func (m Move) Promotion() PieceType {
	if len(m) < 5 {
		return NoPieceType
	}
	p, _ := PieceFromByte(m[4])
	return p.Type
}

// IsPromotion reports whether m carries a (non-default-queen) promotion suffix.
func (m Move) IsPromotion() bool {
	return len(m) == 5
}

// String returns the move's textual form.
func (m Move) String() string {
	return string(m)
}

// ParseMove validates and decodes a raw move string of 4 or 5
// characters. It does not check legality against any board - that is
// the rules engine's IsInputLegal contract (spec.md §4.1) - only that
// the string has the right shape.
func ParseMove(s string) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return "", false
	}
	if _, ok := parseSquare(s, 0); !ok {
		return "", false
	}
	if _, ok := parseSquare(s, 2); !ok {
		return "", false
	}
	if len(s) == 5 {
		switch s[4] {
		case 'n', 'N', 'b', 'B', 'r', 'R':
		default:
			return "", false
		}
	}
	return Move(s), true
}

// parseSquare reads a file+rank pair at offset. The file letter is
// case-folded on input: spec.md §6 documents the wire format as
// uppercase A..H (and NewMove emits uppercase), but parsing accepts
// either case so a hand-typed or externally-sourced lowercase move
// string still parses.
func parseSquare(s string, offset int) (Square, bool) {
	if offset+2 > len(s) {
		return SqNone, false
	}
	fc, rc := s[offset], s[offset+1]
	if fc >= 'A' && fc <= 'H' {
		fc += 'a' - 'A'
	}
	if fc < 'a' || fc > 'h' {
		return SqNone, false
	}
	if rc < '1' || rc > '8' {
		return SqNone, false
	}
	f := File(fc - 'a')
	r := Rank(rc - '1')
	return NewSquare(f, r), true
}
