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

// PieceType identifies a piece kind independent of color.
type PieceType uint8

const (
	NoPieceType PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
	PieceTypeLength
)

var pieceTypeLabels = [PieceTypeLength]string{"", "k", "q", "r", "b", "n", "p"}

// IsValid reports whether pt is one of the six piece kinds.
func (pt PieceType) IsValid() bool {
	return pt > NoPieceType && pt < PieceTypeLength
}

// String returns the lowercase algebraic letter for the piece type
// ("" for NoPieceType, "k" for King, ...). Case is applied by Piece.
func (pt PieceType) String() string {
	if pt >= PieceTypeLength {
		return "?"
	}
	return pieceTypeLabels[pt]
}

// Piece is a tagged {Color, PieceType} pair. It is this system's
// internal representation of a board occupant; the FEN/case convention
// (lowercase = White) is only ever applied when formatting or parsing
// at the boundary (spec.md §9 Design Notes).
type Piece struct {
	Color Color
	Type  PieceType
}

// Empty is the sentinel occupant of an empty square.
var Empty = Piece{Color: ColorNone, Type: NoPieceType}

// IsEmpty reports whether p occupies no square.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPieceType
}

// String renders p using this system's inverted case convention:
// lowercase for White, uppercase for Black, " " for an empty square.
func (p Piece) String() string {
	if p.IsEmpty() {
		return " "
	}
	s := p.Type.String()
	if p.Color.IsUppercase() {
		return toUpper(s)
	}
	return s
}

func toUpper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}

// PieceFromByte parses a single position-string character using this
// system's case convention. It returns (Empty, true) for a space and
// (Empty, false) for any character outside the 13-symbol alphabet
// {space, k,q,r,b,n,p,K,Q,R,B,N,P}.
func PieceFromByte(c byte) (Piece, bool) {
	if c == ' ' {
		return Empty, true
	}
	color := White
	lower := c
	if c >= 'A' && c <= 'Z' {
		color = Black
		lower = c + ('a' - 'A')
	}
	for pt := King; pt < PieceTypeLength; pt++ {
		if pieceTypeLabels[pt][0] == lower {
			return Piece{Color: color, Type: pt}, true
		}
	}
	return Empty, false
}
