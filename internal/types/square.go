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

// Square is a board index 0..63 in row-major, top-down order: square
// 0 is a8 (file A, rank 8), square 63 is h1. This is the layout used
// by the position string / fingerprint of spec.md §6, so Square and
// the wire format share one indexing scheme.
type Square int8

const (
	SqA8 Square = 0
	SqNone Square = 64
	SqLength = 64
)

// NewSquare builds a Square from a file and a rank. Rank8 is row 0
// (top), Rank1 is row 7 (bottom) - spec.md §3's coordinate mapping.
func NewSquare(f File, r Rank) Square {
	row := int(RankLength) - 1 - int(r)
	return Square(row*8 + int(f))
}

// IsValid reports whether sq is one of the 64 board squares.
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < SqLength
}

// Row returns the 0-based row, 0 = top (rank 8's row).
func (sq Square) Row() int {
	return int(sq) / 8
}

// Col returns the 0-based column, equal to the file index.
func (sq Square) Col() int {
	return int(sq) % 8
}

// File returns the file of sq.
func (sq Square) File() File {
	return File(sq.Col())
}

// Rank returns the rank of sq.
func (sq Square) Rank() Rank {
	return Rank(int(RankLength) - 1 - sq.Row())
}

// String renders sq in file+rank notation, e.g. "e4". Returns "-" for
// an invalid square.
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

// Offset returns the square reached by moving dCol columns and dRow
// rows from sq, and whether that destination is still on the board.
func (sq Square) Offset(dCol, dRow int) (Square, bool) {
	col := sq.Col() + dCol
	row := sq.Row() + dRow
	if col < 0 || col > 7 || row < 0 || row > 7 {
		return SqNone, false
	}
	return Square(row*8 + col), true
}
