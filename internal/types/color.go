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

// Color identifies a side to move. Unlike FEN, this system's case
// convention is inverted: lowercase piece letters belong to White,
// uppercase to Black. Color is a tagged value, not a case bit, so the
// inversion stays confined to the FEN and glyph layers (§9 Design Notes).
type Color uint8

const (
	White     Color = iota // moves on even ply, rendered lowercase
	Black                  // moves on odd ply, rendered uppercase
	ColorNone              // sentinel, e.g. for an empty-square piece
	ColorLength = ColorNone
)

// IsValid reports whether c is White or Black.
func (c Color) IsValid() bool {
	return c == White || c == Black
}

// Other returns the opposing color. Undefined for ColorNone.
func (c Color) Other() Color {
	return c ^ 1
}

// IsUppercase reports whether pieces of this color are rendered in
// uppercase letters. Black is uppercase in this system's convention.
func (c Color) IsUppercase() bool {
	return c == Black
}

// String returns "w" or "b", matching FEN's side-to-move field.
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	default:
		return "-"
	}
}

// ColorFromPly returns the side to move for a given ply count (White
// moves on even ply, per spec.md §3).
func ColorFromPly(ply int) Color {
	if ply%2 == 0 {
		return White
	}
	return Black
}
