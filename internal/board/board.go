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

// Package board represents the chess board and its position: an 8x8
// piece grid plus the side state needed to generate moves and detect
// termination (castling rights, last move, halfmove clock, repetition
// history, live piece count).
//
// Create a new instance with New() to get the standard starting
// position, or NewFromFEN(fen) to load an arbitrary position.
package board

import (
	. "github.com/chessevo/evochess/internal/types"
)

// Side identifies which rook/castling right a move or right concerns.
type Side int

const (
	Queenside Side = iota
	Kingside
	SideLength
)

// StartFEN is the standard chess starting position, expressed in
// ordinary FEN (lowercase = white per FEN convention); NewFromFEN
// swaps case on ingestion to match this system's inverted convention
// (spec.md §6 "FEN ingestion").
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board is this system's mutable position state (spec.md §3). Fields
// are exported so the rules engine, evaluator, and search can read and
// update them directly; only the rules engine's Apply is expected to
// mutate a Board in normal operation.
type Board struct {
	// Grid is the 8x8 piece grid in row-major, top-down order - see
	// types.Square's indexing scheme. Grid[sq] == types.Empty for an
	// unoccupied square.
	Grid [SqLength]Piece

	// Ply counts half-moves from 0; White moves on even Ply.
	Ply int

	// CastleRights[color][side] is true while that right is still
	// available. Once cleared it must never be set true again.
	CastleRights [ColorLength][SideLength]bool

	// LastMove is the most recently applied move, used for en-passant
	// legality and check-discovery shortcuts. MoveNone at game start.
	LastMove Move

	// HalfmoveClock counts plies since the last capture or pawn
	// advance; reaching 100 is a draw.
	HalfmoveClock int

	// RepetitionHistory holds one fingerprint per ply since
	// HalfmoveClock was last reset, in play order.
	RepetitionHistory []string

	// PieceCount is the live count of non-empty squares.
	PieceCount int
}

// SideToMove returns the color to move at the board's current ply.
func (b *Board) SideToMove() Color {
	return ColorFromPly(b.Ply)
}

// New returns the standard chess starting position.
func New() *Board {
	b, err := NewFromFEN(StartFEN)
	if err != nil {
		// StartFEN is a compile-time constant; a parse failure here
		// means the FEN parser itself is broken.
		panic(err)
	}
	return b
}

// KingSquare returns the square occupied by color's king, or SqNone if
// the board holds none (should not happen for a reachable position).
func (b *Board) KingSquare(color Color) Square {
	for sq := Square(0); sq < SqLength; sq++ {
		p := b.Grid[sq]
		if p.Type == King && p.Color == color {
			return sq
		}
	}
	return SqNone
}

// Fingerprint returns the 64-character row-major piece-grid snapshot
// used as the repetition-detection dictionary key (spec.md §6). It
// deliberately excludes side-to-move and castling rights - a known
// approximation named by the glossary entry for "Position fingerprint".
func (b *Board) Fingerprint() string {
	buf := make([]byte, SqLength)
	for sq := Square(0); sq < SqLength; sq++ {
		p := b.Grid[sq]
		if p.IsEmpty() {
			buf[sq] = ' '
		} else {
			buf[sq] = p.String()[0]
		}
	}
	return string(buf)
}

// Clone returns a deep copy of b. The search operates on copies for
// every child node rather than make/unmake (spec.md §5, §9 "Board copy
// vs unmake").
func (b *Board) Clone() *Board {
	c := *b
	c.RepetitionHistory = make([]string, len(b.RepetitionHistory))
	copy(c.RepetitionHistory, b.RepetitionHistory)
	return &c
}
