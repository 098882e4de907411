//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMoveEmitsUppercaseFiles(t *testing.T) {
	m := NewMove(NewSquare(FileE, Rank2), NewSquare(FileE, Rank4), White, NoPieceType)
	assert.Equal(t, Move("E2E4"), m)
}

func TestParseMoveAcceptsUppercaseWireFormat(t *testing.T) {
	m, ok := ParseMove("E2E4")
	assert.True(t, ok)
	assert.Equal(t, NewSquare(FileE, Rank2), m.From())
	assert.Equal(t, NewSquare(FileE, Rank4), m.To())
}

func TestParseMoveAcceptsLowercaseToo(t *testing.T) {
	m, ok := ParseMove("e2e4")
	assert.True(t, ok)
	assert.Equal(t, NewSquare(FileE, Rank2), m.From())
	assert.Equal(t, NewSquare(FileE, Rank4), m.To())
}

func TestParseMoveRejectsBadFile(t *testing.T) {
	_, ok := ParseMove("I2E4")
	assert.False(t, ok)
}

// Promotion suffix case is the opposite of the mover's own case
// convention (lowercase = White): White promotes with an uppercase
// letter, Black with a lowercase one.
func TestNewMovePromotionSuffixIsOppositeCaseOfMover(t *testing.T) {
	white := NewMove(NewSquare(FileA, Rank7), NewSquare(FileA, Rank8), White, Knight)
	assert.Equal(t, Move("A7A8N"), white)

	black := NewMove(NewSquare(FileA, Rank2), NewSquare(FileA, Rank1), Black, Knight)
	assert.Equal(t, Move("A2A1n"), black)
}

func TestNewMoveQueenPromotionHasNoSuffix(t *testing.T) {
	m := NewMove(NewSquare(FileA, Rank7), NewSquare(FileA, Rank8), White, Queen)
	assert.Equal(t, Move("A7A8"), m)
}

func TestMovePromotionRoundTrips(t *testing.T) {
	m := NewMove(NewSquare(FileA, Rank7), NewSquare(FileA, Rank8), White, Rook)
	assert.True(t, m.IsPromotion())
	assert.Equal(t, Rook, m.Promotion())
}
