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
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chessevo/evochess/internal/config"
	. "github.com/chessevo/evochess/internal/types"
)

// make tests run in the project's root directory
func init() {
	_, filename, _, _ := runtime.Caller(0)
	dir := path.Join(path.Dir(filename), "../..")
	err := os.Chdir(dir)
	if err != nil {
		panic(err)
	}
}

func TestMain(m *testing.M) {
	config.Setup()
	os.Exit(m.Run())
}

func TestNewStartPosition(t *testing.T) {
	b := New()
	assert.Equal(t, 32, b.PieceCount)
	assert.Equal(t, 0, b.Ply)
	assert.Equal(t, White, b.SideToMove())
	assert.Equal(t, MoveNone, b.LastMove)
	assert.Equal(t, 0, b.HalfmoveClock)
	assert.True(t, b.CastleRights[White][Kingside])
	assert.True(t, b.CastleRights[White][Queenside])
	assert.True(t, b.CastleRights[Black][Kingside])
	assert.True(t, b.CastleRights[Black][Queenside])
	assert.Equal(t, Piece{Color: White, Type: Rook}, b.Grid[NewSquare(FileA, Rank1)])
	assert.Equal(t, Piece{Color: Black, Type: Rook}, b.Grid[NewSquare(FileA, Rank8)])
	assert.Equal(t, Empty, b.Grid[NewSquare(FileE, Rank4)])
}

func TestFENRoundTrip(t *testing.T) {
	b, err := NewFromFEN(StartFEN)
	assert.NoError(t, err)
	assert.Equal(t, 32, b.PieceCount)
	assert.Equal(t, White, b.SideToMove())
}

func TestFENMidGame(t *testing.T) {
	fen := "r3k2r/1ppn3p/2q1q1n1/4P3/2q1Pp2/6R1/pbp2PPP/1R4K1 b kq e3 0 14"
	b, err := NewFromFEN(fen)
	assert.NoError(t, err)
	assert.Equal(t, Black, b.SideToMove())
	assert.False(t, b.CastleRights[White][Kingside])
	assert.False(t, b.CastleRights[White][Queenside])
	assert.True(t, b.CastleRights[Black][Kingside])
	assert.True(t, b.CastleRights[Black][Queenside])
	assert.Equal(t, 0, b.HalfmoveClock)
	// e3 en-passant target -> a two-square White pawn advance d2->d4-shaped move on file e
	assert.Equal(t, NewSquare(FileE, Rank2), b.LastMove.From())
	assert.Equal(t, NewSquare(FileE, Rank4), b.LastMove.To())
}

func TestMalformedFEN(t *testing.T) {
	_, err := NewFromFEN("not a fen")
	assert.Error(t, err)

	_, err = NewFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1")
	assert.Error(t, err)
}

func TestFingerprintLength(t *testing.T) {
	b := New()
	assert.Len(t, b.Fingerprint(), SqLength)
}

func TestClone(t *testing.T) {
	b := New()
	c := b.Clone()
	c.Grid[NewSquare(FileE, Rank4)] = Piece{Color: White, Type: Pawn}
	c.PieceCount++
	assert.NotEqual(t, b.Grid, c.Grid)
	assert.Equal(t, 32, b.PieceCount)
	assert.Equal(t, 33, c.PieceCount)
}
