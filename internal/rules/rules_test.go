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

package rules

import (
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chessevo/evochess/internal/board"
	"github.com/chessevo/evochess/internal/config"
	. "github.com/chessevo/evochess/internal/types"
)

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

func playAll(t *testing.T, b *board.Board, moves ...string) {
	for _, raw := range moves {
		err := ApplyInput(b, raw)
		assert.NoError(t, err, "move %s should be legal", raw)
	}
}

// Scenario 1: initial position has exactly 20 legal moves.
func TestInitialPositionHas20Moves(t *testing.T) {
	b := board.New()
	moves := GenerateAllLegal(b)
	assert.Equal(t, 20, moves.Len())
}

// Scenario 2: Ruy Lopez reached, castling rights intact both sides.
func TestRuyLopezCastlingRightsIntact(t *testing.T) {
	b := board.New()
	playAll(t, b, "E2E4", "E7E5", "G1F3", "B8C6", "F1B5")
	assert.True(t, b.CastleRights[White][board.Kingside])
	assert.True(t, b.CastleRights[White][board.Queenside])
	assert.True(t, b.CastleRights[Black][board.Kingside])
	assert.True(t, b.CastleRights[Black][board.Queenside])
}

// Scenario 3: king vs king is a draw.
func TestKingVsKingIsDraw(t *testing.T) {
	b, err := board.NewFromFEN("8/8/4k3/8/8/4K3/8/8 w - - 0 1")
	assert.NoError(t, err)
	assert.Equal(t, Draw, TerminalResult(b))
}

// Scenario 4: fool's mate ends in a win for Black.
func TestFoolsMate(t *testing.T) {
	b := board.New()
	playAll(t, b, "F2F3", "E7E5", "G2G4", "D8H4")
	assert.Equal(t, BlackWin, TerminalResult(b))
}

// Scenario 5: a pinned rook may only move along the pin ray (or the
// king may move); the board also has a pinned sliding piece set up
// along a file so the rook keeps king-moves plus on-ray rook moves.
func TestPinnedRookRestrictedToRay(t *testing.T) {
	// White king e1, white rook e2 pinned by a black rook on e8.
	b, err := board.NewFromFEN("4r2k/8/8/8/8/8/4R3/4K3 w - - 0 1")
	assert.NoError(t, err)
	moves := GenerateAllLegal(b)
	for i := 0; i < moves.Len(); i++ {
		m := moves.At(i)
		if m.From() == NewSquare(FileE, Rank2) {
			assert.Equal(t, FileE, m.To().File(), "pinned rook may only move along the e-file")
		}
	}
}

// Scenario 6: en-passant appears in the legal-move list after a pawn
// jump places an enemy pawn beside it, and only when the capturing
// pawn is not itself pinned off the e.p. square.
func TestEnPassantAvailableAfterPawnJump(t *testing.T) {
	b := board.New()
	playAll(t, b, "E2E4", "A7A6", "E4E5", "D7D5")
	moves := GenerateAllLegal(b)
	found := false
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i) == Move("E5D6") {
			found = true
		}
	}
	assert.True(t, found, "en-passant capture E5D6 should be available")
}

func TestEnPassantSuppressedWhenPinned(t *testing.T) {
	// White king on e5 rank, a black rook on a5 pins the white e5 pawn
	// horizontally once the d-pawn capture would clear d5 - here we
	// construct the simpler case: capturing pawn itself pinned along
	// the rank by a rook, so the capture (which stays on the rank) is
	// still pseudo-legal by axis but must fail the post-capture safety
	// check because it empties the d5 square shielding the king.
	b, err := board.NewFromFEN("8/8/8/r3PpK1/8/8/8/8 w - f6 0 1")
	assert.NoError(t, err)
	moves := GenerateAllLegal(b)
	for i := 0; i < moves.Len(); i++ {
		assert.NotEqual(t, Move("E5F6"), moves.At(i), "en-passant must not expose the king along the rank")
	}
}

// Castling is legal when squares are empty and not attacked.
func TestCastlingKingside(t *testing.T) {
	b, err := board.NewFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	assert.NoError(t, err)
	moves := GenerateAllLegal(b)
	found := false
	for i := 0; i < moves.Len(); i++ {
		if moves.At(i) == Move("E1G1") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCastlingRightsClearedAfterRookMoves(t *testing.T) {
	b := board.New()
	playAll(t, b, "A2A3", "A7A6", "A1A2", "A6A5")
	assert.False(t, b.CastleRights[White][board.Queenside])
	assert.True(t, b.CastleRights[White][board.Kingside])
}

// Property 1: pieceCount always equals the number of non-empty squares.
func TestPieceCountInvariant(t *testing.T) {
	b := board.New()
	playAll(t, b, "E2E4", "E7E5", "G1F3", "B8C6", "F1B5", "A7A6", "B5C6", "D7C6")
	count := 0
	for _, p := range b.Grid {
		if !p.IsEmpty() {
			count++
		}
	}
	assert.Equal(t, count, b.PieceCount)
	assert.Equal(t, 30, b.PieceCount)
}

// Property 3: after any capture or pawn move, halfmoveClock is 0 and
// repetitionHistory is empty.
func TestHalfmoveClockResetsOnPawnMove(t *testing.T) {
	b := board.New()
	playAll(t, b, "E2E4")
	assert.Equal(t, 0, b.HalfmoveClock)
	assert.Empty(t, b.RepetitionHistory)
}

func TestHalfmoveClockIncrementsOnQuietMove(t *testing.T) {
	b := board.New()
	playAll(t, b, "G1F3", "G8F6")
	assert.Equal(t, 2, b.HalfmoveClock)
	assert.Len(t, b.RepetitionHistory, 2)
}

// Property 7: once a castling right is cleared, it never re-enables.
func TestCastlingRightNeverReenables(t *testing.T) {
	b := board.New()
	playAll(t, b, "A2A3", "A7A6", "A1A2", "A6A5", "A2A1")
	assert.False(t, b.CastleRights[White][board.Queenside])
}
