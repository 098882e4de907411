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

package eval

import (
	"math"
	"os"
	"path"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chessevo/evochess/internal/board"
	"github.com/chessevo/evochess/internal/config"
	"github.com/chessevo/evochess/internal/neural"
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

func TestStartPositionIsBalanced(t *testing.T) {
	e := NewEvaluator()
	b := board.New()
	assert.Equal(t, 0.0, e.handCrafted(b), "symmetric start position scores exactly zero")
}

// This system's FEN parser inverts the usual case convention
// (lowercase = White internally), so a lowercase piece letter below
// means White and uppercase means Black.

func TestExtraQueenFavoursOwner(t *testing.T) {
	e := NewEvaluator()
	b, err := board.NewFromFEN("4K3/8/8/8/8/8/3q4/4k3 w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, e.handCrafted(b), 0.0, "white's extra queen should score positive")
}

func TestExtraQueenFavoursBlackAsNegative(t *testing.T) {
	e := NewEvaluator()
	b, err := board.NewFromFEN("4K3/3Q4/8/8/8/8/8/4k3 w - - 0 1")
	assert.NoError(t, err)
	assert.Less(t, e.handCrafted(b), 0.0, "black's extra queen should score negative")
}

func TestCentralKnightScoresHigherThanCornerKnight(t *testing.T) {
	e := NewEvaluator()
	central, err := board.NewFromFEN("4K3/8/8/3n4/8/8/8/4k3 w - - 0 1")
	assert.NoError(t, err)
	corner, err := board.NewFromFEN("4K3/8/8/8/8/8/8/n3k3 w - - 0 1")
	assert.NoError(t, err)
	assert.Greater(t, e.handCrafted(central), e.handCrafted(corner))
}

func TestNetworkEvaluationDelegates(t *testing.T) {
	e := NewEvaluator()
	b := board.New()
	net, err := neural.NewRandomChessNetwork([]int{64, 8, 1})
	assert.NoError(t, err)
	score := e.Evaluate(b, net)
	assert.False(t, math.IsNaN(score))
	assert.Equal(t, net.Evaluate(b.Fingerprint()), score)
}
