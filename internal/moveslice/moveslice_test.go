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

package moveslice

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/chessevo/evochess/internal/types"
)

func TestPushPopBack(t *testing.T) {
	ms := NewMoveSlice(4)
	ms.PushBack(Move("e2e4"))
	ms.PushBack(Move("e7e5"))
	assert.Equal(t, 2, ms.Len())
	assert.Equal(t, Move("e7e5"), ms.Back())
	assert.Equal(t, Move("e7e5"), ms.PopBack())
	assert.Equal(t, 1, ms.Len())
}

func TestSortByScoreAscendingDescending(t *testing.T) {
	ms := NewMoveSlice(3)
	ms.PushBack(Move("a2a3"))
	ms.PushBack(Move("b2b3"))
	ms.PushBack(Move("c2c3"))
	scores := []float64{5, 1, 3}

	asc := ms.Clone()
	ascScores := append([]float64{}, scores...)
	asc.SortByScore(ascScores, true)
	assert.Equal(t, []float64{1, 3, 5}, ascScores)
	assert.Equal(t, Move("b2b3"), asc.At(0))

	desc := ms.Clone()
	descScores := append([]float64{}, scores...)
	desc.SortByScore(descScores, false)
	assert.Equal(t, []float64{5, 3, 1}, descScores)
	assert.Equal(t, Move("a2a3"), desc.At(0))
}

func TestFilter(t *testing.T) {
	ms := NewMoveSlice(3)
	ms.PushBack(Move("a2a3"))
	ms.PushBack(Move("b2b3"))
	ms.PushBack(Move("c2c3"))
	ms.Filter(func(i int) bool { return ms.At(i) != Move("b2b3") })
	assert.Equal(t, 2, ms.Len())
	assert.False(t, ms.Equals(NewMoveSlice(0)))
}
