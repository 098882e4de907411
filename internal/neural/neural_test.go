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

package neural

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chessevo/evochess/internal/rng"
)

func TestMain(m *testing.M) {
	rng.Seed(1)
	m.Run()
}

func TestNeuronRoundTrip(t *testing.T) {
	n := NewRandomNeuron(12)
	var buf bytes.Buffer
	assert.NoError(t, n.Write(&buf))

	got, err := ReadNeuron(&buf)
	assert.NoError(t, err)
	assert.Equal(t, n.Weights, got.Weights)
	assert.Equal(t, n.Bias, got.Bias)
}

func TestNeuronReadMalformed(t *testing.T) {
	_, err := ReadNeuron(strings.NewReader("not a number"))
	assert.ErrorIs(t, err, ErrMalformedNetwork)

	_, err = ReadNeuron(strings.NewReader("3 1.0 2.0"))
	assert.ErrorIs(t, err, ErrMalformedNetwork, "truncated weight list then missing bias")
}

func TestDenseNetworkRoundTrip(t *testing.T) {
	d := NewRandomDenseNetwork([]int{64, 8, 1})
	var buf bytes.Buffer
	assert.NoError(t, d.Write(&buf))

	got, err := ReadDenseNetwork(&buf)
	assert.NoError(t, err)
	assert.Equal(t, d.Shape, got.Shape)
	assert.Equal(t, len(d.Layers), len(got.Layers))
	for l := 1; l < len(d.Shape); l++ {
		for j := range d.Layers[l] {
			assert.Equal(t, d.Layers[l][j].Weights, got.Layers[l][j].Weights)
			assert.Equal(t, d.Layers[l][j].Bias, got.Layers[l][j].Bias)
		}
	}
}

func TestDenseNetworkForwardShape(t *testing.T) {
	d := NewRandomDenseNetwork([]int{64, 8, 1})
	out := d.Forward(make([]float64, 64))
	assert.Len(t, out, 1)
	assert.False(t, math.IsNaN(out[0]))
}

func TestChessNetworkRejectsBadShape(t *testing.T) {
	_, err := NewRandomChessNetwork([]int{32, 8, 1})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestChessNetworkEvaluateStartPosition(t *testing.T) {
	net, err := NewRandomChessNetwork([]int{64, 8, 1})
	assert.NoError(t, err)

	posString := "rnbqkbnr" +
		"pppppppp" +
		"        " +
		"        " +
		"        " +
		"        " +
		"PPPPPPPP" +
		"RNBQKBNR"
	out := net.Evaluate(posString)
	assert.False(t, math.IsNaN(out))
}

func TestChessNetworkEvaluateNaNOnBadInput(t *testing.T) {
	net, err := NewRandomChessNetwork([]int{64, 8, 1})
	assert.NoError(t, err)

	// wrong length
	assert.True(t, math.IsNaN(net.Evaluate("too short")))

	// right length but an unrecognised character ('x') in the mix
	bad := strings.Repeat(" ", 63) + "x"
	assert.True(t, math.IsNaN(net.Evaluate(bad)))
}

func TestChessNetworkRoundTrip(t *testing.T) {
	net, err := NewRandomChessNetwork([]int{64, 4, 1})
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, net.Write(&buf))

	got, err := ReadChessNetwork(&buf)
	assert.NoError(t, err)
	assert.Equal(t, net.Dense.Shape, got.Dense.Shape)
	for i := range net.Preprocessing {
		assert.Equal(t, net.Preprocessing[i].Weights, got.Preprocessing[i].Weights)
	}
}

func TestCrossoverChessNetworkKeepsShape(t *testing.T) {
	dad, err := NewRandomChessNetwork([]int{64, 8, 1})
	assert.NoError(t, err)
	mum, err := NewRandomChessNetwork([]int{64, 8, 1})
	assert.NoError(t, err)

	baby := CrossoverChessNetwork(dad, mum, 1000)
	assert.Equal(t, dad.Dense.Shape, baby.Dense.Shape)
	out := baby.Evaluate(strings.Repeat(" ", 64))
	assert.False(t, math.IsNaN(out))
}

func TestCrossoverNeuronZeroRarenessNeverMutates(t *testing.T) {
	dad := NewRandomNeuron(4)
	mum := NewRandomNeuron(4)
	for i := 0; i < 50; i++ {
		child := CrossoverNeuron(dad, mum, 0)
		same := assertSameWeights(child, dad) || assertSameWeights(child, mum)
		assert.True(t, same, "child should always be a copy of a parent when mutationRareness<=0")
	}
}

func assertSameWeights(a, b *Neuron) bool {
	if a.Bias != b.Bias || len(a.Weights) != len(b.Weights) {
		return false
	}
	for i := range a.Weights {
		if a.Weights[i] != b.Weights[i] {
			return false
		}
	}
	return true
}
