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
	"errors"
	"fmt"
	"io"
	"math"
)

// PreprocessingNeuronCount is the number of board squares, one
// preprocessing neuron per square (spec.md §4.5).
const PreprocessingNeuronCount = 64

// PreprocessingInputCount is the width of a preprocessing neuron's
// one-hot input vector: one slot per piece letter it recognises.
const PreprocessingInputCount = 12

// ErrShapeMismatch is returned by NewRandomChessNetwork when the dense
// network's input layer width isn't PreprocessingNeuronCount.
var ErrShapeMismatch = errors.New("neural: dense network input width must be 64")

// ChessNetwork wires 64 preprocessing neurons (one per board square,
// each turning that square's occupant into a 12-wide one-hot vector)
// into a dense network whose first layer width must be 64 — one
// preprocessing output per square (spec.md §4.5, grounded on
// original_source/src/chess_net.c).
type ChessNetwork struct {
	Preprocessing [PreprocessingNeuronCount]*Neuron
	Dense         *DenseNetwork
}

// NewRandomChessNetwork builds a chess network whose dense part has
// the given shape. denseShape[0] must equal PreprocessingNeuronCount.
func NewRandomChessNetwork(denseShape []int) (*ChessNetwork, error) {
	if len(denseShape) == 0 || denseShape[0] != PreprocessingNeuronCount {
		return nil, ErrShapeMismatch
	}
	var pre [PreprocessingNeuronCount]*Neuron
	for i := range pre {
		pre[i] = NewRandomNeuron(PreprocessingInputCount)
	}
	return &ChessNetwork{
		Preprocessing: pre,
		Dense:         NewRandomDenseNetwork(denseShape),
	}, nil
}

// pieceIndex maps a position-string character to its one-hot slot in
// the literal order chess_net.c's switch statement uses: p,P,k,K,n,N,
// b,B,r,R,q,Q. A space is the "no piece" vector (all zero). Any other
// byte, including a short/truncated string, is invalid.
func pieceIndex(c byte) (int, bool) {
	switch c {
	case 'p':
		return 0, true
	case 'P':
		return 1, true
	case 'k':
		return 2, true
	case 'K':
		return 3, true
	case 'n':
		return 4, true
	case 'N':
		return 5, true
	case 'b':
		return 6, true
	case 'B':
		return 7, true
	case 'r':
		return 8, true
	case 'R':
		return 9, true
	case 'q':
		return 10, true
	case 'Q':
		return 11, true
	}
	return 0, false
}

// oneHot turns a position-string character into its 12-wide input
// vector. A space yields the all-zero vector; any unrecognised
// character is reported via the second return value so callers can
// short-circuit to NaN (spec.md §4.5 "Evaluation").
func oneHot(c byte) ([]float64, bool) {
	v := make([]float64, PreprocessingInputCount)
	if c == ' ' {
		return v, true
	}
	idx, ok := pieceIndex(c)
	if !ok {
		return nil, false
	}
	v[idx] = 1.0
	return v, true
}

// Evaluate feeds a 64-character position string (spec.md §3's board
// fingerprint/network-input format: one character per square, row-major,
// space for empty) through the 64 preprocessing neurons and then the
// dense network, returning its single output. Any character the
// network doesn't recognise, or a string of the wrong length, yields
// NaN rather than an error — matching chess_net.c's chNetPredict,
// which returns NAN on an unrecognised or truncated byte.
func (c *ChessNetwork) Evaluate(posString string) float64 {
	if len(posString) != PreprocessingNeuronCount {
		return math.NaN()
	}
	inputs := make([]float64, PreprocessingNeuronCount)
	for i := 0; i < PreprocessingNeuronCount; i++ {
		v, ok := oneHot(posString[i])
		if !ok {
			return math.NaN()
		}
		inputs[i] = c.Preprocessing[i].Output(v)
	}
	out := c.Dense.Forward(inputs)
	if len(out) == 0 {
		return math.NaN()
	}
	return out[0]
}

// Clone returns a deep copy of c.
func (c *ChessNetwork) Clone() *ChessNetwork {
	var pre [PreprocessingNeuronCount]*Neuron
	for i, n := range c.Preprocessing {
		pre[i] = n.Clone()
	}
	return &ChessNetwork{Preprocessing: pre, Dense: c.Dense.Clone()}
}

// CrossoverChessNetwork crosses the preprocessing neurons and the
// dense network independently, slot for slot, via CrossoverNeuron and
// CrossoverDense (spec.md §4.5 "Crossover").
func CrossoverChessNetwork(dad, mum *ChessNetwork, mutationRareness int) *ChessNetwork {
	var pre [PreprocessingNeuronCount]*Neuron
	for i := range pre {
		pre[i] = CrossoverNeuron(dad.Preprocessing[i], mum.Preprocessing[i], mutationRareness)
	}
	return &ChessNetwork{
		Preprocessing: pre,
		Dense:         CrossoverDense(dad.Dense, mum.Dense, mutationRareness),
	}
}

// Write serialises the 64 preprocessing neurons followed by the dense
// network, each level exposing its own Write (spec.md §9 Design Notes:
// "expose one read/write per level").
func (c *ChessNetwork) Write(w io.Writer) error {
	for _, n := range c.Preprocessing {
		if err := n.Write(w); err != nil {
			return err
		}
	}
	return c.Dense.Write(w)
}

// ReadChessNetwork is the inverse of Write.
func ReadChessNetwork(r io.Reader) (*ChessNetwork, error) {
	var pre [PreprocessingNeuronCount]*Neuron
	for i := range pre {
		n, err := ReadNeuron(r)
		if err != nil {
			return nil, err
		}
		if len(n.Weights) != PreprocessingInputCount {
			return nil, ErrMalformedNetwork
		}
		pre[i] = n
	}
	dense, err := ReadDenseNetwork(r)
	if err != nil {
		return nil, err
	}
	if len(dense.Shape) == 0 || dense.Shape[0] != PreprocessingNeuronCount {
		return nil, fmt.Errorf("%w: dense input width %v", ErrShapeMismatch, dense.Shape)
	}
	return &ChessNetwork{Preprocessing: pre, Dense: dense}, nil
}
