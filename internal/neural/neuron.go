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

// Package neural implements the neuron, dense feed-forward network, and
// chess-specific network primitives of spec.md §4.5: random init,
// forward evaluation, uniform crossover with per-weight mutation, and
// a two-tier positional text serialisation.
package neural

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/chessevo/evochess/internal/rng"
)

// randWeightMin and randWeightMax bound a neuron's random weights and
// bias (spec.md §4.5 "Random init").
const (
	randWeightMin = -100
	randWeightMax = 100
)

// ErrMalformedNetwork is returned by the Read* functions when a
// network file is truncated or holds a non-numeric token (spec.md §7
// "Malformed network file").
var ErrMalformedNetwork = errors.New("neural: malformed network data")

// Neuron stores an input count implicitly in len(Weights), a weight
// per input, and a bias.
type Neuron struct {
	Weights []float64
	Bias    float64
}

// NewRandomNeuron returns a neuron of inputCount weights, each weight
// and the bias drawn uniformly from [-100, 100].
func NewRandomNeuron(inputCount int) *Neuron {
	w := make([]float64, inputCount)
	for i := range w {
		w[i] = rng.UniformRange(randWeightMin, randWeightMax)
	}
	return &Neuron{
		Weights: w,
		Bias:    rng.UniformRange(randWeightMin, randWeightMax),
	}
}

// Output computes sigma(sum(w_i * input_i) + bias). len(inputs) must
// equal len(n.Weights).
func (n *Neuron) Output(inputs []float64) float64 {
	sum := n.Bias
	for i, w := range n.Weights {
		sum += w * inputs[i]
	}
	return sigmoid(sum)
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Clone returns a deep copy of n.
func (n *Neuron) Clone() *Neuron {
	w := make([]float64, len(n.Weights))
	copy(w, n.Weights)
	return &Neuron{Weights: w, Bias: n.Bias}
}

// CrossoverNeuron implements spec.md §4.5's per-neuron crossover: with
// probability 1/mutationRareness a fresh random neuron is returned,
// otherwise a copy of one of the two parents chosen by a fair coin.
func CrossoverNeuron(dad, mum *Neuron, mutationRareness int) *Neuron {
	if mutationRareness > 0 && rng.Chance(mutationRareness) {
		return NewRandomNeuron(len(dad.Weights))
	}
	if rng.CoinFlip() {
		return dad.Clone()
	}
	return mum.Clone()
}

// Write serialises n as: decimal input count, then that many
// whitespace-separated weights, then the bias (spec.md §4.5
// "Serialisation").
func (n *Neuron) Write(w io.Writer) error {
	if _, err := fmt.Fprintln(w, len(n.Weights)); err != nil {
		return err
	}
	for _, weight := range n.Weights {
		if _, err := fmt.Fprintf(w, "%g ", weight); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, n.Bias); err != nil {
		return err
	}
	return nil
}

// ReadNeuron is the inverse of Write. It is whitespace-tolerant
// (fmt.Fscan skips separating spaces and newlines alike) and returns
// ErrMalformedNetwork on the first non-numeric or missing token.
func ReadNeuron(r io.Reader) (*Neuron, error) {
	var count int
	if _, err := fmt.Fscan(r, &count); err != nil {
		return nil, ErrMalformedNetwork
	}
	if count < 0 {
		return nil, ErrMalformedNetwork
	}
	weights := make([]float64, count)
	for i := range weights {
		if _, err := fmt.Fscan(r, &weights[i]); err != nil {
			return nil, ErrMalformedNetwork
		}
	}
	var bias float64
	if _, err := fmt.Fscan(r, &bias); err != nil {
		return nil, ErrMalformedNetwork
	}
	return &Neuron{Weights: weights, Bias: bias}, nil
}
