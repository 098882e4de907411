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
	"fmt"
	"io"
)

// DenseNetwork is a fully connected feed-forward network. Shape[0] is
// the input width (no neurons exist for layer 0, it is pure input);
// Shape[i] for i>=1 is the neuron count of layer i, and Layers[i] holds
// those neurons, each wired to all of layer i-1's outputs (spec.md
// §4.5, grounded on original_source/src/fcnn.c's fcnnNew/fcnnCalc).
type DenseNetwork struct {
	Shape  []int
	Layers [][]*Neuron
}

// NewRandomDenseNetwork builds a network of the given shape (shape[0]
// is the input width) with every neuron randomly initialised.
func NewRandomDenseNetwork(shape []int) *DenseNetwork {
	layers := make([][]*Neuron, len(shape))
	for l := 1; l < len(shape); l++ {
		layer := make([]*Neuron, shape[l])
		for j := range layer {
			layer[j] = NewRandomNeuron(shape[l-1])
		}
		layers[l] = layer
	}
	return &DenseNetwork{Shape: append([]int{}, shape...), Layers: layers}
}

// Forward propagates inputs through every layer in turn and returns
// the final layer's outputs. len(inputs) must equal d.Shape[0].
func (d *DenseNetwork) Forward(inputs []float64) []float64 {
	activations := inputs
	for l := 1; l < len(d.Shape); l++ {
		next := make([]float64, len(d.Layers[l]))
		for j, n := range d.Layers[l] {
			next[j] = n.Output(activations)
		}
		activations = next
	}
	return activations
}

// Clone returns a deep copy of d.
func (d *DenseNetwork) Clone() *DenseNetwork {
	layers := make([][]*Neuron, len(d.Layers))
	for l, layer := range d.Layers {
		if layer == nil {
			continue
		}
		cl := make([]*Neuron, len(layer))
		for j, n := range layer {
			cl[j] = n.Clone()
		}
		layers[l] = cl
	}
	return &DenseNetwork{Shape: append([]int{}, d.Shape...), Layers: layers}
}

// CrossoverDense produces a child network of dad's shape (dad and mum
// must share shape) by crossing over each neuron slot independently
// via CrossoverNeuron.
func CrossoverDense(dad, mum *DenseNetwork, mutationRareness int) *DenseNetwork {
	layers := make([][]*Neuron, len(dad.Shape))
	for l := 1; l < len(dad.Shape); l++ {
		layer := make([]*Neuron, dad.Shape[l])
		for j := range layer {
			layer[j] = CrossoverNeuron(dad.Layers[l][j], mum.Layers[l][j], mutationRareness)
		}
		layers[l] = layer
	}
	return &DenseNetwork{Shape: append([]int{}, dad.Shape...), Layers: layers}
}

// Write serialises the shape (length then widths) followed by every
// neuron layer-major, each via Neuron.Write (spec.md §4.5
// "Serialisation": "expose one read/write per level").
func (d *DenseNetwork) Write(w io.Writer) error {
	if _, err := fmt.Fprintln(w, len(d.Shape)); err != nil {
		return err
	}
	for _, width := range d.Shape {
		if _, err := fmt.Fprintf(w, "%d ", width); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for l := 1; l < len(d.Shape); l++ {
		for _, n := range d.Layers[l] {
			if err := n.Write(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReadDenseNetwork is the inverse of Write.
func ReadDenseNetwork(r io.Reader) (*DenseNetwork, error) {
	var layerCount int
	if _, err := fmt.Fscan(r, &layerCount); err != nil {
		return nil, ErrMalformedNetwork
	}
	if layerCount < 1 {
		return nil, ErrMalformedNetwork
	}
	shape := make([]int, layerCount)
	for i := range shape {
		if _, err := fmt.Fscan(r, &shape[i]); err != nil {
			return nil, ErrMalformedNetwork
		}
	}
	layers := make([][]*Neuron, layerCount)
	for l := 1; l < layerCount; l++ {
		layer := make([]*Neuron, shape[l])
		for j := range layer {
			n, err := ReadNeuron(r)
			if err != nil {
				return nil, err
			}
			if len(n.Weights) != shape[l-1] {
				return nil, ErrMalformedNetwork
			}
			layer[j] = n
		}
		layers[l] = layer
	}
	return &DenseNetwork{Shape: shape, Layers: layers}, nil
}
