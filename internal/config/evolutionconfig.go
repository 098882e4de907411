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

package config

import "time"

// evolutionConfiguration is a data structure to hold the configuration
// of a full evolutionary run (spec.md §4.3's G/P/M/shape/R/τ
// parameters). The source this spec distills from shipped two
// divergent hard-coded parameter sets (20 vs 100 generations, 1 vs 2
// tournament rounds); this rewrite surfaces both as the "quick" and
// "full" config presets instead of a compile-time choice.
type evolutionConfiguration struct {
	// Generations is the number of evolutionary generations to run (G).
	Generations int

	// PopulationSize is the number of networks in the population (P).
	// Must be even.
	PopulationSize int

	// MutationRareness is the 1-in-M chance a child neuron is replaced
	// by a fresh random neuron instead of inherited from a parent.
	MutationRareness int

	// NetworkShape is the dense network's layer widths. The first
	// entry must equal 64 (spec.md §4.3's "64-N1-...-1").
	NetworkShape []int

	// TournamentRounds is the number of round-robin-by-pairing rounds
	// played each generation (R).
	TournamentRounds int

	// MoveTimeBudget is the per-move wall-clock search budget (τ).
	MoveTimeBudget time.Duration

	// SaveDir is the directory final-generation network files are
	// written to (spec.md §6, "save_NNNN.txt").
	SaveDir string
}

func init() {
	Settings.Evolution.Generations = 20
	Settings.Evolution.PopulationSize = 100
	Settings.Evolution.MutationRareness = 100
	Settings.Evolution.NetworkShape = []int{64, 200, 100, 1}
	Settings.Evolution.TournamentRounds = 1
	Settings.Evolution.MoveTimeBudget = 100 * time.Millisecond
	Settings.Evolution.SaveDir = "."
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEvolution() {
	if len(Settings.Evolution.NetworkShape) == 0 {
		Settings.Evolution.NetworkShape = []int{64, 200, 100, 1}
	}
}
