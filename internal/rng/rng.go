/*
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

// Package rng is the system's single process-wide pseudo-random source
// (spec.md §5). Every initialisation, crossover, mutation and tournament
// shuffle pulls from the one generator seeded here, so a fixed seed and
// a fixed iteration count reproduce a run deterministically (§8 property 5).
package rng

// generator is a xorshift64star Pseudo-Random Number Generator.
// Based on original code written and dedicated to the public domain
// by Sebastiano Vigna (2014). Characteristics:
//   - Outputs 64-bit numbers
//   - Passes Dieharder and SmallCrush test batteries
//   - Does not require warm-up, no zeroland to escape
//   - Internal state is a single 64-bit integer
//   - Period is 2^64 - 1
// For further analysis see <http://vigna.di.unimi.it/ftp/papers/xorshift.pdf>
type generator struct {
	s uint64
}

var global = generator{s: 0x9e3779b97f4a7c15}

// Seed re-initialises the process-wide generator. Seed must not be 0.
// This is the one contract named for the "random seeding" collaborator
// spec.md §1 treats as external: callers decide when and with what
// value to seed; this package only guarantees determinism afterwards.
func Seed(seed uint64) {
	if seed == 0 {
		panic("rng: seed must not be 0")
	}
	global = generator{s: seed}
}

// Uint64 returns the next 64-bit pseudo-random number from the
// process-wide generator.
func Uint64() uint64 {
	return global.next()
}

func (g *generator) next() uint64 {
	g.s ^= g.s << 25
	g.s ^= g.s >> 27
	g.s ^= g.s >> 12
	return g.s * 2685821657736338717
}

// Float64 returns a pseudo-random float64 in [0, 1).
func Float64() float64 {
	// 53 bits of mantissa precision, matching math/rand's convention.
	return float64(Uint64()>>11) / (1 << 53)
}

// UniformRange returns a pseudo-random float64 uniformly distributed
// in [min, max). Used for neuron weight/bias initialisation in
// [-100, +100] (spec.md §4.5).
func UniformRange(min, max float64) float64 {
	return min + Float64()*(max-min)
}

// CoinFlip returns true or false with equal probability. Used to pick
// which parent a crossed-over neuron is copied from (spec.md §4.5).
func CoinFlip() bool {
	return Float64() < 0.5
}

// Chance returns true with probability 1/m. A non-positive m always
// returns false - matching the mutation-rareness contract of spec.md
// §4.5, where M<=0 disables mutation entirely.
func Chance(m int) bool {
	if m <= 0 {
		return false
	}
	return Float64() < 1.0/float64(m)
}

// Intn returns a pseudo-random int in [0, n). Panics if n <= 0.
func Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	return int(Uint64() % uint64(n))
}

// Shuffle randomizes the order of a length-n sequence in place via the
// provided swap function, Fisher-Yates style. Grounded on
// original_source/src/ai.c's shufflePopulationWithKeys, which shuffles
// a population (and its parallel fitness-key array) before pairing up
// tournament opponents each round (spec.md §4.3).
func Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := Intn(i + 1)
		swap(i, j)
	}
}
