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

// Package evolve drives the population across generations: a
// tournament assigns each network a fitness key, the lower half is
// replaced by crossing over the upper half, and the final generation
// is persisted to disk (spec.md §4.3, grounded on
// original_source/src/ai.c's chNetEvolution/quickTournament/game).
package evolve

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/op/go-logging"

	"github.com/chessevo/evochess/internal/board"
	myLogging "github.com/chessevo/evochess/internal/logging"
	"github.com/chessevo/evochess/internal/neural"
	"github.com/chessevo/evochess/internal/rng"
	"github.com/chessevo/evochess/internal/rules"
	"github.com/chessevo/evochess/internal/search"
)

// Fitness point awarded to both players on a drawn tournament game,
// and to the winner on a decisive one (original_source/src/ai.c's
// quickTournament: "keys[i] += 0.3" on draw, "+= 1" on a win).
const (
	drawPoints = 0.3
	winPoints  = 1.0
)

// Config bundles the evolutionary-run parameters named in spec.md
// §4.3 (G, P, M, network shape, R, τ).
type Config struct {
	Generations      int
	PopulationSize   int
	MutationRareness int
	NetworkShape     []int
	TournamentRounds int
	MoveTimeBudget   time.Duration
	SaveDir          string
}

// Driver runs a full evolutionary simulation.
type Driver struct {
	log      *logging.Logger
	evoLog   *logging.Logger
	searcher *search.Searcher
}

// NewDriver returns a ready-to-use Driver.
func NewDriver() *Driver {
	return &Driver{
		log:      myLogging.GetLog(),
		evoLog:   myLogging.GetEvolutionLog(),
		searcher: search.NewSearcher(),
	}
}

// Run executes cfg.Generations generations starting from a freshly
// randomised population of cfg.PopulationSize networks, then persists
// the final population to cfg.SaveDir. It returns the final
// population and its last tournament's fitness keys.
func (d *Driver) Run(cfg Config) ([]*neural.ChessNetwork, []float64, error) {
	if cfg.PopulationSize%2 != 0 {
		return nil, nil, fmt.Errorf("evolve: population size %d must be even", cfg.PopulationSize)
	}

	population := make([]*neural.ChessNetwork, cfg.PopulationSize)
	for i := range population {
		net, err := neural.NewRandomChessNetwork(cfg.NetworkShape)
		if err != nil {
			return nil, nil, fmt.Errorf("evolve: building initial population: %w", err)
		}
		population[i] = net
	}

	var keys []float64
	for gen := 0; gen < cfg.Generations; gen++ {
		keys = d.tournament(population, cfg.TournamentRounds, cfg.MoveTimeBudget)
		sortAscending(population, keys)
		d.evoLog.Infof("generation %d/%d complete, best key %.2f, worst key %.2f",
			gen+1, cfg.Generations, keys[len(keys)-1], keys[0])

		if gen < cfg.Generations-1 {
			population = replaceLowerHalf(population, cfg.MutationRareness)
		}
	}

	if err := d.persist(population, cfg.SaveDir); err != nil {
		return population, keys, err
	}
	return population, keys, nil
}

// tournament plays cfg.TournamentRounds rounds of pairwise games,
// shuffling the population (and its keys, in lockstep) before each
// round, and returns the accumulated fitness key per population slot.
func (d *Driver) tournament(population []*neural.ChessNetwork, rounds int, moveTime time.Duration) []float64 {
	keys := make([]float64, len(population))

	for round := 0; round < rounds; round++ {
		shuffleWithKeys(population, keys)

		for i := 0; i+1 < len(population); i += 2 {
			result := d.playGame(population[i], population[i+1], moveTime)
			switch result {
			case rules.Draw:
				keys[i] += drawPoints
				keys[i+1] += drawPoints
			case rules.WhiteWin:
				keys[i] += winPoints
			case rules.BlackWin:
				keys[i+1] += winPoints
			}
		}
	}
	return keys
}

// shuffleWithKeys randomises slot order via Fisher-Yates, keeping
// each network paired with its own accumulated key
// (original_source/src/ai.c's shufflePopulationWithKeys).
func shuffleWithKeys(population []*neural.ChessNetwork, keys []float64) {
	rng.Shuffle(len(population), func(i, j int) {
		population[i], population[j] = population[j], population[i]
		keys[i], keys[j] = keys[j], keys[i]
	})
}

// sortAscending is a stable insertion sort of population by keys,
// smallest (worst fitness) first (original_source/src/ai.c's
// sortPopulation, increasing branch).
func sortAscending(population []*neural.ChessNetwork, keys []float64) {
	for i := 1; i < len(population); i++ {
		key := keys[i]
		net := population[i]
		j := i - 1
		for j >= 0 && keys[j] > key {
			keys[j+1] = keys[j]
			population[j+1] = population[j]
			j--
		}
		keys[j+1] = key
		population[j+1] = net
	}
}

// replaceLowerHalf kills the worse-scoring half of an ascending-sorted
// population (indices [0, half)) and refills each slot with a child of
// two upper-half (indices [half, len)) parents chosen by fixed
// indexing, not at random: slot j pairs upper[j] with upper[(j+1)%half]
// — this walks every elite network through parenthood exactly once per
// generation as "A" and once as "B" (spec.md §4.3's "intentional design
// choice that preserves deterministic coverage of the upper half").
func replaceLowerHalf(population []*neural.ChessNetwork, mutationRareness int) []*neural.ChessNetwork {
	half := len(population) / 2
	upper := population[half:]

	next := make([]*neural.ChessNetwork, len(population))
	copy(next[half:], upper)

	for j := 0; j < half; j++ {
		dad := upper[j]
		mum := upper[(j+1)%half]
		next[j] = neural.CrossoverChessNetwork(dad, mum, mutationRareness)
	}
	return next
}

// playGame runs one game to completion, white moving on even plies,
// black on odd (original_source/src/ai.c's game()). Returns the
// terminal result from White's perspective.
func (d *Driver) playGame(white, black *neural.ChessNetwork, moveTime time.Duration) rules.Result {
	b := board.New()
	for {
		var net *neural.ChessNetwork
		if b.SideToMove().IsUppercase() {
			net = black
		} else {
			net = white
		}

		move, depth := d.searcher.ChooseMove(b, net, moveTime)
		if depth < 0 {
			return rules.TerminalResult(b)
		}
		rules.Apply(b, move)

		if result := rules.TerminalResult(b); result != rules.Ongoing {
			return result
		}
	}
}

// persist writes every network in population to dir/save_NNNN.txt,
// 1-indexed with 4 zero-padded digits (spec.md §6).
func (d *Driver) persist(population []*neural.ChessNetwork, dir string) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("evolve: creating save directory: %w", err)
	}
	for i, net := range population {
		name := filepath.Join(dir, fmt.Sprintf("save_%04d.txt", i+1))
		f, err := os.Create(name)
		if err != nil {
			return fmt.Errorf("evolve: creating %s: %w", name, err)
		}
		err = net.Write(f)
		closeErr := f.Close()
		if err != nil {
			return fmt.Errorf("evolve: writing %s: %w", name, err)
		}
		if closeErr != nil {
			return fmt.Errorf("evolve: closing %s: %w", name, closeErr)
		}
	}
	d.log.Infof("persisted %d networks to %s", len(population), dir)
	return nil
}
