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

// Package search implements root-level iterative deepening over a
// fail-soft alpha-beta core (original_source/src/ai.c's
// minimax/innerMinimax), with the wall-clock time control and mate
// scoring described in spec.md §4.4.
package search

import (
	"math"
	"time"

	"github.com/op/go-logging"

	"github.com/chessevo/evochess/internal/board"
	"github.com/chessevo/evochess/internal/eval"
	myLogging "github.com/chessevo/evochess/internal/logging"
	"github.com/chessevo/evochess/internal/neural"
	"github.com/chessevo/evochess/internal/rules"
	. "github.com/chessevo/evochess/internal/types"
)

// MateCoefficient scales a mate score; the search returns
// ±MateCoefficient*(depth+1) when a side has no legal move, so that
// shorter mates always outscore longer ones.
const MateCoefficient = 100000

// depthTimeCoeff is the "0.5" in the τ/(0.5·10^step) affordability
// heuristic used to decide whether another iterative-deepening pass
// is worth starting (spec.md §4.4 "Time control").
const depthTimeCoeff = 0.5

// Searcher runs iterative deepening for one side's move choice. The
// zero value is ready to use.
type Searcher struct {
	log *logging.Logger
	Eval *eval.Evaluator
}

// NewSearcher returns a ready-to-use Searcher.
func NewSearcher() *Searcher {
	return &Searcher{log: myLogging.GetLog(), Eval: eval.NewEvaluator()}
}

// ChooseMove runs root-level iterative deepening for up to budget
// wall-clock seconds and returns the best move found along with the
// depth actually completed. If the root has no legal move it returns
// the NoMoveSentinel and depth -1.
func (s *Searcher) ChooseMove(b *board.Board, net *neural.ChessNetwork, budget time.Duration) (Move, int) {
	root := rules.GenerateAllLegal(b)
	if root.Len() == 0 {
		return NoMoveSentinel, -1
	}

	maximizing := b.SideToMove().IsUppercase()
	start := time.Now()
	completedDepth := 0
	var bestMove Move = root.At(0)

	for depth := 1; ; depth++ {
		scores := make([]float64, root.Len())
		interrupted := false

		for i := 0; i < root.Len(); i++ {
			if depth > 1 && i > 0 && time.Since(start) > budget {
				interrupted = true
				break
			}
			child := b.Clone()
			rules.Apply(child, root.At(i))
			scores[i] = s.innerMinimax(child, net, depth, !maximizing, math.Inf(-1), math.Inf(1))
		}

		if interrupted {
			break
		}

		root.SortByScore(scores, !maximizing)
		bestMove = root.At(0)
		completedDepth = depth

		nextDepthThreshold := float64(budget) / (depthTimeCoeff * math.Pow(10, float64(depth)))
		if float64(time.Since(start)) > nextDepthThreshold {
			break
		}
	}

	return bestMove, completedDepth
}

// innerMinimax is fail-soft alpha-beta. At depth 0 it returns the
// evaluator's score; otherwise it enumerates legal moves and recurses,
// playing each child on a cloned board rather than unmaking (spec.md
// §5's copy-over-undo trade-off).
func (s *Searcher) innerMinimax(b *board.Board, net *neural.ChessNetwork, depth int, maximizing bool, alpha, beta float64) float64 {
	if depth == 0 {
		return s.Eval.Evaluate(b, net)
	}

	legal := rules.GenerateAllLegal(b)
	switch rules.TerminalResultFast(b, legal) {
	case rules.WhiteWin:
		return MateCoefficient * float64(depth+1)
	case rules.BlackWin:
		return -MateCoefficient * float64(depth+1)
	case rules.Draw:
		return 0
	}

	if maximizing {
		best := math.Inf(-1)
		for i := 0; i < legal.Len(); i++ {
			child := b.Clone()
			rules.Apply(child, legal.At(i))
			best = math.Max(best, s.innerMinimax(child, net, depth-1, false, alpha, beta))
			alpha = math.Max(alpha, best)
			if beta <= alpha {
				break
			}
		}
		return best
	}

	best := math.Inf(1)
	for i := 0; i < legal.Len(); i++ {
		child := b.Clone()
		rules.Apply(child, legal.At(i))
		best = math.Min(best, s.innerMinimax(child, net, depth-1, true, alpha, beta))
		beta = math.Min(beta, best)
		if beta <= alpha {
			break
		}
	}
	return best
}
