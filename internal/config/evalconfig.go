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

// evalConfiguration is a data structure to hold the configuration of
// the hand-crafted evaluator (spec.md §4.2). These are the "legacy
// scale" magic numbers from the evaluation function, named and made
// overridable instead of buried in code.
type evalConfiguration struct {
	PawnValue   int16
	KnightValue int16
	BishopValue int16
	RookValue   int16
	QueenValue  int16

	// EndgamePieceThreshold is the piece count above which the
	// middlegame king-placement heuristic applies; at or below it the
	// endgame heuristic (centralisation bonus/malus) applies instead.
	EndgamePieceThreshold int

	// ScaleDivisor is the final divisor applied to the summed score
	// ("legacy scale" per spec.md §4.2).
	ScaleDivisor float64
}

func init() {
	Settings.Eval.PawnValue = 100
	Settings.Eval.KnightValue = 300
	Settings.Eval.BishopValue = 300
	Settings.Eval.RookValue = 500
	Settings.Eval.QueenValue = 900

	Settings.Eval.EndgamePieceThreshold = 15
	Settings.Eval.ScaleDivisor = 10
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {
}
