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

// Package eval scores a position either with a neural network or with
// a hand-crafted heuristic, for use by the search and the tournament
// game loop.
package eval

import (
	"math"

	"github.com/op/go-logging"

	"github.com/chessevo/evochess/internal/board"
	"github.com/chessevo/evochess/internal/config"
	myLogging "github.com/chessevo/evochess/internal/logging"
	"github.com/chessevo/evochess/internal/neural"
	. "github.com/chessevo/evochess/internal/types"
)

// Evaluator scores positions. It carries no mutable state of its own;
// the zero value is ready to use. A logger field is kept for parity
// with the rest of the codebase's components, which all log through
// the same backend.
type Evaluator struct {
	log *logging.Logger
}

// NewEvaluator returns a ready-to-use Evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{log: myLogging.GetLog()}
}

// Evaluate scores b from lowercase-White's perspective: positive
// favours White, negative favours Black. If net is non-nil, the board
// is serialised to its position string and scored by the network;
// otherwise the hand-crafted heuristic below is used.
func (e *Evaluator) Evaluate(b *board.Board, net *neural.ChessNetwork) float64 {
	if net != nil {
		score := net.Evaluate(b.Fingerprint())
		if math.IsNaN(score) {
			e.log.Warningf("network evaluation returned NaN for position %q", b.Fingerprint())
		}
		return score
	}
	return e.handCrafted(b)
}

func (e *Evaluator) handCrafted(b *board.Board) float64 {
	var total float64
	for sq := Square(0); sq < SqLength; sq++ {
		p := b.Grid[sq]
		if p.IsEmpty() || p.Type == King {
			continue
		}
		row, col := sq.Row(), sq.Col()
		val := baseValue(p.Type)
		switch p.Type {
		case Knight:
			val -= centerDistance(row, col)
		case Pawn:
			val += pawnShaping(p.Color, row, col)
		}
		total += signed(p.Color, val)
	}

	whiteKing := b.KingSquare(White)
	blackKing := b.KingSquare(Black)
	total += kingPlacement(whiteKing, blackKing, b.PieceCount)

	return total / config.Settings.Eval.ScaleDivisor
}

func baseValue(pt PieceType) float64 {
	switch pt {
	case Pawn:
		return float64(config.Settings.Eval.PawnValue)
	case Knight:
		return float64(config.Settings.Eval.KnightValue)
	case Bishop:
		return float64(config.Settings.Eval.BishopValue)
	case Rook:
		return float64(config.Settings.Eval.RookValue)
	case Queen:
		return float64(config.Settings.Eval.QueenValue)
	default:
		return 0
	}
}

// signed attaches White/Black's sign convention to an unsigned piece
// value: positive for the lowercase side, negative for uppercase.
func signed(c Color, val float64) float64 {
	if c == White {
		return val
	}
	return -val
}

// centerDistance is the knight centralisation penalty: zero at the
// four central squares, growing toward the rim.
func centerDistance(row, col int) float64 {
	return (math.Abs(35-10*float64(col)) + math.Abs(35-10*float64(row))) / 10
}

// centerCloseness is the inverse of centerDistance: largest at the
// board's centre, used by the endgame king term.
func centerCloseness(row, col int) float64 {
	return (35-math.Abs(35-10*float64(col)))/10 + (35-math.Abs(35-10*float64(row)))/10
}

// pawnShaping rewards advancement toward the promotion rank and
// central files. White (lowercase) promotes on row 0, Black
// (uppercase) on row 7.
func pawnShaping(c Color, row, col int) float64 {
	var advance float64
	if c == White {
		advance = float64(7 - row)
	} else {
		advance = float64(row)
	}
	return advance - math.Abs(35-10*float64(col))/10
}

// kingPlacement returns the signed (White-positive) contribution of
// both kings' placement. Middlegame favours each king staying in a
// back-rank corner; the endgame favours White centralising relative
// to Black (and, symmetrically, penalises White for letting Black
// centralise), matching the "bonus proportional to own centralisation,
// penalty for the opponent's" rule.
func kingPlacement(whiteKing, blackKing Square, pieceCount int) float64 {
	if pieceCount > config.Settings.Eval.EndgamePieceThreshold {
		var val float64
		if cornerBackRank(White, whiteKing) {
			val += 10
		}
		if cornerBackRank(Black, blackKing) {
			val -= 10
		}
		return val
	}
	return centerCloseness(whiteKing.Row(), whiteKing.Col()) - centerCloseness(blackKing.Row(), blackKing.Col())
}

func cornerBackRank(c Color, kingSq Square) bool {
	backRank := 7
	if c == Black {
		backRank = 0
	}
	col := kingSq.Col()
	return kingSq.Row() == backRank && (col <= 2 || col >= 5)
}
