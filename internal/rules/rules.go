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

// Package rules implements legal move generation, position transition,
// and terminal-result detection over a board.Board. Move generation is
// two-phase per side to move: an in-check branch that filters every
// non-king pseudo-move through a copy-and-rescan safety check, and an
// out-of-check branch that uses precomputed pin restrictions instead
// (plus the same copy-and-rescan check for the one case pin
// restriction does not cover: en-passant opening a rank to a slider).
package rules

import (
	"errors"

	"github.com/chessevo/evochess/internal/assert"
	"github.com/chessevo/evochess/internal/board"
	"github.com/chessevo/evochess/internal/moveslice"
	"github.com/chessevo/evochess/internal/util"
	. "github.com/chessevo/evochess/internal/types"
)

// Result is the outcome of terminalResult (spec.md §4.1).
type Result int

const (
	Ongoing Result = iota
	WhiteWin
	BlackWin
	Draw
)

// ErrIllegalMove is returned by ApplyInput when the given move string
// is not in the current legal-move list (spec.md §7 "Invalid move
// input").
var ErrIllegalMove = errors.New("rules: illegal move, not applied")

// RestrictionAxis names the ray a pinned piece may still move along.
type RestrictionAxis int

const (
	Unrestricted RestrictionAxis = iota
	Vertical
	Horizontal
	Diagonal
	AntiDiagonal
)

var rookDirs = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var kingOffsets = [8][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var knightOffsets = [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}

func pawnDirection(c Color) int {
	if c == White {
		return -1
	}
	return 1
}

func homeRank(c Color) Rank {
	if c == White {
		return Rank2
	}
	return Rank7
}

func promoRank(c Color) Rank {
	if c == White {
		return Rank8
	}
	return Rank1
}

func axisMatches(vec [2]int, axis RestrictionAxis) bool {
	switch axis {
	case Vertical:
		return vec[0] == 0 && vec[1] != 0
	case Horizontal:
		return vec[1] == 0 && vec[0] != 0
	case Diagonal:
		return vec[0] == vec[1] && vec[0] != 0
	case AntiDiagonal:
		return vec[0] == -vec[1] && vec[0] != 0
	default:
		return true
	}
}

func axisForDir(dir [2]int) RestrictionAxis {
	switch {
	case dir[0] == 0:
		return Vertical
	case dir[1] == 0:
		return Horizontal
	case dir[0] == dir[1]:
		return Diagonal
	default:
		return AntiDiagonal
	}
}

// GenerateAllLegal returns every legal move for the side to move on b
// (spec.md §4.1 "generateAllLegal").
func GenerateAllLegal(b *board.Board) moveslice.MoveSlice {
	side := b.SideToMove()
	opp := side.Other()
	kingSq := b.KingSquare(side)
	if assert.DEBUG {
		assert.Assert(kingSq.IsValid(), "generateAllLegal: side to move %v has no king on the board", side)
	}
	inCheck := attackedBy(b, kingSq, opp, SqNone)

	ms := moveslice.NewMoveSlice(32)

	if inCheck {
		for sq := Square(0); sq < SqLength; sq++ {
			p := b.Grid[sq]
			if p.Color != side || p.Type == NoPieceType || p.Type == King {
				continue
			}
			for _, m := range pseudoMovesForPiece(b, sq, p, Unrestricted) {
				if moveKeepsKingSafe(b, m, side) {
					ms.PushBack(m)
				}
			}
		}
		for _, m := range kingMoves(b, kingSq, side, false) {
			ms.PushBack(m)
		}
		return *ms
	}

	pins := computePins(b, kingSq, side)
	for sq := Square(0); sq < SqLength; sq++ {
		p := b.Grid[sq]
		if p.Color != side || p.Type == NoPieceType || p.Type == King {
			continue
		}
		axis := Unrestricted
		if a, ok := pins[sq]; ok {
			axis = a
		}
		for _, m := range pseudoMovesForPiece(b, sq, p, axis) {
			if isEnPassant(b, p, m) && !moveKeepsKingSafe(b, m, side) {
				continue
			}
			ms.PushBack(m)
		}
	}
	for _, m := range kingMoves(b, kingSq, side, true) {
		ms.PushBack(m)
	}
	return *ms
}

// IsInputLegal reports whether m is in the current legal-move list.
func IsInputLegal(b *board.Board, m Move) bool {
	legal := GenerateAllLegal(b)
	for i := 0; i < legal.Len(); i++ {
		if legal.At(i) == m {
			return true
		}
	}
	return false
}

// ApplyInput parses raw, validates it against the legal-move list, and
// applies it. This is the rules engine's only user-facing reject path
// (spec.md §4.1, §7 "Invalid move input").
func ApplyInput(b *board.Board, raw string) error {
	m, ok := ParseMove(raw)
	if !ok || !IsInputLegal(b, m) {
		return ErrIllegalMove
	}
	Apply(b, m)
	return nil
}

// moveKeepsKingSafe plays m on a copy of b and reports whether side's
// king is left unattacked (spec.md §4.1's "verified by playing the
// move on a copy and running the attack scanner").
func moveKeepsKingSafe(b *board.Board, m Move, side Color) bool {
	if assert.DEBUG {
		assert.Assert(b.Grid[m.From()].Color == side, "moveKeepsKingSafe: %s does not move a %v piece", m, side)
	}
	cp := b.Clone()
	Apply(cp, m)
	return !attackedBy(cp, cp.KingSquare(side), side.Other(), SqNone)
}

// isEnPassant reports whether m is a pawn capture to an empty square -
// the one pseudo-move shape that pin restriction alone does not make
// safe, since it removes two pawns from the same rank at once.
func isEnPassant(b *board.Board, p Piece, m Move) bool {
	if p.Type != Pawn {
		return false
	}
	if m.From().Col() == m.To().Col() {
		return false
	}
	return b.Grid[m.To()].IsEmpty()
}

func pseudoMovesForPiece(b *board.Board, sq Square, p Piece, axis RestrictionAxis) []Move {
	switch p.Type {
	case Queen:
		return slidingMoves(b, sq, p.Color, allDirs(), axis)
	case Rook:
		return slidingMoves(b, sq, p.Color, rookDirs[:], axis)
	case Bishop:
		return slidingMoves(b, sq, p.Color, bishopDirs[:], axis)
	case Knight:
		return knightMoves(b, sq, p.Color, axis)
	case Pawn:
		return pawnMoves(b, sq, p.Color, axis)
	default:
		return nil
	}
}

func allDirs() [][2]int {
	dirs := make([][2]int, 0, 8)
	dirs = append(dirs, rookDirs[:]...)
	dirs = append(dirs, bishopDirs[:]...)
	return dirs
}

func slidingMoves(b *board.Board, sq Square, color Color, dirs [][2]int, axis RestrictionAxis) []Move {
	var moves []Move
	for _, dir := range dirs {
		if axis != Unrestricted && !axisMatches(dir, axis) {
			continue
		}
		for step := 1; ; step++ {
			dest, ok := sq.Offset(dir[0]*step, dir[1]*step)
			if !ok {
				break
			}
			occ := b.Grid[dest]
			if occ.IsEmpty() {
				moves = append(moves, NewMove(sq, dest, color, NoPieceType))
				continue
			}
			if occ.Color != color {
				moves = append(moves, NewMove(sq, dest, color, NoPieceType))
			}
			break
		}
	}
	return moves
}

func knightMoves(b *board.Board, sq Square, color Color, axis RestrictionAxis) []Move {
	var moves []Move
	for _, o := range knightOffsets {
		if axis != Unrestricted && !axisMatches(o, axis) {
			continue
		}
		dest, ok := sq.Offset(o[0], o[1])
		if !ok {
			continue
		}
		if b.Grid[dest].Color == color {
			continue
		}
		moves = append(moves, NewMove(sq, dest, color, NoPieceType))
	}
	return moves
}

func pawnMoves(b *board.Board, sq Square, color Color, axis RestrictionAxis) []Move {
	var moves []Move
	dr := pawnDirection(color)

	pushVec := [2]int{0, dr}
	if axis == Unrestricted || axisMatches(pushVec, axis) {
		if dest, ok := sq.Offset(0, dr); ok && b.Grid[dest].IsEmpty() {
			moves = append(moves, promotionMoves(sq, dest, color)...)
			if sq.Rank() == homeRank(color) {
				if dest2, ok2 := sq.Offset(0, 2*dr); ok2 && b.Grid[dest2].IsEmpty() {
					moves = append(moves, NewMove(sq, dest2, color, NoPieceType))
				}
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		vec := [2]int{dc, dr}
		if axis != Unrestricted && !axisMatches(vec, axis) {
			continue
		}
		dest, ok := sq.Offset(dc, dr)
		if !ok {
			continue
		}
		occ := b.Grid[dest]
		if !occ.IsEmpty() && occ.Color != color {
			moves = append(moves, promotionMoves(sq, dest, color)...)
		} else if occ.IsEmpty() && isEnPassantTarget(b, sq, dest, color) {
			moves = append(moves, NewMove(sq, dest, color, NoPieceType))
		}
	}
	return moves
}

func promotionMoves(from, to Square, color Color) []Move {
	if to.Rank() != promoRank(color) {
		return []Move{NewMove(from, to, color, NoPieceType)}
	}
	return []Move{
		NewMove(from, to, color, Queen),
		NewMove(from, to, color, Knight),
		NewMove(from, to, color, Bishop),
		NewMove(from, to, color, Rook),
	}
}

// isEnPassantTarget reports whether to is the en-passant capture
// square for a pawn of color sitting on from, given b.LastMove
// (spec.md §4.1 "en-passant only if the opponent's previous move...").
func isEnPassantTarget(b *board.Board, from, to Square, color Color) bool {
	lm := b.LastMove
	if lm == MoveNone || lm == NoMoveSentinel {
		return false
	}
	lastFrom, lastTo := lm.From(), lm.To()
	rowDelta := lastTo.Row() - lastFrom.Row()
	if rowDelta != 2 && rowDelta != -2 {
		return false
	}
	moved := b.Grid[lastTo]
	if moved.Type != Pawn || moved.Color == color {
		return false
	}
	behind, ok := lastTo.Offset(0, -pawnDirection(moved.Color))
	if !ok || behind != to {
		return false
	}
	if from.Row() != lastTo.Row() {
		return false
	}
	return util.Abs(from.Col()-lastTo.Col()) == 1
}

func kingMoves(b *board.Board, kingSq Square, side Color, includeCastle bool) []Move {
	var moves []Move
	opp := side.Other()
	for _, o := range kingOffsets {
		dest, ok := kingSq.Offset(o[0], o[1])
		if !ok {
			continue
		}
		if b.Grid[dest].Color == side {
			continue
		}
		if attackedBy(b, dest, opp, kingSq) {
			continue
		}
		moves = append(moves, NewMove(kingSq, dest, side, NoPieceType))
	}
	if includeCastle {
		moves = append(moves, castlingMoves(b, kingSq, side, opp)...)
	}
	return moves
}

func castlingMoves(b *board.Board, kingSq Square, side, opp Color) []Move {
	var moves []Move
	rank := Rank1
	if side == Black {
		rank = Rank8
	}
	if b.CastleRights[side][board.Kingside] {
		f, g, h := NewSquare(FileF, rank), NewSquare(FileG, rank), NewSquare(FileH, rank)
		rook := b.Grid[h]
		if b.Grid[f].IsEmpty() && b.Grid[g].IsEmpty() && rook.Type == Rook && rook.Color == side {
			if !attackedBy(b, f, opp, SqNone) && !attackedBy(b, g, opp, SqNone) {
				moves = append(moves, NewMove(kingSq, g, side, NoPieceType))
			}
		}
	}
	if b.CastleRights[side][board.Queenside] {
		bSq, c, d, a := NewSquare(FileB, rank), NewSquare(FileC, rank), NewSquare(FileD, rank), NewSquare(FileA, rank)
		rook := b.Grid[a]
		if b.Grid[bSq].IsEmpty() && b.Grid[c].IsEmpty() && b.Grid[d].IsEmpty() && rook.Type == Rook && rook.Color == side {
			if !attackedBy(b, d, opp, SqNone) && !attackedBy(b, c, opp, SqNone) {
				moves = append(moves, NewMove(kingSq, c, side, NoPieceType))
			}
		}
	}
	return moves
}

// computePins returns, for every square holding a piece pinned against
// kingSq, the ray it is still allowed to move along (spec.md §4.1 "Pin
// detection").
func computePins(b *board.Board, kingSq Square, side Color) map[Square]RestrictionAxis {
	if assert.DEBUG {
		assert.Assert(kingSq.IsValid(), "computePins: invalid king square for %v", side)
	}
	pins := make(map[Square]RestrictionAxis)
	opp := side.Other()
	for _, dir := range allDirs() {
		firstSq := SqNone
		for step := 1; ; step++ {
			sq, ok := kingSq.Offset(dir[0]*step, dir[1]*step)
			if !ok {
				break
			}
			occ := b.Grid[sq]
			if occ.IsEmpty() {
				continue
			}
			if firstSq == SqNone {
				if occ.Color != side {
					break
				}
				firstSq = sq
				continue
			}
			if occ.Color == opp && slidesAlong(occ.Type, dir) {
				pins[firstSq] = axisForDir(dir)
			}
			break
		}
	}
	return pins
}

func slidesAlong(pt PieceType, dir [2]int) bool {
	orthogonal := dir[0] == 0 || dir[1] == 0
	if pt == Queen {
		return true
	}
	if orthogonal {
		return pt == Rook
	}
	return pt == Bishop
}

// attackedBy reports whether target is attacked by attacker, pretending
// ignore (if a valid square) holds no piece - used both to detect
// check and, with ignore set to a king's own origin, to forbid the
// king from stepping behind a slider's ray (spec.md §4.1 "King
// (non-castling)").
func attackedBy(b *board.Board, target Square, attacker Color, ignore Square) bool {
	dr := pawnDirection(attacker)
	for _, dc := range []int{-1, 1} {
		if sq, ok := target.Offset(dc, -dr); ok && sq != ignore {
			if p := b.Grid[sq]; p.Color == attacker && p.Type == Pawn {
				return true
			}
		}
	}
	for _, o := range knightOffsets {
		if sq, ok := target.Offset(o[0], o[1]); ok && sq != ignore {
			if p := b.Grid[sq]; p.Color == attacker && p.Type == Knight {
				return true
			}
		}
	}
	for _, o := range kingOffsets {
		if sq, ok := target.Offset(o[0], o[1]); ok && sq != ignore {
			if p := b.Grid[sq]; p.Color == attacker && p.Type == King {
				return true
			}
		}
	}
	for _, dir := range rookDirs {
		if slidingAttack(b, target, attacker, dir, ignore, true) {
			return true
		}
	}
	for _, dir := range bishopDirs {
		if slidingAttack(b, target, attacker, dir, ignore, false) {
			return true
		}
	}
	return false
}

func slidingAttack(b *board.Board, from Square, attacker Color, dir [2]int, ignore Square, orthogonal bool) bool {
	for step := 1; ; step++ {
		sq, ok := from.Offset(dir[0]*step, dir[1]*step)
		if !ok {
			return false
		}
		if sq == ignore {
			continue
		}
		p := b.Grid[sq]
		if p.IsEmpty() {
			continue
		}
		if p.Color == attacker && (p.Type == Queen || (orthogonal && p.Type == Rook) || (!orthogonal && p.Type == Bishop)) {
			return true
		}
		return false
	}
}

// Apply performs the ordered transition actions of spec.md §4.1 on b.
// It assumes m is pseudo-legal for the side to move - callers handling
// untrusted input must go through ApplyInput instead.
func Apply(b *board.Board, m Move) {
	from, to := m.From(), m.To()
	mover := b.Grid[from]
	side := mover.Color

	clearCastlingRightOnCorner(b, from)
	clearCastlingRightOnCorner(b, to)

	isPawnMove := mover.Type == Pawn
	isCapture := !b.Grid[to].IsEmpty()

	if isPawnMove && from.Col() != to.Col() && b.Grid[to].IsEmpty() {
		capturedSq, _ := to.Offset(0, -pawnDirection(side))
		b.Grid[capturedSq] = Empty
		b.PieceCount--
		isCapture = true
	}

	if mover.Type == King {
		hadRights := b.CastleRights[side][board.Kingside] || b.CastleRights[side][board.Queenside]
		b.CastleRights[side][board.Kingside] = false
		b.CastleRights[side][board.Queenside] = false
		if hadRights {
			delta := int(to.Col()) - int(from.Col())
			if delta == 2 {
				slideCastleRook(b, side, board.Kingside)
			} else if delta == -2 {
				slideCastleRook(b, side, board.Queenside)
			}
		}
	}

	piece := mover
	if isPawnMove && to.Rank() == promoRank(side) {
		pt := m.Promotion()
		if pt == NoPieceType {
			pt = Queen
		}
		piece = Piece{Color: side, Type: pt}
	}

	if !b.Grid[to].IsEmpty() {
		b.PieceCount--
	}

	b.Grid[to] = piece
	b.Grid[from] = Empty

	if isCapture || isPawnMove {
		b.HalfmoveClock = 0
		b.RepetitionHistory = b.RepetitionHistory[:0]
	} else {
		b.HalfmoveClock++
		b.RepetitionHistory = append(b.RepetitionHistory, b.Fingerprint())
	}
	b.Ply++
	b.LastMove = m
}

func clearCastlingRightOnCorner(b *board.Board, sq Square) {
	switch sq {
	case NewSquare(FileA, Rank1):
		b.CastleRights[White][board.Queenside] = false
	case NewSquare(FileH, Rank1):
		b.CastleRights[White][board.Kingside] = false
	case NewSquare(FileA, Rank8):
		b.CastleRights[Black][board.Queenside] = false
	case NewSquare(FileH, Rank8):
		b.CastleRights[Black][board.Kingside] = false
	}
}

func slideCastleRook(b *board.Board, side Color, wing board.Side) {
	rank := Rank1
	if side == Black {
		rank = Rank8
	}
	var from, to Square
	if wing == board.Kingside {
		from, to = NewSquare(FileH, rank), NewSquare(FileF, rank)
	} else {
		from, to = NewSquare(FileA, rank), NewSquare(FileD, rank)
	}
	b.Grid[to] = b.Grid[from]
	b.Grid[from] = Empty
}

// TerminalResult reports the current position's outcome (spec.md §4.1
// "Termination").
func TerminalResult(b *board.Board) Result {
	legal := GenerateAllLegal(b)
	return TerminalResultFast(b, legal)
}

// TerminalResultFast is TerminalResult given an already-generated
// legal-move list, skipping regeneration.
func TerminalResultFast(b *board.Board, legal moveslice.MoveSlice) Result {
	if b.HalfmoveClock >= 100 {
		return Draw
	}
	fp := b.Fingerprint()
	occurrences := 0
	for _, h := range b.RepetitionHistory {
		if h == fp {
			occurrences++
		}
	}
	if occurrences >= 3 {
		return Draw
	}
	if b.PieceCount == 2 {
		return Draw
	}
	if legal.Len() == 0 {
		side := b.SideToMove()
		if attackedBy(b, b.KingSquare(side), side.Other(), SqNone) {
			if side == White {
				return BlackWin
			}
			return WhiteWin
		}
		return Draw
	}
	return Ongoing
}
