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

package search

import (
	"math"

	. "github.com/corvidchess/corvid/internal/types"
)

// This file holds the static/pre-computed parameters the negamax core
// consults: late move reductions, late move pruning counts, razoring
// and static null move margins, and the aspiration window step size.
// All formulas here are fixed by the engine's tuning, not derived from
// search state; the LMR table is precomputed once in init(), the other
// values are computed on each call.

// lmrTable[depth][moveNumber] is the reduction (in plies) applied to a
// late quiet move, following the common "0.75 + ln(d)*ln(m)/2.25"
// shape: no reduction at depth 0 or move 0, growing slowly with both
// dimensions, truncated to an int and never reducing past depth-1.
var lmrTable [32][32]int

func init() {
	for d := 1; d < 32; d++ {
		for m := 1; m < 32; m++ {
			r := 0.75 + math.Log(float64(d))*math.Log(float64(m))/2.25
			reduction := int(r)
			if reduction > d-1 {
				reduction = d - 1
			}
			if reduction < 0 {
				reduction = 0
			}
			lmrTable[d][m] = reduction
		}
	}
}

// LmrReduction returns the search depth reduction for LMR depending on
// remaining depth and the number of moves already searched at this
// node.
func LmrReduction(depth int, movesSearched int) int {
	if depth >= 32 {
		depth = 31
	}
	if movesSearched >= 32 {
		movesSearched = 31
	}
	return lmrTable[depth][movesSearched]
}

// LmpMovesSearched is the move-count threshold beyond which remaining
// quiet moves are skipped outright at shallow depth (late move
// pruning). Grows roughly quadratically so deeper remaining depth
// tolerates more moves before pruning kicks in.
func LmpMovesSearched(depth int) int {
	if depth <= 0 {
		return 0
	}
	if depth > 8 {
		depth = 8
	}
	return 3 + depth*depth
}

// staticNullMoveMargin is the reverse-futility margin: a node whose
// static eval already beats beta by more than 120 per remaining ply is
// assumed to hold and is cut without searching further.
func staticNullMoveMargin(depth int) Value {
	return Value(120 * depth)
}

// razorMargin returns the margin used to decide whether a node this
// close to the leaves is worth dropping into quiescence early. The
// second ply out gets a wider margin since a razor there is a riskier
// cut.
func razorMargin(depth int) Value {
	switch depth {
	case 1:
		return 125
	case 2:
		return 125 + 175
	default:
		return 0
	}
}

// futilityMargin is the margin added to the material delta at a
// shallow node to decide whether a quiet move stands any chance of
// reaching alpha at all.
func futilityMargin(depth int) Value {
	return Value(100 + 60*depth)
}

// nullMoveReduction is the fixed depth reduction applied to the
// internal iterative deepening search that looks for a first move when
// the TT has none. The null move search itself reduces by
// config.SearchConfig.NmpReduction.
const nullMoveReduction = 2

// aspirationWindow is the half-width of the window placed around the
// previous iteration's score.
const aspirationWindow = 50

// aspirationDelta returns the half-width to use on the given retry
// attempt (0 = initial window) after a fail high or fail low: the
// window doubles each retry so a surprising score is not re-searched
// at the same depth more than a handful of times before it is simply
// given a wide-open window.
func aspirationDelta(attempt int) Value {
	delta := Value(aspirationWindow) << uint(attempt)
	if delta <= 0 || delta > ValueMax {
		return ValueMax
	}
	return delta
}
