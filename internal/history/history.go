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

// Package history provides the per-thread move-ordering tables updated
// during search: quiet history, capture history, two continuation
// history tables (one ply back, two plies back) and killer moves. Move
// ordering (internal/movegen) reads the quiet history and the killers
// only; capture and continuation scores are not used for ordering. On a
// beta cutoff the search updates quiet or capture history and the
// one-ply-back continuation table; the two-plies-back table is not
// updated by the search.
package history

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// lookback identifies which predecessor ply a continuation history
// table is indexed against.
const (
	Lookback1 = 0 // the move played at ply-1
	Lookback2 = 1 // the move played at ply-2
	numLookbacks = 2
)

// History holds one thread's move-ordering statistics. Create it with
// NewHistory: the zero value has historyMax 0, and the gravity update
// divides by historyMax, so updating a zero-value History panics.
type History struct {
	// Quiet is indexed [piece][from][to].
	Quiet [PieceLength][SqLength][SqLength]int16
	// Capture is indexed [piece][capturedPieceType][from][to].
	Capture [PieceLength][PtLength][SqLength][SqLength]int16
	// Continuation is indexed [lookback][prevPiece][prevTo][piece][to].
	Continuation [numLookbacks][PieceLength][SqLength][PieceLength][SqLength]int16

	// Killers holds two killer moves per ply; slot 0 is the most recent.
	Killers [MaxDepth + 2][2]Move

	historyMax int16
}

// NewHistory creates a zeroed History whose gravity formula clamps to
// ±historyMax (HISTORY_MAX in the spec; 8192 by default, see
// config.SearchConfig.HistoryMax).
func NewHistory(historyMax int) *History {
	if historyMax <= 0 {
		historyMax = 8192
	}
	return &History{historyMax: int16(historyMax)}
}

// Bonus computes the canonical history bonus for a cutoff found at the
// given remaining depth: 16*d^2 + 32*d + 16, clamped to historyMax so a
// single update can never overflow the table's envelope.
func (h *History) Bonus(depth int) int16 {
	b := 16*depth*depth + 32*depth + 16
	return clamp(int32(b), int32(h.historyMax))
}

// Malus is the penalty applied to quiet/capture moves that were tried
// before the cutoff move but did not cause it; the spec uses the same
// magnitude as Bonus with the opposite sign.
func (h *History) Malus(depth int) int16 {
	return -h.Bonus(depth)
}

func clamp(v, max int32) int16 {
	if v > max {
		v = max
	}
	if v < -max {
		v = -max
	}
	return int16(v)
}

// gravity applies h <- h + delta - h*|delta|/HISTORY_MAX, the update
// rule shared by every history table so that repeated boni saturate
// smoothly towards the envelope instead of overflowing it.
func (h *History) gravity(cur, delta int16) int16 {
	c := int32(cur)
	d := int32(delta)
	m := int32(h.historyMax)
	abs := d
	if abs < 0 {
		abs = -abs
	}
	updated := c + d - (c*abs)/m
	return clamp(updated, m)
}

// UpdateQuiet applies delta (Bonus or Malus) to the quiet-history entry
// for piece moving from -> to.
func (h *History) UpdateQuiet(piece Piece, from, to Square, delta int16) {
	h.Quiet[piece][from][to] = h.gravity(h.Quiet[piece][from][to], delta)
}

// QuietScore returns the clamped quiet-history value used directly as
// a move's ordering score (§4.5 "Quiet (other)").
func (h *History) QuietScore(piece Piece, from, to Square) int16 {
	return h.Quiet[piece][from][to]
}

// UpdateCapture applies delta to the capture-history entry for piece
// capturing captured on its way from -> to.
func (h *History) UpdateCapture(piece Piece, captured PieceType, from, to Square, delta int16) {
	h.Capture[piece][captured][from][to] = h.gravity(h.Capture[piece][captured][from][to], delta)
}

// CaptureScore returns the clamped capture-history value.
func (h *History) CaptureScore(piece Piece, captured PieceType, from, to Square) int16 {
	return h.Capture[piece][captured][from][to]
}

// UpdateContinuation applies delta to the continuation-history entry
// at the given lookback (Lookback1 or Lookback2) keyed by the
// predecessor move (prevPiece, prevTo) and the current move (piece, to).
func (h *History) UpdateContinuation(lookback int, prevPiece Piece, prevTo Square, piece Piece, to Square, delta int16) {
	h.Continuation[lookback][prevPiece][prevTo][piece][to] =
		h.gravity(h.Continuation[lookback][prevPiece][prevTo][piece][to], delta)
}

// ContinuationScore returns the clamped continuation-history value for
// the given lookback.
func (h *History) ContinuationScore(lookback int, prevPiece Piece, prevTo Square, piece Piece, to Square) int16 {
	return h.Continuation[lookback][prevPiece][prevTo][piece][to]
}

// StoreKiller records move as the newest killer at ply, shifting the
// previous slot-1 killer into slot 2. A move already present as the
// current killer is not duplicated.
func (h *History) StoreKiller(ply int, move Move) {
	if h.Killers[ply][0] == move {
		return
	}
	h.Killers[ply][1] = h.Killers[ply][0]
	h.Killers[ply][0] = move
}

// Killer1 returns the most recent killer move recorded at ply.
func (h *History) Killer1(ply int) Move {
	return h.Killers[ply][0]
}

// Killer2 returns the second most recent killer move recorded at ply.
func (h *History) Killer2(ply int) Move {
	return h.Killers[ply][1]
}

// ClearKillers clears every killer slot; called once per
// iterative-deepening run (§3 Lifecycle - killers do not outlive a
// search call the way quiet/capture/continuation history does).
func (h *History) ClearKillers() {
	for i := range h.Killers {
		h.Killers[i][0] = MoveNone
		h.Killers[i][1] = MoveNone
	}
}
