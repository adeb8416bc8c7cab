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

package history

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestBonusMalusFormula(t *testing.T) {
	h := NewHistory(8192)
	assert.EqualValues(t, 16, h.Bonus(0))
	assert.EqualValues(t, 64, h.Bonus(1))
	assert.EqualValues(t, -64, h.Malus(1))
}

func TestQuietHistoryNeverExceedsEnvelope(t *testing.T) {
	h := NewHistory(8192)
	for i := 0; i < 10_000; i++ {
		h.UpdateQuiet(WhiteKnight, SqE2, SqE4, h.Bonus(20))
		assert.LessOrEqual(t, int(h.QuietScore(WhiteKnight, SqE2, SqE4)), 8192)
		assert.GreaterOrEqual(t, int(h.QuietScore(WhiteKnight, SqE2, SqE4)), -8192)
	}
}

func TestGravityPullsTowardsZeroOnOppositeSign(t *testing.T) {
	h := NewHistory(8192)
	h.UpdateQuiet(WhiteKnight, SqE2, SqE4, 1000)
	before := h.QuietScore(WhiteKnight, SqE2, SqE4)
	h.UpdateQuiet(WhiteKnight, SqE2, SqE4, -1000)
	after := h.QuietScore(WhiteKnight, SqE2, SqE4)
	assert.Less(t, after, before)
}

func TestCaptureHistoryIndependentOfQuiet(t *testing.T) {
	h := NewHistory(8192)
	h.UpdateCapture(WhiteKnight, Pawn, SqE2, SqE4, 100)
	assert.EqualValues(t, 100, h.CaptureScore(WhiteKnight, Pawn, SqE2, SqE4))
	assert.EqualValues(t, 0, h.QuietScore(WhiteKnight, SqE2, SqE4))
}

func TestContinuationHistoryLookbacksAreIndependent(t *testing.T) {
	h := NewHistory(8192)
	h.UpdateContinuation(Lookback1, BlackPawn, SqD5, WhiteKnight, SqE4, 50)
	assert.EqualValues(t, 50, h.ContinuationScore(Lookback1, BlackPawn, SqD5, WhiteKnight, SqE4))
	assert.EqualValues(t, 0, h.ContinuationScore(Lookback2, BlackPawn, SqD5, WhiteKnight, SqE4))
}

func TestKillerStorageShiftsOldIntoSlotTwo(t *testing.T) {
	h := NewHistory(8192)
	m1 := CreateMove(SqE2, SqE4, Normal, PtNone)
	m2 := CreateMove(SqD2, SqD4, Normal, PtNone)
	h.StoreKiller(3, m1)
	h.StoreKiller(3, m2)
	assert.Equal(t, m2, h.Killer1(3))
	assert.Equal(t, m1, h.Killer2(3))
}

func TestStoreKillerDoesNotDuplicate(t *testing.T) {
	h := NewHistory(8192)
	m1 := CreateMove(SqE2, SqE4, Normal, PtNone)
	h.StoreKiller(5, m1)
	h.StoreKiller(5, m1)
	assert.Equal(t, m1, h.Killer1(5))
	assert.Equal(t, MoveNone, h.Killer2(5))
}

func TestClearKillersResetsAllPlies(t *testing.T) {
	h := NewHistory(8192)
	h.StoreKiller(1, CreateMove(SqE2, SqE4, Normal, PtNone))
	h.ClearKillers()
	assert.Equal(t, MoveNone, h.Killer1(1))
	assert.Equal(t, MoveNone, h.Killer2(1))
}
