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

// Package uciInterface defines the callback a Search uses to report
// progress to whatever is driving it. This indirection exists because
// package uci holds a reference to Search to start/stop it, while
// Search needs to call back into the UCI layer to emit "info" and
// "bestmove" lines - Go does not allow the two packages to import each
// other directly.
package uciInterface

import (
	"time"

	"github.com/corvidchess/corvid/internal/moveslice"
	. "github.com/corvidchess/corvid/internal/types"
)

// UciDriver is implemented by whatever reports search progress to the
// outside world (the real UCI protocol handler, or a test double that
// records calls).
type UciDriver interface {
	// SendReadyOk answers a UCI "isready" command.
	SendReadyOk()
	// SendInfoString sends a free form "info string" line.
	SendInfoString(info string)
	// SendIterationEndInfo reports the result of one completed
	// iterative-deepening iteration.
	SendIterationEndInfo(depth int, seldepth int, value Value, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice)
	// SendAspirationResearchInfo reports an aspiration window research,
	// tagging whether the failing score was a lower or upper bound.
	SendAspirationResearchInfo(depth int, seldepth int, value Value, valueType ValueType, nodes uint64, nps uint64, time time.Duration, pv moveslice.MoveSlice)
	// SendCurrentRootMove reports which root move is currently being searched.
	SendCurrentRootMove(currMove Move, moveNumber int)
	// SendSearchUpdate reports periodic progress (nodes, nps, hashfull) during a long search.
	SendSearchUpdate(depth int, seldepth int, nodes uint64, nps uint64, time time.Duration, hashfull int)
	// SendCurrentLine reports the line currently being searched.
	SendCurrentLine(moveList moveslice.MoveSlice)
	// SendResult reports the final best move and, if applicable, the move to ponder on.
	SendResult(bestMove Move, ponderMove Move)
}
