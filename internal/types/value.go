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

package types

import (
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/internal/util"
)

// Value represents the positional value (score) of a chess position
// or search node, in centipawns from the side to move's perspective.
type Value int16

// Constants for values.
const (
	ValueZero Value = 0
	ValueDraw Value = 0
	ValueOne  Value = 1

	// ValueInf is larger than any legal or mate score and is used as the
	// open aspiration / root search window bound.
	ValueInf Value = 15_000
	// ValueNA marks "no value available", e.g. an empty TT slot.
	ValueNA Value = -ValueInf - 1

	ValueMax Value = 10_000
	ValueMin Value = -ValueMax

	// ValueCheckMate is the score of delivering mate on the current ply.
	ValueCheckMate Value = ValueMax
	// ValueCheckMateThreshold is the smallest magnitude a mate score can
	// have; scores whose absolute value exceeds this are mate scores
	// that still need ply-distance adjustment before being stored in
	// or read back from the transposition table.
	ValueCheckMateThreshold Value = ValueCheckMate - MaxDepth - 1
)

// IsValid checks if value is within the valid centipawn range (between
// ValueMin and ValueMax).
func (v Value) IsValid() bool {
	return v >= ValueMin && v <= ValueMax
}

// IsCheckMateValue returns true if value is a mate score, i.e. its
// magnitude is above the check mate threshold.
func (v Value) IsCheckMateValue() bool {
	return util.Abs16(int16(v)) > int16(ValueCheckMateThreshold) && util.Abs16(int16(v)) <= int16(ValueCheckMate)
}

// String renders the value the way a UCI "score" token would: either
// "cp <n>" or "mate <n>".
func (v Value) String() string {
	var s strings.Builder
	switch {
	case v.IsCheckMateValue():
		s.WriteString("mate ")
		if v < ValueZero {
			s.WriteString("-")
		}
		pliesToMate := int(ValueCheckMate) - int(util.Abs16(int16(v)))
		movesToMate := (pliesToMate + 1) / 2
		s.WriteString(strconv.Itoa(movesToMate))
	case v == ValueNA:
		s.WriteString("N/A")
	default:
		s.WriteString("cp ")
		s.WriteString(strconv.Itoa(int(v)))
	}
	return s.String()
}
