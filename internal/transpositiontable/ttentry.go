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

package transpositiontable

import (
	. "github.com/corvidchess/corvid/internal/types"
)

// TtEntry is one slot of the transposition table: 16 bytes, two to a
// cache line. key is kept at its full 64 bits (no further truncation
// is needed - it already fits the cache-line budget the spec asks
// for), everything else is packed into vmeta to stay inside 16 bytes.
type TtEntry struct {
	key   Key    // 64-bit Zobrist key
	move  uint16 // 16-bit move part of a Move (no sort value)
	eval  int16  // static evaluation cached at store time
	value int16  // search score (mate scores are distance-from-node, see search package)
	vmeta uint16 // age:3 | vtype:2 | pv:1 | depth:7 | used:1
}

// TtEntrySize is the size in bytes of one TtEntry.
const TtEntrySize = 16

const (
	usedMask  = uint16(0b0000_0000_0000_0001)
	ageMask   = uint16(0b0000_0000_0000_1110)
	ageShift  = uint16(1)
	vtypeMask = uint16(0b0000_0000_0011_0000)
	vtypeShift = uint16(4)
	pvMask    = uint16(0b0000_0000_0100_0000)
	pvShift   = uint16(6)
	depthMask = uint16(0b0111_1111_1000_0000)
	depthShift = uint16(7)

	// maxAge is the largest age value the 3-bit age field can hold.
	maxAge = 7
)

// IsEmpty reports whether this slot has never been written.
func (e *TtEntry) IsEmpty() bool {
	return e.vmeta&usedMask == 0
}

// Key returns the full Zobrist key stored at this slot.
func (e *TtEntry) Key() Key { return e.key }

// Move returns the stored best/refutation move (no sort value encoded).
func (e *TtEntry) Move() Move { return Move(e.move) }

// Value returns the stored search score, still in "distance from this
// node" form - the caller is responsible for the ±ply mate rescaling.
func (e *TtEntry) Value() Value { return Value(e.value) }

// Eval returns the cached static evaluation.
func (e *TtEntry) Eval() Value { return Value(e.eval) }

// Depth returns the draft (remaining depth) the entry was stored at.
func (e *TtEntry) Depth() int8 {
	return int8((e.vmeta & depthMask) >> depthShift)
}

// Age returns the generation counter the entry was stored in.
func (e *TtEntry) Age() uint16 {
	return (e.vmeta & ageMask) >> ageShift
}

// Vtype returns the bound flag (Vnone/EXACT/ALPHA/BETA) the score was stored with.
func (e *TtEntry) Vtype() ValueType {
	return ValueType((e.vmeta & vtypeMask) >> vtypeShift)
}

// IsPv reports whether this entry was stored by a PV node.
func (e *TtEntry) IsPv() bool {
	return e.vmeta&pvMask != 0
}

func packVmeta(depth int8, vtype ValueType, age uint16, pv bool) uint16 {
	v := usedMask
	v |= (age & 0x7) << ageShift
	v |= uint16(vtype&0x3) << vtypeShift
	if pv {
		v |= pvMask
	}
	v |= (uint16(depth) & 0x7F) << depthShift
	return v
}

func (e *TtEntry) set(key Key, move Move, depth int8, value Value, vtype ValueType, eval Value, age uint16, pv bool) {
	e.key = key
	e.move = uint16(move.MoveOf())
	e.eval = int16(eval)
	e.value = int16(value)
	e.vmeta = packVmeta(depth, vtype, age, pv)
}
