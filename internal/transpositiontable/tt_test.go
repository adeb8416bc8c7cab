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
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"

	. "github.com/corvidchess/corvid/internal/types"
)

func TestEntrySize(t *testing.T) {
	assert.EqualValues(t, 16, unsafe.Sizeof(TtEntry{}))
}

func TestNewSizing(t *testing.T) {
	tt := NewTtTable(2)
	assert.Equal(t, uint64(131_072), tt.maxNumberOfEntries)
	assert.Equal(t, 131_072, cap(tt.data))

	tt = NewTtTable(64)
	assert.Equal(t, uint64(4_194_304), tt.maxNumberOfEntries)

	tt = NewTtTable(100)
	assert.Equal(t, uint64(4_194_304), tt.maxNumberOfEntries)
}

func TestPutProbeRoundTrip(t *testing.T) {
	tt := NewTtTable(1)
	key := Key(0xdeadbeefcafebabe)
	move := CreateMove(SqE2, SqE4, Normal, PtNone)

	tt.Put(key, move, 5, Value(123), EXACT, Value(100), true)

	e := tt.Probe(key)
	if !assert.NotNil(t, e) {
		return
	}
	assert.Equal(t, move, e.Move())
	assert.EqualValues(t, 123, e.Value())
	assert.EqualValues(t, 100, e.Eval())
	assert.Equal(t, EXACT, e.Vtype())
	assert.EqualValues(t, 5, e.Depth())
	assert.True(t, e.IsPv())
}

func TestProbeMissReturnsNil(t *testing.T) {
	tt := NewTtTable(1)
	assert.Nil(t, tt.Probe(Key(0x1234)))
}

func TestPutPrefersGreaterDepthWithinSameGeneration(t *testing.T) {
	tt := NewTtTable(1)
	key := firstKeyHashingTo(tt, 0)
	other := secondKeyHashingTo(tt, 0)

	tt.Put(key, MoveNone, 3, Value(1), EXACT, ValueNA, false)
	tt.Put(other, MoveNone, 8, Value(2), EXACT, ValueNA, false)

	e := tt.Probe(other)
	if assert.NotNil(t, e) {
		assert.EqualValues(t, 8, e.Depth())
	}
}

func TestPutKeepsDeeperEntryOverShallowerCollision(t *testing.T) {
	tt := NewTtTable(1)
	key := firstKeyHashingTo(tt, 0)
	other := secondKeyHashingTo(tt, 0)

	tt.Put(key, MoveNone, 8, Value(1), EXACT, ValueNA, false)
	tt.Put(other, MoveNone, 3, Value(2), EXACT, ValueNA, false)

	e := tt.Probe(key)
	if assert.NotNil(t, e) {
		assert.EqualValues(t, 8, e.Depth())
	}
	assert.Nil(t, tt.Probe(other))
}

func TestNewSearchMakesStaleEntryReplaceable(t *testing.T) {
	tt := NewTtTable(1)
	key := firstKeyHashingTo(tt, 0)
	other := secondKeyHashingTo(tt, 0)

	tt.Put(key, MoveNone, 10, Value(1), EXACT, ValueNA, false)
	tt.NewSearch()
	tt.Put(other, MoveNone, 1, Value(2), EXACT, ValueNA, false)

	e := tt.Probe(other)
	if assert.NotNil(t, e) {
		assert.EqualValues(t, 1, e.Depth())
	}
}

func TestHashfullCountsOnlyCurrentGeneration(t *testing.T) {
	tt := NewTtTable(1)
	assert.Equal(t, 0, tt.Hashfull())
	tt.Put(Key(1), MoveNone, 1, Value(1), EXACT, ValueNA, false)
	assert.Greater(t, tt.Hashfull(), 0)
	tt.NewSearch()
	assert.Equal(t, 0, tt.Hashfull())
}

func TestUpdatePreservesMoveAndEvalWhenNotSupplied(t *testing.T) {
	tt := NewTtTable(1)
	key := Key(0x42)
	move := CreateMove(SqD2, SqD4, Normal, PtNone)

	tt.Put(key, move, 4, Value(10), EXACT, Value(7), false)
	tt.Put(key, MoveNone, 6, Value(20), BETA, ValueNA, false)

	e := tt.Probe(key)
	if assert.NotNil(t, e) {
		assert.Equal(t, move, e.Move())
		assert.EqualValues(t, 7, e.Eval())
		assert.EqualValues(t, 20, e.Value())
		assert.Equal(t, BETA, e.Vtype())
	}
}

func TestClear(t *testing.T) {
	tt := NewTtTable(1)
	tt.Put(Key(1), MoveNone, 1, Value(1), EXACT, ValueNA, false)
	assert.EqualValues(t, 1, tt.Len())
	tt.Clear()
	assert.EqualValues(t, 0, tt.Len())
	assert.Nil(t, tt.Probe(Key(1)))
}

// firstKeyHashingTo and secondKeyHashingTo brute-force two distinct
// keys colliding on the same slot so the replacement policy can be
// exercised deterministically.
func firstKeyHashingTo(tt *TtTable, slot uint64) Key {
	for k := uint64(1); ; k++ {
		if tt.hash(Key(k)) == slot {
			return Key(k)
		}
	}
}

func secondKeyHashingTo(tt *TtTable, slot uint64) Key {
	first := firstKeyHashingTo(tt, slot)
	for k := uint64(first) + 1; ; k++ {
		if tt.hash(Key(k)) == slot {
			return Key(k)
		}
	}
}
