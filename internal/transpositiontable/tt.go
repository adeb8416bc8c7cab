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

// Package transpositiontable implements a transposition table (cache)
// data structure and functionality for a chess engine search.
// The TtTable class is not thread safe for Resize/Clear/NewSearch and
// needs to be synchronized externally if used from multiple threads -
// those must not be called while a search is probing or storing.
package transpositiontable

import (
	"math"
	"sync"
	"time"
	"unsafe"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

const (
	// MaxSizeInMB is the largest size NewTtTable/Resize will honour.
	MaxSizeInMB = 65_536
)

// TtTable is the actual transposition table object holding data and
// state. Create with NewTtTable().
type TtTable struct {
	log *logging.Logger

	data               []TtEntry
	sizeInByte         uint64
	maxNumberOfEntries uint64
	numberOfEntries    uint64

	// currentAge is the generation counter bumped by NewSearch. Put's
	// replacement policy prefers to evict an entry from an older
	// generation over one written during the current search.
	currentAge uint16

	Stats TtStats
}

// TtStats holds statistical data on tt usage.
type TtStats struct {
	numberOfPuts       uint64
	numberOfCollisions uint64
	numberOfOverwrites uint64
	numberOfUpdates    uint64
	numberOfProbes     uint64
	numberOfHits       uint64
	numberOfMisses     uint64
}

// NewTtTable creates a new TtTable with the given number of megabytes
// as a maximum of memory usage. The actual size is the number of
// TtEntry fitting into this size rounded down to a power of two, so
// that hashing can use a multiplicative map instead of a modulo.
func NewTtTable(sizeInMByte int) *TtTable {
	tt := &TtTable{log: logging.MustGetLogger("tt")}
	tt.Resize(sizeInMByte)
	return tt
}

// SetLogger overrides the table's logger, used by the engine to route
// TT diagnostics through its configured log levels instead of the
// package default.
func (tt *TtTable) SetLogger(l *logging.Logger) {
	tt.log = l
}

// Resize resizes the tt table, discarding all entries and resetting
// the generation counter. Must not be called while a search thread is
// probing or storing.
func (tt *TtTable) Resize(sizeInMByte int) {
	if sizeInMByte > MaxSizeInMB {
		tt.log.Error(out.Sprintf("Requested size for TT of %d MB reduced to max of %d MB", sizeInMByte, MaxSizeInMB))
		sizeInMByte = MaxSizeInMB
	}
	if sizeInMByte < 1 {
		sizeInMByte = 1
	}

	tt.sizeInByte = uint64(sizeInMByte) * MB
	exp := uint64(math.Floor(math.Log2(float64(tt.sizeInByte / TtEntrySize))))
	tt.maxNumberOfEntries = 1 << exp
	tt.sizeInByte = tt.maxNumberOfEntries * TtEntrySize

	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.currentAge = 0
	tt.Stats = TtStats{}

	tt.log.Info(out.Sprintf("TT Size %d MByte, Capacity %d entries (size=%d Byte) (Requested were %d MBytes)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), sizeInMByte))
}

// NewSearch bumps the generation counter without clearing the table.
// Call once per top-level search so Put's replacement policy can tell
// entries from a previous search apart from entries written during
// the current one.
func (tt *TtTable) NewSearch() {
	tt.currentAge = (tt.currentAge + 1) % (maxAge + 1)
}

// hash maps key onto a slot index via "hash * length >> 64" (Lemire's
// multiplicative trick), spreading keys uniformly over the table
// without the modulo a plain bitmask-free scheme would otherwise need.
func (tt *TtTable) hash(key Key) uint64 {
	hi, _ := mul128(uint64(key), tt.maxNumberOfEntries)
	return hi
}

// mul128 returns the high and low 64 bits of the 128-bit product a*b.
func mul128(a, b uint64) (hi, lo uint64) {
	const mask32 = 1<<32 - 1
	aLo, aHi := a&mask32, a>>32
	bLo, bHi := b&mask32, b>>32

	t := aLo * bLo
	w0 := t & mask32
	k := t >> 32

	t = aHi*bLo + k
	w1 := t & mask32
	w2 := t >> 32

	t = aLo*bHi + w1
	k = t >> 32

	hi = aHi*bHi + w2 + k
	lo = (t << 32) + w0
	return hi, lo
}

// GetEntry returns a pointer to the slot key hashes to, regardless of
// whether it actually holds key - callers must check Key() themselves.
// Does not change statistics.
func (tt *TtTable) GetEntry(key Key) *TtEntry {
	return &tt.data[tt.hash(key)]
}

// Probe returns a pointer to the entry for key, or nil if the slot it
// hashes to holds a different (or no) key.
func (tt *TtTable) Probe(key Key) *TtEntry {
	tt.Stats.numberOfProbes++
	e := &tt.data[tt.hash(key)]
	if !e.IsEmpty() && e.Key() == key {
		tt.Stats.numberOfHits++
		return e
	}
	tt.Stats.numberOfMisses++
	return nil
}

// Put stores (key, move, depth, value, valueType, eval) in the slot
// key hashes to. Replacement policy: an empty slot is always taken; a
// slot holding a different key is overwritten only if it is from an
// older generation than currentAge, or from the same generation but
// searched to a shallower depth; a slot already holding key is always
// refreshed, preserving move/eval the caller didn't supply.
func (tt *TtTable) Put(key Key, move Move, depth int8, value Value, valueType ValueType, eval Value, pv bool) {
	if tt.maxNumberOfEntries == 0 {
		return
	}

	e := &tt.data[tt.hash(key)]
	tt.Stats.numberOfPuts++

	switch {
	case e.IsEmpty():
		tt.numberOfEntries++

	case e.Key() != key:
		tt.Stats.numberOfCollisions++
		stale := e.Age() != tt.currentAge
		shallower := !stale && depth > e.Depth()
		if !stale && !shallower {
			return
		}
		tt.Stats.numberOfOverwrites++

	default: // e.Key() == key
		tt.Stats.numberOfUpdates++
		if move == MoveNone {
			move = e.Move()
		}
		if eval == ValueNA {
			eval = e.Eval()
		}
	}

	e.set(key, move, depth, value, valueType, eval, tt.currentAge, pv)
}

// Clear clears all entries of the tt and resets the generation
// counter. Must not be called while a search thread is probing or
// storing.
func (tt *TtTable) Clear() {
	tt.data = make([]TtEntry, tt.maxNumberOfEntries)
	tt.numberOfEntries = 0
	tt.currentAge = 0
	tt.Stats = TtStats{}
}

// Hashfull reports occupancy in per-mille as per UCI, counting only
// entries from the current generation among the table's first 1000
// slots - entries left from a previous search that have not yet been
// overwritten do not count as "full".
func (tt *TtTable) Hashfull() int {
	sampleSize := uint64(1000)
	if tt.maxNumberOfEntries < sampleSize {
		sampleSize = tt.maxNumberOfEntries
	}
	if sampleSize == 0 {
		return 0
	}
	var used uint64
	for i := uint64(0); i < sampleSize; i++ {
		e := &tt.data[i]
		if !e.IsEmpty() && e.Age() == tt.currentAge {
			used++
		}
	}
	return int(1000 * used / sampleSize)
}

// String returns a string representation of this TtTable instance.
func (tt *TtTable) String() string {
	return out.Sprintf("TT: size %d MB max entries %d of size %d Bytes entries %d (%d%%) puts %d "+
		"updates %d collisions %d overwrites %d probes %d hits %d (%d%%) misses %d (%d%%)",
		tt.sizeInByte/MB, tt.maxNumberOfEntries, unsafe.Sizeof(TtEntry{}), tt.numberOfEntries, tt.Hashfull()/10,
		tt.Stats.numberOfPuts, tt.Stats.numberOfUpdates, tt.Stats.numberOfCollisions, tt.Stats.numberOfOverwrites, tt.Stats.numberOfProbes,
		tt.Stats.numberOfHits, (tt.Stats.numberOfHits*100)/(1+tt.Stats.numberOfProbes),
		tt.Stats.numberOfMisses, (tt.Stats.numberOfMisses*100)/(1+tt.Stats.numberOfProbes))
}

// Len returns the number of non-empty entries in the tt.
func (tt *TtTable) Len() uint64 {
	return tt.numberOfEntries
}

// AgeEntries forces every occupied slot still tagged with a stale
// generation to the current one. Not part of the normal Put/NewSearch
// flow (NewSearch already makes old entries replaceable) but useful to
// pin a warmed-up table's entries before a benchmark run.
func (tt *TtTable) AgeEntries() {
	startTime := time.Now()
	if tt.numberOfEntries > 0 {
		numberOfGoroutines := uint64(32)
		var wg sync.WaitGroup
		wg.Add(int(numberOfGoroutines))
		slice := tt.maxNumberOfEntries / numberOfGoroutines
		for i := uint64(0); i < numberOfGoroutines; i++ {
			go func(i uint64) {
				defer wg.Done()
				start := i * slice
				end := start + slice
				if i == numberOfGoroutines-1 {
					end = tt.maxNumberOfEntries
				}
				for n := start; n < end; n++ {
					if !tt.data[n].IsEmpty() {
						tt.data[n].vmeta = packVmeta(tt.data[n].Depth(), tt.data[n].Vtype(), tt.currentAge, tt.data[n].IsPv())
					}
				}
			}(i)
		}
		wg.Wait()
	}
	elapsed := time.Since(startTime)
	tt.log.Debug(out.Sprintf("Aged %d entries of %d in %d ms\n", tt.numberOfEntries, len(tt.data), elapsed.Milliseconds()))
}
