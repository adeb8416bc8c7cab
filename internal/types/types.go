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

// Package types contains the user defined data types shared by every
// other package of the engine: squares, pieces, moves, bitboards and
// the positional value type. Many of these would be perfect enum
// candidates but Go has no enums, so they are small integer types
// with a block of named constants instead.
package types

const (
	// SqLength number of squares on a board.
	SqLength int = 64

	// MaxDepth max search depth the ply stack and killer/history tables are sized for.
	MaxDepth = 128

	// MaxMoves max number of moves for a game (used to size repetition history).
	MaxMoves = 512

	// KB = 1_024 bytes.
	KB uint64 = 1024

	// MB = KB * KB.
	MB uint64 = KB * KB

	// GB = KB * MB.
	GB uint64 = KB * MB

	// GamePhaseMax is the maximum game phase value. Game phase is derived
	// from the number of officers left on the board and is used to blend
	// middle game and end game evaluation terms.
	GamePhaseMax = 24
)
