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

package config

// EvalConfig configures the static evaluation function used as the
// leaf/quiescence value of the search. The evaluator is intentionally
// a simple material + piece-square-table function - the search core
// treats it as a black box and only needs its tuning knobs exposed
// here so a test can, for instance, disable the tempo bonus.
type EvalConfig struct {
	Tempo int16

	UsePieceSquareTables bool
	UseBishopPairBonus   bool
	BishopPairBonus      int16

	UseGamePhaseInterpolation bool
}

func defaultEvalConfig() EvalConfig {
	return EvalConfig{
		Tempo: 10,

		UsePieceSquareTables: true,
		UseBishopPairBonus:   true,
		BishopPairBonus:      25,

		UseGamePhaseInterpolation: true,
	}
}
