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

// SearchConfig is the configuration of one search instance: every
// pruning, reduction and ordering heuristic can be switched off
// independently which makes it possible to isolate a heuristic's
// effect in a test or a tuning run.
type SearchConfig struct {
	// Ponder
	UsePonder bool

	// Quiescence search
	UseQuiescence bool
	UseQSStandpat bool

	// Move ordering
	UsePVS         bool
	UseKiller      bool
	UseHistory     bool
	UseCounterMove bool
	UseIID         bool
	IIDMinDepth    int

	// Transposition table
	UseTT      bool
	TTSizeMb   int
	UseTTMove  bool
	UseTTValue bool
	UseQSTT    bool

	// pre move generation prunings
	UseMateDistancePruning bool
	UseStaticNullMove      bool
	UseNullMove            bool
	NmpMinDepth            int
	NmpReduction           int
	UseRazoring            bool
	RazorMargin            int

	// extensions
	UseCheckExtension bool

	// prunings/reductions applied while iterating moves
	UseFutilityPruning bool
	UseLmp             bool
	UseLmr             bool
	LmrMinDepth        int
	LmrMinMoveNumber   int

	// history tuning
	HistoryMax int
}

func defaultSearchConfig() SearchConfig {
	return SearchConfig{
		UsePonder: true,

		UseQuiescence: true,
		UseQSStandpat: true,

		UsePVS:         true,
		UseKiller:      true,
		UseHistory:     true,
		UseCounterMove: true,
		UseIID:         true,
		IIDMinDepth:    4,

		UseTT:      true,
		TTSizeMb:   128,
		UseTTMove:  true,
		UseTTValue: true,
		UseQSTT:    true,

		UseMateDistancePruning: true,
		UseStaticNullMove:      true,
		UseNullMove:            true,
		NmpMinDepth:            3,
		NmpReduction:           2,
		UseRazoring:            true,
		RazorMargin:            125,

		UseCheckExtension: true,

		UseFutilityPruning: true,
		UseLmp:             true,
		UseLmr:             true,
		LmrMinDepth:        3,
		LmrMinMoveNumber:   3,

		HistoryMax: 8192,
	}
}
