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

// Package evaluator contains structures and functions to calculate
// the value of a chess position to be used in a chess engine search.
//
// Unlike earlier revisions this evaluator does not read a package
// level config and does not carry pawn-structure-cache or
// mobility/king-safety terms - it is deliberately a small material +
// piece-square-table + game-phase-interpolation function driven
// entirely by an injected config.EvalConfig, so the search core can
// treat it as a black box and a test can flip a single knob (tempo,
// bishop pair) without touching global state.
package evaluator

import (
	"strings"

	"github.com/op/go-logging"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/corvidchess/corvid/internal/config"
	myLogging "github.com/corvidchess/corvid/internal/logging"
	"github.com/corvidchess/corvid/internal/position"
	. "github.com/corvidchess/corvid/internal/types"
)

var out = message.NewPrinter(language.German)

// Evaluator evaluates chess positions using material, piece-square
// tables and a bishop pair bonus, interpolated between mid game and
// end game by the position's game phase.
//  Create a new instance with NewEvaluator()
type Evaluator struct {
	log *logging.Logger
	cfg config.EvalConfig

	position *position.Position
	score    Score
}

// NewEvaluator creates a new instance of an Evaluator using cfg for
// every tunable weight.
func NewEvaluator(cfg config.EvalConfig, levels map[string]int, logLevel string) *Evaluator {
	return &Evaluator{
		log: myLogging.GetLog(logLevel, levels),
		cfg: cfg,
	}
}

// Evaluate calculates a value for a chess position from the view of
// the next player to move.
func (e *Evaluator) Evaluate(p *position.Position) Value {
	e.position = p
	e.score.MidGameValue = 0
	e.score.EndGameValue = 0

	// insufficient material is always a draw regardless of the rest
	// of the evaluation
	if p.HasInsufficientMaterial() {
		return ValueDraw
	}

	// Material - always evaluated, this is the evaluator's floor
	e.score.MidGameValue = int(p.Material(White) - p.Material(Black))
	e.score.EndGameValue = e.score.MidGameValue

	// Piece square tables
	if e.cfg.UsePieceSquareTables {
		e.score.MidGameValue += int(p.PsqMidValue(White) - p.PsqMidValue(Black))
		e.score.EndGameValue += int(p.PsqEndValue(White) - p.PsqEndValue(Black))
	}

	// Bishop pair bonus - a side holding both bishops coordinates
	// better on open boards than a side down to one or none
	if e.cfg.UseBishopPairBonus {
		if p.PiecesBb(White, Bishop).PopCount() >= 2 {
			e.score.MidGameValue += int(e.cfg.BishopPairBonus)
			e.score.EndGameValue += int(e.cfg.BishopPairBonus)
		}
		if p.PiecesBb(Black, Bishop).PopCount() >= 2 {
			e.score.MidGameValue -= int(e.cfg.BishopPairBonus)
			e.score.EndGameValue -= int(e.cfg.BishopPairBonus)
		}
	}

	// Tempo bonus for the side to move - smooths the evaluation swing
	// between plies which in turn makes aspiration re-searches rarer
	e.score.MidGameValue += int(e.cfg.Tempo)

	var value Value
	if e.cfg.UseGamePhaseInterpolation {
		value = e.score.ValueFromScore(p.GamePhaseFactor())
	} else {
		value = Value(e.score.MidGameValue)
	}

	// score was accumulated from White's perspective - flip for Black
	return value * Value(p.NextPlayer().Direction())
}

// Report prints a human readable breakdown of the last evaluation,
// useful from a UCI "debug" command or a test failure message.
func (e *Evaluator) Report(p *position.Position) string {
	var report strings.Builder
	value := e.Evaluate(p)
	report.WriteString("Evaluation Report\n")
	report.WriteString("=============================================\n")
	report.WriteString(out.Sprintf("Position   : %s\n", p.StringFen()))
	report.WriteString(out.Sprintf("GamePhase  : %f\n", p.GamePhaseFactor()))
	report.WriteString(out.Sprintf("Score      : %s\n", e.score.String()))
	report.WriteString(out.Sprintf("Eval value : %d (from the view of %s)\n", value, p.NextPlayer().String()))
	return report.String()
}
