/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package uci

import (
	"strconv"
	"strings"

	"github.com/corvidchess/corvid/internal/config"
)

// init defines all available uci options and stores them into the
// uciOptions map. Default/Current values shown to the UCI ui are
// snapshotted from config.New() - the live value a running engine
// actually uses lives in each UciHandler's own cfg and is only
// touched by the HandlerFunc below when "setoption" changes it.
func init() {
	d := config.New()
	uciOptions = map[string]*uciOption{
		"Print Config": {NameID: "Print Config", HandlerFunc: printConfig, OptionType: Button},
		"Clear Hash":   {NameID: "Clear Hash", HandlerFunc: clearCache, OptionType: Button},
		"Use_Hash":     {NameID: "Use_Hash", HandlerFunc: useCache, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseTT), CurrentValue: strconv.FormatBool(d.Search.UseTT)},
		"Hash":         {NameID: "Hash", HandlerFunc: cacheSize, OptionType: Spin, DefaultValue: strconv.Itoa(d.Search.TTSizeMb), CurrentValue: strconv.Itoa(d.Search.TTSizeMb), MinValue: "0", MaxValue: "65000"},

		"Ponder": {NameID: "Ponder", HandlerFunc: usePonder, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UsePonder), CurrentValue: strconv.FormatBool(d.Search.UsePonder)},

		"Quiescence":     {NameID: "Quiescence", HandlerFunc: useQuiescence, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseQuiescence), CurrentValue: strconv.FormatBool(d.Search.UseQuiescence)},
		"Use_QSStandpat": {NameID: "Use_QSStandpat", HandlerFunc: useQSStandpat, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseQSStandpat), CurrentValue: strconv.FormatBool(d.Search.UseQSStandpat)},
		"Use_QHash":      {NameID: "Use_QHash", HandlerFunc: useQSHash, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseQSTT), CurrentValue: strconv.FormatBool(d.Search.UseQSTT)},

		"Use_PVS":         {NameID: "Use_PVS", HandlerFunc: usePvs, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UsePVS), CurrentValue: strconv.FormatBool(d.Search.UsePVS)},
		"Use_IID":         {NameID: "Use_IID", HandlerFunc: useIID, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseIID), CurrentValue: strconv.FormatBool(d.Search.UseIID)},
		"Use_Killer":      {NameID: "Use_Killer", HandlerFunc: useKiller, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseKiller), CurrentValue: strconv.FormatBool(d.Search.UseKiller)},
		"Use_History":     {NameID: "Use_History", HandlerFunc: useHistory, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseHistory), CurrentValue: strconv.FormatBool(d.Search.UseHistory)},
		"Use_CounterMove": {NameID: "Use_CounterMove", HandlerFunc: useCM, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseCounterMove), CurrentValue: strconv.FormatBool(d.Search.UseCounterMove)},
		"Use_TTMove":      {NameID: "Use_TTMove", HandlerFunc: useTTMove, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseTTMove), CurrentValue: strconv.FormatBool(d.Search.UseTTMove)},
		"Use_TTValue":     {NameID: "Use_TTValue", HandlerFunc: useTTValue, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseTTValue), CurrentValue: strconv.FormatBool(d.Search.UseTTValue)},

		"Use_Mdp":            {NameID: "Use_Mdp", HandlerFunc: useMdp, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseMateDistancePruning), CurrentValue: strconv.FormatBool(d.Search.UseMateDistancePruning)},
		"Use_StaticNullMove": {NameID: "Use_StaticNullMove", HandlerFunc: useStaticNullMove, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseStaticNullMove), CurrentValue: strconv.FormatBool(d.Search.UseStaticNullMove)},
		"Use_NullMove":       {NameID: "Use_NullMove", HandlerFunc: useNullMove, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseNullMove), CurrentValue: strconv.FormatBool(d.Search.UseNullMove)},
		"Use_Razor":          {NameID: "Use_Razor", HandlerFunc: useRazor, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseRazoring), CurrentValue: strconv.FormatBool(d.Search.UseRazoring)},
		"Use_Fp":             {NameID: "Use_Fp", HandlerFunc: useFp, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseFutilityPruning), CurrentValue: strconv.FormatBool(d.Search.UseFutilityPruning)},
		"Use_Lmr":            {NameID: "Use_Lmr", HandlerFunc: useLmr, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseLmr), CurrentValue: strconv.FormatBool(d.Search.UseLmr)},
		"Use_Lmp":            {NameID: "Use_Lmp", HandlerFunc: useLmp, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseLmp), CurrentValue: strconv.FormatBool(d.Search.UseLmp)},

		"Use_CheckExt": {NameID: "Use_CheckExt", HandlerFunc: useCheckExt, OptionType: Check, DefaultValue: strconv.FormatBool(d.Search.UseCheckExtension), CurrentValue: strconv.FormatBool(d.Search.UseCheckExtension)},

		"Eval_PSQT":        {NameID: "Eval_PSQT", HandlerFunc: evalPSQT, OptionType: Check, DefaultValue: strconv.FormatBool(d.Eval.UsePieceSquareTables), CurrentValue: strconv.FormatBool(d.Eval.UsePieceSquareTables)},
		"Eval_BishopPair":  {NameID: "Eval_BishopPair", HandlerFunc: evalBishopPair, OptionType: Check, DefaultValue: strconv.FormatBool(d.Eval.UseBishopPairBonus), CurrentValue: strconv.FormatBool(d.Eval.UseBishopPairBonus)},
		"Eval_PhaseInterp": {NameID: "Eval_PhaseInterp", HandlerFunc: evalPhaseInterp, OptionType: Check, DefaultValue: strconv.FormatBool(d.Eval.UseGamePhaseInterpolation), CurrentValue: strconv.FormatBool(d.Eval.UseGamePhaseInterpolation)},
	}
	sortOrderUciOptions = []string{
		"Print Config",
		"Clear Hash",
		"Use_Hash",
		"Hash",
		"Ponder",

		"Quiescence",
		"Use_QSStandpat",
		"Use_QHash",

		"Use_IID",
		"Use_PVS",
		"Use_Killer",
		"Use_History",
		"Use_CounterMove",
		"Use_TTMove",
		"Use_TTValue",

		"Use_Mdp",
		"Use_StaticNullMove",
		"Use_NullMove",
		"Use_Razor",
		"Use_Fp",
		"Use_Lmr",
		"Use_Lmp",

		"Use_CheckExt",

		"Eval_PSQT",
		"Eval_BishopPair",
		"Eval_PhaseInterp",
	}
}

// GetOptions returns all available uci options a slice of strings
// to be send to the UCI user interface during the initialization
// phase of the UCI protocol
func (o *optionMap) GetOptions() *[]string {
	var options []string
	for _, opt := range sortOrderUciOptions {
		options = append(options, uciOptions[opt].String())
	}
	return &options
}

// String for uciOption will return a representation of the uci option as required by
// the UCI protocol during the initialization phase of the UCI protocol
func (o *uciOption) String() string {
	var os strings.Builder
	os.WriteString("option name ")
	os.WriteString(o.NameID)
	os.WriteString(" type ")
	switch o.OptionType {
	case Check:
		os.WriteString("check ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
	case Spin:
		os.WriteString("spin ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
		os.WriteString(" min ")
		os.WriteString(o.MinValue)
		os.WriteString(" max ")
		os.WriteString(o.MaxValue)
	case Combo:
		os.WriteString("combo ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
		os.WriteString(" var ")
		os.WriteString(o.VarValue)
	case Button:
		os.WriteString("button")
	case String:
		os.WriteString("string ")
		os.WriteString("default ")
		os.WriteString(o.DefaultValue)
	}

	return os.String()
}

// uciOptionType is a enum representing the different UCI Option types
type uciOptionType int

// uci option types constants
const (
	Check  uciOptionType = 0
	Spin   uciOptionType = 1
	Combo  uciOptionType = 2
	Button uciOptionType = 3
	String uciOptionType = 4
)

// optionHandler is a function type to by used as function pointer
// in each uci option defined. This is called when the uci option
// is changed by the "setoption" command
type optionHandler func(*UciHandler, *uciOption)

// uciOption defines UCI Options as described in the UCI protocol.
// Each options has a function pointer to a handler which will be
// called when the "setoption" command changes the option.
type uciOption struct {
	NameID       string
	HandlerFunc  optionHandler
	OptionType   uciOptionType
	DefaultValue string
	MinValue     string
	MaxValue     string
	VarValue     string
	CurrentValue string
}

// optionMap convenience type for a map of pointers to uci options
type optionMap map[string]*uciOption

// uciOptions stores all available uci options
var uciOptions optionMap

// to control the sort order of all options
var sortOrderUciOptions []string

// ////////////////////////////////////////////////////////////////
// HandlerFunc for uci options changes
// ////////////////////////////////////////////////////////////////

func printConfig(handler *UciHandler, option *uciOption) {
	handler.SendInfoString(handler.cfg.String())
	log.Debug(handler.cfg.String())
}

func clearCache(u *UciHandler, o *uciOption) {
	u.mySearch.ClearHash()
	log.Debug("Cleared Cache")
}

func useCache(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseTT = v
	log.Debugf("Set Use Hash to %v", u.cfg.Search.UseTT)
}

func cacheSize(u *UciHandler, o *uciOption) {
	v, _ := strconv.Atoi(o.CurrentValue)
	u.cfg.Search.TTSizeMb = v
	u.mySearch.ResizeCache()
}

func usePonder(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UsePonder = v
	log.Debugf("Set Use Ponder to %v", u.cfg.Search.UsePonder)
}

func useQuiescence(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseQuiescence = v
	log.Debugf("Set Use Quiescence to %v", u.cfg.Search.UseQuiescence)
}

func useQSStandpat(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseQSStandpat = v
	log.Debugf("Set Use Quiescence Standpat to %v", u.cfg.Search.UseQSStandpat)
}

func useQSHash(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseQSTT = v
	log.Debugf("Set Use Hash in Quiescence to %v", u.cfg.Search.UseQSTT)
}

func usePvs(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UsePVS = v
	log.Debugf("Set Use PVS to %v", u.cfg.Search.UsePVS)
}

func useMdp(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseMateDistancePruning = v
	log.Debugf("Set Use Mate Distance Pruning to %v", u.cfg.Search.UseMateDistancePruning)
}

func useKiller(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseKiller = v
	log.Debugf("Set Use Killer Moves to %v", u.cfg.Search.UseKiller)
}

func useHistory(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseHistory = v
	log.Debugf("Set Use History to %v", u.cfg.Search.UseHistory)
}

func useCM(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseCounterMove = v
	log.Debugf("Set Use Counter Moves to %v", u.cfg.Search.UseCounterMove)
}

func useTTMove(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseTTMove = v
	log.Debugf("Set Use TT Move to %v", u.cfg.Search.UseTTMove)
}

func useTTValue(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseTTValue = v
	log.Debugf("Set Use TT Value to %v", u.cfg.Search.UseTTValue)
}

func useNullMove(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseNullMove = v
	log.Debugf("Set Use Null Move Pruning to %v", u.cfg.Search.UseNullMove)
}

func useStaticNullMove(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseStaticNullMove = v
	log.Debugf("Set Use Static Null Move Pruning to %v", u.cfg.Search.UseStaticNullMove)
}

func useIID(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseIID = v
	log.Debugf("Set Use IID to %v", u.cfg.Search.UseIID)
}

func useLmr(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseLmr = v
	log.Debugf("Set use Late Move Reduction to %v", u.cfg.Search.UseLmr)
}

func useLmp(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseLmp = v
	log.Debugf("Set use Late Move Pruning to %v", u.cfg.Search.UseLmp)
}

func useRazor(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseRazoring = v
	log.Debugf("Set use Razoring to %v", u.cfg.Search.UseRazoring)
}

func useCheckExt(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseCheckExtension = v
	log.Debugf("Set use Check Extension to %v", u.cfg.Search.UseCheckExtension)
}

func useFp(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Search.UseFutilityPruning = v
	log.Debugf("Set use Futility Pruning to %v", u.cfg.Search.UseFutilityPruning)
}

func evalPSQT(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Eval.UsePieceSquareTables = v
	log.Debugf("Set use Piece Square Tables to %v", u.cfg.Eval.UsePieceSquareTables)
}

func evalBishopPair(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Eval.UseBishopPairBonus = v
	log.Debugf("Set use Bishop Pair Bonus to %v", u.cfg.Eval.UseBishopPairBonus)
}

func evalPhaseInterp(u *UciHandler, o *uciOption) {
	v, _ := strconv.ParseBool(o.CurrentValue)
	u.cfg.Eval.UseGamePhaseInterpolation = v
	log.Debugf("Set use Game Phase Interpolation to %v", u.cfg.Eval.UseGamePhaseInterpolation)
}
