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

// Package config holds the configuration of one engine instance.
//
// Earlier revisions of this engine kept configuration in a single
// package level variable ("Settings") shared by every goroutine and
// every test. That made it impossible to run two engines (e.g. two
// search instances in the same test binary, or self-play) with
// different settings side by side. Config is now an explicit value
// that callers create with New() or Load() and pass down into
// search.NewSearch, evaluator.NewEvaluator and friends - there is no
// package level mutable state left in this package.
package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"
)

// LogLevels maps the string representation of a log level (as used in
// config files and command line flags) to the numeric level accepted
// by github.com/op/go-logging.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

// LogConfig controls the verbosity of the different log channels the
// engine writes to.
type LogConfig struct {
	LogLvl       string
	SearchLogLvl string
	TestLogLvl   string
}

// Config bundles every tunable of one engine instance. A Search keeps
// the pointer it is handed, so changes to the Config's fields (as the
// uci "setoption" handlers make them) are seen by that Search.
type Config struct {
	Log    LogConfig
	Search SearchConfig
	Eval   EvalConfig
}

// New returns a Config populated with the engine's built in defaults.
func New() *Config {
	c := &Config{}
	c.Log = LogConfig{
		LogLvl:       "info",
		SearchLogLvl: "info",
		TestLogLvl:   "info",
	}
	c.Search = defaultSearchConfig()
	c.Eval = defaultEvalConfig()
	return c
}

// Load starts from New() and overlays any values found in the toml
// file at path. A missing or unparsable file returns the defaults
// together with a non-nil error describing the problem, so the caller
// can log it and carry on, matching how the command line entry point
// historically treated a missing config.toml as a soft failure.
func Load(path string) (*Config, error) {
	c := New()
	if path == "" {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, c); err != nil {
		return c, fmt.Errorf("config: could not read %s, using defaults: %w", path, err)
	}
	return c, nil
}

// String renders the search and evaluation configuration using
// reflection, one line per field - handy for a UCI "debug" dump or a
// log entry at engine start up.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Search Config:\n")
	dumpStruct(&b, &c.Search)
	b.WriteString("\nEvaluation Config:\n")
	dumpStruct(&b, &c.Eval)
	return b.String()
}

func dumpStruct(b *strings.Builder, v interface{}) {
	s := reflect.ValueOf(v).Elem()
	t := s.Type()
	for i := 0; i < s.NumField(); i++ {
		f := s.Field(i)
		fmt.Fprintf(b, "%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface())
	}
}
