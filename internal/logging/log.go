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

// Package logging is a thin helper around "github.com/op/go-logging"
// that wires up the backends and formatters shared by the whole
// engine. Unlike earlier revisions it never reads a package level
// config - every Get*Log function takes the level it should run at,
// which the caller reads from its own config.Config.
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"
)

var standardFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)

var uciFormat = logging.MustStringFormatter(`%{time:15:04:05.000} UCI %{message}`)

func levelFor(levelName string, levels map[string]int) logging.Level {
	n, ok := levels[levelName]
	if !ok || n < 0 {
		return logging.CRITICAL
	}
	return logging.Level(n)
}

// GetLog returns a Logger for general engine output, backed by
// os.Stdout, running at the given level name ("critical".."debug").
func GetLog(levelName string, levels map[string]int) *logging.Logger {
	l := logging.MustGetLogger("standard")
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(levelFor(levelName, levels), "")
	l.SetBackend(leveled)
	return l
}

// GetSearchLog returns a Logger dedicated to search tracing, backed by
// os.Stdout, running at the given level name.
func GetSearchLog(levelName string, levels map[string]int) *logging.Logger {
	l := logging.MustGetLogger("search")
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(levelFor(levelName, levels), "")
	l.SetBackend(leveled)
	return l
}

// GetTestLog returns a Logger meant for use from _test.go files.
func GetTestLog(levelName string, levels map[string]int) *logging.Logger {
	l := logging.MustGetLogger("test")
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, standardFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(levelFor(levelName, levels), "")
	l.SetBackend(leveled)
	return l
}

// GetUciLog returns a Logger that records every line of the UCI
// protocol exchanged with the GUI, to os.Stdout and, if logFilePath is
// non empty and can be opened, additionally to that file.
func GetUciLog(logFilePath string) *logging.Logger {
	l := logging.MustGetLogger("UCI ")

	stdoutBackend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	stdoutFormatted := logging.NewBackendFormatter(stdoutBackend, uciFormat)
	stdoutLeveled := logging.AddModuleLevel(stdoutFormatted)
	stdoutLeveled.SetLevel(logging.DEBUG, "")

	if logFilePath == "" {
		l.SetBackend(stdoutLeveled)
		return l
	}

	file, err := os.OpenFile(logFilePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println("uci logfile could not be created, logging to stdout only:", err)
		l.SetBackend(stdoutLeveled)
		return l
	}
	fileBackend := logging.NewLogBackend(file, "", log.Lmsgprefix)
	fileFormatted := logging.NewBackendFormatter(fileBackend, uciFormat)
	fileLeveled := logging.AddModuleLevel(fileFormatted)
	fileLeveled.SetLevel(logging.DEBUG, "")

	l.SetBackend(logging.SetBackend(stdoutLeveled, fileLeveled))
	return l
}
