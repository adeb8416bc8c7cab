// +build !debug

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

// Package assert is a helper to allow assert checks in a standardized and
// cheap manner. It is a no-op in release builds so calls can stay in the
// hot search path without cost.
package assert

// DEBUG if set to true asserts are evaluated. Controlled by the "debug" build tag.
const DEBUG = false

// Assert runs the provided test and panics with the formatted message if it
// evaluates to false. In release builds this is a null function - the Go
// compiler eliminates the call entirely since DEBUG is a const false.
// Callers that compute expensive arguments should still guard with
//  if assert.DEBUG { assert.Assert(...) }
// to avoid paying for argument evaluation in release builds.
func Assert(test bool, msg string, a ...interface{}) {}
