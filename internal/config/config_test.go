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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaults(t *testing.T) {
	c := New()
	assert.True(t, c.Search.UseTT)
	assert.Equal(t, 128, c.Search.TTSizeMb)
	assert.True(t, c.Search.UseLmr)
	assert.Equal(t, 8192, c.Search.HistoryMax)
	assert.True(t, c.Eval.UsePieceSquareTables)
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	c, err := Load("./does-not-exist.toml")
	assert.Error(t, err)
	assert.Equal(t, New().Search, c.Search)
}

func TestTwoConfigsAreIndependent(t *testing.T) {
	a := New()
	b := New()
	a.Search.UseNullMove = false
	assert.True(t, b.Search.UseNullMove, "mutating one Config must not affect another")
}

func TestString(t *testing.T) {
	c := New()
	s := c.String()
	assert.Contains(t, s, "Search Config")
	assert.Contains(t, s, "Evaluation Config")
}
