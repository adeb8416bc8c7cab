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

// Package version holds the engine's build identity. major/minor/patch
// are bumped by hand; releaseType and gitHash are meant to be
// overridden at build time with -ldflags, e.g.
//  go build -ldflags "-X .../internal/version.gitHash=$(git rev-parse --short HEAD)"
package version

import "fmt"

const (
	major = 0
	minor = 5
	patch = 0
)

var (
	releaseType = "dev"
	gitHash     = "unknown"
)

// Version returns a human readable identity string such as
// "0.5.0-dev (abc1234)".
func Version() string {
	return fmt.Sprintf("%d.%d.%d-%s (%s)", major, minor, patch, releaseType, gitHash)
}
