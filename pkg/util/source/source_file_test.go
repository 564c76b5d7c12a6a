// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import (
	"testing"

	"github.com/consensys/go-unipoly/pkg/util/assert"
)

func Test_EnclosingLine_01(t *testing.T) {
	checkEnclosingLine(t, "(+ 1 x)", 5, 1, "(+ 1 x)")
}

func Test_EnclosingLine_02(t *testing.T) {
	checkEnclosingLine(t, "(+ 1\n   x\n 2)", 8, 2, "   x")
}

func Test_EnclosingLine_03(t *testing.T) {
	checkEnclosingLine(t, "(+ 1\n 2)", 11, 2, " 2)")
}

func Test_SyntaxError_01(t *testing.T) {
	srcfile := NewSourceFile("test", "(^ x y)")
	err := srcfile.SyntaxError(NewSpan(5, 6), "expected integer")
	span := err.Span()
	//
	assert.Equal(t, "test", err.SourceFile().Filename())
	assert.Equal(t, "expected integer", err.Message())
	assert.Equal(t, "5:6:expected integer", err.Error())
	assert.Equal(t, 1, span.Length())
}

func Test_SourceMap_01(t *testing.T) {
	var (
		a, b    = new(int), new(int)
		srcfile = NewSourceFile("test", "a b")
		srcmap  = NewSourceMap[*int](srcfile)
	)
	//
	srcmap.Put(a, NewSpan(0, 1))
	//
	assert.True(t, srcmap.Has(a))
	assert.True(t, !srcmap.Has(b))
	assert.Equal(t, NewSpan(0, 1), srcmap.Get(a))
	assert.Equal(t, 1, len(srcmap.SyntaxErrors(a, "oops")))
}

func Test_SourceMap_02(t *testing.T) {
	var (
		a      = new(int)
		srcmap = NewSourceMap[*int](NewSourceFile("test", "a"))
	)
	//
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic on duplicate key")
		}
	}()
	//
	srcmap.Put(a, NewSpan(0, 1))
	srcmap.Put(a, NewSpan(0, 1))
}

func checkEnclosingLine(t *testing.T, text string, index int, number int, expected string) {
	t.Helper()
	//
	srcfile := NewSourceFile("test", text)
	line := srcfile.FindFirstEnclosingLine(NewSpan(index, index))
	//
	assert.Equal(t, number, line.Number())
	assert.Equal(t, expected, line.String())
}
