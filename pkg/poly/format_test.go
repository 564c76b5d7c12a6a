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
package poly

import (
	"fmt"
	"math"
	"testing"

	"github.com/consensys/go-unipoly/pkg/util/assert"
	"github.com/consensys/go-unipoly/pkg/util/number"
	"github.com/consensys/go-unipoly/pkg/util/number/bls12_377"
)

func Test_String_01(t *testing.T) {
	// x^1 is deliberately not simplified to x
	checkString(t, ints(0, -1, 1), " - x^1 + x^2")
}

func Test_String_02(t *testing.T) {
	checkString(t, ints(1, 2, 3), "1 + 2x^1 + 3x^2")
}

func Test_String_03(t *testing.T) {
	checkString(t, ints(-3, 0, -2), "-3 - 2x^2")
}

func Test_String_04(t *testing.T) {
	// Zero renders as the empty string
	checkString(t, ints(0), "")
}

func Test_String_05(t *testing.T) {
	checkString(t, ints(7), "7")
}

func Test_String_06(t *testing.T) {
	checkString(t, ints(0, 0, 0, -1), " - x^3")
}

func Test_String_07(t *testing.T) {
	checkString(t, ints(1, 1), "1 + x^1")
}

func Test_String_Rat(t *testing.T) {
	p := Must(number.NewRat(1, 2), number.NewRat(-3, 4), number.NewRat(-1, 1))
	//
	assert.Equal(t, "1/2 - 3/4x^1 - x^2", p.String())
}

func Test_String_Float(t *testing.T) {
	p := Must[number.Float](0.5, -1, 2.25)
	//
	assert.Equal(t, "0.5 - x^1 + 2.25x^2", p.String())
}

func Test_String_Bls12_377(t *testing.T) {
	p := Must(bls12_377.New(-2), bls12_377.New(-1), bls12_377.New(3))
	//
	assert.Equal(t, "-2 - x^1 + 3x^2", p.String())
}

func Test_String_MinInt64(t *testing.T) {
	checkString(t, Must[Int](0, math.MinInt64), " - 9223372036854775808x^1")
	checkString(t, Must[Int](math.MinInt64), "-9223372036854775808")
}

func Test_String_NaN(t *testing.T) {
	nan := number.Float(math.NaN())
	//
	assert.Equal(t, "NaN + NaNx^1", Must(nan, nan).String())
	assert.Equal(t, "1 + NaNx^2", Must[number.Float](1, 0, nan).String())
}

func Test_GoString_01(t *testing.T) {
	assert.Equal(t, "Polynomial(1, -2, 3)", ints(1, -2, 3, 0).GoString())
	assert.Equal(t, "Polynomial(0)", ints(0, 0).GoString())
	assert.Equal(t, "Polynomial(1, 2)", fmt.Sprintf("%#v", ints(1, 2)))
}

func checkString(t *testing.T, p Polynomial[Int], expected string) {
	t.Helper()
	assert.Equal(t, expected, p.String())
	assert.Equal(t, expected, fmt.Sprint(p))
}
