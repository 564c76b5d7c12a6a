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
package number

import (
	"testing"

	"github.com/consensys/go-unipoly/pkg/util/assert"
)

func TestRat_Arithmetic(t *testing.T) {
	half, third := NewRat(1, 2), NewRat(1, 3)
	//
	assert.Equal(t, NewRat(5, 6), half.Add(third))
	assert.Equal(t, NewRat(1, 6), half.Mul(third))
	assert.Equal(t, NewRat(1, 6), Sub(half, third))
	assert.Equal(t, NewRat(-1, 2), half.Neg())
	assert.Equal(t, 1, half.Cmp(third))
	assert.Equal(t, -1, third.Cmp(half))
}

func TestRat_ZeroValue(t *testing.T) {
	var zero Rat
	//
	assert.True(t, zero.IsZero())
	assert.Equal(t, 0, zero.Sign())
	assert.Equal(t, "0", zero.String())
	assert.Equal(t, NewRat(2, 3), zero.Add(NewRat(2, 3)))
	assert.True(t, zero.Mul(NewRat(2, 3)).IsZero())
}

func TestRat_Immutable(t *testing.T) {
	x := NewRat(1, 2)
	y := x.Add(x)
	//
	assert.Equal(t, "1/2", x.String())
	assert.Equal(t, "1", y.String())
	assert.True(t, y.IsOne())
}

func TestRat_Sign(t *testing.T) {
	assert.Equal(t, -1, NewRat(-3, 4).Sign())
	assert.Equal(t, NewRat(3, 4), NewRat(-3, 4).Abs())
	assert.Equal(t, NewRat(3, 4), NewRat(3, 4).Abs())
}

func TestRat_Parse(t *testing.T) {
	for _, s := range []string{"3/4", "0.75", "6/8"} {
		x, err := ParseRat(s)
		//
		assert.Equal(t, nil, err)
		assert.Equal(t, NewRat(3, 4), x, "parsing %s", s)
	}
	//
	if _, err := ParseRat("three"); err == nil {
		t.Errorf("expected parse error")
	}
}
