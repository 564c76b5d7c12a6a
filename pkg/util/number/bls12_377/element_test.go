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
package bls12_377

import (
	"math/big"
	"math/rand/v2"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	"github.com/consensys/go-unipoly/pkg/util/assert"
	"github.com/consensys/go-unipoly/pkg/util/number"
)

func init() {
	// make sure the interface is adhered to.
	_ = number.Number[Element](Element{})
}

func TestElement_ZeroValue(t *testing.T) {
	var zero Element
	//
	assert.True(t, zero.IsZero())
	assert.Equal(t, 0, zero.Sign())
	assert.Equal(t, "0", zero.String())
	assert.Equal(t, New(5), zero.Add(New(5)))
}

func TestElement_Arithmetic(t *testing.T) {
	for range 1000 {
		a := rand.Int64N(1<<20) - (1 << 19)
		b := rand.Int64N(1<<20) - (1 << 19)
		x, y := New(a), New(b)
		//
		assert.Equal(t, New(a+b), x.Add(y), "%d+%d", a, b)
		assert.Equal(t, New(a*b), x.Mul(y), "%d*%d", a, b)
		assert.Equal(t, New(-a), x.Neg(), "-%d", a)
	}
}

func TestElement_Sign(t *testing.T) {
	for _, v := range []int64{-100, -1, 1, 7, 1 << 40} {
		x := New(v)
		want := 1
		//
		if v < 0 {
			want = -1
		}
		//
		assert.Equal(t, want, x.Sign(), "sign of %d", v)
		assert.Equal(t, big.NewInt(v).String(), x.String())
	}
	// Check the boundary of the upper half
	var half fr.Element
	//
	half.SetBigInt(new(big.Int).Rsh(fr.Modulus(), 1))
	assert.Equal(t, 1, Element{half}.Sign())
	//
	half.Add(&half, new(fr.Element).SetOne())
	assert.Equal(t, -1, Element{half}.Sign())
}

func TestElement_Abs(t *testing.T) {
	assert.Equal(t, New(3), New(-3).Abs())
	assert.Equal(t, New(3), New(3).Abs())
	assert.True(t, New(-1).Abs().IsOne())
}

func TestElement_Parse(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -42} {
		x, err := Parse(big.NewInt(v).String())
		//
		assert.Equal(t, nil, err)
		assert.Equal(t, New(v), x)
	}
	//
	if _, err := Parse("forty-two"); err == nil {
		t.Errorf("expected parse error")
	}
}
