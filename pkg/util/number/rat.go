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
	"fmt"
	"math/big"
)

var ratOne = big.NewRat(1, 1)

// Rat is an exact rational number.  An uninitialised Rat represents 0.
type Rat struct {
	val *big.Rat
}

// NewRat constructs the rational a/b.  This panics if b is zero.
func NewRat(a, b int64) Rat {
	if b == 0 {
		panic("zero denominator")
	}
	//
	return Rat{big.NewRat(a, b)}
}

// RatFromBig constructs a rational from a copy of the given big.Rat.
func RatFromBig(val *big.Rat) Rat {
	return Rat{new(big.Rat).Set(val)}
}

// ParseRat parses a rational given either as a fraction (e.g. "3/4"), an
// integer or a decimal (e.g. "1.25").
func ParseRat(s string) (Rat, error) {
	val, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rat{}, fmt.Errorf("invalid rational \"%s\"", s)
	}
	//
	return Rat{val}, nil
}

func (x Rat) get() *big.Rat {
	if x.val == nil {
		return new(big.Rat)
	}
	//
	return x.val
}

// Big returns a copy of the underlying big.Rat.
func (x Rat) Big() *big.Rat {
	return new(big.Rat).Set(x.get())
}

// Add x + y
func (x Rat) Add(y Rat) Rat {
	return Rat{new(big.Rat).Add(x.get(), y.get())}
}

// Mul x * y
func (x Rat) Mul(y Rat) Rat {
	return Rat{new(big.Rat).Mul(x.get(), y.get())}
}

// Neg -x
func (x Rat) Neg() Rat {
	return Rat{new(big.Rat).Neg(x.get())}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Rat) Cmp(y Rat) int {
	return x.get().Cmp(y.get())
}

// Equal reports whether x and y denote the same rational.
func (x Rat) Equal(y Rat) bool {
	return x.Cmp(y) == 0
}

// IsZero implementation for the Number interface
func (x Rat) IsZero() bool {
	return x.val == nil || x.val.Sign() == 0
}

// IsOne implementation for the Number interface
func (x Rat) IsOne() bool {
	return x.get().Cmp(ratOne) == 0
}

// Sign implementation for the Number interface
func (x Rat) Sign() int {
	return x.get().Sign()
}

// Abs implementation for the Number interface
func (x Rat) Abs() Rat {
	return Rat{new(big.Rat).Abs(x.get())}
}

// SetInt64 implementation for the Number interface
func (x Rat) SetInt64(val int64) Rat {
	return Rat{new(big.Rat).SetInt64(val)}
}

// String renders integers without a denominator and everything else as a
// fraction "a/b".
func (x Rat) String() string {
	val := x.get()
	//
	if val.IsInt() {
		return val.Num().String()
	}
	//
	return val.RatString()
}
