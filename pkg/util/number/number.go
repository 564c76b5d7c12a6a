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
)

// Number is a coefficient of a polynomial.  Implementations are immutable
// values: every operation returns a fresh value and leaves its receiver
// untouched.  The zero value of any implementation must represent 0.
type Number[T any] interface {
	fmt.Stringer
	// Add x+y
	Add(y T) T
	// Mul x*y
	Mul(y T) T
	// Neg -x
	Neg() T
	// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
	Cmp(y T) int
	// Check whether this value is zero (or not).
	IsZero() bool
	// Check whether this value is one (or not).
	IsOne() bool
	// Sign returns -1, 0 or 1 depending on whether x is negative, zero or
	// positive.  Types without a natural order pick a signed representative.
	Sign() int
	// Abs returns x when Sign() >= 0, and -x otherwise.
	Abs() T
	// SetInt64 returns a value representing val.  The receiver is not
	// modified.
	SetInt64(val int64) T
}

// Zero constructs a number representing 0
func Zero[T Number[T]]() T {
	var element T
	//
	return element
}

// One constructs a number representing 1
func One[T Number[T]]() T {
	var element T
	//
	return element.SetInt64(1)
}

// Int64 constructs a number from a given int64
func Int64[T Number[T]](val int64) T {
	var element T
	//
	return element.SetInt64(val)
}

// Sub computes x - y using negation, since Number does not require a
// dedicated subtraction.
func Sub[T Number[T]](x, y T) T {
	return x.Add(y.Neg())
}

// Pow takes a given value to the power n using square-and-multiply.
func Pow[T Number[T]](val T, n uint64) T {
	result := One[T]()
	//
	for {
		if n&1 == 1 {
			result = result.Mul(val)
		}
		// div 2
		n >>= 1
		//
		if n == 0 {
			break
		}
		//
		val = val.Mul(val)
	}
	//
	return result
}
