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
	"slices"

	"github.com/consensys/go-unipoly/pkg/util/number"
)

// Polynomial represents c0 + c1*x + ... + cn*x^n over some coefficient type T.
// Polynomials are immutable values: every operation constructs a fresh
// polynomial which does not share its coefficients with any other.
//
// Coefficients are always held in canonical form, meaning there are no
// trailing zero coefficients except for the zero polynomial which is held as
// the single coefficient 0.  Hence, the degree of the zero polynomial is 0.
// Observe that an uninitialised Polynomial variable corresponds with zero.
type Polynomial[T number.Number[T]] struct {
	coeffs []T
}

// New constructs a polynomial from a given (non-empty) sequence of
// coefficients, where the ith coefficient is that of x^i.  Trailing zero
// coefficients are removed.  The given slice is copied.
func New[T number.Number[T]](coeffs ...T) (Polynomial[T], error) {
	if len(coeffs) == 0 {
		return Polynomial[T]{}, fmt.Errorf("%w: empty coefficient sequence", ErrInvalidArgument)
	}
	//
	return canonical(slices.Clone(coeffs)), nil
}

// Must is like New, except that it panics if the coefficient sequence is
// empty.
func Must[T number.Number[T]](coeffs ...T) Polynomial[T] {
	p, err := New(coeffs...)
	if err != nil {
		panic(err)
	}
	//
	return p
}

// Zero constructs the zero polynomial (0).
func Zero[T number.Number[T]]() Polynomial[T] {
	return Polynomial[T]{[]T{number.Zero[T]()}}
}

// One constructs the multiplicative identity (1).
func One[T number.Number[T]]() Polynomial[T] {
	return Polynomial[T]{[]T{number.One[T]()}}
}

// Constant constructs a polynomial of degree 0 holding a given constant.
func Constant[T number.Number[T]](c T) Polynomial[T] {
	return Polynomial[T]{[]T{c}}
}

// X constructs the polynomial x.
func X[T number.Number[T]]() Polynomial[T] {
	return Polynomial[T]{[]T{number.Zero[T](), number.One[T]()}}
}

// canonical strips trailing zeros from a given coefficient slice, taking
// ownership of it.
func canonical[T number.Number[T]](coeffs []T) Polynomial[T] {
	n := len(coeffs)
	//
	for n > 1 && coeffs[n-1].IsZero() {
		n--
	}
	//
	return Polynomial[T]{coeffs[:n:n]}
}

// view returns the coefficients of this polynomial, accounting for the
// uninitialised case.  The returned slice must not be modified.
func (p Polynomial[T]) view() []T {
	if len(p.coeffs) == 0 {
		return []T{number.Zero[T]()}
	}
	//
	return p.coeffs
}

// Degree returns the degree of this polynomial.  The zero polynomial has
// degree 0.
func (p Polynomial[T]) Degree() int {
	return len(p.view()) - 1
}

// Len returns the number of coefficients in this polynomial.
func (p Polynomial[T]) Len() uint {
	return uint(len(p.view()))
}

// Coefficients returns a copy of the (canonical) coefficients of this
// polynomial, lowest degree first.
func (p Polynomial[T]) Coefficients() []T {
	return slices.Clone(p.view())
}

// Coefficient returns the coefficient of x^k, which is zero for any k beyond
// the degree of this polynomial.
func (p Polynomial[T]) Coefficient(k uint) T {
	if coeffs := p.view(); k < uint(len(coeffs)) {
		return coeffs[k]
	}
	//
	return number.Zero[T]()
}

// IsZero checks whether this is the zero polynomial.
func (p Polynomial[T]) IsZero() bool {
	coeffs := p.view()
	//
	return len(coeffs) == 1 && coeffs[0].IsZero()
}

// Equal checks whether two polynomials have identical coefficients.  Since
// both are canonical, no normalisation is required.
func (p Polynomial[T]) Equal(q Polynomial[T]) bool {
	return slices.EqualFunc(p.view(), q.view(), func(a, b T) bool {
		return a.Cmp(b) == 0
	})
}

// Equals checks whether this polynomial equals an arbitrary value.  Values
// which are not polynomials over the same coefficient type are never equal.
func (p Polynomial[T]) Equals(v any) bool {
	switch q := v.(type) {
	case Polynomial[T]:
		return p.Equal(q)
	case *Polynomial[T]:
		return q != nil && p.Equal(*q)
	default:
		return false
	}
}
