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

// Add returns p + q.  Coefficients are summed term-wise over the degrees
// common to both, with the remaining coefficients of the longer operand
// carried over unchanged.
func (p Polynomial[T]) Add(q Polynomial[T]) Polynomial[T] {
	var (
		lhs, rhs = p.view(), q.view()
		res      []T
	)
	//
	if len(lhs) >= len(rhs) {
		res = slices.Clone(lhs)
		//
		for i, c := range rhs {
			res[i] = res[i].Add(c)
		}
	} else {
		res = slices.Clone(rhs)
		//
		for i, c := range lhs {
			res[i] = c.Add(res[i])
		}
	}
	// Leading terms may have cancelled
	return canonical(res)
}

// AddScalar returns p + c, where c is added to the constant term only.
func (p Polynomial[T]) AddScalar(c T) Polynomial[T] {
	res := slices.Clone(p.view())
	res[0] = res[0].Add(c)
	//
	return canonical(res)
}

// Neg returns -p.
func (p Polynomial[T]) Neg() Polynomial[T] {
	coeffs := p.view()
	res := make([]T, len(coeffs))
	//
	for i, c := range coeffs {
		res[i] = c.Neg()
	}
	// Negation cannot introduce trailing zeros
	return Polynomial[T]{res}
}

// Sub returns p - q, computed as p + (-q).
func (p Polynomial[T]) Sub(q Polynomial[T]) Polynomial[T] {
	return p.Add(q.Neg())
}

// SubScalar returns p - c.
func (p Polynomial[T]) SubScalar(c T) Polynomial[T] {
	return p.AddScalar(c.Neg())
}

// MulScalar returns c * p.  Multiplying by zero gives the zero polynomial.
func (p Polynomial[T]) MulScalar(c T) Polynomial[T] {
	coeffs := p.view()
	res := make([]T, len(coeffs))
	//
	for i, a := range coeffs {
		res[i] = a.Mul(c)
	}
	//
	return canonical(res)
}

// Mul returns p * q using the Cauchy product, such that the coefficient of x^k
// in the result is the sum of p[i]*q[k-i] over all valid i.
func (p Polynomial[T]) Mul(q Polynomial[T]) Polynomial[T] {
	var (
		lhs, rhs = p.view(), q.view()
		// Relies on the zero value of T being 0
		res = make([]T, len(lhs)+len(rhs)-1)
	)
	//
	for i, a := range lhs {
		for j, b := range rhs {
			res[i+j] = res[i+j].Add(a.Mul(b))
		}
	}
	//
	return canonical(res)
}

// Pow returns p^e for a non-negative exponent e, where p^0 = 1 for every p
// (including the zero polynomial).  The result is accumulated by multiplying
// an identity-seeded accumulator by p exactly e times.
func (p Polynomial[T]) Pow(e int) (Polynomial[T], error) {
	if e < 0 {
		return Polynomial[T]{}, fmt.Errorf("%w: negative exponent %d", ErrInvalidArgument, e)
	}
	//
	acc := One[T]()
	//
	for range e {
		acc = acc.Mul(p)
	}
	//
	return acc, nil
}

// Eval evaluates this polynomial at a given point t using Horner's method.
func (p Polynomial[T]) Eval(t T) T {
	coeffs := p.view()
	n := len(coeffs) - 1
	acc := coeffs[n]
	//
	for i := n - 1; i >= 0; i-- {
		acc = acc.Mul(t).Add(coeffs[i])
	}
	//
	return acc
}

// EvalNaive evaluates this polynomial at a given point t by summing each
// c_k * t^k directly.  This is less accurate than Eval for floating point
// coefficients, and exists mainly as a reference.
func (p Polynomial[T]) EvalNaive(t T) T {
	acc := number.Zero[T]()
	//
	for k, c := range p.view() {
		acc = acc.Add(c.Mul(number.Pow(t, uint64(k))))
	}
	//
	return acc
}

// Dx returns the derivative of this polynomial.  The derivative of any
// constant is the zero polynomial.
func (p Polynomial[T]) Dx() Polynomial[T] {
	coeffs := p.view()
	//
	if len(coeffs) == 1 {
		return Zero[T]()
	}
	//
	res := make([]T, len(coeffs)-1)
	//
	for k := range res {
		res[k] = number.Int64[T](int64(k + 1)).Mul(coeffs[k+1])
	}
	// In a field of small characteristic (k+1) can vanish
	return canonical(res)
}

// ScalarAdd returns c + p, which is the same as p + c.
func ScalarAdd[T number.Number[T]](c T, p Polynomial[T]) Polynomial[T] {
	return p.AddScalar(c)
}

// ScalarMul returns c * p, which is the same as p * c.
func ScalarMul[T number.Number[T]](c T, p Polynomial[T]) Polynomial[T] {
	return p.MulScalar(c)
}
