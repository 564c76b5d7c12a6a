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

	"github.com/consensys/go-unipoly/pkg/util/number"
)

// Op identifies one of the binary operations which can be applied to a
// polynomial and a dynamically typed operand.
type Op uint8

const (
	// OpAdd is addition
	OpAdd Op = iota
	// OpSub is subtraction
	OpSub
	// OpMul is multiplication
	OpMul
	// OpPow is exponentiation by a non-negative integer
	OpPow
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpPow:
		return "^"
	default:
		return fmt.Sprintf("op(%d)", uint8(op))
	}
}

// Operand represents the right-hand side of a binary operation, which is
// either a polynomial or a scalar of the coefficient type.
type Operand[T number.Number[T]] struct {
	// Indicates polynomial present
	poly bool
	// Polynomial value
	polynomial Polynomial[T]
	// Scalar value
	scalar T
}

// PolyOperand constructs an operand holding a polynomial.
func PolyOperand[T number.Number[T]](p Polynomial[T]) Operand[T] {
	var empty T
	//
	return Operand[T]{true, p, empty}
}

// ScalarOperand constructs an operand holding a scalar.
func ScalarOperand[T number.Number[T]](c T) Operand[T] {
	return Operand[T]{false, Polynomial[T]{}, c}
}

// OperandOf converts a dynamically typed value into an operand.  Only
// polynomials over T (or pointers to them) and values of type T are accepted;
// anything else gives ErrUnsupportedOperand.
func OperandOf[T number.Number[T]](v any) (Operand[T], error) {
	switch v := v.(type) {
	case Polynomial[T]:
		return PolyOperand(v), nil
	case *Polynomial[T]:
		if v != nil {
			return PolyOperand(*v), nil
		}
	case T:
		return ScalarOperand(v), nil
	}
	//
	return Operand[T]{}, fmt.Errorf("%w: %T", ErrUnsupportedOperand, v)
}

// IsPolynomial indicates whether this operand holds a polynomial (or not).
func (o Operand[T]) IsPolynomial() bool {
	return o.poly
}

// IsScalar indicates whether this operand holds a scalar (or not).
func (o Operand[T]) IsScalar() bool {
	return !o.poly
}

// Polynomial returns the contained polynomial.  If the operand does not hold a
// polynomial, then this will panic.
func (o Operand[T]) Polynomial() Polynomial[T] {
	if o.poly {
		return o.polynomial
	}
	//
	panic("cannot take polynomial, as operand holds scalar")
}

// Scalar returns the contained scalar.  If the operand does not hold a scalar,
// then this will panic.
func (o Operand[T]) Scalar() T {
	if !o.poly {
		return o.scalar
	}
	//
	panic("cannot take scalar, as operand holds polynomial")
}

// Apply a given operation to this polynomial and an operand, dispatching to
// the polynomial or scalar variant as appropriate.  Exponentiation is not
// supported here, since its operand is an integer rather than a polynomial or
// coefficient (see ApplyAny).
func (p Polynomial[T]) Apply(op Op, o Operand[T]) (Polynomial[T], error) {
	switch {
	case op == OpAdd && o.poly:
		return p.Add(o.polynomial), nil
	case op == OpAdd:
		return p.AddScalar(o.scalar), nil
	case op == OpSub && o.poly:
		return p.Sub(o.polynomial), nil
	case op == OpSub:
		return p.SubScalar(o.scalar), nil
	case op == OpMul && o.poly:
		return p.Mul(o.polynomial), nil
	case op == OpMul:
		return p.MulScalar(o.scalar), nil
	}
	//
	return Polynomial[T]{}, fmt.Errorf("%w: operation %s", ErrUnsupportedOperand, op)
}

// ApplyAny applies a given operation to this polynomial and a dynamically
// typed operand.  For OpPow the operand must be an integer (either a builtin
// integer or a number.Int); for all other operations it must be accepted by
// OperandOf.
func (p Polynomial[T]) ApplyAny(op Op, v any) (Polynomial[T], error) {
	if op == OpPow {
		e, err := exponentOf(v)
		if err != nil {
			return Polynomial[T]{}, err
		}
		//
		return p.Pow(e)
	}
	//
	o, err := OperandOf[T](v)
	if err != nil {
		return Polynomial[T]{}, err
	}
	//
	return p.Apply(op, o)
}

// Call evaluates this polynomial at a dynamically typed point, which must be
// of the coefficient type.
func (p Polynomial[T]) Call(v any) (T, error) {
	if t, ok := v.(T); ok {
		return p.Eval(t), nil
	}
	//
	var empty T
	//
	return empty, fmt.Errorf("%w: %T", ErrUnsupportedOperand, v)
}

func exponentOf(v any) (int, error) {
	var e int64
	//
	switch v := v.(type) {
	case int:
		e = int64(v)
	case int8:
		e = int64(v)
	case int16:
		e = int64(v)
	case int32:
		e = int64(v)
	case int64:
		e = v
	case uint:
		e = int64(min(uint64(v), math.MaxInt64))
	case uint8:
		e = int64(v)
	case uint16:
		e = int64(v)
	case uint32:
		e = int64(v)
	case uint64:
		e = int64(min(v, math.MaxInt64))
	case number.Int:
		e = int64(v)
	default:
		return 0, fmt.Errorf("%w: exponent of type %T", ErrUnsupportedOperand, v)
	}
	//
	if e > math.MaxInt {
		return 0, fmt.Errorf("%w: exponent %d too large", ErrInvalidArgument, e)
	}
	//
	return int(e), nil
}
