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
	"math/rand/v2"
	"testing"

	"github.com/consensys/go-unipoly/pkg/util/assert"
	"github.com/consensys/go-unipoly/pkg/util/number"
	"github.com/consensys/go-unipoly/pkg/util/number/bls12_377"
)

// Number of random instances checked per law
const LAW_ITERATIONS = 200

// Maximum degree of randomly generated polynomials
const LAW_MAX_DEGREE = 5

func Test_Laws_Int(t *testing.T) {
	checkLaws(t, func(r *rand.Rand) number.Int {
		return number.Int(r.Int64N(21) - 10)
	})
}

func Test_Laws_Float(t *testing.T) {
	// Small integers keep floating point arithmetic exact
	checkLaws(t, func(r *rand.Rand) number.Float {
		return number.Float(r.Int64N(21) - 10)
	})
}

func Test_Laws_Rat(t *testing.T) {
	checkLaws(t, func(r *rand.Rand) number.Rat {
		return number.NewRat(r.Int64N(41)-20, r.Int64N(9)+1)
	})
}

func Test_Laws_Bls12_377(t *testing.T) {
	checkLaws(t, func(r *rand.Rand) bls12_377.Element {
		return bls12_377.New(r.Int64())
	})
}

func checkLaws[T number.Number[T]](t *testing.T, gen func(*rand.Rand) T) {
	var (
		r    = rand.New(rand.NewPCG(1, 2))
		zero = Zero[T]()
		one  = One[T]()
	)
	//
	for range LAW_ITERATIONS {
		p, q, s := randPoly(r, gen), randPoly(r, gen), randPoly(r, gen)
		x := gen(r)
		// Identities and inverses
		assert.Equal(t, p, p.Add(zero), "%s + 0", p)
		assert.Equal(t, zero, p.Add(p.Neg()), "%s + -(%s)", p, p)
		assert.Equal(t, p, p.Mul(one), "%s * 1", p)
		assert.Equal(t, zero, p.Mul(zero), "%s * 0", p)
		assert.Equal(t, p, p.Neg().Neg())
		// Commutativity
		assert.Equal(t, p.Add(q), q.Add(p), "(%s) + (%s)", p, q)
		assert.Equal(t, p.Mul(q), q.Mul(p), "(%s) * (%s)", p, q)
		assert.Equal(t, p.AddScalar(x), ScalarAdd(x, p))
		assert.Equal(t, p.MulScalar(x), ScalarMul(x, p))
		// Associativity & distributivity
		assert.Equal(t, p.Add(q).Add(s), p.Add(q.Add(s)))
		assert.Equal(t, p.Mul(q).Mul(s), p.Mul(q.Mul(s)))
		assert.Equal(t, p.Mul(q.Add(s)), p.Mul(q).Add(p.Mul(s)))
		assert.Equal(t, p.MulScalar(x), p.Mul(Constant(x)))
		assert.Equal(t, p.AddScalar(x), p.Add(Constant(x)))
		// Subtraction
		assert.Equal(t, p.Add(q.Neg()), p.Sub(q))
		assert.Equal(t, p, p.Sub(q).Add(q))
		assert.Equal(t, p.SubScalar(x).AddScalar(x), p)
		// Degrees
		if !p.IsZero() && !q.IsZero() {
			assert.Equal(t, p.Degree()+q.Degree(), p.Mul(q).Degree())
		}
		// Evaluation is a homomorphism
		assert.Equal(t, p.Eval(x).Add(q.Eval(x)), p.Add(q).Eval(x))
		assert.Equal(t, p.Eval(x).Mul(q.Eval(x)), p.Mul(q).Eval(x))
		assert.Equal(t, p.Eval(x), p.EvalNaive(x))
		// Derivatives
		assert.Equal(t, p.Dx().Add(q.Dx()), p.Add(q).Dx())
		assert.Equal(t, p.Dx().Mul(q).Add(p.Mul(q.Dx())), p.Mul(q).Dx())
		// Powers
		checkPowLaws(t, p, int(r.IntN(4)), int(r.IntN(4)))
		// Reconstruction
		assert.Equal(t, p, Must(p.Coefficients()...))
		// Canonical form
		assert.True(t, p.Len() == 1 || !p.Coefficient(p.Len()-1).IsZero())
	}
}

func checkPowLaws[T number.Number[T]](t *testing.T, p Polynomial[T], a, b int) {
	t.Helper()
	//
	pa, _ := p.Pow(a)
	pb, _ := p.Pow(b)
	pab, _ := p.Pow(a + b)
	expected := One[T]()
	//
	for range a {
		expected = expected.Mul(p)
	}
	//
	assert.Equal(t, expected, pa)
	assert.Equal(t, pab, pa.Mul(pb))
}

func randPoly[T number.Number[T]](r *rand.Rand, gen func(*rand.Rand) T) Polynomial[T] {
	coeffs := make([]T, r.IntN(LAW_MAX_DEGREE+1)+1)
	//
	for i := range coeffs {
		// Bias towards zero coefficients to exercise canonicalisation
		if r.IntN(4) != 0 {
			coeffs[i] = gen(r)
		}
	}
	//
	return Must(coeffs...)
}
