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
	"bytes"
	"fmt"
	"strings"
)

// String renders this polynomial as an algebraic expression, such as
// "1 - x^1 + 3x^2".  The constant term appears first (if nonzero), followed by
// each nonzero term in increasing degree with a leading " + " or " - ".  A
// coefficient whose magnitude is one is omitted, leaving only the power of x.
// Note that x^1 is not simplified to x, and the zero polynomial renders as the
// empty string.
func (p Polynomial[T]) String() string {
	var (
		buf    bytes.Buffer
		coeffs = p.view()
	)
	//
	if !coeffs[0].IsZero() {
		buf.WriteString(coeffs[0].String())
	}
	//
	for k := 1; k < len(coeffs); k++ {
		ith := coeffs[k]
		//
		switch ith.Sign() {
		case 0:
			continue
		case -1:
			buf.WriteString(" - ")
		default:
			buf.WriteString(" + ")
		}
		// Unit coefficients are left implicit.  Abs can overflow for fixed
		// width integers, hence any remaining sign is dropped.
		if mag := ith.Abs(); !mag.IsOne() {
			buf.WriteString(strings.TrimPrefix(mag.String(), "-"))
		}
		//
		fmt.Fprintf(&buf, "x^%d", k)
	}
	//
	return buf.String()
}

// GoString renders this polynomial in a form which reconstructs it, such as
// "Polynomial(1, -1, 3)".
func (p Polynomial[T]) GoString() string {
	var buf bytes.Buffer
	//
	buf.WriteString("Polynomial(")
	//
	for i, c := range p.view() {
		if i != 0 {
			buf.WriteString(", ")
		}
		//
		buf.WriteString(c.String())
	}
	//
	buf.WriteString(")")
	//
	return buf.String()
}
