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
	"fmt"
	"strings"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// Element wraps fr.Element to conform to the number.Number interface.  The
// field has no natural order, so elements in the upper half of the field
// (i.e. those lexicographically larger than (q-1)/2) are treated as negative.
// Thus q-1 is rendered as "-1".
type Element struct {
	fr.Element
}

// New constructs an element from a (possibly negative) int64.
func New(val int64) Element {
	var elem fr.Element
	//
	elem.SetInt64(val)
	//
	return Element{elem}
}

// Parse parses a decimal (or 0x prefixed hexadecimal) value, optionally
// preceded by a minus sign.
func Parse(s string) (Element, error) {
	var (
		elem fr.Element
		neg  = strings.HasPrefix(s, "-")
	)
	//
	if _, err := elem.SetString(strings.TrimPrefix(s, "-")); err != nil {
		return Element{}, fmt.Errorf("invalid field element \"%s\"", s)
	} else if neg {
		elem.Neg(&elem)
	}
	//
	return Element{elem}, nil
}

// Add x + y
func (x Element) Add(y Element) Element {
	var res fr.Element
	//
	res.Add(&x.Element, &y.Element)
	//
	return Element{res}
}

// Mul x * y
func (x Element) Mul(y Element) Element {
	var elem fr.Element
	//
	elem.Mul(&x.Element, &y.Element)
	//
	return Element{elem}
}

// Neg -x
func (x Element) Neg() Element {
	var elem fr.Element
	//
	elem.Neg(&x.Element)
	//
	return Element{elem}
}

// Cmp returns 1 if x > y, 0 if x = y, and -1 if x < y.
func (x Element) Cmp(y Element) int {
	return x.Element.Cmp(&y.Element)
}

// IsOne implementation for the Number interface
func (x Element) IsOne() bool {
	return x.Element.IsOne()
}

// IsZero implementation for the Number interface
func (x Element) IsZero() bool {
	return x.Element.IsZero()
}

// Sign implementation for the Number interface
func (x Element) Sign() int {
	switch {
	case x.Element.IsZero():
		return 0
	case x.Element.LexicographicallyLargest():
		return -1
	default:
		return 1
	}
}

// Abs implementation for the Number interface
func (x Element) Abs() Element {
	if x.Sign() < 0 {
		return x.Neg()
	}
	//
	return x
}

// SetInt64 implementation for the Number interface
func (x Element) SetInt64(val int64) Element {
	return New(val)
}

func (x Element) String() string {
	if x.Sign() < 0 {
		abs := x.Neg()
		return "-" + abs.Element.String()
	}
	//
	return x.Element.String()
}
