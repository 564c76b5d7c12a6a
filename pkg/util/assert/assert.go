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
package assert

import (
	"math"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// Values of unexported fields are compared as well, unless a type provides its
// own Equal method (which go-cmp then uses instead).
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal errors if actual is not equal to expected.
func Equal(t *testing.T, expected, actual any, msg ...any) {
	t.Helper()
	//
	if intEqual(expected, actual) || cmp.Equal(expected, actual, exportAll) {
		return
	}

	t.Errorf("expected: %v, actual: %v\n%s", expected, actual, cmp.Diff(expected, actual, exportAll))

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// True errors if the given condition does not hold.
func True(t *testing.T, cond bool, msg ...any) {
	t.Helper()
	//
	if cond {
		return
	}

	t.Errorf("expected condition to hold")

	if len(msg) != 0 {
		t.Errorf(msg[0].(string), msg[1:]...)
	}

	t.FailNow()
}

// intEqual returns whether expected and actual are both integers and whether they are equal
// if that is the case.
func intEqual(expected, actual any) bool {
	a, aInt64 := asInt64(expected)
	b, bInt64 := asInt64(actual)

	if !aInt64 || !bInt64 {
		return false
	}

	return a == b
}

// asInt64 tries to convert x to an int64, failing for anything which is not a
// builtin integer or is a uint64 beyond the range of int64.
func asInt64(x any) (int64, bool) {
	if y, ok := x.(uint64); ok && y > math.MaxInt64 {
		return 0, false
	}

	switch x := x.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	case uint64:
		return int64(x), true
	}

	return 0, false
}
