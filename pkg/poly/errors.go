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

import "errors"

// ErrUnsupportedOperand is returned when an arithmetic operation is given an
// operand which is neither a polynomial nor a scalar of the coefficient type.
var ErrUnsupportedOperand = errors.New("unsupported operand type")

// ErrInvalidArgument is returned when a polynomial is constructed from an
// empty coefficient sequence, or raised to a negative power.
var ErrInvalidArgument = errors.New("invalid argument")
