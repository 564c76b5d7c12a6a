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
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/consensys/go-unipoly/pkg/poly"
	"github.com/consensys/go-unipoly/pkg/util/number"
	"github.com/consensys/go-unipoly/pkg/util/number/bls12_377"
	"github.com/consensys/go-unipoly/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Env provides the context in which a command runs for a given coefficient
// type T.  This includes the means to parse constants, the polynomials defined
// so far (e.g. in an interactive session) and the output stream.
type Env[T number.Number[T]] struct {
	// Parses constants of the coefficient type
	parse func(string) (T, error)
	// Named polynomials
	vars map[string]poly.Polynomial[T]
	// Where results are written
	out io.Writer
}

// NewEnv constructs an initially empty environment.
func NewEnv[T number.Number[T]](parse func(string) (T, error), out io.Writer) *Env[T] {
	return &Env[T]{parse, make(map[string]poly.Polynomial[T]), out}
}

// Polynomial parses a given polynomial expression.  The name identifies the
// input when reporting syntax errors.
func (e *Env[T]) Polynomial(name string, text string) (poly.Polynomial[T], error) {
	p, errs := poly.ParseFile(source.NewSourceFile(name, text), e.parse, e.vars)
	//
	if len(errs) > 0 {
		return p, SyntaxErrors(errs)
	}
	//
	return p, nil
}

// Scalar parses a given constant of the coefficient type.
func (e *Env[T]) Scalar(text string) (T, error) {
	return e.parse(text)
}

// Operand parses a given argument which is either a constant or a polynomial
// expression.
func (e *Env[T]) Operand(name string, text string) (poly.Operand[T], error) {
	if c, err := e.parse(text); err == nil {
		return poly.ScalarOperand(c), nil
	}
	//
	p, err := e.Polynomial(name, text)
	if err != nil {
		return poly.Operand[T]{}, err
	}
	//
	return poly.PolyOperand(p), nil
}

// Define binds a name to a polynomial.
func (e *Env[T]) Define(name string, p poly.Polynomial[T]) {
	e.vars[name] = p
}

// Println writes a line of output.
func (e *Env[T]) Println(items ...any) {
	fmt.Fprintln(e.out, items...)
}

// Supported coefficient kinds
const (
	kindInt      = "int"
	kindFloat    = "float"
	kindRat      = "rat"
	kindBls12377 = "bls12-377"
)

// runCommand runs the appropriate instantiation of a command body for the
// coefficient kind selected on the command line.  Any error is reported
// before exiting.
func runCommand(cmd *cobra.Command, args []string,
	intBody func(*Env[number.Int], []string) error,
	floatBody func(*Env[number.Float], []string) error,
	ratBody func(*Env[number.Rat], []string) error,
	blsBody func(*Env[bls12_377.Element], []string) error) {
	var (
		err  error
		kind = GetString(cmd, "kind")
	)
	// Configure log level
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}
	//
	log.Debugf("running %s with %s coefficients", cmd.Name(), kind)
	//
	switch kind {
	case kindInt:
		err = intBody(NewEnv(number.ParseInt, os.Stdout), args)
	case kindFloat:
		err = floatBody(NewEnv(number.ParseFloat, os.Stdout), args)
	case kindRat:
		err = ratBody(NewEnv(number.ParseRat, os.Stdout), args)
	case kindBls12377:
		err = blsBody(NewEnv(bls12_377.Parse, os.Stdout), args)
	default:
		fmt.Printf("unknown coefficient kind \"%s\"\n", kind)
		os.Exit(2)
	}
	//
	if err != nil {
		reportAndExit(err)
	}
}
