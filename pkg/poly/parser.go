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
	"strconv"

	"github.com/consensys/go-unipoly/pkg/util/number"
	"github.com/consensys/go-unipoly/pkg/util/source"
	"github.com/consensys/go-unipoly/pkg/util/source/sexp"
)

// Variable is the symbol used for the indeterminate of a polynomial.
const Variable = "x"

// ParseFile parses a given source file containing exactly one S-expression
// into a polynomial, or produces one or more syntax errors.  Constants are
// constructed from symbols using a given constructor, whilst symbols bound in
// the (optional) environment stand for previously defined polynomials.
func ParseFile[T number.Number[T]](srcfile *source.File, constructor func(string) (T, error),
	env map[string]Polynomial[T]) (Polynomial[T], []source.SyntaxError) {
	//
	term, srcmap, err := sexp.Parse(srcfile)
	if err != nil {
		return Polynomial[T]{}, []source.SyntaxError{*err}
	}
	//
	return NewParser(srcmap, constructor, env).Parse(term)
}

// Parser is responsible for parsing S-expressions into polynomials.  The
// recognised forms are:
//
//	x                 the variable
//	c                 a constant, as accepted by the constructor
//	(poly c0 c1 ...)  a polynomial given by its coefficients
//	(+ e1 e2 ...)     sum
//	(- e)             negation
//	(- e1 e2 ...)     difference
//	(* e1 e2 ...)     product
//	(^ e n)           power, for a non-negative integer literal n
//	(d e)             derivative
type Parser[T number.Number[T]] struct {
	// Maps S-Expressions to their spans in the original source file.  This is
	// used for reporting syntax errors.
	srcmap *source.Map[sexp.SExp]
	// Function for constructing constants from strings
	constructor func(string) (T, error)
	// Named polynomials
	env map[string]Polynomial[T]
}

// NewParser constructs a new parser for a given source map.
func NewParser[T number.Number[T]](srcmap *source.Map[sexp.SExp], constructor func(string) (T, error),
	env map[string]Polynomial[T]) *Parser[T] {
	return &Parser[T]{srcmap, constructor, env}
}

// Parse a given S-expression into a polynomial, or produce one or more syntax errors.
func (p *Parser[T]) Parse(expr sexp.SExp) (Polynomial[T], []source.SyntaxError) {
	switch e := expr.(type) {
	case *sexp.Symbol:
		return p.parseSymbol(e)
	case *sexp.List:
		return p.parseList(e)
	default:
		return Polynomial[T]{}, p.srcmap.SyntaxErrors(expr, "unknown term")
	}
}

func (p *Parser[T]) parseSymbol(symbol *sexp.Symbol) (Polynomial[T], []source.SyntaxError) {
	if symbol.Value == Variable {
		return X[T](), nil
	} else if poly, ok := p.env[symbol.Value]; ok {
		return poly, nil
	}
	//
	c, err := p.constructor(symbol.Value)
	// Check for errors
	if err != nil {
		return Polynomial[T]{}, p.srcmap.SyntaxErrors(symbol, err.Error())
	}
	//
	return Constant(c), nil
}

func (p *Parser[T]) parseList(list *sexp.List) (Polynomial[T], []source.SyntaxError) {
	var (
		zero Polynomial[T]
		args = list.Elements[min(1, list.Len()):]
	)
	//
	if list.Len() <= 1 {
		return zero, p.srcmap.SyntaxErrors(list, "malformed expression")
	} else if list.Get(0).AsSymbol() == nil {
		return zero, p.srcmap.SyntaxErrors(list.Get(0), "expected operator")
	}
	//
	switch list.Head() {
	case "+":
		return p.foldList(args, Polynomial[T].Add)
	case "-":
		if len(args) == 1 {
			return p.unary(args[0], Polynomial[T].Neg)
		}
		//
		return p.foldList(args, Polynomial[T].Sub)
	case "*":
		return p.foldList(args, Polynomial[T].Mul)
	case "^":
		return p.parsePow(list)
	case "d":
		if len(args) != 1 {
			return zero, p.srcmap.SyntaxErrors(list, "expected exactly one argument")
		}
		//
		return p.unary(args[0], Polynomial[T].Dx)
	case "poly":
		return p.parseCoefficients(args)
	default:
		return zero, p.srcmap.SyntaxErrors(list.Get(0), "unknown operator")
	}
}

func (p *Parser[T]) parsePow(list *sexp.List) (Polynomial[T], []source.SyntaxError) {
	var zero Polynomial[T]
	//
	if list.Len() != 3 {
		return zero, p.srcmap.SyntaxErrors(list, "expected exactly two arguments")
	}
	//
	base, errs := p.Parse(list.Get(1))
	if len(errs) > 0 {
		return zero, errs
	}
	// Exponent must be a literal
	exponent := list.Get(2).AsSymbol()
	if exponent == nil {
		return zero, p.srcmap.SyntaxErrors(list.Get(2), "expected non-negative integer exponent")
	}
	//
	e, err := strconv.Atoi(exponent.Value)
	if err != nil || e < 0 {
		return zero, p.srcmap.SyntaxErrors(exponent, "expected non-negative integer exponent")
	}
	// Cannot fail, since e >= 0
	res, _ := base.Pow(e)
	//
	return res, nil
}

func (p *Parser[T]) parseCoefficients(args []sexp.SExp) (Polynomial[T], []source.SyntaxError) {
	var (
		coeffs = make([]T, len(args))
		errs   []source.SyntaxError
	)
	//
	for i, arg := range args {
		symbol := arg.AsSymbol()
		//
		if symbol == nil {
			errs = append(errs, p.srcmap.SyntaxErrors(arg, "expected coefficient")...)
		} else if c, err := p.constructor(symbol.Value); err != nil {
			errs = append(errs, p.srcmap.SyntaxErrors(arg, err.Error())...)
		} else {
			coeffs[i] = c
		}
	}
	//
	if len(errs) > 0 {
		return Polynomial[T]{}, errs
	}
	// Cannot fail, since there is at least one argument
	return Must(coeffs...), nil
}

func (p *Parser[T]) unary(arg sexp.SExp, op func(Polynomial[T]) Polynomial[T]) (Polynomial[T],
	[]source.SyntaxError) {
	//
	poly, errs := p.Parse(arg)
	if len(errs) > 0 {
		return poly, errs
	}
	//
	return op(poly), nil
}

// Type of operators to be used with fold.
type foldOp[T number.Number[T]] func(Polynomial[T], Polynomial[T]) Polynomial[T]

func (p *Parser[T]) foldList(elements []sexp.SExp, op foldOp[T]) (Polynomial[T], []source.SyntaxError) {
	var res Polynomial[T]
	// Fold over each element
	for i := 0; i < len(elements); i++ {
		if poly, errs := p.Parse(elements[i]); len(errs) > 0 {
			return res, errs
		} else if i == 0 {
			res = poly
		} else {
			res = op(res, poly)
		}
	}
	//
	return res, nil
}
