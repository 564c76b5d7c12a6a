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
	"strconv"

	"github.com/consensys/go-unipoly/pkg/poly"
	"github.com/consensys/go-unipoly/pkg/util"
	"github.com/consensys/go-unipoly/pkg/util/number"
	"github.com/consensys/go-unipoly/pkg/util/number/bls12_377"
	"github.com/spf13/cobra"
)

var addCmd = newFoldCommand("add", poly.OpAdd, "add polynomials and/or constants together.")
var subCmd = newFoldCommand("sub", poly.OpSub, "subtract polynomials and/or constants from the first.")
var mulCmd = newFoldCommand("mul", poly.OpMul, "multiply polynomials and/or constants together.")

var powCmd = &cobra.Command{
	Use:   "pow [flags] expr exponent",
	Short: "raise a polynomial to a non-negative integer power.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCommand(cmd, args, pow[number.Int], pow[number.Float], pow[number.Rat], pow[bls12_377.Element])
	},
}

// Construct a command which folds a given operation over its arguments, where
// the first must be a polynomial and the remainder can be either polynomials
// or constants.
func newFoldCommand(name string, op poly.Op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [flags] expr operand(s)", name),
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			runCommand(cmd, args, fold[number.Int](op), fold[number.Float](op), fold[number.Rat](op),
				fold[bls12_377.Element](op))
		},
	}
}

func fold[T number.Number[T]](op poly.Op) func(*Env[T], []string) error {
	return func(env *Env[T], args []string) error {
		acc, err := env.Polynomial("<arg1>", args[0])
		if err != nil {
			return err
		}
		//
		for i, arg := range args[1:] {
			operand, err := env.Operand(fmt.Sprintf("<arg%d>", i+2), arg)
			if err != nil {
				return err
			}
			//
			if acc, err = acc.Apply(op, operand); err != nil {
				return err
			}
		}
		//
		env.Println(acc)
		//
		return nil
	}
}

func pow[T number.Number[T]](env *Env[T], args []string) error {
	p, err := env.Polynomial("<expr>", args[0])
	if err != nil {
		return err
	}
	//
	e, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("%w: exponent \"%s\"", poly.ErrInvalidArgument, args[1])
	}
	//
	stats := util.NewPerfStats()
	//
	r, err := p.ApplyAny(poly.OpPow, e)
	if err != nil {
		return err
	}
	//
	stats.Log(fmt.Sprintf("Raising degree %d polynomial to power %d", p.Degree(), e))
	//
	env.Println(r)
	//
	return nil
}

func init() {
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(powCmd)
}
