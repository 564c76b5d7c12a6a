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

	"github.com/consensys/go-unipoly/pkg/util/number"
	"github.com/consensys/go-unipoly/pkg/util/number/bls12_377"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expr value(s)",
	Short: "evaluate a polynomial at one or more points.",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		runCommand(cmd, args, eval[number.Int], eval[number.Float], eval[number.Rat], eval[bls12_377.Element])
	},
}

func eval[T number.Number[T]](env *Env[T], args []string) error {
	p, err := env.Polynomial("<expr>", args[0])
	if err != nil {
		return err
	}
	//
	for _, arg := range args[1:] {
		t, err := env.Scalar(arg)
		if err != nil {
			return fmt.Errorf("cannot evaluate: %w", err)
		}
		//
		env.Println(p.Eval(t))
	}
	//
	return nil
}

func init() {
	rootCmd.AddCommand(evalCmd)
}
