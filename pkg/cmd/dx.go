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

	"github.com/consensys/go-unipoly/pkg/poly"
	"github.com/consensys/go-unipoly/pkg/util/number"
	"github.com/consensys/go-unipoly/pkg/util/number/bls12_377"
	"github.com/spf13/cobra"
)

var dxCmd = &cobra.Command{
	Use:   "dx [flags] expr",
	Short: "differentiate a polynomial.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		n := GetInt(cmd, "times")
		//
		runCommand(cmd, args, dx[number.Int](n), dx[number.Float](n), dx[number.Rat](n), dx[bls12_377.Element](n))
	},
}

func dx[T number.Number[T]](n int) func(*Env[T], []string) error {
	return func(env *Env[T], args []string) error {
		if n < 0 {
			return fmt.Errorf("%w: cannot differentiate %d times", poly.ErrInvalidArgument, n)
		}
		//
		p, err := env.Polynomial("<expr>", args[0])
		if err != nil {
			return err
		}
		//
		for range n {
			p = p.Dx()
		}
		//
		env.Println(p)
		//
		return nil
	}
}

func init() {
	rootCmd.AddCommand(dxCmd)
	dxCmd.Flags().IntP("times", "n", 1, "number of times to differentiate")
}
