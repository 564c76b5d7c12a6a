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
	"github.com/consensys/go-unipoly/pkg/util/number"
	"github.com/consensys/go-unipoly/pkg/util/number/bls12_377"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [flags] expr",
	Short: "show a polynomial in algebraic form.",
	Long: `Show a given polynomial in algebraic form, such as "1 + 2x^1 - x^2".
	Note that the zero polynomial is shown as an empty line.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var cfg showConfig
		//
		cfg.repr = GetFlag(cmd, "repr")
		cfg.degree = GetFlag(cmd, "degree")
		//
		runCommand(cmd, args, show[number.Int](cfg), show[number.Float](cfg), show[number.Rat](cfg),
			show[bls12_377.Element](cfg))
	},
}

type showConfig struct {
	// Show in reconstructible form
	repr bool
	// Show degree only
	degree bool
}

func show[T number.Number[T]](cfg showConfig) func(*Env[T], []string) error {
	return func(env *Env[T], args []string) error {
		p, err := env.Polynomial("<expr>", args[0])
		if err != nil {
			return err
		}
		//
		switch {
		case cfg.degree:
			env.Println(p.Degree())
		case cfg.repr:
			env.Println(p.GoString())
		default:
			env.Println(p.String())
		}
		//
		return nil
	}
}

//nolint:errcheck
func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().Bool("repr", false, "show coefficients in reconstructible form")
	showCmd.Flags().Bool("degree", false, "show degree only")
}
