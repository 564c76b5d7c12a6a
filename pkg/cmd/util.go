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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/consensys/go-unipoly/pkg/util/source"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected signed integer, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// SyntaxErrors is an error which aggregates one or more syntax errors arising
// from a single input.
type SyntaxErrors []source.SyntaxError

func (p SyntaxErrors) Error() string {
	msgs := make([]string, len(p))
	//
	for i := range p {
		msgs[i] = p[i].Error()
	}
	//
	return strings.Join(msgs, "; ")
}

// Report an error arising from running a command, and exit.  Syntax errors
// are highlighted against the offending input and exit with status 2, whilst
// all other errors exit with status 1.
func reportAndExit(err error) {
	var errs SyntaxErrors
	//
	if errors.As(err, &errs) {
		for _, e := range errs {
			printSyntaxError(os.Stdout, &e)
		}
		//
		os.Exit(2)
	}
	//
	log.Error(err)
	os.Exit(1)
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	// Print error + line number
	fmt.Fprintf(out, "%s:%d: %s\n", err.SourceFile().Filename(), line.Number(), err.Message())
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	fmt.Fprint(out, strings.Repeat(" ", span.Start()-line.Start()))
	// Print highlight
	fmt.Fprintln(out, strings.Repeat("^", max(1, span.Length())))
}
