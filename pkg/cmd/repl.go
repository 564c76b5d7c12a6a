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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"unicode"

	"github.com/consensys/go-unipoly/pkg/poly"
	"github.com/consensys/go-unipoly/pkg/util"
	"github.com/consensys/go-unipoly/pkg/util/number"
	"github.com/consensys/go-unipoly/pkg/util/number/bls12_377"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "start an interactive polynomial session.",
	Long: `Start an interactive session in which polynomials can be defined, printed
	and evaluated.  The following statements are supported:

	let NAME = EXPR     bind NAME to a polynomial for use in later expressions
	eval EXPR VALUE     evaluate a polynomial at a given point
	degree EXPR         print the degree of a polynomial
	vars                list all bound names
	quit                end the session
	EXPR                print a polynomial`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runCommand(cmd, args, repl[number.Int], repl[number.Float], repl[number.Rat], repl[bls12_377.Element])
	},
}

// LineReader provides successive lines of input, returning io.EOF when none
// remain.
type LineReader interface {
	ReadLine() (string, error)
}

// lineScanner reads lines from a non-interactive input stream.
type lineScanner struct {
	scanner *bufio.Scanner
}

func (p *lineScanner) ReadLine() (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	} else if err := p.scanner.Err(); err != nil {
		return "", err
	}
	//
	return "", io.EOF
}

func repl[T number.Number[T]](env *Env[T], _ []string) error {
	if !term.IsTerminal(0) {
		return Session(env, &lineScanner{bufio.NewScanner(os.Stdin)})
	}
	//
	state, err := term.MakeRaw(0)
	if err != nil {
		return err
	}
	//
	defer term.Restore(0, state) //nolint:errcheck
	//
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	//
	terminal := term.NewTerminal(screen, "> ")
	// Output must go through the terminal whilst in raw mode
	env.out = terminal
	//
	return Session(env, terminal)
}

// Session reads and executes statements from a given reader until either the
// input is exhausted, or the user quits.  Errors arising from individual
// statements are reported without ending the session.
func Session[T number.Number[T]](env *Env[T], in LineReader) error {
	for {
		line, err := in.ReadLine()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}
		//
		line = strings.TrimSpace(line)
		//
		switch {
		case line == "" || strings.HasPrefix(line, ";"):
			continue
		case line == "quit" || line == "exit":
			return nil
		}
		//
		stats := util.NewPerfStats()
		//
		if err := execute(env, line); err != nil {
			reportStatementError(env, err)
		}
		//
		stats.Log(fmt.Sprintf("Statement \"%s\"", line))
	}
}

// Execute a single (non-empty) statement.
func execute[T number.Number[T]](env *Env[T], line string) error {
	keyword, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	//
	switch keyword {
	case "let":
		return executeLet(env, rest)
	case "eval":
		return executeEval(env, rest)
	case "degree":
		p, err := env.Polynomial("<repl>", rest)
		if err != nil {
			return err
		}
		//
		env.Println(p.Degree())
	case "vars":
		names := make([]string, 0, len(env.vars))
		for name := range env.vars {
			names = append(names, name)
		}
		//
		slices.Sort(names)
		//
		for _, name := range names {
			env.Println(name, "=", env.vars[name].String())
		}
	default:
		p, err := env.Polynomial("<repl>", line)
		if err != nil {
			return err
		}
		//
		env.Println(p)
	}
	//
	return nil
}

func executeLet[T number.Number[T]](env *Env[T], stmt string) error {
	name, expr, ok := strings.Cut(stmt, "=")
	if !ok {
		return fmt.Errorf("%w: expected \"let NAME = EXPR\"", poly.ErrInvalidArgument)
	}
	//
	name = strings.TrimSpace(name)
	//
	if !isIdentifier(name) || name == poly.Variable {
		return fmt.Errorf("%w: cannot bind \"%s\"", poly.ErrInvalidArgument, name)
	}
	//
	p, err := env.Polynomial("<repl>", strings.TrimSpace(expr))
	if err != nil {
		return err
	}
	//
	log.Debugf("binding %s to degree %d polynomial", name, p.Degree())
	env.Define(name, p)
	//
	return nil
}

func executeEval[T number.Number[T]](env *Env[T], stmt string) error {
	split := strings.LastIndexFunc(stmt, unicode.IsSpace)
	if split < 0 {
		return fmt.Errorf("%w: expected \"eval EXPR VALUE\"", poly.ErrInvalidArgument)
	}
	//
	p, err := env.Polynomial("<repl>", strings.TrimSpace(stmt[:split]))
	if err != nil {
		return err
	}
	//
	t, err := env.Scalar(stmt[split+1:])
	if err != nil {
		return err
	}
	//
	env.Println(p.Eval(t))
	//
	return nil
}

func reportStatementError[T number.Number[T]](env *Env[T], err error) {
	var errs SyntaxErrors
	//
	if errors.As(err, &errs) {
		for _, e := range errs {
			printSyntaxError(env.out, &e)
		}
	} else {
		env.Println("error:", err)
	}
}

// Check whether a given name can be bound in a session.  Names begin with a
// letter, and consist only of letters, digits and underscores.
func isIdentifier(name string) bool {
	for i, c := range name {
		if !unicode.IsLetter(c) && (i == 0 || (c != '_' && !unicode.IsDigit(c))) {
			return false
		}
	}
	//
	return name != ""
}

func init() {
	rootCmd.AddCommand(replCmd)
}
