package main

import (
	"fmt"
	"os"
	"os/exec"
	"slices"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "go-unipoly")

	specs := []builtinSpec{
		{Name: "Int", File: "int", Builtin: "int64", Kind: "integer", Description: "a signed 64-bit integer"},
		{Name: "Float", File: "float", Builtin: "float64", Kind: "float", Description: "a double precision float",
			Float: true},
	}

	for _, spec := range specs {
		assertNoError(bgen.Generate(spec, "number", "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../%s.go", spec.File),
				Templates: []string{"builtin.go.tmpl"},
			},
			bavard.Entry{
				File:      fmt.Sprintf("../../%s_test.go", spec.File),
				Templates: []string{"builtin.test.go.tmpl"},
			},
		), "for number \"%s\"", spec.Name)
	}
	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

// builtinSpec describes a coefficient type which is a thin wrapper around one
// of Go's builtin numeric types.
type builtinSpec struct {
	// Name of the generated type
	Name string
	// File name (without extension) of the generated file
	File string
	// Builtin type being wrapped
	Builtin string
	// Kind is used in parse errors
	Kind string
	// Description is used in doc comments
	Description string
	// Float indicates a floating point builtin
	Float bool
}

func assertNoError(err error, contextAndArgs ...any) {
	if err != nil {
		msg := err.Error()

		if len(contextAndArgs) > 0 {
			allArgs := append(slices.Clone(contextAndArgs[1:]), err)
			msg = fmt.Sprintf(contextAndArgs[0].(string)+": %v", allArgs...)
		}

		fmt.Println(msg)
		os.Exit(1)
	}
}
