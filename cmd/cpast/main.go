// Copyright 2026 The Cpast Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command cpast differentially tests two competitive-programming solutions
// against randomly generated input, or prints a sample input generated from
// a clex grammar.
//
// Usage:
//
//	cpast test -c CORRECT -t TEST -g CLEX [-i N] [-n] [-f]
//	cpast generate CLEX [-c]
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/kylelemons/godebug/pretty"
	"github.com/pborman/getopt"

	"github.com/cpast-go/cpast/internal/harness"
	"github.com/cpast-go/cpast/pkg/clex"
	"github.com/cpast-go/cpast/pkg/langrunner"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "test":
		err = runTest(os.Args[2:])
	case "generate":
		err = runGenerate(os.Args[2:])
	case "-?", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "cpast: unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: cpast test -c CORRECT -t TEST -g CLEX [-i N] [-n] [-f]")
	fmt.Fprintln(os.Stderr, "       cpast generate CLEX [-c]")
}

func runTest(args []string) error {
	set := getopt.New()
	correct := set.StringLong("correct", 'c', "", "path to the known-correct solution")
	test := set.StringLong("test", 't', "", "path to the solution under test")
	grammar := set.StringLong("grammar", 'g', "", "clex grammar describing valid input")
	iterations := set.IntLong("iterations", 'i', 100, "number of inputs to try")
	noStop := set.BoolLong("no-stop", 'n', "keep running after the first mismatch")
	force := set.BoolLong("force-compile", 'f', "recompile even if the cached artifact looks fresh")
	set.Parse(args)

	if *correct == "" || *test == "" || *grammar == "" {
		return fmt.Errorf("cpast test: -c, -t, and -g are all required")
	}

	ast, err := clex.Parse(*grammar)
	if err != nil {
		return err
	}
	if os.Getenv("CPAST_DEBUG") != "" {
		fmt.Fprintln(os.Stderr, pretty.Sprint(ast))
	}

	correctDesc, err := langrunner.NewSourceDescriptor(*correct)
	if err != nil {
		return err
	}
	testDesc, err := langrunner.NewSourceDescriptor(*test)
	if err != nil {
		return err
	}

	ctx := context.Background()
	store := langrunner.NewProgramStore(correctDesc, testDesc)
	if err := store.Warmup(ctx, *force); err != nil {
		return err
	}

	h := harness.New(store, ast, *iterations, *noStop, langrunner.Limits{})
	summary := h.Run(ctx)

	fmt.Printf("ran %d/%d iterations, %d mismatch(es)\n", summary.Ran, summary.Total, summary.Failures)
	if summary.Failures > 0 {
		os.Exit(1)
	}
	return nil
}

func runGenerate(args []string) error {
	set := getopt.New()
	clipboard := set.BoolLong("clipboard", 'c', "copy the generated input to the clipboard")
	set.Parse(args)

	rest := set.Args()
	if len(rest) != 1 {
		return fmt.Errorf("cpast generate: expected exactly one CLEX argument")
	}
	if *clipboard {
		return fmt.Errorf("cpast generate: -c/--clipboard is not implemented; clipboard integration is out of scope")
	}

	ast, err := clex.Parse(rest[0])
	if err != nil {
		return err
	}
	if os.Getenv("CPAST_DEBUG") != "" {
		fmt.Fprintln(os.Stderr, pretty.Sprint(ast))
	}

	out, err := clex.NewGenerator(ast).Generate()
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
