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

// Package harness drives differential testing: it repeatedly generates an
// input from a clex grammar, runs the known-correct program and the
// program under test against it, and reports any divergence.
package harness

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/cpast-go/cpast/pkg/clex"
	"github.com/cpast-go/cpast/pkg/langrunner"
)

// Harness owns everything one "cpast test" invocation needs: the program
// pair, the input grammar, and the run policy.
type Harness struct {
	Store      *langrunner.ProgramStore
	AST        clex.AST
	Iterations int
	NoStop     bool
	Limits     langrunner.Limits
	Output     io.Writer
}

// New builds a Harness with sensible defaults (os.Stdout for report
// output).
func New(store *langrunner.ProgramStore, ast clex.AST, iterations int, noStop bool, limits langrunner.Limits) *Harness {
	return &Harness{
		Store:      store,
		AST:        ast,
		Iterations: iterations,
		NoStop:     noStop,
		Limits:     limits,
		Output:     os.Stdout,
	}
}

// Summary is the outcome of a full Run.
type Summary struct {
	Total    int
	Ran      int
	Failures int
	First    *Mismatch
}

// Run fires Iterations goroutines, each generating its own input and
// comparing the two programs' outputs, bounded by a semaphore sized to
// GOMAXPROCS. Unless NoStop is set, no new task starts once the first
// mismatch is observed; tasks already in flight still finish.
func (h *Harness) Run(ctx context.Context) Summary {
	debug := os.Getenv("CPAST_DEBUG") != ""

	sem := make(chan struct{}, runtime.GOMAXPROCS(0))
	var wg sync.WaitGroup
	var hasFailed atomic.Bool
	var ran int32
	var failures int32
	var reportMu sync.Mutex
	var first *Mismatch

	for i := 0; i < h.Iterations; i++ {
		if !h.NoStop && hasFailed.Load() {
			break
		}
		sem <- struct{}{}
		wg.Add(1)
		go func(iteration int) {
			defer wg.Done()
			defer func() { <-sem }()

			if !h.NoStop && hasFailed.Load() {
				return
			}
			atomic.AddInt32(&ran, 1)

			gen := clex.NewGenerator(h.AST)
			input, err := gen.Generate()
			if err != nil {
				atomic.AddInt32(&failures, 1)
				hasFailed.Store(true)
				reportMu.Lock()
				printRunError(h.Output, iteration, "", err)
				reportMu.Unlock()
				return
			}

			result := h.Store.RunAndCompare(ctx, input, h.Limits)
			if result.CorrectRunErr != nil || result.TestRunErr != nil {
				atomic.AddInt32(&failures, 1)
				hasFailed.Store(true)
				reportMu.Lock()
				if result.CorrectRunErr != nil {
					printRunError(h.Output, iteration, input, result.CorrectRunErr)
				}
				if result.TestRunErr != nil {
					printRunError(h.Output, iteration, input, result.TestRunErr)
				}
				reportMu.Unlock()
				return
			}
			if result.Different {
				atomic.AddInt32(&failures, 1)
				hasFailed.Store(true)
				m := Mismatch{
					Iteration: iteration,
					Input:     input,
					Correct:   result.CorrectOutput,
					Test:      result.TestOutput,
				}
				reportMu.Lock()
				if first == nil {
					first = &m
				}
				printMismatch(h.Output, m)
				reportMu.Unlock()
				return
			}

			if debug {
				reportMu.Lock()
				fmt.Fprintf(h.Output, "iteration %d: match\n", iteration)
				reportMu.Unlock()
			}
		}(i)
	}

	wg.Wait()

	return Summary{
		Total:    h.Iterations,
		Ran:      int(ran),
		Failures: int(failures),
		First:    first,
	}
}
