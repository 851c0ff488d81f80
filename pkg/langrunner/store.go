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

package langrunner

import (
	"context"
)

// ProgramStore pairs the known-correct solution with the program under
// test so both can be run against the same input and compared.
type ProgramStore struct {
	Correct *SourceDescriptor
	Test    *SourceDescriptor
}

// NewProgramStore builds a store from two already-resolved descriptors.
func NewProgramStore(correct, test *SourceDescriptor) *ProgramStore {
	return &ProgramStore{Correct: correct, Test: test}
}

// Warmup compiles both programs, if they need compiling, before any input
// is run against them.
func (s *ProgramStore) Warmup(ctx context.Context, force bool) error {
	if err := s.Correct.Warmup(ctx, force); err != nil {
		return err
	}
	return s.Test.Warmup(ctx, force)
}

// RunResult is the outcome of running both programs on one input.
type RunResult struct {
	Different     bool
	CorrectOutput string
	TestOutput    string
	CorrectRunErr error
	TestRunErr    error
}

// RunAndCompare runs the correct program and the program under test on the
// same stdin and reports whether their outputs diverge. Comparison is
// byte-exact, including trailing newlines: the two programs are either
// identical or they're not, with no normalization step in between.
// CorrectRunErr/TestRunErr are left for the caller to inspect — a program
// that failed to run (timeout, OOM, non-zero exit) is not the same thing
// as a mismatch, and Different is not set in that case.
func (s *ProgramStore) RunAndCompare(ctx context.Context, stdin string, limits Limits) RunResult {
	correctOut, correctErr := s.Correct.Run(ctx, stdin, limits)
	testOut, testErr := s.Test.Run(ctx, stdin, limits)

	result := RunResult{
		CorrectOutput: correctOut,
		TestOutput:    testOut,
		CorrectRunErr: correctErr,
		TestRunErr:    testErr,
	}
	if correctErr != nil || testErr != nil {
		return result
	}
	result.Different = correctOut != testOut
	return result
}
