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

package harness

import (
	"bytes"
	"context"
	"os/exec"
	"strings"
	"testing"

	"github.com/cpast-go/cpast/pkg/clex"
	"github.com/cpast-go/cpast/pkg/langrunner"
)

func requirePython3(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("python3"); err != nil {
		t.Skip("python3 not found on PATH")
	}
}

func newStore(t *testing.T, correctSrc, testSrc string) *langrunner.ProgramStore {
	t.Helper()
	correct, err := langrunner.NewSourceDescriptorFromText(correctSrc, langrunner.Python)
	if err != nil {
		t.Fatalf("NewSourceDescriptorFromText(correct): %v", err)
	}
	test, err := langrunner.NewSourceDescriptorFromText(testSrc, langrunner.Python)
	if err != nil {
		t.Fatalf("NewSourceDescriptorFromText(test): %v", err)
	}
	return langrunner.NewProgramStore(correct, test)
}

func TestHarnessRunAllMatch(t *testing.T) {
	requirePython3(t)
	ast, err := clex.Parse("N[1,100]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	store := newStore(t, "print(input())\n", "print(input())\n")

	var buf bytes.Buffer
	h := New(store, ast, 5, false, langrunner.Limits{})
	h.Output = &buf

	summary := h.Run(context.Background())
	if summary.Total != 5 {
		t.Errorf("Total = %d, want 5", summary.Total)
	}
	if summary.Ran != 5 {
		t.Errorf("Ran = %d, want 5 (no mismatch should stop early)", summary.Ran)
	}
	if summary.Failures != 0 {
		t.Errorf("Failures = %d, want 0, report:\n%s", summary.Failures, buf.String())
	}
	if summary.First != nil {
		t.Errorf("First = %+v, want nil", summary.First)
	}
}

func TestHarnessRunStopsOnFirstMismatch(t *testing.T) {
	requirePython3(t)
	ast, err := clex.Parse("N[1,100]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	store := newStore(t, "print(input())\n", "print('wrong')\n")

	var buf bytes.Buffer
	h := New(store, ast, 20, false, langrunner.Limits{})
	h.Output = &buf

	summary := h.Run(context.Background())
	if summary.Failures == 0 {
		t.Fatal("Failures = 0, want at least 1")
	}
	if summary.First == nil {
		t.Fatal("First = nil, want a recorded mismatch")
	}
	if summary.Ran <= 0 || summary.Ran > summary.Total {
		t.Errorf("Ran = %d, want in (0, Total = %d]", summary.Ran, summary.Total)
	}
	if buf.Len() == 0 {
		t.Error("report output is empty, want a rendered mismatch")
	}
}

func TestHarnessRunReportsRunErrorNotMismatch(t *testing.T) {
	requirePython3(t)
	ast, err := clex.Parse("N[1,100]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	store := newStore(t, "print(input())\n", "import sys; sys.exit(1)\n")

	var buf bytes.Buffer
	h := New(store, ast, 5, false, langrunner.Limits{})
	h.Output = &buf

	summary := h.Run(context.Background())
	if summary.Failures == 0 {
		t.Fatal("Failures = 0, want at least 1")
	}
	if summary.First != nil {
		t.Errorf("First = %+v, want nil: a run failure is not a mismatch", summary.First)
	}
	report := buf.String()
	if !strings.Contains(report, "error") {
		t.Errorf("report = %q, want it routed through printRunError (\"error\")", report)
	}
	if strings.Contains(report, "mismatch") {
		t.Errorf("report = %q, want no \"mismatch\" label for a run failure", report)
	}
}

func TestHarnessRunNoStopRunsAllIterations(t *testing.T) {
	requirePython3(t)
	ast, err := clex.Parse("N[1,100]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	store := newStore(t, "print(input())\n", "print('wrong')\n")

	h := New(store, ast, 6, true, langrunner.Limits{})
	var buf bytes.Buffer
	h.Output = &buf

	summary := h.Run(context.Background())
	if summary.Ran != 6 {
		t.Errorf("Ran = %d, want 6 (NoStop should run every iteration)", summary.Ran)
	}
	if summary.Failures != 6 {
		t.Errorf("Failures = %d, want 6 (NoStop should run every iteration)", summary.Failures)
	}
}
