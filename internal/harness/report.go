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
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/kylelemons/godebug/diff"
)

// Mismatch is one failing iteration: the generated input and the two
// programs' diverging outputs.
type Mismatch struct {
	Iteration int
	Input     string
	Correct   string
	Test      string
}

// printMismatch renders m to w, line-diffing the two outputs. Callers hold
// the report mutex while calling this so concurrent failures don't
// interleave their output.
func printMismatch(w io.Writer, m Mismatch) {
	fail := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s at iteration %d\n", fail("mismatch"), m.Iteration)
	fmt.Fprintf(w, "input:\n%s\n", m.Input)
	fmt.Fprintf(w, "diff (-correct +test):\n%s\n", diff.Diff(m.Correct, m.Test))
}

func printRunError(w io.Writer, iteration int, input string, err error) {
	fail := color.New(color.FgRed, color.Bold).SprintFunc()
	fmt.Fprintf(w, "%s at iteration %d: %v\ninput:\n%s\n", fail("error"), iteration, err, input)
}
