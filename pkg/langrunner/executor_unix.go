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

//go:build unix

package langrunner

import (
	"fmt"
	"os"
)

// withMemoryLimit wraps program in a shell that sets a virtual-memory
// ulimit before exec'ing it. Go's exec.Cmd has no pre-exec hook (unlike
// Rust's Command::pre_exec), so the rlimit has to be applied by the child
// shell itself rather than from the parent between fork and exec.
func withMemoryLimit(program string, args []string, limitBytes int64) (string, []string) {
	kb := limitBytes / 1024
	if kb < 1 {
		kb = 1
	}
	script := fmt.Sprintf(`ulimit -v %d; exec "$0" "$@"`, kb)
	shellArgs := append([]string{"-c", script, program}, args...)
	return "sh", shellArgs
}

// startMemoryMonitor is a no-op on unix: withMemoryLimit already enforces
// the ceiling via RLIMIT_AS before the program's first instruction runs.
func startMemoryMonitor(_ *os.Process, _ int64) memoryMonitor {
	return nil
}
