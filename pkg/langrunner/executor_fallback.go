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

//go:build !unix && !windows

package langrunner

import "os"

// withMemoryLimit and startMemoryMonitor are no-ops on platforms that are
// neither unix nor windows: memory limits are accepted but not enforced
// there.
func withMemoryLimit(program string, args []string, _ int64) (string, []string) {
	return program, args
}

func startMemoryMonitor(_ *os.Process, _ int64) memoryMonitor {
	return nil
}
