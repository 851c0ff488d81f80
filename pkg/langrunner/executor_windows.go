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

//go:build windows

package langrunner

import (
	"os"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// withMemoryLimit is a no-op on Windows: there is no per-process rlimit
// equivalent to wrap the command line with, so memory is instead enforced
// by pollingMemoryMonitor after the process starts.
func withMemoryLimit(program string, args []string, _ int64) (string, []string) {
	return program, args
}

type pollingMemoryMonitor struct {
	stopCh chan struct{}
	done   chan struct{}
}

func (m *pollingMemoryMonitor) stop() {
	close(m.stopCh)
	<-m.done
}

// startMemoryMonitor polls the process's working set every 100ms and kills
// it if it crosses limitBytes, mirroring the sysinfo-polling MemoryMonitor
// the non-unix Rust runner uses.
func startMemoryMonitor(proc *os.Process, limitBytes int64) memoryMonitor {
	m := &pollingMemoryMonitor{stopCh: make(chan struct{}), done: make(chan struct{})}
	go func() {
		defer close(m.done)
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-m.stopCh:
				return
			case <-ticker.C:
				used, err := workingSetBytes(proc.Pid)
				if err == nil && used > uint64(limitBytes) {
					proc.Kill()
					return
				}
			}
		}
	}()
	return m
}

func workingSetBytes(pid int) (uint64, error) {
	handle, err := windows.OpenProcess(windows.PROCESS_QUERY_INFORMATION|windows.PROCESS_VM_READ, false, uint32(pid))
	if err != nil {
		return 0, err
	}
	defer windows.CloseHandle(handle)

	var counters windows.PROCESS_MEMORY_COUNTERS
	if err := windows.GetProcessMemoryInfo(handle, &counters, uint32(unsafe.Sizeof(counters))); err != nil {
		return 0, err
	}
	return uint64(counters.WorkingSetSize), nil
}
