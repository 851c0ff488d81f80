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
	"bytes"
	"context"
	"os/exec"
	"time"
)

// Limits bounds a single process invocation. A zero field leaves that
// dimension unbounded.
type Limits struct {
	TimeLimitMS     int64
	MemoryLimitByte int64
}

// WithTimeLimit returns a copy of l with its wall-clock budget set.
func (l Limits) WithTimeLimit(ms int64) Limits {
	l.TimeLimitMS = ms
	return l
}

// WithMemoryLimit returns a copy of l with its memory ceiling set: a
// virtual address-space limit on unix, a working-set limit on Windows.
func (l Limits) WithMemoryLimit(bytes int64) Limits {
	l.MemoryLimitByte = bytes
	return l
}

// memoryMonitor polls a running process's resident memory and kills it if
// it crosses a ceiling the platform can't enforce up front (see
// executor_unix.go and executor_windows.go for the two enforcement
// strategies).
type memoryMonitor interface {
	stop()
}

// runProgramWithInput starts program with args, feeds stdin to it, and
// waits for it to exit, applying limits as the current platform knows how.
// It returns the captured stdout on a clean exit.
func runProgramWithInput(ctx context.Context, program string, args []string, stdin string, limits Limits) (string, error) {
	runCtx := ctx
	cancel := func() {}
	if limits.TimeLimitMS > 0 {
		runCtx, cancel = context.WithTimeout(ctx, time.Duration(limits.TimeLimitMS)*time.Millisecond)
	}
	defer cancel()

	realProgram, realArgs := program, args
	if limits.MemoryLimitByte > 0 {
		realProgram, realArgs = withMemoryLimit(program, args, limits.MemoryLimitByte)
	}

	cmd := exec.CommandContext(runCtx, realProgram, realArgs...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Stdin = bytes.NewBufferString(stdin)

	if err := cmd.Start(); err != nil {
		return "", &Error{Kind: KindProcessFailed, Command: program, Args: args, Err: err}
	}

	var monitor memoryMonitor
	if limits.MemoryLimitByte > 0 {
		monitor = startMemoryMonitor(cmd.Process, limits.MemoryLimitByte)
	}

	err := cmd.Wait()
	if monitor != nil {
		monitor.stop()
	}

	if runCtx.Err() == context.DeadlineExceeded {
		return "", &Error{
			Kind:    KindTimeLimitExceeded,
			Command: program,
			Args:    args,
			Limit:   time.Duration(limits.TimeLimitMS) * time.Millisecond,
		}
	}
	if err != nil {
		return "", &Error{
			Kind:    KindProcessFailed,
			Command: program,
			Args:    args,
			Stdout:  stdout.String(),
			Stderr:  stderr.String(),
			Err:     err,
		}
	}
	return stdout.String(), nil
}

// runProgram is runProgramWithInput with empty stdin, used for compiler
// invocations that don't read from standard input.
func runProgram(ctx context.Context, program string, args []string, limits Limits) (string, error) {
	return runProgramWithInput(ctx, program, args, "", limits)
}
