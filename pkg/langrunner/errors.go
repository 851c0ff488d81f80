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
	"fmt"
	"strings"
	"time"
)

// Kind discriminates the ways a Runner operation can fail.
type Kind int

const (
	KindUnsupportedLanguage Kind = iota
	KindFileNotFound
	KindWarmupCompileFatal
	KindProcessFailed
	KindTimeLimitExceeded
)

func (k Kind) String() string {
	switch k {
	case KindUnsupportedLanguage:
		return "UnsupportedLanguage"
	case KindFileNotFound:
		return "FileNotFound"
	case KindWarmupCompileFatal:
		return "WarmupCompileFatal"
	case KindProcessFailed:
		return "ProcessFailed"
	case KindTimeLimitExceeded:
		return "TimeLimitExceeded"
	default:
		return "Unknown"
	}
}

// Error reports a failure from the langrunner package. It mirrors the
// Subsystem-tagged rendering clex.Error uses, so a harness printing errors
// from both packages gets a consistent "[<Subsystem> Error] ..." shape.
type Error struct {
	Kind    Kind
	Path    string
	Command string
	Args    []string
	Limit   time.Duration
	Stdout  string
	Stderr  string
	Err     error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("[Runner Error] ")
	b.WriteString(e.Kind.String())
	switch e.Kind {
	case KindUnsupportedLanguage, KindFileNotFound:
		fmt.Fprintf(&b, ": %s", e.Path)
	case KindWarmupCompileFatal:
		fmt.Fprintf(&b, ": %s", e.Path)
		if e.Err != nil {
			fmt.Fprintf(&b, ": %v", e.Err)
		}
	case KindTimeLimitExceeded:
		fmt.Fprintf(&b, ": %s exceeded %s", commandLine(e.Command, e.Args), e.Limit)
	case KindProcessFailed:
		// Also covers a memory-limit kill: both the unix ulimit wrapper and
		// the Windows working-set monitor kill the process, which cmd.Wait
		// then reports as a plain non-zero exit/signal, not a distinct kind.
		fmt.Fprintf(&b, ": %s", commandLine(e.Command, e.Args))
		if e.Err != nil {
			fmt.Fprintf(&b, ": %v", e.Err)
		}
		if e.Stderr != "" {
			fmt.Fprintf(&b, "\nstderr: %s", e.Stderr)
		}
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error carrying the same Kind, so callers
// can use errors.Is(err, &Error{Kind: KindFileNotFound}) as a sentinel check.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

func commandLine(program string, args []string) string {
	return strings.TrimSpace(program + " " + strings.Join(args, " "))
}
