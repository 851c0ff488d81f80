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

package clex

import (
	"errors"
	"strings"
	"testing"

	"github.com/openconfig/gnmi/errdiff"
)

func TestErrorMessageFormat(t *testing.T) {
	_, err := Tokenize("N#")
	if diff := errdiff.Substring(err, "[Lexer Error] unexpected character"); diff != "" {
		t.Error(diff)
	}
}

func TestErrorSnippetHasCaret(t *testing.T) {
	_, err := Parse("N[1 5]")
	if err == nil {
		t.Fatal("Parse succeeded, want error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "1 |") {
		t.Errorf("message missing gutter line: %s", msg)
	}
	if !strings.Contains(msg, "^") {
		t.Errorf("message missing caret: %s", msg)
	}
}

func TestErrorIsSentinel(t *testing.T) {
	_, err := Tokenize("'unterminated")
	sentinel := &Error{Kind: KindUnclosedSingleQuotes}
	if !errors.Is(err, sentinel) {
		t.Errorf("errors.Is(%v, KindUnclosedSingleQuotes sentinel) = false, want true", err)
	}
	other := &Error{Kind: KindUnknownCharacter}
	if errors.Is(err, other) {
		t.Errorf("errors.Is(%v, KindUnknownCharacter sentinel) = true, want false", err)
	}
}

func TestSubsystemString(t *testing.T) {
	for _, tt := range []struct {
		s    Subsystem
		want string
	}{
		{LexerError, "Lexer"},
		{ParserError, "Parser"},
		{GeneratorError, "Generator"},
	} {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("Subsystem(%d).String() = %q, want %q", tt.s, got, tt.want)
		}
	}
}
