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
	"testing"

	"github.com/cpast-go/cpast/pkg/clex/token"
	"github.com/google/go-cmp/cmp"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestTokenizeKinds(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   string
		want []token.Kind
	}{
		{"empty", "", []token.Kind{token.Eof}},
		{"structural", "()[]{}\\,", []token.Kind{
			token.LeftParen, token.RightParen, token.LeftBracket, token.RightBracket,
			token.LeftBrace, token.RightBrace, token.Backslash, token.Comma, token.Eof,
		}},
		{"tags", "N F S", []token.Kind{token.Integer, token.Float, token.StringTag, token.Eof}},
		{"questioncolon", "?:", []token.Kind{token.QuestionColon, token.Eof}},
		{"number", "N[3,3]", []token.Kind{
			token.Integer, token.LeftBracket, token.LiteralNumber, token.Comma,
			token.LiteralNumber, token.RightBracket, token.Eof,
		}},
		{"negative number", "N[-5,5]", []token.Kind{
			token.Integer, token.LeftBracket, token.LiteralNumber, token.Comma,
			token.LiteralNumber, token.RightBracket, token.Eof,
		}},
		{"charset", "@CH_NUM@", []token.Kind{token.CharNum, token.Eof}},
		{"quoted string", "'0'", []token.Kind{token.LiteralString, token.Eof}},
		{"whitespace skipped", "N \t\r\n F", []token.Kind{token.Integer, token.Float, token.Eof}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			toks, err := Tokenize(tt.in)
			if err != nil {
				t.Fatalf("Tokenize(%q) error: %v", tt.in, err)
			}
			if diff := cmp.Diff(tt.want, kinds(toks)); diff != "" {
				t.Errorf("Tokenize(%q) kinds mismatch (-want +got):\n%s", tt.in, diff)
			}
		})
	}
}

func TestTokenizeNumberPayload(t *testing.T) {
	toks, err := Tokenize("-17")
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if len(toks) != 2 || toks[0].Kind != token.LiteralNumber {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
	if toks[0].Number != -17 {
		t.Errorf("Number = %d, want -17", toks[0].Number)
	}
}

func TestTokenizeStringEscapes(t *testing.T) {
	toks, err := Tokenize(`'a\nb\tc\\d'`)
	if err != nil {
		t.Fatalf("Tokenize error: %v", err)
	}
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2", len(toks))
	}
	want := "a\nb\tc\\d"
	if toks[0].Text != want {
		t.Errorf("Text = %q, want %q", toks[0].Text, want)
	}
}

func TestTokenizeErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		in   string
		kind Kind
	}{
		{"unclosed quote", "'abc", KindUnclosedSingleQuotes},
		{"missing colon", "?x", KindMissingColonAfterQuestionMark},
		{"bare minus", "N[-,5]", KindMissingNumberAfterNegativeSign},
		{"unknown char", "N#", KindUnknownCharacter},
		{"unclosed at", "@CH_NUM", KindUnclosedAtSymbol},
		{"invalid charset name", "@CH_WHAT@", KindInvalidCharacterSet},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tokenize(tt.in)
			if err == nil {
				t.Fatalf("Tokenize(%q) succeeded, want error", tt.in)
			}
			cErr, ok := err.(*Error)
			if !ok {
				t.Fatalf("error is not *clex.Error: %v", err)
			}
			if cErr.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", cErr.Kind, tt.kind)
			}
		})
	}
}
