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

// Package token defines the lexical tokens of the clex language.
package token

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	// Structural punctuation.
	LeftParen Kind = iota
	RightParen
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace
	Comma
	Backslash
	QuestionColon

	// Primitive type tags.
	Integer
	Float
	StringTag

	// Named character-class atoms.
	CharAlpha
	CharNum
	CharNewline
	CharAlnum
	CharUpper
	CharLower
	CharAll

	// Literals.
	LiteralNumber
	LiteralString

	// End of input.
	Eof
)

// String renders k for diagnostics.
func (k Kind) String() string {
	switch k {
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	case LeftBracket:
		return "["
	case RightBracket:
		return "]"
	case LeftBrace:
		return "{"
	case RightBrace:
		return "}"
	case Comma:
		return ","
	case Backslash:
		return "\\"
	case QuestionColon:
		return "?:"
	case Integer:
		return "N"
	case Float:
		return "F"
	case StringTag:
		return "S"
	case CharAlpha:
		return "@CH_ALPHA@"
	case CharNum:
		return "@CH_NUM@"
	case CharNewline:
		return "@CH_NEWLINE@"
	case CharAlnum:
		return "@CH_ALNUM@"
	case CharUpper:
		return "@CH_UPPER@"
	case CharLower:
		return "@CH_LOWER@"
	case CharAll:
		return "@CH_ALL@"
	case LiteralNumber:
		return "number literal"
	case LiteralString:
		return "string literal"
	case Eof:
		return "end of input"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Span is a half-open byte range [Start, End) into the original source.
type Span struct {
	Start int
	End   int
}

// Token is a single lexical unit with its originating span.
type Token struct {
	Kind   Kind
	Lexeme string
	Span   Span

	// Number is the parsed value for LiteralNumber tokens.
	Number int64
	// Text is the de-quoted/unwrapped value for LiteralString tokens.
	Text string
}
