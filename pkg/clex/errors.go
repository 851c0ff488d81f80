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
	"fmt"
	"strings"

	"github.com/cpast-go/cpast/pkg/clex/token"
)

// Subsystem names the component that raised an Error, used both in the
// rendered message and to decide whether a source snippet makes sense.
type Subsystem int

const (
	LexerError Subsystem = iota
	ParserError
	GeneratorError
)

func (s Subsystem) String() string {
	switch s {
	case LexerError:
		return "Lexer"
	case ParserError:
		return "Parser"
	case GeneratorError:
		return "Generator"
	default:
		return "Unknown"
	}
}

// Kind enumerates every distinguishable failure clex can report. Callers can
// read Error.Kind directly, or use errors.Is with an &Error{Kind: ...} value
// as the target (see Error.Is).
type Kind int

const (
	// Lexer kinds.
	KindUnclosedSingleQuotes Kind = iota
	KindMissingColonAfterQuestionMark
	KindMissingNumberAfterNegativeSign
	KindNumericParsingError
	KindUnknownCharacter
	KindUnclosedAtSymbol
	KindInvalidCharacterSet

	// Parser kinds.
	KindMissingClosingParensNonCapturingGroup
	KindUnclosedParens
	KindInvalidTokenFound
	KindMissingCommaRangeExpression
	KindMissingSquareBracketsRangeExpression
	KindNegativeGroupNumber
	KindMissingGroupNumber
	KindNegativeValueInPositiveReference
	KindUnexpectedToken

	// Generator kinds.
	KindInvalidRangeValues
	KindUnknownGroupNumber
)

// Error is the single error type for the lexer, parser, and generator.
// It renders as "[<Subsystem> Error] <message>" and, for Lexer/Parser
// errors with a known Source, appends a cargo-style source snippet with a
// caret under the offending span. The Kind name itself is not part of the
// rendered text; it is available only through the Kind field.
type Error struct {
	Subsystem Subsystem
	Kind      Kind
	Span      token.Span
	Source    string // original clex source, empty if unavailable

	// Optional payload, populated depending on Kind.
	TokenKind token.Kind
	Character string
	Group     uint64
	Min, Max  int64
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s Error] %s", e.Subsystem, e.message())
	if (e.Subsystem == LexerError || e.Subsystem == ParserError) && e.Source != "" {
		b.WriteString("\n")
		b.WriteString(e.snippet())
	}
	return b.String()
}

// Is reports whether target is an *Error carrying the same Kind, so callers
// can use errors.Is(err, &clex.Error{Kind: clex.KindXxx}) as a sentinel check.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func (e *Error) message() string {
	switch e.Kind {
	case KindUnclosedSingleQuotes:
		return "expected closing single quote (') after opening single quote (')"
	case KindMissingColonAfterQuestionMark:
		return "expected colon (:) after question mark (?)"
	case KindMissingNumberAfterNegativeSign:
		return "expected a number after negative sign (-)"
	case KindNumericParsingError:
		return "error parsing the number"
	case KindUnknownCharacter:
		return fmt.Sprintf("unexpected character: %q", e.Character)
	case KindUnclosedAtSymbol:
		return "couldn't find closing @ after opening one"
	case KindInvalidCharacterSet:
		return "invalid character set: expected CH_UPPER, CH_LOWER, CH_ALL, CH_NUM, CH_ALPHA, CH_ALNUM, CH_NEWLINE"
	case KindMissingClosingParensNonCapturingGroup:
		return "expected closing parenthesis ')' after opening parenthesis '(' in non-capturing group"
	case KindUnclosedParens:
		return "expected N) or ?:<UnitExpression> after opening parenthesis '('"
	case KindInvalidTokenFound:
		return fmt.Sprintf("invalid token found: %s", e.TokenKind)
	case KindMissingCommaRangeExpression:
		return "expected comma (,) after opening square bracket ('[') in range bound expression"
	case KindMissingSquareBracketsRangeExpression:
		return "expected closing square bracket (']') after opening square bracket ('[') in range bound expression"
	case KindNegativeGroupNumber:
		return "group number in back-reference can't be 0 or negative"
	case KindMissingGroupNumber:
		return "expected <group number> after '\\' in quantifiers"
	case KindNegativeValueInPositiveReference:
		return "literal can't be negative"
	case KindUnexpectedToken:
		return fmt.Sprintf("expected %s, but not found", e.TokenKind)
	case KindInvalidRangeValues:
		return fmt.Sprintf("upper bound should be greater than lower bound in [%d, %d]", e.Min, e.Max)
	case KindUnknownGroupNumber:
		return fmt.Sprintf("can't find specified group no. %d in the language", e.Group)
	default:
		return "unreachable clex error"
	}
}

// snippet renders a single-line cargo-style source excerpt with a caret
// line under e.Span, e.g.:
//
//	1 | N[1,-5]
//	  |      ^
func (e *Error) snippet() string {
	line, col, lineText := locate(e.Source, e.Span.Start)
	width := e.Span.End - e.Span.Start
	if width < 1 {
		width = 1
	}
	gutter := fmt.Sprintf("%d | ", line)
	pad := strings.Repeat(" ", len(gutter)-2) + "| "
	caret := strings.Repeat(" ", col) + strings.Repeat("^", width)
	return fmt.Sprintf("%s%s\n%s%s", gutter, lineText, pad, caret)
}

// locate returns the 1-based line number, 0-based column, and full text of
// the line containing byte offset pos within src.
func locate(src string, pos int) (line, col int, lineText string) {
	if pos > len(src) {
		pos = len(src)
	}
	line = 1
	lineStart := 0
	for i := 0; i < pos; i++ {
		if src[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	lineEnd := strings.IndexByte(src[lineStart:], '\n')
	if lineEnd == -1 {
		lineText = src[lineStart:]
	} else {
		lineText = src[lineStart : lineStart+lineEnd]
	}
	col = pos - lineStart
	return line, col, lineText
}
