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

// Package clex implements the lexer, recursive-descent parser, and random
// testcase generator for the clex input-description language.
package clex

import (
	"strconv"
	"strings"

	"github.com/cpast-go/cpast/pkg/clex/token"
	"github.com/rivo/uniseg"
)

// lexer scans a clex source string into a token stream. It works over
// extended grapheme clusters (via rivo/uniseg) so multi-byte characters in
// string literals and custom charsets are never split, while token spans
// remain byte offsets into the original source.
type lexer struct {
	src      string
	clusters []string
	offsets  []int // offsets[i] is the byte offset of clusters[i]; offsets[len(clusters)] == len(src)

	start  int // cluster index where the current token began
	cursor int // cluster index of the next unread cluster

	tokens []token.Token
}

// Tokenize scans src and returns its token stream, always terminated by an
// Eof token, or the first lexical error encountered.
func Tokenize(src string) ([]token.Token, error) {
	l := newLexer(src)
	for !l.atEnd() {
		l.start = l.cursor
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}
	end := len(l.src)
	l.tokens = append(l.tokens, token.Token{Kind: token.Eof, Span: token.Span{Start: end, End: end}})
	return l.tokens, nil
}

func newLexer(src string) *lexer {
	var clusters []string
	var offsets []int
	pos := 0
	g := uniseg.NewGraphemes(src)
	for g.Next() {
		c := g.Str()
		offsets = append(offsets, pos)
		clusters = append(clusters, c)
		pos += len(c)
	}
	offsets = append(offsets, pos)
	return &lexer{src: src, clusters: clusters, offsets: offsets}
}

func (l *lexer) atEnd() bool { return l.cursor >= len(l.clusters) }

func (l *lexer) advance() string {
	c := l.clusters[l.cursor]
	l.cursor++
	return c
}

func (l *lexer) peek() string {
	if l.atEnd() {
		return ""
	}
	return l.clusters[l.cursor]
}

func (l *lexer) matchStr(expected string) bool {
	if l.atEnd() || l.clusters[l.cursor] != expected {
		return false
	}
	l.cursor++
	return true
}

func (l *lexer) byteAt(clusterIdx int) int { return l.offsets[clusterIdx] }
func (l *lexer) startByte() int            { return l.byteAt(l.start) }
func (l *lexer) curByte() int              { return l.byteAt(l.cursor) }

func (l *lexer) span() token.Span {
	return token.Span{Start: l.startByte(), End: l.curByte()}
}

func (l *lexer) addToken(kind token.Kind) {
	l.tokens = append(l.tokens, token.Token{
		Kind:   kind,
		Lexeme: l.src[l.startByte():l.curByte()],
		Span:   l.span(),
	})
}

func (l *lexer) errAt(kind Kind, start, end int) error {
	return &Error{Subsystem: LexerError, Kind: kind, Span: token.Span{Start: start, End: end}, Source: l.src}
}

func isDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

func (l *lexer) scanToken() error {
	c := l.advance()
	switch c {
	case "(":
		l.addToken(token.LeftParen)
	case ")":
		l.addToken(token.RightParen)
	case "[":
		l.addToken(token.LeftBracket)
	case "]":
		l.addToken(token.RightBracket)
	case "{":
		l.addToken(token.LeftBrace)
	case "}":
		l.addToken(token.RightBrace)
	case ",":
		l.addToken(token.Comma)
	case "\\":
		l.addToken(token.Backslash)
	case "N":
		l.addToken(token.Integer)
	case "F":
		l.addToken(token.Float)
	case "S":
		l.addToken(token.StringTag)
	case "@":
		return l.scanCharSet()
	case " ", "\t", "\r", "\n", "\r\n":
		// whitespace, no token; CRLF arrives as a single grapheme cluster
	case "'":
		return l.scanQuotedString()
	case "?":
		if l.matchStr(":") {
			l.addToken(token.QuestionColon)
		} else {
			return l.errAt(KindMissingColonAfterQuestionMark, l.startByte(), l.curByte())
		}
	default:
		if c == "-" || isDigit(c) {
			return l.scanNumber(c)
		}
		return l.errAt2(KindUnknownCharacter, c)
	}
	return nil
}

func (l *lexer) errAt2(kind Kind, character string) error {
	e := l.errAt(kind, l.startByte(), l.curByte()).(*Error)
	e.Character = character
	return e
}

func (l *lexer) scanNumber(first string) error {
	if first == "-" && !isDigit(l.peek()) {
		return l.errAt(KindMissingNumberAfterNegativeSign, l.startByte(), l.curByte())
	}
	for isDigit(l.peek()) {
		l.cursor++
	}
	text := l.src[l.startByte():l.curByte()]
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return l.errAt(KindNumericParsingError, l.startByte(), l.curByte())
	}
	l.tokens = append(l.tokens, token.Token{Kind: token.LiteralNumber, Lexeme: text, Span: l.span(), Number: n})
	return nil
}

func (l *lexer) scanCharSet() error {
	openByte := l.startByte()
	var sb strings.Builder
	for l.peek() != "@" && !l.atEnd() {
		sb.WriteString(l.advance())
	}
	if l.atEnd() {
		return l.errAt(KindUnclosedAtSymbol, openByte, l.curByte())
	}
	name := strings.ToUpper(strings.TrimSpace(sb.String()))
	kind, ok := charSetKind(name)
	if !ok {
		return l.errAt(KindInvalidCharacterSet, openByte, l.curByte())
	}
	l.matchStr("@")
	l.tokens = append(l.tokens, token.Token{Kind: kind, Lexeme: l.src[openByte:l.curByte()], Span: token.Span{Start: openByte, End: l.curByte()}})
	return nil
}

func charSetKind(name string) (token.Kind, bool) {
	switch name {
	case "CH_ALPHA":
		return token.CharAlpha, true
	case "CH_NUM":
		return token.CharNum, true
	case "CH_NEWLINE":
		return token.CharNewline, true
	case "CH_ALNUM":
		return token.CharAlnum, true
	case "CH_UPPER":
		return token.CharUpper, true
	case "CH_LOWER":
		return token.CharLower, true
	case "CH_ALL":
		return token.CharAll, true
	default:
		return 0, false
	}
}

// scanQuotedString reads a single-quoted literal, interpreting the
// standard ASCII escapes documented in spec.md §6 (\n \t \r \\ \' \" \0 \a
// \b \f \v); any other backslash escape is passed through literally.
func (l *lexer) scanQuotedString() error {
	openByte := l.startByte()
	var sb strings.Builder
	for l.peek() != "'" && !l.atEnd() {
		c := l.advance()
		if c == "\\" && !l.atEnd() {
			sb.WriteString(unescape(l.advance()))
			continue
		}
		sb.WriteString(c)
	}
	if l.atEnd() {
		return l.errAt(KindUnclosedSingleQuotes, openByte, l.curByte())
	}
	l.matchStr("'")
	l.tokens = append(l.tokens, token.Token{
		Kind:   token.LiteralString,
		Lexeme: l.src[openByte:l.curByte()],
		Span:   token.Span{Start: openByte, End: l.curByte()},
		Text:   sb.String(),
	})
	return nil
}

func unescape(c string) string {
	switch c {
	case "n":
		return "\n"
	case "t":
		return "\t"
	case "r":
		return "\r"
	case "\\":
		return "\\"
	case "'":
		return "'"
	case "\"":
		return "\""
	case "0":
		return "\x00"
	case "a":
		return "\a"
	case "b":
		return "\b"
	case "f":
		return "\f"
	case "v":
		return "\v"
	default:
		return c
	}
}
