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

import "github.com/cpast-go/cpast/pkg/clex/token"

// parser is a one-token-lookahead recursive-descent parser over a token
// stream already produced by the lexer.
type parser struct {
	tokens       []token.Token
	pos          int
	groupCounter uint64
	src          string
}

// Parse tokenizes and parses src into an AST, or returns the first lexical
// or syntax error encountered.
func Parse(src string) (AST, error) {
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{tokens: toks, src: src}

	var ast AST
	for !p.atEnd() {
		expr, err := p.parseUnitExpr()
		if err != nil {
			return nil, err
		}
		ast = append(ast, expr)
	}
	return ast, nil
}

func (p *parser) peek() token.Token { return p.tokens[p.pos] }

func (p *parser) atEnd() bool { return p.peek().Kind == token.Eof }

func (p *parser) advance() token.Token {
	t := p.tokens[p.pos]
	if t.Kind != token.Eof {
		p.pos++
	}
	return t
}

func (p *parser) check(k token.Kind) bool { return p.peek().Kind == k }

func (p *parser) matchKind(k token.Kind) bool {
	if p.check(k) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) errAt(kind Kind, t token.Token) error {
	return &Error{Subsystem: ParserError, Kind: kind, Span: t.Span, Source: p.src, TokenKind: t.Kind}
}

// errExpected reports that expected was required at t's position but not
// found; TokenKind carries the expected kind, matching the original
// parser's `UnexpectedToken(expected)` variant.
func (p *parser) errExpected(expected token.Kind, t token.Token) error {
	return &Error{Subsystem: ParserError, Kind: KindUnexpectedToken, Span: t.Span, Source: p.src, TokenKind: expected}
}

func (p *parser) parseUnitExpr() (UnitExpression, error) {
	tok := p.advance()
	switch tok.Kind {
	case token.Integer:
		return p.parsePrimitiveInt()
	case token.Float:
		return p.parsePrimitiveFloat()
	case token.StringTag:
		return p.parsePrimitiveString()
	case token.LeftParen:
		return p.parseGroup()
	default:
		return nil, p.errAt(KindInvalidTokenFound, tok)
	}
}

func (p *parser) parsePrimitiveInt() (UnitExpression, error) {
	minR, maxR, err := p.parseRange()
	if err != nil {
		return nil, err
	}
	rep, err := p.parseQuantifier()
	if err != nil {
		return nil, err
	}
	return Primitive{DataType: IntegerType{Min: minR, Max: maxR}, Repetition: rep}, nil
}

func (p *parser) parsePrimitiveFloat() (UnitExpression, error) {
	minR, maxR, err := p.parseRange()
	if err != nil {
		return nil, err
	}
	rep, err := p.parseQuantifier()
	if err != nil {
		return nil, err
	}
	return Primitive{DataType: FloatType{Min: minR, Max: maxR}, Repetition: rep}, nil
}

func (p *parser) parsePrimitiveString() (UnitExpression, error) {
	minR, maxR, cs, err := p.parseStringModifiers()
	if err != nil {
		return nil, err
	}
	rep, err := p.parseQuantifier()
	if err != nil {
		return nil, err
	}
	return Primitive{DataType: StringType{Min: minR, Max: maxR, CharSet: cs}, Repetition: rep}, nil
}

// parseGroup parses the tail of a "(" already consumed by the caller:
// either a CapturingTail ("N" PositiveRange? ")") or a NonCapturingTail
// ("?:" UnitExpr* ")" Quantifier?).
func (p *parser) parseGroup() (UnitExpression, error) {
	if p.matchKind(token.Integer) {
		minR, maxR, err := p.parsePositiveRange()
		if err != nil {
			return nil, err
		}
		if !p.matchKind(token.RightParen) {
			return nil, p.errExpected(token.RightParen, p.peek())
		}
		p.groupCounter++
		return CapturingGroup{GroupNumber: p.groupCounter, Min: minR, Max: maxR}, nil
	}

	if p.matchKind(token.QuestionColon) {
		lastIndex, ok := p.peekMatchingParen()
		if !ok {
			return nil, p.errAt(KindMissingClosingParensNonCapturingGroup, p.peek())
		}

		var body []UnitExpression
		for p.pos < lastIndex {
			expr, err := p.parseUnitExpr()
			if err != nil {
				return nil, err
			}
			body = append(body, expr)
		}

		if !p.matchKind(token.RightParen) {
			return nil, p.errExpected(token.RightParen, p.peek())
		}

		rep, err := p.parseQuantifier()
		if err != nil {
			return nil, err
		}
		return NonCapturingGroup{Body: body, Repetition: rep}, nil
	}

	return nil, p.errAt(KindUnclosedParens, p.peek())
}

// peekMatchingParen scans forward from the current position, tracking
// parenthesis depth, to find the index of the ")" that closes the "(" this
// non-capturing group body started from, without consuming any tokens.
func (p *parser) peekMatchingParen() (int, bool) {
	depth := 0
	for i := p.pos; i < len(p.tokens) && p.tokens[i].Kind != token.Eof; i++ {
		switch p.tokens[i].Kind {
		case token.LeftParen:
			depth++
		case token.RightParen:
			if depth == 0 {
				return i, true
			}
			depth--
		}
	}
	return 0, false
}

func (p *parser) parseQuantifier() (PositiveRef, error) {
	if !p.matchKind(token.LeftBrace) {
		return PosLiteral(DefaultQuantifierValue), nil
	}
	rep, err := p.parsePosRef(DefaultQuantifierValue)
	if err != nil {
		return PositiveRef{}, err
	}
	if !p.matchKind(token.RightBrace) {
		return PositiveRef{}, p.errExpected(token.RightBrace, p.peek())
	}
	return rep, nil
}

// parseStringModifiers parses an optional "[min,max,charset]" tail where
// every field may be omitted. Unlike a fixed-arity tuple, the charset field
// may immediately follow a single comma when max is omitted: the parser
// decides by checking whether the token after the first comma is
// charset-shaped (a quoted string or a named class) rather than requiring
// both commas unconditionally.
func (p *parser) parseStringModifiers() (PositiveRef, PositiveRef, CharSet, error) {
	minR := PosLiteral(uint64(DefaultMinStringSize))
	maxR := PosLiteral(uint64(DefaultMaxStringSize))
	cs := DefaultCharSet

	if !p.matchKind(token.LeftBracket) {
		return minR, maxR, cs, nil
	}

	var err error
	minR, err = p.parsePosRef(uint64(DefaultMinStringSize))
	if err != nil {
		return PositiveRef{}, PositiveRef{}, CharSet{}, err
	}

	if !p.matchKind(token.Comma) {
		return PositiveRef{}, PositiveRef{}, CharSet{}, p.errAt(KindMissingCommaRangeExpression, p.peek())
	}

	if isCharSetToken(p.peek()) {
		cs, err = p.parseCharSet()
		if err != nil {
			return PositiveRef{}, PositiveRef{}, CharSet{}, err
		}
	} else {
		maxR, err = p.parsePosRef(uint64(DefaultMaxStringSize))
		if err != nil {
			return PositiveRef{}, PositiveRef{}, CharSet{}, err
		}
		if p.matchKind(token.Comma) {
			cs, err = p.parseCharSet()
			if err != nil {
				return PositiveRef{}, PositiveRef{}, CharSet{}, err
			}
		}
	}

	if !p.matchKind(token.RightBracket) {
		return PositiveRef{}, PositiveRef{}, CharSet{}, p.errAt(KindMissingSquareBracketsRangeExpression, p.peek())
	}
	return minR, maxR, cs, nil
}

func isCharSetToken(t token.Token) bool {
	switch t.Kind {
	case token.LiteralString, token.CharAlpha, token.CharNum, token.CharNewline,
		token.CharAlnum, token.CharUpper, token.CharLower, token.CharAll:
		return true
	default:
		return false
	}
}

// parseCharSet consumes one charset token. An unrecognized token is left
// unconsumed and the default charset is returned, mirroring the original
// parser's silent fallthrough.
func (p *parser) parseCharSet() (CharSet, error) {
	t := p.peek()
	switch t.Kind {
	case token.LiteralString:
		p.advance()
		return CharSet{Kind: CSCustom, Custom: t.Text}, nil
	case token.CharAlpha:
		p.advance()
		return CharSet{Kind: CSAlphabet}, nil
	case token.CharNum:
		p.advance()
		return CharSet{Kind: CSNumeric}, nil
	case token.CharNewline:
		p.advance()
		return CharSet{Kind: CSNewline}, nil
	case token.CharAlnum:
		p.advance()
		return CharSet{Kind: CSAlphaNumeric}, nil
	case token.CharUpper:
		p.advance()
		return CharSet{Kind: CSUppercase}, nil
	case token.CharLower:
		p.advance()
		return CharSet{Kind: CSLowerCase}, nil
	case token.CharAll:
		p.advance()
		return CharSet{Kind: CSAll}, nil
	default:
		return DefaultCharSet, nil
	}
}

// parseRange parses an optional signed "[Ref,Ref]" range, defaulting to
// [i32::MIN, i32::MAX] when the brackets are omitted.
func (p *parser) parseRange() (ReferenceType, ReferenceType, error) {
	minR := RefLiteral(DefaultRangeMinValue)
	maxR := RefLiteral(DefaultRangeMaxValue)

	if !p.matchKind(token.LeftBracket) {
		return minR, maxR, nil
	}

	var err error
	minR, err = p.parseRef(DefaultRangeMinValue)
	if err != nil {
		return ReferenceType{}, ReferenceType{}, err
	}
	if !p.matchKind(token.Comma) {
		return ReferenceType{}, ReferenceType{}, p.errAt(KindMissingCommaRangeExpression, p.peek())
	}
	maxR, err = p.parseRef(DefaultRangeMaxValue)
	if err != nil {
		return ReferenceType{}, ReferenceType{}, err
	}
	if !p.matchKind(token.RightBracket) {
		return ReferenceType{}, ReferenceType{}, p.errAt(KindMissingSquareBracketsRangeExpression, p.peek())
	}
	return minR, maxR, nil
}

// parsePositiveRange parses an optional unsigned "[PRef,PRef]" range,
// defaulting to [0, u32::MAX] when the brackets are omitted.
func (p *parser) parsePositiveRange() (PositiveRef, PositiveRef, error) {
	minR := PosLiteral(DefaultPositiveRangeMin)
	maxR := PosLiteral(DefaultPositiveRangeMax)

	if !p.matchKind(token.LeftBracket) {
		return minR, maxR, nil
	}

	var err error
	minR, err = p.parsePosRef(DefaultPositiveRangeMin)
	if err != nil {
		return PositiveRef{}, PositiveRef{}, err
	}
	if !p.matchKind(token.Comma) {
		return PositiveRef{}, PositiveRef{}, p.errAt(KindMissingCommaRangeExpression, p.peek())
	}
	maxR, err = p.parsePosRef(DefaultPositiveRangeMax)
	if err != nil {
		return PositiveRef{}, PositiveRef{}, err
	}
	if !p.matchKind(token.RightBracket) {
		return PositiveRef{}, PositiveRef{}, p.errAt(KindMissingSquareBracketsRangeExpression, p.peek())
	}
	return minR, maxR, nil
}

// parseRef parses "\" DIGITS | DIGITS | ε for a signed bound.
func (p *parser) parseRef(def int64) (ReferenceType, error) {
	if p.matchKind(token.Backslash) {
		t := p.peek()
		if t.Kind != token.LiteralNumber {
			return ReferenceType{}, p.errAt(KindMissingGroupNumber, t)
		}
		p.advance()
		if t.Number <= 0 {
			return ReferenceType{}, p.errAt(KindNegativeGroupNumber, t)
		}
		return RefGroup(uint64(t.Number)), nil
	}
	if p.check(token.LiteralNumber) {
		t := p.advance()
		return RefLiteral(t.Number), nil
	}
	return RefLiteral(def), nil
}

// parsePosRef parses "\" DIGITS | DIGITS | ε for an unsigned bound.
func (p *parser) parsePosRef(def uint64) (PositiveRef, error) {
	if p.matchKind(token.Backslash) {
		t := p.peek()
		if t.Kind != token.LiteralNumber {
			return PositiveRef{}, p.errAt(KindMissingGroupNumber, t)
		}
		p.advance()
		if t.Number <= 0 {
			return PositiveRef{}, p.errAt(KindNegativeGroupNumber, t)
		}
		return PosGroup(uint64(t.Number)), nil
	}
	if p.check(token.LiteralNumber) {
		t := p.advance()
		if t.Number < 0 {
			return PositiveRef{}, p.errAt(KindNegativeValueInPositiveReference, t)
		}
		return PosLiteral(uint64(t.Number)), nil
	}
	return PosLiteral(def), nil
}
