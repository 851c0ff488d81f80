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

import "math"

// Default bounds applied when a range, modifier, or quantifier slot is
// omitted from clex source, per spec.md §4.2.
const (
	DefaultMinStringSize       = 1
	DefaultMaxStringSize       = 12
	DefaultQuantifierValue     = uint64(1)
	DefaultRangeMinValue       = int64(math.MinInt32)
	DefaultRangeMaxValue       = int64(math.MaxInt32)
	DefaultPositiveRangeMin    = uint64(0)
	DefaultPositiveRangeMax    = uint64(math.MaxUint32)
)

// AST is an ordered program of top-level unit expressions.
type AST []UnitExpression

// UnitExpression is one of Primitive, CapturingGroup, or NonCapturingGroup.
type UnitExpression interface {
	unitExpression()
}

// Primitive is an "N", "F", or "S" production with an optional repetition.
type Primitive struct {
	DataType   DataType
	Repetition PositiveRef
}

// CapturingGroup is a "(N[a,b])" production. GroupNumber is 1-based and
// dense in source order.
type CapturingGroup struct {
	GroupNumber uint64
	Min, Max    PositiveRef
}

// NonCapturingGroup is a "(?: ... )" production with its own repetition.
type NonCapturingGroup struct {
	Body       []UnitExpression
	Repetition PositiveRef
}

func (Primitive) unitExpression()         {}
func (CapturingGroup) unitExpression()    {}
func (NonCapturingGroup) unitExpression() {}

// DataType is one of IntegerType, FloatType, or StringType.
type DataType interface {
	dataType()
}

// IntegerType is "N[lo,hi]" with inclusive signed bounds.
type IntegerType struct {
	Min, Max ReferenceType
}

// FloatType is "F[lo,hi]" with inclusive double-precision bounds.
type FloatType struct {
	Min, Max ReferenceType
}

// StringType is "S[min,max,charset]".
type StringType struct {
	Min, Max PositiveRef
	CharSet  CharSet
}

func (IntegerType) dataType() {}
func (FloatType) dataType()   {}
func (StringType) dataType()  {}

// ReferenceType is an inclusive-range bound: either a signed literal or a
// back-reference to a captured group's value.
type ReferenceType struct {
	byGroup bool
	group   uint64
	literal int64
}

// RefLiteral builds a ReferenceType that resolves to a fixed value.
func RefLiteral(v int64) ReferenceType { return ReferenceType{literal: v} }

// RefGroup builds a ReferenceType that resolves through group n.
func RefGroup(n uint64) ReferenceType { return ReferenceType{byGroup: true, group: n} }

// ByGroup reports whether r resolves through a captured group, and which one.
func (r ReferenceType) ByGroup() (uint64, bool) { return r.group, r.byGroup }

// Literal returns r's literal value; meaningless if ByGroup is true.
func (r ReferenceType) Literal() int64 { return r.literal }

// PositiveRef is the same as ReferenceType but guaranteed non-negative on
// resolution: quantifiers, repetitions, and capturing-group ranges.
type PositiveRef struct {
	byGroup bool
	group   uint64
	literal uint64
}

// PosLiteral builds a PositiveRef that resolves to a fixed value.
func PosLiteral(v uint64) PositiveRef { return PositiveRef{literal: v} }

// PosGroup builds a PositiveRef that resolves through group n.
func PosGroup(n uint64) PositiveRef { return PositiveRef{byGroup: true, group: n} }

// ByGroup reports whether r resolves through a captured group, and which one.
func (r PositiveRef) ByGroup() (uint64, bool) { return r.group, r.byGroup }

// Literal returns r's literal value; meaningless if ByGroup is true.
func (r PositiveRef) Literal() uint64 { return r.literal }

// CharSetKind names one of the seven fixed character classes, or Custom.
type CharSetKind int

const (
	CSAlphabet CharSetKind = iota
	CSNumeric
	CSNewline
	CSAlphaNumeric
	CSUppercase
	CSLowerCase
	CSAll
	CSCustom
)

// CharSet names the character domain a String primitive draws from.
type CharSet struct {
	Kind   CharSetKind
	Custom string // populated only when Kind == CSCustom
}

// DefaultCharSet is the alphanumeric class, used when a String modifier
// omits its charset slot.
var DefaultCharSet = CharSet{Kind: CSAlphaNumeric}

// Domain returns the exact character set CharSet draws from, per spec.md §4.3.
func (c CharSet) Domain() string {
	switch c.Kind {
	case CSAlphabet:
		return "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	case CSNumeric:
		return "0123456789"
	case CSNewline:
		return "\n"
	case CSAlphaNumeric:
		return "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	case CSUppercase:
		return "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	case CSLowerCase:
		return "abcdefghijklmnopqrstuvwxyz"
	case CSAll:
		return "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789)(*&^%$#@!~"
	case CSCustom:
		return c.Custom
	default:
		return ""
	}
}
