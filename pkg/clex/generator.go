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
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Generator draws a random testcase from a parsed AST. A Generator is not
// safe for concurrent use; callers that need one generator per goroutine
// should construct one each, all sharing the same immutable AST.
type Generator struct {
	ast AST
	rng *rand.Rand
}

// NewGenerator builds a Generator seeded from the current time.
func NewGenerator(ast AST) *Generator {
	return NewGeneratorWithSeed(ast, time.Now().UnixNano())
}

// NewGeneratorWithSeed builds a Generator with a fixed seed, so that two
// Generate calls over the same AST produce identical output.
func NewGeneratorWithSeed(ast AST, seed int64) *Generator {
	return &Generator{ast: ast, rng: rand.New(rand.NewSource(seed))}
}

// Generate traverses the whole AST once and returns the finished testcase
// text: runs of two spaces collapsed to one, outer whitespace trimmed.
func (g *Generator) Generate() (string, error) {
	var sb strings.Builder
	groups := make(map[uint64]uint64)
	if err := g.traverse(&sb, g.ast, groups); err != nil {
		return "", err
	}
	return normalizeOutput(sb.String()), nil
}

// ChunkIterator yields one unnormalized chunk per top-level UnitExpression,
// for memory-bounded streaming of very large testcases. The group table is
// threaded across chunks so back-references resolve exactly as they would
// in a single Generate call over the same AST.
type ChunkIterator struct {
	gen    *Generator
	idx    int
	groups map[uint64]uint64
	done   bool
}

// Chunks returns a fresh streaming iterator over the Generator's AST.
func (g *Generator) Chunks() *ChunkIterator {
	return &ChunkIterator{gen: g, groups: make(map[uint64]uint64)}
}

// Next produces the next chunk. ok is false once the AST is exhausted; err
// is non-nil and ok is false if generation failed partway through, and no
// further chunks should be requested after an error.
func (it *ChunkIterator) Next() (chunk string, ok bool, err error) {
	if it.done || it.idx >= len(it.gen.ast) {
		return "", false, nil
	}
	expr := it.gen.ast[it.idx]
	it.idx++

	var sb strings.Builder
	if err := it.gen.traverse(&sb, []UnitExpression{expr}, it.groups); err != nil {
		it.done = true
		return "", false, err
	}
	return sb.String(), true, nil
}

// normalizeOutput mirrors the original single-pass whitespace cleanup: one
// replace of "  " with " ", then trim. A run of three or more raw spaces is
// therefore not fully collapsed to one space in a single pass; this matches
// the original generator's observable behavior.
func normalizeOutput(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "  ", " "))
}

func (g *Generator) traverse(sb *strings.Builder, exprs []UnitExpression, groups map[uint64]uint64) error {
	for _, expr := range exprs {
		switch e := expr.(type) {
		case Primitive:
			rep, err := g.resolvePositive(e.Repetition, groups)
			if err != nil {
				return err
			}
			for i := uint64(0); i < rep; i++ {
				tok, err := g.renderPrimitive(e.DataType, groups)
				if err != nil {
					return err
				}
				sb.WriteString(tok)
				sb.WriteByte(' ')
			}

		case CapturingGroup:
			v, err := g.samplePositiveRange(e.Min, e.Max, groups)
			if err != nil {
				return err
			}
			groups[e.GroupNumber] = v
			sb.WriteString(strconv.FormatUint(v, 10))
			sb.WriteByte(' ')

		case NonCapturingGroup:
			rep, err := g.resolvePositive(e.Repetition, groups)
			if err != nil {
				return err
			}
			for i := uint64(0); i < rep; i++ {
				inner := copyGroups(groups)
				var nested strings.Builder
				if err := g.traverse(&nested, e.Body, inner); err != nil {
					return err
				}
				for k, v := range inner {
					groups[k] = v
				}
				sb.WriteString(nested.String())
				sb.WriteByte(' ')
			}
		}
	}
	return nil
}

func (g *Generator) renderPrimitive(dt DataType, groups map[uint64]uint64) (string, error) {
	switch d := dt.(type) {
	case IntegerType:
		lo, err := g.resolveSigned(d.Min, groups)
		if err != nil {
			return "", err
		}
		hi, err := g.resolveSigned(d.Max, groups)
		if err != nil {
			return "", err
		}
		v, err := g.sampleInt(lo, hi)
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil

	case FloatType:
		lo, err := g.resolveSigned(d.Min, groups)
		if err != nil {
			return "", err
		}
		hi, err := g.resolveSigned(d.Max, groups)
		if err != nil {
			return "", err
		}
		v, err := g.sampleFloat(float64(lo), float64(hi))
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'g', -1, 64), nil

	case StringType:
		minL, err := g.resolvePositive(d.Min, groups)
		if err != nil {
			return "", err
		}
		maxL, err := g.resolvePositive(d.Max, groups)
		if err != nil {
			return "", err
		}
		if minL > maxL {
			return "", &Error{Subsystem: GeneratorError, Kind: KindInvalidRangeValues, Min: int64(minL), Max: int64(maxL)}
		}
		length := minL + uint64(g.rng.Int63n(int64(maxL-minL+1)))
		domain := d.CharSet.Domain()
		return g.sampleString(domain, length), nil

	default:
		return "", nil
	}
}

func (g *Generator) sampleString(domain string, length uint64) string {
	if domain == "" || length == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(int(length))
	for i := uint64(0); i < length; i++ {
		sb.WriteByte(domain[g.rng.Intn(len(domain))])
	}
	return sb.String()
}

func (g *Generator) sampleInt(lo, hi int64) (int64, error) {
	if lo > hi {
		return 0, &Error{Subsystem: GeneratorError, Kind: KindInvalidRangeValues, Min: lo, Max: hi}
	}
	span := hi - lo + 1
	return lo + g.rng.Int63n(span), nil
}

func (g *Generator) sampleFloat(lo, hi float64) (float64, error) {
	if lo > hi {
		return 0, &Error{Subsystem: GeneratorError, Kind: KindInvalidRangeValues, Min: int64(lo), Max: int64(hi)}
	}
	return lo + g.rng.Float64()*(hi-lo), nil
}

func (g *Generator) samplePositiveRange(minR, maxR PositiveRef, groups map[uint64]uint64) (uint64, error) {
	lo, err := g.resolvePositive(minR, groups)
	if err != nil {
		return 0, err
	}
	hi, err := g.resolvePositive(maxR, groups)
	if err != nil {
		return 0, err
	}
	if lo > hi {
		return 0, &Error{Subsystem: GeneratorError, Kind: KindInvalidRangeValues, Min: int64(lo), Max: int64(hi)}
	}
	span := hi - lo + 1
	return lo + uint64(g.rng.Int63n(int64(span))), nil
}

func (g *Generator) resolveSigned(r ReferenceType, groups map[uint64]uint64) (int64, error) {
	if gn, byGroup := r.ByGroup(); byGroup {
		v, ok := groups[gn]
		if !ok {
			return 0, &Error{Subsystem: GeneratorError, Kind: KindUnknownGroupNumber, Group: gn}
		}
		return int64(v), nil
	}
	return r.Literal(), nil
}

func (g *Generator) resolvePositive(r PositiveRef, groups map[uint64]uint64) (uint64, error) {
	if gn, byGroup := r.ByGroup(); byGroup {
		v, ok := groups[gn]
		if !ok {
			return 0, &Error{Subsystem: GeneratorError, Kind: KindUnknownGroupNumber, Group: gn}
		}
		return v, nil
	}
	return r.Literal(), nil
}

func copyGroups(m map[uint64]uint64) map[uint64]uint64 {
	cp := make(map[uint64]uint64, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
