// Copyright 2020-2023 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ast

import "strings"

// Identifier is either a plain Symbol or an IndexedIdentifier.
type Identifier interface {
	isIdentifier()
	String() string
}

// IdentifiersEqual reports structural equality between two identifiers.
// IndexedIdentifier carries a slice, so Identifier is not itself a
// comparable interface (a bare == would panic on two IndexedIdentifier
// values); this is the safe equivalent.
func IdentifiersEqual(a, b Identifier) bool {
	switch av := a.(type) {
	case SimpleIdentifier:
		bv, ok := b.(SimpleIdentifier)
		return ok && av.Symbol == bv.Symbol
	case IndexedIdentifier:
		bv, ok := b.(IndexedIdentifier)
		if !ok || av.Symbol != bv.Symbol || len(av.TailIndices) != len(bv.TailIndices) {
			return false
		}
		if !av.HeadIndex.Equal(bv.HeadIndex) {
			return false
		}
		for i := range av.TailIndices {
			if !av.TailIndices[i].Equal(bv.TailIndices[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// SimpleIdentifier is a bare symbol used as an identifier.
type SimpleIdentifier struct {
	Symbol Symbol
}

func NewSimpleIdentifier(sym Symbol) SimpleIdentifier {
	return SimpleIdentifier{Symbol: sym}
}

func (SimpleIdentifier) isIdentifier() {}

func (id SimpleIdentifier) String() string { return id.Symbol.String() }

// IndexedIdentifier is "(_ symbol n1 ... nk)" with k >= 1 numeral indices.
// The head/tail split makes the non-emptiness of the index list
// unforgeable: there is no way to construct an IndexedIdentifier with zero
// indices.
type IndexedIdentifier struct {
	Symbol      Symbol
	HeadIndex   Numeral
	TailIndices []Numeral
}

// NewIndexedIdentifier constructs an indexed identifier with at least one
// index.
func NewIndexedIdentifier(sym Symbol, head Numeral, tail ...Numeral) IndexedIdentifier {
	return IndexedIdentifier{Symbol: sym, HeadIndex: head, TailIndices: append([]Numeral(nil), tail...)}
}

// Indices returns the full, ordered sequence of indices.
func (id IndexedIdentifier) Indices() []Numeral {
	out := make([]Numeral, 0, 1+len(id.TailIndices))
	out = append(out, id.HeadIndex)
	out = append(out, id.TailIndices...)
	return out
}

func (IndexedIdentifier) isIdentifier() {}

func (id IndexedIdentifier) String() string {
	var sb strings.Builder
	sb.WriteString("(_ ")
	sb.WriteString(id.Symbol.String())
	for _, idx := range id.Indices() {
		sb.WriteByte(' ')
		sb.WriteString(idx.String())
	}
	sb.WriteByte(')')
	return sb.String()
}
