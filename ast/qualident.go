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

// QualifiedIdentifier is an identifier optionally annotated with a sort via
// "(as id sort)". Equality is structural: two qualified identifiers are
// equal iff their identifiers are equal and their sort annotations (present
// or absent) are equal.
type QualifiedIdentifier struct {
	Identifier Identifier
	Sort       *Sort // nil: no "as" annotation
}

// NewQualifiedIdentifier constructs an unannotated qualified identifier.
func NewQualifiedIdentifier(id Identifier) QualifiedIdentifier {
	return QualifiedIdentifier{Identifier: id}
}

// NewAnnotatedQualifiedIdentifier constructs a qualified identifier carrying
// an explicit sort annotation, i.e. "(as id sort)".
func NewAnnotatedQualifiedIdentifier(id Identifier, sort Sort) QualifiedIdentifier {
	return QualifiedIdentifier{Identifier: id, Sort: &sort}
}

func (q QualifiedIdentifier) String() string {
	if q.Sort == nil {
		return q.Identifier.String()
	}
	return "(as " + q.Identifier.String() + " " + q.Sort.String() + ")"
}

// Equal reports structural equality, treating two nil-or-equal sort
// annotations as equal.
func (q QualifiedIdentifier) Equal(o QualifiedIdentifier) bool {
	if !IdentifiersEqual(q.Identifier, o.Identifier) {
		return false
	}
	switch {
	case q.Sort == nil && o.Sort == nil:
		return true
	case q.Sort == nil || o.Sort == nil:
		return false
	default:
		return q.Sort.Equal(*o.Sort)
	}
}
