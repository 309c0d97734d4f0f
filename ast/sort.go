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

// Sort is an identifier plus a possibly-empty ordered sequence of
// sub-sorts. A leaf sort (len(Args) == 0) prints as just its identifier; a
// parameterized sort prints as "(id sub1 ... subn)".
type Sort struct {
	Identifier Identifier
	Args       []Sort
}

// NewLeafSort constructs a sort with no sub-sorts.
func NewLeafSort(id Identifier) Sort {
	return Sort{Identifier: id}
}

// NewParameterizedSort constructs a sort with one or more sub-sorts. The
// head/tail split mirrors the grammar's requirement that a parenthesized
// sort application never has zero arguments — an application with no
// sub-sorts is just a leaf sort, and the two must not be confusable.
func NewParameterizedSort(id Identifier, head Sort, tail ...Sort) Sort {
	args := make([]Sort, 0, 1+len(tail))
	args = append(args, head)
	args = append(args, tail...)
	return Sort{Identifier: id, Args: args}
}

// Equal reports structural equality between two sorts.
func (s Sort) Equal(o Sort) bool {
	if !IdentifiersEqual(s.Identifier, o.Identifier) {
		return false
	}
	if len(s.Args) != len(o.Args) {
		return false
	}
	for i := range s.Args {
		if !s.Args[i].Equal(o.Args[i]) {
			return false
		}
	}
	return true
}

func (s Sort) String() string {
	if len(s.Args) == 0 {
		return s.Identifier.String()
	}
	b := "(" + s.Identifier.String()
	for _, a := range s.Args {
		b += " " + a.String()
	}
	return b + ")"
}
