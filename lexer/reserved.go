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

package lexer

import (
	art "github.com/plar/go-adaptive-radix-tree"

	"github.com/kralicky/smtlib/token"
)

// reservedWordTree is the reserved-word lookup table keyed by the fully
// read symbol text. A radix tree shares common prefixes across the table's
// many "get-*"/"declare-*" entries rather than hashing the whole string,
// the same structure the teacher repo uses for its (much larger) linker
// symbol table.
var reservedWordTree art.Tree

func init() {
	reservedWordTree = art.New()
	for word, kind := range token.ReservedWords {
		reservedWordTree.Insert(art.Key(word), kind)
	}
}

// lookupReserved returns the reserved-word token kind for a fully-read
// symbol body, per spec §4.1: "Reserved-word recognition happens after a
// symbol is fully read by consulting a fixed mapping."
func lookupReserved(word string) (token.Kind, bool) {
	v, found := reservedWordTree.Search(art.Key(word))
	if !found {
		return 0, false
	}
	return v.(token.Kind), true
}
