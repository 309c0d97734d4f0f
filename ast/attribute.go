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

// Attribute is a keyword plus an optional value. It is used both as a term
// annotation ("! term :keyword value ...") and as the payload of
// set-info/get-info.
type Attribute struct {
	Keyword Keyword
	Value   SExpr // nil: keyword has no value
}

func NewAttribute(kw Keyword, value SExpr) Attribute {
	return Attribute{Keyword: kw, Value: value}
}
