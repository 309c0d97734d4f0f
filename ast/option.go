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

// SMTOption is the closed set of arguments accepted by SetOption.
type SMTOption interface {
	isOption()
}

type PrintSuccess struct{ Value bool }

func (PrintSuccess) isOption() {}

type ExpandDefinitions struct{ Value bool }

func (ExpandDefinitions) isOption() {}

type InteractiveMode struct{ Value bool }

func (InteractiveMode) isOption() {}

type ProduceProofs struct{ Value bool }

func (ProduceProofs) isOption() {}

type ProduceUnsatCores struct{ Value bool }

func (ProduceUnsatCores) isOption() {}

type ProduceModels struct{ Value bool }

func (ProduceModels) isOption() {}

type ProduceAssignments struct{ Value bool }

func (ProduceAssignments) isOption() {}

type RegularOutputChannel struct{ Value string }

func (RegularOutputChannel) isOption() {}

type DiagnosticOutputChannel struct{ Value string }

func (DiagnosticOutputChannel) isOption() {}

type RandomSeed struct{ Value Numeral }

func (RandomSeed) isOption() {}

type Verbosity struct{ Value Numeral }

func (Verbosity) isOption() {}

// AttributeOption covers any option not otherwise named, expressed as a
// raw keyword/value attribute (":keyword value").
type AttributeOption struct{ Attribute Attribute }

func (AttributeOption) isOption() {}
