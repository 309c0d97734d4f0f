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

// Term is the closed term algebra: a constant, a qualified identifier, a
// function application, a let/forall/exists binder, or an annotated term.
type Term interface {
	isTerm()
}

// ConstantTerm is a term built from a single constant literal.
type ConstantTerm struct {
	Literal Literal
}

func NewConstantTerm(lit Literal) ConstantTerm {
	return ConstantTerm{Literal: lit}
}

func (ConstantTerm) isTerm() {}

// QualIdentTerm is a bare (possibly sort-annotated) identifier used as a
// term, e.g. a 0-ary function symbol or a bound variable reference.
type QualIdentTerm struct {
	Identifier QualifiedIdentifier
}

func NewQualIdentTerm(id QualifiedIdentifier) QualIdentTerm {
	return QualIdentTerm{Identifier: id}
}

func (QualIdentTerm) isTerm() {}

// FunctionApplication is "(fun arg1 ... argn)" with n >= 1. A 0-ary
// application is indistinguishable from a bare qualified identifier in the
// grammar, so the constructor forbids it: that shape must instead be built
// as a QualIdentTerm.
type FunctionApplication struct {
	Fun      QualifiedIdentifier
	HeadArg  Term
	TailArgs []Term
}

// NewFunctionApplication constructs a function application with at least
// one argument.
func NewFunctionApplication(fun QualifiedIdentifier, head Term, tail ...Term) FunctionApplication {
	if head == nil {
		panic("ast: function application with no arguments")
	}
	return FunctionApplication{Fun: fun, HeadArg: head, TailArgs: append([]Term(nil), tail...)}
}

// Args returns the full, ordered argument list.
func (f FunctionApplication) Args() []Term {
	out := make([]Term, 0, 1+len(f.TailArgs))
	out = append(out, f.HeadArg)
	out = append(out, f.TailArgs...)
	return out
}

func (FunctionApplication) isTerm() {}

// VarBinding is a single (symbol term) pair inside a let.
type VarBinding struct {
	Name Symbol
	Term Term
}

func NewVarBinding(name Symbol, term Term) VarBinding {
	return VarBinding{Name: name, Term: term}
}

// SortedVar is a single (symbol sort) pair inside forall/exists.
type SortedVar struct {
	Name Symbol
	Sort Sort
}

func NewSortedVar(name Symbol, sort Sort) SortedVar {
	return SortedVar{Name: name, Sort: sort}
}

// Let is "(let (binding1 ... bindingn) body)" with n >= 1.
type Let struct {
	HeadBinding  VarBinding
	TailBindings []VarBinding
	Body         Term
}

func NewLet(body Term, head VarBinding, tail ...VarBinding) Let {
	if body == nil {
		panic("ast: let with nil body")
	}
	return Let{HeadBinding: head, TailBindings: append([]VarBinding(nil), tail...), Body: body}
}

func (l Let) Bindings() []VarBinding {
	out := make([]VarBinding, 0, 1+len(l.TailBindings))
	out = append(out, l.HeadBinding)
	out = append(out, l.TailBindings...)
	return out
}

func (Let) isTerm() {}

// ForAll is "(forall (sortedvar1 ... sortedvarn) body)" with n >= 1.
type ForAll struct {
	HeadVar  SortedVar
	TailVars []SortedVar
	Body     Term
}

func NewForAll(body Term, head SortedVar, tail ...SortedVar) ForAll {
	if body == nil {
		panic("ast: forall with nil body")
	}
	return ForAll{HeadVar: head, TailVars: append([]SortedVar(nil), tail...), Body: body}
}

func (f ForAll) Vars() []SortedVar {
	out := make([]SortedVar, 0, 1+len(f.TailVars))
	out = append(out, f.HeadVar)
	out = append(out, f.TailVars...)
	return out
}

func (ForAll) isTerm() {}

// Exists is "(exists (sortedvar1 ... sortedvarn) body)" with n >= 1.
type Exists struct {
	HeadVar  SortedVar
	TailVars []SortedVar
	Body     Term
}

func NewExists(body Term, head SortedVar, tail ...SortedVar) Exists {
	if body == nil {
		panic("ast: exists with nil body")
	}
	return Exists{HeadVar: head, TailVars: append([]SortedVar(nil), tail...), Body: body}
}

func (e Exists) Vars() []SortedVar {
	out := make([]SortedVar, 0, 1+len(e.TailVars))
	out = append(out, e.HeadVar)
	out = append(out, e.TailVars...)
	return out
}

func (Exists) isTerm() {}

// AnnotatedTerm is "(! term attr1 ... attrn)" with n >= 1.
type AnnotatedTerm struct {
	Term      Term
	HeadAttr  Attribute
	TailAttrs []Attribute
}

func NewAnnotatedTerm(term Term, head Attribute, tail ...Attribute) AnnotatedTerm {
	if term == nil {
		panic("ast: annotated term with nil term")
	}
	return AnnotatedTerm{Term: term, HeadAttr: head, TailAttrs: append([]Attribute(nil), tail...)}
}

func (a AnnotatedTerm) Attrs() []Attribute {
	out := make([]Attribute, 0, 1+len(a.TailAttrs))
	out = append(out, a.HeadAttr)
	out = append(out, a.TailAttrs...)
	return out
}

func (AnnotatedTerm) isTerm() {}
