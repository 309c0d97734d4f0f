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

package printer

import (
	"fmt"
	"io"

	"github.com/kralicky/smtlib/ast"
)

// fprintRecursive is the reference printer: a direct structural walk with
// no attempt at bounding native stack depth. It is the oracle the
// stack-safe printer is checked against.
func fprintRecursive(w io.Writer, node any) error {
	if s, ok := leafString(node); ok {
		_, err := io.WriteString(w, s)
		return err
	}
	switch n := node.(type) {
	case ast.Term:
		return fprintTerm(w, n)
	case ast.Command:
		return fprintCommand(w, n)
	case ast.Script:
		for _, c := range n.Commands {
			if err := fprintCommand(w, c); err != nil {
				return err
			}
		}
		return nil
	case ast.Response:
		return fprintResponse(w, n)
	case ast.SExpr:
		return fprintSExpr(w, n)
	case ast.SMTOption:
		return fprintOption(w, n)
	case ast.InfoFlag:
		return fprintInfoFlag(w, n)
	case ast.Attribute:
		return fprintAttribute(w, n)
	case ast.VarBinding:
		if _, err := io.WriteString(w, "("+n.Name.String()+" "); err != nil {
			return err
		}
		if err := fprintTerm(w, n.Term); err != nil {
			return err
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.SelectorDecl:
		_, err := io.WriteString(w, "("+n.Field.String()+" "+n.Sort.String()+")")
		return err
	case ast.ConstructorDecl:
		return fprintConstructorDecl(w, n)
	case ast.DatatypeDecl:
		return fprintDatatypeDecl(w, n)
	case ast.ValuationPair:
		_, err := io.WriteString(w, "("+n.Symbol.String()+" "+boolString(n.Value)+")")
		return err
	case ast.ValuePair:
		if _, err := io.WriteString(w, "("); err != nil {
			return err
		}
		if err := fprintTerm(w, n.Term); err != nil {
			return err
		}
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := fprintTerm(w, n.Value); err != nil {
			return err
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.InfoResponse:
		if _, err := io.WriteString(w, "("+n.Keyword.String()+" "); err != nil {
			return err
		}
		if err := fprintSExpr(w, n.Value); err != nil {
			return err
		}
		_, err := io.WriteString(w, ")")
		return err
	default:
		return fmt.Errorf("printer: unsupported node type %T", node)
	}
}

func fprintTerm(w io.Writer, t ast.Term) error {
	switch n := t.(type) {
	case ast.ConstantTerm:
		return fprintRecursive(w, n.Literal)
	case ast.QualIdentTerm:
		return fprintRecursive(w, n.Identifier)
	case ast.FunctionApplication:
		if _, err := io.WriteString(w, "("+n.Fun.String()+" "); err != nil {
			return err
		}
		if err := writeTermList(w, n.Args()); err != nil {
			return err
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.Let:
		if _, err := io.WriteString(w, "(let ("); err != nil {
			return err
		}
		for i, b := range n.Bindings() {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if err := fprintRecursive(w, b); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ") "); err != nil {
			return err
		}
		if err := fprintTerm(w, n.Body); err != nil {
			return err
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.ForAll:
		return fprintQuantifier(w, "forall", sortedVarStrings(n.Vars()), n.Body)
	case ast.Exists:
		return fprintQuantifier(w, "exists", sortedVarStrings(n.Vars()), n.Body)
	case ast.AnnotatedTerm:
		if _, err := io.WriteString(w, "(! "); err != nil {
			return err
		}
		if err := fprintTerm(w, n.Term); err != nil {
			return err
		}
		for _, a := range n.Attrs() {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
			if err := fprintAttribute(w, a); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ")")
		return err
	default:
		return fmt.Errorf("printer: unsupported term type %T", t)
	}
}

func sortedVarStrings(vars []ast.SortedVar) string {
	s := ""
	for i, v := range vars {
		if i > 0 {
			s += " "
		}
		s += "(" + v.Name.String() + " " + v.Sort.String() + ")"
	}
	return s
}

func fprintQuantifier(w io.Writer, kw string, varsText string, body ast.Term) error {
	if _, err := io.WriteString(w, "("+kw+" ("+varsText+") "); err != nil {
		return err
	}
	if err := fprintTerm(w, body); err != nil {
		return err
	}
	_, err := io.WriteString(w, ")")
	return err
}

func writeTermList(w io.Writer, terms []ast.Term) error {
	for i, t := range terms {
		if i > 0 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if err := fprintTerm(w, t); err != nil {
			return err
		}
	}
	return nil
}

func fprintAttribute(w io.Writer, a ast.Attribute) error {
	if _, err := io.WriteString(w, a.Keyword.String()); err != nil {
		return err
	}
	if a.Value == nil {
		return nil
	}
	if _, err := io.WriteString(w, " "); err != nil {
		return err
	}
	return fprintSExpr(w, a.Value)
}

func fprintSExpr(w io.Writer, s ast.SExpr) error {
	switch n := s.(type) {
	case ast.SExprLiteral:
		return fprintRecursive(w, n.Literal)
	case ast.SExprSymbol:
		return fprintRecursive(w, n.Symbol)
	case ast.SExprKeyword:
		return fprintRecursive(w, n.Keyword)
	case ast.SExprList:
		if _, err := io.WriteString(w, "("); err != nil {
			return err
		}
		for i, item := range n.Items {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if err := fprintSExpr(w, item); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.SExprTerm:
		return fprintTerm(w, n.Term)
	case ast.SExprCommand:
		// Printing a wrapped command yields exactly the text that printing
		// the command directly would, trailing newline included.
		return fprintCommand(w, n.Command)
	default:
		return fmt.Errorf("printer: unsupported s-expression type %T", s)
	}
}

func fprintOption(w io.Writer, o ast.SMTOption) error {
	switch n := o.(type) {
	case ast.PrintSuccess:
		_, err := io.WriteString(w, ":print-success "+boolString(n.Value))
		return err
	case ast.ExpandDefinitions:
		_, err := io.WriteString(w, ":expand-definitions "+boolString(n.Value))
		return err
	case ast.InteractiveMode:
		_, err := io.WriteString(w, ":interactive-mode "+boolString(n.Value))
		return err
	case ast.ProduceProofs:
		_, err := io.WriteString(w, ":produce-proofs "+boolString(n.Value))
		return err
	case ast.ProduceUnsatCores:
		_, err := io.WriteString(w, ":produce-unsat-cores "+boolString(n.Value))
		return err
	case ast.ProduceModels:
		_, err := io.WriteString(w, ":produce-models "+boolString(n.Value))
		return err
	case ast.ProduceAssignments:
		_, err := io.WriteString(w, ":produce-assignments "+boolString(n.Value))
		return err
	case ast.RegularOutputChannel:
		_, err := io.WriteString(w, ":regular-output-channel "+quoteString(n.Value))
		return err
	case ast.DiagnosticOutputChannel:
		_, err := io.WriteString(w, ":diagnostic-output-channel "+quoteString(n.Value))
		return err
	case ast.RandomSeed:
		_, err := io.WriteString(w, ":random-seed "+n.Value.String())
		return err
	case ast.Verbosity:
		_, err := io.WriteString(w, ":verbosity "+n.Value.String())
		return err
	case ast.AttributeOption:
		return fprintAttribute(w, n.Attribute)
	default:
		return fmt.Errorf("printer: unsupported option type %T", o)
	}
}

func fprintInfoFlag(w io.Writer, f ast.InfoFlag) error {
	if s, ok := infoFlagString(f); ok {
		_, err := io.WriteString(w, s)
		return err
	}
	if kf, ok := f.(ast.KeywordFlag); ok {
		_, err := io.WriteString(w, kf.Keyword.String())
		return err
	}
	return fmt.Errorf("printer: unsupported info flag type %T", f)
}

func fprintConstructorDecl(w io.Writer, c ast.ConstructorDecl) error {
	if _, err := io.WriteString(w, "("+c.Name.String()); err != nil {
		return err
	}
	for _, f := range c.Fields {
		if _, err := io.WriteString(w, " ("+f.Field.String()+" "+f.Sort.String()+")"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")")
	return err
}

func fprintDatatypeDecl(w io.Writer, d ast.DatatypeDecl) error {
	if _, err := io.WriteString(w, "("+d.Name.String()); err != nil {
		return err
	}
	for _, c := range d.Ctors() {
		if _, err := io.WriteString(w, " "); err != nil {
			return err
		}
		if err := fprintConstructorDecl(w, c); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ")")
	return err
}

func fprintCommand(w io.Writer, c ast.Command) error {
	if err := fprintCommandNoNewline(w, c); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

func fprintCommandNoNewline(w io.Writer, c ast.Command) error {
	switch n := c.(type) {
	case ast.SetLogic:
		_, err := io.WriteString(w, "(set-logic "+n.Logic.String()+")")
		return err
	case ast.SetOption:
		if _, err := io.WriteString(w, "(set-option "); err != nil {
			return err
		}
		if err := fprintOption(w, n.Option); err != nil {
			return err
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.SetInfo:
		if _, err := io.WriteString(w, "(set-info "); err != nil {
			return err
		}
		if err := fprintAttribute(w, n.Attribute); err != nil {
			return err
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.DeclareSort:
		_, err := io.WriteString(w, "(declare-sort "+n.Name.String()+" "+n.Arity.String()+")")
		return err
	case ast.DefineSort:
		if _, err := io.WriteString(w, "(define-sort "+n.Name.String()+" ("); err != nil {
			return err
		}
		for i, p := range n.Params {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, p.String()); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ") "+n.Sort.String()+")")
		return err
	case ast.DeclareFun:
		if _, err := io.WriteString(w, "(declare-fun "+n.Name.String()+" ("); err != nil {
			return err
		}
		for i, p := range n.Params {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, p.String()); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ") "+n.Sort.String()+")")
		return err
	case ast.DefineFun:
		if _, err := io.WriteString(w, "(define-fun "+n.Name.String()+" ("); err != nil {
			return err
		}
		for i, p := range n.Params {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "("+p.Name.String()+" "+p.Sort.String()+")"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ") "+n.Sort.String()+" "); err != nil {
			return err
		}
		if err := fprintTerm(w, n.Body); err != nil {
			return err
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.Push:
		_, err := io.WriteString(w, "(push "+n.N.String()+")")
		return err
	case ast.Pop:
		_, err := io.WriteString(w, "(pop "+n.N.String()+")")
		return err
	case ast.Assert:
		if _, err := io.WriteString(w, "(assert "); err != nil {
			return err
		}
		if err := fprintTerm(w, n.Term); err != nil {
			return err
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.CheckSat:
		_, err := io.WriteString(w, "(check-sat)")
		return err
	case ast.GetAssertions:
		_, err := io.WriteString(w, "(get-assertions)")
		return err
	case ast.GetProof:
		_, err := io.WriteString(w, "(get-proof)")
		return err
	case ast.GetUnsatCore:
		_, err := io.WriteString(w, "(get-unsat-core)")
		return err
	case ast.GetValue:
		if _, err := io.WriteString(w, "(get-value ("); err != nil {
			return err
		}
		if err := writeTermList(w, n.Terms()); err != nil {
			return err
		}
		_, err := io.WriteString(w, "))")
		return err
	case ast.GetAssignment:
		_, err := io.WriteString(w, "(get-assignment)")
		return err
	case ast.GetOption:
		_, err := io.WriteString(w, "(get-option "+n.Keyword.String()+")")
		return err
	case ast.GetInfo:
		if _, err := io.WriteString(w, "(get-info "); err != nil {
			return err
		}
		if err := fprintInfoFlag(w, n.Flag); err != nil {
			return err
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.Exit:
		_, err := io.WriteString(w, "(exit)")
		return err
	case ast.GetModel:
		_, err := io.WriteString(w, "(get-model)")
		return err
	case ast.DeclareDatatypes:
		if _, err := io.WriteString(w, "(declare-datatypes () ("); err != nil {
			return err
		}
		for i, d := range n.Datatypes() {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if err := fprintDatatypeDecl(w, d); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "))")
		return err
	case ast.NonStandardCommand:
		return fprintSExpr(w, n.SExpr)
	default:
		return fmt.Errorf("printer: unsupported command type %T", c)
	}
}

func fprintResponse(w io.Writer, r ast.Response) error {
	switch n := r.(type) {
	case ast.SuccessResponse:
		_, err := io.WriteString(w, "success")
		return err
	case ast.UnsupportedResponse:
		_, err := io.WriteString(w, "unsupported")
		return err
	case ast.ErrorResponse:
		_, err := io.WriteString(w, "(error "+quoteString(n.Msg)+")")
		return err
	case ast.CheckSatResponse:
		_, err := io.WriteString(w, n.Result.String())
		return err
	case ast.GetAssertionsResponse:
		if _, err := io.WriteString(w, "("); err != nil {
			return err
		}
		if err := writeTermList(w, n.Terms); err != nil {
			return err
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.GetAssignmentResponse:
		if _, err := io.WriteString(w, "("); err != nil {
			return err
		}
		for i, pr := range n.Pairs {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if err := fprintRecursive(w, pr); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.GetValueResponse:
		if _, err := io.WriteString(w, "("); err != nil {
			return err
		}
		for i, pr := range n.Pairs {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if err := fprintRecursive(w, pr); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.GetProofResponse:
		return fprintSExpr(w, n.SExpr)
	case ast.GetUnsatCoreResponse:
		if _, err := io.WriteString(w, "("); err != nil {
			return err
		}
		for i, s := range n.Symbols {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, s.String()); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.GetOptionResponse:
		return fprintSExpr(w, n.SExpr)
	case ast.GetInfoResponse:
		if _, err := io.WriteString(w, "("); err != nil {
			return err
		}
		for i, info := range n.Infos() {
			if i > 0 {
				if _, err := io.WriteString(w, " "); err != nil {
					return err
				}
			}
			if err := fprintRecursive(w, info); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ")")
		return err
	case ast.GetModelResponse:
		if _, err := io.WriteString(w, "(model"); err != nil {
			return err
		}
		for _, s := range n.SExprs {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			if err := fprintSExpr(w, s); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, ")")
		return err
	default:
		return fmt.Errorf("printer: unsupported response type %T", r)
	}
}
