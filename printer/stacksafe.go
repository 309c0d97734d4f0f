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

// unit is one step of work for the stack-safe printer: either a literal
// string to emit verbatim, or an AST node to expand into further units.
type unit struct {
	lit    string
	node   any
	isNode bool
}

func lit(s string) unit   { return unit{lit: s} }
func nodeUnit(n any) unit { return unit{node: n, isNode: true} }

// fprintStackSafe walks root using an explicit LIFO work stack instead of
// native call recursion. expand is the only place new units are produced;
// it always returns units in left-to-right emission order, which the
// driver loop below pushes in reverse so the first unit pops first.
func fprintStackSafe(w io.Writer, root any) error {
	stack := []unit{nodeUnit(root)}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !u.isNode {
			if _, err := io.WriteString(w, u.lit); err != nil {
				return err
			}
			continue
		}
		children, err := expand(u.node)
		if err != nil {
			return err
		}
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return nil
}

// joinNodes interleaves a separator literal between each element of nodes.
func joinNodes[T any](nodes []T, sep string) []unit {
	out := make([]unit, 0, 2*len(nodes))
	for i, n := range nodes {
		if i > 0 {
			out = append(out, lit(sep))
		}
		out = append(out, nodeUnit(n))
	}
	return out
}

// expand returns node's immediate emission as a sequence of units. Any
// child that could itself be arbitrarily deep (terms, in practice) is
// deferred as a nodeUnit rather than rendered inline, so depth never
// accumulates on the Go call stack; shallow leaves are rendered directly
// via leafString, same as the recursive printer, guaranteeing identical
// output between the two.
func expand(node any) ([]unit, error) {
	if s, ok := leafString(node); ok {
		return []unit{lit(s)}, nil
	}
	switch n := node.(type) {
	case ast.Term:
		return expandTerm(n)
	case ast.Command:
		return expandCommand(n)
	case ast.Script:
		units := make([]unit, 0, len(n.Commands))
		for _, c := range n.Commands {
			units = append(units, nodeUnit(ast.Command(c)))
		}
		return units, nil
	case ast.Response:
		return expandResponse(n)
	case ast.SExpr:
		return expandSExpr(n)
	case ast.SMTOption:
		return expandOption(n)
	case ast.InfoFlag:
		if s, ok := infoFlagString(n); ok {
			return []unit{lit(s)}, nil
		}
		if kf, ok := n.(ast.KeywordFlag); ok {
			return []unit{lit(kf.Keyword.String())}, nil
		}
		return nil, fmt.Errorf("printer: unsupported info flag type %T", n)
	case ast.Attribute:
		return expandAttribute(n)
	case ast.VarBinding:
		return []unit{
			lit("(" + n.Name.String() + " "),
			nodeUnit(n.Term),
			lit(")"),
		}, nil
	case ast.SelectorDecl:
		return []unit{lit("(" + n.Field.String() + " " + n.Sort.String() + ")")}, nil
	case ast.ConstructorDecl:
		return expandConstructorDecl(n)
	case ast.DatatypeDecl:
		return expandDatatypeDecl(n)
	case ast.ValuationPair:
		return []unit{lit("(" + n.Symbol.String() + " " + boolString(n.Value) + ")")}, nil
	case ast.ValuePair:
		return []unit{
			lit("("),
			nodeUnit(n.Term),
			lit(" "),
			nodeUnit(n.Value),
			lit(")"),
		}, nil
	case ast.InfoResponse:
		return []unit{
			lit("(" + n.Keyword.String() + " "),
			nodeUnit(n.Value),
			lit(")"),
		}, nil
	default:
		return nil, fmt.Errorf("printer: unsupported node type %T", node)
	}
}

func expandTerm(t ast.Term) ([]unit, error) {
	switch n := t.(type) {
	case ast.ConstantTerm:
		return []unit{nodeUnit(n.Literal)}, nil
	case ast.QualIdentTerm:
		return []unit{nodeUnit(n.Identifier)}, nil
	case ast.FunctionApplication:
		units := []unit{lit("(" + n.Fun.String() + " ")}
		units = append(units, joinNodes(n.Args(), " ")...)
		units = append(units, lit(")"))
		return units, nil
	case ast.Let:
		units := []unit{lit("(let (")}
		units = append(units, joinNodes(n.Bindings(), " ")...)
		units = append(units, lit(") "), nodeUnit(n.Body), lit(")"))
		return units, nil
	case ast.ForAll:
		return []unit{
			lit("(forall (" + sortedVarStrings(n.Vars()) + ") "),
			nodeUnit(n.Body),
			lit(")"),
		}, nil
	case ast.Exists:
		return []unit{
			lit("(exists (" + sortedVarStrings(n.Vars()) + ") "),
			nodeUnit(n.Body),
			lit(")"),
		}, nil
	case ast.AnnotatedTerm:
		units := []unit{lit("(! "), nodeUnit(n.Term)}
		for _, a := range n.Attrs() {
			units = append(units, lit(" "), nodeUnit(a))
		}
		units = append(units, lit(")"))
		return units, nil
	default:
		return nil, fmt.Errorf("printer: unsupported term type %T", t)
	}
}

func expandAttribute(a ast.Attribute) ([]unit, error) {
	if a.Value == nil {
		return []unit{lit(a.Keyword.String())}, nil
	}
	return []unit{lit(a.Keyword.String() + " "), nodeUnit(a.Value)}, nil
}

func expandSExpr(s ast.SExpr) ([]unit, error) {
	switch n := s.(type) {
	case ast.SExprLiteral:
		return []unit{nodeUnit(n.Literal)}, nil
	case ast.SExprSymbol:
		return []unit{lit(n.Symbol.String())}, nil
	case ast.SExprKeyword:
		return []unit{lit(n.Keyword.String())}, nil
	case ast.SExprList:
		units := []unit{lit("(")}
		units = append(units, joinNodes(n.Items, " ")...)
		units = append(units, lit(")"))
		return units, nil
	case ast.SExprTerm:
		return []unit{nodeUnit(n.Term)}, nil
	case ast.SExprCommand:
		// expand()'s ast.Command case routes through expandCommand, which
		// already appends the trailing newline; don't double it here.
		return []unit{nodeUnit(n.Command)}, nil
	default:
		return nil, fmt.Errorf("printer: unsupported s-expression type %T", s)
	}
}

func expandOption(o ast.SMTOption) ([]unit, error) {
	switch n := o.(type) {
	case ast.PrintSuccess:
		return []unit{lit(":print-success " + boolString(n.Value))}, nil
	case ast.ExpandDefinitions:
		return []unit{lit(":expand-definitions " + boolString(n.Value))}, nil
	case ast.InteractiveMode:
		return []unit{lit(":interactive-mode " + boolString(n.Value))}, nil
	case ast.ProduceProofs:
		return []unit{lit(":produce-proofs " + boolString(n.Value))}, nil
	case ast.ProduceUnsatCores:
		return []unit{lit(":produce-unsat-cores " + boolString(n.Value))}, nil
	case ast.ProduceModels:
		return []unit{lit(":produce-models " + boolString(n.Value))}, nil
	case ast.ProduceAssignments:
		return []unit{lit(":produce-assignments " + boolString(n.Value))}, nil
	case ast.RegularOutputChannel:
		return []unit{lit(":regular-output-channel " + quoteString(n.Value))}, nil
	case ast.DiagnosticOutputChannel:
		return []unit{lit(":diagnostic-output-channel " + quoteString(n.Value))}, nil
	case ast.RandomSeed:
		return []unit{lit(":random-seed " + n.Value.String())}, nil
	case ast.Verbosity:
		return []unit{lit(":verbosity " + n.Value.String())}, nil
	case ast.AttributeOption:
		return []unit{nodeUnit(n.Attribute)}, nil
	default:
		return nil, fmt.Errorf("printer: unsupported option type %T", o)
	}
}

func expandConstructorDecl(c ast.ConstructorDecl) ([]unit, error) {
	units := []unit{lit("(" + c.Name.String())}
	for _, f := range c.Fields {
		units = append(units, lit(" ("+f.Field.String()+" "+f.Sort.String()+")"))
	}
	units = append(units, lit(")"))
	return units, nil
}

func expandDatatypeDecl(d ast.DatatypeDecl) ([]unit, error) {
	units := []unit{lit("(" + d.Name.String())}
	for _, c := range d.Ctors() {
		units = append(units, lit(" "), nodeUnit(c))
	}
	units = append(units, lit(")"))
	return units, nil
}

func expandCommand(c ast.Command) ([]unit, error) {
	units, err := expandCommandNoNewline(c)
	if err != nil {
		return nil, err
	}
	return append(units, lit("\n")), nil
}

func expandCommandNoNewline(c ast.Command) ([]unit, error) {
	switch n := c.(type) {
	case ast.SetLogic:
		return []unit{lit("(set-logic " + n.Logic.String() + ")")}, nil
	case ast.SetOption:
		return []unit{lit("(set-option "), nodeUnit(n.Option), lit(")")}, nil
	case ast.SetInfo:
		return []unit{lit("(set-info "), nodeUnit(n.Attribute), lit(")")}, nil
	case ast.DeclareSort:
		return []unit{lit("(declare-sort " + n.Name.String() + " " + n.Arity.String() + ")")}, nil
	case ast.DefineSort:
		s := "(define-sort " + n.Name.String() + " ("
		for i, p := range n.Params {
			if i > 0 {
				s += " "
			}
			s += p.String()
		}
		s += ") " + n.Sort.String() + ")"
		return []unit{lit(s)}, nil
	case ast.DeclareFun:
		s := "(declare-fun " + n.Name.String() + " ("
		for i, p := range n.Params {
			if i > 0 {
				s += " "
			}
			s += p.String()
		}
		s += ") " + n.Sort.String() + ")"
		return []unit{lit(s)}, nil
	case ast.DefineFun:
		s := "(define-fun " + n.Name.String() + " ("
		for i, p := range n.Params {
			if i > 0 {
				s += " "
			}
			s += "(" + p.Name.String() + " " + p.Sort.String() + ")"
		}
		s += ") " + n.Sort.String() + " "
		return []unit{lit(s), nodeUnit(n.Body), lit(")")}, nil
	case ast.Push:
		return []unit{lit("(push " + n.N.String() + ")")}, nil
	case ast.Pop:
		return []unit{lit("(pop " + n.N.String() + ")")}, nil
	case ast.Assert:
		return []unit{lit("(assert "), nodeUnit(n.Term), lit(")")}, nil
	case ast.CheckSat:
		return []unit{lit("(check-sat)")}, nil
	case ast.GetAssertions:
		return []unit{lit("(get-assertions)")}, nil
	case ast.GetProof:
		return []unit{lit("(get-proof)")}, nil
	case ast.GetUnsatCore:
		return []unit{lit("(get-unsat-core)")}, nil
	case ast.GetValue:
		units := []unit{lit("(get-value (")}
		units = append(units, joinNodes(n.Terms(), " ")...)
		units = append(units, lit("))"))
		return units, nil
	case ast.GetAssignment:
		return []unit{lit("(get-assignment)")}, nil
	case ast.GetOption:
		return []unit{lit("(get-option " + n.Keyword.String() + ")")}, nil
	case ast.GetInfo:
		return []unit{lit("(get-info "), nodeUnit(n.Flag), lit(")")}, nil
	case ast.Exit:
		return []unit{lit("(exit)")}, nil
	case ast.GetModel:
		return []unit{lit("(get-model)")}, nil
	case ast.DeclareDatatypes:
		units := []unit{lit("(declare-datatypes () (")}
		units = append(units, joinNodes(n.Datatypes(), " ")...)
		units = append(units, lit("))"))
		return units, nil
	case ast.NonStandardCommand:
		return []unit{nodeUnit(n.SExpr)}, nil
	default:
		return nil, fmt.Errorf("printer: unsupported command type %T", c)
	}
}

func expandResponse(r ast.Response) ([]unit, error) {
	switch n := r.(type) {
	case ast.SuccessResponse:
		return []unit{lit("success")}, nil
	case ast.UnsupportedResponse:
		return []unit{lit("unsupported")}, nil
	case ast.ErrorResponse:
		return []unit{lit("(error " + quoteString(n.Msg) + ")")}, nil
	case ast.CheckSatResponse:
		return []unit{lit(n.Result.String())}, nil
	case ast.GetAssertionsResponse:
		units := []unit{lit("(")}
		units = append(units, joinNodes(n.Terms, " ")...)
		units = append(units, lit(")"))
		return units, nil
	case ast.GetAssignmentResponse:
		units := []unit{lit("(")}
		units = append(units, joinNodes(n.Pairs, " ")...)
		units = append(units, lit(")"))
		return units, nil
	case ast.GetValueResponse:
		units := []unit{lit("(")}
		units = append(units, joinNodes(n.Pairs, " ")...)
		units = append(units, lit(")"))
		return units, nil
	case ast.GetProofResponse:
		return []unit{nodeUnit(n.SExpr)}, nil
	case ast.GetUnsatCoreResponse:
		s := "("
		for i, sym := range n.Symbols {
			if i > 0 {
				s += " "
			}
			s += sym.String()
		}
		s += ")"
		return []unit{lit(s)}, nil
	case ast.GetOptionResponse:
		return []unit{nodeUnit(n.SExpr)}, nil
	case ast.GetInfoResponse:
		units := []unit{lit("(")}
		units = append(units, joinNodes(n.Infos(), " ")...)
		units = append(units, lit(")"))
		return units, nil
	case ast.GetModelResponse:
		units := []unit{lit("(model")}
		for _, s := range n.SExprs {
			units = append(units, lit("\n"), nodeUnit(s))
		}
		units = append(units, lit(")"))
		return units, nil
	default:
		return nil, fmt.Errorf("printer: unsupported response type %T", r)
	}
}
