package ast

import (
	"fmt"
	"strings"
)

// Dump renders a Program as an indented debug tree for the `--dump-ast` CLI
// flag. JSON serialization of the AST is an external collaborator's concern
// (spec §1, out of scope for the core); this is the core's minimal debug
// hook, not a stable serialization format.
func Dump(p *Program) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Program\n")
	for _, s := range p.Body {
		dumpStmt(&b, s, 1)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func dumpStmt(b *strings.Builder, s Stmt, depth int) {
	indent(b, depth)
	switch n := s.(type) {
	case *ExpressionStatement:
		fmt.Fprintf(b, "ExpressionStatement\n")
		dumpExpr(b, n.Expression, depth+1)
	case *BlockStatement:
		fmt.Fprintf(b, "BlockStatement\n")
		for _, c := range n.Body {
			dumpStmt(b, c, depth+1)
		}
	case *IfStatement:
		fmt.Fprintf(b, "IfStatement\n")
		dumpExpr(b, n.Test, depth+1)
		dumpStmt(b, n.Consequent, depth+1)
		if n.Alternate != nil {
			dumpStmt(b, n.Alternate, depth+1)
		}
	case *WhileStatement:
		fmt.Fprintf(b, "WhileStatement\n")
		dumpExpr(b, n.Test, depth+1)
		dumpStmt(b, n.Body, depth+1)
	case *ReturnStatement:
		fmt.Fprintf(b, "ReturnStatement\n")
		if n.Argument != nil {
			dumpExpr(b, n.Argument, depth+1)
		}
	case *BreakStatement:
		fmt.Fprintf(b, "BreakStatement\n")
	case *ContinueStatement:
		fmt.Fprintf(b, "ContinueStatement\n")
	case *VariableDeclaration:
		fmt.Fprintf(b, "VariableDeclaration(%s)\n", n.Kind)
		for _, d := range n.Declarations {
			indent(b, depth+1)
			fmt.Fprintf(b, "%s\n", d.Id.Name)
			if d.Init != nil {
				dumpExpr(b, d.Init, depth+2)
			}
		}
	case *FunctionDeclaration:
		fmt.Fprintf(b, "FunctionDeclaration(%s)\n", identOrAnon(n.Id))
		dumpStmt(b, n.Body, depth+1)
	case *ClassDeclaration:
		fmt.Fprintf(b, "ClassDeclaration(%s)\n", identOrAnon(n.Id))
	case *ModuleDeclaration:
		fmt.Fprintf(b, "ModuleDeclaration(%q)\n", n.Source)
	default:
		fmt.Fprintf(b, "%T\n", n)
	}
}

func dumpExpr(b *strings.Builder, e Expr, depth int) {
	indent(b, depth)
	switch n := e.(type) {
	case *NumberLiteral:
		fmt.Fprintf(b, "NumberLiteral(%v)\n", n.Value)
	case *StringLiteral:
		fmt.Fprintf(b, "StringLiteral(%q)\n", n.Value)
	case *BooleanLiteral:
		fmt.Fprintf(b, "BooleanLiteral(%v)\n", n.Value)
	case *NullLiteral:
		fmt.Fprintf(b, "NullLiteral\n")
	case *Identifier:
		fmt.Fprintf(b, "Identifier(%s)\n", n.Name)
	case *ArrayExpression:
		fmt.Fprintf(b, "ArrayExpression\n")
		for _, el := range n.Elements {
			dumpExpr(b, el, depth+1)
		}
	case *BinaryExpression:
		fmt.Fprintf(b, "BinaryExpression(%s)\n", n.Operator)
		dumpExpr(b, n.Left, depth+1)
		dumpExpr(b, n.Right, depth+1)
	case *LogicalExpression:
		fmt.Fprintf(b, "LogicalExpression(%s)\n", n.Operator)
		dumpExpr(b, n.Left, depth+1)
		dumpExpr(b, n.Right, depth+1)
	case *AssignmentExpression:
		fmt.Fprintf(b, "AssignmentExpression(%s)\n", n.Operator)
		dumpExpr(b, n.Target, depth+1)
		dumpExpr(b, n.Value, depth+1)
	case *CallExpression:
		fmt.Fprintf(b, "CallExpression\n")
		dumpExpr(b, n.Callee, depth+1)
		for _, a := range n.Arguments {
			dumpExpr(b, a, depth+1)
		}
	default:
		fmt.Fprintf(b, "%T\n", n)
	}
}

func identOrAnon(id *Identifier) string {
	if id == nil {
		return "<anonymous>"
	}
	return string(id.Name)
}
