package parser

import (
	"fmt"
	"strings"
)

// Dump renders an AST as an indented tree, one node per line. Intended for
// the CLI's --ast output and debugging; the canonical source form is
// Node.String().
func Dump(node Node) string {
	var b strings.Builder
	dumpNode(&b, node, 0)
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func dumpNode(b *strings.Builder, node Node, depth int) {
	indent(b, depth)

	switch n := node.(type) {
	case *Program:
		fmt.Fprintf(b, "Program (%d statements)\n", len(n.Statements))
		for _, s := range n.Statements {
			dumpNode(b, s, depth+1)
		}
	case *LetStatement:
		fmt.Fprintf(b, "Let %s\n", n.Name.Value)
		dumpNode(b, n.Value, depth+1)
	case *ReturnStatement:
		b.WriteString("Return\n")
		dumpNode(b, n.ReturnValue, depth+1)
	case *ExpressionStatement:
		b.WriteString("ExpressionStatement\n")
		dumpNode(b, n.Expression, depth+1)
	case *BlockStatement:
		fmt.Fprintf(b, "Block (%d statements)\n", len(n.Statements))
		for _, s := range n.Statements {
			dumpNode(b, s, depth+1)
		}
	case *Identifier:
		fmt.Fprintf(b, "Identifier %s\n", n.Value)
	case *IntegerLiteral:
		fmt.Fprintf(b, "Integer %d\n", n.Value)
	case *BooleanLiteral:
		fmt.Fprintf(b, "Boolean %t\n", n.Value)
	case *StringLiteral:
		fmt.Fprintf(b, "String %q\n", n.Value)
	case *PrefixExpression:
		fmt.Fprintf(b, "PrefixOp %s\n", n.Operator)
		dumpNode(b, n.Right, depth+1)
	case *InfixExpression:
		fmt.Fprintf(b, "InfixOp %s\n", n.Operator)
		dumpNode(b, n.Left, depth+1)
		dumpNode(b, n.Right, depth+1)
	case *IfExpression:
		b.WriteString("If\n")
		dumpNode(b, n.Condition, depth+1)
		dumpNode(b, n.Consequence, depth+1)
		if n.Alternative != nil {
			dumpNode(b, n.Alternative, depth+1)
		}
	case *FunctionLiteral:
		params := make([]string, 0, len(n.Parameters))
		for _, p := range n.Parameters {
			params = append(params, p.Value)
		}
		fmt.Fprintf(b, "FunctionLiteral (%s)\n", strings.Join(params, ", "))
		dumpNode(b, n.Body, depth+1)
	case *CallExpression:
		fmt.Fprintf(b, "Call (%d arguments)\n", len(n.Arguments))
		dumpNode(b, n.Function, depth+1)
		for _, a := range n.Arguments {
			dumpNode(b, a, depth+1)
		}
	case *IndexExpression:
		b.WriteString("Index\n")
		dumpNode(b, n.Left, depth+1)
		dumpNode(b, n.Index, depth+1)
	case *ArrayLiteral:
		fmt.Fprintf(b, "ArrayLiteral (%d elements)\n", len(n.Elements))
		for _, el := range n.Elements {
			dumpNode(b, el, depth+1)
		}
	case *HashLiteral:
		fmt.Fprintf(b, "HashLiteral (%d pairs)\n", len(n.Pairs))
		for _, pair := range n.Pairs {
			dumpNode(b, pair.Key, depth+1)
			dumpNode(b, pair.Value, depth+2)
		}
	default:
		fmt.Fprintf(b, "%T\n", node)
	}
}
