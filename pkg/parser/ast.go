package parser

import (
	"bytes"
	"strconv"
	"strings"

	"skink/pkg/lexer"
	"skink/pkg/source"
)

// --- Interfaces ---

// Node is the base interface for all AST nodes.
type Node interface {
	TokenLiteral() string // Returns the literal value of the token associated with the node
	String() string       // Returns the canonical source form of the node
}

// Statement represents a statement node in the AST.
type Statement interface {
	Node
	statementNode() // Dummy method for distinguishing statement types
}

// Expression represents an expression node in the AST.
type Expression interface {
	Node
	expressionNode() // Dummy method for distinguishing expression types
}

// --- Opcode ---

// Opcode is the closed enumeration of operator kinds. Add and Sub are reused
// for both infix and prefix (unary sign) roles; arity at the AST level tells
// them apart.
type Opcode int

const (
	Add Opcode = iota // +
	Sub               // -
	Mul               // *
	Div               // /
	Bang              // !
	Eq                // ==
	NotEq             // !=
	Lt                // <
	Gt                // >
)

func (op Opcode) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Bang:
		return "!"
	case Eq:
		return "=="
	case NotEq:
		return "!="
	case Lt:
		return "<"
	case Gt:
		return ">"
	}
	return "?"
}

// --- Program Node ---

// Program is the root node of the AST: an ordered sequence of top-level
// statements.
type Program struct {
	Statements []Statement
	Source     *source.SourceFile // Source context for error reporting
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out bytes.Buffer
	for i, s := range p.Statements {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(s.String())
	}
	return out.String()
}

// --- Statement Nodes ---

// LetStatement binds a name to a value.
// let <Name> = <Value>;
type LetStatement struct {
	Token lexer.Token // The lexer.LET token
	Name  *Identifier // The variable name
	Value Expression  // The expression being assigned
}

func (ls *LetStatement) statementNode()       {}
func (ls *LetStatement) TokenLiteral() string { return ls.Token.Literal }
func (ls *LetStatement) String() string {
	var out bytes.Buffer
	out.WriteString("let ")
	out.WriteString(ls.Name.String())
	out.WriteString(" = ")
	if ls.Value != nil {
		out.WriteString(ls.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// ReturnStatement exits the enclosing function with a value.
// return <ReturnValue>;
type ReturnStatement struct {
	Token       lexer.Token // The lexer.RETURN token
	ReturnValue Expression  // The expression to return
}

func (rs *ReturnStatement) statementNode()       {}
func (rs *ReturnStatement) TokenLiteral() string { return rs.Token.Literal }
func (rs *ReturnStatement) String() string {
	var out bytes.Buffer
	out.WriteString("return ")
	if rs.ReturnValue != nil {
		out.WriteString(rs.ReturnValue.String())
	}
	out.WriteString(";")
	return out.String()
}

// ExpressionStatement is an expression evaluated for effect.
// <expression>;
type ExpressionStatement struct {
	Token      lexer.Token // The first token of the expression
	Expression Expression
}

func (es *ExpressionStatement) statementNode()       {}
func (es *ExpressionStatement) TokenLiteral() string { return es.Token.Literal }
func (es *ExpressionStatement) String() string {
	if es.Expression != nil {
		return es.Expression.String() + ";"
	}
	return ";"
}

// BlockStatement is a scoped statement sequence delimited by braces.
// Invariant: Statements is non-empty — an empty `{}` is the empty hash
// literal, never a block.
type BlockStatement struct {
	Token      lexer.Token // The '{' token
	Statements []Statement
}

func (bs *BlockStatement) statementNode()       {}
func (bs *BlockStatement) TokenLiteral() string { return bs.Token.Literal }
func (bs *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for i, s := range bs.Statements {
		if i > 0 {
			out.WriteString(" ")
		}
		out.WriteString(s.String())
	}
	out.WriteString(" }")
	return out.String()
}

// --- Expression Nodes ---

// Identifier represents a variable or function name.
type Identifier struct {
	Token lexer.Token // The lexer.IDENT token
	Value string
}

func (i *Identifier) expressionNode()      {}
func (i *Identifier) TokenLiteral() string { return i.Token.Literal }
func (i *Identifier) String() string       { return i.Value }

// IntegerLiteral represents an integer literal like 5 or 1343456.
type IntegerLiteral struct {
	Token lexer.Token // The lexer.INT token
	Value int64
}

func (il *IntegerLiteral) expressionNode()      {}
func (il *IntegerLiteral) TokenLiteral() string { return il.Token.Literal }
func (il *IntegerLiteral) String() string       { return strconv.FormatInt(il.Value, 10) }

// BooleanLiteral represents true or false.
type BooleanLiteral struct {
	Token lexer.Token // The lexer.TRUE or lexer.FALSE token
	Value bool
}

func (bl *BooleanLiteral) expressionNode()      {}
func (bl *BooleanLiteral) TokenLiteral() string { return bl.Token.Literal }
func (bl *BooleanLiteral) String() string       { return bl.Token.Literal }

// StringLiteral represents a double-quoted string literal.
type StringLiteral struct {
	Token lexer.Token // The lexer.STRING token
	Value string      // Decoded contents (escapes resolved)
}

func (sl *StringLiteral) expressionNode()      {}
func (sl *StringLiteral) TokenLiteral() string { return sl.Token.Literal }
func (sl *StringLiteral) String() string       { return strconv.Quote(sl.Value) }

// PrefixExpression applies a prefix operator to an operand.
// <operator><Right>
type PrefixExpression struct {
	Token    lexer.Token // The prefix operator token, e.g. '!'
	Operator Opcode
	Right    Expression
}

func (pe *PrefixExpression) expressionNode()      {}
func (pe *PrefixExpression) TokenLiteral() string { return pe.Token.Literal }
func (pe *PrefixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(pe.Operator.String())
	out.WriteString(pe.Right.String())
	out.WriteString(")")
	return out.String()
}

// InfixExpression combines two operands with a binary operator.
// <Left> <operator> <Right>
type InfixExpression struct {
	Token    lexer.Token // The operator token, e.g. '+'
	Left     Expression
	Operator Opcode
	Right    Expression
}

func (ie *InfixExpression) expressionNode()      {}
func (ie *InfixExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *InfixExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ie.Left.String())
	out.WriteString(" ")
	out.WriteString(ie.Operator.String())
	out.WriteString(" ")
	out.WriteString(ie.Right.String())
	out.WriteString(")")
	return out.String()
}

// IfExpression is a conditional with a mandatory parenthesized condition and
// block consequence/alternative.
// if (<Condition>) <Consequence> [else <Alternative>]
type IfExpression struct {
	Token       lexer.Token // The lexer.IF token
	Condition   Expression
	Consequence *BlockStatement
	Alternative *BlockStatement // may be nil
}

func (ie *IfExpression) expressionNode()      {}
func (ie *IfExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IfExpression) String() string {
	var out bytes.Buffer
	out.WriteString("if (")
	out.WriteString(ie.Condition.String())
	out.WriteString(") ")
	out.WriteString(ie.Consequence.String())
	if ie.Alternative != nil {
		out.WriteString(" else ")
		out.WriteString(ie.Alternative.String())
	}
	return out.String()
}

// FunctionLiteral is an anonymous function.
// fn(<Parameters>) <Body>
type FunctionLiteral struct {
	Token      lexer.Token // The lexer.FUNCTION token
	Parameters []*Identifier
	Body       *BlockStatement
}

func (fl *FunctionLiteral) expressionNode()      {}
func (fl *FunctionLiteral) TokenLiteral() string { return fl.Token.Literal }
func (fl *FunctionLiteral) String() string {
	var out bytes.Buffer
	params := make([]string, 0, len(fl.Parameters))
	for _, p := range fl.Parameters {
		params = append(params, p.String())
	}
	out.WriteString("fn(")
	out.WriteString(strings.Join(params, ", "))
	out.WriteString(") ")
	out.WriteString(fl.Body.String())
	return out.String()
}

// CallExpression applies arguments to a callee. The callee is restricted by
// the grammar to a bare identifier or an inline function literal.
// <Function>(<Arguments>)
type CallExpression struct {
	Token     lexer.Token // The '(' token
	Function  Expression  // *Identifier or *FunctionLiteral
	Arguments []Expression
}

func (ce *CallExpression) expressionNode()      {}
func (ce *CallExpression) TokenLiteral() string { return ce.Token.Literal }
func (ce *CallExpression) String() string {
	var out bytes.Buffer
	args := make([]string, 0, len(ce.Arguments))
	for _, a := range ce.Arguments {
		args = append(args, a.String())
	}
	out.WriteString(ce.Function.String())
	out.WriteString("(")
	out.WriteString(strings.Join(args, ", "))
	out.WriteString(")")
	return out.String()
}

// IndexExpression subscripts a target. The target is restricted by the
// grammar to a bare identifier, an array literal, or a hash literal.
// <Left>[<Index>]
type IndexExpression struct {
	Token lexer.Token // The '[' token
	Left  Expression  // *Identifier, *ArrayLiteral, or *HashLiteral
	Index Expression
}

func (ie *IndexExpression) expressionNode()      {}
func (ie *IndexExpression) TokenLiteral() string { return ie.Token.Literal }
func (ie *IndexExpression) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(ie.Left.String())
	out.WriteString("[")
	out.WriteString(ie.Index.String())
	out.WriteString("])")
	return out.String()
}

// ArrayLiteral is an ordered element list.
// [<Elements>]
type ArrayLiteral struct {
	Token    lexer.Token // The '[' token
	Elements []Expression
}

func (al *ArrayLiteral) expressionNode()      {}
func (al *ArrayLiteral) TokenLiteral() string { return al.Token.Literal }
func (al *ArrayLiteral) String() string {
	var out bytes.Buffer
	elements := make([]string, 0, len(al.Elements))
	for _, el := range al.Elements {
		elements = append(elements, el.String())
	}
	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")
	return out.String()
}

// HashPair is one key/value entry of a hash literal. Pairs keep their source
// order; key semantics (hashing, duplicates) are a downstream concern.
type HashPair struct {
	Key   Expression
	Value Expression
}

// HashLiteral is an ordered sequence of key:value pairs. The empty `{}` form
// is always a hash literal, never a block.
// {<Key>: <Value>, ...}
type HashLiteral struct {
	Token lexer.Token // The '{' token
	Pairs []HashPair
}

func (hl *HashLiteral) expressionNode()      {}
func (hl *HashLiteral) TokenLiteral() string { return hl.Token.Literal }
func (hl *HashLiteral) String() string {
	var out bytes.Buffer
	pairs := make([]string, 0, len(hl.Pairs))
	for _, pair := range hl.Pairs {
		pairs = append(pairs, pair.Key.String()+": "+pair.Value.String())
	}
	out.WriteString("{")
	out.WriteString(strings.Join(pairs, ", "))
	out.WriteString("}")
	return out.String()
}
