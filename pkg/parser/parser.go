package parser

import (
	"fmt"
	"strconv"

	"github.com/xyproto/env/v2"

	"skink/pkg/errors"
	"skink/pkg/lexer"
	"skink/pkg/source"
)

// --- Debug Flag ---
var debugParser = env.Bool("SKINK_DEBUG_PARSER")

func debugPrint(format string, args ...interface{}) {
	if debugParser {
		fmt.Printf("[Parser Debug] "+format+"\n", args...)
	}
}

// --- End Debug Flag ---

// Parser takes a lexer and builds an AST. Parsing is single-shot: the first
// syntax error aborts the parse and no partial AST is returned.
type Parser struct {
	l      *lexer.Lexer
	source *source.SourceFile // cached from lexer
	err    *errors.SyntaxError

	curToken  lexer.Token
	peekToken lexer.Token

	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn
}

// Parsing function types for the Pratt parser.
type (
	prefixParseFn func() Expression
	infixParseFn  func(Expression) Expression // Arg is the left side expression
)

// Precedence levels, lowest to highest binding strength. All binary
// operators are left-associative.
const (
	_ int = iota
	LOWEST
	EQUALS      // == or !=
	LESSGREATER // < or >
	SUM         // + or -
	PRODUCT     // * or /
	PREFIX      // -x, +x or !x
	POSTFIX     // f(x) or a[i] — bind tighter than any binary operator
)

// precedences maps infix/postfix operator tokens to their binding power.
var precedences = map[lexer.TokenType]int{
	lexer.EQ:       EQUALS,
	lexer.NOT_EQ:   EQUALS,
	lexer.LT:       LESSGREATER,
	lexer.GT:       LESSGREATER,
	lexer.PLUS:     SUM,
	lexer.MINUS:    SUM,
	lexer.SLASH:    PRODUCT,
	lexer.ASTERISK: PRODUCT,
	lexer.LPAREN:   POSTFIX,
	lexer.LBRACKET: POSTFIX,
}

// prefixOpcodes maps prefix operator tokens to opcodes. Add and Sub double
// as unary sign operators.
var prefixOpcodes = map[lexer.TokenType]Opcode{
	lexer.PLUS:  Add,
	lexer.MINUS: Sub,
	lexer.BANG:  Bang,
}

// infixOpcodes maps binary operator tokens to opcodes.
var infixOpcodes = map[lexer.TokenType]Opcode{
	lexer.PLUS:     Add,
	lexer.MINUS:    Sub,
	lexer.ASTERISK: Mul,
	lexer.SLASH:    Div,
	lexer.EQ:       Eq,
	lexer.NOT_EQ:   NotEq,
	lexer.LT:       Lt,
	lexer.GT:       Gt,
}

// NewParser creates a new Parser.
func NewParser(l *lexer.Lexer) *Parser {
	p := &Parser{
		l:      l,
		source: l.GetSource(), // Cache source from lexer
	}

	p.prefixParseFns = make(map[lexer.TokenType]prefixParseFn)
	p.infixParseFns = make(map[lexer.TokenType]infixParseFn)

	// --- Register Prefix Functions ---
	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.INT, p.parseIntegerLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpression)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.PLUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedExpression)
	p.registerPrefix(lexer.IF, p.parseIfExpression)
	p.registerPrefix(lexer.FUNCTION, p.parseFunctionLiteral)
	p.registerPrefix(lexer.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(lexer.LBRACE, p.parseHashLiteral)

	// --- Register Infix Functions ---
	p.registerInfix(lexer.PLUS, p.parseInfixExpression)
	p.registerInfix(lexer.MINUS, p.parseInfixExpression)
	p.registerInfix(lexer.SLASH, p.parseInfixExpression)
	p.registerInfix(lexer.ASTERISK, p.parseInfixExpression)
	p.registerInfix(lexer.EQ, p.parseInfixExpression)
	p.registerInfix(lexer.NOT_EQ, p.parseInfixExpression)
	p.registerInfix(lexer.LT, p.parseInfixExpression)
	p.registerInfix(lexer.GT, p.parseInfixExpression)
	p.registerInfix(lexer.LPAREN, p.parseCallExpression)
	p.registerInfix(lexer.LBRACKET, p.parseIndexExpression)

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// Err returns the syntax error that aborted the parse, or nil.
func (p *Parser) Err() *errors.SyntaxError {
	return p.err
}

// nextToken advances the current and peek tokens.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
	debugPrint("nextToken(): cur='%s' (%s), peek='%s' (%s)", p.curToken.Literal, p.curToken.Type, p.peekToken.Literal, p.peekToken.Type)
}

// --- Entry Points ---

// ParseProgram parses the whole input as a sequence of statements, consuming
// it entirely. On failure it returns a nil program and the syntax error.
func (p *Parser) ParseProgram() (*Program, *errors.SyntaxError) {
	program := &Program{
		Statements: []Statement{},
		Source:     p.source,
	}

	for !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil, p.err
		}
		program.Statements = append(program.Statements, stmt)
		p.nextToken()
	}

	return program, nil
}

// ParseStatement parses exactly one statement and requires the input to end
// after it. Useful for REPL and test callers.
func (p *Parser) ParseStatement() (Statement, *errors.SyntaxError) {
	stmt := p.parseStatement()
	if stmt == nil {
		return nil, p.err
	}
	if !p.expectPeek(lexer.EOF) {
		return nil, p.err
	}
	return stmt, nil
}

// ParseExpression parses exactly one expression and requires the input to
// end after it.
func (p *Parser) ParseExpression() (Expression, *errors.SyntaxError) {
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil, p.err
	}
	if !p.expectPeek(lexer.EOF) {
		return nil, p.err
	}
	return expr, nil
}

// --- Statement Parsing ---

func (p *Parser) parseStatement() Statement {
	switch p.curToken.Type {
	case lexer.LET:
		return p.parseLetStatement()
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.LBRACE:
		// `{}` is only ever the empty hash literal; everything else starting
		// with '{' at statement position is a block.
		if p.peekTokenIs(lexer.RBRACE) {
			return p.parseExpressionStatement()
		}
		return p.parseBlockStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseLetStatement parses `let <name> = <expr>;`.
func (p *Parser) parseLetStatement() Statement {
	stmt := &LetStatement{Token: p.curToken}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	stmt.Name = &Identifier{Token: p.curToken, Value: p.curToken.Literal}

	if !p.expectPeek(lexer.ASSIGN) {
		return nil
	}

	p.nextToken() // Consume '='
	stmt.Value = p.parseExpression(LOWEST)
	if stmt.Value == nil {
		return nil
	}

	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return stmt
}

// parseReturnStatement parses `return <expr>;`.
func (p *Parser) parseReturnStatement() Statement {
	stmt := &ReturnStatement{Token: p.curToken}

	p.nextToken() // Consume 'return'
	stmt.ReturnValue = p.parseExpression(LOWEST)
	if stmt.ReturnValue == nil {
		return nil
	}

	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return stmt
}

// parseExpressionStatement parses `<expr>;`.
func (p *Parser) parseExpressionStatement() Statement {
	stmt := &ExpressionStatement{Token: p.curToken}

	stmt.Expression = p.parseExpression(LOWEST)
	if stmt.Expression == nil {
		return nil
	}

	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	return stmt
}

// parseBlockStatement parses `{ <stmt>+ }`. The current token is '{'. A
// block must contain at least one statement; an empty pair of braces is
// reserved for the empty hash literal and rejected here.
func (p *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Token: p.curToken}
	block.Statements = []Statement{}

	p.nextToken() // Consume '{'

	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt == nil {
			return nil
		}
		block.Statements = append(block.Statements, stmt)
		p.nextToken()
	}

	if !p.curTokenIs(lexer.RBRACE) {
		p.addError(p.curToken, "'}'")
		return nil
	}

	if len(block.Statements) == 0 {
		// Reached from positions where only a block is legal (if/fn bodies).
		p.addError(p.curToken, "at least one statement in block")
		return nil
	}

	return block
}

// --- Expression Parsing (Pratt Parser) ---

func (p *Parser) parseExpression(precedence int) Expression {
	debugPrint("parseExpression(prec=%d): cur='%s' (%s)", precedence, p.curToken.Literal, p.curToken.Type)
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	leftExp := prefix()
	if leftExp == nil {
		return nil // Prefix parsing failed, propagate nil
	}

	for !p.peekTokenIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return leftExp
		}

		p.nextToken() // Move onto the operator token

		leftExp = infix(leftExp)
		if leftExp == nil {
			return nil
		}
	}

	return leftExp
}

// --- Prefix Parse Functions ---

func (p *Parser) parseIdentifier() Expression {
	return &Identifier{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseIntegerLiteral() Expression {
	lit := &IntegerLiteral{Token: p.curToken}

	value, err := strconv.ParseInt(p.curToken.Literal, 10, 64)
	if err != nil {
		p.addError(p.curToken, "an integer literal within int64 range")
		p.err.CausedBy(err)
		return nil
	}

	lit.Value = value
	return lit
}

func (p *Parser) parseStringLiteral() Expression {
	return &StringLiteral{Token: p.curToken, Value: p.curToken.Literal}
}

func (p *Parser) parseBooleanLiteral() Expression {
	return &BooleanLiteral{Token: p.curToken, Value: p.curTokenIs(lexer.TRUE)}
}

// parsePrefixExpression handles expressions like !expr, -expr and +expr.
func (p *Parser) parsePrefixExpression() Expression {
	expr := &PrefixExpression{
		Token:    p.curToken,
		Operator: prefixOpcodes[p.curToken.Type],
	}

	p.nextToken() // Consume the operator
	expr.Right = p.parseExpression(PREFIX)
	if expr.Right == nil {
		return nil
	}
	return expr
}

// parseGroupedExpression handles `( <expr> )`. Grouping only steers
// precedence; no node is produced for the parentheses themselves.
func (p *Parser) parseGroupedExpression() Expression {
	p.nextToken() // Consume '('

	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return expr
}

// parseIfExpression parses `if (<cond>) <block> [else <block>]`. The
// condition must be parenthesized and both branches must be blocks.
func (p *Parser) parseIfExpression() Expression {
	expr := &IfExpression{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}

	p.nextToken() // Consume '('
	expr.Condition = p.parseExpression(LOWEST)
	if expr.Condition == nil {
		return nil
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}

	expr.Consequence = p.parseBlockStatement()
	if expr.Consequence == nil {
		return nil
	}

	if p.peekTokenIs(lexer.ELSE) {
		p.nextToken() // Consume '}' of the consequence

		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}
		expr.Alternative = p.parseBlockStatement()
		if expr.Alternative == nil {
			return nil
		}
	}

	return expr
}

// parseFunctionLiteral parses `fn (<params>) <block>`.
func (p *Parser) parseFunctionLiteral() Expression {
	lit := &FunctionLiteral{Token: p.curToken}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}

	lit.Parameters = p.parseFunctionParameters()
	if lit.Parameters == nil {
		return nil
	}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}

	lit.Body = p.parseBlockStatement()
	if lit.Body == nil {
		return nil
	}

	return lit
}

// parseFunctionParameters parses a comma-separated (optionally trailing
// comma) list of parameter names. The current token is '('.
func (p *Parser) parseFunctionParameters() []*Identifier {
	identifiers := []*Identifier{}

	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken() // Consume ')'
		return identifiers
	}

	if !p.expectPeek(lexer.IDENT) {
		return nil
	}
	identifiers = append(identifiers, &Identifier{Token: p.curToken, Value: p.curToken.Literal})

	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken() // Consume ','

		// Allow trailing comma before ')'
		if p.peekTokenIs(lexer.RPAREN) {
			p.nextToken()
			return identifiers
		}

		if !p.expectPeek(lexer.IDENT) {
			return nil
		}
		identifiers = append(identifiers, &Identifier{Token: p.curToken, Value: p.curToken.Literal})
	}

	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	return identifiers
}

// parseArrayLiteral parses `[ <expr>, ... ]`.
func (p *Parser) parseArrayLiteral() Expression {
	arr := &ArrayLiteral{Token: p.curToken}

	arr.Elements = p.parseExpressionList(lexer.RBRACKET)
	if arr.Elements == nil {
		return nil
	}
	return arr
}

// parseHashLiteral parses `{ <key>: <value>, ... }`. The current token is
// '{'. The empty form `{}` is the empty hash literal.
func (p *Parser) parseHashLiteral() Expression {
	hash := &HashLiteral{Token: p.curToken}
	hash.Pairs = []HashPair{}

	for !p.peekTokenIs(lexer.RBRACE) {
		p.nextToken() // Move onto the key
		key := p.parseExpression(LOWEST)
		if key == nil {
			return nil
		}

		if !p.expectPeek(lexer.COLON) {
			return nil
		}

		p.nextToken() // Consume ':'
		value := p.parseExpression(LOWEST)
		if value == nil {
			return nil
		}

		hash.Pairs = append(hash.Pairs, HashPair{Key: key, Value: value})

		// A comma continues the list (and may trail); anything other than
		// ',' or '}' here is a syntax error.
		if !p.peekTokenIs(lexer.RBRACE) && !p.expectPeek(lexer.COMMA) {
			return nil
		}
	}

	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}

	return hash
}

// --- Infix Parse Functions ---

// parseInfixExpression handles left-associative binary operators. The
// current token is the operator.
func (p *Parser) parseInfixExpression(left Expression) Expression {
	expr := &InfixExpression{
		Token:    p.curToken,
		Operator: infixOpcodes[p.curToken.Type],
		Left:     left,
	}

	// Left-associative: parse the right-hand side at the operator's own
	// precedence so equal-precedence operators group to the left.
	precedence := p.curPrecedence()
	p.nextToken() // Consume the operator
	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}
	return expr
}

// parseCallExpression handles `<callee>(<args>)`. The callee must be a bare
// identifier or an inline function literal; anything else cannot be called
// directly.
func (p *Parser) parseCallExpression(function Expression) Expression {
	switch function.(type) {
	case *Identifier, *FunctionLiteral:
		// legal call target
	default:
		p.addError(p.curToken, "an identifier or function literal as call target")
		return nil
	}

	expr := &CallExpression{Token: p.curToken, Function: function}
	expr.Arguments = p.parseExpressionList(lexer.RPAREN)
	if expr.Arguments == nil {
		return nil
	}
	return expr
}

// parseIndexExpression handles `<target>[<index>]`. The target must be a
// bare identifier, an array literal, or a hash literal.
func (p *Parser) parseIndexExpression(left Expression) Expression {
	switch left.(type) {
	case *Identifier, *ArrayLiteral, *HashLiteral:
		// legal index target
	default:
		p.addError(p.curToken, "an identifier, array literal, or hash literal as index target")
		return nil
	}

	expr := &IndexExpression{Token: p.curToken, Left: left}

	p.nextToken() // Consume '['
	expr.Index = p.parseExpression(LOWEST)
	if expr.Index == nil {
		return nil
	}

	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return expr
}

// parseExpressionList parses a comma-separated list of expressions until a
// specific end token, accepting an optional trailing comma.
func (p *Parser) parseExpressionList(end lexer.TokenType) []Expression {
	list := []Expression{}

	// Check for empty list: call() or []
	if p.peekTokenIs(end) {
		p.nextToken() // Consume the end token
		return list
	}

	p.nextToken() // Move onto the first expression
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	list = append(list, expr)

	for p.peekTokenIs(lexer.COMMA) {
		p.nextToken() // Consume ','

		// Allow trailing comma
		if p.peekTokenIs(end) {
			p.nextToken() // Consume the end token
			return list
		}

		p.nextToken() // Move onto the next expression
		expr = p.parseExpression(LOWEST)
		if expr == nil {
			return nil
		}
		list = append(list, expr)
	}

	if !p.expectPeek(end) {
		return nil
	}

	return list
}

// --- Helper Methods ---

func (p *Parser) registerPrefix(tokenType lexer.TokenType, fn prefixParseFn) {
	p.prefixParseFns[tokenType] = fn
}

func (p *Parser) registerInfix(tokenType lexer.TokenType, fn infixParseFn) {
	p.infixParseFns[tokenType] = fn
}

func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

// --- Precedence Helpers ---

func (p *Parser) peekPrecedence() int {
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// --- Error Handling ---

// addError records the first syntax error; later errors are dropped since
// the parse aborts immediately anyway.
func (p *Parser) addError(tok lexer.Token, expected string) {
	if p.err != nil {
		return
	}
	p.err = &errors.SyntaxError{
		Position: errors.Position{
			Line:     tok.Line,
			Column:   tok.Column,
			StartPos: tok.StartPos,
			EndPos:   tok.EndPos,
			Source:   p.source,
		},
		Expected: expected,
		Found:    describeToken(tok),
	}
}

func (p *Parser) peekError(t lexer.TokenType) {
	p.addError(p.peekToken, describeTokenType(t))
}

func (p *Parser) noPrefixParseFnError(tok lexer.Token) {
	p.addError(tok, "an expression")
}

// describeToken renders a token for the "found" half of an error message.
func describeToken(tok lexer.Token) string {
	switch tok.Type {
	case lexer.EOF:
		return "end of input"
	case lexer.STRING:
		return strconv.Quote(tok.Literal)
	default:
		return "'" + tok.Literal + "'"
	}
}

// describeTokenType renders an expected token type for error messages.
func describeTokenType(t lexer.TokenType) string {
	switch t {
	case lexer.IDENT:
		return "an identifier"
	case lexer.EOF:
		return "end of input"
	case lexer.FUNCTION:
		return "'fn'"
	case lexer.LET, lexer.RETURN, lexer.IF, lexer.ELSE, lexer.TRUE, lexer.FALSE:
		return "'" + lowerKeyword(t) + "'"
	default:
		return "'" + string(t) + "'"
	}
}

func lowerKeyword(t lexer.TokenType) string {
	switch t {
	case lexer.LET:
		return "let"
	case lexer.RETURN:
		return "return"
	case lexer.IF:
		return "if"
	case lexer.ELSE:
		return "else"
	case lexer.TRUE:
		return "true"
	case lexer.FALSE:
		return "false"
	}
	return string(t)
}
