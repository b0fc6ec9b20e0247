package lexer

import (
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5;
let ten = 10;

let add = fn(x, y) {
  return x + y;
};

let result = add(five, ten);
!*-/5;
5 < 10 > 5;

if (5 < 10) {
	return true;
} else {
	return false;
}

10 == 10;
10 != 9;
"foobar"
"foo bar"
[1, 2];
{"foo": "bar"}
// this line disappears
let next = 1;`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
		expectedLine    int
	}{
		{LET, "let", 1},
		{IDENT, "five", 1},
		{ASSIGN, "=", 1},
		{INT, "5", 1},
		{SEMICOLON, ";", 1},
		{LET, "let", 2},
		{IDENT, "ten", 2},
		{ASSIGN, "=", 2},
		{INT, "10", 2},
		{SEMICOLON, ";", 2},
		{LET, "let", 4},
		{IDENT, "add", 4},
		{ASSIGN, "=", 4},
		{FUNCTION, "fn", 4},
		{LPAREN, "(", 4},
		{IDENT, "x", 4},
		{COMMA, ",", 4},
		{IDENT, "y", 4},
		{RPAREN, ")", 4},
		{LBRACE, "{", 4},
		{RETURN, "return", 5},
		{IDENT, "x", 5},
		{PLUS, "+", 5},
		{IDENT, "y", 5},
		{SEMICOLON, ";", 5},
		{RBRACE, "}", 6},
		{SEMICOLON, ";", 6},
		{LET, "let", 8},
		{IDENT, "result", 8},
		{ASSIGN, "=", 8},
		{IDENT, "add", 8},
		{LPAREN, "(", 8},
		{IDENT, "five", 8},
		{COMMA, ",", 8},
		{IDENT, "ten", 8},
		{RPAREN, ")", 8},
		{SEMICOLON, ";", 8},
		{BANG, "!", 9},
		{ASTERISK, "*", 9},
		{MINUS, "-", 9},
		{SLASH, "/", 9},
		{INT, "5", 9},
		{SEMICOLON, ";", 9},
		{INT, "5", 10},
		{LT, "<", 10},
		{INT, "10", 10},
		{GT, ">", 10},
		{INT, "5", 10},
		{SEMICOLON, ";", 10},
		{IF, "if", 12},
		{LPAREN, "(", 12},
		{INT, "5", 12},
		{LT, "<", 12},
		{INT, "10", 12},
		{RPAREN, ")", 12},
		{LBRACE, "{", 12},
		{RETURN, "return", 13},
		{TRUE, "true", 13},
		{SEMICOLON, ";", 13},
		{RBRACE, "}", 14},
		{ELSE, "else", 14},
		{LBRACE, "{", 14},
		{RETURN, "return", 15},
		{FALSE, "false", 15},
		{SEMICOLON, ";", 15},
		{RBRACE, "}", 16},
		{INT, "10", 18},
		{EQ, "==", 18},
		{INT, "10", 18},
		{SEMICOLON, ";", 18},
		{INT, "10", 19},
		{NOT_EQ, "!=", 19},
		{INT, "9", 19},
		{SEMICOLON, ";", 19},
		{STRING, "foobar", 20},
		{STRING, "foo bar", 21},
		{LBRACKET, "[", 22},
		{INT, "1", 22},
		{COMMA, ",", 22},
		{INT, "2", 22},
		{RBRACKET, "]", 22},
		{SEMICOLON, ";", 22},
		{LBRACE, "{", 23},
		{STRING, "foo", 23},
		{COLON, ":", 23},
		{STRING, "bar", 23},
		{RBRACE, "}", 23},
		{LET, "let", 25},
		{IDENT, "next", 25},
		{ASSIGN, "=", 25},
		{INT, "1", 25},
		{SEMICOLON, ";", 25},
		{EOF, "", 25},
	}

	l := NewLexerFromString(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q (literal %q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
		if tok.Line != tt.expectedLine {
			t.Errorf("tests[%d] (%q) - line wrong. expected=%d, got=%d",
				i, tok.Literal, tt.expectedLine, tok.Line)
		}
	}
}

func TestTokenPositions(t *testing.T) {
	input := "let x = 5;"

	tests := []struct {
		expectedType   TokenType
		expectedColumn int
		expectedStart  int
		expectedEnd    int
	}{
		{LET, 1, 0, 3},
		{IDENT, 5, 4, 5},
		{ASSIGN, 7, 6, 7},
		{INT, 9, 8, 9},
		{SEMICOLON, 10, 9, 10},
	}

	l := NewLexerFromString(input)

	for i, tt := range tests {
		tok := l.NextToken()

		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%q, got=%q", i, tt.expectedType, tok.Type)
		}
		if tok.Line != 1 {
			t.Errorf("tests[%d] - line wrong. expected=1, got=%d", i, tok.Line)
		}
		if tok.Column != tt.expectedColumn {
			t.Errorf("tests[%d] (%q) - column wrong. expected=%d, got=%d",
				i, tok.Literal, tt.expectedColumn, tok.Column)
		}
		if tok.StartPos != tt.expectedStart {
			t.Errorf("tests[%d] (%q) - start pos wrong. expected=%d, got=%d",
				i, tok.Literal, tt.expectedStart, tok.StartPos)
		}
		if tok.EndPos != tt.expectedEnd {
			t.Errorf("tests[%d] (%q) - end pos wrong. expected=%d, got=%d",
				i, tok.Literal, tt.expectedEnd, tok.EndPos)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`"hello"`, "hello"},
		{`"a\nb"`, "a\nb"},
		{`"a\tb"`, "a\tb"},
		{`"say \"hi\""`, `say "hi"`},
		{`"back\\slash"`, `back\slash`},
	}

	for _, tt := range tests {
		l := NewLexerFromString(tt.input)
		tok := l.NextToken()

		if tok.Type != STRING {
			t.Fatalf("input %q - tokentype wrong. expected=STRING, got=%q", tt.input, tok.Type)
		}
		if tok.Literal != tt.expected {
			t.Errorf("input %q - literal wrong. expected=%q, got=%q", tt.input, tt.expected, tok.Literal)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	l := NewLexerFromString(`"never closed`)
	tok := l.NextToken()

	if tok.Type != ILLEGAL {
		t.Fatalf("tokentype wrong. expected=ILLEGAL, got=%q", tok.Type)
	}
}

func TestIllegalCharacter(t *testing.T) {
	l := NewLexerFromString("let a = 5 @")

	var tok Token
	for tok = l.NextToken(); tok.Type != EOF && tok.Type != ILLEGAL; tok = l.NextToken() {
	}

	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL token for '@', got %q", tok.Type)
	}
	if tok.Literal != "@" {
		t.Errorf("literal wrong. expected=%q, got=%q", "@", tok.Literal)
	}
}

func TestKeywordsAreReserved(t *testing.T) {
	for kw, tokType := range keywords {
		if got := LookupIdent(kw); got != tokType {
			t.Errorf("LookupIdent(%q) = %q, want %q", kw, got, tokType)
		}
	}
	if got := LookupIdent("fnord"); got != IDENT {
		t.Errorf("LookupIdent(%q) = %q, want IDENT", "fnord", got)
	}
}
