package lexer

import (
	"skink/pkg/source"
)

// TokenType represents the type of a token.
type TokenType string

// Token represents a lexical token.
type Token struct {
	Type     TokenType
	Literal  string // The actual text of the token (lexeme)
	Line     int    // 1-based line number where the token starts
	Column   int    // 1-based column number where the token starts
	StartPos int    // 0-based byte offset where the token starts
	EndPos   int    // 0-based byte offset after the token ends
}

// --- Token Types ---
const (
	// Special
	ILLEGAL TokenType = "ILLEGAL" // Unknown token/character
	EOF     TokenType = "EOF"     // End Of File

	// Identifiers + Literals
	IDENT  TokenType = "IDENT"  // add, foobar, x, y
	INT    TokenType = "INT"    // 1343456
	STRING TokenType = "STRING" // "hello world"

	// Operators
	ASSIGN   TokenType = "="
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	BANG     TokenType = "!"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	LT       TokenType = "<"
	GT       TokenType = ">"
	EQ       TokenType = "=="
	NOT_EQ   TokenType = "!="

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	COLON     TokenType = ":"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"
	LBRACKET  TokenType = "["
	RBRACKET  TokenType = "]"

	// Keywords
	FUNCTION TokenType = "FUNCTION"
	LET      TokenType = "LET"
	TRUE     TokenType = "TRUE"
	FALSE    TokenType = "FALSE"
	IF       TokenType = "IF"
	ELSE     TokenType = "ELSE"
	RETURN   TokenType = "RETURN"
)

var keywords = map[string]TokenType{
	"fn":     FUNCTION,
	"let":    LET,
	"true":   TRUE,
	"false":  FALSE,
	"if":     IF,
	"else":   ELSE,
	"return": RETURN,
}

// LookupIdent checks the keywords table for an identifier. Keywords are
// reserved words and win over the general identifier pattern.
func LookupIdent(ident string) TokenType {
	if tokType, ok := keywords[ident]; ok {
		return tokType
	}
	return IDENT
}

// Lexer holds the state of the scanner.
type Lexer struct {
	src          *source.SourceFile
	input        string
	position     int  // current position in input (points to current char's byte offset)
	readPosition int  // current reading position in input (byte offset after current char)
	ch           byte // current char under examination
	line         int  // current 1-based line number
	column       int  // current 1-based column number (position of l.position on l.line)
}

// NewLexer creates a new Lexer over a source file.
func NewLexer(src *source.SourceFile) *Lexer {
	// Column starts at 0; the initial readChar advances it to 1 for the
	// first character.
	l := &Lexer{src: src, input: src.Content, line: 1}
	l.readChar() // Initialize l.ch, l.position, l.readPosition
	return l
}

// NewLexerFromString creates a Lexer over a bare string, wrapping it in an
// eval source. Convenient for tests and REPL-style callers.
func NewLexerFromString(input string) *Lexer {
	return NewLexer(source.NewEvalSource(input))
}

// GetSource returns the source file this lexer scans.
func (l *Lexer) GetSource() *source.SourceFile {
	return l.src
}

// readChar gives us the next character and advances our position in the input string.
func (l *Lexer) readChar() {
	// Before advancing, check if the current character was a newline
	if l.ch == '\n' {
		l.line++
		l.column = 0 // Reset column, it will be incremented below
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0 // 0 is ASCII for NUL, signifies EOF
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++ // Increment column for the character now at l.position
}

// peekChar looks ahead in the input without consuming the character.
func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

// skipWhitespace consumes whitespace characters (space, tab, newline, carriage return).
// It relies on readChar to update line and column counts.
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// skipLineComment consumes a '//' comment up to (but not including) the newline.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != 0 {
		l.readChar()
	}
}

// NextToken scans the input and returns the next token.
func (l *Lexer) NextToken() Token {
	var tok Token

	l.skipWhitespace()

	// Capture token start position *after* skipping whitespace
	startLine := l.line
	startCol := l.column
	startPos := l.position

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			l.readChar() // Consume first '='
			literal := l.input[startPos : l.position+1]
			l.readChar() // Advance past second '='
			tok = Token{Type: EQ, Literal: literal, Line: startLine, Column: startCol, StartPos: startPos, EndPos: l.position}
		} else {
			tok = l.newSingleCharToken(ASSIGN, startLine, startCol, startPos)
		}
	case '!':
		if l.peekChar() == '=' {
			l.readChar() // Consume '!'
			literal := l.input[startPos : l.position+1]
			l.readChar() // Advance past '='
			tok = Token{Type: NOT_EQ, Literal: literal, Line: startLine, Column: startCol, StartPos: startPos, EndPos: l.position}
		} else {
			tok = l.newSingleCharToken(BANG, startLine, startCol, startPos)
		}
	case '+':
		tok = l.newSingleCharToken(PLUS, startLine, startCol, startPos)
	case '-':
		tok = l.newSingleCharToken(MINUS, startLine, startCol, startPos)
	case '*':
		tok = l.newSingleCharToken(ASTERISK, startLine, startCol, startPos)
	case '/':
		if l.peekChar() == '/' {
			l.skipLineComment()
			return l.NextToken()
		}
		tok = l.newSingleCharToken(SLASH, startLine, startCol, startPos)
	case '<':
		tok = l.newSingleCharToken(LT, startLine, startCol, startPos)
	case '>':
		tok = l.newSingleCharToken(GT, startLine, startCol, startPos)
	case ',':
		tok = l.newSingleCharToken(COMMA, startLine, startCol, startPos)
	case ';':
		tok = l.newSingleCharToken(SEMICOLON, startLine, startCol, startPos)
	case ':':
		tok = l.newSingleCharToken(COLON, startLine, startCol, startPos)
	case '(':
		tok = l.newSingleCharToken(LPAREN, startLine, startCol, startPos)
	case ')':
		tok = l.newSingleCharToken(RPAREN, startLine, startCol, startPos)
	case '{':
		tok = l.newSingleCharToken(LBRACE, startLine, startCol, startPos)
	case '}':
		tok = l.newSingleCharToken(RBRACE, startLine, startCol, startPos)
	case '[':
		tok = l.newSingleCharToken(LBRACKET, startLine, startCol, startPos)
	case ']':
		tok = l.newSingleCharToken(RBRACKET, startLine, startCol, startPos)
	case '"':
		str, ok := l.readString()
		tokType := STRING
		if !ok {
			// Unterminated string literal; the parser reports this as a
			// syntax error at this position.
			tokType = ILLEGAL
		}
		tok = Token{Type: tokType, Literal: str, Line: startLine, Column: startCol, StartPos: startPos, EndPos: l.position}
		return tok
	case 0:
		tok = Token{Type: EOF, Literal: "", Line: startLine, Column: startCol, StartPos: startPos, EndPos: startPos}
	default:
		if isLetter(l.ch) {
			literal := l.readIdentifier()
			tokType := LookupIdent(literal)
			// readIdentifier advanced the position past the identifier
			return Token{Type: tokType, Literal: literal, Line: startLine, Column: startCol, StartPos: startPos, EndPos: l.position}
		} else if isDigit(l.ch) {
			literal := l.readNumber()
			return Token{Type: INT, Literal: literal, Line: startLine, Column: startCol, StartPos: startPos, EndPos: l.position}
		}
		tok = l.newSingleCharToken(ILLEGAL, startLine, startCol, startPos)
	}

	return tok
}

// newSingleCharToken builds a token for the single character under
// examination and advances past it.
func (l *Lexer) newSingleCharToken(tokType TokenType, line, col, startPos int) Token {
	literal := string(l.ch)
	l.readChar()
	return Token{Type: tokType, Literal: literal, Line: line, Column: col, StartPos: startPos, EndPos: l.position}
}

// readIdentifier reads an identifier ([a-zA-Z_][a-zA-Z0-9_]*) and advances
// the lexer's position. It returns the literal string found.
func (l *Lexer) readIdentifier() string {
	startPos := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[startPos:l.position]
}

// readNumber reads an integer literal ([0-9]+) and advances the lexer's position.
func (l *Lexer) readNumber() string {
	startPos := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[startPos:l.position]
}

// readString reads a double-quoted string literal, handling simple escape
// sequences. The current token is the opening quote. Returns the decoded
// contents and whether the string was terminated before EOF/newline.
func (l *Lexer) readString() (string, bool) {
	var out []byte
	l.readChar() // Consume opening '"'

	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			return string(out), false
		}
		if l.ch == '\\' {
			switch l.peekChar() {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			default:
				// Unknown escape: keep the escaped character verbatim
				out = append(out, l.peekChar())
			}
			l.readChar() // Consume '\'
			l.readChar() // Consume escaped char
			continue
		}
		out = append(out, l.ch)
		l.readChar()
	}

	l.readChar() // Consume closing '"'
	return string(out), true
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
