// File: lexer.go
// Title: Boolean Expression Lexer
// Description: Implements lexical analysis for boolean expression lines.
//              Maximal runs of word characters form one token, every other
//              non-whitespace character stands alone. The lexer never
//              fails: unrecognized characters become symbol tokens that
//              the parser rejects with a position.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial lexer implementation

package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// TokenEOF marks the end of the input line
	TokenEOF TokenType = iota

	// TokenIdentifier is a word token: a variable name or a constant 0/1
	TokenIdentifier

	// TokenNot is the negation operator !
	TokenNot

	// TokenAnd is the conjunction operator &
	TokenAnd

	// TokenXor is the exclusive-or operator ^
	TokenXor

	// TokenOr is the disjunction operator |
	TokenOr

	// TokenImplies is the implication operator >
	TokenImplies

	// TokenEquiv is the equivalence operator =
	TokenEquiv

	// TokenNor is the keyword operator nor
	TokenNor

	// TokenNand is the keyword operator nand
	TokenNand

	// TokenLeftParen is an opening parenthesis
	TokenLeftParen

	// TokenRightParen is a closing parenthesis
	TokenRightParen

	// TokenSymbol is any other punctuation character, passed through for
	// the parser to reject
	TokenSymbol
)

// String returns a human-readable token type name
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenNot:
		return "NOT"
	case TokenAnd:
		return "AND"
	case TokenXor:
		return "XOR"
	case TokenOr:
		return "OR"
	case TokenImplies:
		return "IMPLIES"
	case TokenEquiv:
		return "EQUIV"
	case TokenNor:
		return "NOR"
	case TokenNand:
		return "NAND"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	case TokenSymbol:
		return "SYMBOL"
	default:
		return "UNKNOWN"
	}
}

// Token represents a single lexical token
type Token struct {
	Type  TokenType
	Value string
	Pos   int // 0-based byte offset within the line
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Value == "" {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%s)", t.Type.String(), t.Value)
}

// Column returns the 1-based column of the token for error reporting
func (t Token) Column() int {
	return t.Pos + 1
}

// keywords maps lowercase operator words to their token types. Lookup
// is case-insensitive, so NOR and Nand work as well.
var keywords = map[string]TokenType{
	"nor":  TokenNor,
	"nand": TokenNand,
}

// Lexer tokenizes a single boolean expression line
type Lexer struct {
	input    string
	position int  // current position (points to current char)
	readPos  int  // next reading position
	ch       byte // current char under examination
}

// NewLexer creates a new lexer for the given input line
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.position

	switch l.ch {
	case 0:
		return Token{Type: TokenEOF, Value: "", Pos: pos}
	case '!':
		l.readChar()
		return Token{Type: TokenNot, Value: "!", Pos: pos}
	case '&':
		l.readChar()
		return Token{Type: TokenAnd, Value: "&", Pos: pos}
	case '^':
		l.readChar()
		return Token{Type: TokenXor, Value: "^", Pos: pos}
	case '|':
		l.readChar()
		return Token{Type: TokenOr, Value: "|", Pos: pos}
	case '>':
		l.readChar()
		return Token{Type: TokenImplies, Value: ">", Pos: pos}
	case '=':
		l.readChar()
		return Token{Type: TokenEquiv, Value: "=", Pos: pos}
	case '(':
		l.readChar()
		return Token{Type: TokenLeftParen, Value: "(", Pos: pos}
	case ')':
		l.readChar()
		return Token{Type: TokenRightParen, Value: ")", Pos: pos}
	}

	if isWordChar(l.ch) {
		word := l.readWord()
		return Token{Type: lookupWord(word), Value: word, Pos: pos}
	}

	// Anything else passes through as a single symbol token, one rune at
	// a time so multi-byte characters stay intact.
	r, size := utf8.DecodeRuneInString(l.input[l.position:])
	for i := 0; i < size; i++ {
		l.readChar()
	}
	return Token{Type: TokenSymbol, Value: string(r), Pos: pos}
}

// Tokenize scans the whole input and returns all tokens including the
// trailing EOF token. Tokenization never fails; a blank line yields
// just the EOF token.
func (l *Lexer) Tokenize() []Token {
	var tokens []Token
	for {
		token := l.NextToken()
		tokens = append(tokens, token)
		if token.Type == TokenEOF {
			return tokens
		}
	}
}

// readChar advances to the next character in the input
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.position = l.readPos
	l.readPos++
}

// skipWhitespace advances past spaces, tabs and stray line endings
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		l.readChar()
	}
}

// readWord reads a maximal run of word characters
func (l *Lexer) readWord() string {
	start := l.position
	for isWordChar(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// isWordChar reports whether ch can be part of a word token
func isWordChar(ch byte) bool {
	return ch == '_' ||
		('a' <= ch && ch <= 'z') ||
		('A' <= ch && ch <= 'Z') ||
		('0' <= ch && ch <= '9')
}

// lookupWord classifies a word as a keyword operator or an identifier
func lookupWord(word string) TokenType {
	if t, ok := keywords[strings.ToLower(word)]; ok {
		return t
	}
	return TokenIdentifier
}

// IsKeyword reports whether word is an operator keyword, ignoring case
func IsKeyword(word string) bool {
	_, ok := keywords[strings.ToLower(word)]
	return ok
}

// IsValidIdentifier reports whether s can serve as a variable name: a
// non-empty run of word characters that is neither an operator keyword
// nor one of the constants 0 and 1.
func IsValidIdentifier(s string) bool {
	if s == "" || s == "0" || s == "1" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isWordChar(s[i]) {
			return false
		}
	}
	return !IsKeyword(s)
}

// TokenizeInput tokenizes a line in a single call
func TokenizeInput(input string) []Token {
	return NewLexer(input).Tokenize()
}
