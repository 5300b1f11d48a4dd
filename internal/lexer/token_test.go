package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_String(t *testing.T) {
	tok := Token{
		Type:     TokenIdentifier,
		Lexeme:   "foo",
		Position: Position{Filename: "test.go", Line: 1, Column: 1},
	}
	assert.Equal(t, "IDENTIFIER(foo) at test.go:1:1", tok.String())
}

func TestTokenType_String(t *testing.T) {
	tests := []struct {
		name     string
		tt       TokenType
		expected string
	}{
		{"EOF", TokenEOF, "EOF"},
		{"Invalid", TokenInvalid, "INVALID"},
		{"Integer", TokenInteger, "INTEGER"},
		{"Rational", TokenRational, "RATIONAL"},
		{"String", TokenString, "STRING"},
		{"Identifier", TokenIdentifier, "IDENTIFIER"},
		{"If keyword", TokenIf, "IF"},
		{"Impl keyword", TokenImpl, "IMPL"},
		{"Plus operator", TokenPlus, "PLUS"},
		{"Left paren", TokenLeftParen, "LPAREN"},
		{"Terminator", TokenTerminator, "TERMINATOR"},
		{"Unknown type", TokenType(9999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tt.String())
		})
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		expected   TokenType
	}{
		{"if", "if", TokenIf},
		{"else", "else", TokenElse},
		{"while", "while", TokenWhile},
		{"return", "return", TokenReturn},
		{"var", "var", TokenVar},
		{"const", "const", TokenConst},
		{"fn", "fn", TokenFn},
		{"struct", "struct", TokenStruct},
		{"interface", "interface", TokenInterface},
		{"impl", "impl", TokenImpl},
		{"arr", "arr", TokenArr},
		{"vec", "vec", TokenVec},
		{"true", "true", TokenTrue},
		{"false", "false", TokenFalse},
		{"not a keyword", "foobar", TokenIdentifier},
		{"case sensitive", "If", TokenIdentifier},
		{"dropped keyword for", "for", TokenIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LookupKeyword(tt.identifier))
		})
	}
}

func TestTokenType_IsTerminatorCandidate(t *testing.T) {
	tests := []struct {
		name     string
		tt       TokenType
		expected bool
	}{
		{"integer", TokenInteger, true},
		{"identifier", TokenIdentifier, true},
		{"right paren", TokenRightParen, true},
		{"right brace", TokenRightBrace, false},
		{"right bracket", TokenRightBracket, true},
		{"return", TokenReturn, true},
		{"left paren", TokenLeftParen, false},
		{"plus", TokenPlus, false},
		{"if", TokenIf, false},
		{"comma", TokenComma, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tt.IsTerminatorCandidate())
		})
	}
}
