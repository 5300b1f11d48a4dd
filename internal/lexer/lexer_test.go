package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, tok := range tokens {
		types[i] = tok.Type
	}
	return types
}

func TestLexer_Keywords(t *testing.T) {
	source := "if else while return var const fn struct interface impl arr vec true false"
	tokens := New(source, "test.src", nil).Tokenize()

	want := []TokenType{
		TokenIf, TokenElse, TokenWhile, TokenReturn, TokenVar, TokenConst,
		TokenFn, TokenStruct, TokenInterface, TokenImpl, TokenArr, TokenVec,
		TokenTrue, TokenFalse, TokenEOF,
	}
	assert.Equal(t, want, tokenTypes(tokens))
}

func TestLexer_Identifiers(t *testing.T) {
	source := "foo bar _temp myVar123"
	tokens := New(source, "test.src", nil).Tokenize()

	want := []string{"foo", "bar", "_temp", "myVar123"}
	require.Len(t, tokens, len(want)+1)
	for i, name := range want {
		assert.Equal(t, TokenIdentifier, tokens[i].Type)
		assert.Equal(t, name, tokens[i].Lexeme)
	}
}

func TestLexer_Numbers(t *testing.T) {
	tests := []struct {
		source string
		want   TokenType
	}{
		{"42", TokenInteger},
		{"3.14", TokenFloat},
		{"3//4", TokenRational},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens := New(tt.source, "test.src", nil).Tokenize()
			require.Len(t, tokens, 2)
			assert.Equal(t, tt.want, tokens[0].Type)
			assert.Equal(t, tt.source, tokens[0].Lexeme)
		})
	}
}

func TestLexer_RationalNotConfusedWithDivision(t *testing.T) {
	tokens := New("8 / 2", "test.src", nil).Tokenize()
	want := []TokenType{TokenInteger, TokenSlash, TokenInteger, TokenEOF}
	assert.Equal(t, want, tokenTypes(tokens))
}

func TestLexer_Strings(t *testing.T) {
	source := `"hello" "world"`
	tokens := New(source, "test.src", nil).Tokenize()

	require.Len(t, tokens, 3)
	assert.Equal(t, TokenString, tokens[0].Type)
	assert.Equal(t, `"hello"`, tokens[0].Lexeme)
	assert.Equal(t, TokenString, tokens[1].Type)
	assert.Equal(t, `"world"`, tokens[1].Lexeme)
}

func TestLexer_Char(t *testing.T) {
	tokens := New("'a'", "test.src", nil).Tokenize()
	require.Len(t, tokens, 2)
	assert.Equal(t, TokenChar, tokens[0].Type)
	assert.Equal(t, "'a'", tokens[0].Lexeme)
}

func TestLexer_Operators(t *testing.T) {
	source := "+ - * / == != < <= > >= ! = . : ( ) { } [ ] ,"
	tokens := New(source, "test.src", nil).Tokenize()

	want := []TokenType{
		TokenPlus, TokenMinus, TokenStar, TokenSlash,
		TokenEqual, TokenNotEqual, TokenLess, TokenLessEqual,
		TokenGreater, TokenGreaterEqual, TokenNot, TokenAssign,
		TokenDot, TokenColon, TokenLeftParen, TokenRightParen,
		TokenLeftBrace, TokenRightBrace, TokenLeftBracket, TokenRightBracket,
		TokenComma, TokenEOF,
	}
	assert.Equal(t, want, tokenTypes(tokens))
}

func TestLexer_LineComments(t *testing.T) {
	source := "# this is a comment\nfoo"
	tokens := New(source, "test.src", nil).Tokenize()

	// The comment line produces no tokens; "foo" had no prior candidate so
	// no terminator is synthesized before it.
	want := []TokenType{TokenIdentifier, TokenEOF}
	assert.Equal(t, want, tokenTypes(tokens))
	assert.Equal(t, "foo", tokens[0].Lexeme)
}

func TestLexer_AutoTerminatorInsertion(t *testing.T) {
	// identifier at end-of-line is a terminator candidate.
	tokens := New("foo\nbar", "test.src", nil).Tokenize()
	want := []TokenType{TokenIdentifier, TokenTerminator, TokenIdentifier, TokenEOF}
	assert.Equal(t, want, tokenTypes(tokens))
}

func TestLexer_NoTerminatorAfterOperator(t *testing.T) {
	// a trailing '+' is not a terminator candidate, so the newline is skipped.
	tokens := New("foo +\nbar", "test.src", nil).Tokenize()
	want := []TokenType{TokenIdentifier, TokenPlus, TokenIdentifier, TokenEOF}
	assert.Equal(t, want, tokenTypes(tokens))
}

func TestLexer_TerminatorAfterClosingDelimiters(t *testing.T) {
	tokens := New("f()\ng[0]\n{}", "test.src", nil).Tokenize()
	want := []TokenType{
		TokenIdentifier, TokenLeftParen, TokenRightParen, TokenTerminator,
		TokenIdentifier, TokenLeftBracket, TokenInteger, TokenRightBracket, TokenTerminator,
		TokenLeftBrace, TokenRightBrace, TokenEOF,
	}
	assert.Equal(t, want, tokenTypes(tokens))
}

func TestLexer_PositionTracking(t *testing.T) {
	tokens := New("foo\nbar", "test.src", nil).Tokenize()

	assert.Equal(t, 1, tokens[0].Position.Line)
	assert.Equal(t, 1, tokens[0].Position.Column)

	// tokens[1] is the synthesized terminator; tokens[2] is "bar" on line 2.
	require.Equal(t, TokenIdentifier, tokens[2].Type)
	assert.Equal(t, 2, tokens[2].Position.Line)
	assert.Equal(t, 1, tokens[2].Position.Column)
}

func TestLexer_ErrorSinkReceivesUnexpectedCharacter(t *testing.T) {
	var messages []string
	tokens := New("foo $ bar", "test.src", func(msg string) {
		messages = append(messages, msg)
	}).Tokenize()

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "unexpected character")

	want := []TokenType{TokenIdentifier, TokenInvalid, TokenIdentifier, TokenEOF}
	assert.Equal(t, want, tokenTypes(tokens))
}

func TestLexer_PanicsWithoutSinkOnError(t *testing.T) {
	assert.Panics(t, func() {
		New("$", "test.src", nil).Tokenize()
	})
}

func TestLexer_UnterminatedStringReportsError(t *testing.T) {
	var messages []string
	tokens := New(`"unterminated`, "test.src", func(msg string) {
		messages = append(messages, msg)
	}).Tokenize()

	require.Len(t, messages, 1)
	assert.Contains(t, messages[0], "unterminated string literal")
	assert.Equal(t, TokenInvalid, tokens[0].Type)
}
