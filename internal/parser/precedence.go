package parser

import "github.com/hassan/langcore/internal/lexer"

// Precedence levels, lowest to highest (spec §4.B: "comparisons < additive
// < multiplicative"). Unary operators bind tighter than all of these and
// are handled directly in parseUnary.
type Precedence int

const (
	PrecNone Precedence = iota
	PrecComparison
	PrecAdditive
	PrecMultiplicative
)

func precedenceOf(tt lexer.TokenType) Precedence {
	switch tt {
	case lexer.TokenEqual, lexer.TokenNotEqual,
		lexer.TokenLess, lexer.TokenLessEqual,
		lexer.TokenGreater, lexer.TokenGreaterEqual:
		return PrecComparison
	case lexer.TokenPlus, lexer.TokenMinus:
		return PrecAdditive
	case lexer.TokenStar, lexer.TokenSlash:
		return PrecMultiplicative
	default:
		return PrecNone
	}
}
