package safecalc

import (
	"math"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenNumber
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenLParen
	TokenRParen
)

var tokenNames = [...]string{
	TokenEOF:    "EOF",
	TokenNumber: "NUMBER",
	TokenPlus:   "+",
	TokenMinus:  "-",
	TokenStar:   "*",
	TokenSlash:  "/",
	TokenLParen: "(",
	TokenRParen: ")",
}

func (t TokenType) String() string {
	if t < 0 || int(t) >= len(tokenNames) {
		return "TokenType(" + strconv.Itoa(int(t)) + ")"
	}
	return tokenNames[t]
}

// Token is a lexical unit. Value is set only for TokenNumber.
type Token struct {
	Type  TokenType
	Value float64
	Pos   int
}

var punct = map[rune]TokenType{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenStar,
	'/': TokenSlash,
	'(': TokenLParen,
	')': TokenRParen,
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// lex classifies every character of input. The returned slice always ends
// with a TokenEOF positioned at len(input).
func lex(input string) ([]Token, error) {
	var tokens []Token
	pos := 0
	for pos < len(input) {
		r, n := utf8.DecodeRuneInString(input[pos:])
		if unicode.IsSpace(r) {
			pos += n
			continue
		}
		if tt, ok := punct[r]; ok {
			tokens = append(tokens, Token{Type: tt, Pos: pos})
			pos += n
			continue
		}
		if isDigit(r) || r == '.' {
			tok, end, err := lexNumber(input, pos)
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
			pos = end
			continue
		}
		return nil, &UnexpectedTokenError{Offset: pos, Char: r}
	}
	return append(tokens, Token{Type: TokenEOF, Pos: len(input)}), nil
}

func lexNumber(input string, start int) (Token, int, error) {
	pos := start
	digits := 0
	for pos < len(input) && isDigit(rune(input[pos])) {
		pos++
		digits++
	}
	if pos < len(input) && input[pos] == '.' {
		pos++
		for pos < len(input) && isDigit(rune(input[pos])) {
			pos++
			digits++
		}
	}
	if digits == 0 {
		return Token{}, 0, &UnexpectedTokenError{Offset: start, Char: '.'}
	}

	lit := input[start:pos]
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil || math.IsInf(v, 0) {
		return Token{}, 0, &RangeError{Offset: start, Literal: lit}
	}
	return Token{Type: TokenNumber, Value: v, Pos: start}, pos, nil
}
