package safecalc

import (
	"unicode/utf8"
)

// Parser is a recursive descent parser over a fully lexed token stream.
type Parser struct {
	input  string
	tokens []Token
	pos    int
}

// NewParser lexes input. Any character outside the grammar is reported here,
// before a tree is built.
func NewParser(input string) (*Parser, error) {
	tokens, err := lex(input)
	if err != nil {
		return nil, err
	}
	return &Parser{
		input:  input,
		tokens: tokens,
	}, nil
}

// Parse parses input as a whole arithmetic expression.
func Parse(input string) (Node, error) {
	p, err := NewParser(input)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

func (p *Parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *Parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Type != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *Parser) unexpected(tok Token) error {
	r, _ := utf8.DecodeRuneInString(p.input[tok.Pos:])
	return &UnexpectedTokenError{Offset: tok.Pos, Char: r}
}

// Parse consumes the whole token stream.
func (p *Parser) Parse() (Node, error) {
	node, err := p.ParseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Type != TokenEOF {
		return nil, p.unexpected(tok)
	}
	return node, nil
}

// ParseExpr parses term (('+' | '-') term)*.
func (p *Parser) ParseExpr() (Node, error) {
	left, err := p.ParseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op Operator
		switch p.peek().Type {
		case TokenPlus:
			op = OpAdd
		case TokenMinus:
			op = OpSub
		default:
			return left, nil
		}
		p.next()
		right, err := p.ParseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
}

// ParseTerm parses factor (('*' | '/') factor)*.
func (p *Parser) ParseTerm() (Node, error) {
	left, err := p.ParseFactor()
	if err != nil {
		return nil, err
	}
	for {
		var op Operator
		switch p.peek().Type {
		case TokenStar:
			op = OpMul
		case TokenSlash:
			op = OpDiv
		default:
			return left, nil
		}
		p.next()
		right, err := p.ParseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
}

// ParseFactor parses ('+' | '-') factor | '(' expr ')' | NUMBER.
func (p *Parser) ParseFactor() (Node, error) {
	tok := p.next()
	switch tok.Type {
	case TokenNumber:
		return &NumberLit{Value: tok.Value}, nil
	case TokenPlus, TokenMinus:
		op := OpAdd
		if tok.Type == TokenMinus {
			op = OpSub
		}
		operand, err := p.ParseFactor()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: op, Operand: operand}, nil
	case TokenLParen:
		node, err := p.ParseExpr()
		if err != nil {
			return nil, err
		}
		closing := p.next()
		switch closing.Type {
		case TokenRParen:
			return node, nil
		case TokenEOF:
			return nil, ErrIncompleteExpression
		default:
			return nil, p.unexpected(closing)
		}
	case TokenEOF:
		return nil, ErrIncompleteExpression
	}
	return nil, p.unexpected(tok)
}
