package lisc

import "fmt"

const (
	ParseUnexpectedToken      = "unexpected token"
	ParseUnexpectedEndOfInput = "unexpected end of input"
	ParseInvalidCallee        = "invalid callee"
)

// ParseError is a fatal syntax failure. Reason is one of the Parse* constants;
// Token is the offending token, zero-valued when the input ended early.
type ParseError struct {
	Reason string
	Token  Token
}

func (e *ParseError) Error() string {
	if e.Reason == ParseUnexpectedEndOfInput {
		return fmt.Sprintf("parse: %s", e.Reason)
	}

	return fmt.Sprintf("parse: %s '%s'", e.Reason, e.Token.Value)
}

// Parser builds the source AST from a token sequence. The cursor only ever
// moves forward and never looks past the current token.
type Parser struct {
	toks []Token
	pos  int
}

func NewParser(toks []Token) *Parser {
	return &Parser{
		toks: toks,
		pos:  0,
	}
}

func (p *Parser) Run() (*Program, error) {
	prog := &Program{}

	for p.pos < len(p.toks) {
		node, err := p.expr()
		if err != nil {
			return nil, err
		}

		prog.Body = append(prog.Body, node)
	}

	return prog, nil
}

func (p *Parser) peek() Token {
	if p.pos >= len(p.toks) {
		return Token{Typ: TokenEOF}
	}

	return p.toks[p.pos]
}

func (p *Parser) next() Token {
	tok := p.peek()
	if tok.Typ != TokenEOF {
		p.pos++
	}

	return tok
}

func (p *Parser) check(typ TokenType) bool {
	return p.peek().Typ == typ
}

func (p *Parser) expr() (Node, error) {
	switch tok := p.peek(); tok.Typ {
	case TokenNumber:
		p.next()
		return &NumberLiteral{Value: tok.Value}, nil
	case TokenString:
		p.next()
		return &StringLiteral{Value: tok.Value}, nil
	case TokenOpenParentheses:
		return p.callExpr()
	case TokenEOF:
		return nil, &ParseError{Reason: ParseUnexpectedEndOfInput}
	default:
		return nil, &ParseError{Reason: ParseUnexpectedToken, Token: tok}
	}
}

func (p *Parser) callExpr() (Node, error) {
	p.next() // Skip the opening parenthesis

	callee := p.next()
	switch callee.Typ {
	case TokenName:
	case TokenEOF:
		return nil, &ParseError{Reason: ParseUnexpectedEndOfInput}
	default:
		return nil, &ParseError{Reason: ParseInvalidCallee, Token: callee}
	}

	call := &CallExpression{Name: callee.Value}
	for !p.check(TokenCloseParentheses) {
		if p.check(TokenEOF) {
			return nil, &ParseError{Reason: ParseUnexpectedEndOfInput}
		}

		param, err := p.expr()
		if err != nil {
			return nil, err
		}

		call.Params = append(call.Params, param)
	}

	p.next() // Skip the closing parenthesis
	return call, nil
}
