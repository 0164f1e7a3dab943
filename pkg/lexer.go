package lisc

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType uint64
type stateFunc func(l *Lexer) stateFunc

//go:generate stringer -type=TokenType -trimprefix=Token
const (
	EOF rune = 0

	TokenError TokenType = iota
	TokenEOF
	TokenNumber
	TokenString
	TokenName
	TokenOpenParentheses
	TokenCloseParentheses
)

type Token struct {
	Typ   TokenType
	Value string
}

const (
	LexUnexpectedCharacter = "unexpected character"
	LexUnterminatedString  = "unterminated string"
)

// LexError is a fatal scanning failure. Reason is one of the Lex* constants
// and Value holds the offending character or the partial string scanned so far.
type LexError struct {
	Reason string
	Value  string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex: %s '%s'", e.Reason, e.Value)
}

type Lexer struct {
	reader *bufio.Reader
	done   chan Token
	err    *LexError
}

func NewLexer(reader io.Reader) *Lexer {
	return &Lexer{
		reader: bufio.NewReader(reader),
		done:   make(chan Token),
	}
}

func (l *Lexer) Chan() chan Token {
	return l.done
}

func (l *Lexer) Run() {
	for state := defaultState; state != nil; {
		state = state(l)
	}

	close(l.done)
}

func (l *Lexer) RunBlocking() ([]Token, error) {
	go l.Run()

	var tokens []Token
	for t := range l.Chan() {
		if t.Typ == TokenEOF {
			return tokens, nil
		}

		if t.Typ == TokenError {
			return nil, l.err
		}

		tokens = append(tokens, t)
	}

	return tokens, nil
}

func defaultState(l *Lexer) stateFunc {
	for {
		switch r := l.peek(); {
		case r == EOF:
			l.emmitNext(TokenEOF)
			return nil
		case r == '(':
			return l.emmitNext(TokenOpenParentheses)
		case r == ')':
			return l.emmitNext(TokenCloseParentheses)
		case unicode.IsSpace(r):
			l.next()
			continue
		case '0' <= r && r <= '9':
			return numberState
		case r == '"' || r == '\'':
			return stringState
		case unicode.IsLetter(r):
			return nameState
		default:
			return l.failf(LexUnexpectedCharacter, string(l.next()))
		}
	}
}

func numberState(l *Lexer) stateFunc {
	var num strings.Builder
	for r := l.peek(); '0' <= r && r <= '9'; r = l.peek() {
		num.WriteRune(l.next())
	}

	return l.emmitValue(TokenNumber, num.String())
}

func stringState(l *Lexer) stateFunc {
	quote := l.next() // The closing quote must match the opening one

	var str strings.Builder
	for r := l.next(); r != quote; r = l.next() {
		if r == EOF {
			return l.failf(LexUnterminatedString, str.String())
		}

		str.WriteRune(r)
	}

	return l.emmitValue(TokenString, str.String())
}

func nameState(l *Lexer) stateFunc {
	var id strings.Builder
	for r := l.peek(); unicode.IsLetter(r); r = l.peek() {
		id.WriteRune(l.next())
	}

	return l.emmitValue(TokenName, id.String())
}

func (l *Lexer) failf(reason string, value string) stateFunc {
	l.err = &LexError{
		Reason: reason,
		Value:  value,
	}

	l.done <- Token{
		Typ:   TokenError,
		Value: l.err.Error(),
	}

	return nil
}

func (l *Lexer) emmitNext(t TokenType) stateFunc {
	l.done <- Token{
		Typ:   t,
		Value: string(l.next()),
	}

	return defaultState
}

func (l *Lexer) emmitValue(t TokenType, val string) stateFunc {
	l.done <- Token{
		Typ:   t,
		Value: val,
	}

	return defaultState
}

func (l *Lexer) peek() rune {
	r := l.next()
	_ = l.reader.UnreadRune()

	return r
}

func (l *Lexer) next() rune {
	r, _, err := l.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	return r
}
