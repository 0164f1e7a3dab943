package lisc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompile(t *testing.T) {
	cases := []struct {
		data   string
		expect string
	}{
		{
			"(add 2 3)",
			"add(2, 3);",
		},
		{
			"(add 2 (subtract 4 2))",
			"add(2, subtract(4, 2));",
		},
		{
			"(concat \"foo\" \"bar\")",
			"concat(\"foo\", \"bar\");",
		},
		{
			"(concat 'foo' 'bar')",
			"concat(\"foo\", \"bar\");",
		},
		{
			"(a 1) (b 2)",
			"a(1);\nb(2);",
		},
		{
			"(a 1)\n(b 2)\n(c 3)",
			"a(1);\nb(2);\nc(3);",
		},
		{
			"(pad 007 0010)",
			"pad(007, 0010);",
		},
		{
			"(noargs)",
			"noargs();",
		},
		{
			"  (  add \n 2 \t 3 )  ",
			"add(2, 3);",
		},
		{
			"(outer (inner (innermost 1)))",
			"outer(inner(innermost(1)));",
		},
	}

	for _, c := range cases {
		got, err := NewCompiler().Compile(c.data)

		assert.NoError(t, err)
		assert.Equal(t, c.expect, got)
	}
}

func TestCompileFromReader(t *testing.T) {
	got, err := NewCompiler().CompileFromReader(strings.NewReader("(add 2 3)"))

	assert.NoError(t, err)
	assert.Equal(t, "add(2, 3);", got)
}

func TestCompileOneLinePerStatement(t *testing.T) {
	got, err := NewCompiler().Compile("(a 1) (b 2) (c 3) (d 4)")

	assert.NoError(t, err)
	assert.Len(t, strings.Split(got, "\n"), 4)
}

func TestCompileErrors(t *testing.T) {
	var lexErr *LexError
	var parseErr *ParseError

	cases := []struct {
		data   string
		target interface{}
		reason string
	}{
		{"(add 2 3) #", &lexErr, LexUnexpectedCharacter},
		{"(concat \"foo)", &lexErr, LexUnterminatedString},
		{"(add 2", &parseErr, ParseUnexpectedEndOfInput},
		{"(", &parseErr, ParseUnexpectedEndOfInput},
		{")", &parseErr, ParseUnexpectedToken},
		{"(a 1))", &parseErr, ParseUnexpectedToken},
		{"(2 3)", &parseErr, ParseInvalidCallee},
	}

	for _, c := range cases {
		got, err := NewCompiler().Compile(c.data)

		assert.Empty(t, got)
		if !assert.ErrorAs(t, err, c.target) {
			continue
		}

		switch e := c.target.(type) {
		case **LexError:
			assert.Equal(t, c.reason, (*e).Reason)
		case **ParseError:
			assert.Equal(t, c.reason, (*e).Reason)
		}
	}
}
