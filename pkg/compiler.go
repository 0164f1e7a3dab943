package lisc

import (
	"io"
	"strings"
)

// Compiler runs the full pipeline: lex, parse, transform, generate. Each stage
// consumes the whole output of the previous one and the first error aborts the
// compilation. A Compiler holds no state, so one instance may serve any number
// of concurrent calls.
type Compiler struct{}

func NewCompiler() *Compiler {
	return &Compiler{}
}

func (c *Compiler) Compile(source string) (string, error) {
	return c.CompileFromReader(strings.NewReader(source))
}

func (c *Compiler) CompileFromReader(reader io.Reader) (string, error) {
	toks, err := NewLexer(reader).RunBlocking()
	if err != nil {
		return "", err
	}

	ast, err := NewParser(toks).Run()
	if err != nil {
		return "", err
	}

	prog, err := NewTransformer().Do(ast)
	if err != nil {
		return "", err
	}

	return NewGenerator().Do(prog)
}
