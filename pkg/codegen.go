package lisc

import (
	"fmt"
	"strings"
)

// CodeGenError reports a target node a generator does not recognize.
type CodeGenError struct {
	Node CNode
}

func (e *CodeGenError) Error() string {
	return fmt.Sprintf("codegen: unhandled node kind %T", e.Node)
}

// Generator prints the target AST as C-like source text.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Do(prog *CProgram) (string, error) {
	return g.generate(prog)
}

func (g *Generator) generate(node CNode) (string, error) {
	switch n := node.(type) {
	case *CProgram:
		stmts := make([]string, 0, len(n.Body))
		for _, stmt := range n.Body {
			s, err := g.generate(stmt)
			if err != nil {
				return "", err
			}

			stmts = append(stmts, s)
		}

		return strings.Join(stmts, "\n"), nil
	case *ExpressionStatement:
		s, err := g.generate(n.Expression)
		if err != nil {
			return "", err
		}

		return s + ";", nil
	case *CCallExpression:
		callee, err := g.generate(n.Callee)
		if err != nil {
			return "", err
		}

		args := make([]string, 0, len(n.Arguments))
		for _, arg := range n.Arguments {
			s, err := g.generate(arg)
			if err != nil {
				return "", err
			}

			args = append(args, s)
		}

		return callee + "(" + strings.Join(args, ", ") + ")", nil
	case *Identifier:
		return n.Name, nil
	case *NumberLiteral:
		return n.Value, nil
	case *StringLiteral:
		// The original quote style is not preserved
		return "\"" + n.Value + "\"", nil
	default:
		return "", &CodeGenError{Node: node}
	}
}
