package lisc

import "fmt"

// TransformError reports a source node the transformer does not recognize.
// The parser never produces such nodes, so hitting this is an internal bug.
type TransformError struct {
	Node Node
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform: unhandled node kind %T", e.Node)
}

// Transformer lowers the source AST into the target AST. Nodes are visited
// parent-first; every step returns the node it built and the caller appends it
// to its own sequence, so no partially built tree is ever shared.
type Transformer struct{}

func NewTransformer() *Transformer {
	return &Transformer{}
}

func (t *Transformer) Do(ast *Program) (*CProgram, error) {
	prog := &CProgram{}

	for _, node := range ast.Body {
		stmt, err := t.statement(node)
		if err != nil {
			return nil, err
		}

		prog.Body = append(prog.Body, stmt)
	}

	return prog, nil
}

// statement lowers a direct child of the program. A call at this level is a
// statement of the generated program and gets an ExpressionStatement wrapper.
func (t *Transformer) statement(node Node) (CNode, error) {
	expr, err := t.expression(node)
	if err != nil {
		return nil, err
	}

	if call, ok := expr.(*CCallExpression); ok {
		return &ExpressionStatement{Expression: call}, nil
	}

	return expr, nil
}

func (t *Transformer) expression(node Node) (CNode, error) {
	switch n := node.(type) {
	case *NumberLiteral:
		return &NumberLiteral{Value: n.Value}, nil
	case *StringLiteral:
		return &StringLiteral{Value: n.Value}, nil
	case *CallExpression:
		call := &CCallExpression{
			Callee: &Identifier{Name: n.Name},
		}

		for _, param := range n.Params {
			arg, err := t.expression(param)
			if err != nil {
				return nil, err
			}

			call.Arguments = append(call.Arguments, arg)
		}

		return call, nil
	default:
		return nil, &TransformError{Node: node}
	}
}
