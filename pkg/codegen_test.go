package lisc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type bogusCNode struct{}

func (*bogusCNode) targetNode() {}

func TestGenerator(t *testing.T) {
	cases := []struct {
		data   *CProgram
		expect string
	}{
		{
			&CProgram{
				Body: []CNode{
					&ExpressionStatement{
						Expression: &CCallExpression{
							Callee: &Identifier{Name: "add"},
							Arguments: []CNode{
								&NumberLiteral{Value: "2"},
								&NumberLiteral{Value: "3"},
							},
						},
					},
				},
			},
			"add(2, 3);",
		},
		{
			// The inner call is rendered inline, without a terminator
			&CProgram{
				Body: []CNode{
					&ExpressionStatement{
						Expression: &CCallExpression{
							Callee: &Identifier{Name: "add"},
							Arguments: []CNode{
								&NumberLiteral{Value: "2"},
								&CCallExpression{
									Callee: &Identifier{Name: "subtract"},
									Arguments: []CNode{
										&NumberLiteral{Value: "4"},
										&NumberLiteral{Value: "2"},
									},
								},
							},
						},
					},
				},
			},
			"add(2, subtract(4, 2));",
		},
		{
			&CProgram{
				Body: []CNode{
					&ExpressionStatement{
						Expression: &CCallExpression{
							Callee:    &Identifier{Name: "a"},
							Arguments: []CNode{&NumberLiteral{Value: "1"}},
						},
					},
					&ExpressionStatement{
						Expression: &CCallExpression{
							Callee:    &Identifier{Name: "b"},
							Arguments: []CNode{&NumberLiteral{Value: "2"}},
						},
					},
				},
			},
			"a(1);\nb(2);",
		},
		{
			// Strings always come out double-quoted
			&CProgram{
				Body: []CNode{
					&ExpressionStatement{
						Expression: &CCallExpression{
							Callee: &Identifier{Name: "concat"},
							Arguments: []CNode{
								&StringLiteral{Value: "foo"},
								&StringLiteral{Value: "bar"},
							},
						},
					},
				},
			},
			"concat(\"foo\", \"bar\");",
		},
		{
			&CProgram{
				Body: []CNode{
					&ExpressionStatement{
						Expression: &CCallExpression{
							Callee: &Identifier{Name: "noargs"},
						},
					},
				},
			},
			"noargs();",
		},
		{
			&CProgram{
				Body: []CNode{
					&NumberLiteral{Value: "007"},
					&StringLiteral{Value: ""},
				},
			},
			"007\n\"\"",
		},
		{
			&CProgram{},
			"",
		},
	}

	for _, c := range cases {
		got, err := NewGenerator().Do(c.data)

		assert.NoError(t, err)
		assert.Equal(t, c.expect, got)
	}
}

func TestGeneratorUnhandledKind(t *testing.T) {
	cases := []*CProgram{
		{Body: []CNode{&bogusCNode{}}},
		{Body: []CNode{
			&ExpressionStatement{Expression: &bogusCNode{}},
		}},
		{Body: []CNode{
			&ExpressionStatement{
				Expression: &CCallExpression{
					Callee:    &Identifier{Name: "add"},
					Arguments: []CNode{&bogusCNode{}},
				},
			},
		}},
	}

	for _, c := range cases {
		got, err := NewGenerator().Do(c)
		assert.Empty(t, got)

		var genErr *CodeGenError
		assert.ErrorAs(t, err, &genErr)
	}
}
