package lisc

// Node is a node of the source AST, the tree produced by the parser from the
// parenthesized-call surface syntax.
type Node interface {
	sourceNode()
}

// CNode is a node of the target AST, the C-like tree consumed by the code
// generators. NumberLiteral and StringLiteral belong to both trees.
type CNode interface {
	targetNode()
}

type Program struct {
	Body []Node
}

type CallExpression struct {
	Name   string
	Params []Node
}

type NumberLiteral struct {
	Value string
}

type StringLiteral struct {
	Value string
}

func (*Program) sourceNode()        {}
func (*CallExpression) sourceNode() {}
func (*NumberLiteral) sourceNode()  {}
func (*StringLiteral) sourceNode()  {}

type CProgram struct {
	Body []CNode
}

// ExpressionStatement wraps a call that appears at the top level of the
// program. Calls nested inside another call are never wrapped.
type ExpressionStatement struct {
	Expression CNode
}

type CCallExpression struct {
	Callee    *Identifier
	Arguments []CNode
}

type Identifier struct {
	Name string
}

func (*CProgram) targetNode()            {}
func (*ExpressionStatement) targetNode() {}
func (*CCallExpression) targetNode()     {}
func (*Identifier) targetNode()          {}
func (*NumberLiteral) targetNode()       {}
func (*StringLiteral) targetNode()       {}
