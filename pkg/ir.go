package lisc

import (
	"fmt"
	"strconv"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
	"github.com/pkg/errors"
)

type ValueLookup struct {
	vals map[string]value.Value
}

func NewValueLookup() *ValueLookup {
	return &ValueLookup{
		vals: make(map[string]value.Value),
	}
}

func (l *ValueLookup) Get(id string) (value.Value, bool) {
	val, ok := l.vals[id]
	return val, ok
}

func (l *ValueLookup) Set(id string, val value.Value) {
	l.vals[id] = val
}

type LLVMIRBuilder struct {
	mod    *ir.Module
	block  *ir.Block
	values *ValueLookup
	strs   int
}

func NewLLVMIRBuilder() *LLVMIRBuilder {
	builder := &LLVMIRBuilder{
		mod:    ir.NewModule(),
		values: NewValueLookup(),
	}

	defineBuiltins(builder)
	return builder
}

func (b *LLVMIRBuilder) load(node CNode) (value.Value, error) {
	switch n := node.(type) {
	case *ExpressionStatement:
		return b.load(n.Expression)
	case *CCallExpression:
		return b.call(n)
	case *NumberLiteral:
		return b.loadLiteralInt(n)
	case *StringLiteral:
		return b.loadLiteralString(n), nil
	default:
		return nil, &CodeGenError{Node: node}
	}
}

func (b *LLVMIRBuilder) call(expr *CCallExpression) (value.Value, error) {
	var args []value.Value
	for _, arg := range expr.Arguments {
		v, err := b.load(arg)
		if err != nil {
			return nil, err
		}

		args = append(args, v)
	}

	return b.block.NewCall(b.callee(expr.Callee.Name, args), args...), nil
}

// callee returns the function a call refers to, declaring it as an external
// i32 function on first use. The declared arity and parameter types come from
// the first call site.
func (b *LLVMIRBuilder) callee(name string, args []value.Value) value.Value {
	if f, ok := b.values.Get(name); ok {
		return f
	}

	var params []*ir.Param
	for i, arg := range args {
		params = append(params, ir.NewParam(fmt.Sprintf("a%d", i), arg.Type()))
	}

	f := b.mod.NewFunc(name, types.I32, params...)
	b.values.Set(name, f)

	return f
}

func (b *LLVMIRBuilder) loadLiteralInt(expr *NumberLiteral) (value.Value, error) {
	v, err := strconv.ParseInt(expr.Value, 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "bad integer literal '%s'", expr.Value)
	}

	return constant.NewInt(types.I32, v), nil
}

func (b *LLVMIRBuilder) loadLiteralString(expr *StringLiteral) value.Value {
	str := constant.NewCharArrayFromString(expr.Value + "\x00")
	glob := b.mod.NewGlobalDef(fmt.Sprintf("._str_%d", b.strs), str)
	b.strs++

	zero := constant.NewInt(types.I32, 0)
	return constant.NewGetElementPtr(types.NewArray(uint64(len(str.X)), types.I8), glob, zero, zero)
}

// LLVMGenerator is an alternative backend over the target AST: instead of
// C-like text it emits an LLVM module whose main function performs the
// program's calls in order.
type LLVMGenerator struct {
	prog *CProgram
}

func NewLLVMGenerator(prog *CProgram) *LLVMGenerator {
	return &LLVMGenerator{
		prog: prog,
	}
}

func (g *LLVMGenerator) Do() (*ir.Module, error) {
	builder := NewLLVMIRBuilder()

	f := builder.mod.NewFunc("main", types.I32)
	builder.block = f.NewBlock("")

	for _, stmt := range g.prog.Body {
		if _, err := builder.load(stmt); err != nil {
			return nil, err
		}
	}

	builder.block.NewRet(constant.NewInt(types.I32, 0))
	return builder.mod, nil
}
