package interpreter

import (
	"math"

	"github.com/kievzenit/ylogo/internal/ast"
	"github.com/kievzenit/ylogo/internal/lexer"
)

func (in *Interpreter) eval(expr ast.Expr) (Value, error) {
	switch e := expr.(type) {
	case *ast.NumberExpr:
		return Number(e.Value), nil
	case *ast.VariableExpr:
		v, err := in.env.Get(e.Name)
		if err != nil {
			return Value{}, newRuntimeError(e.StartToken, err)
		}
		return Number(v), nil
	case *ast.QueryExpr:
		return in.evalQuery(e), nil
	case *ast.PrefixExpr:
		v, err := in.evalNumber(e.Right, "operand of unary '-'")
		if err != nil {
			return Value{}, err
		}
		return Number(-v), nil
	case *ast.BinaryExpr:
		return in.evalBinary(e)
	}

	panic("unreachable: unknown expression type")
}

func (in *Interpreter) evalQuery(e *ast.QueryExpr) Value {
	state := in.pen.State()
	switch e.Query {
	case ast.XCorQuery:
		return Number(state.Position.X)
	case ast.YCorQuery:
		return Number(state.Position.Y)
	case ast.HeadingQuery:
		return Number(state.Heading)
	case ast.ColorQuery:
		return Number(float64(state.Color.Index))
	}

	panic("unreachable: unknown query")
}

// evalBinary evaluates both operands before applying the operator, AND and
// OR included.
func (in *Interpreter) evalBinary(e *ast.BinaryExpr) (Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return Value{}, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return Value{}, err
	}

	op := e.Op
	context := "operator '" + op.Value + "'"

	switch op.Kind {
	case lexer.PLUS, lexer.MINUS, lexer.ASTERISK, lexer.SLASH:
		if err := expectKinds(op, context, NumberValue, left, right); err != nil {
			return Value{}, err
		}
		return arithmetic(op, left.Num, right.Num)

	case lexer.LT, lexer.GT:
		if err := expectKinds(op, context, NumberValue, left, right); err != nil {
			return Value{}, err
		}
		if op.Kind == lexer.LT {
			return Bool(left.Num < right.Num), nil
		}
		return Bool(left.Num > right.Num), nil

	case lexer.EQ, lexer.NEQ:
		if left.Kind != right.Kind {
			return Value{}, newRuntimeError(op, &TypeMismatchError{
				Context:  context,
				Expected: left.Kind,
				Got:      right.Kind,
			})
		}
		equal := left == right
		if op.Kind == lexer.NEQ {
			equal = !equal
		}
		return Bool(equal), nil

	case lexer.AND, lexer.OR:
		if err := expectKinds(op, context, BoolValue, left, right); err != nil {
			return Value{}, err
		}
		if op.Kind == lexer.AND {
			return Bool(left.Bool && right.Bool), nil
		}
		return Bool(left.Bool || right.Bool), nil
	}

	panic("unreachable: unknown binary operator " + op.Kind.String())
}

// arithmetic reports an overflow to an infinity at the operator.
func arithmetic(op *lexer.Token, l, r float64) (Value, error) {
	var result float64
	switch op.Kind {
	case lexer.PLUS:
		result = l + r
	case lexer.MINUS:
		result = l - r
	case lexer.ASTERISK:
		result = l * r
	default:
		if r == 0 {
			return Value{}, newRuntimeError(op, &DivisionByZeroError{})
		}
		result = l / r
	}

	if math.IsInf(result, 0) || math.IsNaN(result) {
		return Value{}, newRuntimeError(op, &NonFiniteNumberError{Value: result})
	}
	return Number(result), nil
}

func expectKinds(op *lexer.Token, context string, want ValueKind, operands ...Value) error {
	for _, v := range operands {
		if v.Kind != want {
			return newRuntimeError(op, &TypeMismatchError{
				Context:  context,
				Expected: want,
				Got:      v.Kind,
			})
		}
	}
	return nil
}

func (in *Interpreter) evalNumber(expr ast.Expr, context string) (float64, error) {
	v, err := in.eval(expr)
	if err != nil {
		return 0, err
	}
	if v.Kind != NumberValue {
		return 0, newRuntimeError(expr.FirstToken(), &TypeMismatchError{
			Context:  context,
			Expected: NumberValue,
			Got:      v.Kind,
		})
	}

	return v.Num, nil
}

func (in *Interpreter) evalBool(expr ast.Expr, context string) (bool, error) {
	v, err := in.eval(expr)
	if err != nil {
		return false, err
	}
	if v.Kind != BoolValue {
		return false, newRuntimeError(expr.FirstToken(), &TypeMismatchError{
			Context:  context,
			Expected: BoolValue,
			Got:      v.Kind,
		})
	}

	return v.Bool, nil
}
