package semantic_analyzer

import (
	"github.com/kievzenit/ylogo/internal/ast"
	"github.com/kievzenit/ylogo/internal/lexer"
)

// Type is the static type of an expression. Every expression has exactly one
// because variables and queries always hold numbers.
type Type int

const (
	InvalidType Type = iota
	NumberType
	BoolType
)

func (t Type) String() string {
	switch t {
	case NumberType:
		return "number"
	case BoolType:
		return "boolean"
	}
	return "invalid"
}

// operandTypes is what each binary operator accepts, resultTypes what it
// yields. EQ and NEQ accept either type as long as both sides agree.
var operandTypes = map[lexer.TokenKind]Type{
	lexer.PLUS:     NumberType,
	lexer.MINUS:    NumberType,
	lexer.ASTERISK: NumberType,
	lexer.SLASH:    NumberType,
	lexer.LT:       NumberType,
	lexer.GT:       NumberType,
	lexer.AND:      BoolType,
	lexer.OR:       BoolType,
}

var resultTypes = map[lexer.TokenKind]Type{
	lexer.PLUS:     NumberType,
	lexer.MINUS:    NumberType,
	lexer.ASTERISK: NumberType,
	lexer.SLASH:    NumberType,
	lexer.LT:       BoolType,
	lexer.GT:       BoolType,
	lexer.EQ:       BoolType,
	lexer.NEQ:      BoolType,
	lexer.AND:      BoolType,
	lexer.OR:       BoolType,
}

type TypeResolver struct {
	onMismatch func(token *lexer.Token, context string, expected, got Type)
}

func NewTypeResolver(onMismatch func(token *lexer.Token, context string, expected, got Type)) *TypeResolver {
	return &TypeResolver{
		onMismatch: onMismatch,
	}
}

// Resolve returns the type of expr, reporting every operand of the wrong type
// on the way down. A mismatched subexpression still resolves to its
// operator's result type, so one mistake is reported once.
func (tr *TypeResolver) Resolve(expr ast.Expr) Type {
	switch e := expr.(type) {
	case *ast.NumberExpr, *ast.VariableExpr, *ast.QueryExpr:
		return NumberType
	case *ast.PrefixExpr:
		tr.Expect(e.Right, NumberType, "operand of unary '-'")
		return NumberType
	case *ast.BinaryExpr:
		return tr.resolveBinary(e)
	}

	return InvalidType
}

func (tr *TypeResolver) Expect(expr ast.Expr, expected Type, context string) {
	if got := tr.Resolve(expr); got != expected {
		tr.onMismatch(expr.FirstToken(), context, expected, got)
	}
}

func (tr *TypeResolver) resolveBinary(e *ast.BinaryExpr) Type {
	context := "operator '" + e.Op.Value + "'"

	if want, ok := operandTypes[e.Op.Kind]; ok {
		left := tr.Resolve(e.Left)
		right := tr.Resolve(e.Right)
		if left != want {
			tr.onMismatch(e.Op, context, want, left)
		} else if right != want {
			tr.onMismatch(e.Op, context, want, right)
		}
		return resultTypes[e.Op.Kind]
	}

	left := tr.Resolve(e.Left)
	right := tr.Resolve(e.Right)
	if left != right {
		tr.onMismatch(e.Op, context, left, right)
	}

	return resultTypes[e.Op.Kind]
}
