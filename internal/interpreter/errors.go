package interpreter

import (
	"fmt"

	"github.com/kievzenit/ylogo/internal/lexer"
	"github.com/kievzenit/ylogo/internal/logo_errors"
)

// RuntimeError positions a failure that happened while executing a node.
// The underlying cause is kept for errors.As.
type RuntimeError struct {
	Message string

	Line   int
	Column int
	Length int

	Err error
}

func newRuntimeError(token *lexer.Token, err error) *RuntimeError {
	re := &RuntimeError{
		Message: err.Error(),
		Err:     err,
	}
	if token != nil {
		re.Line = token.Metadata.Line
		re.Column = token.Metadata.Column
		re.Length = token.Metadata.Length
	}

	return re
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

func (e *RuntimeError) Unwrap() error { return e.Err }

func (e *RuntimeError) GetMessage() string          { return e.Message }
func (e *RuntimeError) GetPhase() logo_errors.Phase { return logo_errors.RunPhase }
func (e *RuntimeError) GetLine() int                { return e.Line }
func (e *RuntimeError) GetColumn() int              { return e.Column }
func (e *RuntimeError) GetLength() int              { return e.Length }

type TypeMismatchError struct {
	Context  string
	Expected ValueKind
	Got      ValueKind
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch in %s: expected %s, got %s", e.Context, e.Expected, e.Got)
}

type DivisionByZeroError struct{}

func (e *DivisionByZeroError) Error() string {
	return "division by zero"
}

// NonFiniteNumberError is an arithmetic result that overflowed to an
// infinity.
type NonFiniteNumberError struct {
	Value float64
}

func (e *NonFiniteNumberError) Error() string {
	return fmt.Sprintf("arithmetic result %g is not a finite number", e.Value)
}

type IterationLimitError struct {
	Limit int
}

func (e *IterationLimitError) Error() string {
	return fmt.Sprintf("iteration limit of %d exceeded", e.Limit)
}
