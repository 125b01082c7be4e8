package parser

import (
	"fmt"

	"github.com/kievzenit/ylogo/internal/ast"
	"github.com/kievzenit/ylogo/internal/lexer"
	"github.com/kievzenit/ylogo/internal/logo_errors"
)

type position struct {
	Line   int
	Column int
	Length int
}

func positionOf(token *lexer.Token) position {
	return position{
		Line:   token.Metadata.Line,
		Column: token.Metadata.Column,
		Length: token.Metadata.Length,
	}
}

func (p position) GetPhase() logo_errors.Phase { return logo_errors.ParsePhase }
func (p position) GetLine() int                { return p.Line }
func (p position) GetColumn() int              { return p.Column }
func (p position) GetLength() int              { return p.Length }

func (p position) format(message string) string {
	return fmt.Sprintf("%d:%d: %s", p.Line, p.Column, message)
}

type UnexpectedExpectedError struct {
	position

	Unexpected lexer.Token
	Expected   string
}

func (e *UnexpectedExpectedError) GetMessage() string {
	return fmt.Sprintf("unexpected token: '%s', expected: %s", e.Unexpected.String(), e.Expected)
}

func (e *UnexpectedExpectedError) Error() string {
	return e.format(e.GetMessage())
}

type UnexpectedError struct {
	position

	Unexpected lexer.Token
}

func (e *UnexpectedError) GetMessage() string {
	return fmt.Sprintf("unexpected token: '%s'", e.Unexpected.String())
}

func (e *UnexpectedError) Error() string {
	return e.format(e.GetMessage())
}

type UnknownCommandError struct {
	position

	Name string
}

func (e *UnknownCommandError) GetMessage() string {
	return fmt.Sprintf("unknown command: '%s'", e.Name)
}

func (e *UnknownCommandError) Error() string {
	return e.format(e.GetMessage())
}

// ArityMismatchError reports a command or assignment given the wrong number
// of arguments. TooMany is set when an extra argument follows a complete
// invocation; Got is then the expected count plus one.
type ArityMismatchError struct {
	position

	Name     string
	Expected int
	Got      int
	TooMany  bool
}

func newArityMismatchError(token *lexer.Token, name string, expected, got int) *ArityMismatchError {
	return &ArityMismatchError{
		position: positionOf(token),

		Name:     name,
		Expected: expected,
		Got:      got,
		TooMany:  got > expected,
	}
}

func (e *ArityMismatchError) GetMessage() string {
	if e.TooMany {
		return fmt.Sprintf("too many arguments to %s: expects %d", e.Name, e.Expected)
	}
	return fmt.Sprintf("%s expects %d argument(s), got %d", e.Name, e.Expected, e.Got)
}

func (e *ArityMismatchError) Error() string {
	return e.format(e.GetMessage())
}

type UnterminatedBlockError struct {
	position

	OpenedAt lexer.TokenMetadata
}

func (e *UnterminatedBlockError) GetMessage() string {
	return fmt.Sprintf(
		"expected ']' to close the block opened at %d:%d, found end of input",
		e.OpenedAt.Line,
		e.OpenedAt.Column)
}

func (e *UnterminatedBlockError) Error() string {
	return e.format(e.GetMessage())
}

type InvalidNumberError struct {
	position

	Literal string
}

func (e *InvalidNumberError) GetMessage() string {
	return fmt.Sprintf("invalid number literal: '%s'", e.Literal)
}

func (e *InvalidNumberError) Error() string {
	return e.format(e.GetMessage())
}

func arityErrorFromAst(token *lexer.Token, err *ast.ArityError) *ArityMismatchError {
	return newArityMismatchError(token, err.Command.String(), err.Command.Arity(), err.Got)
}
