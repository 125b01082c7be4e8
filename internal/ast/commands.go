package ast

import (
	"fmt"

	"github.com/kievzenit/ylogo/internal/lexer"
)

// CommandKind is the closed set of turtle commands.
type CommandKind int

const (
	PenUpCommand CommandKind = iota
	PenDownCommand
	ForwardCommand
	BackCommand
	LeftCommand
	RightCommand
	TurnCommand
	SetHeadingCommand
	SetXCommand
	SetYCommand
	SetPosCommand
	HomeCommand
	SetPenColorCommand
)

type commandInfo struct {
	keyword lexer.TokenKind
	arity   int
}

var commandTable = map[CommandKind]commandInfo{
	PenUpCommand:       {lexer.PENUP, 0},
	PenDownCommand:     {lexer.PENDOWN, 0},
	ForwardCommand:     {lexer.FORWARD, 1},
	BackCommand:        {lexer.BACK, 1},
	LeftCommand:        {lexer.LEFT, 1},
	RightCommand:       {lexer.RIGHT, 1},
	TurnCommand:        {lexer.TURN, 1},
	SetHeadingCommand:  {lexer.SETHEADING, 1},
	SetXCommand:        {lexer.SETX, 1},
	SetYCommand:        {lexer.SETY, 1},
	SetPosCommand:      {lexer.SETPOS, 2},
	HomeCommand:        {lexer.HOME, 0},
	SetPenColorCommand: {lexer.SETPENCOLOR, 1},
}

var commandByKeyword = func() map[lexer.TokenKind]CommandKind {
	m := make(map[lexer.TokenKind]CommandKind, len(commandTable))
	for kind, info := range commandTable {
		m[info.keyword] = kind
	}
	return m
}()

func CommandForKeyword(keyword lexer.TokenKind) (CommandKind, bool) {
	kind, ok := commandByKeyword[keyword]
	return kind, ok
}

func (k CommandKind) String() string {
	info, ok := commandTable[k]
	if !ok {
		return fmt.Sprintf("CommandKind(%d)", int(k))
	}
	return info.keyword.String()
}

func (k CommandKind) Arity() int {
	return commandTable[k].arity
}

type ArityError struct {
	Command CommandKind
	Got     int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s expects %d argument(s), got %d", e.Command, e.Command.Arity(), e.Got)
}

// CommandStmt is a command invocation. It can only be built through
// NewCommand, so its argument count always matches the command's arity.
type CommandStmt struct {
	StartToken *lexer.Token

	Kind CommandKind
	args []Expr
}

func NewCommand(startToken *lexer.Token, kind CommandKind, args []Expr) (*CommandStmt, error) {
	if _, ok := commandTable[kind]; !ok {
		return nil, fmt.Errorf("unknown command kind %d", int(kind))
	}
	if len(args) != kind.Arity() {
		return nil, &ArityError{Command: kind, Got: len(args)}
	}

	return &CommandStmt{
		StartToken: startToken,

		Kind: kind,
		args: args,
	}, nil
}

// Args returns the argument expressions in source order. Callers must not
// modify the returned slice.
func (c *CommandStmt) Args() []Expr {
	return c.args
}

func (c *CommandStmt) AstNode()  {}
func (c *CommandStmt) StmtNode() {}
func (c *CommandStmt) FirstToken() *lexer.Token {
	return c.StartToken
}
