package ast

import "github.com/kievzenit/ylogo/internal/lexer"

type AstNode interface {
	AstNode()
	FirstToken() *lexer.Token
}

// Program is the root of a parsed source file. An empty program is valid.
type Program struct {
	Stmts []Stmt
}

// Block is a bracketed statement list, the body of IF, WHILE and REPEAT.
type Block struct {
	StartToken *lexer.Token

	Stmts []Stmt
}

type Stmt interface {
	AstNode
	StmtNode()
}

type Expr interface {
	AstNode
	ExprNode()
}

func (p *Program) AstNode() {}
func (p *Program) FirstToken() *lexer.Token {
	if len(p.Stmts) == 0 {
		return nil
	}
	return p.Stmts[0].FirstToken()
}

func (b *Block) AstNode() {}
func (b *Block) FirstToken() *lexer.Token {
	return b.StartToken
}
