package ast

import "github.com/kievzenit/ylogo/internal/lexer"

// AssignStmt is MAKE "NAME expr, or ADDASSIGN "NAME expr when Add is set.
type AssignStmt struct {
	StartToken *lexer.Token

	Name  string
	Value Expr
	Add   bool
}

type IfStmt struct {
	StartToken *lexer.Token

	Cond Expr
	Body *Block
}

type WhileStmt struct {
	StartToken *lexer.Token

	Cond Expr
	Body *Block
}

type RepeatStmt struct {
	StartToken *lexer.Token

	Count Expr
	Body  *Block
}

func (a *AssignStmt) AstNode() {}
func (i *IfStmt) AstNode()     {}
func (w *WhileStmt) AstNode()  {}
func (r *RepeatStmt) AstNode() {}

func (a *AssignStmt) StmtNode() {}
func (i *IfStmt) StmtNode()     {}
func (w *WhileStmt) StmtNode()  {}
func (r *RepeatStmt) StmtNode() {}

func (a *AssignStmt) FirstToken() *lexer.Token { return a.StartToken }
func (i *IfStmt) FirstToken() *lexer.Token     { return i.StartToken }
func (w *WhileStmt) FirstToken() *lexer.Token  { return w.StartToken }
func (r *RepeatStmt) FirstToken() *lexer.Token { return r.StartToken }
