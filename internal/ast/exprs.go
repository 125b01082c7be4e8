package ast

import "github.com/kievzenit/ylogo/internal/lexer"

type NumberExpr struct {
	StartToken *lexer.Token

	Value float64
}

type VariableExpr struct {
	StartToken *lexer.Token

	Name string
}

type QueryKind int

const (
	XCorQuery QueryKind = iota
	YCorQuery
	HeadingQuery
	ColorQuery
)

var queryKeywords = map[lexer.TokenKind]QueryKind{
	lexer.XCOR:    XCorQuery,
	lexer.YCOR:    YCorQuery,
	lexer.HEADING: HeadingQuery,
	lexer.COLOR:   ColorQuery,
}

func QueryForKeyword(keyword lexer.TokenKind) (QueryKind, bool) {
	kind, ok := queryKeywords[keyword]
	return kind, ok
}

func (q QueryKind) String() string {
	switch q {
	case XCorQuery:
		return "XCOR"
	case YCorQuery:
		return "YCOR"
	case HeadingQuery:
		return "HEADING"
	case ColorQuery:
		return "COLOR"
	}
	return "QUERY"
}

// QueryExpr reads turtle state: XCOR, YCOR, HEADING or COLOR.
type QueryExpr struct {
	StartToken *lexer.Token

	Query QueryKind
}

type PrefixExpr struct {
	StartToken *lexer.Token

	Op    *lexer.Token
	Right Expr
}

type BinaryExpr struct {
	StartToken *lexer.Token

	Left  Expr
	Op    *lexer.Token
	Right Expr
}

func (NumberExpr) AstNode()   {}
func (VariableExpr) AstNode() {}
func (QueryExpr) AstNode()    {}
func (PrefixExpr) AstNode()   {}
func (BinaryExpr) AstNode()   {}

func (NumberExpr) ExprNode()   {}
func (VariableExpr) ExprNode() {}
func (QueryExpr) ExprNode()    {}
func (PrefixExpr) ExprNode()   {}
func (BinaryExpr) ExprNode()   {}

func (n *NumberExpr) FirstToken() *lexer.Token   { return n.StartToken }
func (v *VariableExpr) FirstToken() *lexer.Token { return v.StartToken }
func (q *QueryExpr) FirstToken() *lexer.Token    { return q.StartToken }
func (p *PrefixExpr) FirstToken() *lexer.Token   { return p.StartToken }
func (b *BinaryExpr) FirstToken() *lexer.Token   { return b.StartToken }
